package revenue

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-dashboard/internal/config"
	"github.com/vfg2006/revenue-dashboard/internal/domain"
	"github.com/vfg2006/revenue-dashboard/internal/usecases/revenue/mocks"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

var errSuperseded = errors.New("busca substituída")

func testConfig() *config.Config {
	return &config.Config{
		FinMind: config.FinMind{Dataset: "TaiwanStockMonthRevenue"},
		Revenue: config.Revenue{
			DefaultStockID:   "2867",
			DefaultStartDate: "2015-01-01",
			DefaultPeriod:    60,
			YearlyWindow:     5,
		},
	}
}

func TestService_Defaults(t *testing.T) {
	service := NewService(testConfig(), nil, nil)

	assert.Equal(t, domain.RevenueQuery{
		StockID:   "2867",
		StartDate: "2015-01-01",
		Dataset:   "TaiwanStockMonthRevenue",
	}, service.DefaultQuery())

	assert.Equal(t, domain.ReportOptions{
		Period:       60,
		View:         domain.ReportViewMonthly,
		ShowYoY:      true,
		YearlyWindow: 5,
	}, service.DefaultOptions())
}

func TestService_GetReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockRecordLoader(ctrl)
	mockDirectory := mocks.NewMockStockDirectory(ctrl)

	service := NewService(testConfig(), mockLoader, mockDirectory)

	var months []domain.RevenueRecord
	for year := 2022; year <= 2024; year++ {
		for month := 1; month <= 12; month++ {
			months = append(months, record(year, month, 1000000))
		}
	}

	wantQuery := domain.RevenueQuery{
		StockID:   "2867",
		StartDate: "2015-01-01",
		Dataset:   "TaiwanStockMonthRevenue",
	}

	tests := []struct {
		name     string
		query    domain.RevenueQuery
		opts     domain.ReportOptions
		setup    func()
		validate func(t *testing.T, report *domain.RevenueReport, err error)
	}{
		{
			name:  "Sucesso com período de 12 meses e visão mensal",
			query: domain.RevenueQuery{StockID: " 2867 "},
			opts:  domain.ReportOptions{Period: 12, View: domain.ReportViewMonthly, ShowYoY: true, YearlyWindow: 2},
			setup: func() {
				mockLoader.EXPECT().
					Load(gomock.Any(), "viewer-1", wantQuery).
					Return(domain.FetchState{Status: domain.FetchSuccess, Query: wantQuery, Records: months}, nil)

				mockDirectory.EXPECT().
					Lookup(gomock.Any(), "2867").
					Return(domain.StockInfo{StockID: "2867", StockName: "三商壽"}, true)
			},
			validate: func(t *testing.T, report *domain.RevenueReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.FetchSuccess, report.Status)
				assert.Equal(t, "三商壽", report.StockName)
				assert.Equal(t, wantQuery, report.Query)

				require.Len(t, report.Monthly, 12)
				assert.Equal(t, "2024-01", report.Monthly[0].YearMonth)
				require.Len(t, report.MonthlyTable, 12)
				assert.Equal(t, "202412", report.MonthlyTable[0].YearMonth)
				assert.Equal(t, "0.00", report.MonthlyTable[0].YoYGrowth)

				assert.Equal(t, []int{2023, 2024}, yearsOf(report.Yearly))
				require.Len(t, report.YearlyTable, 2)
				assert.Equal(t, "12,000", report.YearlyTable[0].Revenue)

				assert.Len(t, report.Chart.Labels, 12)
				assert.Len(t, report.Chart.YoY, 12)
			},
		},
		{
			name:  "Visão anual sem linha de crescimento",
			query: domain.RevenueQuery{StockID: "2867"},
			opts:  domain.ReportOptions{Period: 0, View: domain.ReportViewYearly, YearlyWindow: 0},
			setup: func() {
				mockLoader.EXPECT().
					Load(gomock.Any(), "viewer-1", wantQuery).
					Return(domain.FetchState{Status: domain.FetchSuccess, Records: months}, nil)

				mockDirectory.EXPECT().
					Lookup(gomock.Any(), "2867").
					Return(domain.StockInfo{}, false)
			},
			validate: func(t *testing.T, report *domain.RevenueReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, "2867", report.StockName)
				assert.Len(t, report.Monthly, 36)
				assert.Equal(t, []string{"2022", "2023", "2024"}, report.Chart.Labels)
				assert.Nil(t, report.Chart.YoY)
			},
		},
		{
			name:  "Falha da API vem no relatório sem dados",
			query: domain.RevenueQuery{StockID: "2867"},
			opts:  domain.ReportOptions{Period: 60},
			setup: func() {
				mockLoader.EXPECT().
					Load(gomock.Any(), "viewer-1", wantQuery).
					Return(domain.FetchState{
						Status:  domain.FetchError,
						Error:   "Requests reach the upper limit.",
						Failure: domain.FailureAPI,
					}, nil)

				mockDirectory.EXPECT().
					Lookup(gomock.Any(), "2867").
					Return(domain.StockInfo{StockID: "2867", StockName: "三商壽"}, true)
			},
			validate: func(t *testing.T, report *domain.RevenueReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.FetchError, report.Status)
				assert.Equal(t, "Requests reach the upper limit.", report.Error)
				assert.Equal(t, domain.FailureAPI, report.Failure)
				assert.Equal(t, domain.ReportViewMonthly, report.Options.View)
				assert.Empty(t, report.Monthly)
				assert.NotNil(t, report.MonthlyTable)
				assert.Empty(t, report.Chart.Labels)
			},
		},
		{
			name:  "Busca substituída retorna erro",
			query: domain.RevenueQuery{StockID: "2867"},
			opts:  domain.ReportOptions{Period: 60},
			setup: func() {
				mockLoader.EXPECT().
					Load(gomock.Any(), "viewer-1", wantQuery).
					Return(domain.FetchState{}, errSuperseded)

				mockDirectory.EXPECT().
					Lookup(gomock.Any(), "2867").
					Return(domain.StockInfo{}, false).
					AnyTimes()
			},
			validate: func(t *testing.T, report *domain.RevenueReport, err error) {
				assert.Nil(t, report)
				assert.ErrorIs(t, err, errSuperseded)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			report, err := service.GetReport(context.Background(), "viewer-1", tt.query, tt.opts)
			tt.validate(t, report, err)
		})
	}
}

func TestService_GetReport_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada é esperada: a validação acontece antes da busca
	service := NewService(testConfig(), mocks.NewMockRecordLoader(ctrl), mocks.NewMockStockDirectory(ctrl))

	tests := []struct {
		name      string
		query     domain.RevenueQuery
		opts      domain.ReportOptions
		wantErr   error
		wantField string
	}{
		{
			name:      "Código da ação vazio",
			query:     domain.RevenueQuery{StockID: "  "},
			opts:      domain.ReportOptions{Period: 60},
			wantErr:   ErrStockIDRequired,
			wantField: "stock_id",
		},
		{
			name:      "Data de início inválida",
			query:     domain.RevenueQuery{StockID: "2867", StartDate: "01/01/2015"},
			opts:      domain.ReportOptions{Period: 60},
			wantErr:   ErrInvalidDate,
			wantField: "start_date",
		},
		{
			name:      "Data de fim inválida",
			query:     domain.RevenueQuery{StockID: "2867", EndDate: "2024-13-01"},
			opts:      domain.ReportOptions{Period: 60},
			wantErr:   ErrInvalidDate,
			wantField: "end_date",
		},
		{
			name:      "Início depois do fim",
			query:     domain.RevenueQuery{StockID: "2867", StartDate: "2024-01-01", EndDate: "2023-01-01"},
			opts:      domain.ReportOptions{Period: 60},
			wantErr:   ErrInvalidRange,
			wantField: "end_date",
		},
		{
			name:      "Período fora das opções",
			query:     domain.RevenueQuery{StockID: "2867"},
			opts:      domain.ReportOptions{Period: 24},
			wantErr:   ErrInvalidPeriod,
			wantField: "period",
		},
		{
			name:      "Visão desconhecida",
			query:     domain.RevenueQuery{StockID: "2867"},
			opts:      domain.ReportOptions{Period: 60, View: "weekly"},
			wantErr:   ErrInvalidView,
			wantField: "view",
		},
		{
			name:      "Janela negativa",
			query:     domain.RevenueQuery{StockID: "2867"},
			opts:      domain.ReportOptions{Period: 60, YearlyWindow: -1},
			wantErr:   ErrInvalidWindow,
			wantField: "yearly_window",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := service.GetReport(context.Background(), "viewer-1", tt.query, tt.opts)
			assert.Nil(t, report)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsValidationError(err))

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestWriteWorkbook(t *testing.T) {
	records := []domain.RevenueRecord{record(2023, 1, 1000000), record(2024, 1, 1200000), nullRecord(2024, 2)}
	monthly := ComputeMonthlySeries(records)
	yearly := ComputeYearlySeries(records, 5)

	report := &domain.RevenueReport{
		Monthly:      monthly,
		MonthlyTable: MonthlyTableRows(monthly),
		Yearly:       yearly,
		YearlyTable:  ComputeYearlyTableRows(yearly),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(report, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{MonthlySheet, YearlySheet}, f.GetSheetList())

	raw := func(sheet, cell string) string {
		t.Helper()
		value, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
		require.NoError(t, err)
		return value
	}

	header, err := f.GetRows(MonthlySheet)
	require.NoError(t, err)
	require.Len(t, header, 4)
	assert.Equal(t, []string{"年度月份", "每月营收", "单月营收年增率 (%)"}, header[0])

	tests := []struct {
		name  string
		sheet string
		cells map[string]string
	}{
		{
			name:  "Mês sem receita fica com células vazias",
			sheet: MonthlySheet,
			cells: map[string]string{"A2": "202402", "B2": "", "C2": ""},
		},
		{
			name:  "Receita e crescimento gravados como números",
			sheet: MonthlySheet,
			cells: map[string]string{"A3": "202401", "B3": "1200", "C3": "20"},
		},
		{
			name:  "Crescimento sem ano anterior fica vazio",
			sheet: MonthlySheet,
			cells: map[string]string{"A4": "202301", "B4": "1000", "C4": ""},
		},
		{
			name:  "Planilha anual",
			sheet: YearlySheet,
			cells: map[string]string{"A2": "2024", "B2": "1200", "C2": "20", "A3": "2023", "B3": "1000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for cell, want := range tt.cells {
				assert.Equal(t, want, raw(tt.sheet, cell), cell)
			}
		})
	}

	t.Run("Colunas de valores com formato numérico", func(t *testing.T) {
		styleID, err := f.GetCellStyle(MonthlySheet, "B3")
		require.NoError(t, err)
		style, err := f.GetStyle(styleID)
		require.NoError(t, err)
		assert.Equal(t, 4, style.NumFmt)

		styleID, err = f.GetCellStyle(MonthlySheet, "C3")
		require.NoError(t, err)
		style, err = f.GetStyle(styleID)
		require.NoError(t, err)
		assert.Equal(t, 2, style.NumFmt)
	})
}
