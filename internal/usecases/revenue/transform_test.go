package revenue

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-dashboard/internal/domain"
)

func record(year, month int, revenue int64) domain.RevenueRecord {
	return domain.RevenueRecord{
		Date:    time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC),
		StockID: "2867",
		Revenue: decimal.NullDecimal{Decimal: decimal.NewFromInt(revenue), Valid: true},
		Month:   month,
		Year:    year,
	}
}

func nullRecord(year, month int) domain.RevenueRecord {
	r := record(year, month, 0)
	r.Revenue = decimal.NullDecimal{}
	return r
}

func yearsOf(points []domain.YearlyPoint) []int {
	years := make([]int, 0, len(points))
	for _, p := range points {
		years = append(years, p.Year)
	}
	return years
}

func TestComputeMonthlySeries(t *testing.T) {
	tests := []struct {
		name     string
		records  []domain.RevenueRecord
		validate func(t *testing.T, points []domain.MonthlyPoint)
	}{
		{
			name:    "Crescimento de 20% sobre o mesmo mês do ano anterior",
			records: []domain.RevenueRecord{record(2023, 1, 1000000), record(2024, 1, 1200000)},
			validate: func(t *testing.T, points []domain.MonthlyPoint) {
				require.Len(t, points, 2)

				assert.Equal(t, "2023-01", points[0].YearMonth)
				assert.False(t, points[0].YoYGrowth.Valid())
				assert.Equal(t, 1000.0, points[0].ScaledRevenue.Float())

				assert.Equal(t, "2024-01", points[1].YearMonth)
				assert.Equal(t, 1200.0, points[1].ScaledRevenue.Float())
				growth, ok := points[1].YoYGrowth.Get()
				require.True(t, ok)
				assert.InDelta(t, 20.0, growth, 1e-9)
			},
		},
		{
			name:    "Receita ausente vira 0 no gráfico e sem crescimento",
			records: []domain.RevenueRecord{record(2023, 3, 500000), nullRecord(2024, 3)},
			validate: func(t *testing.T, points []domain.MonthlyPoint) {
				require.Len(t, points, 2)
				assert.False(t, points[1].ScaledRevenue.Valid())
				assert.Equal(t, 0.0, points[1].ScaledRevenue.Float())
				assert.False(t, points[1].YoYGrowth.Valid())
			},
		},
		{
			name:    "Ano anterior com receita zero não gera crescimento",
			records: []domain.RevenueRecord{record(2023, 5, 0), record(2024, 5, 100)},
			validate: func(t *testing.T, points []domain.MonthlyPoint) {
				require.Len(t, points, 2)
				assert.False(t, points[1].YoYGrowth.Valid())
			},
		},
		{
			name:    "Ano anterior sem receita não gera crescimento",
			records: []domain.RevenueRecord{nullRecord(2023, 5), record(2024, 5, 100)},
			validate: func(t *testing.T, points []domain.MonthlyPoint) {
				assert.False(t, points[1].YoYGrowth.Valid())
			},
		},
		{
			name:    "Mês diferente no ano anterior não gera crescimento",
			records: []domain.RevenueRecord{record(2023, 4, 1000), record(2024, 5, 1000)},
			validate: func(t *testing.T, points []domain.MonthlyPoint) {
				assert.False(t, points[1].YoYGrowth.Valid())
			},
		},
		{
			name: "Registros fora de ordem saem ordenados por data",
			records: []domain.RevenueRecord{
				record(2024, 2, 3000), record(2023, 2, 1000), record(2024, 1, 2000),
			},
			validate: func(t *testing.T, points []domain.MonthlyPoint) {
				require.Len(t, points, 3)
				for i := 1; i < len(points); i++ {
					assert.False(t, points[i].Timestamp.Before(points[i-1].Timestamp))
				}
				assert.Equal(t, "2024-02", points[2].YearMonth)
				growth, ok := points[2].YoYGrowth.Get()
				require.True(t, ok)
				assert.InDelta(t, 200.0, growth, 1e-9)
			},
		},
		{
			name:    "Entrada vazia",
			records: nil,
			validate: func(t *testing.T, points []domain.MonthlyPoint) {
				assert.Empty(t, points)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := ComputeMonthlySeries(tt.records)
			assert.Len(t, points, len(tt.records))
			tt.validate(t, points)
		})
	}
}

func TestComputeMonthlySeries_DoesNotMutateInput(t *testing.T) {
	records := []domain.RevenueRecord{record(2024, 2, 3000), record(2023, 2, 1000)}
	original := make([]domain.RevenueRecord, len(records))
	copy(original, records)

	_ = ComputeMonthlySeries(records)
	_ = ComputeYearlySeries(records, 5)
	_ = ComputeTableRows(records)

	assert.Equal(t, original, records)
}

func TestTransforms_AreIdempotent(t *testing.T) {
	records := []domain.RevenueRecord{
		record(2022, 1, 900), nullRecord(2023, 1), record(2023, 2, 1100), record(2024, 1, 1000),
	}

	assert.Equal(t, ComputeMonthlySeries(records), ComputeMonthlySeries(records))
	assert.Equal(t, ComputeYearlySeries(records, 2), ComputeYearlySeries(records, 2))
	assert.Equal(t, ComputeTableRows(records), ComputeTableRows(records))
}

func TestComputeYearlySeries(t *testing.T) {
	var sevenYears []domain.RevenueRecord
	for year := 2018; year <= 2024; year++ {
		for month := 1; month <= 12; month++ {
			sevenYears = append(sevenYears, record(year, month, int64(year-2017)*1000))
		}
	}

	tests := []struct {
		name     string
		records  []domain.RevenueRecord
		window   int
		validate func(t *testing.T, points []domain.YearlyPoint)
	}{
		{
			name:    "Janela de 5 anos a partir do maior ano presente",
			records: sevenYears,
			window:  5,
			validate: func(t *testing.T, points []domain.YearlyPoint) {
				assert.Equal(t, []int{2020, 2021, 2022, 2023, 2024}, yearsOf(points))

				// 2020 soma 12 meses de 3000 (3 em milhares)
				assert.InDelta(t, 36.0, points[0].TotalScaledRevenue.Float(), 1e-9)
				assert.Equal(t, 12, points[0].ReportedMonths)

				// 2020 compara com 2019, que está fora da janela mas presente nos dados
				growth, ok := points[0].YoYGrowth.Get()
				require.True(t, ok)
				assert.InDelta(t, 50.0, growth, 1e-9)
				assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), points[0].YearStart)
			},
		},
		{
			name:    "Janela zero mantém todos os anos",
			records: sevenYears,
			window:  0,
			validate: func(t *testing.T, points []domain.YearlyPoint) {
				require.Len(t, points, 7)
				assert.Equal(t, 2018, points[0].Year)
				assert.False(t, points[0].YoYGrowth.Valid())
			},
		},
		{
			name:    "Janela maior que os dados mantém todos os anos",
			records: []domain.RevenueRecord{record(2023, 1, 1000), record(2024, 1, 2000)},
			window:  10,
			validate: func(t *testing.T, points []domain.YearlyPoint) {
				assert.Equal(t, []int{2023, 2024}, yearsOf(points))
				growth, ok := points[1].YoYGrowth.Get()
				require.True(t, ok)
				assert.InDelta(t, 100.0, growth, 1e-9)
			},
		},
		{
			name: "Meses sem receita ficam fora da soma e são contados",
			records: []domain.RevenueRecord{
				record(2024, 1, 1000), nullRecord(2024, 2), record(2024, 3, 2000),
			},
			window: 5,
			validate: func(t *testing.T, points []domain.YearlyPoint) {
				require.Len(t, points, 1)
				assert.InDelta(t, 3.0, points[0].TotalScaledRevenue.Float(), 1e-9)
				assert.Equal(t, 2, points[0].ReportedMonths)
				assert.Equal(t, 1, points[0].MissingMonths)
			},
		},
		{
			name:    "Ano sem nenhuma receita válida fica sem total e o seguinte sem crescimento",
			records: []domain.RevenueRecord{nullRecord(2023, 1), record(2024, 1, 1000)},
			window:  5,
			validate: func(t *testing.T, points []domain.YearlyPoint) {
				require.Len(t, points, 2)
				assert.False(t, points[0].TotalScaledRevenue.Valid())
				assert.False(t, points[1].YoYGrowth.Valid())
			},
		},
		{
			name:    "Ano anterior ausente nos dados",
			records: []domain.RevenueRecord{record(2021, 1, 1000), record(2024, 1, 1000)},
			window:  0,
			validate: func(t *testing.T, points []domain.YearlyPoint) {
				assert.False(t, points[1].YoYGrowth.Valid())
			},
		},
		{
			name:    "Entrada vazia",
			records: nil,
			window:  5,
			validate: func(t *testing.T, points []domain.YearlyPoint) {
				assert.NotNil(t, points)
				assert.Empty(t, points)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ComputeYearlySeries(tt.records, tt.window))
		})
	}
}

func TestComputeYearlySeries_TotalsMatchMonthlySum(t *testing.T) {
	records := []domain.RevenueRecord{
		record(2023, 1, 1234567), record(2023, 2, 7654321), record(2024, 1, 1000001), nullRecord(2024, 2),
	}

	monthly := ComputeMonthlySeries(records)
	sums := map[int]float64{}
	for _, p := range monthly {
		sums[p.Year] += p.ScaledRevenue.Float()
	}

	for _, p := range ComputeYearlySeries(records, 0) {
		assert.InDelta(t, sums[p.Year], p.TotalScaledRevenue.Float(), 1e-6, "ano %d", p.Year)
	}
}

func TestComputeTableRows(t *testing.T) {
	t.Run("Cenário 2867: 2024-01 com 20% de crescimento", func(t *testing.T) {
		rows := ComputeTableRows([]domain.RevenueRecord{record(2023, 1, 1000000), record(2024, 1, 1200000)})

		require.Len(t, rows, 2)
		assert.Equal(t, domain.TableRow{YearMonth: "202401", Revenue: "1,200", YoYGrowth: "20.00"}, rows[0])
		assert.Equal(t, domain.TableRow{YearMonth: "202301", Revenue: "1,000", YoYGrowth: "--"}, rows[1])
	})

	t.Run("Receita nula mostra -- na receita e no crescimento", func(t *testing.T) {
		rows := ComputeTableRows([]domain.RevenueRecord{record(2023, 6, 1000), nullRecord(2024, 6)})

		require.Len(t, rows, 2)
		assert.Equal(t, domain.TableRow{YearMonth: "202406", Revenue: "--", YoYGrowth: "--"}, rows[0])
	})

	t.Run("Ordem decrescente por ano e mês", func(t *testing.T) {
		rows := ComputeTableRows([]domain.RevenueRecord{
			record(2023, 11, 1), record(2024, 2, 1), record(2023, 12, 1), record(2024, 10, 1),
		})

		got := make([]string, 0, len(rows))
		for _, r := range rows {
			got = append(got, r.YearMonth)
		}
		assert.Equal(t, []string{"202410", "202402", "202312", "202311"}, got)
	})
}

func TestComputeYearlyTableRows(t *testing.T) {
	points := ComputeYearlySeries([]domain.RevenueRecord{
		record(2023, 1, 1000000), record(2024, 1, 1500000),
	}, 5)

	rows := ComputeYearlyTableRows(points)

	assert.Equal(t, []domain.TableRow{
		{YearMonth: "2024", Revenue: "1,500", YoYGrowth: "50.00"},
		{YearMonth: "2023", Revenue: "1,000", YoYGrowth: "--"},
	}, rows)
}

func TestLastMonths(t *testing.T) {
	var records []domain.RevenueRecord
	for month := 1; month <= 12; month++ {
		records = append(records, record(2023, month, 1000), record(2024, month, 1000))
	}
	points := ComputeMonthlySeries(records)

	tests := []struct {
		name      string
		n         int
		wantLen   int
		wantFirst string
	}{
		{name: "Últimos 12 meses", n: 12, wantLen: 12, wantFirst: "2024-01"},
		{name: "Zero mantém todos", n: 0, wantLen: 24, wantFirst: "2023-01"},
		{name: "Maior que a série mantém todos", n: 60, wantLen: 24, wantFirst: "2023-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LastMonths(points, tt.n)
			require.Len(t, got, tt.wantLen)
			assert.Equal(t, tt.wantFirst, got[0].YearMonth)
			assert.Equal(t, "2024-12", got[len(got)-1].YearMonth)
		})
	}

	t.Run("Resultado não compartilha memória com a entrada", func(t *testing.T) {
		got := LastMonths(points, 12)
		got[0].YearMonth = "alterado"
		assert.Equal(t, "2024-01", points[12].YearMonth)
	})
}

func TestBuildCharts(t *testing.T) {
	records := []domain.RevenueRecord{record(2023, 1, 1000000), nullRecord(2024, 1), record(2024, 2, 500)}

	t.Run("Mensal com linha de crescimento", func(t *testing.T) {
		chart := BuildMonthlyChart(ComputeMonthlySeries(records), true)
		assert.Equal(t, []string{"2023-01", "2024-01", "2024-02"}, chart.Labels)
		assert.Equal(t, []float64{1000, 0, 0.5}, chart.Revenue)
		assert.Equal(t, []float64{0, 0, 0}, chart.YoY)
	})

	t.Run("Mensal sem linha de crescimento", func(t *testing.T) {
		chart := BuildMonthlyChart(ComputeMonthlySeries(records), false)
		assert.Nil(t, chart.YoY)
		assert.Len(t, chart.Revenue, 3)
	})

	t.Run("Anual", func(t *testing.T) {
		chart := BuildYearlyChart(ComputeYearlySeries(records, 5), true)
		assert.Equal(t, []string{"2023", "2024"}, chart.Labels)
		assert.Equal(t, []float64{1000, 0.5}, chart.Revenue)
		assert.InDelta(t, -99.95, chart.YoY[1], 1e-9)
	})
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		measure domain.Measure
		thous   string
		percent string
	}{
		{name: "Inteiro com milhar", measure: domain.Some(1200), thous: "1,200", percent: "1200.00"},
		{name: "Milhões", measure: domain.Some(1234567), thous: "1,234,567", percent: "1234567.00"},
		{name: "Casas decimais", measure: domain.Some(1234.5), thous: "1,234.5", percent: "1234.50"},
		{name: "Negativo", measure: domain.Some(-12.5), thous: "-12.5", percent: "-12.50"},
		{name: "Zero é valor, não ausência", measure: domain.Some(0), thous: "0", percent: "0.00"},
		{name: "Ausente", measure: domain.None(), thous: "--", percent: "--"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.thous, FormatThousands(tt.measure))
			assert.Equal(t, tt.percent, FormatPercent(tt.measure))
		})
	}
}
