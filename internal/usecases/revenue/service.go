// Package revenue calcula as séries de receita mensal e anual exibidas no painel
package revenue

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/vfg2006/revenue-dashboard/internal/config"
	"github.com/vfg2006/revenue-dashboard/internal/domain"
	"github.com/vfg2006/revenue-dashboard/pkg/log"
	"github.com/vfg2006/revenue-dashboard/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// PeriodOptions são os períodos aceitos pelo seletor da página (0 = todos os meses)
var PeriodOptions = []int{0, 12, 36, 60}

type Service struct {
	cfg       *config.Config
	loader    RecordLoader
	directory StockDirectory
}

// NewService cria o serviço de relatórios de receita
func NewService(cfg *config.Config, loader RecordLoader, directory StockDirectory) Reporter {
	return &Service{
		cfg:       cfg,
		loader:    loader,
		directory: directory,
	}
}

func (s *Service) DefaultQuery() domain.RevenueQuery {
	return domain.RevenueQuery{
		StockID:   s.cfg.Revenue.DefaultStockID,
		StartDate: s.cfg.Revenue.DefaultStartDate,
		Dataset:   s.cfg.FinMind.Dataset,
	}
}

func (s *Service) DefaultOptions() domain.ReportOptions {
	return domain.ReportOptions{
		Period:       s.cfg.Revenue.DefaultPeriod,
		View:         domain.ReportViewMonthly,
		ShowYoY:      true,
		YearlyWindow: s.cfg.Revenue.YearlyWindow,
	}
}

// GetReport valida a consulta, carrega os registros e o nome da ação em paralelo
// e monta o relatório. Falhas da FinMind vêm no próprio relatório (Status error);
// o erro retornado é apenas de validação ou de uma busca substituída por outra mais nova.
func (s *Service) GetReport(ctx context.Context, viewerID string, query domain.RevenueQuery, opts domain.ReportOptions) (*domain.RevenueReport, error) {
	query = s.normalizeQuery(query)
	if opts.View == "" {
		opts.View = domain.ReportViewMonthly
	}

	if err := validate(query, opts); err != nil {
		return nil, err
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"stock_id":  query.StockID,
		"viewer_id": viewerID,
	})

	var (
		state domain.FetchState
		stock domain.StockInfo
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		state, err = s.loader.Load(gctx, viewerID, query)
		return err
	})

	g.Go(func() error {
		info, found := s.directory.Lookup(gctx, query.StockID)
		if !found {
			info = domain.StockInfo{StockID: query.StockID}
		}
		stock = info
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.WithError(err).Warn("Busca de receita não concluída")
		return nil, err
	}

	report := &domain.RevenueReport{
		StockID:      query.StockID,
		StockName:    stock.DisplayName(),
		Query:        query,
		Options:      opts,
		Status:       state.Status,
		Error:        state.Error,
		Failure:      state.Failure,
		Monthly:      []domain.MonthlyPoint{},
		MonthlyTable: []domain.TableRow{},
		Yearly:       []domain.YearlyPoint{},
		YearlyTable:  []domain.TableRow{},
		Chart:        domain.ChartSeries{Labels: []string{}, Revenue: []float64{}},
	}

	if state.Status != domain.FetchSuccess {
		logger.WithField("error", state.Error).Warn("Relatório de receita sem dados")
		return report, nil
	}

	monthly := LastMonths(ComputeMonthlySeries(state.Records), opts.Period)
	report.Monthly = monthly
	report.MonthlyTable = MonthlyTableRows(monthly)
	report.Yearly = ComputeYearlySeries(state.Records, opts.YearlyWindow)
	report.YearlyTable = ComputeYearlyTableRows(report.Yearly)

	if opts.View == domain.ReportViewYearly {
		report.Chart = BuildYearlyChart(report.Yearly, opts.ShowYoY)
	} else {
		report.Chart = BuildMonthlyChart(report.Monthly, opts.ShowYoY)
	}

	logger.WithFields(log.Fields{
		"stock_records": len(state.Records),
		"stock_months":  len(report.Monthly),
		"stock_years":   len(report.Yearly),
	}).Debug("Relatório de receita montado")

	return report, nil
}

func (s *Service) normalizeQuery(query domain.RevenueQuery) domain.RevenueQuery {
	query.StockID = strings.TrimSpace(query.StockID)
	query.StartDate = strings.TrimSpace(query.StartDate)
	query.EndDate = strings.TrimSpace(query.EndDate)

	if query.StartDate == "" {
		query.StartDate = s.cfg.Revenue.DefaultStartDate
	}
	if query.Dataset == "" {
		query.Dataset = s.cfg.FinMind.Dataset
	}

	return query
}

func validate(query domain.RevenueQuery, opts domain.ReportOptions) error {
	if query.StockID == "" {
		return NewValidationError(ErrStockIDRequired, "stock_id", "")
	}

	startDate, err := utils.ParseDate(query.StartDate)
	if err != nil {
		return NewValidationError(ErrInvalidDate, "start_date", query.StartDate)
	}

	endDate, err := utils.ParseDate(query.EndDate)
	if err != nil {
		return NewValidationError(ErrInvalidDate, "end_date", query.EndDate)
	}

	if startDate != nil && endDate != nil && startDate.After(*endDate) {
		return NewValidationError(ErrInvalidRange, "end_date", query.EndDate)
	}

	if !slices.Contains(PeriodOptions, opts.Period) {
		return NewValidationError(ErrInvalidPeriod, "period", strconv.Itoa(opts.Period))
	}

	if opts.View != domain.ReportViewMonthly && opts.View != domain.ReportViewYearly {
		return NewValidationError(ErrInvalidView, "view", string(opts.View))
	}

	if opts.YearlyWindow < 0 {
		return NewValidationError(ErrInvalidWindow, "yearly_window", strconv.Itoa(opts.YearlyWindow))
	}

	return nil
}
