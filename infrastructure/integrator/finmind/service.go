package finmind

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	finminddomain "github.com/vfg2006/revenue-dashboard/infrastructure/integrator/finmind/domain"
	"github.com/vfg2006/revenue-dashboard/infrastructure/integrator/finmind/finmindclient"
	"github.com/vfg2006/revenue-dashboard/internal/config"
	"github.com/vfg2006/revenue-dashboard/internal/domain"
)

type Integrator interface {
	GetMonthRevenue(ctx context.Context, query domain.RevenueQuery) ([]domain.RevenueRecord, error)
	GetStockInfo(ctx context.Context) ([]domain.StockInfo, error)
}

type FinMindIntegrator struct {
	cfg    *config.Config
	Client finmindclient.Client
}

func New(cfg *config.Config, client finmindclient.Client) Integrator {
	return &FinMindIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetMonthRevenue busca a receita mensal e converte para o formato do domínio
func (s *FinMindIntegrator) GetMonthRevenue(ctx context.Context, query domain.RevenueQuery) ([]domain.RevenueRecord, error) {
	resp, err := s.Client.GetMonthRevenue(ctx, finmindclient.MonthRevenueParams{
		Dataset:   query.Dataset,
		StockID:   query.StockID,
		StartDate: query.StartDate,
		EndDate:   query.EndDate,
		Token:     query.Token,
	})
	if err != nil {
		return nil, err
	}

	return FactoryRevenueRecords(resp), nil
}

// GetStockInfo busca o diretório de ações sem repetir stock_id
func (s *FinMindIntegrator) GetStockInfo(ctx context.Context) ([]domain.StockInfo, error) {
	resp, err := s.Client.GetStockInfo(ctx)
	if err != nil {
		return nil, err
	}

	return FactoryStockInfo(resp), nil
}

// FactoryRevenueRecords converte os registros da API. Registros com data inválida são descartados.
func FactoryRevenueRecords(items []finminddomain.MonthRevenue) []domain.RevenueRecord {
	records := make([]domain.RevenueRecord, 0, len(items))

	for _, item := range items {
		date, err := time.Parse(time.DateOnly, item.Date)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"stock_id": item.StockID,
				"date":     item.Date,
			}).Warn("finmind: registro de receita com data inválida, ignorando")
			continue
		}

		year := int(item.RevenueYear)
		if year == 0 {
			year = date.Year()
		}

		month := int(item.RevenueMonth)
		if month < 1 || month > 12 {
			month = int(date.Month())
		}

		records = append(records, domain.RevenueRecord{
			Date:    date,
			StockID: item.StockID,
			Revenue: item.Revenue.NullDecimal(),
			Month:   month,
			Year:    year,
		})
	}

	return records
}

// FactoryStockInfo remove ações repetidas: mantém a posição da primeira ocorrência e os dados da última
func FactoryStockInfo(items []finminddomain.StockInfo) []domain.StockInfo {
	positions := make(map[string]int, len(items))
	stocks := make([]domain.StockInfo, 0, len(items))

	for _, item := range items {
		if item.StockID == "" {
			continue
		}

		stock := domain.StockInfo{
			StockID:          item.StockID,
			StockName:        item.StockName,
			IndustryCategory: item.IndustryCategory,
			Type:             item.Type,
			Date:             item.Date,
		}

		if pos, exists := positions[item.StockID]; exists {
			stocks[pos] = stock
			continue
		}

		positions[item.StockID] = len(stocks)
		stocks = append(stocks, stock)
	}

	return stocks
}
