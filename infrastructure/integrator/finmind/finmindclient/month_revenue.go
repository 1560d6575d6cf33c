package finmindclient

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	finminddomain "github.com/vfg2006/revenue-dashboard/infrastructure/integrator/finmind/domain"
)

type MonthRevenueParams struct {
	Dataset   string
	StockID   string
	StartDate string
	EndDate   string
	Token     string
}

func (c *FinMindClient) GetMonthRevenue(ctx context.Context, params MonthRevenueParams) ([]finminddomain.MonthRevenue, error) {
	dataset := params.Dataset
	if dataset == "" {
		dataset = c.cfg.FinMind.Dataset
	}

	query := map[string]string{
		"dataset": dataset,
		"data_id": params.StockID,
	}
	if params.StartDate != "" {
		query["start_date"] = params.StartDate
	}
	if params.EndDate != "" {
		query["end_date"] = params.EndDate
	}
	if token := c.token(params.Token); token != "" {
		query["token"] = token
	}

	envelope, err := c.getData(ctx, query)
	if err != nil {
		return nil, err
	}

	var records []finminddomain.MonthRevenue
	if err := json.Unmarshal(envelope.Data, &records); err != nil {
		logrus.WithError(err).WithField("stock_id", params.StockID).Error("finmind: erro ao decodificar receitas mensais")
		return nil, errors.Wrap(finminddomain.ErrMalformedData, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"stock_id": params.StockID,
		"records":  len(records),
	}).Debug("finmind: receitas mensais recebidas")

	return records, nil
}
