package finmindclient

import (
	"context"

	"github.com/pkg/errors"
	finminddomain "github.com/vfg2006/revenue-dashboard/infrastructure/integrator/finmind/domain"
)

func (c *FinMindClient) GetStockInfo(ctx context.Context) ([]finminddomain.StockInfo, error) {
	query := map[string]string{
		"dataset": c.cfg.FinMind.StockInfoDataset,
	}
	if token := c.token(""); token != "" {
		query["token"] = token
	}

	envelope, err := c.getData(ctx, query)
	if err != nil {
		return nil, err
	}

	var stocks []finminddomain.StockInfo
	if err := json.Unmarshal(envelope.Data, &stocks); err != nil {
		return nil, errors.Wrap(finminddomain.ErrMalformedData, err.Error())
	}

	return stocks, nil
}
