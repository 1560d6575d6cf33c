package finmindclient

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	finminddomain "github.com/vfg2006/revenue-dashboard/infrastructure/integrator/finmind/domain"
	"github.com/vfg2006/revenue-dashboard/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetMonthRevenue(ctx context.Context, params MonthRevenueParams) ([]finminddomain.MonthRevenue, error)
	GetStockInfo(ctx context.Context) ([]finminddomain.StockInfo, error)
}

type FinMindClient struct {
	httpClient *resty.Client
	cfg        *config.Config
}

// NewClient cria o cliente da API de dados da FinMind
func NewClient(cfg *config.Config) Client {
	httpClient := resty.New().
		SetTimeout(cfg.FinMind.Timeout).
		SetHeader("Accept", "application/json")

	return &FinMindClient{
		httpClient: httpClient,
		cfg:        cfg,
	}
}

// getData executa um GET no endpoint de dados e valida o envelope {msg, status, data}
func (c *FinMindClient) getData(ctx context.Context, query map[string]string) (*finminddomain.Envelope, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(c.cfg.FinMind.URL)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, &finminddomain.TransportError{Err: ctxErr}
		}

		logrus.WithError(err).WithField("dataset", query["dataset"]).Error("finmind: erro ao fazer a requisição")
		return nil, &finminddomain.TransportError{Err: err}
	}

	if resp.StatusCode() != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"dataset":     query["dataset"],
			"status_code": resp.StatusCode(),
		}).Warn("finmind: requisição retornou status inesperado")
		return nil, &finminddomain.TransportError{StatusCode: resp.StatusCode()}
	}

	var envelope finminddomain.Envelope
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		logrus.WithError(err).Error("finmind: erro ao decodificar JSON")
		return nil, errors.Wrap(finminddomain.ErrMalformedData, err.Error())
	}

	if envelope.Status != http.StatusOK {
		return nil, &finminddomain.APIError{Status: envelope.Status, Msg: envelope.Msg}
	}

	if !envelope.HasListData() {
		return nil, finminddomain.ErrMalformedData
	}

	return &envelope, nil
}

func (c *FinMindClient) token(override string) string {
	if override != "" {
		return override
	}
	return c.cfg.FinMind.Token
}
