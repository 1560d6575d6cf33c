package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/vfg2006/revenue-dashboard/internal/domain"
	"github.com/vfg2006/revenue-dashboard/internal/usecases/fetching"
	"github.com/vfg2006/revenue-dashboard/internal/usecases/revenue"
	"github.com/vfg2006/revenue-dashboard/pkg/apiErrors"
	"github.com/vfg2006/revenue-dashboard/pkg/log"
)

// parseReportRequest parte da consulta padrão e aplica os parâmetros da URL.
// stockID vem do path nas rotas da API; vazio usa o parâmetro stock_id.
func parseReportRequest(params url.Values, reporter revenue.Reporter, stockID string) (domain.RevenueQuery, domain.ReportOptions, error) {
	query := reporter.DefaultQuery()
	opts := reporter.DefaultOptions()

	switch {
	case stockID != "":
		query.StockID = strings.TrimSpace(stockID)
	case params.Has("stock_id"):
		query.StockID = strings.TrimSpace(params.Get("stock_id"))
	}

	if params.Has("start_date") {
		query.StartDate = params.Get("start_date")
	}
	if params.Has("end_date") {
		query.EndDate = params.Get("end_date")
	}

	if raw := params.Get("period"); raw != "" {
		period, err := strconv.Atoi(raw)
		if err != nil {
			return query, opts, revenue.NewValidationError(revenue.ErrInvalidPeriod, "period", raw)
		}
		opts.Period = period
	}

	if raw := params.Get("view"); raw != "" {
		opts.View = domain.ReportView(raw)
	}

	if raw := params.Get("show_yoy"); raw != "" {
		showYoY, err := strconv.ParseBool(raw)
		if err != nil {
			return query, opts, revenue.NewValidationError(revenue.ErrInvalidFlag, "show_yoy", raw)
		}
		opts.ShowYoY = showYoY
	}

	if raw := params.Get("yearly_window"); raw != "" {
		window, err := strconv.Atoi(raw)
		if err != nil {
			return query, opts, revenue.NewValidationError(revenue.ErrInvalidWindow, "yearly_window", raw)
		}
		opts.YearlyWindow = window
	}

	return query, opts, nil
}

// reportParams monta os parâmetros de URL que reproduzem a consulta e as opções
func reportParams(query domain.RevenueQuery, opts domain.ReportOptions, withStockID bool) url.Values {
	params := url.Values{}
	if withStockID {
		params.Set("stock_id", query.StockID)
	}
	if query.StartDate != "" {
		params.Set("start_date", query.StartDate)
	}
	if query.EndDate != "" {
		params.Set("end_date", query.EndDate)
	}
	params.Set("period", strconv.Itoa(opts.Period))
	params.Set("view", string(opts.View))
	params.Set("show_yoy", strconv.FormatBool(opts.ShowYoY))

	return params
}

// writeReportError responde os erros retornados pelo serviço de relatório
func writeReportError(w http.ResponseWriter, logger log.Logger, err error) {
	switch {
	case revenue.IsValidationError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, fetching.ErrSuperseded):
		apiErrors.WriteError(w, apiErrors.ErrSuperseded, err.Error(), nil)
	default:
		logger.WithError(err).Error("revenue: erro inesperado ao montar relatório")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar relatório de receita", nil)
	}
}

// failureCode converte a falha da busca no código de erro da API
func failureCode(failure domain.FailureKind) string {
	switch failure {
	case domain.FailureAPI:
		return apiErrors.ErrExternalService
	case domain.FailureTransport:
		return apiErrors.ErrCommunication
	case domain.FailureMalformed:
		return apiErrors.ErrMalformedData
	default:
		return apiErrors.ErrInternalServer
	}
}

// writeFetchFailure responde um relatório cuja busca na FinMind falhou, mantendo a mensagem original
func writeFetchFailure(w http.ResponseWriter, report *domain.RevenueReport) {
	apiErrors.WriteError(w, failureCode(report.Failure), report.Error, map[string]any{
		"stock_id": report.StockID,
		"failure":  report.Failure,
	})
}
