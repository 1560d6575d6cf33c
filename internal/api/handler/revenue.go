package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/revenue-dashboard/internal/domain"
	"github.com/vfg2006/revenue-dashboard/internal/usecases/revenue"
	"github.com/vfg2006/revenue-dashboard/pkg/apiErrors"
	"github.com/vfg2006/revenue-dashboard/pkg/log"
	"github.com/vfg2006/revenue-dashboard/pkg/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GetRevenueReport retorna o relatório de receita mensal de uma ação
// @Summary Relatório de receita mensal
// @Description Busca a receita mensal na FinMind e retorna séries mensal e anual, tabelas e dados do gráfico
// @Tags revenue
// @Produce json
// @Param id path string true "Código da ação"
// @Param start_date query string false "Data inicial (yyyy-mm-dd)"
// @Param end_date query string false "Data final (yyyy-mm-dd)"
// @Param period query int false "Últimos N meses (0, 12, 36, 60)"
// @Param view query string false "monthly ou yearly"
// @Param show_yoy query bool false "Inclui a linha de crescimento anual"
// @Param yearly_window query int false "Últimos N anos da série anual"
// @Success 200 {object} domain.RevenueReport
// @Failure 400 {object} apiErrors.APIError "Parâmetros inválidos"
// @Failure 409 {object} apiErrors.APIError "Busca substituída por outra mais recente"
// @Failure 502 {object} apiErrors.APIError "Erro retornado pela FinMind"
// @Failure 503 {object} apiErrors.APIError "Falha de comunicação com a FinMind"
// @Router /v1/stocks/{id}/revenue [get]
func GetRevenueReport(reporter revenue.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		report, ok := loadReport(w, r, reporter)
		if !ok {
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("revenue: erro ao codificar resposta")
		}
	})
}

// ExportRevenueReport gera a planilha com as tabelas mensal e anual
// @Summary Exporta o relatório em xlsx
// @Tags revenue
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Código da ação"
// @Param start_date query string false "Data inicial (yyyy-mm-dd)"
// @Param end_date query string false "Data final (yyyy-mm-dd)"
// @Param period query int false "Últimos N meses (0, 12, 36, 60)"
// @Success 200 {file} file
// @Failure 400 {object} apiErrors.APIError "Parâmetros inválidos"
// @Failure 502 {object} apiErrors.APIError "Erro retornado pela FinMind"
// @Router /v1/stocks/{id}/revenue/export [get]
func ExportRevenueReport(reporter revenue.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		report, ok := loadReport(w, r, reporter)
		if !ok {
			return
		}

		var buf bytes.Buffer
		if err := revenue.WriteWorkbook(report, &buf); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("revenue: erro ao gerar planilha")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar planilha", nil)
			return
		}

		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="revenue_%s.xlsx"`, report.StockID))
		w.Write(buf.Bytes())
	})
}

// loadReport lê os parâmetros, monta o relatório e já responde os casos de erro
func loadReport(w http.ResponseWriter, r *http.Request, reporter revenue.Reporter) (*domain.RevenueReport, bool) {
	logger := log.ForContext(r.Context())

	stockID := httprouter.ParamsFromContext(r.Context()).ByName("id")

	query, opts, err := parseReportRequest(r.URL.Query(), reporter, stockID)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return nil, false
	}

	report, err := reporter.GetReport(r.Context(), middleware.ViewerID(r.Context()), query, opts)
	if err != nil {
		writeReportError(w, logger, err)
		return nil, false
	}

	if report.Status != domain.FetchSuccess {
		logger.WithFields(log.Fields{
			"stock_id": report.StockID,
			"error":    report.Error,
		}).Warn("revenue: busca na FinMind falhou")
		writeFetchFailure(w, report)
		return nil, false
	}

	return report, true
}
