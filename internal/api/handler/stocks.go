package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/revenue-dashboard/internal/usecases/stocks"
	"github.com/vfg2006/revenue-dashboard/pkg/apiErrors"
	"github.com/vfg2006/revenue-dashboard/pkg/log"
)

const maxSearchLimit = 100

// SearchStocks procura ações por código ou nome para o campo de busca da página
// @Summary Busca de ações
// @Description Procura por prefixo do código ou parte do nome. Códigos exatos vêm primeiro.
// @Tags stocks
// @Produce json
// @Param q query string false "Código ou nome"
// @Param limit query int false "Máximo de resultados (padrão 20, máximo 100)"
// @Success 200 {array} domain.StockInfo
// @Failure 400 {object} apiErrors.APIError "Limite inválido"
// @Router /v1/stocks [get]
func SearchStocks(searcher stocks.Searcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")

		limit := stocks.DefaultSearchLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um número positivo", nil)
				return
			}
			limit = min(parsed, maxSearchLimit)
		}

		result := searcher.Search(q, limit)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("stocks: erro ao codificar resposta")
		}
	})
}
