package handler

import (
	"net/http"

	"github.com/vfg2006/revenue-dashboard/internal/usecases/fetching"
	"github.com/vfg2006/revenue-dashboard/pkg/apiErrors"
	"github.com/vfg2006/revenue-dashboard/pkg/log"
	"github.com/vfg2006/revenue-dashboard/pkg/middleware"
)

// GetFetchState retorna o estado da última busca do visitante (loading, error ou success)
// @Summary Estado da última busca
// @Tags revenue
// @Produce json
// @Success 200 {object} domain.FetchState
// @Failure 404 {object} apiErrors.APIError "Nenhuma busca para este visitante"
// @Router /v1/fetch-state [get]
func GetFetchState(reader fetching.StateReader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		viewerID := middleware.ViewerID(r.Context())

		state, found := reader.State(viewerID)
		if !found {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Nenhuma busca registrada para este visitante", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(state); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("fetch-state: erro ao codificar resposta")
		}
	})
}
