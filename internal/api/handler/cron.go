package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/revenue-dashboard/internal/scheduler"
	"github.com/vfg2006/revenue-dashboard/pkg/apiErrors"
	"github.com/vfg2006/revenue-dashboard/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeStockCatalog    = "stock-catalog"
	CronJobTypeFetchStatePrune = "fetch-state-prune"
	CronJobTypeAll             = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	StockCatalogSync scheduler.Job
	FetchStatePrune  scheduler.Job
}

// RunCronJob executa manualmente uma cron job específica
// @Summary Executa uma cron job
// @Tags cron
// @Produce json
// @Param type path string true "stock-catalog, fetch-state-prune ou all"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} apiErrors.APIError "Tipo inválido"
// @Router /v1/cron/{type}/run [post]
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeStockCatalog:
			if services.StockCatalogSync == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização do diretório de ações não disponível", nil)
				return
			}
			services.StockCatalogSync.TriggerManualSync()

		case CronJobTypeFetchStatePrune:
			if services.FetchStatePrune == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza de buscas não disponível", nil)
				return
			}
			services.FetchStatePrune.TriggerManualSync()

		case CronJobTypeAll:
			for _, job := range services.jobs() {
				job.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: stock-catalog, fetch-state-prune, all", nil)
			return
		}

		logger.WithField("cron_type", cronType).Info("cron: execução manual iniciada")

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
// @Summary Status das cron jobs
// @Tags cron
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /v1/cron/status [get]
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.StockCatalogSync != nil {
			status[CronJobTypeStockCatalog] = services.StockCatalogSync.GetStatus()
		}
		if services.FetchStatePrune != nil {
			status[CronJobTypeFetchStatePrune] = services.FetchStatePrune.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}

func (s CronJobServices) jobs() []scheduler.Job {
	jobs := make([]scheduler.Job, 0, 2)
	if s.StockCatalogSync != nil {
		jobs = append(jobs, s.StockCatalogSync)
	}
	if s.FetchStatePrune != nil {
		jobs = append(jobs, s.FetchStatePrune)
	}
	return jobs
}
