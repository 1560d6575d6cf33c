package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/vfg2006/revenue-dashboard/docs"
	"github.com/vfg2006/revenue-dashboard/internal/api/handler/router"
	"github.com/vfg2006/revenue-dashboard/internal/usecases/fetching"
	"github.com/vfg2006/revenue-dashboard/internal/usecases/revenue"
	"github.com/vfg2006/revenue-dashboard/internal/usecases/stocks"
	"github.com/vfg2006/revenue-dashboard/internal/usecases/theming"
	"github.com/vfg2006/revenue-dashboard/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/healthcheck",
			Method:  http.MethodHead,
			Handler: HealthcheckHandler(),
		},
	}
}

func PageRoutes(pages *Pages) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: pages.Home(),
		},
		{
			Path:    "/about",
			Method:  http.MethodGet,
			Handler: pages.About(),
		},
		{
			Path:    "/financial-data",
			Method:  http.MethodGet,
			Handler: pages.FinancialData(),
		},
	}
}

func Theme(store theming.Store) []router.Route {
	return []router.Route{
		{
			Path:    "/theme/toggle",
			Method:  http.MethodPost,
			Handler: ToggleTheme(store),
		},
		{
			Path:    "/v1/theme",
			Method:  http.MethodGet,
			Handler: GetTheme(store),
		},
	}
}

func Stocks(searcher stocks.Searcher) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/stocks",
			Method:  http.MethodGet,
			Handler: SearchStocks(searcher),
		},
	}
}

func Revenue(reporter revenue.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/stocks/:id/revenue",
			Method:  http.MethodGet,
			Handler: GetRevenueReport(reporter),
		},
		{
			Path:    "/v1/stocks/:id/revenue/export",
			Method:  http.MethodGet,
			Handler: ExportRevenueReport(reporter),
		},
	}
}

func FetchState(reader fetching.StateReader) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/fetch-state",
			Method:  http.MethodGet,
			Handler: GetFetchState(reader),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

func Swagger() []router.Route {
	return []router.Route{
		{
			Path:    "/swagger/*any",
			Method:  http.MethodGet,
			Handler: httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")),
		},
	}
}

// MethodNotAllowed responde 405 no formato de erro da API; o httprouter já preenche o header Allow
func MethodNotAllowed() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não permitido", map[string]string{
			"method": r.Method,
			"allow":  w.Header().Get("Allow"),
		})
	})
}
