package api

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-dashboard/internal/api/handler"
	"github.com/vfg2006/revenue-dashboard/internal/api/handler/router"
	"github.com/vfg2006/revenue-dashboard/internal/config"
	"github.com/vfg2006/revenue-dashboard/internal/usecases/fetching"
	"github.com/vfg2006/revenue-dashboard/internal/usecases/revenue"
	"github.com/vfg2006/revenue-dashboard/internal/usecases/stocks"
	"github.com/vfg2006/revenue-dashboard/internal/usecases/theming"
	"github.com/vfg2006/revenue-dashboard/pkg/middleware"
	"github.com/vfg2006/revenue-dashboard/web"
)

type Server struct {
	httpServer *http.Server
}

// Services reúne as dependências usadas pelas rotas
type Services struct {
	Reporter    revenue.Reporter
	Stocks      stocks.Searcher
	FetchStates fetching.StateReader
	Theme       theming.Store
	CronJobs    handler.CronJobServices
}

func New(config *config.Config, services Services) (*Server, error) {
	h, err := NewHandler(config, services)
	if err != nil {
		return nil, err
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           h,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com todas as rotas e a cadeia de middlewares
func NewHandler(config *config.Config, services Services) (http.Handler, error) {
	pages, err := handler.NewPages(services.Theme, services.Reporter)
	if err != nil {
		return nil, err
	}

	static, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar arquivos estáticos")
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.PageRoutes(pages)...),
		router.WithRoutes(handler.Theme(services.Theme)...),
		router.WithRoutes(handler.Stocks(services.Stocks)...),
		router.WithRoutes(handler.Revenue(services.Reporter)...),
		router.WithRoutes(handler.FetchState(services.FetchStates)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
		router.WithRoutes(handler.Swagger()...),
		router.WithStatic("/static/*filepath", static),
		router.WithNotFound(handler.NotFound()),
		router.WithMethodNotAllowed(handler.MethodNotAllowed()),
	)

	logrus.WithField("routes", len(rt.Routes())).Debug("Rotas registradas")

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
		middleware.ViewerMiddleware(config.Viewer.CookieMaxAge),
	}

	return alice.New(middlewares...).Then(rt), nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
