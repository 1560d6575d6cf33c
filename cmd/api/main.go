package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-dashboard/infrastructure/integrator/finmind"
	"github.com/vfg2006/revenue-dashboard/infrastructure/integrator/finmind/finmindclient"
	"github.com/vfg2006/revenue-dashboard/internal/api"
	"github.com/vfg2006/revenue-dashboard/internal/api/handler"
	"github.com/vfg2006/revenue-dashboard/internal/config"
	"github.com/vfg2006/revenue-dashboard/internal/scheduler"
	"github.com/vfg2006/revenue-dashboard/internal/usecases/fetching"
	"github.com/vfg2006/revenue-dashboard/internal/usecases/revenue"
	"github.com/vfg2006/revenue-dashboard/internal/usecases/stocks"
	"github.com/vfg2006/revenue-dashboard/internal/usecases/theming"
	"github.com/vfg2006/revenue-dashboard/pkg/log"
)

// @title Revenue Dashboard API
// @version 1.0
// @description Receita mensal de ações a partir da FinMind, com séries mensais, anuais e crescimento anual.
// @BasePath /
func main() {
	// O .env é procurado a partir do diretório do binário
	changeToSourceDir()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	finmindClient := finmindclient.NewClient(cfg)
	finmindIntegrator := finmind.New(cfg, finmindClient)

	tracker := fetching.NewTracker(finmindIntegrator)
	catalog := stocks.NewCatalog(finmindIntegrator)

	reporter := revenue.NewService(cfg, tracker, catalog)
	themeStore := theming.NewCookieStore(cfg)

	stockCatalogSyncService := scheduler.NewStockCatalogSyncService(catalog, cfg)
	fetchStatePruneService := scheduler.NewFetchStatePruneService(tracker, cfg)

	// Inicia os agendadores em background
	if err := stockCatalogSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização do diretório de ações")
	} else {
		logrus.Info("Agendador de sincronização do diretório de ações iniciado com sucesso")
	}

	if err := fetchStatePruneService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de buscas")
	} else {
		logrus.Info("Agendador de limpeza de buscas iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Reporter:    reporter,
		Stocks:      catalog,
		FetchStates: tracker,
		Theme:       themeStore,
		CronJobs: handler.CronJobServices{
			StockCatalogSync: stockCatalogSyncService,
			FetchStatePrune:  fetchStatePruneService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func changeToSourceDir() {
	_, file, _, _ := runtime.Caller(0)
	os.Chdir(path.Dir(file))
}
