// Package scheduler contém os serviços de agendamento das tarefas em segundo plano
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-dashboard/internal/config"
)

// StockCatalogSyncConfig representa a configuração do agendador do diretório de ações
type StockCatalogSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	SyncOnStart  bool
}

// StockCatalogSyncService atualiza periodicamente o diretório de ações (TaiwanStockInfo)
type StockCatalogSyncService struct {
	scheduler           *gocron.Scheduler
	catalog             CatalogRefresher
	config              StockCatalogSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncStocks      int
	lastSyncError       string
}

// NewStockCatalogSyncService cria uma nova instância do serviço de sincronização do diretório
func NewStockCatalogSyncService(catalog CatalogRefresher, cfg *config.Config) *StockCatalogSyncService {
	syncConfig := StockCatalogSyncConfig{
		CronSchedule: cfg.StockCatalogSync.CronSchedule, // Default: 6h da manhã todos os dias
		SyncEnabled:  cfg.StockCatalogSync.Enabled,
		SyncOnStart:  cfg.StockCatalogSync.SyncOnStart,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
		"sync_on_start": syncConfig.SyncOnStart,
	}).Info("Configuração do agendador do diretório de ações carregada")

	return &StockCatalogSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		catalog:   catalog,
		config:    syncConfig,
	}
}

// Start agenda a sincronização e, se configurado, executa uma vez na inicialização
func (s *StockCatalogSyncService) Start(ctx context.Context) error {
	if s.config.SyncOnStart {
		go s.SyncStockCatalog(ctx)
	}

	if !s.config.SyncEnabled {
		logrus.Info("Cron de sincronização do diretório de ações desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de sincronização do diretório de ações")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncStockCatalog(ctx); err != nil {
			logrus.WithError(err).Error("Erro na sincronização do diretório de ações")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do diretório de ações: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do diretório de ações")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncStockCatalog recarrega o diretório. Execuções simultâneas são ignoradas.
func (s *StockCatalogSyncService) SyncStockCatalog(ctx context.Context) error {
	if !s.begin() {
		logrus.Warn("Sincronização do diretório de ações já está em execução")
		return nil
	}

	logrus.Info("Iniciando sincronização do diretório de ações")

	stocks, err := s.catalog.Refresh(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	} else {
		s.lastSyncStocks = stocks
	}
	s.syncMutex.Unlock()

	if err != nil {
		return err
	}

	logrus.WithField("stocks", stocks).Info("Sincronização do diretório de ações concluída")
	return nil
}

func (s *StockCatalogSyncService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

// TriggerManualSync inicia manualmente uma sincronização do diretório de ações
func (s *StockCatalogSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do diretório de ações já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual do diretório de ações")
	go func() {
		if err := s.SyncStockCatalog(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na sincronização manual do diretório de ações")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *StockCatalogSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_stocks":       s.lastSyncStocks,
		"last_sync_error":        s.lastSyncError,
	}
}
