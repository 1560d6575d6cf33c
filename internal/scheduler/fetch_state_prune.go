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

// FetchStatePruneConfig representa a configuração da limpeza de estados de busca
type FetchStatePruneConfig struct {
	CronSchedule string
	MaxIdle      time.Duration
	SyncEnabled  bool
}

// FetchStatePruneService remove periodicamente os estados de busca de visitantes inativos
type FetchStatePruneService struct {
	scheduler           *gocron.Scheduler
	pruner              FetchStatePruner
	config              FetchStatePruneConfig
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastPruned          int
}

// NewFetchStatePruneService cria uma nova instância do serviço de limpeza
func NewFetchStatePruneService(pruner FetchStatePruner, cfg *config.Config) *FetchStatePruneService {
	pruneConfig := FetchStatePruneConfig{
		CronSchedule: cfg.FetchStatePrune.CronSchedule, // Default: a cada 10 minutos
		MaxIdle:      cfg.FetchStatePrune.MaxIdle,
		SyncEnabled:  cfg.FetchStatePrune.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": pruneConfig.CronSchedule,
		"max_idle":      pruneConfig.MaxIdle.String(),
		"sync_enabled":  pruneConfig.SyncEnabled,
	}).Info("Configuração da limpeza de estados de busca carregada")

	return &FetchStatePruneService{
		scheduler: gocron.NewScheduler(time.Local),
		pruner:    pruner,
		config:    pruneConfig,
	}
}

func (s *FetchStatePruneService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de limpeza de estados de busca desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de limpeza de estados de busca")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.PruneFetchStates()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de estados de busca: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de limpeza de estados de busca")
		s.scheduler.Stop()
	}()

	return nil
}

// PruneFetchStates remove os visitantes inativos há mais tempo que o configurado
func (s *FetchStatePruneService) PruneFetchStates() int {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.lastSyncStartedAt = time.Now()

	removed := s.pruner.Prune(s.config.MaxIdle)

	s.lastSyncCompletedAt = time.Now()
	s.lastPruned = removed

	if removed > 0 {
		logrus.WithField("removed", removed).Info("Estados de busca inativos removidos")
	}

	return removed
}

// TriggerManualSync executa a limpeza imediatamente
func (s *FetchStatePruneService) TriggerManualSync() {
	logrus.Info("Iniciando limpeza manual de estados de busca")
	go s.PruneFetchStates()
}

// GetStatus retorna o status atual do agendador
func (s *FetchStatePruneService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"max_idle":               s.config.MaxIdle.String(),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_pruned":            s.lastPruned,
	}
}
