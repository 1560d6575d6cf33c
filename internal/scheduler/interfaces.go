package scheduler

import (
	"context"
	"time"
)

// CatalogRefresher recarrega o diretório de ações
type CatalogRefresher interface {
	Refresh(ctx context.Context) (int, error)
}

// FetchStatePruner remove estados de busca de visitantes inativos
type FetchStatePruner interface {
	Prune(maxIdle time.Duration) int
}

// Job é um agendador que pode ser executado manualmente e informa seu status
type Job interface {
	TriggerManualSync()
	GetStatus() map[string]any
}
