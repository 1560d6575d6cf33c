package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-dashboard/internal/config"
	"github.com/vfg2006/revenue-dashboard/internal/scheduler/mocks"
	"go.uber.org/mock/gomock"
)

func catalogSyncConfig(enabled, onStart bool, cron string) *config.Config {
	return &config.Config{
		StockCatalogSync: config.StockCatalogSync{
			CronSchedule: cron,
			Enabled:      enabled,
			SyncOnStart:  onStart,
		},
	}
}

func TestStockCatalogSyncService_SyncStockCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := mocks.NewMockCatalogRefresher(ctrl)

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, err error, status map[string]any)
	}{
		{
			name: "Sincronização com sucesso registra a quantidade de ações",
			setup: func() {
				mockCatalog.EXPECT().Refresh(gomock.Any()).Return(1850, nil)
			},
			validate: func(t *testing.T, err error, status map[string]any) {
				require.NoError(t, err)
				assert.Equal(t, 1850, status["last_sync_stocks"])
				assert.Equal(t, "", status["last_sync_error"])
				assert.Equal(t, false, status["sync_running"])
				assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
			},
		},
		{
			name: "Erro na FinMind fica registrado no status",
			setup: func() {
				mockCatalog.EXPECT().Refresh(gomock.Any()).Return(0, errors.New("HTTP error! status: 500"))
			},
			validate: func(t *testing.T, err error, status map[string]any) {
				require.Error(t, err)
				assert.Equal(t, "HTTP error! status: 500", status["last_sync_error"])
				assert.Equal(t, false, status["sync_running"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewStockCatalogSyncService(mockCatalog, catalogSyncConfig(true, false, "0 6 * * *"))
			tt.setup()

			err := service.SyncStockCatalog(context.Background())
			tt.validate(t, err, service.GetStatus())
		})
	}
}

func TestStockCatalogSyncService_IgnoresConcurrentRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := mocks.NewMockCatalogRefresher(ctrl)
	service := NewStockCatalogSyncService(mockCatalog, catalogSyncConfig(true, false, "0 6 * * *"))

	started := make(chan struct{})
	release := make(chan struct{})

	mockCatalog.EXPECT().
		Refresh(gomock.Any()).
		DoAndReturn(func(context.Context) (int, error) {
			close(started)
			<-release
			return 10, nil
		}).
		Times(1)

	done := make(chan error)
	go func() {
		done <- service.SyncStockCatalog(context.Background())
	}()

	<-started
	assert.Equal(t, true, service.GetStatus()["sync_running"])

	// Segunda execução é ignorada enquanto a primeira não termina
	require.NoError(t, service.SyncStockCatalog(context.Background()))
	service.TriggerManualSync()

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, 10, service.GetStatus()["last_sync_stocks"])
}

func TestStockCatalogSyncService_Start(t *testing.T) {
	t.Run("Desabilitada não agenda nada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewStockCatalogSyncService(mocks.NewMockCatalogRefresher(ctrl), catalogSyncConfig(false, false, "0 6 * * *"))

		require.NoError(t, service.Start(context.Background()))
		assert.Equal(t, false, service.GetStatus()["sync_enabled"])
	})

	t.Run("Cron inválida retorna erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewStockCatalogSyncService(mocks.NewMockCatalogRefresher(ctrl), catalogSyncConfig(true, false, "todo dia"))

		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("Sincroniza na inicialização", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockCatalog := mocks.NewMockCatalogRefresher(ctrl)

		synced := make(chan struct{})
		mockCatalog.EXPECT().
			Refresh(gomock.Any()).
			DoAndReturn(func(context.Context) (int, error) {
				close(synced)
				return 5, nil
			})

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		service := NewStockCatalogSyncService(mockCatalog, catalogSyncConfig(true, true, "0 6 * * *"))
		require.NoError(t, service.Start(ctx))

		select {
		case <-synced:
		case <-time.After(2 * time.Second):
			t.Fatal("sincronização inicial não executada")
		}
	})
}
