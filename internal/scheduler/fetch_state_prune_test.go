package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-dashboard/internal/config"
	"github.com/vfg2006/revenue-dashboard/internal/scheduler/mocks"
	"go.uber.org/mock/gomock"
)

func pruneConfig(enabled bool) *config.Config {
	return &config.Config{
		FetchStatePrune: config.FetchStatePrune{
			CronSchedule: "*/10 * * * *",
			MaxIdle:      30 * time.Minute,
			Enabled:      enabled,
		},
	}
}

func TestFetchStatePruneService_PruneFetchStates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPruner := mocks.NewMockFetchStatePruner(ctrl)
	mockPruner.EXPECT().Prune(30 * time.Minute).Return(3)

	service := NewFetchStatePruneService(mockPruner, pruneConfig(true))

	assert.Equal(t, 3, service.PruneFetchStates())

	status := service.GetStatus()
	assert.Equal(t, 3, status["last_pruned"])
	assert.Equal(t, "30m0s", status["max_idle"])
	assert.Equal(t, "*/10 * * * *", status["sync_cron"])
}

func TestFetchStatePruneService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPruner := mocks.NewMockFetchStatePruner(ctrl)
	pruned := make(chan struct{})
	mockPruner.EXPECT().
		Prune(gomock.Any()).
		DoAndReturn(func(time.Duration) int {
			close(pruned)
			return 0
		})

	service := NewFetchStatePruneService(mockPruner, pruneConfig(true))
	service.TriggerManualSync()

	select {
	case <-pruned:
	case <-time.After(2 * time.Second):
		t.Fatal("limpeza manual não executada")
	}
}

func TestFetchStatePruneService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	disabled := NewFetchStatePruneService(mocks.NewMockFetchStatePruner(ctrl), pruneConfig(false))
	require.NoError(t, disabled.Start(ctx))

	// Uma vez por ano, para não disparar durante o teste
	cfg := pruneConfig(true)
	cfg.FetchStatePrune.CronSchedule = "0 0 1 1 *"

	enabled := NewFetchStatePruneService(mocks.NewMockFetchStatePruner(ctrl), cfg)
	require.NoError(t, enabled.Start(ctx))
}
