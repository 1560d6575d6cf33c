package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryOf(t *testing.T, l Logger) *logrus.Entry {
	t.Helper()
	impl, ok := l.(*logger)
	require.True(t, ok)
	return impl.entry
}

func TestForContext(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	ctx, correlationID := WithCorrelationID(context.Background())
	ctx = WithViewerID(ctx, "viewer-1")

	entry := entryOf(t, ForContext(ctx))
	assert.Equal(t, correlationID, entry.Data["correlation_id"])
	assert.Equal(t, "viewer-1", entry.Data["viewer_id"])
	assert.Equal(t, correlationID, GetCorrelationID(ctx))
}

func TestForContext_EmptyContext(t *testing.T) {
	entry := entryOf(t, ForContext(context.Background()))
	assert.Empty(t, entry.Data)
}

func TestWithFields_DevelopmentFilter(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	entry := entryOf(t, L.WithFields(Fields{
		"stock_id":    "2867",
		"viewer_id":   "abc",
		"status_code": 200,
		"user_agent":  "curl",
	}))

	assert.Equal(t, "2867", entry.Data["stock_id"])
	assert.Equal(t, "abc", entry.Data["viewer_id"])
	assert.Equal(t, 200, entry.Data["status_code"])
	assert.NotContains(t, entry.Data, "user_agent")
}

func TestWithFields_Production(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	entry := entryOf(t, L.WithFields(Fields{"user_agent": "curl"}))
	assert.Equal(t, "curl", entry.Data["user_agent"])
}
