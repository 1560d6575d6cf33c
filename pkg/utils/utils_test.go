package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2015-01-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC), *date)

	date, err = ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, date)

	_, err = ParseDate("2015/01/01")
	assert.Error(t, err)
}

func TestGenerateViewerID(t *testing.T) {
	first, err := GenerateViewerID()
	require.NoError(t, err)
	second, err := GenerateViewerID()
	require.NoError(t, err)

	assert.Len(t, first, 21)
	assert.NotEqual(t, first, second)
	assert.Regexp(t, "^[A-Za-z0-9]+$", first)
}
