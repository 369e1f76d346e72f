package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 10, cfg.Upload.MaxSizeMB)
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxBytes())
	assert.Equal(t, 20, cfg.Parser.MaxTransactions)
	assert.Equal(t, 1, cfg.Parser.MinKeywordScore)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STMT_SERVER_PORT", "9090")
	t.Setenv("STMT_UPLOAD_MAX_SIZE_MB", "5")
	t.Setenv("STMT_PARSER_MAX_TRANSACTIONS", "50")
	t.Setenv("STMT_LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Upload.MaxSizeMB)
	assert.Equal(t, int64(5<<20), cfg.Upload.MaxBytes())
	assert.Equal(t, 50, cfg.Parser.MaxTransactions)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("bad log format", func(t *testing.T) {
		t.Setenv("STMT_LOG_FORMAT", "xml")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("non-positive upload ceiling", func(t *testing.T) {
		t.Setenv("STMT_UPLOAD_MAX_SIZE_MB", "0")
		_, err := Load()
		assert.Error(t, err)
	})
}
