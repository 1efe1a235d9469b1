package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hance08/kea-import/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Database.Path = filepath.Join(t.TempDir(), "nested", "ledger.db")

	application, cleanup, err := NewApp(cfg, os.DirFS("../.."))
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, cfg.Database.Path, application.DBPath)
	assert.Equal(t, uint(1), application.Schema)
	assert.NotNil(t, application.Service.Import)
	assert.NotNil(t, application.Service.Ledger)

	journals, err := application.Service.Ledger.Journals()
	require.NoError(t, err)
	assert.Empty(t, journals)
}

func TestNewAppRejectsBadImportConfig(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Database.Path = filepath.Join(t.TempDir(), "ledger.db")
	cfg.Import.AccountMaxDigits = 1

	_, _, err := NewApp(cfg, os.DirFS("../.."))
	assert.Error(t, err)
}
