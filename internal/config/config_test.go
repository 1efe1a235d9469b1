package config

import (
	"testing"

	"github.com/hance08/kea-import/internal/constants"
	"github.com/stretchr/testify/assert"
)

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()

	assert.Equal(t, "OD", cfg.Defaults.JournalCode)
	assert.Empty(t, cfg.Defaults.Company)
	assert.Equal(t, constants.BalanceTolerance, cfg.Import.BalanceTolerance)
	assert.Equal(t, 3, cfg.Import.AccountMinDigits)
	assert.Equal(t, 10, cfg.Import.AccountMaxDigits)
	assert.Equal(t, "info", cfg.Log.Level)
}
