package config

import "github.com/hance08/kea-import/internal/constants"

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Import     ImportConfig   `mapstructure:"import"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type DefaultsConfig struct {
	JournalCode string `mapstructure:"journal_code"`
	Company     string `mapstructure:"company"`
}

type ImportConfig struct {
	// BalanceTolerance is the epsilon below which a voucher's
	// |debit - credit| counts as balanced.
	BalanceTolerance float64 `mapstructure:"balance_tolerance"`
	AccountMinDigits int     `mapstructure:"account_min_digits"`
	AccountMaxDigits int     `mapstructure:"account_max_digits"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text or json
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Defaults: DefaultsConfig{
			JournalCode: constants.DefaultJournalCode,
			Company:     "",
		},
		Import: ImportConfig{
			BalanceTolerance: constants.BalanceTolerance,
			AccountMinDigits: constants.AccountMinDigits,
			AccountMaxDigits: constants.AccountMaxDigits,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
