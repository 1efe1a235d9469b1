package cmd

import (
	"fmt"
	"os"

	"github.com/hance08/kea-import/internal/app"
	"github.com/hance08/kea-import/internal/config"
	"github.com/hance08/kea-import/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	cfg    *config.Config
	dbPath string
	schema uint
}

func NewInfoCmd(cfg *config.Config, dbPath string, schema uint) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database path, and import settings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				cfg:    cfg,
				dbPath: dbPath,
				schema: schema,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	configPath := r.cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	dbExists := false
	if _, err := os.Stat(r.dbPath); err == nil {
		dbExists = true
	}

	items := views.SystemInfoItem{
		ConfigPath:         configPath,
		DBPath:             r.dbPath,
		DBExists:           dbExists,
		SchemaVersion:      r.schema,
		DefaultCompany:     r.cfg.Defaults.Company,
		DefaultJournalCode: r.cfg.Defaults.JournalCode,
		BalanceTolerance:   fmt.Sprintf("%.2f", r.cfg.Import.BalanceTolerance),
		AccountDigits:      fmt.Sprintf("%d to %d", r.cfg.Import.AccountMinDigits, r.cfg.Import.AccountMaxDigits),
		AppDataDir:         getAppDataDirOrUnknown(),
	}

	return views.RenderSystemInfo(items)
}

func getAppDataDirOrUnknown() string {
	dir, err := app.DataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
