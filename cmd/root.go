package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/hance08/kea-import/cmd/ledger"
	"github.com/hance08/kea-import/internal/app"
	"github.com/hance08/kea-import/internal/config"
	"github.com/hance08/kea-import/internal/constants"
	"github.com/hance08/kea-import/internal/errhandler"
	"github.com/hance08/kea-import/internal/ui/prompts"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	// a .env next to the working directory may carry KEA_* overrides
	_ = godotenv.Load()

	cfgFile = configFlag(os.Args[1:])

	if err := initConfig(); err != nil {
		errhandler.HandleError(err)
	}

	if err := initDefaults(); err != nil {
		errhandler.HandleError(err)
	}

	application, cleanup, err := app.NewApp(cfg, migrations)
	if err != nil {
		errhandler.HandleError(err)
	}

	rootCmd := &cobra.Command{
		Use:   "kea-import",
		Short: "kea-import validates and posts journal entries from spreadsheets",
		Long: `kea-import reads journal lines from xlsx, xls or csv files, checks every
line and every voucher, and posts the balanced vouchers into a local ledger.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(NewImportCmd(application.Service, cfg))
	rootCmd.AddCommand(NewCheckCmd(application.Service))
	rootCmd.AddCommand(NewTemplateCmd())
	rootCmd.AddCommand(NewInfoCmd(cfg, application.DBPath, application.Schema))
	rootCmd.AddCommand(ledger.NewLedgerCmd(application.Service))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = rootCmd.ExecuteContext(ctx)
	stop()
	cleanup()
	if err != nil {
		errhandler.HandleError(err)
	}
}

// configFlag pulls --config out of args before cobra runs, since the
// config is needed to build the commands.
func configFlag(args []string) string {
	flags := pflag.NewFlagSet("config", pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.SetOutput(io.Discard)
	flags.Usage = func() {}

	path := flags.StringP("config", "c", "", "")
	_ = flags.Parse(args)
	return *path
}

func initConfig() error {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.DataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix("KEA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	dbPath, err := expandPath(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("invalid database path: %w", err)
	}
	cfg.Database.Path = dbPath
	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

func setDefaults() {
	d := config.NewDefault()
	viper.SetDefault("database.path", d.Database.Path)
	viper.SetDefault("defaults.journal_code", d.Defaults.JournalCode)
	viper.SetDefault("defaults.company", d.Defaults.Company)
	viper.SetDefault("import.balance_tolerance", d.Import.BalanceTolerance)
	viper.SetDefault("import.account_min_digits", d.Import.AccountMinDigits)
	viper.SetDefault("import.account_max_digits", d.Import.AccountMaxDigits)
	viper.SetDefault("log.level", d.Log.Level)
	viper.SetDefault("log.format", d.Log.Format)
}

// initDefaults runs the first-run wizard when no default company is set.
func initDefaults() error {
	if cfg.Defaults.Company != "" {
		return nil
	}

	journal := cfg.Defaults.JournalCode
	if journal == "" {
		journal = constants.DefaultJournalCode
	}

	settings, err := prompts.PromptInitSettings(prompts.InitSettings{
		Company:     constants.DefaultCompany,
		JournalCode: journal,
	})
	if err != nil {
		return err
	}

	viper.Set("defaults.company", settings.Company)
	viper.Set("defaults.journal_code", settings.JournalCode)

	if err := viper.WriteConfig(); err != nil {
		return fmt.Errorf("failed to save config to file: %w", err)
	}

	cfg.Defaults.Company = settings.Company
	cfg.Defaults.JournalCode = settings.JournalCode

	pterm.Success.Printf("Configuration saved. Default company set to: %s\n", settings.Company)
	return nil
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
