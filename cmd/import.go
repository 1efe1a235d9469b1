package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/hance08/kea-import/internal/config"
	"github.com/hance08/kea-import/internal/constants"
	"github.com/hance08/kea-import/internal/service"
	"github.com/hance08/kea-import/internal/ui/prompts"
	"github.com/hance08/kea-import/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type importFlags struct {
	Company     string
	JournalCode string
	DryRun      bool
	Yes         bool
	Balances    bool
}

type importRunner struct {
	svc   *service.Service
	cfg   *config.Config
	flags *importFlags
}

func NewImportCmd(svc *service.Service, cfg *config.Config) *cobra.Command {
	flags := &importFlags{}

	cmd := &cobra.Command{
		Use:     "import <file>",
		Aliases: []string{"i"},
		Short:   "Validate a spreadsheet and post its balanced vouchers",
		Long: `Read journal lines from an xlsx, xls or csv file and post them to the ledger.

Columns, in order: date, journal code, voucher reference, account code,
label, debit, credit. The first row is a header and is skipped.

Every line is checked. Lines are grouped into vouchers by reference; a
voucher whose debits and credits differ is skipped as a whole. Only valid
lines of balanced vouchers are posted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &importRunner{
				svc:   svc,
				cfg:   cfg,
				flags: flags,
			}
			return runner.Run(cmd.Context(), args[0])
		},
	}

	cmd.Flags().StringVarP(&flags.Company, "company", "C", "", "Company to post for (default from config)")
	cmd.Flags().StringVarP(&flags.JournalCode, "journal", "j", "", "Journal code for lines that leave it empty")
	cmd.Flags().BoolVarP(&flags.DryRun, "dry-run", "n", false, "Validate only, do not post")
	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Post without asking for confirmation")
	cmd.Flags().BoolVarP(&flags.Balances, "balances", "b", false, "Show every voucher, not only unbalanced ones")

	return cmd
}

func (r *importRunner) Run(ctx context.Context, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	importSvc := r.svc.Import
	if r.flags.JournalCode != "" {
		importSvc = importSvc.WithDefaultJournalCode(r.flags.JournalCode)
	}

	batch, err := importSvc.PrepareFile(path)
	if err != nil {
		return err
	}

	if err := renderBatch(batch, r.flags.Balances); err != nil {
		return err
	}

	if r.flags.DryRun {
		pterm.Info.Println("Dry run: nothing was posted")
		return nil
	}

	summary := batch.Summary()
	if summary.EligibleCount == 0 {
		pterm.Warning.Println("Nothing to import: no line is both valid and part of a balanced voucher")
		return nil
	}

	company := r.flags.Company
	if company == "" {
		company = r.cfg.Defaults.Company
	}
	if company == "" {
		company, err = prompts.PromptInput("Company to post for:", constants.DefaultCompany, nil)
		if err != nil {
			return err
		}
	}

	if !r.flags.Yes {
		confirm, err := prompts.PromptConfirm(
			fmt.Sprintf("Post %d lines for company %q?", summary.EligibleCount, company), true)
		if err != nil {
			return err
		}
		if !confirm {
			pterm.Info.Println("Import cancelled")
			return nil
		}
	}

	spinner, _ := pterm.DefaultSpinner.Start("Posting entries...")
	result, err := importSvc.Post(ctx, batch, company)
	if spinner != nil {
		_ = spinner.Stop()
	}
	if err != nil {
		if errors.Is(err, service.ErrNothingToImport) {
			pterm.Warning.Println("Nothing to import")
			return nil
		}
		return err
	}

	if err := views.RenderImportResult(result); err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("import of %s failed", path)
	}
	return nil
}

func renderBatch(batch *service.ImportBatch, allBalances bool) error {
	if err := views.RenderImportSummary(batch.Source(), batch.Summary()); err != nil {
		return err
	}
	if err := views.RenderDiagnostics(batch.Diagnostics()); err != nil {
		return err
	}
	if err := views.RenderSkippedRows(batch.SkippedUnbalanced()); err != nil {
		return err
	}
	return views.RenderVoucherBalances(batch.Balances(), !allBalances)
}
