package cmd

import (
	"fmt"
	"strings"

	"github.com/hance08/kea-import/internal/service"
	"github.com/hance08/kea-import/internal/utils"
	"github.com/spf13/cobra"
)

type checkFlags struct {
	Strict   bool
	Balances bool
}

type checkRunner struct {
	svc   *service.Service
	flags *checkFlags
}

func NewCheckCmd(svc *service.Service) *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a spreadsheet without posting",
		Long: `Run every line and voucher check on a file and print the problems found.
Nothing is written to the ledger. With --strict the command fails when any
line is invalid or any voucher is unbalanced.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &checkRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(args[0])
		},
	}

	cmd.Flags().BoolVarP(&flags.Strict, "strict", "s", false, "Fail when the file has any problem")
	cmd.Flags().BoolVarP(&flags.Balances, "balances", "b", false, "Show every voucher, not only unbalanced ones")

	return cmd
}

func (r *checkRunner) Run(path string) error {
	batch, err := r.svc.Import.PrepareFile(path)
	if err != nil {
		return err
	}

	if err := renderBatch(batch, r.flags.Balances); err != nil {
		return err
	}

	if !r.flags.Strict {
		return nil
	}
	if invalid := batch.Invalid(); len(invalid) > 0 {
		return fmt.Errorf("%d invalid rows, first at row %d: %s",
			len(invalid), invalid[0].RowIndex, strings.Join(invalid[0].Violations, "; "))
	}
	if unbalanced := batch.UnbalancedVouchers(); len(unbalanced) > 0 {
		return fmt.Errorf("%d unbalanced vouchers, first is %s (difference %s)",
			len(unbalanced), unbalanced[0].VoucherRef, utils.FormatAmount(unbalanced[0].Difference()))
	}
	return nil
}
