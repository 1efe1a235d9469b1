package ledger

import (
	"fmt"

	"github.com/hance08/kea-import/internal/service"
	"github.com/hance08/kea-import/internal/ui/views"
	"github.com/spf13/cobra"
)

type accountsFlags struct {
	Class int
}

type accountsRunner struct {
	svc   *service.Service
	flags *accountsFlags
}

func NewAccountsCmd(svc *service.Service) *cobra.Command {
	flags := &accountsFlags{}

	cmd := &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"a"},
		Short:   "List accounts",
		Long: `List the accounts of the ledger, optionally restricted to one class
of the chart of accounts (1 to 7).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &accountsRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().IntVarP(&flags.Class, "class", "k", 0, "Only show accounts of this class")

	return cmd
}

func (r *accountsRunner) Run() error {
	if r.flags.Class < 0 || r.flags.Class > 9 {
		return fmt.Errorf("invalid account class %d (must be 1 to 9)", r.flags.Class)
	}

	accounts, err := r.svc.Ledger.Accounts(r.flags.Class)
	if err != nil {
		return fmt.Errorf("failed to get accounts: %w", err)
	}

	return views.NewAccountListView().Render(accounts)
}
