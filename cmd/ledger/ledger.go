package ledger

import (
	"github.com/hance08/kea-import/internal/service"
	"github.com/spf13/cobra"
)

// NewLedgerCmd groups the commands that browse what imports have posted.
func NewLedgerCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ledger",
		Aliases: []string{"l"},
		Short:   "Browse the ledger",
		Long:    "Browse journals, accounts, entries and import batches posted by kea-import.",
	}

	cmd.AddCommand(NewJournalsCmd(svc))
	cmd.AddCommand(NewAccountsCmd(svc))
	cmd.AddCommand(NewEntriesCmd(svc))
	cmd.AddCommand(NewShowCmd(svc))
	cmd.AddCommand(NewBatchesCmd(svc))
	cmd.AddCommand(NewDeleteBatchCmd(svc))

	return cmd
}
