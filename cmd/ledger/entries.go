package ledger

import (
	"fmt"
	"strings"

	"github.com/hance08/kea-import/internal/service"
	"github.com/hance08/kea-import/internal/store"
	"github.com/hance08/kea-import/internal/ui/views"
	"github.com/hance08/kea-import/internal/validation"
	"github.com/spf13/cobra"
)

type entriesFlags struct {
	Journal string
	Batch   string
	From    string
	To      string
	Limit   int
}

type entriesRunner struct {
	svc   *service.Service
	flags *entriesFlags
}

func NewEntriesCmd(svc *service.Service) *cobra.Command {
	flags := &entriesFlags{}

	cmd := &cobra.Command{
		Use:     "entries",
		Aliases: []string{"e", "ls"},
		Short:   "List recent entries",
		Long: `List entries, newest first, with their debit and credit totals.
Filter by journal, import batch or date range.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &entriesRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Journal, "journal", "j", "", "Filter by journal code")
	cmd.Flags().StringVarP(&flags.Batch, "batch", "b", "", "Filter by import batch id")
	cmd.Flags().StringVar(&flags.From, "from", "", "First entry date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.To, "to", "", "Last entry date (YYYY-MM-DD)")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 20, "Maximum number of entries to display")

	return cmd
}

func (r *entriesRunner) Run() error {
	for _, d := range []string{r.flags.From, r.flags.To} {
		if err := validation.ValidateDate(d); err != nil {
			return err
		}
	}

	filter := store.EntryFilter{
		JournalCode: strings.ToUpper(strings.TrimSpace(r.flags.Journal)),
		BatchID:     r.flags.Batch,
		From:        r.flags.From,
		To:          r.flags.To,
		Limit:       r.flags.Limit,
	}

	entries, err := r.svc.Ledger.Entries(filter)
	if err != nil {
		return fmt.Errorf("failed to get entries: %w", err)
	}

	return views.NewEntryListView().Render(entries, r.flags.Limit)
}
