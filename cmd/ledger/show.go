package ledger

import (
	"fmt"
	"strconv"

	"github.com/hance08/kea-import/internal/service"
	"github.com/hance08/kea-import/internal/store"
	"github.com/hance08/kea-import/internal/ui/prompts"
	"github.com/hance08/kea-import/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewShowCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "show [entry-id]",
		Short: "Show an entry and its lines",
		Long:  `Show one entry with its lines. Without an id, pick from the recent entries.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				id  int64
				err error
			)
			if len(args) == 1 {
				id, err = strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid entry ID: %s", args[0])
				}
			} else {
				id, err = pickEntry(svc)
				if err != nil {
					return err
				}
			}

			entry, lines, err := svc.Ledger.Entry(id)
			if err != nil {
				return err
			}
			return views.RenderEntryDetail(entry, lines)
		},
	}
}

func pickEntry(svc *service.Service) (int64, error) {
	entries, err := svc.Ledger.Entries(store.EntryFilter{Limit: 30})
	if err != nil {
		return 0, fmt.Errorf("failed to get entries: %w", err)
	}
	if len(entries) == 0 {
		return 0, fmt.Errorf("no entries found")
	}

	choices := make([]prompts.Choice[int64], 0, len(entries))
	for _, e := range entries {
		choices = append(choices, prompts.Choice[int64]{
			Key:   e.ID,
			Label: fmt.Sprintf("#%d  %s  %s/%s  %s", e.ID, e.EntryDate, e.JournalCode, e.EntryNumber, e.Description),
		})
	}

	return prompts.PromptSelect("Select an entry:", choices, entries[0].ID)
}
