package ledger

import (
	"fmt"

	"github.com/hance08/kea-import/internal/service"
	"github.com/hance08/kea-import/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewJournalsCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:     "journals",
		Aliases: []string{"j"},
		Short:   "List journals",
		RunE: func(cmd *cobra.Command, args []string) error {
			journals, err := svc.Ledger.Journals()
			if err != nil {
				return fmt.Errorf("failed to get journals: %w", err)
			}
			return views.RenderJournalList(journals)
		},
	}
}
