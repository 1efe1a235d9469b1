package ledger

import (
	"fmt"

	"github.com/hance08/kea-import/internal/service"
	"github.com/hance08/kea-import/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewBatchesCmd(svc *service.Service) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "batches",
		Aliases: []string{"b"},
		Short:   "List import batches",
		RunE: func(cmd *cobra.Command, args []string) error {
			batches, err := svc.Ledger.Batches(limit)
			if err != nil {
				return fmt.Errorf("failed to get import batches: %w", err)
			}
			return views.RenderBatchList(batches)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Maximum number of batches to display")

	return cmd
}
