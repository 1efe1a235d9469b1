package ledger

import (
	"github.com/hance08/kea-import/internal/service"
	"github.com/hance08/kea-import/internal/ui"
	"github.com/hance08/kea-import/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type deleteBatchFlags struct {
	Yes bool
}

type deleteBatchRunner struct {
	svc   *service.Service
	flags *deleteBatchFlags
}

func NewDeleteBatchCmd(svc *service.Service) *cobra.Command {
	flags := &deleteBatchFlags{}

	cmd := &cobra.Command{
		Use:   "delete-batch <batch-id>",
		Short: "Delete an import batch and its entries",
		Long:  `Delete every entry posted by an import batch, then the batch itself. This action cannot be undone.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &deleteBatchRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(args[0])
		},
	}

	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Delete without asking for confirmation")

	return cmd
}

func (r *deleteBatchRunner) Run(id string) error {
	batch, err := r.svc.Ledger.Batch(id)
	if err != nil {
		return err
	}

	views.RenderBatchDeletePreview(batch)

	if !r.flags.Yes {
		confirmation, err := ui.ConfirmDestructive("Do you want to delete this import batch?")
		if err != nil {
			return err
		}

		if !confirmation {
			pterm.Info.Println("Deletion cancelled")
			return nil
		}
	}

	deleted, err := r.svc.Ledger.DeleteBatch(id)
	if err != nil {
		return err
	}

	views.RenderBatchDeleteSuccess(id, deleted)
	return nil
}
