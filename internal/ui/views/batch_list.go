package views

import (
	"fmt"
	"time"

	"github.com/hance08/kea-import/internal/model"
	"github.com/hance08/kea-import/internal/ui"
	"github.com/hance08/kea-import/internal/utils"
	"github.com/pterm/pterm"
)

func RenderBatchList(batches []model.ImportBatchLog) error {
	if len(batches) == 0 {
		pterm.Warning.Println("No import batches found")
		return nil
	}

	tableData := pterm.TableData{
		{"Batch", "Imported", "Company", "Entries", "Journals", "Accounts", "Errors", "Debit"},
	}
	for _, b := range batches {
		tableData = append(tableData, []string{
			b.ID,
			time.Unix(b.CreatedAt, 0).Format("2006-01-02 15:04"),
			b.CompanyID,
			fmt.Sprint(b.EntriesCreated),
			fmt.Sprint(b.JournalsCreated),
			fmt.Sprint(b.AccountsCreated),
			colorCount(b.ErrorCount, pterm.Red),
			utils.FormatAmount(b.TotalDebit),
		})
	}

	pterm.DefaultSection.Printf("Import Batches")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d batches\n", len(batches))
	return nil
}

func RenderBatchDeletePreview(b *model.ImportBatchLog) {
	pterm.Warning.Printf("About to delete import batch %s:\n", b.ID)

	deletionInfo := pterm.TableData{
		{"Imported", time.Unix(b.CreatedAt, 0).Format("2006-01-02 15:04")},
		{"Company", b.CompanyID},
		{"Entries", fmt.Sprint(b.EntriesCreated)},
		{"Total Debit", utils.FormatAmount(b.TotalDebit)},
	}

	_ = pterm.DefaultTable.WithData(deletionInfo).Render()
	pterm.Warning.Println("Journals and accounts created by the batch are kept. This action cannot be undone!")
}

func RenderBatchDeleteSuccess(id string, entries int64) {
	pterm.Success.Printf("Import batch %s deleted (%d entries removed)\n", id, entries)
	ui.Separator()
}
