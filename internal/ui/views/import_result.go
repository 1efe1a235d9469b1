package views

import (
	"fmt"

	"github.com/hance08/kea-import/internal/model"
	"github.com/hance08/kea-import/internal/ui"
	"github.com/pterm/pterm"
)

func RenderImportResult(result model.ImportResult) error {
	if !result.Success {
		pterm.Error.Printf("Import failed: %s\n", result.Error)
		return nil
	}

	p := result.Posting
	pterm.Success.Printf("Import complete: %d entries created\n", p.EntriesCreated)

	tableData := pterm.TableData{
		{"Batch", result.BatchID},
		{"Entries created", fmt.Sprint(p.EntriesCreated)},
		{"Journals created", fmt.Sprintf("%d (%d existing)", p.JournalsCreated, p.JournalsExisting)},
		{"Accounts created", fmt.Sprintf("%d (%d existing)", p.AccountsCreated, p.AccountsExisting)},
		{"Entries with errors", colorCount(p.EntriesWithErrors, pterm.Red)},
	}
	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	if len(p.Errors) > 0 {
		pterm.Println()
		ui.PrintL2Title("Posting Errors")
		for _, msg := range p.Errors {
			pterm.Warning.Println(msg)
		}
	}

	ui.Separator()
	return nil
}
