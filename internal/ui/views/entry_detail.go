package views

import (
	"fmt"

	"github.com/hance08/kea-import/internal/model"
	"github.com/hance08/kea-import/internal/ui"
	"github.com/hance08/kea-import/internal/utils"
	"github.com/pterm/pterm"
)

func RenderEntryDetail(entry *model.Entry, lines []model.EntryLine) error {
	batch := entry.BatchID
	if batch == "" {
		batch = "-"
	}

	pterm.Println()
	ui.PrintL2Title("Entry Info")
	infoData := pterm.TableData{
		{"Field", "Value"},
		{"ID", fmt.Sprintf("%d", entry.ID)},
		{"Journal", entry.JournalCode},
		{"Number", entry.EntryNumber},
		{"Date", entry.EntryDate},
		{"Description", entry.Description},
		{"Reference", entry.Reference},
		{"Import Batch", batch},
	}
	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render(); err != nil {
		return err
	}

	pterm.Println()
	ui.PrintL2Title("Lines")
	linesData := pterm.TableData{
		{"Account", "Name", "Label", "Debit", "Credit"},
	}

	for _, l := range lines {
		label := l.Label
		if label == "" {
			label = "-"
		}

		linesData = append(linesData, []string{
			l.AccountNumber,
			l.AccountName,
			label,
			utils.FormatAmount(l.Debit),
			utils.FormatAmount(l.Credit),
		})
	}

	linesData = append(linesData, []string{
		"", "", pterm.Bold.Sprint("Total"),
		pterm.Bold.Sprint(utils.FormatAmount(entry.TotalDebit)),
		pterm.Bold.Sprint(utils.FormatAmount(entry.TotalCredit)),
	})

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(linesData).
		Render()
}
