package views

import (
	"fmt"

	"github.com/hance08/kea-import/internal/model"
	"github.com/hance08/kea-import/internal/utils"
	"github.com/pterm/pterm"
)

type EntryListView struct{}

func NewEntryListView() *EntryListView {
	return &EntryListView{}
}

func (v *EntryListView) Render(entries []model.Entry, limit int) error {
	if len(entries) == 0 {
		pterm.Warning.Println("No entries found")
		return nil
	}

	pterm.DefaultSection.Printf("Showing recent entries (limit: %d)", limit)

	tableData := pterm.TableData{
		{"ID", "Date", "Journal", "Number", "Description", "Debit", "Credit"},
	}

	for _, e := range entries {
		debit := utils.FormatAmount(e.TotalDebit)
		credit := utils.FormatAmount(e.TotalCredit)
		if !e.TotalDebit.Equal(e.TotalCredit) {
			debit = pterm.Red(debit)
			credit = pterm.Red(credit)
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", e.ID),
			e.EntryDate,
			pterm.Cyan(e.JournalCode),
			e.EntryNumber,
			e.Description,
			debit,
			credit,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d entries\n", len(entries))
	return nil
}
