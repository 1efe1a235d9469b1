package views

import (
	"github.com/hance08/kea-import/internal/model"
	"github.com/pterm/pterm"
)

func RenderJournalList(journals []model.Journal) error {
	if len(journals) == 0 {
		pterm.Warning.Println("No journals found")
		return nil
	}

	tableData := pterm.TableData{{"Code", "Name", "Type"}}
	for _, j := range journals {
		tableData = append(tableData, []string{j.Code, j.Name, j.Type})
	}

	pterm.DefaultSection.Printf("Journal List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d journals\n", len(journals))
	return nil
}
