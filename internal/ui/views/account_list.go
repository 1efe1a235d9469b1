package views

import (
	"fmt"

	"github.com/hance08/kea-import/internal/constants"
	"github.com/hance08/kea-import/internal/model"
	"github.com/pterm/pterm"
)

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

func (v *AccountListView) Render(accounts []model.Account) error {
	if len(accounts) == 0 {
		pterm.Warning.Println("No accounts found")
		return nil
	}

	tableData := pterm.TableData{{"Number", "Name", "Class", "Type"}}

	for _, acc := range accounts {
		var coloredNumber, coloredType string
		switch acc.Type {
		case constants.AccountAsset, constants.AccountRevenue:
			coloredType = pterm.Green(acc.Type)
			coloredNumber = pterm.Green(acc.Number)
		case constants.AccountLiability, constants.AccountExpense:
			coloredType = pterm.Red(acc.Type)
			coloredNumber = pterm.Red(acc.Number)
		case constants.AccountEquity:
			coloredType = pterm.Gray(acc.Type)
			coloredNumber = pterm.Gray(acc.Number)
		default:
			coloredType = acc.Type
			coloredNumber = acc.Number
		}
		tableData = append(tableData, []string{coloredNumber, acc.Name, fmt.Sprint(acc.Class), coloredType})
	}

	pterm.DefaultSection.Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))

	return nil
}
