package views

import (
	"fmt"

	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath         string
	DBPath             string
	DBExists           bool // true = Found, false = Not Found
	SchemaVersion      uint
	DefaultCompany     string
	DefaultJournalCode string
	BalanceTolerance   string
	AccountDigits      string
	AppDataDir         string
}

func RenderSystemInfo(data SystemInfoItem) error {
	dbStatus := pterm.Green("Found")
	if !data.DBExists {
		dbStatus = pterm.Red("Not Found (Will be created)")
	}

	company := data.DefaultCompany
	if company == "" {
		company = pterm.Gray("(not set)")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Database Path", data.DBPath},
		{"Database Status", dbStatus},
		{"Schema Version", fmt.Sprint(data.SchemaVersion)},
		{"Default Company", company},
		{"Default Journal Code", data.DefaultJournalCode},
		{"Balance Tolerance", data.BalanceTolerance},
		{"Account Code Digits", data.AccountDigits},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
