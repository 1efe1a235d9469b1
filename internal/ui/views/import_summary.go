package views

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hance08/kea-import/internal/model"
	"github.com/hance08/kea-import/internal/ui"
	"github.com/hance08/kea-import/internal/utils"
	"github.com/pterm/pterm"
)

func RenderImportSummary(source string, s model.Summary) error {
	title := "Import Summary"
	if source != "" {
		title = fmt.Sprintf("Import Summary (%s)", filepath.Base(source))
	}
	pterm.DefaultSection.Println(title)

	tableData := pterm.TableData{
		{"Rows read", fmt.Sprint(s.TotalRows)},
		{"Valid rows", pterm.Green(fmt.Sprint(s.ValidCount))},
		{"Invalid rows", colorCount(s.InvalidCount, pterm.Red)},
		{"Unbalanced vouchers", colorCount(s.UnbalancedVoucherCount, pterm.Yellow)},
		{"Lines skipped (unbalanced voucher)", colorCount(s.SkippedUnbalancedCount, pterm.Yellow)},
		{"Lines ready to import", pterm.Cyan(fmt.Sprint(s.EligibleCount))},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

// RenderDiagnostics lists the rows that failed validation.
func RenderDiagnostics(diags []model.RowDiagnostic) error {
	tableData := pterm.TableData{{"Row", "Problems"}}
	for _, d := range diags {
		if d.IsValid {
			continue
		}
		tableData = append(tableData, []string{
			fmt.Sprint(d.RowIndex),
			strings.Join(d.Violations, "; "),
		})
	}

	if len(tableData) == 1 {
		pterm.Success.Println("All rows passed validation")
		return nil
	}

	pterm.Println()
	ui.PrintCountTitle("Invalid Rows", len(tableData)-1)
	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(tableData).
		Render()
}

// RenderSkippedRows lists valid rows left out because their voucher does
// not balance.
func RenderSkippedRows(rows []model.ImportRow) error {
	if len(rows) == 0 {
		return nil
	}

	tableData := pterm.TableData{{"Row", "Voucher", "Account", "Debit", "Credit"}}
	for _, r := range rows {
		tableData = append(tableData, []string{
			fmt.Sprint(r.RowIndex),
			r.VoucherRef,
			r.AccountCode,
			utils.FormatAmount(r.Debit),
			utils.FormatAmount(r.Credit),
		})
	}

	pterm.Println()
	ui.PrintCountTitle("Skipped Rows (unbalanced voucher)", len(rows))
	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(tableData).
		Render()
}

// RenderVoucherBalances shows voucher totals. With onlyUnbalanced set,
// balanced vouchers are left out.
func RenderVoucherBalances(balances []model.VoucherBalance, onlyUnbalanced bool) error {
	tableData := pterm.TableData{{"Voucher", "Lines", "Debit", "Credit", "Difference", "Status"}}

	for _, b := range balances {
		if onlyUnbalanced && b.Balanced {
			continue
		}

		status := pterm.Green("Balanced")
		if !b.Balanced {
			status = pterm.Red("Unbalanced")
		}

		tableData = append(tableData, []string{
			b.VoucherRef,
			fmt.Sprint(b.LineCount),
			utils.FormatAmount(b.TotalDebit),
			utils.FormatAmount(b.TotalCredit),
			utils.FormatAmount(b.Difference()),
			status,
		})
	}

	if len(tableData) == 1 {
		if onlyUnbalanced {
			pterm.Success.Println("Every voucher is balanced")
		}
		return nil
	}

	pterm.Println()
	ui.PrintCountTitle("Vouchers", len(tableData)-1)
	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(tableData).
		Render()
}

func colorCount(n int, color func(a ...interface{}) string) string {
	if n == 0 {
		return "0"
	}
	return color(fmt.Sprint(n))
}
