package voucher

import "github.com/hance08/kea-import/internal/model"

// FilterResult separates rows by why they will or will not be posted.
type FilterResult struct {
	Eligible []model.ImportRow
	// Invalid rows failed at least one line rule.
	Invalid []model.ImportRow
	// SkippedUnbalanced rows are valid but belong to a voucher that does not balance.
	SkippedUnbalanced []model.ImportRow
}

// Filter keeps the rows that are valid and whose voucher balances.
// Input order is preserved in every output slice.
func Filter(rows []model.ImportRow, balances []model.VoucherBalance) FilterResult {
	balanced := make(map[string]bool, len(balances))
	for _, b := range balances {
		balanced[b.VoucherRef] = b.Balanced
	}

	var result FilterResult
	for _, row := range rows {
		switch {
		case !row.IsValid:
			result.Invalid = append(result.Invalid, row)
		case !balanced[row.VoucherRef]:
			result.SkippedUnbalanced = append(result.SkippedUnbalanced, row)
		default:
			result.Eligible = append(result.Eligible, row)
		}
	}

	return result
}

// UnbalancedCount returns the number of vouchers that do not balance.
func UnbalancedCount(balances []model.VoucherBalance) int {
	n := 0
	for _, b := range balances {
		if !b.Balanced {
			n++
		}
	}
	return n
}
