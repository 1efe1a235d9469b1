// Package voucher groups import rows into vouchers, checks that each voucher
// balances, and selects the rows that may be posted.
package voucher

import (
	"fmt"

	"github.com/hance08/kea-import/internal/constants"
	"github.com/hance08/kea-import/internal/model"
	"github.com/shopspring/decimal"
)

// Balancer computes per-voucher debit and credit totals.
//
// The tolerance is an epsilon for comparing totals, not an accounting rule:
// a voucher is balanced when |debit - credit| < tolerance. It defaults to
// one cent.
type Balancer struct {
	tolerance decimal.Decimal
}

func NewBalancer(tolerance decimal.Decimal) (*Balancer, error) {
	if !tolerance.IsPositive() {
		return nil, fmt.Errorf("balance tolerance must be positive (got %s)", tolerance)
	}
	return &Balancer{tolerance: tolerance}, nil
}

func (b *Balancer) Tolerance() decimal.Decimal {
	return b.tolerance
}

// Balance returns one VoucherBalance per distinct non-empty voucher
// reference, in order of first appearance. Invalid rows are included:
// their amounts count toward the voucher until the filter drops them.
// Totals are rounded once, after the whole sum, and the balance check is
// made on the rounded totals.
func (b *Balancer) Balance(rows []model.ImportRow) []model.VoucherBalance {
	type totals struct {
		debit, credit decimal.Decimal
		lines         int
	}

	sums := make(map[string]*totals)
	var order []string

	for _, row := range rows {
		if row.VoucherRef == "" {
			continue
		}

		t, ok := sums[row.VoucherRef]
		if !ok {
			t = &totals{}
			sums[row.VoucherRef] = t
			order = append(order, row.VoucherRef)
		}
		t.debit = t.debit.Add(row.Debit)
		t.credit = t.credit.Add(row.Credit)
		t.lines++
	}

	balances := make([]model.VoucherBalance, 0, len(order))
	for _, ref := range order {
		t := sums[ref]
		debit := t.debit.Round(constants.AmountPlaces)
		credit := t.credit.Round(constants.AmountPlaces)

		balances = append(balances, model.VoucherBalance{
			VoucherRef:  ref,
			TotalDebit:  debit,
			TotalCredit: credit,
			Balanced:    b.isBalanced(debit, credit),
			LineCount:   t.lines,
		})
	}

	return balances
}

func (b *Balancer) isBalanced(debit, credit decimal.Decimal) bool {
	return debit.Sub(credit).Abs().LessThan(b.tolerance)
}
