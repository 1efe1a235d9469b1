package service

import (
	"github.com/hance08/kea-import/internal/fec"
	"github.com/hance08/kea-import/internal/logic/voucher"
	"github.com/hance08/kea-import/internal/model"
)

// ImportBatch is the result of running one file through normalization,
// validation, balancing and filtering. It is ephemeral and can be posted
// at most once. Accessors return copies; the rows never change after
// the filter has run.
type ImportBatch struct {
	id       string
	source   string
	rows     []model.ImportRow
	balances []model.VoucherBalance
	filtered voucher.FilterResult
	summary  model.Summary
	posted   bool
}

func newImportBatch(id string, rows []model.ImportRow, balances []model.VoucherBalance) *ImportBatch {
	filtered := voucher.Filter(rows, balances)

	return &ImportBatch{
		id:       id,
		rows:     rows,
		balances: balances,
		filtered: filtered,
		summary: model.Summary{
			TotalRows:              len(rows),
			ValidCount:             len(rows) - len(filtered.Invalid),
			InvalidCount:           len(filtered.Invalid),
			UnbalancedVoucherCount: voucher.UnbalancedCount(balances),
			SkippedUnbalancedCount: len(filtered.SkippedUnbalanced),
			EligibleCount:          len(filtered.Eligible),
		},
	}
}

func (b *ImportBatch) ID() string {
	return b.id
}

// Source is the file the batch was read from, empty for in-memory rows.
func (b *ImportBatch) Source() string {
	return b.source
}

func (b *ImportBatch) Posted() bool {
	return b.posted
}

func (b *ImportBatch) Summary() model.Summary {
	return b.summary
}

func (b *ImportBatch) Rows() []model.ImportRow {
	return cloneRows(b.rows)
}

func (b *ImportBatch) Eligible() []model.ImportRow {
	return cloneRows(b.filtered.Eligible)
}

func (b *ImportBatch) Invalid() []model.ImportRow {
	return cloneRows(b.filtered.Invalid)
}

func (b *ImportBatch) SkippedUnbalanced() []model.ImportRow {
	return cloneRows(b.filtered.SkippedUnbalanced)
}

func (b *ImportBatch) Balances() []model.VoucherBalance {
	return append([]model.VoucherBalance(nil), b.balances...)
}

func (b *ImportBatch) UnbalancedVouchers() []model.VoucherBalance {
	var out []model.VoucherBalance
	for _, vb := range b.balances {
		if !vb.Balanced {
			out = append(out, vb)
		}
	}
	return out
}

// Diagnostics returns one entry per row, in row order.
func (b *ImportBatch) Diagnostics() []model.RowDiagnostic {
	out := make([]model.RowDiagnostic, 0, len(b.rows))
	for _, row := range b.rows {
		out = append(out, model.RowDiagnostic{
			RowIndex:   row.RowIndex,
			IsValid:    row.IsValid,
			Violations: append([]string(nil), row.Violations...),
		})
	}
	return out
}

// Payload renders the eligible rows in the canonical format.
func (b *ImportBatch) Payload() string {
	return fec.Serialize(b.filtered.Eligible)
}

func cloneRows(rows []model.ImportRow) []model.ImportRow {
	if rows == nil {
		return nil
	}
	out := make([]model.ImportRow, len(rows))
	for i, row := range rows {
		out[i] = row.Clone()
	}
	return out
}
