package model

import "github.com/shopspring/decimal"

// ImportRow is one candidate ledger line read from an import file.
type ImportRow struct {
	// RowIndex is the 1-based position of the line in the source, header excluded.
	RowIndex    int
	Date        string // YYYY-MM-DD, empty when the source date could not be read
	JournalCode string
	VoucherRef  string
	AccountCode string
	Label       string
	Debit       decimal.Decimal
	Credit      decimal.Decimal

	IsValid    bool
	Violations []string
}

// IsBlank reports whether every field of the row is empty or zero.
func (r ImportRow) IsBlank() bool {
	return r.Date == "" &&
		r.JournalCode == "" &&
		r.VoucherRef == "" &&
		r.AccountCode == "" &&
		r.Label == "" &&
		r.Debit.IsZero() &&
		r.Credit.IsZero()
}

// Clone returns a copy that does not share the Violations slice.
func (r ImportRow) Clone() ImportRow {
	if r.Violations != nil {
		r.Violations = append([]string(nil), r.Violations...)
	}
	return r
}

// VoucherBalance aggregates every row sharing one voucher reference.
type VoucherBalance struct {
	VoucherRef  string
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Balanced    bool
	LineCount   int
}

// Difference returns TotalDebit - TotalCredit.
func (b VoucherBalance) Difference() decimal.Decimal {
	return b.TotalDebit.Sub(b.TotalCredit)
}

type RowDiagnostic struct {
	RowIndex   int
	IsValid    bool
	Violations []string
}

// Summary counts derived from a validated, balanced batch.
type Summary struct {
	TotalRows              int
	ValidCount             int
	InvalidCount           int
	UnbalancedVoucherCount int
	// SkippedUnbalancedCount counts valid rows dropped because their voucher does not balance.
	SkippedUnbalancedCount int
	EligibleCount          int
}

// PostingSummary is what the posting collaborator reports after creating entries.
type PostingSummary struct {
	EntriesCreated    int
	JournalsCreated   int
	AccountsCreated   int
	EntriesWithErrors int
	JournalsExisting  int
	AccountsExisting  int
	Errors            []string
}

// ImportResult is the caller-facing outcome of posting a batch.
// On failure the posting counters are left at zero.
type ImportResult struct {
	BatchID string
	Success bool
	Error   string
	Posting PostingSummary
}
