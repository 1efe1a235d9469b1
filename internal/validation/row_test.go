package validation

import (
	"testing"

	"github.com/hance08/kea-import/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *RowValidator {
	t.Helper()
	v, err := NewRowValidator(3, 10)
	require.NoError(t, err)
	return v
}

func validRow() model.ImportRow {
	return model.ImportRow{
		RowIndex:    1,
		Date:        "2025-01-15",
		JournalCode: "OD",
		VoucherRef:  "V1",
		AccountCode: "607100",
		Label:       "Achat",
		Debit:       decimal.NewFromInt(1000),
	}
}

func TestNewRowValidatorRejectsBadBounds(t *testing.T) {
	_, err := NewRowValidator(0, 10)
	assert.Error(t, err)

	_, err = NewRowValidator(5, 4)
	assert.Error(t, err)
}

func TestValidateAcceptsWellFormedRow(t *testing.T) {
	v := newValidator(t)

	got := v.Validate(validRow())

	assert.True(t, got.IsValid)
	assert.Empty(t, got.Violations)
}

func TestValidateRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.ImportRow)
		want   []string
	}{
		{"missing date", func(r *model.ImportRow) { r.Date = "" }, []string{msgDateRequired}},
		{"missing journal", func(r *model.ImportRow) { r.JournalCode = "" }, []string{msgJournalRequired}},
		{"missing voucher", func(r *model.ImportRow) { r.VoucherRef = "" }, []string{msgVoucherRequired}},
		{"missing account is not also a format error", func(r *model.ImportRow) { r.AccountCode = "" }, []string{msgAccountRequired}},
		{"account too short", func(r *model.ImportRow) { r.AccountCode = "60" }, []string{"account code is invalid (must be 3 to 10 digits)"}},
		{"account too long", func(r *model.ImportRow) { r.AccountCode = "60710000001" }, []string{"account code is invalid (must be 3 to 10 digits)"}},
		{"account with letters", func(r *model.ImportRow) { r.AccountCode = "401ABC" }, []string{"account code is invalid (must be 3 to 10 digits)"}},
		{"no amount", func(r *model.ImportRow) { r.Debit = decimal.Zero }, []string{msgAmountRequired}},
		{"both amounts", func(r *model.ImportRow) { r.Credit = decimal.NewFromInt(5) }, []string{msgBothAmounts}},
		{"negative debit alone", func(r *model.ImportRow) { r.Debit = decimal.NewFromInt(-5) }, []string{msgAmountRequired, msgNegativeAmount}},
		{"negative debit with credit", func(r *model.ImportRow) {
			r.Debit = decimal.NewFromInt(-5)
			r.Credit = decimal.NewFromInt(5)
		}, []string{msgNegativeAmount}},
	}

	v := newValidator(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := validRow()
			tt.mutate(&row)

			got := v.Validate(row)

			assert.False(t, got.IsValid)
			assert.Equal(t, tt.want, got.Violations)
		})
	}
}

func TestValidateAccumulatesEveryViolation(t *testing.T) {
	v := newValidator(t)

	got := v.Validate(model.ImportRow{RowIndex: 7})

	assert.False(t, got.IsValid)
	assert.Equal(t, []string{
		msgDateRequired,
		msgJournalRequired,
		msgVoucherRequired,
		msgAccountRequired,
		msgAmountRequired,
	}, got.Violations)
	assert.Equal(t, 7, got.RowIndex)
}

func TestValidateHonoursConfiguredAccountLength(t *testing.T) {
	v, err := NewRowValidator(6, 8)
	require.NoError(t, err)

	row := validRow()
	row.AccountCode = "60710"
	got := v.Validate(row)
	assert.Equal(t, []string{"account code is invalid (must be 6 to 8 digits)"}, got.Violations)

	row.AccountCode = "6071000"
	assert.True(t, v.Validate(row).IsValid)
}

func TestValidityMatchesViolations(t *testing.T) {
	v := newValidator(t)
	amounts := []decimal.Decimal{decimal.Zero, decimal.NewFromInt(10), decimal.NewFromInt(-1)}
	accounts := []string{"", "12", "607100", "x607"}
	dates := []string{"", "2025-01-15"}

	for _, debit := range amounts {
		for _, credit := range amounts {
			for _, account := range accounts {
				for _, date := range dates {
					row := validRow()
					row.Debit, row.Credit, row.AccountCode, row.Date = debit, credit, account, date

					got := v.Validate(row)

					assert.Equal(t, len(got.Violations) == 0, got.IsValid)
					if debit.IsPositive() && credit.IsPositive() {
						assert.False(t, got.IsValid, "a line with both amounts must never be valid")
					}
				}
			}
		}
	}
}

func TestValidateAllIsIdempotent(t *testing.T) {
	v := newValidator(t)
	bad := validRow()
	bad.AccountCode = ""
	rows := []model.ImportRow{validRow(), bad}

	once := v.ValidateAll(rows)
	twice := v.ValidateAll(once)

	assert.Equal(t, once, twice)
	assert.True(t, once[0].IsValid)
	assert.False(t, once[1].IsValid)
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate(""))
	assert.NoError(t, ValidateDate("2025-01-15"))
	assert.Error(t, ValidateDate("15/01/2025"))
	assert.Error(t, ValidateDate("2025-02-30"))
}
