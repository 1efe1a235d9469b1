package normalize

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"day month year slash", "15/01/2025", "2025-01-15"},
		{"day month year dot", "15.01.2025", "2025-01-15"},
		{"day month year dash", "15-01-2025", "2025-01-15"},
		{"single digit day and month", "5/1/2025", "2025-01-05"},
		{"padded with spaces", "  15/01/2025 ", "2025-01-15"},
		{"iso", "2025-01-15", "2025-01-15"},
		{"iso with time", "2025-01-15T10:30:00Z", "2025-01-15"},
		{"compact", "20250115", "2025-01-15"},
		{"compact numeric cell", 20250115, "2025-01-15"},
		{"compact float cell", float64(20250115), "2025-01-15"},
		{"native time", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), "2025-01-15"},
		{"zero time", time.Time{}, ""},
		{"nil", nil, ""},
		{"empty", "", ""},
		{"two digit year", "15/01/25", ""},
		{"words", "January 15th", ""},
		{"impossible day", "31/02/2025", ""},
		{"impossible month", "2025-13-01", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDate(tt.in))
		})
	}
}

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "0"},
		{"empty text", "", "0"},
		{"float rounded", 1234.567, "1234.57"},
		{"int", 1000, "1000"},
		{"float32", float32(12.5), "12.5"},
		{"decimal", decimal.RequireFromString("10.005"), "10.01"},
		{"comma separator with thousands space", "1 234,56", "1234.56"},
		{"non breaking space", "1 234,56", "1234.56"},
		{"narrow non breaking space", "1 234,56", "1234.56"},
		{"period separator", "99.90", "99.9"},
		{"unparsable", "abc", "0"},
		{"numeric prefix", "12abc", "12"},
		{"currency suffix", "150,00 EUR", "150"},
		{"second comma ignored", "1,234,56", "1.23"},
		{"negative", "-500", "-500"},
		{"leading dot", ".5", "0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAmount(tt.in)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestNormalizeAccountCode(t *testing.T) {
	assert.Equal(t, "607100", NormalizeAccountCode(" 607 100 "))
	assert.Equal(t, "401000", NormalizeAccountCode(401000))
	assert.Equal(t, "401000", NormalizeAccountCode(float64(401000)))
	assert.Equal(t, "40A", NormalizeAccountCode("40A"))
	assert.Equal(t, "", NormalizeAccountCode(nil))
}

func TestNormalizeRow(t *testing.T) {
	n := NewNormalizer("od")

	row := n.NormalizeRow(3, []any{"15/01/2025", " ve ", " FA-001 ", "607 100", " Achat ", "1 000,00", nil, "extra", 42})

	assert.Equal(t, 3, row.RowIndex)
	assert.Equal(t, "2025-01-15", row.Date)
	assert.Equal(t, "VE", row.JournalCode)
	assert.Equal(t, "FA-001", row.VoucherRef)
	assert.Equal(t, "607100", row.AccountCode)
	assert.Equal(t, "Achat", row.Label)
	assert.True(t, row.Debit.Equal(decimal.NewFromInt(1000)))
	assert.True(t, row.Credit.IsZero())
	assert.False(t, row.IsValid)
	assert.Empty(t, row.Violations)
}

func TestNormalizeRowDefaultsJournalCode(t *testing.T) {
	n := NewNormalizer("od")

	row := n.NormalizeRow(1, []any{"2025-01-15", "", "V1", "401000", "", 0, 10})
	assert.Equal(t, "OD", row.JournalCode)

	short := n.NormalizeRow(2, []any{"2025-01-15"})
	assert.Equal(t, "OD", short.JournalCode)
	assert.Empty(t, short.AccountCode)
	assert.True(t, short.Debit.IsZero())
}

func TestNormalizeRowsDropsBlankRows(t *testing.T) {
	n := NewNormalizer("OD")

	rows := n.NormalizeRows([][]any{
		{"15/01/2025", "OD", "V1", "607100", "Achat", 1000, 0},
		{},
		{"", "", "", "", "", "", ""},
		{nil, nil, "  ", nil, nil, "abc", "0,00"},
		{"15/01/2025", "OD", "V1", "401000", "Fournisseur", 0, 1000},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].RowIndex)
	assert.Equal(t, 5, rows[1].RowIndex)
}

func TestNormalizeRowsIsDeterministic(t *testing.T) {
	n := NewNormalizer("OD")
	input := [][]any{
		{"15/01/2025", "", "V1", "607100", "Achat", "1 000,50", nil},
		{20250115, "ac", "V1", 401000, nil, nil, 1000.5},
	}

	assert.Equal(t, n.NormalizeRows(input), n.NormalizeRows(input))
}

func TestText(t *testing.T) {
	assert.Equal(t, "", Text(nil))
	assert.Equal(t, "abc", Text("abc"))
	assert.Equal(t, "607100", Text(607100))
	assert.Equal(t, "1234.5", Text(1234.5))
	assert.Equal(t, "true", Text(true))
	assert.Equal(t, "2025-01-15", Text(time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)))
	assert.Equal(t, "12.34", Text(decimal.RequireFromString("12.34")))
}
