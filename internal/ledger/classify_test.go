package ledger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJournalType(t *testing.T) {
	tests := map[string]string{
		"BQ":    "bank",
		"BNQ2":  "bank",
		"CA":    "cash",
		"CAISS": "cash",
		"VT":    "sale",
		"VEN":   "sale",
		"AC":    "purchase",
		"HA":    "purchase",
		"FOUR":  "purchase",
		"OD":    "miscellaneous",
		"ZZ":    "miscellaneous",
		"bq":    "bank",
	}

	for code, want := range tests {
		assert.Equal(t, want, JournalType(code), code)
	}
}

func TestJournalName(t *testing.T) {
	assert.Equal(t, "Journal des ventes", JournalName("VT", "Journal VT"))
	assert.Equal(t, "Opérations diverses", JournalName("OD", ""))
	assert.Equal(t, "Journal ZZ", JournalName("ZZ", "Journal ZZ"))
	assert.Equal(t, "Banque Populaire", JournalName("BQ", "Banque Populaire"))
}

func TestAccountClassification(t *testing.T) {
	tests := []struct {
		number string
		class  int
		typ    string
	}{
		{"101000", 1, "equity"},
		{"218000", 2, "asset"},
		{"370000", 3, "asset"},
		{"401000", 4, "liability"},
		{"411000", 4, "asset"},
		{"445660", 4, "liability"},
		{"471000", 4, "asset"},
		{"512000", 5, "asset"},
		{"607100", 6, "expense"},
		{"706000", 7, "revenue"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.class, AccountClass(tt.number), tt.number)
		assert.Equal(t, tt.typ, AccountType(tt.number), tt.number)
	}

	assert.Equal(t, 0, AccountClass(""))
}

func TestAccountName(t *testing.T) {
	assert.Equal(t, "Compte 607100", AccountName("607100", " "))
	assert.Equal(t, "Achats", AccountName("607100", "Achats"))
	assert.Len(t, []rune(AccountName("607100", strings.Repeat("é", 150))), 100)
}
