package ledger

import (
	"strings"

	"github.com/hance08/kea-import/internal/constants"
)

var journalNames = map[string]string{
	constants.JournalBank:          "Journal de banque",
	constants.JournalCash:          "Journal de caisse",
	constants.JournalSale:          "Journal des ventes",
	constants.JournalPurchase:      "Journal des achats",
	constants.JournalMiscellaneous: "Opérations diverses",
}

// JournalType infers the journal type from its code.
func JournalType(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))

	switch {
	case code == "BQ" || code == "BA" || code == "BK" || strings.HasPrefix(code, "BNQ"):
		return constants.JournalBank
	case code == "CA" || strings.HasPrefix(code, "CAI") || strings.HasPrefix(code, "CS"):
		return constants.JournalCash
	case code == "VT" || code == "VE" || strings.HasPrefix(code, "VEN"):
		return constants.JournalSale
	case code == "AC" || code == "HA" || code == "AH" ||
		strings.HasPrefix(code, "ACH") || strings.HasPrefix(code, "FOU") || strings.HasPrefix(code, "PU"):
		return constants.JournalPurchase
	default:
		return constants.JournalMiscellaneous
	}
}

// JournalName picks a display name for a journal created on the fly.
// The label carried by the payload wins unless it is the generic one.
func JournalName(code, label string) string {
	label = strings.TrimSpace(label)
	if label != "" && label != "Journal "+code {
		return truncate(label)
	}

	jt := JournalType(code)
	if jt == constants.JournalMiscellaneous && code != constants.DefaultJournalCode {
		return "Journal " + code
	}
	return journalNames[jt]
}

// AccountClass is the first digit of the account number, 0 if none.
func AccountClass(number string) int {
	if number == "" || number[0] < '0' || number[0] > '9' {
		return 0
	}
	return int(number[0] - '0')
}

// AccountType maps an account number to its type using the classes of the
// French chart of accounts.
func AccountType(number string) string {
	switch AccountClass(number) {
	case 1:
		return constants.AccountEquity
	case 2, 3, 5:
		return constants.AccountAsset
	case 4:
		return thirdPartyType(number)
	case 6:
		return constants.AccountExpense
	case 7:
		return constants.AccountRevenue
	default:
		return constants.AccountAsset
	}
}

// class 4 splits by sub-class: suppliers and tax or social debts are
// liabilities, customers and suspense accounts are assets.
func thirdPartyType(number string) string {
	if len(number) < 2 {
		return constants.AccountLiability
	}

	switch number[1] {
	case '1', '6', '7':
		return constants.AccountAsset
	default:
		return constants.AccountLiability
	}
}

// AccountName picks a display name for an account created on the fly.
func AccountName(number, label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "Compte " + number
	}
	return truncate(label)
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) > constants.MaxNameLen {
		return string(r[:constants.MaxNameLen])
	}
	return s
}
