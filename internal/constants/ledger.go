package constants

const (
	MaxNameLen = 100
)

// Journal types inferred from the journal code.
const (
	JournalBank          = "bank"
	JournalCash          = "cash"
	JournalSale          = "sale"
	JournalPurchase      = "purchase"
	JournalMiscellaneous = "miscellaneous"
)

// Account types inferred from the account number class.
const (
	AccountAsset     = "asset"
	AccountLiability = "liability"
	AccountEquity    = "equity"
	AccountExpense   = "expense"
	AccountRevenue   = "revenue"
)

const FormatCanonical = "FEC"
