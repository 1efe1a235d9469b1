package constants

const (
	// BalanceTolerance absorbs floating point noise when comparing voucher
	// totals. It is not an accounting rule.
	BalanceTolerance = 0.01

	AccountMinDigits = 3
	AccountMaxDigits = 10

	AmountPlaces = 2
)

const (
	DefaultJournalCode = "OD"
	DefaultCompany     = "default"
)

// Date layouts
const (
	DateFormat        = "2006-01-02"
	CompactDateFormat = "20060102"
)

// Source columns, in sheet order.
const (
	ColDate = iota
	ColJournalCode
	ColVoucherRef
	ColAccountCode
	ColLabel
	ColDebit
	ColCredit
)

var TemplateHeaders = []string{
	"Date", "Journal Code", "Voucher Ref", "Account", "Label", "Debit", "Credit",
}
