package store

// Amounts are stored as integer cents.

type Journal struct {
	ID          int64
	Code        string
	Name        string
	Type        string
	Description string
}

type Account struct {
	ID          int64
	Number      string
	Name        string
	Type        string
	Class       int
	Description string
}

type Entry struct {
	ID          int64
	JournalID   int64
	JournalCode string // read only, joined from journals
	EntryNumber string
	EntryDate   string
	Description string
	Reference   string
	BatchID     *string
	TotalDebit  int64 // read only, summed from lines
	TotalCredit int64 // read only, summed from lines
}

type EntryLine struct {
	ID            int64
	EntryID       int64
	AccountID     int64
	AccountNumber string // read only
	AccountName   string // read only
	Label         string
	Debit         int64
	Credit        int64
}

type ImportBatch struct {
	ID              string
	CompanyID       string
	Format          string
	EntriesCreated  int
	JournalsCreated int
	AccountsCreated int
	ErrorCount      int
	TotalDebit      int64
	TotalCredit     int64
	CreatedAt       int64
}

// EntryFilter narrows GetEntries. Zero values mean no restriction.
type EntryFilter struct {
	JournalCode string
	BatchID     string
	From        string // YYYY-MM-DD, inclusive
	To          string // YYYY-MM-DD, inclusive
	Limit       int
}
