package model

import "github.com/shopspring/decimal"

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
	JournalCode string
	EntryNumber string
	EntryDate   string
	Description string
	Reference   string
	BatchID     string
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

type EntryLine struct {
	ID            int64
	EntryID       int64
	AccountID     int64
	AccountNumber string
	AccountName   string
	Label         string
	Debit         decimal.Decimal
	Credit        decimal.Decimal
}

// ImportBatchLog records one posted batch, the way an audit log entry would.
type ImportBatchLog struct {
	ID              string
	CompanyID       string
	Format          string
	EntriesCreated  int
	JournalsCreated int
	AccountsCreated int
	ErrorCount      int
	TotalDebit      decimal.Decimal
	TotalCredit     decimal.Decimal
	CreatedAt       int64
}
