package store

type Repository interface {
	// Journal Operations
	CreateJournal(j Journal) (int64, error)
	GetJournalByCode(code string) (*Journal, error)
	GetAllJournals() ([]*Journal, error)

	// Account Operations
	CreateAccount(a Account) (int64, error)
	GetAccountByNumber(number string) (*Account, error)
	GetAllAccounts() ([]*Account, error)
	GetAccountsByClass(class int) ([]*Account, error)

	// Entry Operations
	CreateEntryWithLines(e Entry, lines []EntryLine) (int64, error)
	GetEntryByID(id int64) (*Entry, []*EntryLine, error)
	GetEntries(filter EntryFilter) ([]*Entry, error)
	DeleteEntriesByBatch(batchID string) (int64, error)

	// Import Batch Operations
	CreateImportBatch(b ImportBatch) error
	UpdateImportBatch(b ImportBatch) error
	GetImportBatch(id string) (*ImportBatch, error)
	GetImportBatches(limit int) ([]*ImportBatch, error)
	DeleteImportBatch(id string) error

	Close() error
}

// TxRepository is a Repository that can run a unit of work atomically.
type TxRepository interface {
	Repository
	ExecTx(fn func(Repository) error) error
}
