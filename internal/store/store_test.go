package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(filepath.Join(t.TempDir(), "ledger.db"), os.DirFS("../.."))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedLedger(t *testing.T, s *Store) (journalID, expenseID, supplierID int64) {
	t.Helper()

	journalID, err := s.CreateJournal(Journal{Code: "AC", Name: "Journal des achats", Type: "purchase"})
	require.NoError(t, err)
	expenseID, err = s.CreateAccount(Account{Number: "607100", Name: "Achats", Type: "expense", Class: 6})
	require.NoError(t, err)
	supplierID, err = s.CreateAccount(Account{Number: "401000", Name: "Fournisseurs", Type: "liability", Class: 4})
	require.NoError(t, err)
	return journalID, expenseID, supplierID
}

func TestNewStoreIsReentrant(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")

	first, err := NewStore(path, os.DirFS("../.."))
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewStore(path, os.DirFS("../.."))
	require.NoError(t, err)
	assert.Equal(t, uint(1), second.SchemaVersion())
	require.NoError(t, second.Close())
}

func TestJournals(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateJournal(Journal{Code: "BQ", Name: "Banque", Type: "bank"})
	require.NoError(t, err)
	assert.NotZero(t, id)

	_, err = s.CreateJournal(Journal{Code: "BQ", Name: "Again", Type: "bank"})
	assert.ErrorIs(t, err, ErrJournalExists)

	j, err := s.GetJournalByCode("BQ")
	require.NoError(t, err)
	assert.Equal(t, "Banque", j.Name)

	_, err = s.GetJournalByCode("XX")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	all, err := s.GetAllJournals()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAccounts(t *testing.T) {
	s := newTestStore(t)
	seedLedger(t, s)

	_, err := s.CreateAccount(Account{Number: "607100", Name: "Dup", Type: "expense", Class: 6})
	assert.ErrorIs(t, err, ErrAccountExists)

	acc, err := s.GetAccountByNumber("401000")
	require.NoError(t, err)
	assert.Equal(t, 4, acc.Class)

	_, err = s.GetAccountByNumber("999")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	all, err := s.GetAllAccounts()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "401000", all[0].Number)

	expenses, err := s.GetAccountsByClass(6)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "607100", expenses[0].Number)
}

func TestEntriesAndBatches(t *testing.T) {
	s := newTestStore(t)
	journalID, expenseID, supplierID := seedLedger(t, s)

	batchID := "b-1"
	require.NoError(t, s.CreateImportBatch(ImportBatch{ID: batchID, CompanyID: "acme", Format: "FEC", CreatedAt: 100}))

	entryID, err := s.CreateEntryWithLines(
		Entry{JournalID: journalID, EntryNumber: "V1", EntryDate: "2025-01-15", Description: "Achat", BatchID: &batchID},
		[]EntryLine{
			{AccountID: expenseID, Label: "Achat", Debit: 100000},
			{AccountID: supplierID, Label: "Achat", Credit: 100000},
		},
	)
	require.NoError(t, err)

	_, err = s.CreateEntryWithLines(
		Entry{JournalID: journalID, EntryNumber: "V1", EntryDate: "2025-01-15"},
		[]EntryLine{{AccountID: expenseID, Debit: 1}},
	)
	assert.ErrorIs(t, err, ErrEntryExists)

	_, err = s.CreateEntryWithLines(Entry{JournalID: journalID, EntryNumber: "V9", EntryDate: "2025-01-15"}, nil)
	assert.ErrorIs(t, err, ErrConstraintViolation)

	entry, lines, err := s.GetEntryByID(entryID)
	require.NoError(t, err)
	assert.Equal(t, "AC", entry.JournalCode)
	assert.Equal(t, int64(100000), entry.TotalDebit)
	assert.Equal(t, int64(100000), entry.TotalCredit)
	require.NotNil(t, entry.BatchID)
	assert.Equal(t, batchID, *entry.BatchID)
	require.Len(t, lines, 2)
	assert.Equal(t, "607100", lines[0].AccountNumber)

	_, _, err = s.GetEntryByID(9999)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	entries, err := s.GetEntries(EntryFilter{JournalCode: "AC"})
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	entries, err = s.GetEntries(EntryFilter{From: "2025-02-01"})
	require.NoError(t, err)
	assert.Empty(t, entries)

	require.NoError(t, s.UpdateImportBatch(ImportBatch{ID: batchID, EntriesCreated: 1, TotalDebit: 100000, TotalCredit: 100000}))
	b, err := s.GetImportBatch(batchID)
	require.NoError(t, err)
	assert.Equal(t, 1, b.EntriesCreated)
	assert.Equal(t, "acme", b.CompanyID)

	batches, err := s.GetImportBatches(0)
	require.NoError(t, err)
	assert.Len(t, batches, 1)

	n, err := s.DeleteEntriesByBatch(batchID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	require.NoError(t, s.DeleteImportBatch(batchID))

	_, err = s.GetImportBatch(batchID)
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.ErrorIs(t, s.DeleteImportBatch(batchID), ErrRecordNotFound)
}

func TestExecTxRollsBack(t *testing.T) {
	s := newTestStore(t)

	boom := errors.New("boom")
	err := s.ExecTx(func(r Repository) error {
		if _, err := r.CreateJournal(Journal{Code: "VT", Name: "Ventes", Type: "sale"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = s.GetJournalByCode("VT")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	err = s.ExecTx(func(r Repository) error {
		_, err := r.CreateJournal(Journal{Code: "VT", Name: "Ventes", Type: "sale"})
		return err
	})
	require.NoError(t, err)

	_, err = s.GetJournalByCode("VT")
	assert.NoError(t, err)
}
