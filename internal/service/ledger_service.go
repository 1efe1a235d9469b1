package service

import (
	"github.com/hance08/kea-import/internal/model"
	"github.com/hance08/kea-import/internal/store"
	"github.com/hance08/kea-import/internal/utils"
	"github.com/sirupsen/logrus"
)

// LedgerService reads back what the poster wrote.
type LedgerService struct {
	repo store.TxRepository
	log  *logrus.Logger
}

func NewLedgerService(repo store.TxRepository, log *logrus.Logger) *LedgerService {
	return &LedgerService{repo: repo, log: log}
}

func (ls *LedgerService) Journals() ([]model.Journal, error) {
	rows, err := ls.repo.GetAllJournals()
	if err != nil {
		return nil, err
	}

	out := make([]model.Journal, 0, len(rows))
	for _, j := range rows {
		out = append(out, model.Journal{
			ID:          j.ID,
			Code:        j.Code,
			Name:        j.Name,
			Type:        j.Type,
			Description: j.Description,
		})
	}
	return out, nil
}

// Accounts lists accounts, restricted to one class when class > 0.
func (ls *LedgerService) Accounts(class int) ([]model.Account, error) {
	var (
		rows []*store.Account
		err  error
	)
	if class > 0 {
		rows, err = ls.repo.GetAccountsByClass(class)
	} else {
		rows, err = ls.repo.GetAllAccounts()
	}
	if err != nil {
		return nil, err
	}

	out := make([]model.Account, 0, len(rows))
	for _, a := range rows {
		out = append(out, toAccount(a))
	}
	return out, nil
}

func (ls *LedgerService) Entries(filter store.EntryFilter) ([]model.Entry, error) {
	rows, err := ls.repo.GetEntries(filter)
	if err != nil {
		return nil, err
	}

	out := make([]model.Entry, 0, len(rows))
	for _, e := range rows {
		out = append(out, toEntry(e))
	}
	return out, nil
}

// Entry returns one entry with its lines.
func (ls *LedgerService) Entry(id int64) (*model.Entry, []model.EntryLine, error) {
	e, lines, err := ls.repo.GetEntryByID(id)
	if err != nil {
		return nil, nil, err
	}

	entry := toEntry(e)
	out := make([]model.EntryLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, model.EntryLine{
			ID:            l.ID,
			EntryID:       l.EntryID,
			AccountID:     l.AccountID,
			AccountNumber: l.AccountNumber,
			AccountName:   l.AccountName,
			Label:         l.Label,
			Debit:         utils.FromCents(l.Debit),
			Credit:        utils.FromCents(l.Credit),
		})
	}
	return &entry, out, nil
}

func (ls *LedgerService) Batches(limit int) ([]model.ImportBatchLog, error) {
	rows, err := ls.repo.GetImportBatches(limit)
	if err != nil {
		return nil, err
	}

	out := make([]model.ImportBatchLog, 0, len(rows))
	for _, b := range rows {
		out = append(out, toBatchLog(b))
	}
	return out, nil
}

func (ls *LedgerService) Batch(id string) (*model.ImportBatchLog, error) {
	b, err := ls.repo.GetImportBatch(id)
	if err != nil {
		return nil, err
	}
	log := toBatchLog(b)
	return &log, nil
}

// DeleteBatch removes a posted batch and every entry it created.
// Journals and accounts created by the batch are kept.
func (ls *LedgerService) DeleteBatch(id string) (int64, error) {
	var deleted int64

	err := ls.repo.ExecTx(func(r store.Repository) error {
		if _, err := r.GetImportBatch(id); err != nil {
			return err
		}

		n, err := r.DeleteEntriesByBatch(id)
		if err != nil {
			return err
		}
		deleted = n

		return r.DeleteImportBatch(id)
	})
	if err != nil {
		return 0, err
	}

	ls.log.WithFields(logrus.Fields{"batch_id": id, "entries": deleted}).Info("batch deleted")
	return deleted, nil
}

func toAccount(a *store.Account) model.Account {
	return model.Account{
		ID:          a.ID,
		Number:      a.Number,
		Name:        a.Name,
		Type:        a.Type,
		Class:       a.Class,
		Description: a.Description,
	}
}

func toEntry(e *store.Entry) model.Entry {
	entry := model.Entry{
		ID:          e.ID,
		JournalID:   e.JournalID,
		JournalCode: e.JournalCode,
		EntryNumber: e.EntryNumber,
		EntryDate:   e.EntryDate,
		Description: e.Description,
		Reference:   e.Reference,
		TotalDebit:  utils.FromCents(e.TotalDebit),
		TotalCredit: utils.FromCents(e.TotalCredit),
	}
	if e.BatchID != nil {
		entry.BatchID = *e.BatchID
	}
	return entry
}

func toBatchLog(b *store.ImportBatch) model.ImportBatchLog {
	return model.ImportBatchLog{
		ID:              b.ID,
		CompanyID:       b.CompanyID,
		Format:          b.Format,
		EntriesCreated:  b.EntriesCreated,
		JournalsCreated: b.JournalsCreated,
		AccountsCreated: b.AccountsCreated,
		ErrorCount:      b.ErrorCount,
		TotalDebit:      utils.FromCents(b.TotalDebit),
		TotalCredit:     utils.FromCents(b.TotalCredit),
		CreatedAt:       b.CreatedAt,
	}
}
