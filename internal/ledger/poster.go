// Package ledger posts canonical payloads into the SQLite ledger.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/kea-import/internal/constants"
	"github.com/hance08/kea-import/internal/fec"
	"github.com/hance08/kea-import/internal/model"
	"github.com/hance08/kea-import/internal/service"
	"github.com/hance08/kea-import/internal/store"
	"github.com/hance08/kea-import/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var errNoEntryCreated = errors.New("no entry could be created")

// Poster writes entries to the ledger. Missing journals and accounts are
// created on the way. All writes for one payload happen in a single
// transaction; entries that cannot be created are counted and reported
// without aborting the rest.
type Poster struct {
	repo store.TxRepository
	log  *logrus.Logger
	now  func() time.Time
}

func NewPoster(repo store.TxRepository, log *logrus.Logger) *Poster {
	return &Poster{repo: repo, log: log, now: time.Now}
}

// entry groups the lines sharing a journal code and an entry number.
type entry struct {
	journalCode  string
	journalLabel string
	number       string
	date         string
	reference    string
	description  string
	lines        []fec.Line
}

func (p *Poster) Post(ctx context.Context, companyID string, payload string) (service.PostResult, error) {
	if err := ctx.Err(); err != nil {
		return service.PostResult{}, err
	}

	lines, err := fec.Parse(strings.NewReader(payload))
	if err != nil {
		return service.PostResult{}, fmt.Errorf("failed to parse payload: %w", err)
	}
	if len(lines) == 0 {
		return service.PostResult{Error: "payload has no lines"}, nil
	}

	batchID, ok := service.BatchIDFromContext(ctx)
	if !ok {
		batchID = uuid.NewString()
	}

	logger := p.log.WithFields(logrus.Fields{"batch_id": batchID, "company": companyID})

	var summary model.PostingSummary
	err = p.repo.ExecTx(func(r store.Repository) error {
		summary = model.PostingSummary{}
		return p.post(ctx, r, &summary, batchID, companyID, group(lines))
	})

	if errors.Is(err, errNoEntryCreated) {
		msg := errNoEntryCreated.Error()
		if len(summary.Errors) > 0 {
			msg += ": " + summary.Errors[0]
		}
		logger.Warn(msg)
		return service.PostResult{Error: msg}, nil
	}
	if err != nil {
		return service.PostResult{}, err
	}

	logger.WithFields(logrus.Fields{
		"entries":  summary.EntriesCreated,
		"journals": summary.JournalsCreated,
		"accounts": summary.AccountsCreated,
		"errors":   summary.EntriesWithErrors,
	}).Info("payload posted")

	return service.PostResult{Success: true, Summary: &summary}, nil
}

func (p *Poster) post(ctx context.Context, r store.Repository, summary *model.PostingSummary, batchID, companyID string, entries []*entry) error {
	batch := store.ImportBatch{
		ID:        batchID,
		CompanyID: companyID,
		Format:    constants.FormatCanonical,
		CreatedAt: p.now().Unix(),
	}
	if err := r.CreateImportBatch(batch); err != nil {
		return err
	}

	journals := make(map[string]int64)
	accounts := make(map[string]int64)

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		msg := checkEntry(e)
		if msg == "" && !fitsTotals(batch, e) {
			msg = fmt.Sprintf("%s/%s: batch totals out of range", e.journalCode, e.number)
		}
		if msg != "" {
			summary.EntriesWithErrors++
			summary.Errors = append(summary.Errors, msg)
			continue
		}

		journalID, err := p.ensureJournal(r, summary, journals, e.journalCode, e.journalLabel)
		if err != nil {
			return err
		}

		storeLines := make([]store.EntryLine, 0, len(e.lines))
		var debit, credit int64
		for _, l := range e.lines {
			accountID, err := p.ensureAccount(r, summary, accounts, l.AccountNumber, l.AccountLabel)
			if err != nil {
				return err
			}
			line := store.EntryLine{
				AccountID: accountID,
				Label:     l.Label,
				Debit:     utils.ToCents(l.Debit),
				Credit:    utils.ToCents(l.Credit),
			}
			debit += line.Debit
			credit += line.Credit
			storeLines = append(storeLines, line)
		}

		_, err = r.CreateEntryWithLines(store.Entry{
			JournalID:   journalID,
			EntryNumber: e.number,
			EntryDate:   e.date,
			Description: e.description,
			Reference:   e.reference,
			BatchID:     &batchID,
		}, storeLines)
		if err != nil {
			if errors.Is(err, store.ErrEntryExists) || errors.Is(err, store.ErrConstraintViolation) {
				summary.EntriesWithErrors++
				summary.Errors = append(summary.Errors, fmt.Sprintf("%s/%s: %v", e.journalCode, e.number, err))
				continue
			}
			return err
		}

		summary.EntriesCreated++
		batch.TotalDebit += debit
		batch.TotalCredit += credit
	}

	if summary.EntriesCreated == 0 {
		return errNoEntryCreated
	}

	batch.EntriesCreated = summary.EntriesCreated
	batch.JournalsCreated = summary.JournalsCreated
	batch.AccountsCreated = summary.AccountsCreated
	batch.ErrorCount = summary.EntriesWithErrors
	return r.UpdateImportBatch(batch)
}

func (p *Poster) ensureJournal(r store.Repository, summary *model.PostingSummary, seen map[string]int64, code, label string) (int64, error) {
	if id, ok := seen[code]; ok {
		return id, nil
	}

	j, err := r.GetJournalByCode(code)
	switch {
	case err == nil:
		summary.JournalsExisting++
		seen[code] = j.ID
		return j.ID, nil
	case !errors.Is(err, store.ErrRecordNotFound):
		return 0, err
	}

	id, err := r.CreateJournal(store.Journal{
		Code: code,
		Name: JournalName(code, label),
		Type: JournalType(code),
	})
	if err != nil {
		return 0, err
	}

	summary.JournalsCreated++
	seen[code] = id
	return id, nil
}

func (p *Poster) ensureAccount(r store.Repository, summary *model.PostingSummary, seen map[string]int64, number, label string) (int64, error) {
	if id, ok := seen[number]; ok {
		return id, nil
	}

	a, err := r.GetAccountByNumber(number)
	switch {
	case err == nil:
		summary.AccountsExisting++
		seen[number] = a.ID
		return a.ID, nil
	case !errors.Is(err, store.ErrRecordNotFound):
		return 0, err
	}

	id, err := r.CreateAccount(store.Account{
		Number: number,
		Name:   AccountName(number, label),
		Type:   AccountType(number),
		Class:  AccountClass(number),
	})
	if err != nil {
		return 0, err
	}

	summary.AccountsCreated++
	seen[number] = id
	return id, nil
}

// group collects lines into entries keyed by journal code and entry
// number, in order of first appearance.
func group(lines []fec.Line) []*entry {
	index := make(map[string]*entry)
	var out []*entry

	for _, l := range lines {
		key := l.JournalCode + "|" + l.EntryNumber
		e, ok := index[key]
		if !ok {
			e = &entry{
				journalCode:  l.JournalCode,
				journalLabel: l.JournalLabel,
				number:       l.EntryNumber,
				date:         l.EntryDate,
				reference:    l.PieceRef,
				description:  l.Label,
			}
			index[key] = e
			out = append(out, e)
		}
		if e.description == "" {
			e.description = l.Label
		}
		e.lines = append(e.lines, l)
	}

	return out
}

// checkEntry returns a message when the entry cannot be written.
func checkEntry(e *entry) string {
	name := e.journalCode + "/" + e.number

	if e.journalCode == "" || e.number == "" {
		return fmt.Sprintf("%s: journal code and entry number are required", name)
	}
	if e.date == "" {
		return fmt.Sprintf("%s: entry date is missing", name)
	}

	debitSum, creditSum := decimal.Zero, decimal.Zero
	for _, l := range e.lines {
		if l.AccountNumber == "" {
			return fmt.Sprintf("%s: line %d has no account", name, l.Number)
		}
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			return fmt.Sprintf("%s: line %d has a negative amount", name, l.Number)
		}
		debitSum = debitSum.Add(l.Debit.Round(constants.AmountPlaces))
		creditSum = creditSum.Add(l.Credit.Round(constants.AmountPlaces))
	}
	if !utils.CentsInRange(debitSum) || !utils.CentsInRange(creditSum) {
		return fmt.Sprintf("%s: amount out of range", name)
	}

	debit, credit := utils.ToCents(debitSum), utils.ToCents(creditSum)
	if debit != credit {
		return fmt.Sprintf("%s: entry is unbalanced (debit %s, credit %s)",
			name, utils.FormatAmount(utils.FromCents(debit)), utils.FormatAmount(utils.FromCents(credit)))
	}
	return ""
}

// fitsTotals reports whether adding e keeps the batch totals within int64
// cents. e must already have passed checkEntry.
func fitsTotals(batch store.ImportBatch, e *entry) bool {
	var debit, credit int64
	for _, l := range e.lines {
		debit += utils.ToCents(l.Debit)
		credit += utils.ToCents(l.Credit)
	}
	return batch.TotalDebit <= math.MaxInt64-debit && batch.TotalCredit <= math.MaxInt64-credit
}
