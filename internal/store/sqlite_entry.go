package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

const entrySelect = `
        SELECT e.id, e.journal_id, j.code, e.entry_number, e.entry_date,
               e.description, e.reference, e.batch_id,
               COALESCE(SUM(l.debit), 0), COALESCE(SUM(l.credit), 0)
        FROM entries e
        INNER JOIN journals j ON j.id = e.journal_id
        LEFT JOIN entry_lines l ON l.entry_id = e.id
`

// CreateEntryWithLines inserts an entry and its lines.
// It relies on the caller (Service layer) to wrap it in ExecTx for atomicity.
func (s *Store) CreateEntryWithLines(e Entry, lines []EntryLine) (int64, error) {
	if len(lines) == 0 {
		return 0, fmt.Errorf("entry '%s' has no lines: %w", e.EntryNumber, ErrConstraintViolation)
	}

	var newID int64
	err := s.db.QueryRow(`
        INSERT INTO entries (journal_id, entry_number, entry_date, description, reference, batch_id)
        VALUES (?, ?, ?, ?, ?, ?)
        RETURNING id;
    `, e.JournalID, e.EntryNumber, e.EntryDate, e.Description, e.Reference, e.BatchID).Scan(&newID)

	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("entry '%s': %w", e.EntryNumber, ErrEntryExists)
		}
		if isConstraintViolation(err) {
			return 0, fmt.Errorf("entry '%s': %w", e.EntryNumber, ErrConstraintViolation)
		}
		return 0, fmt.Errorf("failed to insert entry: %w", err)
	}

	stmtLine, err := s.db.Prepare(`
        INSERT INTO entry_lines (entry_id, account_id, label, debit, credit)
        VALUES (?, ?, ?, ?, ?);
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare entry line SQL: %w", err)
	}
	defer stmtLine.Close()

	for _, line := range lines {
		if _, err := stmtLine.Exec(newID, line.AccountID, line.Label, line.Debit, line.Credit); err != nil {
			if isConstraintViolation(err) {
				return 0, fmt.Errorf("entry line (account_id: %d): %w", line.AccountID, ErrConstraintViolation)
			}
			return 0, fmt.Errorf("failed to insert entry line (account_id: %d): %w", line.AccountID, err)
		}
	}

	return newID, nil
}

func (s *Store) GetEntryByID(id int64) (*Entry, []*EntryLine, error) {
	row := s.db.QueryRow(entrySelect+`
        WHERE e.id = ?
        GROUP BY e.id
    `, id)

	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, fmt.Errorf("entry with ID %d: %w", id, ErrRecordNotFound)
		}
		return nil, nil, fmt.Errorf("failed to query entry: %w", err)
	}

	rows, err := s.db.Query(`
        SELECT l.id, l.entry_id, l.account_id, a.number, a.name, l.label, l.debit, l.credit
        FROM entry_lines l
        INNER JOIN accounts a ON a.id = l.account_id
        WHERE l.entry_id = ?
        ORDER BY l.id
    `, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query entry lines: %w", err)
	}
	defer rows.Close()

	var lines []*EntryLine
	for rows.Next() {
		line := &EntryLine{}
		err := rows.Scan(
			&line.ID,
			&line.EntryID,
			&line.AccountID,
			&line.AccountNumber,
			&line.AccountName,
			&line.Label,
			&line.Debit,
			&line.Credit,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan entry line: %w", err)
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating entry lines: %w", err)
	}

	return entry, lines, nil
}

func (s *Store) GetEntries(filter EntryFilter) ([]*Entry, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}

	var (
		where []string
		args  []any
	)
	if filter.JournalCode != "" {
		where = append(where, "j.code = ?")
		args = append(args, filter.JournalCode)
	}
	if filter.BatchID != "" {
		where = append(where, "e.batch_id = ?")
		args = append(args, filter.BatchID)
	}
	if filter.From != "" {
		where = append(where, "e.entry_date >= ?")
		args = append(args, filter.From)
	}
	if filter.To != "" {
		where = append(where, "e.entry_date <= ?")
		args = append(args, filter.To)
	}

	query := entrySelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += `
        GROUP BY e.id
        ORDER BY e.entry_date DESC, e.id DESC
        LIMIT ?
    `
	args = append(args, filter.Limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entries: %w", err)
	}

	return entries, nil
}

// DeleteEntriesByBatch removes every entry created by the batch, lines included.
func (s *Store) DeleteEntriesByBatch(batchID string) (int64, error) {
	result, err := s.db.Exec("DELETE FROM entries WHERE batch_id = ?", batchID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete entries of batch %s: %w", batchID, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*Entry, error) {
	e := &Entry{}
	var batchID sql.NullString

	err := row.Scan(
		&e.ID,
		&e.JournalID,
		&e.JournalCode,
		&e.EntryNumber,
		&e.EntryDate,
		&e.Description,
		&e.Reference,
		&batchID,
		&e.TotalDebit,
		&e.TotalCredit,
	)
	if err != nil {
		return nil, err
	}

	if batchID.Valid {
		e.BatchID = &batchID.String
	}
	return e, nil
}
