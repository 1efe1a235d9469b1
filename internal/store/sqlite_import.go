package store

import (
	"database/sql"
	"errors"
	"fmt"
)

const importBatchColumns = `id, company_id, format, entries_created, journals_created,
               accounts_created, error_count, total_debit, total_credit, created_at`

func (s *Store) CreateImportBatch(b ImportBatch) error {
	_, err := s.db.Exec(`
        INSERT INTO import_batches (`+importBatchColumns+`)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `, b.ID, b.CompanyID, b.Format, b.EntriesCreated, b.JournalsCreated,
		b.AccountsCreated, b.ErrorCount, b.TotalDebit, b.TotalCredit, b.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("import batch %s: %w", b.ID, ErrConstraintViolation)
		}
		return fmt.Errorf("failed to insert import batch: %w", err)
	}
	return nil
}

// UpdateImportBatch rewrites the counters of an existing batch.
func (s *Store) UpdateImportBatch(b ImportBatch) error {
	result, err := s.db.Exec(`
        UPDATE import_batches
        SET entries_created = ?, journals_created = ?, accounts_created = ?,
            error_count = ?, total_debit = ?, total_credit = ?
        WHERE id = ?
    `, b.EntriesCreated, b.JournalsCreated, b.AccountsCreated,
		b.ErrorCount, b.TotalDebit, b.TotalCredit, b.ID)
	if err != nil {
		return fmt.Errorf("failed to update import batch: %w", err)
	}

	return expectOneRow(result, "import batch "+b.ID)
}

func (s *Store) GetImportBatch(id string) (*ImportBatch, error) {
	row := s.db.QueryRow(`
        SELECT `+importBatchColumns+`
        FROM import_batches
        WHERE id = ?
    `, id)

	b, err := scanImportBatch(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("import batch %s: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query import batch: %w", err)
	}
	return b, nil
}

func (s *Store) GetImportBatches(limit int) ([]*ImportBatch, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(`
        SELECT `+importBatchColumns+`
        FROM import_batches
        ORDER BY created_at DESC, id
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query import batches: %w", err)
	}
	defer rows.Close()

	var batches []*ImportBatch
	for rows.Next() {
		b, err := scanImportBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan import batch: %w", err)
		}
		batches = append(batches, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating import batches: %w", err)
	}

	return batches, nil
}

// DeleteImportBatch removes the log row. Entries of the batch must be
// deleted first with DeleteEntriesByBatch, or they are kept detached.
func (s *Store) DeleteImportBatch(id string) error {
	result, err := s.db.Exec("DELETE FROM import_batches WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete import batch: %w", err)
	}

	return expectOneRow(result, "import batch "+id)
}

func expectOneRow(result sql.Result, what string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrRecordNotFound)
	}
	return nil
}

func scanImportBatch(row scanner) (*ImportBatch, error) {
	b := &ImportBatch{}
	err := row.Scan(
		&b.ID,
		&b.CompanyID,
		&b.Format,
		&b.EntriesCreated,
		&b.JournalsCreated,
		&b.AccountsCreated,
		&b.ErrorCount,
		&b.TotalDebit,
		&b.TotalCredit,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}
