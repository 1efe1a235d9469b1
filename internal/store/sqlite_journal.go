package store

import (
	"database/sql"
	"errors"
	"fmt"
)

func (s *Store) CreateJournal(j Journal) (int64, error) {
	var newID int64
	err := s.db.QueryRow(`
        INSERT INTO journals (code, name, type, description)
        VALUES (?, ?, ?, ?)
        RETURNING id;
    `, j.Code, j.Name, j.Type, j.Description).Scan(&newID)

	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("failed to create journal '%s': %w", j.Code, ErrJournalExists)
		}
		return 0, fmt.Errorf("failed to insert journal: %w", err)
	}

	return newID, nil
}

func (s *Store) GetJournalByCode(code string) (*Journal, error) {
	j := &Journal{}
	err := s.db.QueryRow(`
        SELECT id, code, name, type, description
        FROM journals
        WHERE code = ?
    `, code).Scan(&j.ID, &j.Code, &j.Name, &j.Type, &j.Description)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("journal '%s': %w", code, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query journal '%s': %w", code, err)
	}

	return j, nil
}

func (s *Store) GetAllJournals() ([]*Journal, error) {
	rows, err := s.db.Query(`
        SELECT id, code, name, type, description
        FROM journals
        ORDER BY code
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query journals: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var journals []*Journal
	for rows.Next() {
		j := &Journal{}
		if err := rows.Scan(&j.ID, &j.Code, &j.Name, &j.Type, &j.Description); err != nil {
			return nil, fmt.Errorf("failed to scan journal: %w", err)
		}
		journals = append(journals, j)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journals: %w", err)
	}

	return journals, nil
}
