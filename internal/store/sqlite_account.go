package store

import (
	"database/sql"
	"errors"
	"fmt"
)

func (s *Store) CreateAccount(a Account) (int64, error) {
	stmt, err := s.db.Prepare(`
        INSERT INTO accounts (number, name, type, class, description)
        VALUES (?, ?, ?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	var newID int64
	err = stmt.QueryRow(a.Number, a.Name, a.Type, a.Class, a.Description).Scan(&newID)

	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("failed to create account '%s': %w", a.Number, ErrAccountExists)
		}
		return 0, fmt.Errorf("failed to executing SQL insertion : %w", err)
	}

	return newID, nil
}

func (s *Store) GetAccountByNumber(number string) (*Account, error) {
	row := s.db.QueryRow(`
        SELECT id, number, name, type, class, description
        FROM accounts
        WHERE number = ?
    `, number)

	acc := &Account{}
	err := row.Scan(&acc.ID, &acc.Number, &acc.Name, &acc.Type, &acc.Class, &acc.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account '%s': %w", number, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query account '%s': %w", number, err)
	}

	return acc, nil
}

func (s *Store) GetAllAccounts() ([]*Account, error) {
	rows, err := s.db.Query(`
        SELECT id, number, name, type, class, description
        FROM accounts
        ORDER BY number
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return s.scanAccounts(rows)
}

func (s *Store) GetAccountsByClass(class int) ([]*Account, error) {
	rows, err := s.db.Query(`
        SELECT id, number, name, type, class, description
        FROM accounts
        WHERE class = ?
        ORDER BY number
    `, class)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts of class %d: %w", class, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return s.scanAccounts(rows)
}

func (s *Store) scanAccounts(rows *sql.Rows) ([]*Account, error) {
	var accounts []*Account
	for rows.Next() {
		acc := &Account{}
		if err := rows.Scan(&acc.ID, &acc.Number, &acc.Name, &acc.Type, &acc.Class, &acc.Description); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts: %w", err)
	}

	return accounts, nil
}
