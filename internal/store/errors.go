package store

import "errors"

var (
	ErrAccountExists       = errors.New("account already exists")
	ErrJournalExists       = errors.New("journal already exists")
	ErrEntryExists         = errors.New("entry already exists")
	ErrRecordNotFound      = errors.New("record not found")
	ErrConstraintViolation = errors.New("database constraint violation")
)
