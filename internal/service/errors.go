package service

import "errors"

var (
	ErrNoData             = errors.New("no data rows found")
	ErrNothingToImport    = errors.New("no eligible rows to import")
	ErrBatchAlreadyPosted = errors.New("batch has already been posted")
	ErrCompanyRequired    = errors.New("company id is required")
)
