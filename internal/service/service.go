package service

import (
	"fmt"

	"github.com/hance08/kea-import/internal/config"
	"github.com/hance08/kea-import/internal/store"
	"github.com/sirupsen/logrus"
)

type Service struct {
	Import *ImportService
	Ledger *LedgerService
}

func NewService(repo store.TxRepository, poster Poster, cfg *config.Config, log *logrus.Logger) (*Service, error) {
	importSvc, err := NewImportService(poster, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create import service: %w", err)
	}

	return &Service{
		Import: importSvc,
		Ledger: NewLedgerService(repo, log),
	}, nil
}
