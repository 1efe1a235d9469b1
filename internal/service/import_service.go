package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/hance08/kea-import/internal/config"
	"github.com/hance08/kea-import/internal/decoder"
	"github.com/hance08/kea-import/internal/logic/voucher"
	"github.com/hance08/kea-import/internal/model"
	"github.com/hance08/kea-import/internal/normalize"
	"github.com/hance08/kea-import/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type ImportService struct {
	poster     Poster
	normalizer *normalize.Normalizer
	validator  *validation.RowValidator
	balancer   *voucher.Balancer
	log        *logrus.Logger
	decodeFile func(path string) ([][]any, error)
}

func NewImportService(poster Poster, cfg *config.Config, log *logrus.Logger) (*ImportService, error) {
	validator, err := validation.NewRowValidator(cfg.Import.AccountMinDigits, cfg.Import.AccountMaxDigits)
	if err != nil {
		return nil, fmt.Errorf("invalid import config: %w", err)
	}

	balancer, err := voucher.NewBalancer(decimal.NewFromFloat(cfg.Import.BalanceTolerance))
	if err != nil {
		return nil, fmt.Errorf("invalid import config: %w", err)
	}

	return &ImportService{
		poster:     poster,
		normalizer: normalize.NewNormalizer(cfg.Defaults.JournalCode),
		validator:  validator,
		balancer:   balancer,
		log:        log,
		decodeFile: decoder.DecodeFile,
	}, nil
}

// Prepare runs the decoded sheet through normalization, validation,
// balancing and filtering. rows[0] is the header and is skipped.
// ErrNoData is returned when no non-blank data row remains.
func (is *ImportService) Prepare(rows [][]any) (*ImportBatch, error) {
	if len(rows) < 2 {
		return nil, ErrNoData
	}

	normalized := is.normalizer.NormalizeRows(rows[1:])
	if len(normalized) == 0 {
		return nil, ErrNoData
	}

	validated := is.validator.ValidateAll(normalized)
	balances := is.balancer.Balance(validated)

	batch := newImportBatch(uuid.NewString(), validated, balances)

	s := batch.Summary()
	is.log.WithFields(logrus.Fields{
		"batch_id":            batch.ID(),
		"rows":                s.TotalRows,
		"valid":               s.ValidCount,
		"invalid":             s.InvalidCount,
		"unbalanced_vouchers": s.UnbalancedVoucherCount,
		"skipped_unbalanced":  s.SkippedUnbalancedCount,
		"eligible":            s.EligibleCount,
		"tolerance":           is.balancer.Tolerance().String(),
	}).Debug("batch prepared")

	return batch, nil
}

// PrepareFile decodes path with the decoder matching its extension and
// prepares the result.
func (is *ImportService) PrepareFile(path string) (*ImportBatch, error) {
	rows, err := is.decodeFile(path)
	if err != nil {
		return nil, err
	}

	batch, err := is.Prepare(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	batch.source = path
	return batch, nil
}

// Post sends the eligible rows of batch to the poster, exactly once.
// A poster failure is reported in the result, not as an error; the
// returned error is reserved for batches that were never sent.
func (is *ImportService) Post(ctx context.Context, batch *ImportBatch, companyID string) (model.ImportResult, error) {
	if batch.posted {
		return model.ImportResult{}, ErrBatchAlreadyPosted
	}

	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return model.ImportResult{}, ErrCompanyRequired
	}

	if batch.summary.EligibleCount == 0 {
		return model.ImportResult{}, ErrNothingToImport
	}

	if err := ctx.Err(); err != nil {
		return model.ImportResult{}, fmt.Errorf("import cancelled: %w", err)
	}

	payload := batch.Payload()
	batch.posted = true

	logger := is.log.WithFields(logrus.Fields{
		"batch_id": batch.ID(),
		"company":  companyID,
		"lines":    batch.summary.EligibleCount,
	})
	logger.Info("posting batch")

	result := model.ImportResult{BatchID: batch.ID()}

	res, err := is.poster.Post(WithBatchID(ctx, batch.ID()), companyID, payload)
	if err != nil {
		logger.WithError(err).Error("posting failed")
		result.Error = err.Error()
		return result, nil
	}

	if !res.Success {
		result.Error = res.Error
		if result.Error == "" {
			result.Error = "posting was rejected"
		}
		logger.WithField("reason", result.Error).Warn("posting rejected")
		return result, nil
	}

	result.Success = true
	if res.Summary != nil {
		result.Posting = *res.Summary
		result.Posting.Errors = append([]string(nil), res.Summary.Errors...)
	}

	logger.WithFields(logrus.Fields{
		"entries":  result.Posting.EntriesCreated,
		"journals": result.Posting.JournalsCreated,
		"accounts": result.Posting.AccountsCreated,
		"errors":   result.Posting.EntriesWithErrors,
	}).Info("batch posted")

	return result, nil
}

// ImportFile decodes, prepares and posts path in one go.
func (is *ImportService) ImportFile(ctx context.Context, path, companyID string) (*ImportBatch, model.ImportResult, error) {
	batch, err := is.PrepareFile(path)
	if err != nil {
		return nil, model.ImportResult{}, err
	}

	result, err := is.Post(ctx, batch, companyID)
	return batch, result, err
}

// WithDefaultJournalCode returns a copy of the service that fills empty
// journal codes with code instead of the configured default.
func (is *ImportService) WithDefaultJournalCode(code string) *ImportService {
	clone := *is
	clone.normalizer = normalize.NewNormalizer(code)
	return &clone
}
