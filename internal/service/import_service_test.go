package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hance08/kea-import/internal/config"
	"github.com/hance08/kea-import/internal/logging"
	"github.com/hance08/kea-import/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePoster struct {
	calls     int
	companyID string
	payload   string
	batchID   string
	result    PostResult
	err       error
}

func (f *fakePoster) Post(ctx context.Context, companyID string, payload string) (PostResult, error) {
	f.calls++
	f.companyID = companyID
	f.payload = payload
	f.batchID, _ = BatchIDFromContext(ctx)
	return f.result, f.err
}

func newTestImportService(t *testing.T, poster Poster) *ImportService {
	t.Helper()

	svc, err := NewImportService(poster, config.NewDefault(), logging.Discard())
	require.NoError(t, err)
	return svc
}

var header = []any{"Date", "Journal", "Voucher", "Account", "Label", "Debit", "Credit"}

func okPoster() *fakePoster {
	return &fakePoster{result: PostResult{
		Success: true,
		Summary: &model.PostingSummary{EntriesCreated: 1, JournalsCreated: 1, AccountsCreated: 2},
	}}
}

func TestScenarioBalancedVoucher(t *testing.T) {
	poster := okPoster()
	svc := newTestImportService(t, poster)

	batch, err := svc.Prepare([][]any{
		header,
		{"15/01/2025", "AC", "V1", "607100", "Achat", "1000.00", ""},
		{"2025-01-15", "AC", "V1", "401000", "Fournisseur", "", 1000.0},
	})
	require.NoError(t, err)

	s := batch.Summary()
	assert.Equal(t, model.Summary{TotalRows: 2, ValidCount: 2, EligibleCount: 2}, s)

	balances := batch.Balances()
	require.Len(t, balances, 1)
	assert.True(t, balances[0].Balanced)

	result, err := svc.Post(context.Background(), batch, "acme")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Posting.EntriesCreated)
	assert.Equal(t, batch.ID(), result.BatchID)

	assert.Equal(t, 1, poster.calls)
	assert.Equal(t, "acme", poster.companyID)
	assert.Equal(t, batch.ID(), poster.batchID)

	lines := strings.Split(poster.payload, "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "JournalCode|"))
	assert.Equal(t, "AC|Journal AC|V1|20250115|607100|Achat|||V1|20250115|Achat|1000,00|0,00|||||", lines[1])
}

func TestScenarioMissingAccount(t *testing.T) {
	svc := newTestImportService(t, okPoster())

	batch, err := svc.Prepare([][]any{
		header,
		{"15/01/2025", "AC", "V1", "", "Achat", "1000", ""},
		{"15/01/2025", "AC", "V1", "401000", "Fournisseur", "", "1000"},
	})
	require.NoError(t, err)

	diags := batch.Diagnostics()
	require.Len(t, diags, 2)
	assert.False(t, diags[0].IsValid)
	assert.Contains(t, diags[0].Violations, "account code is required")
	assert.True(t, diags[1].IsValid)

	require.Len(t, batch.Balances(), 1)
	assert.True(t, batch.Balances()[0].Balanced, "invalid rows still count toward the voucher")

	eligible := batch.Eligible()
	require.Len(t, eligible, 1)
	assert.Equal(t, 2, eligible[0].RowIndex)
	assert.Equal(t, 1, batch.Summary().InvalidCount)

	invalid := batch.Invalid()
	require.Len(t, invalid, 1)
	assert.Equal(t, 1, invalid[0].RowIndex)
	assert.Empty(t, batch.SkippedUnbalanced())
}

func TestScenarioUnbalancedVoucher(t *testing.T) {
	poster := okPoster()
	svc := newTestImportService(t, poster)

	batch, err := svc.Prepare([][]any{
		header,
		{"15/01/2025", "OD", "V2", "607100", "x", "500.00", ""},
		{"15/01/2025", "OD", "V2", "401000", "x", "", "499.00"},
	})
	require.NoError(t, err)

	s := batch.Summary()
	assert.Equal(t, 2, s.ValidCount)
	assert.Equal(t, 1, s.UnbalancedVoucherCount)
	assert.Equal(t, 2, s.SkippedUnbalancedCount)
	assert.Zero(t, s.EligibleCount)
	assert.Len(t, batch.UnbalancedVouchers(), 1)
	assert.Empty(t, batch.Invalid())

	skipped := batch.SkippedUnbalanced()
	require.Len(t, skipped, 2)
	assert.Equal(t, []int{1, 2}, []int{skipped[0].RowIndex, skipped[1].RowIndex})

	_, err = svc.Post(context.Background(), batch, "acme")
	assert.ErrorIs(t, err, ErrNothingToImport)
	assert.Zero(t, poster.calls)
}

func TestScenarioTextAmounts(t *testing.T) {
	svc := newTestImportService(t, okPoster())

	batch, err := svc.Prepare([][]any{
		header,
		{"15/01/2025", "OD", "V3", "512000", "x", "1 234,56", ""},
		{"15/01/2025", "OD", "V3", "706000", "x", "", "1234.56"},
		{"15/01/2025", "OD", "V4", "512000", "x", "abc", ""},
	})
	require.NoError(t, err)

	rows := batch.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "1234.56", rows[0].Debit.StringFixed(2))
	assert.True(t, rows[2].Debit.IsZero())
	assert.Contains(t, rows[2].Violations, "a debit or credit amount is required")
	assert.Equal(t, 2, batch.Summary().EligibleCount)
}

func TestScenarioNoData(t *testing.T) {
	poster := okPoster()
	svc := newTestImportService(t, poster)

	for _, rows := range [][][]any{
		nil,
		{header},
		{header, {"", "", "", "", "", "", ""}, {}},
	} {
		batch, err := svc.Prepare(rows)
		assert.ErrorIs(t, err, ErrNoData)
		assert.Nil(t, batch)
	}
	assert.Zero(t, poster.calls)
}

func TestBlankRowsLeaveGapsInIndexes(t *testing.T) {
	svc := newTestImportService(t, okPoster())

	batch, err := svc.Prepare([][]any{
		header,
		{"15/01/2025", "OD", "V1", "512000", "x", "10", ""},
		{},
		{"15/01/2025", "OD", "V1", "706000", "x", "", "10"},
	})
	require.NoError(t, err)

	var indexes []int
	for _, d := range batch.Diagnostics() {
		indexes = append(indexes, d.RowIndex)
	}
	assert.Equal(t, []int{1, 3}, indexes)
}

func TestPostIsSingleShot(t *testing.T) {
	poster := okPoster()
	svc := newTestImportService(t, poster)

	batch, err := svc.Prepare([][]any{
		header,
		{"15/01/2025", "AC", "V1", "607100", "x", "10", ""},
		{"15/01/2025", "AC", "V1", "401000", "x", "", "10"},
	})
	require.NoError(t, err)

	_, err = svc.Post(context.Background(), batch, "acme")
	require.NoError(t, err)
	assert.True(t, batch.Posted())

	_, err = svc.Post(context.Background(), batch, "acme")
	assert.ErrorIs(t, err, ErrBatchAlreadyPosted)
	assert.Equal(t, 1, poster.calls)
}

func TestPostFailureIsReportedNotRetried(t *testing.T) {
	tests := []struct {
		name   string
		poster *fakePoster
		want   string
	}{
		{"transport error", &fakePoster{err: errors.New("connection refused")}, "connection refused"},
		{"rejected", &fakePoster{result: PostResult{Success: false, Error: "company not found"}}, "company not found"},
		{"rejected without reason", &fakePoster{result: PostResult{}}, "posting was rejected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestImportService(t, tt.poster)
			batch, err := svc.Prepare([][]any{
				header,
				{"15/01/2025", "AC", "V1", "607100", "x", "10", ""},
				{"15/01/2025", "AC", "V1", "401000", "x", "", "10"},
			})
			require.NoError(t, err)

			result, err := svc.Post(context.Background(), batch, "acme")
			require.NoError(t, err)
			assert.False(t, result.Success)
			assert.Equal(t, tt.want, result.Error)
			assert.Equal(t, model.PostingSummary{}, result.Posting)
			assert.Equal(t, 1, tt.poster.calls)
			assert.True(t, batch.Posted())
		})
	}
}

func TestPostGuards(t *testing.T) {
	poster := okPoster()
	svc := newTestImportService(t, poster)

	batch, err := svc.Prepare([][]any{
		header,
		{"15/01/2025", "AC", "V1", "607100", "x", "10", ""},
		{"15/01/2025", "AC", "V1", "401000", "x", "", "10"},
	})
	require.NoError(t, err)

	_, err = svc.Post(context.Background(), batch, "  ")
	assert.ErrorIs(t, err, ErrCompanyRequired)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.Post(ctx, batch, "acme")
	assert.ErrorIs(t, err, context.Canceled)

	assert.False(t, batch.Posted())
	assert.Zero(t, poster.calls)
}

func TestBatchAccessorsReturnCopies(t *testing.T) {
	svc := newTestImportService(t, okPoster())

	batch, err := svc.Prepare([][]any{
		header,
		{"", "AC", "V1", "607100", "x", "10", ""},
	})
	require.NoError(t, err)

	rows := batch.Rows()
	rows[0].AccountCode = "changed"
	rows[0].Violations[0] = "changed"

	again := batch.Rows()
	assert.Equal(t, "607100", again[0].AccountCode)
	assert.Equal(t, "date is required", again[0].Violations[0])
}

func TestImportFile(t *testing.T) {
	poster := okPoster()
	svc := newTestImportService(t, poster)

	path := filepath.Join(t.TempDir(), "entries.csv")
	content := "Date;Journal;Voucher;Account;Label;Debit;Credit\n" +
		"15/01/2025;AC;V1;607100;Achat;1000,00;\n" +
		"15/01/2025;AC;V1;401000;Fournisseur;;1000,00\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	batch, result, err := svc.ImportFile(context.Background(), path, "acme")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, path, batch.Source())
	assert.Equal(t, 2, batch.Summary().EligibleCount)
	assert.Equal(t, 1, poster.calls)

	_, _, err = svc.ImportFile(context.Background(), filepath.Join(t.TempDir(), "entries.pdf"), "acme")
	assert.Error(t, err)
}

func TestNewImportServiceRejectsBadConfig(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Import.BalanceTolerance = 0
	_, err := NewImportService(okPoster(), cfg, logging.Discard())
	assert.Error(t, err)

	cfg = config.NewDefault()
	cfg.Import.AccountMinDigits = 12
	_, err = NewImportService(okPoster(), cfg, logging.Discard())
	assert.Error(t, err)
}

func TestWithDefaultJournalCode(t *testing.T) {
	svc := newTestImportService(t, okPoster()).WithDefaultJournalCode("bq")

	batch, err := svc.Prepare([][]any{
		header,
		{"15/01/2025", "", "V1", "512000", "x", "10", ""},
	})
	require.NoError(t, err)
	assert.Equal(t, "BQ", batch.Rows()[0].JournalCode)
}

func TestPrepareFileKeepsCSVLinePositions(t *testing.T) {
	svc := newTestImportService(t, okPoster())

	path := filepath.Join(t.TempDir(), "entries.csv")
	content := "Date;Journal;Voucher;Account;Label;Debit;Credit\n" +
		"15/01/2025;AC;V1;607100;Achat;1000,00;\n" +
		"\n" +
		"15/01/2025;AC;V1;;Fournisseur;;1000,00\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	batch, err := svc.PrepareFile(path)
	require.NoError(t, err)

	diagnostics := batch.Diagnostics()
	require.Len(t, diagnostics, 2)
	assert.Equal(t, 1, diagnostics[0].RowIndex)
	assert.Equal(t, 3, diagnostics[1].RowIndex)
	assert.False(t, diagnostics[1].IsValid)
}
