package service

import (
	"context"

	"github.com/hance08/kea-import/internal/model"
)

// Poster creates ledger entries from a canonical payload.
// It is called at most once per batch and never retried.
type Poster interface {
	Post(ctx context.Context, companyID string, payload string) (PostResult, error)
}

type PostResult struct {
	Success bool
	Summary *model.PostingSummary
	Error   string
}

type batchIDKey struct{}

// WithBatchID attaches the batch id to ctx so the poster can tag what it creates.
func WithBatchID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, batchIDKey{}, id)
}

func BatchIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(batchIDKey{}).(string)
	return id, ok && id != ""
}
