package ports

import (
	"context"

	"github.com/gigstm/gigs-platform/internal/core/domain"
)

// CombinedFilter carries the query of the admin combined view.
type CombinedFilter struct {
	Search string // optional: case-insensitive partial match
	Skip   int
	Limit  int // 0 = no limit (export)
}

// CombinedRepository joins accounts with their onboarding records.
type CombinedRepository interface {
	// ListCombined returns a page of user accounts, newest first, and the
	// total number matching the filter.
	ListCombined(ctx context.Context, filter CombinedFilter) ([]*domain.CombinedRecord, int64, error)
	// EachCombined streams every record matching filter to fn, newest first.
	EachCombined(ctx context.Context, filter CombinedFilter, fn func(*domain.CombinedRecord) error) error
	// FindCombined returns the combined record of a single account.
	FindCombined(ctx context.Context, accountID string) (*domain.CombinedRecord, error)
}
