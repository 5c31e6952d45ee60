package ports

import (
	"context"
	"io"

	"github.com/gigstm/gigs-platform/internal/core/domain"
)

type AdminService interface {
	// ListCombined clamps page to >= 1 and limit to [1, 100] (0 means default).
	ListCombined(ctx context.Context, page, limit int, search string) (*domain.CombinedPage, error)
	SetStatus(ctx context.Context, externalID, status, feedback string) (*domain.Account, error)
	DeleteAccount(ctx context.Context, externalID string) error
	ExportCSV(ctx context.Context, search string, w io.Writer) error
}
