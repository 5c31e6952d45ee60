package ports

import (
	"context"

	"github.com/gigstm/gigs-platform/internal/core/domain"
)

// GigFilter narrows gig listings.
type GigFilter struct {
	Status   domain.GigStatus // empty = any
	Category string
	Search   string
}

type GigRepository interface {
	Create(ctx context.Context, g *domain.Gig) error
	FindByID(ctx context.Context, id string) (*domain.Gig, error)
	List(ctx context.Context, filter GigFilter) ([]*domain.Gig, error)
	// Update overwrites the mutable fields of g.
	Update(ctx context.Context, g *domain.Gig) error
	Delete(ctx context.Context, id string) error
}

type ApplicationRepository interface {
	// Create fails with domain.ErrAlreadyApplied when the account already
	// applied to the gig.
	Create(ctx context.Context, a *domain.GigApplication) error
	FindByID(ctx context.Context, id string) (*domain.GigApplication, error)
	ListByGig(ctx context.Context, gigID string) ([]*domain.GigApplication, error)
	ListByAccount(ctx context.Context, accountID string) ([]*domain.GigApplication, error)
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error
	DeleteByGig(ctx context.Context, gigID string) error
	DeleteByAccount(ctx context.Context, accountID string) error
}
