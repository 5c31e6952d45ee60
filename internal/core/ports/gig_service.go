package ports

import (
	"context"

	"github.com/gigstm/gigs-platform/internal/core/domain"
)

// GigInput carries the editable fields of a gig. Nil fields are left unchanged
// on update and must be present on create.
type GigInput struct {
	Title            *string
	Category         *string
	ShortDescription *string
	FullDescription  *string
	Location         *string
	WorkType         *string
	PaymentType      *string
	Payout           *float64
	Openings         *int
	Status           *string
	Skills           *string
	ScopeOfWork      *string
	PayoutTerms      *string
}

// ApplyInput is the applicant's contact sheet for one application.
type ApplyInput struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required,phone"`
	Email    string `json:"email" validate:"required,basic_email"`
	Location string `json:"location"`
	Skills   string `json:"skills"`
}

type GigService interface {
	Create(ctx context.Context, in GigInput) (*domain.Gig, error)
	Update(ctx context.Context, id string, in GigInput) (*domain.Gig, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.Gig, error)
	List(ctx context.Context, filter GigFilter) ([]*domain.Gig, error)
	// GetPublished and ListPublished hide drafts and internal-only fields.
	GetPublished(ctx context.Context, id string) (*domain.Gig, error)
	ListPublished(ctx context.Context, filter GigFilter) ([]*domain.Gig, error)
	Apply(ctx context.Context, accountID, gigID string, in ApplyInput) (*domain.GigApplication, error)
	ListApplications(ctx context.Context, gigID string) ([]*domain.GigApplication, error)
	MyApplications(ctx context.Context, accountID string) ([]*domain.GigApplication, error)
	UpdateApplicationStatus(ctx context.Context, id, status string) (*domain.GigApplication, error)
}
