package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gigstm/gigs-platform/internal/core/domain"
	"github.com/gigstm/gigs-platform/internal/core/ports"
	"github.com/gigstm/gigs-platform/internal/pkg/metrics"
)

// GigService manages gigs and the applications made to them. Applying is
// reserved to accounts whose onboarding gate is open.
type GigService struct {
	gigs         ports.GigRepository
	applications ports.ApplicationRepository
	gate         ports.OnboardingService
	logger       zerolog.Logger
}

func NewGigService(gigs ports.GigRepository, applications ports.ApplicationRepository, gate ports.OnboardingService, logger zerolog.Logger) *GigService {
	return &GigService{gigs: gigs, applications: applications, gate: gate, logger: logger}
}

func (s *GigService) Create(ctx context.Context, in ports.GigInput) (*domain.Gig, error) {
	now := time.Now().UTC()
	g := &domain.Gig{Status: domain.GigDraft, Openings: 1, CreatedAt: now, UpdatedAt: now}
	if err := applyGigInput(g, in, true); err != nil {
		return nil, err
	}
	if err := s.gigs.Create(ctx, g); err != nil {
		return nil, err
	}
	s.logger.Info().Str("gig_id", g.ID).Str("status", string(g.Status)).Msg("gig created")
	return g, nil
}

func (s *GigService) Update(ctx context.Context, id string, in ports.GigInput) (*domain.Gig, error) {
	g, err := s.gigs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyGigInput(g, in, false); err != nil {
		return nil, err
	}
	g.UpdatedAt = time.Now().UTC()
	if err := s.gigs.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Delete removes the gig and every application made to it.
func (s *GigService) Delete(ctx context.Context, id string) error {
	if err := s.gigs.Delete(ctx, id); err != nil {
		return err
	}
	return s.applications.DeleteByGig(ctx, id)
}

func (s *GigService) Get(ctx context.Context, id string) (*domain.Gig, error) {
	return s.gigs.FindByID(ctx, id)
}

func (s *GigService) List(ctx context.Context, filter ports.GigFilter) ([]*domain.Gig, error) {
	return s.gigs.List(ctx, filter)
}

func (s *GigService) GetPublished(ctx context.Context, id string) (*domain.Gig, error) {
	g, err := s.gigs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g.Status != domain.GigPublished {
		return nil, domain.ErrGigNotFound
	}
	return g.Public(), nil
}

func (s *GigService) ListPublished(ctx context.Context, filter ports.GigFilter) ([]*domain.Gig, error) {
	filter.Status = domain.GigPublished
	gigs, err := s.gigs.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Gig, 0, len(gigs))
	for _, g := range gigs {
		out = append(out, g.Public())
	}
	return out, nil
}

// Apply records an application after checking the access gate of accountID.
func (s *GigService) Apply(ctx context.Context, accountID, gigID string, in ports.ApplyInput) (*domain.GigApplication, error) {
	if err := s.gate.RequireGate(ctx, accountID); err != nil {
		return nil, err
	}

	trimStrings(&in)
	verr := &domain.ValidationError{}
	if err := collectViolations(&in, verr); err != nil {
		return nil, err
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	g, err := s.gigs.FindByID(ctx, gigID)
	if err != nil {
		return nil, err
	}
	if g.Status != domain.GigPublished {
		return nil, domain.ErrGigNotOpen
	}

	now := time.Now().UTC()
	app := &domain.GigApplication{
		GigID:         g.ID,
		GigTitle:      g.Title,
		AccountID:     accountID,
		ApplicantName: in.Name,
		Phone:         in.Phone,
		Email:         in.Email,
		Location:      in.Location,
		Skills:        in.Skills,
		Status:        domain.ApplicationApplied,
		AppliedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		return nil, err
	}
	metrics.GigApplicationsTotal.Inc()
	s.logger.Info().Str("gig_id", g.ID).Str("account_id", accountID).Msg("gig application received")
	return app, nil
}

func (s *GigService) ListApplications(ctx context.Context, gigID string) ([]*domain.GigApplication, error) {
	if _, err := s.gigs.FindByID(ctx, gigID); err != nil {
		return nil, err
	}
	return s.applications.ListByGig(ctx, gigID)
}

func (s *GigService) MyApplications(ctx context.Context, accountID string) ([]*domain.GigApplication, error) {
	return s.applications.ListByAccount(ctx, accountID)
}

func (s *GigService) UpdateApplicationStatus(ctx context.Context, id, status string) (*domain.GigApplication, error) {
	st, err := domain.ParseApplicationStatus(strings.TrimSpace(status))
	if err != nil {
		return nil, err
	}
	if err := s.applications.UpdateStatus(ctx, id, st); err != nil {
		return nil, err
	}
	return s.applications.FindByID(ctx, id)
}

// applyGigInput copies the non-nil fields of in onto g and validates the
// result. On create every descriptive field is mandatory.
func applyGigInput(g *domain.Gig, in ports.GigInput, create bool) error {
	verr := &domain.ValidationError{}

	setText := func(field string, dst *string, v *string) {
		if v == nil {
			if create {
				verr.Add(field, "is required")
			}
			return
		}
		t := strings.TrimSpace(*v)
		if t == "" {
			verr.Add(field, "is required")
			return
		}
		*dst = t
	}
	setText("gigTitle", &g.Title, in.Title)
	setText("category", &g.Category, in.Category)
	setText("shortDescription", &g.ShortDescription, in.ShortDescription)
	setText("fullDescription", &g.FullDescription, in.FullDescription)
	setText("location", &g.Location, in.Location)
	setText("workType", &g.WorkType, in.WorkType)
	setText("paymentType", &g.PaymentType, in.PaymentType)

	if in.WorkType != nil && !verr.Has("workType") && !slices.Contains(domain.WorkTypes, g.WorkType) {
		verr.Add("workType", "must be one of: "+strings.Join(domain.WorkTypes, ", "))
	}
	if in.PaymentType != nil && !verr.Has("paymentType") && !slices.Contains(domain.PaymentTypes, g.PaymentType) {
		verr.Add("paymentType", "must be one of: "+strings.Join(domain.PaymentTypes, ", "))
	}

	if in.Payout != nil {
		if *in.Payout < 0 {
			verr.Add("payout", "must be at least 0")
		} else {
			g.Payout = *in.Payout
		}
	}
	if in.Openings != nil {
		if *in.Openings < 1 {
			verr.Add("openings", "must be at least 1")
		} else {
			g.Openings = *in.Openings
		}
	}
	if in.Status != nil {
		st, err := domain.ParseGigStatus(strings.TrimSpace(*in.Status))
		if err != nil {
			verr.Add("status", "must be one of: Draft, Published")
		} else {
			g.Status = st
		}
	}

	if in.Skills != nil {
		g.Skills = strings.TrimSpace(*in.Skills)
	}
	if in.ScopeOfWork != nil {
		g.ScopeOfWork = strings.TrimSpace(*in.ScopeOfWork)
	}
	if in.PayoutTerms != nil {
		g.PayoutTerms = strings.TrimSpace(*in.PayoutTerms)
	}

	return verr.OrNil()
}
