package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gigstm/gigs-platform/internal/core/domain"
	"github.com/gigstm/gigs-platform/internal/core/ports"
	"github.com/gigstm/gigs-platform/internal/pkg/metrics"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// AdminService backs the operator console: the combined view, moderation
// and account removal.
type AdminService struct {
	accounts     ports.AccountRepository
	combined     ports.CombinedRepository
	onboarding   ports.OnboardingRepository
	applications ports.ApplicationRepository
	logger       zerolog.Logger
}

func NewAdminService(
	accounts ports.AccountRepository,
	combined ports.CombinedRepository,
	onboarding ports.OnboardingRepository,
	applications ports.ApplicationRepository,
	logger zerolog.Logger,
) *AdminService {
	return &AdminService{
		accounts:     accounts,
		combined:     combined,
		onboarding:   onboarding,
		applications: applications,
		logger:       logger,
	}
}

// clampPage normalises paging input instead of rejecting it.
func clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	switch {
	case limit == 0:
		limit = defaultPageLimit
	case limit < 1:
		limit = 1
	case limit > maxPageLimit:
		limit = maxPageLimit
	}
	return page, limit
}

func (s *AdminService) ListCombined(ctx context.Context, page, limit int, search string) (*domain.CombinedPage, error) {
	page, limit = clampPage(page, limit)

	records, total, err := s.combined.ListCombined(ctx, ports.CombinedFilter{
		Search: strings.TrimSpace(search),
		Skip:   (page - 1) * limit,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	items := make([]*domain.CombinedRecord, 0, len(records))
	for _, r := range records {
		items = append(items, r.Masked())
	}
	return &domain.CombinedPage{
		Items:       items,
		Total:       total,
		Page:        page,
		Limit:       limit,
		HasNextPage: int64(page*limit) < total,
	}, nil
}

// SetStatus moderates the account with the given external id. Disapproval
// needs a feedback message; approval clears any previous one.
func (s *AdminService) SetStatus(ctx context.Context, externalID, status, feedback string) (*domain.Account, error) {
	st, err := domain.ParseModerationStatus(strings.TrimSpace(status))
	if err != nil {
		return nil, err
	}

	feedback = strings.TrimSpace(feedback)
	switch st {
	case domain.StatusDisapproved:
		if feedback == "" {
			verr := &domain.ValidationError{}
			verr.Add("feedbackMessage", "is required when disapproving")
			return nil, verr
		}
	case domain.StatusApproved:
		feedback = ""
	}

	if err := s.accounts.SetModeration(ctx, externalID, st, feedback); err != nil {
		return nil, err
	}
	metrics.ModerationTotal.WithLabelValues(string(st)).Inc()
	s.logger.Info().Str("external_id", externalID).Str("status", string(st)).Msg("account moderated")

	return s.accounts.FindByExternalID(ctx, externalID)
}

// DeleteAccount removes an account together with its onboarding records and
// gig applications.
func (s *AdminService) DeleteAccount(ctx context.Context, externalID string) error {
	acc, err := s.accounts.Delete(ctx, externalID)
	if err != nil {
		return err
	}
	if err := s.onboarding.DeleteByAccount(ctx, acc.ID); err != nil {
		return fmt.Errorf("delete onboarding records: %w", err)
	}
	if err := s.applications.DeleteByAccount(ctx, acc.ID); err != nil {
		return fmt.Errorf("delete applications: %w", err)
	}
	s.logger.Info().Str("external_id", externalID).Str("account_id", acc.ID).Msg("account deleted")
	return nil
}

var exportHeader = []string{
	"Unique ID", "Name", "Email", "Verified", "Status", "Feedback", "Registered At",
	"Mobile", "Job Role", "Gender", "DOB", "Aadhaar", "PAN", "City", "State", "Country", "Pincode",
	"Experience Years", "Experience Months", "Employment Type", "Occupation", "Interest Type",
	"Bank Name", "Account Number", "IFSC Code", "Completion %",
}

// ExportCSV writes every matching record, masked, newest first.
func (s *AdminService) ExportCSV(ctx context.Context, search string, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}

	filter := ports.CombinedFilter{Search: strings.TrimSpace(search)}
	err := s.combined.EachCombined(ctx, filter, func(r *domain.CombinedRecord) error {
		return cw.Write(exportRow(r))
	})
	if err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func exportRow(r *domain.CombinedRecord) []string {
	completion := domain.EvaluateCompletion(r.Snapshot(), nil)
	m := r.Masked()

	row := []string{
		m.Account.ExternalID,
		m.Account.Name,
		m.Account.Email,
		fmt.Sprintf("%t", m.Account.EmailVerified),
		string(m.Account.Status),
		m.Account.FeedbackMessage,
		m.Account.CreatedAt.UTC().Format(time.RFC3339),
	}

	p := m.Profile
	if p == nil {
		p = &domain.Profile{}
	}
	row = append(row, p.Mobile, p.JobRole, p.Gender, p.DOB, p.Aadhaar, p.PAN, p.City, p.State, p.Country, p.Pincode)

	e := m.Experience
	if e == nil {
		e = &domain.Experience{}
	}
	row = append(row, e.ExperienceYears, e.ExperienceMonths, e.EmploymentType, e.Occupation, e.InterestType)

	k := m.KYC
	if k == nil {
		k = &domain.KYC{}
	}
	row = append(row, k.BankName, k.AccountNumber, k.IFSCCode, fmt.Sprintf("%d", completion.Percentage))
	return row
}
