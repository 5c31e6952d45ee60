package handler

import (
	"context"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/gigstm/gigs-platform/internal/api/middleware"
	"github.com/gigstm/gigs-platform/internal/core/domain"
	"github.com/gigstm/gigs-platform/internal/core/ports"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func authenticate(c echo.Context, accountID, role string) {
	c.Set(middleware.KeyAccountID, accountID)
	c.Set(middleware.KeyRole, role)
}

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.Account, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.LoginResult, error)
	forgotFn   func(ctx context.Context, email, resetBaseURL string) error
	changeFn   func(ctx context.Context, accountID, current, next, confirm string) error
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Account, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) VerifyOTP(context.Context, string, string) (*domain.Account, error) {
	return &domain.Account{EmailVerified: true}, nil
}

func (s *stubAuthService) ResendOTP(context.Context, string) error { return nil }

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) ForgotPassword(ctx context.Context, email, resetBaseURL string) error {
	return s.forgotFn(ctx, email, resetBaseURL)
}

func (s *stubAuthService) ResetPassword(context.Context, string, string) error { return nil }

func (s *stubAuthService) ChangePassword(ctx context.Context, accountID, current, next, confirm string) error {
	return s.changeFn(ctx, accountID, current, next, confirm)
}

type stubOnboardingService struct {
	personal   ports.PersonalInput
	kyc        ports.KYCInput
	files      ports.Uploads
	fileBodies map[domain.FileKey]string
	accountID  string
	gate       domain.Gate
}

func (s *stubOnboardingService) capture(accountID string, files ports.Uploads) {
	s.accountID = accountID
	s.files = files
	s.fileBodies = make(map[domain.FileKey]string, len(files))
	for k, u := range files {
		b, _ := io.ReadAll(u.Reader)
		s.fileBodies[k] = string(b)
	}
}

func (s *stubOnboardingService) SubmitPersonal(_ context.Context, accountID string, in ports.PersonalInput, files ports.Uploads) (*domain.Profile, error) {
	s.personal = in
	s.capture(accountID, files)
	return &domain.Profile{AccountID: accountID, Name: in.Name, Aadhaar: in.Aadhaar}, nil
}

func (s *stubOnboardingService) SubmitExperience(_ context.Context, accountID string, _ ports.ExperienceInput, files ports.Uploads) (*domain.Experience, error) {
	s.capture(accountID, files)
	return &domain.Experience{AccountID: accountID}, nil
}

func (s *stubOnboardingService) SubmitKYC(_ context.Context, accountID string, in ports.KYCInput, files ports.Uploads) (*domain.KYC, error) {
	s.kyc = in
	s.capture(accountID, files)
	return &domain.KYC{AccountID: accountID, BankName: in.BankName, AccountNumber: in.AccountNumber, IFSCCode: in.IFSCCode}, nil
}

func (s *stubOnboardingService) Completion(context.Context, string) (domain.Completion, error) {
	return s.gate.Completion, nil
}

func (s *stubOnboardingService) Gate(context.Context, string) (domain.Gate, error) {
	return s.gate, nil
}

func (s *stubOnboardingService) RequireGate(context.Context, string) error {
	if !s.gate.Open {
		return domain.ErrOnboardingIncomplete
	}
	return nil
}

func (s *stubOnboardingService) MyCombined(_ context.Context, accountID string) (*ports.MyOnboarding, error) {
	return &ports.MyOnboarding{Record: &domain.CombinedRecord{Account: domain.AccountSummary{ID: accountID}}, Gate: s.gate}, nil
}

type stubAdminService struct {
	page, limit int
	search      string
	setStatusFn func(externalID, status, feedback string) (*domain.Account, error)
	deleted     []string
	csv         string
}

func (s *stubAdminService) ListCombined(_ context.Context, page, limit int, search string) (*domain.CombinedPage, error) {
	s.page, s.limit, s.search = page, limit, search
	return &domain.CombinedPage{Page: page, Limit: limit}, nil
}

func (s *stubAdminService) SetStatus(_ context.Context, externalID, status, feedback string) (*domain.Account, error) {
	return s.setStatusFn(externalID, status, feedback)
}

func (s *stubAdminService) DeleteAccount(_ context.Context, externalID string) error {
	if externalID == "GIG0000000" {
		return domain.ErrAccountNotFound
	}
	s.deleted = append(s.deleted, externalID)
	return nil
}

func (s *stubAdminService) ExportCSV(_ context.Context, search string, w io.Writer) error {
	s.search = search
	_, err := io.WriteString(w, s.csv)
	return err
}

type stubGigService struct {
	ports.GigService // unimplemented methods panic
	filter           ports.GigFilter
	applied          map[string]ports.ApplyInput
	applyErr         error
}

func (s *stubGigService) ListPublished(_ context.Context, f ports.GigFilter) ([]*domain.Gig, error) {
	s.filter = f
	return []*domain.Gig{{ID: "g1", Title: "Weekend delivery", Status: domain.GigPublished}}, nil
}

func (s *stubGigService) List(_ context.Context, f ports.GigFilter) ([]*domain.Gig, error) {
	s.filter = f
	return nil, nil
}

func (s *stubGigService) Create(_ context.Context, in ports.GigInput) (*domain.Gig, error) {
	g := &domain.Gig{ID: "g2"}
	if in.Title != nil {
		g.Title = *in.Title
	}
	if in.Payout != nil {
		g.Payout = *in.Payout
	}
	return g, nil
}

func (s *stubGigService) Apply(_ context.Context, accountID, gigID string, in ports.ApplyInput) (*domain.GigApplication, error) {
	if s.applyErr != nil {
		return nil, s.applyErr
	}
	if s.applied == nil {
		s.applied = map[string]ports.ApplyInput{}
	}
	s.applied[accountID+"/"+gigID] = in
	return &domain.GigApplication{ID: "a1", GigID: gigID, AccountID: accountID, Status: domain.ApplicationApplied}, nil
}
