package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gigstm/gigs-platform/internal/core/domain"
	"github.com/gigstm/gigs-platform/internal/core/ports"
)

type gigFixture struct {
	svc        *GigService
	gigs       *stubGigRepo
	apps       *stubApplicationRepo
	onboarding *onboardingFixture
}

func newGigFixture() *gigFixture {
	ob := newOnboardingFixture()
	gigs := newStubGigRepo()
	apps := newStubApplicationRepo()
	return &gigFixture{
		svc:        NewGigService(gigs, apps, ob.svc, zerolog.Nop()),
		gigs:       gigs,
		apps:       apps,
		onboarding: ob,
	}
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func validGigInput() ports.GigInput {
	return ports.GigInput{
		Title:            strPtr("Weekend delivery"),
		Category:         strPtr("Logistics"),
		ShortDescription: strPtr("Deliver parcels"),
		FullDescription:  strPtr("Deliver parcels across the city on weekends"),
		Location:         strPtr("Bengaluru"),
		WorkType:         strPtr("Field"),
		PaymentType:      strPtr("Per Task"),
		Payout:           floatPtr(250),
		Openings:         intPtr(5),
		Status:           strPtr("Published"),
		ScopeOfWork:      strPtr("internal scope"),
		PayoutTerms:      strPtr("net 7"),
	}
}

func (f *gigFixture) completeOnboarding(t *testing.T, accountID string) {
	t.Helper()
	ctx := context.Background()
	if _, err := f.onboarding.svc.SubmitPersonal(ctx, accountID, validPersonal(), personalFiles()); err != nil {
		t.Fatal(err)
	}
	if _, err := f.onboarding.svc.SubmitExperience(ctx, accountID, validExperience(), nil); err != nil {
		t.Fatal(err)
	}
	if _, err := f.onboarding.svc.SubmitKYC(ctx, accountID, validKYC(), kycFiles()); err != nil {
		t.Fatal(err)
	}
}

var applicant = ports.ApplyInput{Name: "Asha", Phone: "9876543210", Email: "asha@example.com", Location: "Bengaluru"}

func TestGigService_Create_Validation(t *testing.T) {
	f := newGigFixture()

	in := validGigInput()
	in.Title = nil
	in.WorkType = strPtr("Underwater")
	in.Openings = intPtr(0)

	_, err := f.svc.Create(context.Background(), in)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, field := range []string{"gigTitle", "workType", "openings"} {
		if !verr.Has(field) {
			t.Errorf("expected %s violation, got %v", field, verr.Fields)
		}
	}
	if len(f.gigs.gigs) != 0 {
		t.Fatal("expected no gig stored")
	}
}

func TestGigService_Update_Partial(t *testing.T) {
	f := newGigFixture()
	ctx := context.Background()
	g, err := f.svc.Create(ctx, validGigInput())
	if err != nil {
		t.Fatal(err)
	}

	updated, err := f.svc.Update(ctx, g.ID, ports.GigInput{Payout: floatPtr(300), Status: strPtr("Draft")})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Payout != 300 || updated.Status != domain.GigDraft || updated.Title != "Weekend delivery" {
		t.Fatalf("unexpected gig after partial update: %+v", updated)
	}
}

func TestGigService_PublicViewsHideInternalFields(t *testing.T) {
	f := newGigFixture()
	ctx := context.Background()
	published, _ := f.svc.Create(ctx, validGigInput())

	draftIn := validGigInput()
	draftIn.Status = strPtr("Draft")
	draft, _ := f.svc.Create(ctx, draftIn)

	list, err := f.svc.ListPublished(ctx, ports.GigFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].ID != published.ID {
		t.Fatalf("expected only the published gig, got %d", len(list))
	}
	if list[0].ScopeOfWork != "" || list[0].PayoutTerms != "" {
		t.Fatalf("internal fields leaked: %+v", list[0])
	}

	if _, err := f.svc.GetPublished(ctx, draft.ID); !errors.Is(err, domain.ErrGigNotFound) {
		t.Fatalf("expected drafts to be hidden, got %v", err)
	}

	full, _ := f.svc.Get(ctx, published.ID)
	if full.ScopeOfWork != "internal scope" {
		t.Fatal("admin view should keep internal fields")
	}
}

func TestGigService_Apply_BlockedUntilGateOpens(t *testing.T) {
	f := newGigFixture()
	ctx := context.Background()
	g, _ := f.svc.Create(ctx, validGigInput())

	if _, err := f.svc.Apply(ctx, "acc-1", g.ID, applicant); !errors.Is(err, domain.ErrOnboardingIncomplete) {
		t.Fatalf("expected ErrOnboardingIncomplete, got %v", err)
	}
	if len(f.apps.apps) != 0 {
		t.Fatal("expected no application stored")
	}

	f.completeOnboarding(t, "acc-1")

	app, err := f.svc.Apply(ctx, "acc-1", g.ID, applicant)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if app.Status != domain.ApplicationApplied || app.GigTitle != "Weekend delivery" {
		t.Fatalf("unexpected application: %+v", app)
	}

	if _, err := f.svc.Apply(ctx, "acc-1", g.ID, applicant); !errors.Is(err, domain.ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
}

func TestGigService_Apply_DeletedAccount(t *testing.T) {
	f := newGigFixture()
	ctx := context.Background()
	g, _ := f.svc.Create(ctx, validGigInput())
	f.completeOnboarding(t, "acc-1")
	if _, err := f.onboarding.accounts.Delete(ctx, "GIG0000001"); err != nil {
		t.Fatal(err)
	}

	if _, err := f.svc.Apply(ctx, "acc-1", g.ID, applicant); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if len(f.apps.apps) != 0 {
		t.Fatalf("expected no application, got %d", len(f.apps.apps))
	}
}

func TestGigService_Apply_DraftGig(t *testing.T) {
	f := newGigFixture()
	ctx := context.Background()
	in := validGigInput()
	in.Status = strPtr("Draft")
	g, _ := f.svc.Create(ctx, in)
	f.completeOnboarding(t, "acc-1")

	if _, err := f.svc.Apply(ctx, "acc-1", g.ID, applicant); !errors.Is(err, domain.ErrGigNotOpen) {
		t.Fatalf("expected ErrGigNotOpen, got %v", err)
	}
}

func TestGigService_UpdateApplicationStatus(t *testing.T) {
	f := newGigFixture()
	ctx := context.Background()
	g, _ := f.svc.Create(ctx, validGigInput())
	f.completeOnboarding(t, "acc-1")
	app, err := f.svc.Apply(ctx, "acc-1", g.ID, applicant)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := f.svc.UpdateApplicationStatus(ctx, app.ID, "Promoted"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	got, err := f.svc.UpdateApplicationStatus(ctx, app.ID, "Shortlisted")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if got.Status != domain.ApplicationShortlisted {
		t.Fatalf("expected Shortlisted, got %s", got.Status)
	}

	apps, _ := f.svc.ListApplications(ctx, g.ID)
	if len(apps) != 1 {
		t.Fatalf("expected 1 application, got %d", len(apps))
	}

	if err := f.svc.Delete(ctx, g.ID); err != nil {
		t.Fatal(err)
	}
	if len(f.apps.apps) != 0 {
		t.Fatal("expected applications removed with the gig")
	}
}
