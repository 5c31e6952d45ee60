package domain

import (
	"errors"
	"fmt"
	"time"
)

type GigStatus string

const (
	GigDraft     GigStatus = "Draft"
	GigPublished GigStatus = "Published"
)

type ApplicationStatus string

const (
	ApplicationApplied     ApplicationStatus = "Applied"
	ApplicationShortlisted ApplicationStatus = "Shortlisted"
	ApplicationRejected    ApplicationStatus = "Rejected"
	ApplicationHired       ApplicationStatus = "Hired"
)

// Work and payment types a gig may be published with.
var (
	WorkTypes    = []string{"Remote", "Field", "Hybrid"}
	PaymentTypes = []string{"Per Task", "Per Day", "Per Milestone"}
)

// ParseGigStatus accepts Draft or Published.
func ParseGigStatus(s string) (GigStatus, error) {
	switch GigStatus(s) {
	case GigDraft, GigPublished:
		return GigStatus(s), nil
	}
	return "", fmt.Errorf("%w: gig status %q", ErrInvalidStatus, s)
}

// ParseApplicationStatus accepts the four application states.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	switch ApplicationStatus(s) {
	case ApplicationApplied, ApplicationShortlisted, ApplicationRejected, ApplicationHired:
		return ApplicationStatus(s), nil
	}
	return "", fmt.Errorf("%w: application status %q", ErrInvalidStatus, s)
}

var (
	ErrGigNotFound         = errors.New("gig not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrGigNotOpen          = errors.New("gig is not accepting applications")
	ErrAlreadyApplied      = errors.New("already applied to this gig")
)

// Gig is a unit of work published to the marketplace.
// ScopeOfWork and PayoutTerms are internal and never shown on public views.
type Gig struct {
	ID               string    `json:"id" bson:"_id,omitempty"`
	Title            string    `json:"gigTitle" bson:"gig_title"`
	Category         string    `json:"category" bson:"category"`
	ShortDescription string    `json:"shortDescription" bson:"short_description"`
	FullDescription  string    `json:"fullDescription" bson:"full_description"`
	Location         string    `json:"location" bson:"location"`
	WorkType         string    `json:"workType" bson:"work_type"`
	PaymentType      string    `json:"paymentType" bson:"payment_type"`
	Payout           float64   `json:"payout" bson:"payout"`
	Openings         int       `json:"openings" bson:"openings"`
	Status           GigStatus `json:"status" bson:"status"`
	Skills           string    `json:"skills" bson:"skills"`
	ScopeOfWork      string    `json:"scopeOfWork,omitempty" bson:"scope_of_work"`
	PayoutTerms      string    `json:"payoutTerms,omitempty" bson:"payout_terms"`
	CreatedAt        time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" bson:"updated_at"`
}

// Public strips internal-only fields.
func (g *Gig) Public() *Gig {
	c := *g
	c.ScopeOfWork = ""
	c.PayoutTerms = ""
	return &c
}

// GigApplication records an account applying to a gig.
type GigApplication struct {
	ID            string            `json:"id" bson:"_id,omitempty"`
	GigID         string            `json:"gigId" bson:"gig_id"`
	GigTitle      string            `json:"gigTitle" bson:"gig_title"`
	AccountID     string            `json:"accountId" bson:"account_id"`
	ApplicantName string            `json:"applicantName" bson:"applicant_name"`
	Phone         string            `json:"phone" bson:"phone"`
	Email         string            `json:"email" bson:"email"`
	Location      string            `json:"location" bson:"location"`
	Skills        string            `json:"skills" bson:"skills"`
	Status        ApplicationStatus `json:"applicationStatus" bson:"application_status"`
	AppliedAt     time.Time         `json:"appliedAt" bson:"applied_at"`
	UpdatedAt     time.Time         `json:"updatedAt" bson:"updated_at"`
}
