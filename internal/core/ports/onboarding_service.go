package ports

import (
	"context"

	"github.com/gigstm/gigs-platform/internal/core/domain"
)

// PersonalInput is the personal-details section of the onboarding form.
// Address2 and About are optional; nil leaves the stored value untouched.
type PersonalInput struct {
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required,basic_email"`
	Mobile   string  `json:"mobile" validate:"required,phone"`
	JobRole  string  `json:"jobRole" validate:"required"`
	Gender   string  `json:"gender" validate:"required"`
	DOB      string  `json:"dob" validate:"required"`
	Aadhaar  string  `json:"aadhaar" validate:"required"`
	PAN      string  `json:"pan" validate:"required"`
	Country  string  `json:"country" validate:"required"`
	State    string  `json:"state" validate:"required"`
	City     string  `json:"city" validate:"required"`
	Address1 string  `json:"address1" validate:"required"`
	Address2 *string `json:"address2"`
	Pincode  string  `json:"pincode" validate:"required"`
	About    *string `json:"about"`
}

// ExperienceInput is the work-history section of the onboarding form.
type ExperienceInput struct {
	ExperienceYears  string `json:"experienceYears" validate:"required"`
	ExperienceMonths string `json:"experienceMonths" validate:"required"`
	EmploymentType   string `json:"employmentType" validate:"required"`
	Occupation       string `json:"occupation" validate:"required"`
	JobRequirement   string `json:"jobRequirement" validate:"required"`
	HeardAbout       string `json:"heardAbout" validate:"required"`
	InterestType     string `json:"interestType" validate:"required"`
}

// KYCInput is the bank and identity section of the onboarding form.
type KYCInput struct {
	BankName      string `json:"bankName" validate:"required"`
	AccountNumber string `json:"accountNumber" validate:"required"`
	IFSCCode      string `json:"ifscCode" validate:"required"`
}

// Uploads maps a section's file slots to the files received in the request.
// Absent keys mean no new file.
type Uploads map[domain.FileKey]*Upload

// Pending reports which slots received a file.
func (u Uploads) Pending() domain.PendingUploads {
	p := make(domain.PendingUploads, len(u))
	for k, v := range u {
		if v != nil {
			p[k] = true
		}
	}
	return p
}

// MyOnboarding is the owner's own view of their onboarding state.
type MyOnboarding struct {
	Record     *domain.CombinedRecord `json:"record"`
	Completion domain.Completion      `json:"completion"`
	Gate       domain.Gate            `json:"gate"`
}

type OnboardingService interface {
	SubmitPersonal(ctx context.Context, accountID string, in PersonalInput, files Uploads) (*domain.Profile, error)
	SubmitExperience(ctx context.Context, accountID string, in ExperienceInput, files Uploads) (*domain.Experience, error)
	SubmitKYC(ctx context.Context, accountID string, in KYCInput, files Uploads) (*domain.KYC, error)
	Completion(ctx context.Context, accountID string) (domain.Completion, error)
	Gate(ctx context.Context, accountID string) (domain.Gate, error)
	// RequireGate returns domain.ErrOnboardingIncomplete unless the gate is open.
	RequireGate(ctx context.Context, accountID string) error
	MyCombined(ctx context.Context, accountID string) (*MyOnboarding, error)
}
