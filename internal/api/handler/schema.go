package handler

import (
	"time"

	"github.com/gigstm/gigs-platform/internal/core/domain"
)

// errorResponse documents the error envelope rendered by the central error handler.
type errorResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type verifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp"   validate:"required,len=6,numeric"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type accountResponse struct {
	Account *domain.Account `json:"user"`
	Message string          `json:"message,omitempty"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Account *domain.Account `json:"user"`
	OTPSent bool            `json:"otpSent"`
}

// --- Admin ---

type setStatusRequest struct {
	Status          string `json:"status"          validate:"required"`
	FeedbackMessage string `json:"feedbackMessage"`
}

// --- Gigs ---

// gigRequest fields are pointers so a PATCH can tell absent from empty.
type gigRequest struct {
	Title            *string  `json:"gigTitle"`
	Category         *string  `json:"category"`
	ShortDescription *string  `json:"shortDescription"`
	FullDescription  *string  `json:"fullDescription"`
	Location         *string  `json:"location"`
	WorkType         *string  `json:"workType"`
	PaymentType      *string  `json:"paymentType"`
	Payout           *float64 `json:"payout"`
	Openings         *int     `json:"openings"`
	Status           *string  `json:"status"`
	Skills           *string  `json:"skills"`
	ScopeOfWork      *string  `json:"scopeOfWork"`
	PayoutTerms      *string  `json:"payoutTerms"`
}

type applyRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Location string `json:"location"`
	Skills   string `json:"skills"`
}

type applicationStatusRequest struct {
	Status string `json:"applicationStatus" validate:"required"`
}

// --- Health ---

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
	CheckedAt    time.Time                   `json:"checked_at"`
}
