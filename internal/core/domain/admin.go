package domain

import "time"

// AccountSummary is the non-secret view of an Account.
type AccountSummary struct {
	ID              string        `json:"id"`
	ExternalID      string        `json:"uniqueId"`
	Name            string        `json:"name"`
	Email           string        `json:"email"`
	EmailVerified   bool          `json:"isVerified"`
	Role            string        `json:"role"`
	Status          AccountStatus `json:"status"`
	FeedbackMessage string        `json:"feedbackMessage,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
}

func (a *Account) Summary() AccountSummary {
	return AccountSummary{
		ID:              a.ID,
		ExternalID:      a.ExternalID,
		Name:            a.Name,
		Email:           a.Email,
		EmailVerified:   a.EmailVerified,
		Role:            a.Role,
		Status:          a.Status,
		FeedbackMessage: a.FeedbackMessage,
		CreatedAt:       a.CreatedAt,
	}
}

// CombinedRecord joins an account with its onboarding records.
type CombinedRecord struct {
	Account    AccountSummary `json:"user"`
	Profile    *Profile       `json:"profile"`
	Experience *Experience    `json:"experience"`
	KYC        *KYC           `json:"kyc"`
}

func (r *CombinedRecord) Snapshot() Snapshot {
	return Snapshot{Profile: r.Profile, Experience: r.Experience, KYC: r.KYC}
}

// Masked returns a copy with government ids and bank details masked.
func (r *CombinedRecord) Masked() *CombinedRecord {
	c := *r
	c.Profile = r.Profile.Masked()
	c.KYC = r.KYC.Masked()
	return &c
}

// CombinedPage is one page of the admin combined view.
type CombinedPage struct {
	Items       []*CombinedRecord `json:"items"`
	Total       int64             `json:"total"`
	Page        int               `json:"page"`
	Limit       int               `json:"limit"`
	HasNextPage bool              `json:"hasNextPage"`
}
