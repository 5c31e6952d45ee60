package handler

import (
	"mime/multipart"
	"net/url"

	"github.com/gigstm/gigs-platform/internal/core/ports"
)

// --- Request → Service input ---

func toGigInput(r gigRequest) ports.GigInput {
	return ports.GigInput{
		Title:            r.Title,
		Category:         r.Category,
		ShortDescription: r.ShortDescription,
		FullDescription:  r.FullDescription,
		Location:         r.Location,
		WorkType:         r.WorkType,
		PaymentType:      r.PaymentType,
		Payout:           r.Payout,
		Openings:         r.Openings,
		Status:           r.Status,
		Skills:           r.Skills,
		ScopeOfWork:      r.ScopeOfWork,
		PayoutTerms:      r.PayoutTerms,
	}
}

func toApplyInput(r applyRequest) ports.ApplyInput {
	return ports.ApplyInput{
		Name:     r.Name,
		Phone:    r.Phone,
		Email:    r.Email,
		Location: r.Location,
		Skills:   r.Skills,
	}
}

// formValues reads the text fields of a multipart or urlencoded form.
type formValues url.Values

func (f formValues) get(key string) string { return url.Values(f).Get(key) }

// opt returns nil when key was not sent at all, so the stored value is kept.
func (f formValues) opt(key string) *string {
	if _, ok := f[key]; !ok {
		return nil
	}
	v := url.Values(f).Get(key)
	return &v
}

func toPersonalInput(f formValues) ports.PersonalInput {
	return ports.PersonalInput{
		Name:     f.get("name"),
		Email:    f.get("email"),
		Mobile:   f.get("mobile"),
		JobRole:  f.get("jobRole"),
		Gender:   f.get("gender"),
		DOB:      f.get("dob"),
		Aadhaar:  f.get("aadhaar"),
		PAN:      f.get("pan"),
		Country:  f.get("country"),
		State:    f.get("state"),
		City:     f.get("city"),
		Address1: f.get("address1"),
		Address2: f.opt("address2"),
		Pincode:  f.get("pincode"),
		About:    f.opt("about"),
	}
}

func toExperienceInput(f formValues) ports.ExperienceInput {
	return ports.ExperienceInput{
		ExperienceYears:  f.get("experienceYears"),
		ExperienceMonths: f.get("experienceMonths"),
		EmploymentType:   f.get("employmentType"),
		Occupation:       f.get("occupation"),
		JobRequirement:   f.get("jobRequirement"),
		HeardAbout:       f.get("heardAbout"),
		InterestType:     f.get("interestType"),
	}
}

func toKYCInput(f formValues) ports.KYCInput {
	return ports.KYCInput{
		BankName:      f.get("bankName"),
		AccountNumber: f.get("accountNumber"),
		IFSCCode:      f.get("ifscCode"),
	}
}

// firstFile returns the first file sent under key, if any.
func firstFile(form *multipart.Form, key string) *multipart.FileHeader {
	if form == nil || len(form.File[key]) == 0 {
		return nil
	}
	return form.File[key][0]
}
