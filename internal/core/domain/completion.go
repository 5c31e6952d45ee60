package domain

import (
	"math"
	"strings"
)

// ChecklistItem is one entry of the completion checklist.
type ChecklistItem struct {
	Section Section `json:"section"`
	Field   string  `json:"field"`
	File    bool    `json:"file,omitempty"`
}

// Checklist is the fixed set of fields that make an onboarding 100% complete.
// resumeFile is required by the personal form but not counted here.
var Checklist = buildChecklist()

func buildChecklist() []ChecklistItem {
	text := func(s Section, fields ...string) []ChecklistItem {
		out := make([]ChecklistItem, 0, len(fields))
		for _, f := range fields {
			out = append(out, ChecklistItem{Section: s, Field: f})
		}
		return out
	}
	files := func(s Section, keys ...FileKey) []ChecklistItem {
		out := make([]ChecklistItem, 0, len(keys))
		for _, k := range keys {
			out = append(out, ChecklistItem{Section: s, Field: string(k), File: true})
		}
		return out
	}

	var items []ChecklistItem
	items = append(items, text(SectionPersonal,
		"name", "email", "mobile", "jobRole", "gender", "dob", "aadhaar", "pan",
		"country", "state", "city", "address1", "pincode")...)
	items = append(items, files(SectionPersonal, FileProfileImage, FileAadhaarFile, FilePanFile)...)
	items = append(items, text(SectionExperience,
		"experienceYears", "experienceMonths", "employmentType", "occupation",
		"jobRequirement", "heardAbout", "interestType")...)
	items = append(items, text(SectionKYC, "bankName", "accountNumber", "ifscCode")...)
	items = append(items, files(SectionKYC, FileAadhaarFront, FileAadhaarBack, FilePanCardUpload, FilePassbookUpload)...)
	return items
}

// Completion is the result of evaluating a Snapshot against the checklist.
type Completion struct {
	Percentage int             `json:"completionPercentage"`
	Completed  int             `json:"completedFields"`
	Total      int             `json:"totalRequiredFields"`
	Missing    []ChecklistItem `json:"missingFields,omitempty"`
}

// PendingUploads marks file slots that received an upload in the current request
// but may not be durably stored yet.
type PendingUploads map[FileKey]bool

// EvaluateCompletion scores snap against Checklist. It is pure: equal snapshots
// and pending sets always produce equal results.
func EvaluateCompletion(snap Snapshot, pending PendingUploads) Completion {
	return evaluate(Checklist, snap, pending)
}

func evaluate(items []ChecklistItem, snap Snapshot, pending PendingUploads) Completion {
	c := Completion{Total: len(items)}
	for _, item := range items {
		if satisfied(item, snap, pending) {
			c.Completed++
			continue
		}
		c.Missing = append(c.Missing, item)
	}
	if c.Total == 0 {
		return c
	}
	c.Percentage = int(math.Round(100 * float64(c.Completed) / float64(c.Total)))
	return c
}

func satisfied(item ChecklistItem, snap Snapshot, pending PendingUploads) bool {
	if item.File {
		if pending[FileKey(item.Field)] {
			return true
		}
		return strings.TrimSpace(snap.FileURL(item.Section, FileKey(item.Field))) != ""
	}
	v, ok := snap.TextField(item.Section, item.Field)
	return ok && strings.TrimSpace(v) != ""
}

// TextField returns the value of a text field and whether its record exists.
func (s Snapshot) TextField(section Section, field string) (string, bool) {
	switch section {
	case SectionPersonal:
		if s.Profile == nil {
			return "", false
		}
		return profileText(s.Profile, field), true
	case SectionExperience:
		if s.Experience == nil {
			return "", false
		}
		return experienceText(s.Experience, field), true
	case SectionKYC:
		if s.KYC == nil {
			return "", false
		}
		return kycText(s.KYC, field), true
	}
	return "", false
}

func profileText(p *Profile, field string) string {
	switch field {
	case "name":
		return p.Name
	case "email":
		return p.Email
	case "mobile":
		return p.Mobile
	case "jobRole":
		return p.JobRole
	case "gender":
		return p.Gender
	case "dob":
		return p.DOB
	case "aadhaar":
		return p.Aadhaar
	case "pan":
		return p.PAN
	case "country":
		return p.Country
	case "state":
		return p.State
	case "city":
		return p.City
	case "address1":
		return p.Address1
	case "address2":
		return p.Address2
	case "pincode":
		return p.Pincode
	case "about":
		return p.About
	}
	return ""
}

func experienceText(e *Experience, field string) string {
	switch field {
	case "experienceYears":
		return e.ExperienceYears
	case "experienceMonths":
		return e.ExperienceMonths
	case "employmentType":
		return e.EmploymentType
	case "occupation":
		return e.Occupation
	case "jobRequirement":
		return e.JobRequirement
	case "heardAbout":
		return e.HeardAbout
	case "interestType":
		return e.InterestType
	}
	return ""
}

func kycText(k *KYC, field string) string {
	switch field {
	case "bankName":
		return k.BankName
	case "accountNumber":
		return k.AccountNumber
	case "ifscCode":
		return k.IFSCCode
	}
	return ""
}

// Gate is the binary access decision for features behind onboarding.
type Gate struct {
	Open       bool       `json:"open"`
	Percentage int        `json:"completionPercentage"`
	Incomplete Section    `json:"incompleteSection,omitempty"`
	Completion Completion `json:"-"`
}

// EvaluateGate opens only at 100% with every checklist file durably stored.
// In-request uploads never count towards opening the gate.
func EvaluateGate(snap Snapshot) Gate {
	c := EvaluateCompletion(snap, nil)
	g := Gate{Percentage: c.Percentage, Completion: c}

	if c.Percentage == 100 && allFilesStored(snap) {
		g.Open = true
		return g
	}
	g.Incomplete = firstIncompleteSection(c)
	return g
}

func allFilesStored(snap Snapshot) bool {
	for _, item := range Checklist {
		if item.File && strings.TrimSpace(snap.FileURL(item.Section, FileKey(item.Field))) == "" {
			return false
		}
	}
	return true
}

func firstIncompleteSection(c Completion) Section {
	for _, s := range []Section{SectionPersonal, SectionExperience, SectionKYC} {
		for _, m := range c.Missing {
			if m.Section == s {
				return s
			}
		}
	}
	return SectionPersonal
}
