package domain

import (
	"errors"
	"time"
)

// Section identifies one step of the onboarding form.
type Section string

const (
	SectionPersonal   Section = "personal"
	SectionExperience Section = "experience"
	SectionKYC        Section = "kyc"
)

// FileKey names an upload slot of a section.
type FileKey string

const (
	FileProfileImage FileKey = "profileImage"
	FileAadhaarFile  FileKey = "aadhaarFile"
	FilePanFile      FileKey = "panFile"
	FileResumeFile   FileKey = "resumeFile"

	FileResumeStep2 FileKey = "resumeStep2"

	FileAadhaarFront   FileKey = "aadhaarFront"
	FileAadhaarBack    FileKey = "aadhaarBack"
	FilePanCardUpload  FileKey = "panCardUpload"
	FilePassbookUpload FileKey = "passbookUpload"
)

// SectionFiles lists the upload slots each section accepts.
var SectionFiles = map[Section][]FileKey{
	SectionPersonal:   {FileProfileImage, FileAadhaarFile, FilePanFile, FileResumeFile},
	SectionExperience: {FileResumeStep2},
	SectionKYC:        {FileAadhaarFront, FileAadhaarBack, FilePanCardUpload, FilePassbookUpload},
}

// RequiredSectionFiles lists the upload slots a section submission must end up with,
// either uploaded now or already stored.
var RequiredSectionFiles = map[Section][]FileKey{
	SectionPersonal:   {FileProfileImage, FileAadhaarFile, FilePanFile, FileResumeFile},
	SectionExperience: nil,
	SectionKYC:        {FileAadhaarFront, FileAadhaarBack, FilePanCardUpload, FilePassbookUpload},
}

var (
	ErrOnboardingIncomplete = errors.New("onboarding incomplete")
	ErrFileNotFound         = errors.New("file not found")
)

// MaxUploadBytes caps a single uploaded file.
const MaxUploadBytes = 5 << 20

// AllowedUploadTypes are the sniffed content types accepted for any file slot.
var AllowedUploadTypes = []string{"image/jpeg", "image/png", "image/webp", "application/pdf"}

// Profile holds the personal details of an account. One per account.
type Profile struct {
	AccountID    string    `json:"accountId" bson:"account_id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	Mobile       string    `json:"mobile" bson:"mobile"`
	JobRole      string    `json:"jobRole" bson:"job_role"`
	Gender       string    `json:"gender" bson:"gender"`
	DOB          string    `json:"dob" bson:"dob"`
	Aadhaar      string    `json:"aadhaar" bson:"aadhaar"`
	PAN          string    `json:"pan" bson:"pan"`
	Country      string    `json:"country" bson:"country"`
	State        string    `json:"state" bson:"state"`
	City         string    `json:"city" bson:"city"`
	Address1     string    `json:"address1" bson:"address1"`
	Address2     string    `json:"address2" bson:"address2"`
	Pincode      string    `json:"pincode" bson:"pincode"`
	About        string    `json:"about" bson:"about"`
	ProfileImage string    `json:"profileImage" bson:"profile_image"`
	AadhaarFile  string    `json:"aadhaarFile" bson:"aadhaar_file"`
	PanFile      string    `json:"panFile" bson:"pan_file"`
	ResumeFile   string    `json:"resumeFile" bson:"resume_file"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updated_at"`
}

func (p *Profile) FileURL(key FileKey) string {
	if p == nil {
		return ""
	}
	switch key {
	case FileProfileImage:
		return p.ProfileImage
	case FileAadhaarFile:
		return p.AadhaarFile
	case FilePanFile:
		return p.PanFile
	case FileResumeFile:
		return p.ResumeFile
	}
	return ""
}

// Experience holds the work history step. One per account.
type Experience struct {
	AccountID        string    `json:"accountId" bson:"account_id"`
	ExperienceYears  string    `json:"experienceYears" bson:"experience_years"`
	ExperienceMonths string    `json:"experienceMonths" bson:"experience_months"`
	EmploymentType   string    `json:"employmentType" bson:"employment_type"`
	Occupation       string    `json:"occupation" bson:"occupation"`
	JobRequirement   string    `json:"jobRequirement" bson:"job_requirement"`
	HeardAbout       string    `json:"heardAbout" bson:"heard_about"`
	InterestType     string    `json:"interestType" bson:"interest_type"`
	ResumeStep2      string    `json:"resumeStep2" bson:"resume_step2"`
	CreatedAt        time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" bson:"updated_at"`
}

func (e *Experience) FileURL(key FileKey) string {
	if e == nil || key != FileResumeStep2 {
		return ""
	}
	return e.ResumeStep2
}

// KYC holds bank details and identity document scans. One per account.
type KYC struct {
	AccountID      string    `json:"accountId" bson:"account_id"`
	BankName       string    `json:"bankName" bson:"bank_name"`
	AccountNumber  string    `json:"accountNumber" bson:"account_number"`
	IFSCCode       string    `json:"ifscCode" bson:"ifsc_code"`
	AadhaarFront   string    `json:"aadhaarFront" bson:"aadhaar_front"`
	AadhaarBack    string    `json:"aadhaarBack" bson:"aadhaar_back"`
	PanCardUpload  string    `json:"panCardUpload" bson:"pan_card_upload"`
	PassbookUpload string    `json:"passbookUpload" bson:"passbook_upload"`
	CreatedAt      time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updated_at"`
}

func (k *KYC) FileURL(key FileKey) string {
	if k == nil {
		return ""
	}
	switch key {
	case FileAadhaarFront:
		return k.AadhaarFront
	case FileAadhaarBack:
		return k.AadhaarBack
	case FilePanCardUpload:
		return k.PanCardUpload
	case FilePassbookUpload:
		return k.PassbookUpload
	}
	return ""
}

// Snapshot is the current state of the three onboarding records of an account.
// A nil entry means the record has not been created yet.
type Snapshot struct {
	Profile    *Profile
	Experience *Experience
	KYC        *KYC
}

// FileURL resolves a stored file reference across all sections.
func (s Snapshot) FileURL(section Section, key FileKey) string {
	switch section {
	case SectionPersonal:
		return s.Profile.FileURL(key)
	case SectionExperience:
		return s.Experience.FileURL(key)
	case SectionKYC:
		return s.KYC.FileURL(key)
	}
	return ""
}
