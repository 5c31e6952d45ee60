package domain

import (
	"errors"
	"testing"
)

func fullSnapshot() Snapshot {
	return Snapshot{
		Profile: &Profile{
			Name: "Asha", Email: "asha@example.com", Mobile: "9876543210", JobRole: "Driver",
			Gender: "female", DOB: "1995-04-02", Aadhaar: "123412341234", PAN: "ABCDE1234F",
			Country: "India", State: "Karnataka", City: "Bengaluru", Address1: "12 MG Road",
			Pincode: "560001",
			ProfileImage: "/files/a.png", AadhaarFile: "/files/b.pdf", PanFile: "/files/c.pdf",
			ResumeFile: "/files/d.pdf",
		},
		Experience: &Experience{
			ExperienceYears: "3", ExperienceMonths: "6", EmploymentType: "freelance",
			Occupation: "Delivery", JobRequirement: "Weekend gigs", HeardAbout: "friend",
			InterestType: "part-time",
		},
		KYC: &KYC{
			BankName: "SBI", AccountNumber: "12345678901234", IFSCCode: "SBIN0001234",
			AadhaarFront: "/files/e.png", AadhaarBack: "/files/f.png",
			PanCardUpload: "/files/g.png", PassbookUpload: "/files/h.png",
		},
	}
}

func TestChecklist_HasThirtyEntries(t *testing.T) {
	if len(Checklist) != 30 {
		t.Fatalf("expected 30 checklist entries, got %d", len(Checklist))
	}
}

func TestEvaluateCompletion_EmptySnapshotIsZero(t *testing.T) {
	c := EvaluateCompletion(Snapshot{}, nil)
	if c.Percentage != 0 || c.Completed != 0 {
		t.Fatalf("expected 0%%, got %d%% (%d completed)", c.Percentage, c.Completed)
	}
	if c.Total != 30 {
		t.Fatalf("expected total 30, got %d", c.Total)
	}
	if len(c.Missing) != 30 {
		t.Fatalf("expected 30 missing items, got %d", len(c.Missing))
	}
}

func TestEvaluateCompletion_FullSnapshotIsHundred(t *testing.T) {
	c := EvaluateCompletion(fullSnapshot(), nil)
	if c.Percentage != 100 {
		t.Fatalf("expected 100%%, got %d%% missing=%v", c.Percentage, c.Missing)
	}
}

func TestEvaluateCompletion_BlankTextIsNotSatisfied(t *testing.T) {
	snap := fullSnapshot()
	snap.Profile.Mobile = "   "

	c := EvaluateCompletion(snap, nil)
	if c.Completed != 29 || c.Percentage != 97 {
		t.Fatalf("expected 29 completed / 97%%, got %d / %d%%", c.Completed, c.Percentage)
	}
	if len(c.Missing) != 1 || c.Missing[0].Field != "mobile" {
		t.Fatalf("expected mobile missing, got %v", c.Missing)
	}
}

func TestEvaluateCompletion_PendingUploadCounts(t *testing.T) {
	snap := fullSnapshot()
	snap.KYC.PassbookUpload = ""

	without := EvaluateCompletion(snap, nil)
	with := EvaluateCompletion(snap, PendingUploads{FilePassbookUpload: true})

	if without.Percentage == 100 {
		t.Fatal("expected incomplete without the pending upload")
	}
	if with.Percentage != 100 {
		t.Fatalf("expected 100%% with the pending upload, got %d%%", with.Percentage)
	}
}

func TestEvaluateCompletion_IsDeterministic(t *testing.T) {
	snap := fullSnapshot()
	snap.Experience = nil

	first := EvaluateCompletion(snap, nil)
	for i := 0; i < 5; i++ {
		if got := EvaluateCompletion(snap, nil); got.Percentage != first.Percentage || got.Completed != first.Completed {
			t.Fatalf("run %d: got %+v, want %+v", i, got, first)
		}
	}
	// 23 of 30 without the experience record.
	if first.Completed != 23 || first.Percentage != 77 {
		t.Fatalf("expected 23 / 77%%, got %d / %d%%", first.Completed, first.Percentage)
	}
}

func TestEvaluate_EmptyChecklistIsZero(t *testing.T) {
	c := evaluate(nil, fullSnapshot(), nil)
	if c.Percentage != 0 || c.Total != 0 {
		t.Fatalf("expected 0 for empty checklist, got %+v", c)
	}
}

func TestEvaluateGate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Snapshot)
		wantOpen    bool
		wantPct     int
		wantRouteTo Section
	}{
		{name: "complete", mutate: func(*Snapshot) {}, wantOpen: true, wantPct: 100},
		{
			name:        "kyc bank details missing",
			mutate:      func(s *Snapshot) { s.KYC.IFSCCode = ""; s.KYC.AccountNumber = ""; s.KYC.BankName = "" },
			wantPct:     90,
			wantRouteTo: SectionKYC,
		},
		{
			name:        "kyc missing ifsc only",
			mutate:      func(s *Snapshot) { s.KYC.IFSCCode = "" },
			wantPct:     97,
			wantRouteTo: SectionKYC,
		},
		{
			name:        "no experience record",
			mutate:      func(s *Snapshot) { s.Experience = nil },
			wantPct:     77,
			wantRouteTo: SectionExperience,
		},
		{
			name:        "profile image not stored",
			mutate:      func(s *Snapshot) { s.Profile.ProfileImage = "" },
			wantPct:     97,
			wantRouteTo: SectionPersonal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := fullSnapshot()
			tt.mutate(&snap)

			g := EvaluateGate(snap)
			if g.Open != tt.wantOpen {
				t.Fatalf("open = %v, want %v", g.Open, tt.wantOpen)
			}
			if g.Percentage != tt.wantPct {
				t.Fatalf("percentage = %d, want %d", g.Percentage, tt.wantPct)
			}
			if !tt.wantOpen && g.Incomplete != tt.wantRouteTo {
				t.Fatalf("incomplete section = %q, want %q", g.Incomplete, tt.wantRouteTo)
			}
		})
	}
}

func TestMaskDigits(t *testing.T) {
	tests := map[string]string{
		"12345678901234": "**** **** **12 34",
		"1234":           "1234",
		"12":             "12",
		"":               "",
		"SBIN0001234":    "***1 234",
		"1234-5678-9012": "**** **** 9012",
		"12345678":       "**** 5678",
	}
	for in, want := range tests {
		if got := MaskDigits(in); got != want {
			t.Errorf("MaskDigits(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestKYCMasked_LeavesOriginalUntouched(t *testing.T) {
	k := &KYC{AccountNumber: "12345678901234", IFSCCode: "SBIN0001234", BankName: "SBI"}
	m := k.Masked()
	if m.AccountNumber == k.AccountNumber {
		t.Fatal("account number not masked")
	}
	if k.AccountNumber != "12345678901234" {
		t.Fatal("original mutated")
	}
	if m.BankName != "SBI" {
		t.Fatal("bank name should not be masked")
	}
}

func TestParseModerationStatus(t *testing.T) {
	for _, ok := range []string{"approved", "disapproved"} {
		if _, err := ParseModerationStatus(ok); err != nil {
			t.Fatalf("%s: unexpected error %v", ok, err)
		}
	}
	for _, bad := range []string{"pending", "APPROVED", ""} {
		_, err := ParseModerationStatus(bad)
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("%q: expected ErrInvalidStatus, got %v", bad, err)
		}
	}
}
