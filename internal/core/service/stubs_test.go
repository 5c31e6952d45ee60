package service

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gigstm/gigs-platform/internal/core/domain"
	"github.com/gigstm/gigs-platform/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Accounts
// ---------------------------------------------------------------------------

type stubAccountRepo struct {
	byID   map[string]*domain.Account
	nextID int
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{byID: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

func (r *stubAccountRepo) Create(_ context.Context, a *domain.Account) (*domain.Account, error) {
	for _, existing := range r.byID {
		if existing.Email == a.Email || existing.ExternalID == a.ExternalID {
			return nil, domain.ErrAccountExists
		}
	}
	r.nextID++
	c := cloneAccount(a)
	c.ID = fmt.Sprintf("acc-%d", r.nextID)
	r.byID[c.ID] = c
	return cloneAccount(c), nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	for _, a := range r.byID {
		if a.Email == email {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindByExternalID(_ context.Context, externalID string) (*domain.Account, error) {
	for _, a := range r.byID {
		if a.ExternalID == externalID {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindByResetToken(_ context.Context, tokenHash string, now time.Time) (*domain.Account, error) {
	for _, a := range r.byID {
		if a.ResetTokenHash != "" && a.ResetTokenHash == tokenHash && a.ResetExpiresAt.After(now) {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) UpdateCredentials(_ context.Context, a *domain.Account) error {
	if _, ok := r.byID[a.ID]; !ok {
		return domain.ErrAccountNotFound
	}
	r.byID[a.ID] = cloneAccount(a)
	return nil
}

func (r *stubAccountRepo) SetModeration(_ context.Context, externalID string, status domain.AccountStatus, feedback string) error {
	for _, a := range r.byID {
		if a.ExternalID == externalID {
			a.Status = status
			a.FeedbackMessage = feedback
			return nil
		}
	}
	return domain.ErrAccountNotFound
}

func (r *stubAccountRepo) Delete(_ context.Context, externalID string) (*domain.Account, error) {
	for id, a := range r.byID {
		if a.ExternalID == externalID {
			delete(r.byID, id)
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

// ---------------------------------------------------------------------------
// Onboarding records (mirrors the upsert semantics of the Mongo repository)
// ---------------------------------------------------------------------------

type stubOnboardingRepo struct {
	profiles    map[string]*domain.Profile
	experiences map[string]*domain.Experience
	kycs        map[string]*domain.KYC
	upserts     int
	upsertErr   error
}

func newStubOnboardingRepo() *stubOnboardingRepo {
	return &stubOnboardingRepo{
		profiles:    make(map[string]*domain.Profile),
		experiences: make(map[string]*domain.Experience),
		kycs:        make(map[string]*domain.KYC),
	}
}

func (r *stubOnboardingRepo) FindSnapshot(_ context.Context, accountID string) (domain.Snapshot, error) {
	var snap domain.Snapshot
	if p, ok := r.profiles[accountID]; ok {
		c := *p
		snap.Profile = &c
	}
	if e, ok := r.experiences[accountID]; ok {
		c := *e
		snap.Experience = &c
	}
	if k, ok := r.kycs[accountID]; ok {
		c := *k
		snap.KYC = &c
	}
	return snap, nil
}

func setFile(dst *string, files map[domain.FileKey]string, key domain.FileKey) {
	if url, ok := files[key]; ok {
		*dst = url
	}
}

func (r *stubOnboardingRepo) UpsertProfile(_ context.Context, accountID string, in ports.PersonalInput, files map[domain.FileKey]string) (*domain.Profile, error) {
	if r.upsertErr != nil {
		return nil, r.upsertErr
	}
	r.upserts++
	p, ok := r.profiles[accountID]
	if !ok {
		p = &domain.Profile{AccountID: accountID, CreatedAt: time.Now()}
		r.profiles[accountID] = p
	}
	p.Name, p.Email, p.Mobile, p.JobRole, p.Gender, p.DOB = in.Name, in.Email, in.Mobile, in.JobRole, in.Gender, in.DOB
	p.Aadhaar, p.PAN, p.Country, p.State, p.City, p.Address1, p.Pincode = in.Aadhaar, in.PAN, in.Country, in.State, in.City, in.Address1, in.Pincode
	if in.Address2 != nil {
		p.Address2 = *in.Address2
	}
	if in.About != nil {
		p.About = *in.About
	}
	setFile(&p.ProfileImage, files, domain.FileProfileImage)
	setFile(&p.AadhaarFile, files, domain.FileAadhaarFile)
	setFile(&p.PanFile, files, domain.FilePanFile)
	setFile(&p.ResumeFile, files, domain.FileResumeFile)
	c := *p
	return &c, nil
}

func (r *stubOnboardingRepo) UpsertExperience(_ context.Context, accountID string, in ports.ExperienceInput, files map[domain.FileKey]string) (*domain.Experience, error) {
	if r.upsertErr != nil {
		return nil, r.upsertErr
	}
	r.upserts++
	e, ok := r.experiences[accountID]
	if !ok {
		e = &domain.Experience{AccountID: accountID, CreatedAt: time.Now()}
		r.experiences[accountID] = e
	}
	e.ExperienceYears, e.ExperienceMonths, e.EmploymentType = in.ExperienceYears, in.ExperienceMonths, in.EmploymentType
	e.Occupation, e.JobRequirement, e.HeardAbout, e.InterestType = in.Occupation, in.JobRequirement, in.HeardAbout, in.InterestType
	setFile(&e.ResumeStep2, files, domain.FileResumeStep2)
	c := *e
	return &c, nil
}

func (r *stubOnboardingRepo) UpsertKYC(_ context.Context, accountID string, in ports.KYCInput, files map[domain.FileKey]string) (*domain.KYC, error) {
	if r.upsertErr != nil {
		return nil, r.upsertErr
	}
	r.upserts++
	k, ok := r.kycs[accountID]
	if !ok {
		k = &domain.KYC{AccountID: accountID, CreatedAt: time.Now()}
		r.kycs[accountID] = k
	}
	k.BankName, k.AccountNumber, k.IFSCCode = in.BankName, in.AccountNumber, in.IFSCCode
	setFile(&k.AadhaarFront, files, domain.FileAadhaarFront)
	setFile(&k.AadhaarBack, files, domain.FileAadhaarBack)
	setFile(&k.PanCardUpload, files, domain.FilePanCardUpload)
	setFile(&k.PassbookUpload, files, domain.FilePassbookUpload)
	c := *k
	return &c, nil
}

func (r *stubOnboardingRepo) DeleteByAccount(_ context.Context, accountID string) error {
	delete(r.profiles, accountID)
	delete(r.experiences, accountID)
	delete(r.kycs, accountID)
	return nil
}

// ---------------------------------------------------------------------------
// Combined view
// ---------------------------------------------------------------------------

type stubCombinedRepo struct {
	accounts   *stubAccountRepo
	onboarding *stubOnboardingRepo
	lastFilter ports.CombinedFilter
}

func (r *stubCombinedRepo) all(filter ports.CombinedFilter) []*domain.CombinedRecord {
	var out []*domain.CombinedRecord
	for _, a := range r.accounts.byID {
		if a.Role != domain.RoleUser {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(a.Name+" "+a.Email+" "+a.ExternalID), strings.ToLower(filter.Search)) {
			continue
		}
		snap, _ := r.onboarding.FindSnapshot(context.Background(), a.ID)
		out = append(out, &domain.CombinedRecord{
			Account:    a.Summary(),
			Profile:    snap.Profile,
			Experience: snap.Experience,
			KYC:        snap.KYC,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Account.CreatedAt.After(out[j].Account.CreatedAt) })
	return out
}

func (r *stubCombinedRepo) ListCombined(_ context.Context, filter ports.CombinedFilter) ([]*domain.CombinedRecord, int64, error) {
	r.lastFilter = filter
	all := r.all(filter)
	total := int64(len(all))
	if filter.Skip >= len(all) {
		return nil, total, nil
	}
	all = all[filter.Skip:]
	if filter.Limit > 0 && len(all) > filter.Limit {
		all = all[:filter.Limit]
	}
	return all, total, nil
}

func (r *stubCombinedRepo) EachCombined(_ context.Context, filter ports.CombinedFilter, fn func(*domain.CombinedRecord) error) error {
	r.lastFilter = filter
	for _, rec := range r.all(filter) {
		if err := fn(rec); err != nil {
			return err
		}
	}
	return nil
}

func (r *stubCombinedRepo) FindCombined(ctx context.Context, accountID string) (*domain.CombinedRecord, error) {
	a, err := r.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	snap, _ := r.onboarding.FindSnapshot(ctx, accountID)
	return &domain.CombinedRecord{Account: a.Summary(), Profile: snap.Profile, Experience: snap.Experience, KYC: snap.KYC}, nil
}

// ---------------------------------------------------------------------------
// Blobs, mail, throttle
// ---------------------------------------------------------------------------

type stubBlobStore struct {
	puts    []string
	deleted []string
	putErr  error
	// failAfter makes Put return putErr once this many blobs are stored.
	failAfter int
}

func (b *stubBlobStore) Put(_ context.Context, owner string, u *ports.Upload) (string, error) {
	if b.putErr != nil && len(b.puts) >= b.failAfter {
		return "", b.putErr
	}
	if u.Reader != nil {
		_, _ = io.Copy(io.Discard, u.Reader)
	}
	url := fmt.Sprintf("/files/%s-%d-%s", owner, len(b.puts)+1, u.Filename)
	b.puts = append(b.puts, url)
	return url, nil
}

func (b *stubBlobStore) Delete(_ context.Context, url string) error {
	b.deleted = append(b.deleted, url)
	return nil
}

func (b *stubBlobStore) Open(_ context.Context, id string) (*ports.Blob, error) {
	return nil, fmt.Errorf("blob %s not found", id)
}

type stubMailQueue struct {
	mu   sync.Mutex
	sent []ports.Mail
}

func (q *stubMailQueue) Enqueue(m ports.Mail) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.sent = append(q.sent, m)
	return nil
}

func (q *stubMailQueue) last() ports.Mail {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.sent) == 0 {
		return ports.Mail{}
	}
	return q.sent[len(q.sent)-1]
}

type stubThrottle struct {
	block bool
	calls int
}

func (t *stubThrottle) Allow(_ context.Context, subject string) error {
	t.calls++
	if t.block {
		return fmt.Errorf("%w: retry in 60s", domain.ErrOTPThrottled)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Gigs
// ---------------------------------------------------------------------------

type stubGigRepo struct {
	gigs   map[string]*domain.Gig
	nextID int
}

func newStubGigRepo() *stubGigRepo {
	return &stubGigRepo{gigs: make(map[string]*domain.Gig)}
}

func (r *stubGigRepo) Create(_ context.Context, g *domain.Gig) error {
	r.nextID++
	g.ID = fmt.Sprintf("gig-%d", r.nextID)
	c := *g
	r.gigs[g.ID] = &c
	return nil
}

func (r *stubGigRepo) FindByID(_ context.Context, id string) (*domain.Gig, error) {
	g, ok := r.gigs[id]
	if !ok {
		return nil, domain.ErrGigNotFound
	}
	c := *g
	return &c, nil
}

func (r *stubGigRepo) List(_ context.Context, filter ports.GigFilter) ([]*domain.Gig, error) {
	var out []*domain.Gig
	for _, g := range r.gigs {
		if filter.Status != "" && g.Status != filter.Status {
			continue
		}
		c := *g
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubGigRepo) Update(_ context.Context, g *domain.Gig) error {
	if _, ok := r.gigs[g.ID]; !ok {
		return domain.ErrGigNotFound
	}
	c := *g
	r.gigs[g.ID] = &c
	return nil
}

func (r *stubGigRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.gigs[id]; !ok {
		return domain.ErrGigNotFound
	}
	delete(r.gigs, id)
	return nil
}

type stubApplicationRepo struct {
	apps   map[string]*domain.GigApplication
	nextID int
}

func newStubApplicationRepo() *stubApplicationRepo {
	return &stubApplicationRepo{apps: make(map[string]*domain.GigApplication)}
}

func (r *stubApplicationRepo) Create(_ context.Context, a *domain.GigApplication) error {
	for _, existing := range r.apps {
		if existing.GigID == a.GigID && existing.AccountID == a.AccountID {
			return domain.ErrAlreadyApplied
		}
	}
	r.nextID++
	a.ID = fmt.Sprintf("app-%d", r.nextID)
	c := *a
	r.apps[a.ID] = &c
	return nil
}

func (r *stubApplicationRepo) FindByID(_ context.Context, id string) (*domain.GigApplication, error) {
	a, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	c := *a
	return &c, nil
}

func (r *stubApplicationRepo) filter(keep func(*domain.GigApplication) bool) []*domain.GigApplication {
	var out []*domain.GigApplication
	for _, a := range r.apps {
		if keep(a) {
			c := *a
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *stubApplicationRepo) ListByGig(_ context.Context, gigID string) ([]*domain.GigApplication, error) {
	return r.filter(func(a *domain.GigApplication) bool { return a.GigID == gigID }), nil
}

func (r *stubApplicationRepo) ListByAccount(_ context.Context, accountID string) ([]*domain.GigApplication, error) {
	return r.filter(func(a *domain.GigApplication) bool { return a.AccountID == accountID }), nil
}

func (r *stubApplicationRepo) UpdateStatus(_ context.Context, id string, status domain.ApplicationStatus) error {
	a, ok := r.apps[id]
	if !ok {
		return domain.ErrApplicationNotFound
	}
	a.Status = status
	return nil
}

func (r *stubApplicationRepo) DeleteByGig(_ context.Context, gigID string) error {
	for id, a := range r.apps {
		if a.GigID == gigID {
			delete(r.apps, id)
		}
	}
	return nil
}

func (r *stubApplicationRepo) DeleteByAccount(_ context.Context, accountID string) error {
	for id, a := range r.apps {
		if a.AccountID == accountID {
			delete(r.apps, id)
		}
	}
	return nil
}
