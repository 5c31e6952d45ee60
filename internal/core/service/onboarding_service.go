package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/gigstm/gigs-platform/internal/core/domain"
	"github.com/gigstm/gigs-platform/internal/core/ports"
	"github.com/gigstm/gigs-platform/internal/pkg/metrics"
)

// OnboardingService validates and persists onboarding sections and derives
// completion and gate decisions from the stored records.
type OnboardingService struct {
	repo     ports.OnboardingRepository
	accounts ports.AccountRepository
	combined ports.CombinedRepository
	blobs    ports.BlobStore
	logger   zerolog.Logger
}

func NewOnboardingService(
	repo ports.OnboardingRepository,
	accounts ports.AccountRepository,
	combined ports.CombinedRepository,
	blobs ports.BlobStore,
	logger zerolog.Logger,
) *OnboardingService {
	return &OnboardingService{repo: repo, accounts: accounts, combined: combined, blobs: blobs, logger: logger}
}

func (s *OnboardingService) SubmitPersonal(ctx context.Context, accountID string, in ports.PersonalInput, files ports.Uploads) (*domain.Profile, error) {
	trimStrings(&in)
	urls, err := s.prepare(ctx, accountID, domain.SectionPersonal, &in, files)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.UpsertProfile(ctx, accountID, in, urls)
	if err != nil {
		s.discard(ctx, accountID, urls)
		return nil, s.fail(domain.SectionPersonal, accountID, err)
	}
	s.saved(domain.SectionPersonal, accountID, urls)
	return p, nil
}

func (s *OnboardingService) SubmitExperience(ctx context.Context, accountID string, in ports.ExperienceInput, files ports.Uploads) (*domain.Experience, error) {
	trimStrings(&in)
	urls, err := s.prepare(ctx, accountID, domain.SectionExperience, &in, files)
	if err != nil {
		return nil, err
	}

	e, err := s.repo.UpsertExperience(ctx, accountID, in, urls)
	if err != nil {
		s.discard(ctx, accountID, urls)
		return nil, s.fail(domain.SectionExperience, accountID, err)
	}
	s.saved(domain.SectionExperience, accountID, urls)
	return e, nil
}

func (s *OnboardingService) SubmitKYC(ctx context.Context, accountID string, in ports.KYCInput, files ports.Uploads) (*domain.KYC, error) {
	trimStrings(&in)
	urls, err := s.prepare(ctx, accountID, domain.SectionKYC, &in, files)
	if err != nil {
		return nil, err
	}

	k, err := s.repo.UpsertKYC(ctx, accountID, in, urls)
	if err != nil {
		s.discard(ctx, accountID, urls)
		return nil, s.fail(domain.SectionKYC, accountID, err)
	}
	s.saved(domain.SectionKYC, accountID, urls)
	return k, nil
}

// prepare validates a submission as a whole and, only when it is valid, writes
// the uploaded blobs. It returns the URLs of the new files keyed by slot.
func (s *OnboardingService) prepare(ctx context.Context, accountID string, section domain.Section, in any, files ports.Uploads) (map[domain.FileKey]string, error) {
	if err := s.requireAccount(ctx, accountID); err != nil {
		return nil, err
	}

	snap, err := s.repo.FindSnapshot(ctx, accountID)
	if err != nil {
		return nil, s.fail(section, accountID, err)
	}

	verr := &domain.ValidationError{}
	if err := collectViolations(in, verr); err != nil {
		return nil, s.fail(section, accountID, err)
	}
	for _, key := range domain.RequiredSectionFiles[section] {
		if files[key] == nil && snap.FileURL(section, key) == "" {
			verr.Add(string(key), "is required")
		}
	}
	for _, key := range domain.SectionFiles[section] {
		if u := files[key]; u != nil {
			checkUpload(verr, key, u)
		}
	}
	if err := verr.OrNil(); err != nil {
		metrics.OnboardingSubmissionsTotal.WithLabelValues(string(section), "invalid").Inc()
		s.logger.Info().Str("account_id", accountID).Str("section", string(section)).Int("violations", len(verr.Fields)).Msg("section rejected")
		return nil, err
	}

	urls := make(map[domain.FileKey]string, len(files))
	for _, key := range domain.SectionFiles[section] {
		u := files[key]
		if u == nil {
			continue
		}
		url, err := s.blobs.Put(ctx, accountID, u)
		if err != nil {
			s.discard(ctx, accountID, urls)
			return nil, s.fail(section, accountID, fmt.Errorf("store %s: %w", key, err))
		}
		urls[key] = url
	}
	return urls, nil
}

// requireAccount rejects tokens whose account no longer exists, so a deleted
// account cannot recreate onboarding records.
func (s *OnboardingService) requireAccount(ctx context.Context, accountID string) error {
	if accountID == "" {
		return domain.ErrUnauthorized
	}
	if _, err := s.accounts.FindByID(ctx, accountID); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return fmt.Errorf("%w: account %s no longer exists", domain.ErrUnauthorized, accountID)
		}
		return err
	}
	return nil
}

// discard removes blobs written for a submission that was not persisted.
func (s *OnboardingService) discard(ctx context.Context, accountID string, urls map[domain.FileKey]string) {
	ctx = context.WithoutCancel(ctx)
	for key, url := range urls {
		if err := s.blobs.Delete(ctx, url); err != nil {
			s.logger.Warn().Err(err).Str("account_id", accountID).Str("slot", string(key)).Str("url", url).Msg("orphaned upload not removed")
		}
	}
}

func checkUpload(verr *domain.ValidationError, key domain.FileKey, u *ports.Upload) {
	if !slices.Contains(domain.AllowedUploadTypes, u.ContentType) {
		verr.Add(string(key), "must be a JPEG, PNG, WEBP or PDF file")
		return
	}
	if u.Size > domain.MaxUploadBytes {
		verr.Add(string(key), fmt.Sprintf("must be at most %d MB", domain.MaxUploadBytes>>20))
	}
}

func (s *OnboardingService) fail(section domain.Section, accountID string, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		metrics.OnboardingSubmissionsTotal.WithLabelValues(string(section), "invalid").Inc()
		return err
	}
	metrics.OnboardingSubmissionsTotal.WithLabelValues(string(section), "error").Inc()
	s.logger.Error().Err(err).Str("account_id", accountID).Str("section", string(section)).Msg("section submission failed")
	return err
}

func (s *OnboardingService) saved(section domain.Section, accountID string, urls map[domain.FileKey]string) {
	metrics.OnboardingSubmissionsTotal.WithLabelValues(string(section), "saved").Inc()
	s.logger.Info().Str("account_id", accountID).Str("section", string(section)).Int("files", len(urls)).Msg("section saved")
}

// Completion evaluates the stored records of accountID.
func (s *OnboardingService) Completion(ctx context.Context, accountID string) (domain.Completion, error) {
	snap, err := s.repo.FindSnapshot(ctx, accountID)
	if err != nil {
		return domain.Completion{}, err
	}
	c := domain.EvaluateCompletion(snap, nil)
	metrics.OnboardingCompletion.Observe(float64(c.Percentage))
	return c, nil
}

// Gate evaluates the access gate from freshly loaded records. Nothing is cached.
func (s *OnboardingService) Gate(ctx context.Context, accountID string) (domain.Gate, error) {
	snap, err := s.repo.FindSnapshot(ctx, accountID)
	if err != nil {
		return domain.Gate{}, err
	}
	g := domain.EvaluateGate(snap)
	if g.Open {
		metrics.GateDecisionsTotal.WithLabelValues("open").Inc()
	} else {
		metrics.GateDecisionsTotal.WithLabelValues("blocked").Inc()
	}
	return g, nil
}

// RequireGate fails unless the account still exists and its gate is open.
func (s *OnboardingService) RequireGate(ctx context.Context, accountID string) error {
	if err := s.requireAccount(ctx, accountID); err != nil {
		return err
	}
	g, err := s.Gate(ctx, accountID)
	if err != nil {
		return err
	}
	if !g.Open {
		return fmt.Errorf("%w: complete the %s section (%d%%)", domain.ErrOnboardingIncomplete, g.Incomplete, g.Percentage)
	}
	return nil
}

// MyCombined returns the owner's records with the same masking admins see.
func (s *OnboardingService) MyCombined(ctx context.Context, accountID string) (*ports.MyOnboarding, error) {
	rec, err := s.combined.FindCombined(ctx, accountID)
	if err != nil {
		return nil, err
	}
	snap := rec.Snapshot()
	return &ports.MyOnboarding{
		Record:     rec.Masked(),
		Completion: domain.EvaluateCompletion(snap, nil),
		Gate:       domain.EvaluateGate(snap),
	}, nil
}
