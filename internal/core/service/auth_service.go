package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gigstm/gigs-platform/internal/core/domain"
	"github.com/gigstm/gigs-platform/internal/core/ports"
	"github.com/gigstm/gigs-platform/internal/pkg/metrics"
)

const (
	otpDigits          = 6
	externalIDPrefix   = "GIG"
	externalIDDigits   = 7
	externalIDAttempts = 3
	minPasswordLength  = 8
)

// AuthConfig tunes token and code lifetimes.
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	OTPTTL    time.Duration
	ResetTTL  time.Duration
}

// AuthService implements registration, email verification, login and
// password management.
type AuthService struct {
	repo     ports.AccountRepository
	mail     ports.MailQueue
	throttle ports.OTPThrottle
	cfg      AuthConfig
	logger   zerolog.Logger
	now      func() time.Time
}

func NewAuthService(repo ports.AccountRepository, mail ports.MailQueue, throttle ports.OTPThrottle, cfg AuthConfig, logger zerolog.Logger) *AuthService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if cfg.OTPTTL <= 0 {
		cfg.OTPTTL = 10 * time.Minute
	}
	if cfg.ResetTTL <= 0 {
		cfg.ResetTTL = 10 * time.Minute
	}
	return &AuthService{
		repo:     repo,
		mail:     mail,
		throttle: throttle,
		cfg:      cfg,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

type registerSchema struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,basic_email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"oneof=user admin"`
}

// Register creates an unverified account and mails its first code.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Account, error) {
	schema := registerSchema{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Password: in.Password,
		Role:     in.Role,
	}
	if schema.Role == "" {
		schema.Role = domain.RoleUser
	}
	verr := &domain.ValidationError{}
	if err := collectViolations(&schema, verr); err != nil {
		return nil, err
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByEmail(ctx, schema.Email); err == nil {
		return nil, domain.ErrAccountExists
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(schema.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	code, err := generateOTP()
	if err != nil {
		return nil, err
	}

	now := s.now()
	account := &domain.Account{
		Name:         schema.Name,
		Email:        schema.Email,
		PasswordHash: string(hash),
		OTPHash:      hashSecret(code),
		OTPExpiresAt: now.Add(s.cfg.OTPTTL),
		Role:         schema.Role,
		Status:       domain.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// A duplicate on insert is either a racing registration of the same email
	// or an external id collision; only the latter is retried.
	var created *domain.Account
	for attempt := 0; attempt < externalIDAttempts; attempt++ {
		account.ExternalID, err = generateExternalID()
		if err != nil {
			return nil, err
		}
		created, err = s.repo.Create(ctx, account)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrAccountExists) {
			return nil, err
		}
		if _, ferr := s.repo.FindByEmail(ctx, schema.Email); ferr == nil {
			return nil, domain.ErrAccountExists
		}
	}
	if err != nil {
		return nil, fmt.Errorf("allocate external id: %w", err)
	}

	metrics.AuthEventsTotal.WithLabelValues("register", "ok").Inc()
	s.logger.Info().Str("account_id", created.ID).Str("external_id", created.ExternalID).Str("role", created.Role).Msg("account registered")
	s.sendOTP(created, code)
	return created, nil
}

// VerifyOTP marks the email of the account as verified when code matches.
func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) (*domain.Account, error) {
	account, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if account.EmailVerified {
		return nil, domain.ErrAlreadyVerified
	}

	if !s.otpMatches(account, strings.TrimSpace(code)) {
		metrics.AuthEventsTotal.WithLabelValues("verify_otp", "invalid").Inc()
		return nil, domain.ErrOTPInvalid
	}

	account.EmailVerified = true
	account.OTPHash = ""
	account.OTPExpiresAt = time.Time{}
	account.UpdatedAt = s.now()
	if err := s.repo.UpdateCredentials(ctx, account); err != nil {
		return nil, err
	}
	metrics.AuthEventsTotal.WithLabelValues("verify_otp", "ok").Inc()
	return account, nil
}

func (s *AuthService) otpMatches(account *domain.Account, code string) bool {
	if account.OTPHash == "" || code == "" || s.now().After(account.OTPExpiresAt) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(account.OTPHash), []byte(hashSecret(code))) == 1
}

// ResendOTP issues a fresh code, subject to the resend throttle.
func (s *AuthService) ResendOTP(ctx context.Context, accountID string) error {
	account, err := s.repo.FindByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account.EmailVerified {
		return domain.ErrAlreadyVerified
	}
	if err := s.throttle.Allow(ctx, account.ID); err != nil {
		metrics.AuthEventsTotal.WithLabelValues("resend_otp", "throttled").Inc()
		return err
	}
	if err := s.reissueOTP(ctx, account); err != nil {
		return err
	}
	metrics.AuthEventsTotal.WithLabelValues("resend_otp", "ok").Inc()
	return nil
}

func (s *AuthService) reissueOTP(ctx context.Context, account *domain.Account) error {
	code, err := generateOTP()
	if err != nil {
		return err
	}
	account.OTPHash = hashSecret(code)
	account.OTPExpiresAt = s.now().Add(s.cfg.OTPTTL)
	account.UpdatedAt = s.now()
	if err := s.repo.UpdateCredentials(ctx, account); err != nil {
		return err
	}
	s.sendOTP(account, code)
	return nil
}

// Login checks the password and issues a bearer token. Unverified users are
// let in and sent a new code; unverified admins are refused.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrAccountNotFound) {
		metrics.AuthEventsTotal.WithLabelValues("login", "invalid").Inc()
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		metrics.AuthEventsTotal.WithLabelValues("login", "invalid").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	result := &ports.LoginResult{Account: account}
	if !account.EmailVerified {
		if err := s.throttle.Allow(ctx, account.ID); err == nil {
			if err := s.reissueOTP(ctx, account); err != nil {
				return nil, err
			}
			result.OTPSent = true
		} else if !errors.Is(err, domain.ErrOTPThrottled) {
			return nil, err
		}
		if account.IsAdmin() {
			metrics.AuthEventsTotal.WithLabelValues("login", "unverified").Inc()
			return nil, domain.ErrAccountNotVerified
		}
	}

	token, err := s.generateToken(account)
	if err != nil {
		return nil, err
	}
	result.Token = token
	metrics.AuthEventsTotal.WithLabelValues("login", "ok").Inc()
	return result, nil
}

// ForgotPassword mails a reset link when the email is registered. Unknown
// emails succeed silently.
func (s *AuthService) ForgotPassword(ctx context.Context, email, resetBaseURL string) error {
	account, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, domain.ErrAccountNotFound) {
		s.logger.Info().Msg("password reset requested for unknown email")
		return nil
	}
	if err != nil {
		return err
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return err
	}
	token := hex.EncodeToString(raw)

	account.ResetTokenHash = hashSecret(token)
	account.ResetExpiresAt = s.now().Add(s.cfg.ResetTTL)
	account.UpdatedAt = s.now()
	if err := s.repo.UpdateCredentials(ctx, account); err != nil {
		return err
	}

	link := strings.TrimRight(resetBaseURL, "/") + "/" + token
	s.enqueue(ports.Mail{
		To:      account.Email,
		Subject: "Reset your password",
		HTML:    fmt.Sprintf(resetMailTemplate, account.Name, link, link, int(s.cfg.ResetTTL.Minutes())),
	})
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, password string) error {
	if err := checkPassword("password", password); err != nil {
		return err
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.ErrResetTokenInvalid
	}

	account, err := s.repo.FindByResetToken(ctx, hashSecret(token), s.now())
	if errors.Is(err, domain.ErrAccountNotFound) {
		return domain.ErrResetTokenInvalid
	}
	if err != nil {
		return err
	}

	if err := s.setPassword(ctx, account, password); err != nil {
		return err
	}
	metrics.AuthEventsTotal.WithLabelValues("reset_password", "ok").Inc()
	return nil
}

func (s *AuthService) ChangePassword(ctx context.Context, accountID, current, next, confirm string) error {
	verr := &domain.ValidationError{}
	if current == "" {
		verr.Add("currentPassword", "is required")
	}
	if len(next) < minPasswordLength {
		verr.Add("newPassword", fmt.Sprintf("must be at least %d", minPasswordLength))
	}
	if next != confirm {
		verr.Add("confirmPassword", "does not match")
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	account, err := s.repo.FindByID(ctx, accountID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(current)) != nil {
		return domain.ErrInvalidCredentials
	}
	return s.setPassword(ctx, account, next)
}

// SeedAdmin creates a verified, approved administrator unless an account with
// email already exists. It reports whether an account was created.
func (s *AuthService) SeedAdmin(ctx context.Context, name, email, password string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return false, nil
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return false, err
	}
	if err := checkPassword("password", password); err != nil {
		return false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	externalID, err := generateExternalID()
	if err != nil {
		return false, err
	}

	now := s.now()
	created, err := s.repo.Create(ctx, &domain.Account{
		Name:          strings.TrimSpace(name),
		Email:         email,
		ExternalID:    externalID,
		PasswordHash:  string(hash),
		EmailVerified: true,
		Role:          domain.RoleAdmin,
		Status:        domain.StatusApproved,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return false, fmt.Errorf("seed admin: %w", err)
	}
	s.logger.Info().Str("account_id", created.ID).Str("external_id", created.ExternalID).Msg("admin account seeded")
	return true, nil
}

func (s *AuthService) setPassword(ctx context.Context, account *domain.Account, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	account.PasswordHash = string(hash)
	account.ResetTokenHash = ""
	account.ResetExpiresAt = time.Time{}
	account.UpdatedAt = s.now()
	if err := s.repo.UpdateCredentials(ctx, account); err != nil {
		return err
	}
	s.logger.Info().Str("account_id", account.ID).Msg("password changed")
	return nil
}

func checkPassword(field, password string) error {
	if len(password) >= minPasswordLength {
		return nil
	}
	verr := &domain.ValidationError{}
	verr.Add(field, fmt.Sprintf("must be at least %d", minPasswordLength))
	return verr
}

func (s *AuthService) generateToken(account *domain.Account) (string, error) {
	claims := jwt.MapClaims{
		"sub":         account.ID,
		"role":        account.Role,
		"external_id": account.ExternalID,
		"exp":         s.now().Add(s.cfg.TokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) sendOTP(account *domain.Account, code string) {
	s.enqueue(ports.Mail{
		To:      account.Email,
		Subject: "Your verification code",
		HTML:    fmt.Sprintf(otpMailTemplate, account.Name, code, int(s.cfg.OTPTTL.Minutes())),
	})
}

// enqueue hands m to the mail queue. Delivery problems never fail the request.
func (s *AuthService) enqueue(m ports.Mail) {
	if err := s.mail.Enqueue(m); err != nil {
		s.logger.Warn().Err(err).Str("to", m.To).Str("subject", m.Subject).Msg("mail not queued")
	}
}

func hashSecret(v string) string {
	sum := sha256.Sum256([]byte(v))
	return hex.EncodeToString(sum[:])
}

func randomDigits(n int) (string, error) {
	var b strings.Builder
	for i := 0; i < n; i++ {
		d, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		b.WriteByte(byte('0' + d.Int64()))
	}
	return b.String(), nil
}

func generateOTP() (string, error) { return randomDigits(otpDigits) }

// generateExternalID returns an id in the format GIG1234567.
func generateExternalID() (string, error) {
	d, err := randomDigits(externalIDDigits)
	if err != nil {
		return "", err
	}
	return externalIDPrefix + d, nil
}

const otpMailTemplate = `<p>Hi %s,</p>
<p>Your verification code is <strong>%s</strong>.</p>
<p>It expires in %d minutes.</p>`

const resetMailTemplate = `<p>Hi %s,</p>
<p>Use the link below to choose a new password:</p>
<p><a href="%s">%s</a></p>
<p>The link expires in %d minutes.</p>`
