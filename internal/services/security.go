package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/apparel-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/auth"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/errors"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/i18n"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/apparel-storefront/internal/repositories"
	"github.com/google/uuid"
)

const csrfTokenBytes = 32

// SecurityService issues CSRF tokens and manages a user's second factor.
// It satisfies middleware.CSRFValidator.
type SecurityService interface {
	IssueCSRFToken(ctx context.Context, userID uuid.UUID) (*models.CSRFTokenResponse, error)
	ValidateCSRFToken(ctx context.Context, userID uuid.UUID, token string) error
	MFAStatus(ctx context.Context, userID uuid.UUID) (*models.MFAStatusResponse, error)
	SetupMFA(ctx context.Context, userID uuid.UUID) (*models.MFASetupResponse, error)
	VerifyMFASetup(ctx context.Context, userID uuid.UUID, code string) error
	ToggleMFA(ctx context.Context, userID uuid.UUID, req *models.MFAToggleRequest) (*models.MFAStatusResponse, error)
}

type securityService struct {
	repo     repository.SecurityRepository
	users    repository.UserRepository
	notifier SecurityNotifier
	csrfTTL  time.Duration
	issuer   string
}

func NewSecurityService(repo repository.SecurityRepository, users repository.UserRepository, notifier SecurityNotifier, csrfTTL time.Duration, issuer string) SecurityService {
	return &securityService{repo: repo, users: users, notifier: notifier, csrfTTL: csrfTTL, issuer: issuer}
}

func (s *securityService) IssueCSRFToken(ctx context.Context, userID uuid.UUID) (*models.CSRFTokenResponse, error) {

	buf := make([]byte, csrfTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, errors.InternalError("Failed to generate CSRF token").WithError(err)
	}

	token := hex.EncodeToString(buf)

	if err := s.repo.SaveCSRFToken(ctx, userID, token, s.csrfTTL); err != nil {
		return nil, errors.ThirdPartyError("Failed to store CSRF token").WithError(err)
	}

	return &models.CSRFTokenResponse{CSRFToken: token, ExpiresIn: int(s.csrfTTL.Seconds())}, nil
}

// ValidateCSRFToken compares token with the one issued to the user. An
// expired or never issued token reads as a lapsed session.
func (s *securityService) ValidateCSRFToken(ctx context.Context, userID uuid.UUID, token string) error {

	stored, err := s.repo.GetCSRFToken(ctx, userID)
	if err != nil {
		return errors.ThirdPartyError("Failed to read CSRF token").WithError(err)
	}

	if stored == "" {
		return errors.CSRFError("CSRF token expired").WithKey(i18n.KeySessionExpired)
	}

	if token == "" || subtle.ConstantTimeCompare([]byte(stored), []byte(token)) != 1 {
		middleware.LoggerFromContext(ctx).Warn("CSRF token mismatch", slog.String("userId", userID.String()))
		return errors.CSRFError("CSRF token invalid").WithKey(i18n.KeySessionExpired)
	}

	return nil
}

func (s *securityService) MFAStatus(ctx context.Context, userID uuid.UUID) (*models.MFAStatusResponse, error) {

	user, err := s.user(ctx, userID)
	if err != nil {
		return nil, err
	}

	return mfaStatus(user), nil
}

// SetupMFA stores a fresh secret with MFA still disabled. The secret only
// takes effect once VerifyMFASetup sees a valid code for it.
func (s *securityService) SetupMFA(ctx context.Context, userID uuid.UUID) (*models.MFASetupResponse, error) {

	user, err := s.user(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.MFAEnabled {
		return nil, errors.BadRequestError("MFA is already enabled").WithKey(i18n.KeyMFAEnabled)
	}

	secret, url, err := auth.NewTOTPSecret(s.issuer, user.Email)
	if err != nil {
		return nil, errors.InternalError("Failed to generate MFA secret").WithError(err)
	}

	if err := s.users.UpdateMFA(ctx, userID, false, secret); err != nil {
		return nil, errors.DatabaseError("Failed to store MFA secret").WithError(err)
	}

	return &models.MFASetupResponse{Secret: secret, OTPAuthURL: url}, nil
}

func (s *securityService) VerifyMFASetup(ctx context.Context, userID uuid.UUID, code string) error {

	user, err := s.user(ctx, userID)
	if err != nil {
		return err
	}

	if user.MFASecret == "" {
		return errors.BadRequestError("MFA has not been set up").WithKey(i18n.KeyMFANotSetUp)
	}

	if !auth.VerifyTOTP(code, user.MFASecret) {
		return errors.MFAInvalidError("Invalid MFA code").WithKey(i18n.KeyMFAInvalid)
	}

	if err := s.users.UpdateMFA(ctx, userID, true, user.MFASecret); err != nil {
		return errors.DatabaseError("Failed to enable MFA").WithError(err)
	}

	middleware.LoggerFromContext(ctx).Info("MFA enabled", slog.String("userId", userID.String()))

	user.MFAEnabled = true
	s.notifier.MFAChanged(ctx, user, true)

	return nil
}

// ToggleMFA switches MFA with a code from the current secret. Disabling
// clears the secret so a later enable starts a new setup.
func (s *securityService) ToggleMFA(ctx context.Context, userID uuid.UUID, req *models.MFAToggleRequest) (*models.MFAStatusResponse, error) {

	user, err := s.user(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.MFAEnabled == req.Enabled {
		return mfaStatus(user), nil
	}

	if user.MFASecret == "" {
		return nil, errors.BadRequestError("MFA has not been set up").WithKey(i18n.KeyMFANotSetUp)
	}

	if !auth.VerifyTOTP(req.Code, user.MFASecret) {
		return nil, errors.MFAInvalidError("Invalid MFA code").WithKey(i18n.KeyMFAInvalid)
	}

	secret := user.MFASecret
	if !req.Enabled {
		secret = ""
	}

	if err := s.users.UpdateMFA(ctx, userID, req.Enabled, secret); err != nil {
		return nil, errors.DatabaseError("Failed to update MFA").WithError(err)
	}

	user.MFAEnabled = req.Enabled
	user.MFASecret = secret

	middleware.LoggerFromContext(ctx).Info("MFA toggled", slog.String("userId", userID.String()), slog.Bool("enabled", req.Enabled))

	s.notifier.MFAChanged(ctx, user, req.Enabled)

	return mfaStatus(user), nil
}

func (s *securityService) user(ctx context.Context, id uuid.UUID) (*models.User, error) {

	user, err := s.users.GetUserById(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, errors.NotFoundError("User not found").WithKey(i18n.KeyNotFound).WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch user").WithError(err)
	}

	return user, nil
}

func mfaStatus(user *models.User) *models.MFAStatusResponse {
	return &models.MFAStatusResponse{
		Enabled: user.MFAEnabled,
		Pending: !user.MFAEnabled && user.MFASecret != "",
	}
}
