package service

import (
	"context"
	stdErrors "errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/apparel-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/auth"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/errors"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/i18n"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/apparel-storefront/internal/repositories"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/storage"
	"github.com/google/uuid"
)

type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *models.UpdateProfileRequest) (*models.User, error)
	UploadAvatar(ctx context.Context, id uuid.UUID, data []byte) (*models.User, error)
	ChangePassword(ctx context.Context, id uuid.UUID, req *models.ChangePasswordRequest) error
	ListUsers(ctx context.Context, page, size int) ([]*models.User, int, error)
	AdminUpdateUser(ctx context.Context, id uuid.UUID, req *models.AdminUpdateUserRequest) (*models.User, error)
}

type userService struct {
	repo      repository.UserRepository
	rateLimit repository.RateLimitRepository
	security  repository.SecurityRepository
	avatars   storage.AvatarStore
	notifier  SecurityNotifier
	jwtKey    []byte
	tokenTTL  time.Duration
}

func NewUserService(repo repository.UserRepository, rateLimit repository.RateLimitRepository, security repository.SecurityRepository, avatars storage.AvatarStore, notifier SecurityNotifier, jwtKey []byte, tokenTTL time.Duration) UserService {
	return &userService{
		repo:      repo,
		rateLimit: rateLimit,
		security:  security,
		avatars:   avatars,
		notifier:  notifier,
		jwtKey:    jwtKey,
		tokenTTL:  tokenTTL,
	}
}

func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existingUser, _ := s.repo.GetUserByEmail(ctx, email)
	if existingUser != nil {
		return nil, errors.DuplicateEntryError("Email already registered").WithKey(i18n.KeyEmailTaken)
	}

	if err := auth.CheckPasswordPolicy(req.Password); err != nil {
		return nil, errors.ValidationError("Password does not meet the policy").WithKey(i18n.KeyPasswordWeak).WithError(err)
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, errors.InternalError("Failed to secure password").WithError(err)
	}

	lang := req.PreferredLanguage
	if lang == "" {
		lang = string(i18n.FromContext(ctx))
	}

	user := &models.User{
		ID:                uuid.New(),
		Name:              req.Name,
		NameAr:            req.NameAr,
		Email:             email,
		Password:          hashedPassword,
		Role:              models.RoleCustomer,
		Active:            true,
		PreferredLanguage: lang,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, errors.DatabaseError("Failed to create user").WithError(err)
	}

	return user, nil
}

// Login returns Success=false rather than an error for the outcomes a client
// is expected to handle: rate limiting, bad credentials and a missing or
// wrong MFA code.
func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {

	logger := middleware.LoggerFromContext(ctx)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	allowed, remaining, retryAfter, err := s.rateLimit.CheckLoginRateLimit(ctx, email)
	if err != nil {
		return nil, errors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		metrics.RecordLogin(metrics.LoginRateLimited)
		return &models.LoginResponse{
			Success:    false,
			Message:    i18n.TC(ctx, i18n.KeyTooManyAttempts),
			RetryAfter: retryAfter,
		}, nil
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil && !isNoRows(err) {
		return nil, errors.DatabaseError("Failed to fetch user").WithError(err)
	}

	if user == nil || !auth.CheckPassword(user.Password, req.Password) {
		metrics.RecordLogin(metrics.LoginFailed)
		return &models.LoginResponse{
			Success:        false,
			Message:        i18n.TC(ctx, i18n.KeyInvalidCredentials),
			RemainingTries: remaining,
		}, nil
	}

	if !user.Active {
		metrics.RecordLogin(metrics.LoginFailed)
		return nil, errors.ForbiddenError("Account is disabled").WithKey(i18n.KeyAccountDisabled)
	}

	if user.MFAEnabled {
		if req.MFACode == "" {
			metrics.RecordLogin(metrics.LoginMFAChallenge)
			return &models.LoginResponse{
				Success:     false,
				MFARequired: true,
				Message:     i18n.TC(ctx, i18n.KeyMFARequired),
			}, nil
		}

		if !auth.VerifyTOTP(req.MFACode, user.MFASecret) {
			metrics.RecordLogin(metrics.LoginFailed)
			return &models.LoginResponse{
				Success:        false,
				MFARequired:    true,
				Message:        i18n.TC(ctx, i18n.KeyMFAInvalid),
				RemainingTries: remaining,
			}, nil
		}
	}

	version, err := s.security.SessionVersion(ctx, user.ID)
	if err != nil {
		return nil, errors.ThirdPartyError("Failed to read session version").WithError(err)
	}

	claims := &models.Claims{
		UserID:         user.ID,
		Email:          user.Email,
		Role:           user.Role,
		SessionVersion: version,
	}

	tokenString, err := auth.SignToken(claims, s.jwtKey, s.tokenTTL)
	if err != nil {
		return nil, errors.InternalError("Failed to generate authentication token").WithError(err)
	}

	if err := s.rateLimit.ResetLoginAttempts(ctx, email); err != nil {
		logger.Warn("Failed to reset login attempts", slog.String("userId", user.ID.String()), slog.Any("error", err))
	}

	metrics.RecordLogin(metrics.LoginSuccess)

	return &models.LoginResponse{
		Success:   true,
		Token:     tokenString,
		ExpiresIn: int(s.tokenTTL.Seconds()),
	}, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {

	user, err := s.repo.GetUserById(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, errors.NotFoundError("User not found").WithKey(i18n.KeyNotFound).WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch user").WithError(err)
	}

	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, req *models.UpdateProfileRequest) (*models.User, error) {

	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.NameAr != nil {
		user.NameAr = strings.TrimSpace(*req.NameAr)
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Newsletter != nil {
		user.Newsletter = *req.Newsletter
	}
	if req.PreferredLanguage != nil {
		user.PreferredLanguage = *req.PreferredLanguage
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, errors.DatabaseError("Failed to update profile").WithError(err)
	}

	return user, nil
}

func (s *userService) UploadAvatar(ctx context.Context, id uuid.UUID, data []byte) (*models.User, error) {

	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := s.avatars.Save(ctx, id, data)
	if err != nil {
		if stdErrors.Is(err, storage.ErrUnsupportedImage) {
			return nil, errors.ValidationError("Avatar must be a JPEG, PNG or WebP image").WithKey(i18n.KeyAvatarInvalid).WithError(err)
		}

		return nil, errors.InternalError("Failed to store avatar").WithError(err)
	}

	user.AvatarURL = url

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, errors.DatabaseError("Failed to update profile").WithError(err)
	}

	return user, nil
}

// ChangePassword revokes every token issued before the change by bumping
// the session version.
func (s *userService) ChangePassword(ctx context.Context, id uuid.UUID, req *models.ChangePasswordRequest) error {

	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.Password, req.CurrentPassword) {
		return errors.ValidationError("Current password is incorrect").WithKey(i18n.KeyPasswordIncorrect)
	}

	if err := auth.ValidatePasswordChange(req.CurrentPassword, req.NewPassword, req.ConfirmPassword); err != nil {
		key := i18n.KeyPasswordWeak
		switch {
		case stdErrors.Is(err, auth.ErrPasswordMismatch):
			key = i18n.KeyPasswordMismatch
		case stdErrors.Is(err, auth.ErrPasswordReused):
			key = i18n.KeyPasswordReused
		}

		return errors.ValidationError("New password rejected").WithKey(key).WithError(err)
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return errors.InternalError("Failed to secure password").WithError(err)
	}

	if err := s.repo.UpdatePassword(ctx, id, hash); err != nil {
		return errors.DatabaseError("Failed to update password").WithError(err)
	}

	if _, err := s.security.BumpSessionVersion(ctx, id); err != nil {
		return errors.ThirdPartyError("Failed to revoke sessions").WithError(err)
	}

	middleware.LoggerFromContext(ctx).Info("Password changed", slog.String("userId", id.String()))

	s.notifier.PasswordChanged(ctx, user)

	return nil
}

func (s *userService) ListUsers(ctx context.Context, page, size int) ([]*models.User, int, error) {

	users, total, err := s.repo.ListUsers(ctx, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch users").WithError(err)
	}

	return users, total, nil
}

// AdminUpdateUser changes role or active status. Either change revokes the
// user's current sessions so the new state applies immediately.
func (s *userService) AdminUpdateUser(ctx context.Context, id uuid.UUID, req *models.AdminUpdateUserRequest) (*models.User, error) {

	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Active != nil {
		user.Active = *req.Active
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, errors.DatabaseError("Failed to update user").WithError(err)
	}

	if req.Role != nil || req.Active != nil {
		if _, err := s.security.BumpSessionVersion(ctx, id); err != nil {
			return nil, errors.ThirdPartyError("Failed to revoke sessions").WithError(err)
		}
	}

	middleware.LoggerFromContext(ctx).Info("User updated by admin", slog.String("userId", id.String()), slog.String("role", string(user.Role)), slog.Bool("active", user.Active))

	return user, nil
}
