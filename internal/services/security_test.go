package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/apparel-storefront/internal/auth"
	appErrors "github.com/aaravmahajanofficial/apparel-storefront/internal/errors"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/i18n"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/models"
	repoMocks "github.com/aaravmahajanofficial/apparel-storefront/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/apparel-storefront/internal/services"
	svcMocks "github.com/aaravmahajanofficial/apparel-storefront/internal/services/mocks"
	"github.com/google/uuid"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type securityFixture struct {
	repo     *repoMocks.SecurityRepository
	users    *repoMocks.UserRepository
	notifier *svcMocks.SecurityNotifier
	svc      service.SecurityService
}

func newSecurityFixture() *securityFixture {
	f := &securityFixture{
		repo:     new(repoMocks.SecurityRepository),
		users:    new(repoMocks.UserRepository),
		notifier: new(svcMocks.SecurityNotifier),
	}
	f.svc = service.NewSecurityService(f.repo, f.users, f.notifier, 2*time.Hour, "Storefront")

	return f
}

func currentCode(t *testing.T, secret string) string {
	t.Helper()

	code, err := totp.GenerateCode(secret, time.Now())
	require.NoError(t, err)

	return code
}

func TestSecurityService_CSRF(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success - Issue", func(t *testing.T) {
		// Arrange
		f := newSecurityFixture()
		f.repo.On("SaveCSRFToken", ctx, userID, mock.AnythingOfType("string"), 2*time.Hour).Return(nil).Once()

		// Act
		resp, err := f.svc.IssueCSRFToken(ctx, userID)

		// Assert
		require.NoError(t, err)
		assert.Len(t, resp.CSRFToken, 64)
		assert.Equal(t, 7200, resp.ExpiresIn)
	})

	t.Run("Failure - Issue Store Down", func(t *testing.T) {
		// Arrange
		f := newSecurityFixture()
		f.repo.On("SaveCSRFToken", ctx, userID, mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()

		// Act
		_, err := f.svc.IssueCSRFToken(ctx, userID)

		// Assert
		assertAppError(t, err, appErrors.ErrCodeThirdPartyError, "")
	})

	tests := []struct {
		name     string
		stored   string
		given    string
		wantCode string
	}{
		{"Success - Match", "abc123", "abc123", ""},
		{"Failure - Mismatch", "abc123", "abc124", appErrors.ErrCodeCSRFInvalid},
		{"Failure - Missing From Request", "abc123", "", appErrors.ErrCodeCSRFInvalid},
		{"Failure - Expired", "", "abc123", appErrors.ErrCodeCSRFInvalid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			f := newSecurityFixture()
			f.repo.On("GetCSRFToken", ctx, userID).Return(tc.stored, nil).Once()

			// Act
			err := f.svc.ValidateCSRFToken(ctx, userID, tc.given)

			// Assert
			if tc.wantCode == "" {
				assert.NoError(t, err)
				return
			}

			assertAppError(t, err, tc.wantCode, i18n.KeySessionExpired)
		})
	}
}

func TestSecurityService_MFA(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Setup Is Pending Until Verified", func(t *testing.T) {
		// Arrange
		f := newSecurityFixture()
		user := &models.User{ID: uuid.New(), Email: "noor@example.com"}
		var secret string

		f.users.On("GetUserById", ctx, user.ID).Return(user, nil)
		f.users.On("UpdateMFA", ctx, user.ID, false, mock.AnythingOfType("string")).
			Run(func(args mock.Arguments) {
				secret = args.String(3)
				user.MFASecret = secret
			}).
			Return(nil).Once()

		// Act
		setup, err := f.svc.SetupMFA(ctx, user.ID)
		require.NoError(t, err)

		status, err := f.svc.MFAStatus(ctx, user.ID)
		require.NoError(t, err)

		// Assert
		assert.Equal(t, secret, setup.Secret)
		assert.Contains(t, setup.OTPAuthURL, "otpauth://totp/")
		assert.False(t, status.Enabled)
		assert.True(t, status.Pending)
	})

	t.Run("Success - Verify Enables And Notifies", func(t *testing.T) {
		// Arrange
		f := newSecurityFixture()
		secret, _, err := auth.NewTOTPSecret("Storefront", "noor@example.com")
		require.NoError(t, err)
		user := &models.User{ID: uuid.New(), Email: "noor@example.com", MFASecret: secret}

		f.users.On("GetUserById", ctx, user.ID).Return(user, nil).Once()
		f.users.On("UpdateMFA", ctx, user.ID, true, secret).Return(nil).Once()
		f.notifier.On("MFAChanged", ctx, user, true).Once()

		// Act
		err = f.svc.VerifyMFASetup(ctx, user.ID, currentCode(t, secret))

		// Assert
		require.NoError(t, err)
		f.users.AssertExpectations(t)
		f.notifier.AssertExpectations(t)
	})

	t.Run("Failure - Verify Without Setup", func(t *testing.T) {
		// Arrange
		f := newSecurityFixture()
		user := &models.User{ID: uuid.New()}
		f.users.On("GetUserById", ctx, user.ID).Return(user, nil).Once()

		// Act
		err := f.svc.VerifyMFASetup(ctx, user.ID, "123456")

		// Assert
		assertAppError(t, err, appErrors.ErrCodeBadRequest, i18n.KeyMFANotSetUp)
	})

	t.Run("Failure - Verify Wrong Code", func(t *testing.T) {
		// Arrange
		f := newSecurityFixture()
		secret, _, err := auth.NewTOTPSecret("Storefront", "noor@example.com")
		require.NoError(t, err)
		user := &models.User{ID: uuid.New(), MFASecret: secret}
		f.users.On("GetUserById", ctx, user.ID).Return(user, nil).Once()

		// Act
		err = f.svc.VerifyMFASetup(ctx, user.ID, "abcdef")

		// Assert
		assertAppError(t, err, appErrors.ErrCodeMFAInvalid, i18n.KeyMFAInvalid)
		f.users.AssertNotCalled(t, "UpdateMFA", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success - Disable Clears Secret", func(t *testing.T) {
		// Arrange
		f := newSecurityFixture()
		secret, _, err := auth.NewTOTPSecret("Storefront", "noor@example.com")
		require.NoError(t, err)
		user := &models.User{ID: uuid.New(), MFAEnabled: true, MFASecret: secret}

		f.users.On("GetUserById", ctx, user.ID).Return(user, nil).Once()
		f.users.On("UpdateMFA", ctx, user.ID, false, "").Return(nil).Once()
		f.notifier.On("MFAChanged", ctx, user, false).Once()

		// Act
		status, err := f.svc.ToggleMFA(ctx, user.ID, &models.MFAToggleRequest{Enabled: false, Code: currentCode(t, secret)})

		// Assert
		require.NoError(t, err)
		assert.False(t, status.Enabled)
		assert.False(t, status.Pending)
		f.notifier.AssertExpectations(t)
	})

	t.Run("Success - Toggle To Current State Is A No-op", func(t *testing.T) {
		// Arrange
		f := newSecurityFixture()
		user := &models.User{ID: uuid.New(), MFAEnabled: true, MFASecret: "JBSWY3DPEHPK3PXP"}
		f.users.On("GetUserById", ctx, user.ID).Return(user, nil).Once()

		// Act
		status, err := f.svc.ToggleMFA(ctx, user.ID, &models.MFAToggleRequest{Enabled: true, Code: "000000"})

		// Assert
		require.NoError(t, err)
		assert.True(t, status.Enabled)
		f.users.AssertNotCalled(t, "UpdateMFA", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Setup When Already Enabled", func(t *testing.T) {
		// Arrange
		f := newSecurityFixture()
		user := &models.User{ID: uuid.New(), MFAEnabled: true, MFASecret: "JBSWY3DPEHPK3PXP"}
		f.users.On("GetUserById", ctx, user.ID).Return(user, nil).Once()

		// Act
		_, err := f.svc.SetupMFA(ctx, user.ID)

		// Assert
		assertAppError(t, err, appErrors.ErrCodeBadRequest, i18n.KeyMFAEnabled)
	})
}
