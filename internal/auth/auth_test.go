package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/apparel-storefront/internal/auth"
	"github.com/aaravmahajanofficial/apparel-storefront/internal/models"
	"github.com/google/uuid"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		cookies []*http.Cookie
		want    string
		wantErr error
	}{
		{name: "Bearer header", header: "Bearer abc", want: "abc"},
		{name: "Header wins over cookie", header: "Bearer abc", cookies: []*http.Cookie{{Name: "token", Value: "cookie"}}, want: "abc"},
		{name: "Token cookie", cookies: []*http.Cookie{{Name: "token", Value: "plain"}}, want: "plain"},
		{name: "Token cookie before host cookie", cookies: []*http.Cookie{{Name: "__Host-token", Value: "host"}, {Name: "token", Value: "plain"}}, want: "plain"},
		{name: "Host cookie", cookies: []*http.Cookie{{Name: "__Host-token", Value: "host"}}, want: "host"},
		{name: "Malformed header", header: "Token abc", wantErr: auth.ErrMalformedHeader},
		{name: "Nothing", wantErr: auth.ErrNoToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			for _, c := range tt.cookies {
				req.AddCookie(c)
			}

			got, err := auth.TokenFromRequest(req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSignAndParseToken(t *testing.T) {
	key := []byte("test-secret")
	claims := &models.Claims{UserID: uuid.New(), Email: "a@b.com", Role: models.RoleAdmin, SessionVersion: 3}

	signed, err := auth.SignToken(claims, key, time.Hour)
	require.NoError(t, err)

	parsed, err := auth.ParseToken(signed, key)
	require.NoError(t, err)
	assert.Equal(t, claims.UserID, parsed.UserID)
	assert.Equal(t, models.RoleAdmin, parsed.Role)
	assert.Equal(t, int64(3), parsed.SessionVersion)

	_, err = auth.ParseToken(signed, []byte("other"))
	assert.Error(t, err)

	expired, err := auth.SignToken(&models.Claims{UserID: uuid.New()}, key, -time.Minute)
	require.NoError(t, err)
	_, err = auth.ParseToken(expired, key)
	assert.Error(t, err)
}

func TestPasswordPolicy(t *testing.T) {
	tests := []struct {
		name    string
		current string
		next    string
		confirm string
		wantErr error
	}{
		{"Valid", "Old#Pass1", "N3w!Password", "N3w!Password", nil},
		{"Too short", "Old#Pass1", "Aa1!", "Aa1!", auth.ErrPasswordWeak},
		{"No symbol", "Old#Pass1", "Password123", "Password123", auth.ErrPasswordWeak},
		{"No upper", "Old#Pass1", "password1!", "password1!", auth.ErrPasswordWeak},
		{"Mismatch", "Old#Pass1", "N3w!Password", "N3w!Passwore", auth.ErrPasswordMismatch},
		{"Reused", "Same#Pass1", "Same#Pass1", "Same#Pass1", auth.ErrPasswordReused},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := auth.ValidatePasswordChange(tt.current, tt.next, tt.confirm)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := auth.HashPassword("S3cret!pass")
	require.NoError(t, err)

	assert.True(t, auth.CheckPassword(hash, "S3cret!pass"))
	assert.False(t, auth.CheckPassword(hash, "wrong"))
}

func TestTOTP(t *testing.T) {
	secret, url, err := auth.NewTOTPSecret("Storefront", "shopper@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, secret)
	assert.Contains(t, url, "otpauth://totp/")

	code, err := totp.GenerateCode(secret, time.Now())
	require.NoError(t, err)

	assert.True(t, auth.VerifyTOTP(code, secret))
	assert.False(t, auth.VerifyTOTP("12345", secret))
	assert.False(t, auth.VerifyTOTP(code, ""))
	assert.True(t, auth.ValidCodeFormat("012345"))
	assert.False(t, auth.ValidCodeFormat("01234a"))
}
