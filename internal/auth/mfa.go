package auth

import (
	"regexp"

	"github.com/pquerna/otp/totp"
)

var mfaCodePattern = regexp.MustCompile(`^\d{6}$`)

// ValidCodeFormat reports whether code looks like a TOTP code.
func ValidCodeFormat(code string) bool {
	return mfaCodePattern.MatchString(code)
}

// NewTOTPSecret creates a secret for account and returns it with the
// otpauth:// URL authenticator apps scan.
func NewTOTPSecret(issuer, account string) (secret, url string, err error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: account,
	})
	if err != nil {
		return "", "", err
	}

	return key.Secret(), key.URL(), nil
}

// VerifyTOTP checks code against secret for the current time step.
func VerifyTOTP(code, secret string) bool {
	if secret == "" || !ValidCodeFormat(code) {
		return false
	}

	return totp.Validate(code, secret)
}
