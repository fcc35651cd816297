package auth

import (
	"errors"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLength = 8

var (
	ErrPasswordWeak     = errors.New("auth: password does not meet the policy")
	ErrPasswordMismatch = errors.New("auth: confirmation does not match")
	ErrPasswordReused   = errors.New("auth: new password equals the current one")
)

// CheckPasswordPolicy requires at least MinPasswordLength characters with an
// upper case letter, a lower case letter, a digit and a symbol.
func CheckPasswordPolicy(password string) error {
	if len([]rune(password)) < MinPasswordLength {
		return ErrPasswordWeak
	}

	var upper, lower, digit, symbol bool

	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}

	if !upper || !lower || !digit || !symbol {
		return ErrPasswordWeak
	}

	return nil
}

// ValidatePasswordChange checks a new password against the policy, its
// confirmation and the current password.
func ValidatePasswordChange(current, next, confirm string) error {
	if next != confirm {
		return ErrPasswordMismatch
	}

	if err := CheckPasswordPolicy(next); err != nil {
		return err
	}

	if next == current {
		return ErrPasswordReused
	}

	return nil
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
