package utils

import (
	"strings"
	"unicode"
)

const passwordSymbols = `!@#$%^&*(),.?":{}|<>`

// ValidatePassword checks the registration password policy. It returns an
// empty string when the password is acceptable, otherwise the first unmet
// rule as a human-readable message.
func ValidatePassword(password string) string {
	if len(password) < 8 {
		return "Password must be at least 8 characters long."
	}
	if len(password) > 20 {
		return "Password must be at most 20 characters long."
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}

	if !hasUpper {
		return "Password must contain at least one uppercase letter."
	}
	if !hasLower {
		return "Password must contain at least one lowercase letter."
	}
	if !hasDigit {
		return "Password must contain at least one number."
	}
	if !hasSymbol {
		return "Password must contain at least one special character."
	}

	return ""
}
