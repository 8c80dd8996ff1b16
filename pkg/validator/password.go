package validator

import "regexp"

var (
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)
	symbolRegex    = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// PasswordMinLength is the minimum accepted password length.
const PasswordMinLength = 8

// PasswordChecks holds the named policy checks for a password value.
// It is derived from the raw password on every call and never cached.
type PasswordChecks struct {
	MinLength bool
	Lowercase bool
	Uppercase bool
	Digit     bool
	Symbol    bool
}

// CheckPassword evaluates all policy checks against the given password.
func CheckPassword(password string) PasswordChecks {
	return PasswordChecks{
		MinLength: len(password) >= PasswordMinLength,
		Lowercase: lowercaseRegex.MatchString(password),
		Uppercase: uppercaseRegex.MatchString(password),
		Digit:     digitRegex.MatchString(password),
		Symbol:    symbolRegex.MatchString(password),
	}
}

// Valid reports whether every check passed.
func (c PasswordChecks) Valid() bool {
	return c.MinLength && c.Lowercase && c.Uppercase && c.Digit && c.Symbol
}

// StrongPassword validates that a password satisfies the full policy:
// minimum length plus lowercase, uppercase, digit, and symbol characters.
func StrongPassword(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return CheckPassword(value).Valid()
		},
		Error: ValidationError{
			Field:   field,
			Message: "password must be at least 8 characters with lowercase, uppercase, number, and symbol",
		},
	}
}
