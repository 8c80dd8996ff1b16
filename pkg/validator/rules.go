package validator

import (
	"fmt"
	"strings"
)

// Required validates that a string is non-empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s is required", field),
		},
	}
}

// ValidEmail validates that a string has a plausible local@domain.tld shape.
// This is a form-level pre-check only; the identity provider performs the
// authoritative validation.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			value = strings.TrimSpace(value)
			if value == "" {
				return false
			}

			local, domain, ok := strings.Cut(value, "@")
			if !ok || local == "" || domain == "" {
				return false
			}
			if strings.Contains(domain, "@") {
				return false
			}
			if strings.ContainsAny(value, " \t\r\n") {
				return false
			}

			// Domain must contain at least one dot and cannot start/end with one
			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}

			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}

// EqualStrings validates that two string values match, e.g. password
// confirmation fields.
func EqualStrings(field, value, other string) Rule {
	return Rule{
		Check: func() bool {
			return value == other
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s does not match", field),
		},
	}
}
