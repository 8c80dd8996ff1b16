// Package sanitizer normalizes user-entered values before validation and
// provider calls.
package sanitizer

import "strings"

// Sanitizer transforms a string value.
type Sanitizer func(string) string

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// Lowercase converts the value to lower case.
func Lowercase(s string) string {
	return strings.ToLower(s)
}

// Compose chains sanitizers left to right.
func Compose(fns ...Sanitizer) Sanitizer {
	return func(s string) string {
		for _, fn := range fns {
			s = fn(s)
		}
		return s
	}
}

// NormalizeEmail trims and lowercases an email address. Every submit path
// applies this before validation so the provider never sees case or
// whitespace variants of the same address.
var NormalizeEmail = Compose(Trim, Lowercase)
