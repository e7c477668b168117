// Package normalize provides canonical forms for user-supplied identity
// fields. Emails, roles, and statuses compare case-insensitively across
// the system, so every write path normalizes through these helpers.
package normalize

import "strings"

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims a display name, preserving case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Role lowercases and trims a role value.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Status lowercases and trims a status value.
func Status(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// BloodGroup uppercases and trims a blood group ("a+" -> "A+").
func BloodGroup(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
