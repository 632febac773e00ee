package config

import (
	"crypto/subtle"
	"regexp"
	"strings"
)

// Passcode validation - 4-8 decimal digits only
var passcodeRegex = regexp.MustCompile(`^\d{4,8}$`)

// ValidatePasscode reports whether code is an acceptable passcode.
func ValidatePasscode(code string) bool {
	return passcodeRegex.MatchString(code)
}

// SanitizePasscode trims and validates a passcode. Empty is allowed and
// means "no change" in the settings flow.
func SanitizePasscode(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", nil
	}

	if !passcodeRegex.MatchString(code) {
		return "", NewValidationError("passcode", "Passcode must be 4-8 digits")
	}

	return code, nil
}

// ChangeRequest carries the three passcode fields of the settings dialog.
type ChangeRequest struct {
	Current string
	Next    string
	Confirm string
}

// Empty reports whether no passcode change was requested.
func (r ChangeRequest) Empty() bool {
	return r.Current == "" && r.Next == "" && r.Confirm == ""
}

// ApplyPasscodeChange validates a passcode change against cfg and returns
// the updated config. On any validation failure the returned config is cfg
// unchanged and the error carries the user-facing message. An empty request
// is a no-op so wallpaper-only edits can still be saved.
func ApplyPasscodeChange(cfg Config, r ChangeRequest) (Config, error) {
	if r.Empty() {
		return cfg, nil
	}

	if subtle.ConstantTimeCompare([]byte(r.Current), []byte(cfg.Passcode)) != 1 {
		return cfg, NewValidationError("current", "Current passcode incorrect.")
	}
	if r.Next != r.Confirm {
		return cfg, NewValidationError("new", "New passcode mismatch.")
	}
	if !ValidatePasscode(r.Next) {
		return cfg, NewValidationError("new", "Passcode must be 4-8 digits.")
	}

	cfg.Passcode = r.Next
	cfg.KeypadLength = len(r.Next)
	return cfg, nil
}

// ValidationError represents a validation error with user-friendly message
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
