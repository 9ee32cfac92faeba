package registry

import "fmt"

// Load error codes.
const (
	ErrCodeParse          = "PARSE_FAILED"
	ErrCodeMissingName    = "MISSING_NAME"
	ErrCodeDuplicate      = "DUPLICATE_TYPE"
	ErrCodeNameNorm       = "NAME_NOT_NFC"
	ErrCodeShadowsBuiltin = "SHADOWS_BUILTIN"
	ErrCodeUnknownKind    = "UNKNOWN_KIND"
	ErrCodeUnknownRef     = "UNKNOWN_REFERENCE"
	ErrCodeBadGUID        = "BAD_GUID"
	ErrCodeCycle          = "CYCLE_DETECTED"
	ErrCodeBadEntry       = "BAD_ENTRY"
)

// LoadError reports a problem in a type table.
type LoadError struct {
	// Code identifies the error category.
	Code string

	// Name is the type entry the error refers to, if any.
	Name string

	// Message is a human-readable description.
	Message string
}

func (e *LoadError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Name, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
