package alias

import "errors"

var (
	// ErrNotFound is returned when a name is neither an alias nor a host entity.
	ErrNotFound = errors.New("name not found")

	// ErrInvalidAliasTarget is returned when a value alias targets a cell the
	// host refuses to share.
	ErrInvalidAliasTarget = errors.New("target cannot be aliased")

	// ErrAliasCycle is returned when following alias links never reaches a
	// canonical name.
	ErrAliasCycle = errors.New("alias cycle")

	// ErrShadowsCanonical is returned when an alias name is already a host
	// entity of the same kind.
	ErrShadowsCanonical = errors.New("alias shadows a host name")

	// ErrInvalidName is returned for empty or malformed identifiers.
	ErrInvalidName = errors.New("invalid identifier")
)

// ValidName reports whether s is usable as an alias or target identifier:
// non-empty and free of whitespace and parentheses.
func ValidName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f', '(', ')':
			return false
		}
	}
	return true
}

// RegistrationError ties a rejected table entry to the reason it was rejected.
type RegistrationError struct {
	Entry Entry
	Err   error
}

func (e *RegistrationError) Error() string {
	return e.Err.Error()
}

func (e *RegistrationError) Unwrap() error {
	return e.Err
}
