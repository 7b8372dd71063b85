package honoka

import (
	"errors"
	"fmt"
)

// Error types represent different categories of errors

// ValidationError represents malformed caller input: a bad explicit version,
// a missing key table, an unknown region name, or a header that is too short
// to inspect.
type ValidationError struct {
	Field   string // The parameter that failed validation
	Value   any    // The invalid value
	Message string // Human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// FormatError represents a header whose fixed validation bytes do not match
// the digest-derived values for the attempted region and version. During
// probing this means "try the next candidate", not a hard failure.
type FormatError struct {
	Version string // Version whose header check failed ("2", "3+")
	Message string
}

func (e *FormatError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("version %s header invalid: %s", e.Version, e.Message)
	}
	return fmt.Sprintf("version %s header invalid", e.Version)
}

// UnsupportedVersionError represents a header carrying a version marker
// beyond the four known generations. It is distinct from FormatError: the
// header validated against this region, but the file was produced by a
// later, presently-unknown protocol generation.
type UnsupportedVersionError struct {
	Marker byte // Value of header byte 7
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("decryption version %d not supported", e.Marker)
}

// NameSumError represents a strict version 3 decryption where the
// header-declared name sum disagrees with the one recomputed from the
// filename.
type NameSumError struct {
	Header   uint32 // Name sum declared by the file header
	Computed uint32 // Name sum recomputed from prefix and basename
}

func (e *NameSumError) Error() string {
	return fmt.Sprintf("version 3 key index name mismatch: header declares %d, computed %d", e.Header, e.Computed)
}

// Common sentinel errors
var (
	ErrNoSuitableMode     = errors.New("no suitable decryption mode found")
	ErrInsufficientHeader = errors.New("insufficient header data (need at least 16 bytes)")
	ErrVersionOutOfRange  = errors.New("version out of range")
	ErrKeyTableMissing    = errors.New("version 3 requires a key table")
	ErrUnknownRegion      = errors.New("unknown region name")
)

// Error checking helpers

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) ||
		errors.Is(err, ErrInsufficientHeader) ||
		errors.Is(err, ErrVersionOutOfRange) ||
		errors.Is(err, ErrKeyTableMissing) ||
		errors.Is(err, ErrUnknownRegion)
}

// IsFormatError checks if an error is a header format mismatch
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// IsUnsupportedVersion checks if an error reports an unknown future version
func IsUnsupportedVersion(err error) bool {
	var ue *UnsupportedVersionError
	return errors.As(err, &ue)
}

// IsNameSumMismatch checks if an error is a version 3 name-sum mismatch
func IsNameSumMismatch(err error) bool {
	var ne *NameSumError
	return errors.As(err, &ne)
}

// IsNoSuitableMode checks if probing exhausted every region and version
func IsNoSuitableMode(err error) bool {
	return errors.Is(err, ErrNoSuitableMode)
}

// retriable reports whether a construction failure should make probing move
// on to the next candidate rather than surface immediately. Malformed caller
// input is never retriable.
func retriable(err error) bool {
	return IsFormatError(err) || IsUnsupportedVersion(err) || IsNameSumMismatch(err)
}
