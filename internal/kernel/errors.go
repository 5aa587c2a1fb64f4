package kernel

import "fmt"

// LoadError indicates the kernel document was unreadable or malformed.
// It is fatal to startup and surfaced immediately to the caller.
type LoadError struct {
	// Path is the kernel source location, if known
	Path string

	// Err is the underlying cause
	Err error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("cannot load kernel %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("cannot load kernel: %v", e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// ConstitutionalViolation indicates a domain spec is missing a required
// field. It names the first missing field found; validation short-circuits
// rather than accumulating violations.
type ConstitutionalViolation struct {
	// Field is the dotted path of the missing field, e.g. "constraints.hardware"
	Field string
}

// Error implements the error interface.
func (e *ConstitutionalViolation) Error() string {
	return fmt.Sprintf("constitutional violation: missing required field %q", e.Field)
}

// UnknownHardwareError indicates a hardware value outside the known profile
// set. Unknown hardware is rejected at the boundary instead of silently
// degrading to the conservative default architecture.
type UnknownHardwareError struct {
	// Value is the rejected hardware value
	Value string
}

// Error implements the error interface.
func (e *UnknownHardwareError) Error() string {
	return fmt.Sprintf("unknown hardware profile %q (known: raspberry_pi, desktop, dedicated, cloud)", e.Value)
}

// InvalidValueError indicates a field carries a value outside its allowed
// set (other than hardware, which gets UnknownHardwareError).
type InvalidValueError struct {
	// Field is the dotted path of the field
	Field string

	// Value is the rejected value
	Value string
}

// Error implements the error interface.
func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for field %q", e.Value, e.Field)
}
