package common

import "fmt"

// ValidationError marks a request the caller must correct and resubmit.
// Nothing is persisted before a ValidationError is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConfigurationError reports missing or unusable operator-provided
// configuration, e.g. an absent service-account credential file. It is
// fatal for the request and requires operator action to resolve.
type ConfigurationError struct {
	Message string
	Cause   error
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

func NewConfigurationError(message string, cause error) *ConfigurationError {
	return &ConfigurationError{Message: message, Cause: cause}
}

// UpstreamFailure wraps an error returned by the external tabular sink.
// The append is not retried; the underlying message is surfaced to the
// caller.
type UpstreamFailure struct {
	Cause error
}

func (e *UpstreamFailure) Error() string {
	return fmt.Sprintf("sheet append failed: %v", e.Cause)
}

func (e *UpstreamFailure) Unwrap() error {
	return e.Cause
}

func NewUpstreamFailure(cause error) *UpstreamFailure {
	return &UpstreamFailure{Cause: cause}
}
