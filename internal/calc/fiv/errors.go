package fiv

import "fmt"

// DomainError reports an input that makes one of the formulas undefined,
// e.g. a wall thickness that leaves no inner diameter.
type DomainError struct {
	Field  string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ConfigurationError reports a tube array pattern missing from the
// Strouhal table. There is no runtime default for an unknown pattern.
type ConfigurationError struct {
	Pattern string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unknown tube array pattern %q", e.Pattern)
}
