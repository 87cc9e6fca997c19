package model

import "fmt"

// ConfigurationError reports invalid generation input: a bad chromatic
// cardinality, size bounds, or a malformed policy/grammar. It is always
// returned before any enumeration starts.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %v: %v", e.Field, e.Reason)
}
