package pattern

import "fmt"

// ConfigurationError reports a malformed classification table.
// It is only ever returned by Compile.
type ConfigurationError struct {
	// Entry is the index of the offending entry in Table.Entries.
	Entry int
	// Category is the category name as written in the table.
	Category string
	// Field names the offending list ("names", "candidates", ...).
	Field string
	// Value is the offending pattern or value.
	Value string
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("pattern table entry #%d", e.Entry)
	if e.Category != "" {
		msg += fmt.Sprintf(" (%s)", e.Category)
	}

	if e.Field != "" {
		msg += " " + e.Field
	}

	if e.Value != "" {
		msg += fmt.Sprintf(" %q", e.Value)
	}

	return msg + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
