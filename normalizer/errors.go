package normalizer

import "fmt"

// MalformedInputError reports raw structure lacking required fields
type MalformedInputError struct {
	Field  string // Path of offending field, i.e. entities[2].name
	Reason string
}

func (e *MalformedInputError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("malformed diagram: %s", e.Reason)
	}
	return fmt.Sprintf("malformed diagram: %s: %s", e.Field, e.Reason)
}

func malformed(field, format string, args ...interface{}) error {
	return &MalformedInputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
