// Package validation scores generated sites and loads stored site artifacts.
package validation

import "fmt"

// DecodeError is returned when serialized site data does not match the GeneratedSite shape
type DecodeError struct {
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause == nil {
		return "site decode error: " + e.Message
	}
	return fmt.Sprintf("site decode error: %s: %v", e.Message, e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// FileReadError is returned when a site file cannot be read
type FileReadError struct {
	Path  string
	Cause error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read site file %s: %v", e.Path, e.Cause)
}

func (e *FileReadError) Unwrap() error {
	return e.Cause
}
