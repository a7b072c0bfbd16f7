package pipeline

import "fmt"

// MalformedProfileError reports a required profile field that is missing or blank
type MalformedProfileError struct {
	Field string
	Cause error
}

func (e *MalformedProfileError) Error() string {
	return fmt.Sprintf("malformed profile: %s is required", e.Field)
}

func (e *MalformedProfileError) Unwrap() error {
	return e.Cause
}

// StageError identifies the pipeline stage that failed a run
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
