package copywriting

import (
	"fmt"
	"strings"
)

// GenerationError represents a failure to produce the copy of one section
type GenerationError struct {
	SectionID string
	Message   string
	Cause     error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("copy generation error: section %s: %s: %v", e.SectionID, e.Message, e.Cause)
	}
	return fmt.Sprintf("copy generation error: section %s: %s", e.SectionID, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// CardinalityError reports content that does not cover exactly the sections of a structure
type CardinalityError struct {
	Expected int
	Got      int
	Missing  []string
	Extra    []string
}

func (e *CardinalityError) Error() string {
	msg := fmt.Sprintf("content cardinality error: expected %d entries, got %d", e.Expected, e.Got)
	if len(e.Missing) > 0 {
		msg += fmt.Sprintf("; missing %s", strings.Join(e.Missing, ", "))
	}
	if len(e.Extra) > 0 {
		msg += fmt.Sprintf("; unexpected %s", strings.Join(e.Extra, ", "))
	}
	return msg
}
