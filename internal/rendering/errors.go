// Package rendering composes the HTML document of a generated site.
package rendering

import "fmt"

// TemplateError is a failure executing one named template of the document
type TemplateError struct {
	Template string
	Section  string // empty for navigation and footer
	Cause    error
}

func (e *TemplateError) Error() string {
	where := e.Template
	if e.Section != "" {
		where = fmt.Sprintf("%s (section %s)", e.Template, e.Section)
	}
	if e.Cause != nil {
		return fmt.Sprintf("template %s failed: %v", where, e.Cause)
	}
	return fmt.Sprintf("template %s failed", where)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError is a failure outside template execution, such as a malformed
// structure or an unparsable document
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause == nil {
		return "render error: " + e.Message
	}
	return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// OutlineError reports a document whose sections or navigation links disagree with its structure
type OutlineError struct {
	Part string // "sections" or "navigation"
	Want []string
	Got  []string
}

func (e *OutlineError) Error() string {
	return fmt.Sprintf("document does not match structure %s: want %v, got %v", e.Part, e.Want, e.Got)
}
