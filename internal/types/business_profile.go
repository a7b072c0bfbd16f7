// Package types provides type definitions for structured data used throughout the site generator.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// BusinessProfile is the caller-owned input to a generation run
type BusinessProfile struct {
	Name              string   `json:"name" validate:"required,notblank"`
	Industry          string   `json:"industry" validate:"required,notblank"`
	Description       string   `json:"description,omitempty"`
	TargetAudience    string   `json:"target_audience,omitempty"`
	RequestedFeatures []string `json:"requested_features,omitempty"`
}

// Validate validates the BusinessProfile using the validator.
// The returned error is a validator.ValidationErrors when a field fails.
func (p *BusinessProfile) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return err
	}
	return validate.Struct(p)
}
