package validation

import (
	"encoding/json"
	"os"

	"github.com/jonathan/site-generator/internal/schemas"
	"github.com/jonathan/site-generator/internal/types"
)

// DecodeSite checks data against the GeneratedSite schema and decodes it
func DecodeSite(data []byte) (*types.GeneratedSite, error) {
	if err := schemas.ValidateGeneratedSite(data); err != nil {
		return nil, &DecodeError{Message: "site does not match schema", Cause: err}
	}

	var site types.GeneratedSite
	if err := json.Unmarshal(data, &site); err != nil {
		return nil, &DecodeError{Message: "failed to decode site", Cause: err}
	}
	return &site, nil
}

// LoadSite reads a serialized GeneratedSite from path
func LoadSite(path string) (*types.GeneratedSite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileReadError{Path: path, Cause: err}
	}
	return DecodeSite(data)
}
