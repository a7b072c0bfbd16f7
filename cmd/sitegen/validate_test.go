package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateSiteFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.json")
	_, _, err := executeCommand(t, "generate", "--name", "Luna Bistro", "--industry", "restaurant", "--out", path)
	require.NoError(t, err)
	return path
}

func TestValidateCommand_Success(t *testing.T) {
	path := generateSiteFile(t)

	stdout, _, err := executeCommand(t, "validate", "--in", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "VALIDATION PASSED")
	assert.Contains(t, stdout, "DOCUMENT OUTLINE (5 sections)")
	assert.Contains(t, stdout, "1. #hero Welcome to Luna Bistro")
}

func TestValidateCommand_InvalidSite(t *testing.T) {
	path := generateSiteFile(t)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	raw["stylesheet"] = ""
	data, err = json.Marshal(raw)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	stdout, _, err := executeCommand(t, "validate", "--in", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 validation issues (score 85)")
	assert.Contains(t, stdout, "VALIDATION FAILED (1 issues)")
}

func TestValidateCommand_DocumentDisagreesWithStructure(t *testing.T) {
	path := generateSiteFile(t)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	raw["document"] = "<!DOCTYPE html><html><body><p>" + strings.Repeat("Coming soon. ", 20) + "</p></body></html>"
	data, err = json.Marshal(raw)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	stdout, _, err := executeCommand(t, "validate", "--in", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document does not match structure sections")
	assert.Contains(t, stdout, "VALIDATION PASSED")
	assert.Contains(t, stdout, "(no sections)")
}

func TestValidateCommand_SchemaMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"document": 42}`), 0o644))

	_, _, err := executeCommand(t, "validate", "--in", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match schema")
}

func TestValidateCommand_MissingFile(t *testing.T) {
	_, _, err := executeCommand(t, "validate", "--in", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestValidateCommand_MissingInFlag(t *testing.T) {
	_, _, err := executeCommand(t, "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}
