package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/site-generator/internal/types"
	"github.com/jonathan/site-generator/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCommand_WritesSiteAndPage(t *testing.T) {
	dir := t.TempDir()
	sitePath := filepath.Join(dir, "out", "site.json")
	pagePath := filepath.Join(dir, "out", "index.html")

	stdout, stderr, err := executeCommand(t, "generate",
		"--name", "Luna Bistro",
		"--industry", "restaurant",
		"--description", "family-owned Italian restaurant",
		"--audience", "local families",
		"--out", sitePath,
		"--html", pagePath,
	)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Wrote site to "+sitePath)
	assert.Contains(t, stderr, "Generated 5 sections for Luna Bistro (score 100/100, valid)")

	site, err := validation.LoadSite(sitePath)
	require.NoError(t, err)
	ids := make([]string, 0, len(site.Structure.Sections))
	for _, section := range site.Structure.Sections {
		ids = append(ids, section.ID)
	}
	assert.Equal(t, []string{"hero", "menu", "about", "reservations", "contact"}, ids)

	page, err := os.ReadFile(pagePath)
	require.NoError(t, err)
	assert.Equal(t, site.Document, string(page))
	assert.Contains(t, string(page), "<title>Luna Bistro")
}

func TestGenerateCommand_StdoutWhenNoOutput(t *testing.T) {
	stdout, _, err := executeCommand(t, "generate", "--name", "Acme", "--industry", "consulting")
	require.NoError(t, err)

	var site types.GeneratedSite
	require.NoError(t, json.Unmarshal([]byte(stdout), &site))
	assert.Equal(t, "Acme", site.Structure.BusinessName)
	assert.Len(t, site.Content, len(site.Structure.Sections))
}

func TestGenerateCommand_Save(t *testing.T) {
	_, stderr, err := executeCommand(t, "generate",
		"--name", "Acme", "--industry", "consulting",
		"--save", "--project-id", "acme-1")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Saved site as acme-1 (memory store)")
}

func TestGenerateCommand_Verbose(t *testing.T) {
	_, stderr, err := executeCommand(t, "generate",
		"--name", "Acme", "--industry", "fitness",
		"--out", filepath.Join(t.TempDir(), "site.json"), "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "generate_structure")
	assert.Contains(t, stderr, "VALIDATION PASSED")
	assert.Contains(t, stderr, "DOCUMENT OUTLINE (5 sections)")
}

func TestGenerateCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "missing industry flag",
			args:    []string{"generate", "--name", "Acme"},
			wantErr: `required flag(s) "industry" not set`,
		},
		{
			name:    "blank name",
			args:    []string{"generate", "--name", "   ", "--industry", "restaurant"},
			wantErr: "malformed profile: name is required",
		},
		{
			name:    "unknown copy strategy",
			args:    []string{"generate", "--name", "Acme", "--industry", "restaurant", "--copy-strategy", "poetry"},
			wantErr: "copy_strategy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
