package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRepository(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{filepath.Join("..", "..")}, &out)

	assert.Equal(t, 0, code, out.String())
	assert.Contains(t, out.String(), "Validating template compliance in: ")
	assert.Contains(t, out.String(), "\nChecking required files...\n  ✓ go.mod\n")
	assert.Contains(t, out.String(), "VALIDATION RESULTS")
	assert.Contains(t, out.String(), "✓ All checks passed! Project follows template structure.")
}

func TestValidateBrokenProject(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/empty\n\ngo 1.24\n"), 0o644))

	var out bytes.Buffer
	code := run([]string{root}, &out)

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "❌ ERRORS (")
	assert.Contains(t, out.String(), "  • Missing required file: cmd/server/main.go\n")
	assert.Contains(t, out.String(), "⚠️  WARNINGS (")
	assert.Contains(t, out.String(), "✗ Validation failed. Fix errors above.")
}

func TestMissingPath(t *testing.T) {
	var out bytes.Buffer
	code := run([]string{filepath.Join(t.TempDir(), "nope")}, &out)

	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: Project path does not exist\n", out.String())
}

func TestTooManyArguments(t *testing.T) {
	var out bytes.Buffer
	assert.Equal(t, 2, run([]string{"a", "b"}, &out))
	assert.Contains(t, out.String(), "usage: validate [path]")
}
