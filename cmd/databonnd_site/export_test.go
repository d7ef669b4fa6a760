package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCommand_InProcess(t *testing.T) {
	dir := t.TempDir()

	rootCmd.SetArgs([]string{"export", "--out", dir, "--mode", "mobile", "--seed", "3"})
	require.NoError(t, rootCmd.Execute())

	assert.FileExists(t, filepath.Join(dir, "index.html"))
	assert.FileExists(t, filepath.Join(dir, "our-companies", "index.html"))

	page, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), `data-mode="mobile"`)
}

func TestExportCommand_InvalidMode(t *testing.T) {
	rootCmd.SetArgs([]string{"export", "--out", t.TempDir(), "--mode", "tablet"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown viewport mode")
}

func TestExportCommand_MissingOutFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "export")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required flag(s) \"out\" not set")
}
