package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the databonnd_site binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "databonnd_site"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/databonnd_site ./cmd/databonnd_site'", binaryPath)
	}

	return binaryPath
}
