// Package testutil provides shared helpers for package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"dispensa/internal/storage"
)

// NewGateway creates a bolt-backed gateway in a per-test temp directory.
// Cleanup is registered automatically.
func NewGateway(t *testing.T) storage.Gateway {
	t.Helper()

	gw, err := storage.NewBoltGateway(filepath.Join(t.TempDir(), "stock.bolt"))
	if err != nil {
		t.Fatalf("failed to create test gateway: %v", err)
	}
	t.Cleanup(func() {
		_ = gw.Close()
	})
	return gw
}
