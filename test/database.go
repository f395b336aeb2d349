package test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// TmpFile returns the path for a fresh sqlite database file. Every test gets
// its own database so that threshold trackers and usage sums never leak
// between tests, and the file is cleaned up with the test's temporary
// directory.
func TmpFile(t *testing.T) string {
	dir := t.TempDir()
	return filepath.Join(dir, uuid.New().String()+".db")
}
