package testutil

import (
	"path/filepath"
	"testing"
)

// WriteHCL writes a single HCL file named name into a temporary directory and
// returns its full path.
func WriteHCL(t *testing.T, name, content string) string {
	t.Helper()
	root := WriteFiles(t, map[string]string{name: content})
	return filepath.Join(root, filepath.FromSlash(name))
}
