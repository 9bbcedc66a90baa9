// Package iotesting provides shared test utilities for tests that touch
// the file system.
package iotesting

import (
	"os"
	"path/filepath"
	"testing"
)

// Names of files inside NCBI new_taxdump.
const (
	LineageFile = "rankedlineage.dmp"
	MergedFile  = "merged.dmp"
)

// SetupTempHome creates a temporary home directory and points HOME to
// it, so config, cache and log files of a test never reach the real
// ~/.config/mibigtaxa or ~/.cache/mibigtaxa. Logs go to a file there
// unless MIBIGTAXA_LOG_DESTINATION is set by the test later.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    home := iotesting.SetupTempHome(t)
//	    // run commands that call os.UserHomeDir()
//	}
func SetupTempHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("MIBIGTAXA_LOG_DESTINATION", "file")
	t.Setenv("MIBIGTAXA_CACHE_FILE", "")
	return home
}

// WriteTaxdump creates a directory that looks like unpacked
// new_taxdump.tar.gz with the given content of rankedlineage.dmp and
// merged.dmp. It returns the path to the directory.
func WriteTaxdump(t *testing.T, lineage, merged string) string {
	t.Helper()

	return WriteFiles(t, map[string]string{
		LineageFile: lineage,
		MergedFile:  merged,
	})
}

// WriteFiles creates files in a temporary directory. Keys are paths
// relative to the directory, parents are created as needed.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create dir for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	return dir
}
