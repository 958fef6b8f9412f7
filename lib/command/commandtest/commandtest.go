// Package commandtest holds file system fixtures for command tests.
package commandtest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func SetupTestEnvironment(t *testing.T) (string, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	return t.TempDir(), new(bytes.Buffer), new(bytes.Buffer)
}

func WriteFile(t *testing.T, path, name, content string) {
	t.Helper()

	dir := filepath.Join(path, filepath.Dir(name))
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory: %s", err)
	}
	if err := os.WriteFile(filepath.Join(path, name), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write to file: %s", err)
	}
}

func ReadFile(t *testing.T, path, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(path, name))
	if err != nil {
		t.Fatalf("Failed to read file: %s", err)
	}
	return string(data)
}

func Exists(path, name string) bool {
	_, err := os.Stat(filepath.Join(path, name))
	return err == nil
}

func Delete(t *testing.T, path, name string) {
	t.Helper()

	if err := os.RemoveAll(filepath.Join(path, name)); err != nil {
		t.Fatalf("Failed to delete: %s", err)
	}
}

func MakeUnreadable(t *testing.T, path, name string) {
	t.Helper()

	if err := os.Chmod(filepath.Join(path, name), 0200); err != nil {
		t.Fatalf("Failed to make file unreadable: %s", err)
	}
}
