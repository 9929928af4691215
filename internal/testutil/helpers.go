package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/snonux/ipatrans/internal/registry"
)

// TestRegistry returns a small registry covering both language families:
// "en_US" (word-based) and "yue" (character-based).
func TestRegistry() *registry.Registry {
	return registry.New([]registry.Language{
		{Code: "en_US", Name: "English (US)", Source: "en_US.json", Family: registry.FamilyWord},
		{Code: "yue", Name: "Cantonese", Source: "yue.json", Family: registry.FamilyCharacter},
	})
}

// WriteDictFile writes a JSON dictionary file for a language into dir.
func WriteDictFile(t *testing.T, dir, filename string, entries map[string]string) string {
	t.Helper()

	content, err := json.Marshal(entries)
	if err != nil {
		t.Fatalf("Failed to marshal dictionary: %v", err)
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to write dictionary file %s: %v", path, err)
	}

	return path
}

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}
