package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestSeedWritesCatalogFiles(t *testing.T) {
	dir := t.TempDir()
	dataDir = dir
	seedRandomSeed = 42
	t.Cleanup(func() {
		dataDir = ""
		seedRandomSeed = 0
	})

	if err := runSeed(seedCmd); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var technologies []map[string]any
	data, err := os.ReadFile(filepath.Join(dir, "technologies.json"))
	if err != nil {
		t.Fatalf("read technologies: %v", err)
	}
	if err := json.Unmarshal(data, &technologies); err != nil {
		t.Fatalf("parse technologies: %v", err)
	}
	if len(technologies) != 1000 {
		t.Errorf("expected 1000 technologies, got %d", len(technologies))
	}

	var events []map[string]any
	data, err = os.ReadFile(filepath.Join(dir, "events.json"))
	if err != nil {
		t.Fatalf("read events: %v", err)
	}
	if err := json.Unmarshal(data, &events); err != nil {
		t.Fatalf("parse events: %v", err)
	}
	if len(events) != 10 {
		t.Errorf("expected 10 events, got %d", len(events))
	}
}
