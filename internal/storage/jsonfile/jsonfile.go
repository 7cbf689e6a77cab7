// Package jsonfile mirrors a record collection to a pretty-printed JSON
// array on local disk.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Beingstupid4me/tmto-backend/internal/domain/records"
)

type Mirror struct {
	path string
}

func New(path string) *Mirror {
	return &Mirror{path: path}
}

func (m *Mirror) Path() string {
	return m.path
}

// Load reads the whole collection. A missing file reports found=false; a
// file that exists but does not parse reports an error so the caller can
// decide to regenerate.
func (m *Mirror) Load() ([]records.Record, bool, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", m.path, err)
	}

	var recs []records.Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, false, fmt.Errorf("parse %s: %w", m.path, err)
	}
	return recs, true, nil
}

// Save overwrites the collection file. The write goes to a temp file in the
// same directory first and is moved into place with a rename, so readers
// never observe a half-written file.
func (m *Mirror) Save(recs []records.Record) error {
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", m.path, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(m.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(m.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, m.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", tmpName, err)
	}
	return nil
}
