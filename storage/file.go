package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File persists the session record as a single JSON document. Writes go
// through a temp file and rename so a crash mid-write never leaves a
// half-written record. The file is created with 0600: the credential is a
// bearer secret.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile creates a file-backed [Store] at path. The parent directory must
// exist; the file itself is created on first Save.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("file store requires a path")
	}
	return &File{path: path}, nil
}

// Load describes the load operation and its observable behavior.
//
// Load may return an error when input validation, dependency calls, or backend I/O fail.
func (f *File) Load(_ context.Context) (Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return Record{}, nil
	}
	if err != nil {
		return Record{}, fmt.Errorf("read session file: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		// A corrupt session file is treated as absent, not fatal; the
		// session store will hydrate to Anonymous.
		return Record{}, nil
	}
	return rec, nil
}

// Save describes the save operation and its observable behavior.
//
// Save may return an error when input validation, dependency calls, or backend I/O fail.
func (f *File) Save(_ context.Context, rec Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".session-*")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("chmod session file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close session file: %w", err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

// Clear describes the clear operation and its observable behavior.
//
// Clear may return an error when input validation, dependency calls, or backend I/O fail.
func (f *File) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
