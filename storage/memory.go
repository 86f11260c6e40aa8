package storage

import (
	"context"
	"sync"
)

// Memory is an in-process [Store]. It is safe for concurrent use.
type Memory struct {
	mu  sync.Mutex
	rec Record
	set bool
}

// NewMemory creates an empty in-process store.
func NewMemory() *Memory {
	return &Memory{}
}

// Load describes the load operation and its observable behavior.
//
// Load may return an error when input validation, dependency calls, or backend I/O fail.
func (m *Memory) Load(_ context.Context) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.set {
		return Record{}, nil
	}
	return cloneRecord(m.rec), nil
}

// Save describes the save operation and its observable behavior.
//
// Save may return an error when input validation, dependency calls, or backend I/O fail.
func (m *Memory) Save(_ context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rec = cloneRecord(rec)
	m.set = true
	return nil
}

// Clear describes the clear operation and its observable behavior.
//
// Clear may return an error when input validation, dependency calls, or backend I/O fail.
func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rec = Record{}
	m.set = false
	return nil
}

func cloneRecord(rec Record) Record {
	out := Record{Credential: rec.Credential}
	if rec.Profile != nil {
		out.Profile = append([]byte(nil), rec.Profile...)
	}
	return out
}
