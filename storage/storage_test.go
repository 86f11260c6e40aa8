package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func testBackends(t *testing.T) map[string]Store {
	t.Helper()

	file, err := NewFile(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}

	return map[string]Store{
		"memory": NewMemory(),
		"file":   file,
	}
}

func TestLoadBeforeSaveReturnsEmpty(t *testing.T) {
	for name, store := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			rec, err := store.Load(context.Background())
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if !rec.Empty() {
				t.Fatalf("expected empty record, got %+v", rec)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	want := Record{
		Credential: "header.payload.sig",
		Profile:    []byte(`{"subjectId":"u1","city":"Mumbai"}`),
	}

	for name, store := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			if err := store.Save(ctx, want); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			got, err := store.Load(ctx)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if got.Credential != want.Credential {
				t.Fatalf("credential mismatch: got %q", got.Credential)
			}
			if string(got.Profile) != string(want.Profile) {
				t.Fatalf("profile mismatch: got %s", got.Profile)
			}
		})
	}
}

func TestClearIsIdempotent(t *testing.T) {
	for name, store := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			if err := store.Save(ctx, Record{Credential: "tok"}); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			if err := store.Clear(ctx); err != nil {
				t.Fatalf("Clear failed: %v", err)
			}
			if err := store.Clear(ctx); err != nil {
				t.Fatalf("second Clear failed: %v", err)
			}

			rec, err := store.Load(ctx)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if !rec.Empty() {
				t.Fatalf("expected empty record after clear, got %+v", rec)
			}
		})
	}
}

func TestFileCorruptRecordTreatedAsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	store, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}

	rec, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !rec.Empty() {
		t.Fatalf("expected corrupt file to read as empty, got %+v", rec)
	}
}

func TestMemoryReturnsCopies(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	if err := store.Save(ctx, Record{Credential: "tok", Profile: []byte(`{"a":1}`)}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	first, _ := store.Load(ctx)
	first.Profile[0] = 'X'

	second, _ := store.Load(ctx)
	if string(second.Profile) != `{"a":1}` {
		t.Fatal("expected Load to return an isolated copy of the profile bytes")
	}
}
