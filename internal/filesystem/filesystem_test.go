package filesystem

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// recordingObserver captures observed operations for assertions.
type recordingObserver struct {
	mu         sync.Mutex
	operations []string
	errors     int
}

func (r *recordingObserver) ObserveOperation(operation string, _ float64, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.operations = append(r.operations, operation)
	if err != nil {
		r.errors++
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.jpg")

	if Exists(path) {
		t.Error("Exists returned true for missing file")
	}

	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if !Exists(path) {
		t.Error("Exists returned false for present file")
	}
}

func TestSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.jpg")
	if err := os.WriteFile(path, make([]byte, 1234), 0644); err != nil {
		t.Fatal(err)
	}

	size, err := Size(path)
	if err != nil {
		t.Fatalf("Size failed: %v", err)
	}
	if size != 1234 {
		t.Errorf("Size = %d, want 1234", size)
	}

	if _, err := Size(filepath.Join(dir, "missing.jpg")); err == nil {
		t.Error("Size succeeded for missing file")
	}
}

func TestLastModified(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.jpg")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	mtime, err := LastModified(path)
	if err != nil {
		t.Fatalf("LastModified failed: %v", err)
	}
	if time.Since(mtime) > time.Minute {
		t.Errorf("LastModified = %v, expected a recent timestamp", mtime)
	}
}

func TestDeleteRecursive(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "42")
	if err := os.MkdirAll(filepath.Join(target, "nested"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(target, "nested", "poster.jpg"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := DeleteRecursive(target); err != nil {
		t.Fatalf("DeleteRecursive failed: %v", err)
	}
	if Exists(target) {
		t.Error("target still exists after DeleteRecursive")
	}

	// Deleting an absent path is not an error
	if err := DeleteRecursive(target); err != nil {
		t.Errorf("DeleteRecursive of missing path failed: %v", err)
	}
}

func TestMoveFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "poster.jpg.tmp")
	dst := filepath.Join(dir, "42", "poster.jpg")
	if err := os.WriteFile(src, []byte("payload"), 0644); err != nil {
		t.Fatal(err)
	}

	// Destination directory does not exist yet
	if err := MoveFile(src, dst); err != nil {
		t.Fatalf("MoveFile failed: %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("moved file unreadable: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("moved content = %q, want payload", data)
	}
	if Exists(src) {
		t.Error("source still exists after move")
	}
}

func TestObserverReceivesOperations(t *testing.T) {
	obs := &recordingObserver{}
	SetObserver(obs)
	defer SetObserver(nil)

	dir := t.TempDir()
	Exists(filepath.Join(dir, "missing.jpg"))
	_ = EnsureDir(filepath.Join(dir, "sub"))

	obs.mu.Lock()
	defer obs.mu.Unlock()
	if len(obs.operations) < 2 {
		t.Fatalf("observer saw %d operations, want >= 2", len(obs.operations))
	}
	if obs.operations[0] != "stat" {
		t.Errorf("first operation = %q, want stat", obs.operations[0])
	}
	if obs.errors != 1 {
		t.Errorf("observer saw %d errors, want 1 (the missing stat)", obs.errors)
	}
}

func TestNilObserverIsSafe(t *testing.T) {
	SetObserver(nil)
	// Must not panic
	Exists(filepath.Join(t.TempDir(), "x"))
}
