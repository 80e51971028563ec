package media

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	s, err := NewLocalStore(t.TempDir(), "/media/documents", zap.NewNop())
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	return s
}

func TestUploadAndDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	stored, err := s.Upload(ctx, "proposal.PDF", strings.NewReader("content"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if stored.Name != "proposal.PDF" {
		t.Errorf("Name = %q", stored.Name)
	}
	if stored.Format != "pdf" {
		t.Errorf("Format = %q, want lowercased extension", stored.Format)
	}
	if !strings.HasPrefix(stored.URL, "/media/documents/") {
		t.Errorf("URL = %q", stored.URL)
	}

	// File should exist under the root with the uuid name.
	onDisk := filepath.Join(s.Root(), filepath.Base(stored.URL))
	if b, err := os.ReadFile(onDisk); err != nil || string(b) != "content" {
		t.Fatalf("stored file: %v %q", err, b)
	}

	if err := s.Delete(ctx, stored.URL); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(onDisk); !os.IsNotExist(err) {
		t.Error("file still present after Delete")
	}

	// Deleting again is a no-op, not an error.
	if err := s.Delete(ctx, stored.URL); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestUploadNamesAreUnique(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a, err := s.Upload(ctx, "report.pdf", strings.NewReader("a"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Upload(ctx, "report.pdf", strings.NewReader("b"))
	if err != nil {
		t.Fatal(err)
	}
	if a.URL == b.URL {
		t.Error("same filename produced the same stored URL")
	}
}

func TestDeleteRejectsForeignURL(t *testing.T) {
	s := newTestStore(t)
	if err := s.Delete(context.Background(), "https://elsewhere.example/file.pdf"); err == nil {
		t.Error("expected error for foreign URL")
	}
	if err := s.Delete(context.Background(), "/media/documents/../../etc/passwd"); err == nil {
		t.Error("expected error for traversal attempt")
	}
}
