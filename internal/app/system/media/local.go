// internal/app/system/media/local.go
package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LocalStore keeps documents on the local filesystem under a single
// root directory and serves them from a URL prefix (bootstrap mounts
// the directory as a static file route).
type LocalStore struct {
	root      string
	urlPrefix string
	log       *zap.Logger
}

// NewLocalStore creates the root directory if needed.
func NewLocalStore(root, urlPrefix string, log *zap.Logger) (*LocalStore, error) {
	if root == "" {
		return nil, fmt.Errorf("media: storage root is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("media: create storage root: %w", err)
	}
	return &LocalStore{
		root:      root,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
		log:       log,
	}, nil
}

// Upload stores the file under a fresh UUID name, keeping the original
// extension so Content-Type sniffing on the serving side stays sane.
func (s *LocalStore) Upload(ctx context.Context, filename string, r io.Reader) (StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return StoredFile{}, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	stored := uuid.NewString() + ext
	dst := filepath.Join(s.root, stored)

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return StoredFile{}, fmt.Errorf("media: create %s: %w", stored, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return StoredFile{}, fmt.Errorf("media: write %s: %w", stored, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return StoredFile{}, fmt.Errorf("media: close %s: %w", stored, err)
	}

	s.log.Debug("document stored",
		zap.String("file", stored),
		zap.String("original", filename))

	return StoredFile{
		Name:   filename,
		URL:    s.urlPrefix + "/" + stored,
		Format: strings.TrimPrefix(ext, "."),
	}, nil
}

// Delete removes a stored file by URL. Missing files are not an error;
// a retried project delete must not wedge on a file the first attempt
// already removed.
func (s *LocalStore) Delete(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name, ok := s.storedName(url)
	if !ok {
		return fmt.Errorf("media: url %q is not under this store", url)
	}
	if err := os.Remove(filepath.Join(s.root, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("media: delete %s: %w", name, err)
	}
	return nil
}

// Root returns the storage root directory, for the static file route.
func (s *LocalStore) Root() string { return s.root }

// URLPrefix returns the public prefix documents are served under.
func (s *LocalStore) URLPrefix() string { return s.urlPrefix }

func (s *LocalStore) storedName(url string) (string, bool) {
	if !strings.HasPrefix(url, s.urlPrefix+"/") {
		return "", false
	}
	name := strings.TrimPrefix(url, s.urlPrefix+"/")
	// Reject anything that could escape the root.
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", false
	}
	return name, true
}
