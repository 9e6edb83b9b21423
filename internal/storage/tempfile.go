package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// TempStore persists uploaded images under a scratch directory for the
// duration of one request. Files are uuid-named so concurrent requests never
// collide, and the returned cleanup func releases the file on every exit
// path once deferred by the caller.
type TempStore struct {
	dir string
}

// NewTempStore creates the scratch directory if needed.
func NewTempStore(dir string) (*TempStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create temp dir %s: %w", dir, err)
	}
	return &TempStore{dir: dir}, nil
}

// Save writes the upload to disk and returns its path together with a
// cleanup func that removes it. cleanup is safe to call even when Save's
// write partially failed.
func (s *TempStore) Save(file *multipart.FileHeader) (string, func(), error) {
	src, err := file.Open()
	if err != nil {
		return "", nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	ext := filepath.Ext(file.Filename)
	if ext == "" {
		ext = ".png"
	}
	path := filepath.Join(s.dir, fmt.Sprintf("upload-%s%s", uuid.New().String(), ext))

	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("failed to remove temp image")
		}
	}

	dst, err := os.Create(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		cleanup()
		return "", nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := dst.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	return path, cleanup, nil
}
