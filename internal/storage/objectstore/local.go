package objectstore

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/hyejin/scholarhub/internal/pkg/logger"
)

// LocalStore keeps objects on the local filesystem under a base
// directory. It backs the server on machines without a bucket and is
// also used by tests.
type LocalStore struct {
	basePath string // The root directory where objects are stored
}

// NewLocalStore creates a LocalStore rooted at basePath, creating the
// directory if needed.
func NewLocalStore(basePath string) (*LocalStore, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local object storage directory ensured")

	return &LocalStore{basePath: basePath}, nil
}

// resolve maps a store key to a filesystem path, rejecting traversal
func (ls *LocalStore) resolve(key string) (string, error) {
	if key == "" || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return filepath.Join(ls.basePath, filepath.FromSlash(key)), nil
}

// Put writes body to a file under the base directory
func (ls *LocalStore) Put(ctx context.Context, key string, body []byte, contentType string) error {
	path, err := ls.resolve(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create object directory: %w", err)
	}

	if err := os.WriteFile(path, body, 0o644); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Failed to write object file")
		return fmt.Errorf("failed to write object %s: %w", key, err)
	}
	return nil
}

// Get reads the file stored under key
func (ls *LocalStore) Get(ctx context.Context, key string) (*Object, error) {
	path, err := ls.resolve(key)
	if err != nil {
		return nil, err
	}

	body, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotExist
		}
		logger.Error().Err(err).Str("path", path).Msg("Failed to read object file")
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &Object{Body: body, ContentType: contentType}, nil
}
