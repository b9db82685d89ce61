package filestorage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/yigit/schoolfm/internal/pkg/apperrors"
	"github.com/yigit/schoolfm/internal/pkg/logger"
)

// DocumentStore keeps a single opaque JSON document.
type DocumentStore interface {
	// ReadDocument returns the whole document.
	ReadDocument() (json.RawMessage, error)

	// ReplaceDocument overwrites the whole document. There is no merge with the
	// previous content.
	ReplaceDocument(doc json.RawMessage) error
}

// LocalStorage stores the document as a file on the local filesystem.
type LocalStorage struct {
	path string // full path of the document file
}

// NewLocalStorage creates a new LocalStorage for the document at path. The
// parent directory is created when missing; the file itself is not.
func NewLocalStorage(path string) (*LocalStorage, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", dir).Msg("Failed to create settings directory")
		return nil, fmt.Errorf("failed to create settings directory %s: %w", dir, err)
	}
	logger.Info().Str("path", path).Msg("Settings document location ensured")

	return &LocalStorage{path: path}, nil
}

// Path returns the location of the document file.
func (ls *LocalStorage) Path() string {
	return ls.path
}

// ReadDocument reads the document. A missing, unreadable or corrupt file is a
// storage error.
func (ls *LocalStorage) ReadDocument() (json.RawMessage, error) {
	data, err := os.ReadFile(ls.path)
	if err != nil {
		logger.Error().Err(err).Str("path", ls.path).Msg("Failed to read settings document")
		return nil, apperrors.NewStorageError("failed to read settings", err)
	}

	if !json.Valid(data) {
		logger.Error().Str("path", ls.path).Msg("Settings document is not valid JSON")
		return nil, apperrors.NewStorageError("failed to read settings", fmt.Errorf("%s does not contain valid JSON", ls.path))
	}

	return json.RawMessage(data), nil
}

// ReplaceDocument writes doc to a temporary file next to the target and renames
// it into place, so readers see either the old or the new document.
func (ls *LocalStorage) ReplaceDocument(doc json.RawMessage) error {
	if !json.Valid(doc) {
		return apperrors.NewBadRequestError("settings must be a valid JSON document")
	}

	dir := filepath.Dir(ls.path)
	tmpPath := filepath.Join(dir, "."+filepath.Base(ls.path)+"."+uuid.New().String()+".tmp")

	tmp, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		logger.Error().Err(err).Str("path", tmpPath).Msg("Failed to create temporary settings file")
		return apperrors.NewStorageError("failed to write settings", err)
	}

	if _, err = tmp.Write(doc); err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		logger.Error().Err(err).Str("path", tmpPath).Msg("Failed to write temporary settings file")
		_ = os.Remove(tmpPath)
		return apperrors.NewStorageError("failed to write settings", err)
	}

	if err := os.Rename(tmpPath, ls.path); err != nil {
		logger.Error().Err(err).Str("path", ls.path).Msg("Failed to replace settings document")
		_ = os.Remove(tmpPath)
		return apperrors.NewStorageError("failed to write settings", err)
	}

	logger.Info().Str("path", ls.path).Int("bytes", len(doc)).Msg("Settings document replaced")
	return nil
}
