package services

import (
	"context"
	"encoding/json"

	"github.com/yigit/schoolfm/internal/pkg/filestorage"
)

// SettingsService reads and replaces the settings document as a whole.
type SettingsService interface {
	GetSettings(ctx context.Context) (json.RawMessage, error)
	ReplaceSettings(ctx context.Context, doc json.RawMessage) error
}

type settingsServiceImpl struct {
	store filestorage.DocumentStore
}

// NewSettingsService creates a new settings service instance
func NewSettingsService(store filestorage.DocumentStore) SettingsService {
	return &settingsServiceImpl{store: store}
}

func (s *settingsServiceImpl) GetSettings(ctx context.Context) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ReadDocument()
}

// ReplaceSettings overwrites the document. Nothing is merged.
func (s *settingsServiceImpl) ReplaceSettings(ctx context.Context, doc json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.ReplaceDocument(doc)
}
