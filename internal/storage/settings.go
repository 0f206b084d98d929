package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"magicalc/internal/models"
)

// SettingsStore persists the small application settings record (volume,
// music theme) next to, but separate from, the account collection.
type SettingsStore struct {
	db *sql.DB
}

func NewSettingsStore(db *sql.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// Get returns the stored settings. Missing or malformed content degrades to
// the defaults rather than failing.
func (s *SettingsStore) Get(ctx context.Context) (models.Settings, error) {
	raw, err := kvGet(ctx, s.db, keySettings)
	if err != nil {
		return models.Settings{}, err
	}
	if len(raw) == 0 {
		return models.DefaultSettings(), nil
	}
	settings := models.DefaultSettings()
	if err := json.Unmarshal(raw, &settings); err != nil {
		return models.DefaultSettings(), nil
	}
	return settings, nil
}

// Put replaces the stored settings.
func (s *SettingsStore) Put(ctx context.Context, settings models.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return kvSet(ctx, s.db, keySettings, raw)
}
