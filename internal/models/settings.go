package models

// Settings is the small per-profile application settings record, persisted
// separately from the account collection.
type Settings struct {
	// Volume is the music volume in percent, 0-100.
	Volume int `json:"volume"`

	// MusicTheme is the selected ambient music theme, or "none".
	MusicTheme string `json:"musicTheme"`
}

// DefaultSettings returns the settings used before the user changes anything.
func DefaultSettings() Settings {
	return Settings{Volume: 50, MusicTheme: "magic"}
}
