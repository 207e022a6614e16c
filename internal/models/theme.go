package models

import (
	"time"

	"github.com/collurgy/collurgy/internal/theme"
)

// SavedTheme is a named theme kept in the library.
type SavedTheme struct {
	// ID is the unique identifier for the entry.
	ID string `json:"id"`

	// Name is the user-facing key; unique within the library.
	Name string `json:"name"`

	// Theme is the stored record.
	Theme *theme.Theme `json:"theme"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SavedThemeSummary is the listing view of a library entry.
type SavedThemeSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Model     string    `json:"model"`
	UpdatedAt time.Time `json:"updated_at"`
}
