package model

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// FavoriteItem is a reference or calculator result saved by the user.
// Items are created once and never updated; the store only adds and removes them.
type FavoriteItem struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Icon           string    `json:"icon"`
	AccentColorHex string    `json:"accentColorHex"`
	Metadata       *string   `json:"metadata,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// NewFavoriteItem creates a favorite stamped with the current time.
// An empty id is replaced by a random UUID.
func NewFavoriteItem(id, title, description, icon string, accent RGBA, metadata *string) FavoriteItem {
	if id == "" {
		id = uuid.NewString()
	}
	var meta *string
	if metadata != nil {
		m := *metadata
		meta = &m
	}
	return FavoriteItem{
		ID:             id,
		Title:          title,
		Description:    description,
		Icon:           icon,
		AccentColorHex: accent.Hex(),
		Metadata:       meta,
		Timestamp:      time.Now(),
	}
}

// MetadataOrEmpty returns the metadata string, or "" when absent
func (f FavoriteItem) MetadataOrEmpty() string {
	if f.Metadata == nil {
		return ""
	}
	return *f.Metadata
}

// AccentColor parses the stored accent, returning fallback when it is not
// six hex digits
func (f FavoriteItem) AccentColor(fallback RGBA) RGBA {
	if len(f.AccentColorHex) != 6 {
		return fallback
	}
	v, err := strconv.ParseUint(f.AccentColorHex, 16, 32)
	if err != nil {
		return fallback
	}
	return RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

// FavoriteID composes a stable id from a source screen and its parameters,
// e.g. FavoriteID("ratio", "16:9") == "ratio/16:9"
func FavoriteID(source string, params ...string) string {
	id := source
	for _, p := range params {
		id = fmt.Sprintf("%s/%s", id, p)
	}
	return id
}

// Hex returns RRGGBB as six uppercase hex digits. Alpha is dropped.
func (c RGBA) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}
