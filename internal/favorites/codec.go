package favorites

import (
	"encoding/json"
	"fmt"

	"github.com/ytget/blinkratio/internal/model"
)

// StorageKey is the single key holding the whole favorites list
const StorageKey = "BlinkRatio_Favorites"

func encodeItems(items []model.FavoriteItem) ([]byte, error) {
	if items == nil {
		items = []model.FavoriteItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encoding favorites: %w", err)
	}
	return data, nil
}

func decodeItems(data []byte) ([]model.FavoriteItem, error) {
	var items []model.FavoriteItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding favorites: %w", err)
	}

	// A hand-edited blob may repeat or omit an id; keep the first occurrence
	// and drop records without one.
	seen := make(map[string]struct{}, len(items))
	unique := items[:0]
	for _, item := range items {
		if item.ID == "" {
			continue
		}
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		unique = append(unique, item)
	}
	return unique, nil
}
