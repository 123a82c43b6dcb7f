package favorites

import "github.com/ytget/blinkratio/internal/model"

// Storage is the key-value backend the store persists to
type Storage interface {
	Get(key string) ([]byte, bool)
	Set(key string, data []byte) error
}

// Favorites defines the interface of the favorites store used by the UI.
type Favorites interface {
	Add(item model.FavoriteItem)
	Remove(item model.FavoriteItem)
	RemoveByID(id string)
	ClearAll()
	Contains(id string) bool
	Get(id string) (model.FavoriteItem, bool)
	Items() []model.FavoriteItem
	Len() int
	Search(query string) []model.FavoriteItem

	// Subscribe registers fn to receive a snapshot after every change
	Subscribe(fn func([]model.FavoriteItem)) (unsubscribe func())
}
