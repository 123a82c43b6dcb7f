package favorites

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"

	"github.com/ytget/blinkratio/internal/model"
)

// Store holds the favorites list and writes it through to Storage
type Store struct {
	storage Storage

	items      []model.FavoriteItem
	itemsMutex sync.RWMutex
	lastErr    error

	subscribers map[int]func([]model.FavoriteItem)
	nextSubID   int
	subMutex    sync.Mutex

	// notifyMutex is taken before itemsMutex is released so subscribers see
	// snapshots in commit order
	notifyMutex sync.Mutex
}

var _ Favorites = (*Store)(nil)

// NewStore creates a store and restores the list from storage.
// Missing or unreadable data starts an empty list; construction never fails.
func NewStore(storage Storage) *Store {
	s := &Store{
		storage:     storage,
		items:       make([]model.FavoriteItem, 0),
		subscribers: make(map[int]func([]model.FavoriteItem)),
	}
	s.load()
	return s
}

// load runs once, from NewStore
func (s *Store) load() {
	data, ok := s.storage.Get(StorageKey)
	if !ok || len(data) == 0 {
		return
	}

	items, err := decodeItems(data)
	if err != nil {
		log.Printf("favorites: ignoring stored data: %v", err)
		return
	}
	s.items = items
}

// Add appends item unless an item with the same id is already saved.
// Items without an id are rejected.
func (s *Store) Add(item model.FavoriteItem) {
	if item.ID == "" {
		log.Printf("favorites: ignoring item without id: %q", item.Title)
		return
	}

	s.itemsMutex.Lock()
	if s.indexOf(item.ID) >= 0 {
		s.itemsMutex.Unlock()
		return
	}
	s.items = append(s.items, item)
	snapshot := s.commit()
	s.notifyMutex.Lock()
	s.itemsMutex.Unlock()

	s.notify(snapshot)
}

// Remove removes the item with item's id
func (s *Store) Remove(item model.FavoriteItem) {
	s.RemoveByID(item.ID)
}

// RemoveByID removes the item with the given id; absent ids are ignored
func (s *Store) RemoveByID(id string) {
	s.itemsMutex.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.itemsMutex.Unlock()
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	snapshot := s.commit()
	s.notifyMutex.Lock()
	s.itemsMutex.Unlock()

	s.notify(snapshot)
}

// ClearAll removes every item and persists the empty list
func (s *Store) ClearAll() {
	s.itemsMutex.Lock()
	s.items = make([]model.FavoriteItem, 0)
	snapshot := s.commit()
	s.notifyMutex.Lock()
	s.itemsMutex.Unlock()

	s.notify(snapshot)
}

// Contains reports whether an item with id is saved
func (s *Store) Contains(id string) bool {
	s.itemsMutex.RLock()
	defer s.itemsMutex.RUnlock()
	return s.indexOf(id) >= 0
}

// Get returns the item with id
func (s *Store) Get(id string) (model.FavoriteItem, bool) {
	s.itemsMutex.RLock()
	defer s.itemsMutex.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.FavoriteItem{}, false
	}
	return s.items[i], true
}

// Items returns a copy of the list in insertion order
func (s *Store) Items() []model.FavoriteItem {
	s.itemsMutex.RLock()
	defer s.itemsMutex.RUnlock()
	return s.snapshot()
}

// Len returns the number of saved items
func (s *Store) Len() int {
	s.itemsMutex.RLock()
	defer s.itemsMutex.RUnlock()
	return len(s.items)
}

// Search fuzzy-matches query against title, description and metadata,
// best matches first. An empty query returns every item.
func (s *Store) Search(query string) []model.FavoriteItem {
	items := s.Items()
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}

	searchStrings := make([]string, len(items))
	for i, item := range items {
		searchStrings[i] = item.Title + " " + item.Description + " " + item.MetadataOrEmpty()
	}
	matches := fuzzy.Find(query, searchStrings)

	result := make([]model.FavoriteItem, 0, len(matches))
	for _, match := range matches {
		result = append(result, items[match.Index])
	}
	return result
}

// Subscribe registers fn to be called synchronously after every change.
// Calls are serialized in commit order; fn may read the store but must not
// mutate it.
func (s *Store) Subscribe(fn func([]model.FavoriteItem)) func() {
	s.subMutex.Lock()
	defer s.subMutex.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.subMutex.Lock()
		defer s.subMutex.Unlock()
		delete(s.subscribers, id)
	}
}

// LastSaveError returns the error of the most recent write, nil if it succeeded
func (s *Store) LastSaveError() error {
	s.itemsMutex.RLock()
	defer s.itemsMutex.RUnlock()
	return s.lastErr
}

// commit persists the current list. Caller holds itemsMutex.
// Failures are logged and kept for LastSaveError; memory stays authoritative.
func (s *Store) commit() []model.FavoriteItem {
	s.lastErr = s.save()
	if s.lastErr != nil {
		log.Printf("favorites: save failed, keeping in-memory state: %v", s.lastErr)
	}
	return s.snapshot()
}

func (s *Store) save() error {
	data, err := encodeItems(s.items)
	if err != nil {
		return err
	}
	if err := s.storage.Set(StorageKey, data); err != nil {
		return fmt.Errorf("writing %s: %w", StorageKey, err)
	}
	return nil
}

func (s *Store) snapshot() []model.FavoriteItem {
	out := make([]model.FavoriteItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) indexOf(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// notify calls every subscriber with its own copy of items.
// Caller holds notifyMutex; notify releases it.
func (s *Store) notify(items []model.FavoriteItem) {
	defer s.notifyMutex.Unlock()

	s.subMutex.Lock()
	subs := make([]func([]model.FavoriteItem), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.subMutex.Unlock()

	for _, fn := range subs {
		snapshot := make([]model.FavoriteItem, len(items))
		copy(snapshot, items)
		fn(snapshot)
	}
}
