package favorites

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/blinkratio/internal/model"
)

var neonGreen = model.RGBA{R: 0, G: 255, B: 148, A: 255}

func newItem(id, title string) model.FavoriteItem {
	return model.NewFavoriteItem(id, title, title+" reference", "star", neonGreen, nil)
}

func ids(items []model.FavoriteItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

// failingStorage rejects every write
type failingStorage struct {
	*MemoryStorage
	writes int
}

func (f *failingStorage) Set(string, []byte) error {
	f.writes++
	return errors.New("disk full")
}

func TestNewStore_Empty(t *testing.T) {
	store := NewStore(NewMemoryStorage())

	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.Items())
	assert.NoError(t, store.LastSaveError())
}

func TestNewStore_CorruptData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "{{{"},
		{"wrong shape", `{"id":"a"}`},
		{"bad timestamp", `[{"id":"a","timestamp":"yesterday"}]`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			storage := NewMemoryStorage()
			require.NoError(t, storage.Set(StorageKey, []byte(test.data)))

			store := NewStore(storage)
			assert.Equal(t, 0, store.Len())

			// The store stays usable after a bad load
			store.Add(newItem("a", "A"))
			assert.True(t, store.Contains("a"))
		})
	}
}

func TestNewStore_DropsRecordsWithoutID(t *testing.T) {
	storage := NewMemoryStorage()
	data := `[{"id":"a","title":"A"},{"title":"no id"},{"id":"b","title":"B"}]`
	require.NoError(t, storage.Set(StorageKey, []byte(data)))

	store := NewStore(storage)
	assert.Equal(t, []string{"a", "b"}, ids(store.Items()))
}

func TestAdd_RejectsEmptyID(t *testing.T) {
	storage := NewMemoryStorage()
	store := NewStore(storage)

	notified := 0
	store.Subscribe(func([]model.FavoriteItem) { notified++ })

	store.Add(newItem("a", "A"))
	store.Add(newItem("b", "B"))
	store.Add(model.FavoriteItem{ID: "", Title: "blank"})

	assert.Equal(t, 2, store.Len())
	assert.Equal(t, 2, notified)
	assert.NoError(t, store.LastSaveError())

	reloaded := NewStore(storage)
	assert.Equal(t, []string{"a", "b"}, ids(reloaded.Items()))
}

func TestAdd_Idempotent(t *testing.T) {
	storage := NewMemoryStorage()
	store := NewStore(storage)
	item := newItem("ratio/16:9", "Widescreen")

	for i := 0; i < 5; i++ {
		store.Add(item)
	}

	assert.Equal(t, 1, store.Len())
	assert.True(t, store.Contains("ratio/16:9"))

	// A different item with a taken id does not replace the first
	store.Add(newItem("ratio/16:9", "Impostor"))
	got, ok := store.Get("ratio/16:9")
	require.True(t, ok)
	assert.Equal(t, "Widescreen", got.Title)
}

func TestAdd_KeepsInsertionOrder(t *testing.T) {
	store := NewStore(NewMemoryStorage())
	store.Add(newItem("c", "C"))
	store.Add(newItem("a", "A"))
	store.Add(newItem("b", "B"))
	store.Contains("a")
	store.Get("b")

	if diff := cmp.Diff([]string{"c", "a", "b"}, ids(store.Items())); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestRemove(t *testing.T) {
	store := NewStore(NewMemoryStorage())
	a := newItem("a", "A")
	store.Add(a)
	store.Add(newItem("b", "B"))
	store.Add(newItem("c", "C"))

	store.Remove(a)
	store.RemoveByID("c")
	assert.Equal(t, []string{"b"}, ids(store.Items()))

	// Missing ids are a no-op
	assert.NotPanics(t, func() { store.RemoveByID("missing") })
	assert.Equal(t, 1, store.Len())
}

func TestClearAll_PersistsEmpty(t *testing.T) {
	storage := NewMemoryStorage()
	store := NewStore(storage)
	store.Add(newItem("a", "A"))
	store.Add(newItem("b", "B"))

	store.ClearAll()
	assert.Equal(t, 0, store.Len())

	reloaded := NewStore(storage)
	assert.Equal(t, 0, reloaded.Len())

	data, ok := storage.Get(StorageKey)
	require.True(t, ok)
	assert.JSONEq(t, `[]`, string(data))
}

func TestPersistence_RoundTrip(t *testing.T) {
	storage := NewMemoryStorage()
	store := NewStore(storage)

	meta := "base 8 · ratio 1.5"
	store.Add(newItem("a", "A"))
	store.Add(model.NewFavoriteItem("spacing/8/1.5", "Spacing", "Generated scale", "grid", model.RGBA{R: 255, G: 0, B: 124, A: 255}, &meta))

	reloaded := NewStore(storage)
	if diff := cmp.Diff(store.Items(), reloaded.Items()); diff != "" {
		t.Errorf("reloaded items differ (-want +got):\n%s", diff)
	}

	got, ok := reloaded.Get("spacing/8/1.5")
	require.True(t, ok)
	assert.Equal(t, "FF007C", got.AccentColorHex)
	assert.Equal(t, meta, got.MetadataOrEmpty())
}

func TestPersistence_WriteThrough(t *testing.T) {
	storage := NewMemoryStorage()
	store := NewStore(storage)

	store.Add(newItem("a", "A"))
	data, ok := storage.Get(StorageKey)
	require.True(t, ok)
	assert.Contains(t, string(data), `"id":"a"`)
	assert.Contains(t, string(data), `"accentColorHex":"00FF94"`)
	assert.NotContains(t, string(data), `"metadata"`)

	store.RemoveByID("a")
	data, _ = storage.Get(StorageKey)
	assert.JSONEq(t, `[]`, string(data))
}

func TestPersistence_ExternalErase(t *testing.T) {
	storage := NewMemoryStorage()
	store := NewStore(storage)
	store.Add(newItem("a", "A"))

	storage.Delete(StorageKey)
	assert.Equal(t, 0, NewStore(storage).Len())
}

func TestSaveFailure_KeepsMemoryState(t *testing.T) {
	storage := &failingStorage{MemoryStorage: NewMemoryStorage()}
	store := NewStore(storage)

	store.Add(newItem("a", "A"))
	store.Add(newItem("b", "B"))

	assert.Equal(t, 2, store.Len())
	assert.Equal(t, 2, storage.writes)
	assert.Error(t, store.LastSaveError())

	// Nothing reached storage, so a new session starts empty
	assert.Equal(t, 0, NewStore(storage.MemoryStorage).Len())
}

func TestSubscribe(t *testing.T) {
	store := NewStore(NewMemoryStorage())

	var calls [][]string
	unsubscribe := store.Subscribe(func(items []model.FavoriteItem) {
		calls = append(calls, ids(items))
	})

	store.Add(newItem("a", "A"))
	store.Add(newItem("a", "A")) // no-op, no notification
	store.Add(newItem("b", "B"))
	store.RemoveByID("missing") // no-op, no notification
	store.RemoveByID("a")
	store.ClearAll()

	want := [][]string{{"a"}, {"a", "b"}, {"b"}, {}}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}

	unsubscribe()
	store.Add(newItem("c", "C"))
	assert.Len(t, calls, 4)
}

func TestSubscribe_SnapshotIsolation(t *testing.T) {
	store := NewStore(NewMemoryStorage())
	store.Subscribe(func(items []model.FavoriteItem) {
		if len(items) > 0 {
			items[0].Title = "mutated"
		}
	})

	store.Add(newItem("a", "A"))
	got, _ := store.Get("a")
	assert.Equal(t, "A", got.Title)
}

func TestSearch(t *testing.T) {
	store := NewStore(NewMemoryStorage())
	store.Add(newItem("ratio/16:9", "Widescreen"))
	store.Add(newItem("grid/12", "Twelve Column Grid"))
	store.Add(newItem("type/body", "Body Text"))

	assert.Len(t, store.Search(""), 3)
	assert.Len(t, store.Search("   "), 3)

	results := store.Search("wide")
	require.NotEmpty(t, results)
	assert.Equal(t, "ratio/16:9", results[0].ID)

	assert.Empty(t, store.Search("xyzzy"))
}

func TestConcurrentAdds(t *testing.T) {
	storage := NewMemoryStorage()
	store := NewStore(storage)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store.Add(newItem(fmt.Sprintf("item-%d", i), "Item"))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, store.Len())
	assert.Equal(t, 50, NewStore(storage).Len())
}

func TestSubscribe_OrderedUnderConcurrency(t *testing.T) {
	store := NewStore(NewMemoryStorage())

	var lengths []int
	store.Subscribe(func(items []model.FavoriteItem) {
		lengths = append(lengths, len(items))
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store.Add(newItem(fmt.Sprintf("item-%d", i), "Item"))
		}(i)
	}
	wg.Wait()

	require.Len(t, lengths, 50)
	for i, n := range lengths {
		assert.Equal(t, i+1, n, "notification %d carried a stale snapshot", i)
	}
}
