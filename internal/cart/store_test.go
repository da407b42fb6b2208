package cart

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fmcommerce/storefront/pkg/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreRequiresStorage(t *testing.T) {
	t.Parallel()

	_, err := NewStore(context.Background(), StoreParams{})
	require.Error(t, err)
}

func TestStorePersistsAfterEveryMutation(t *testing.T) {
	t.Parallel()

	kv := storage.NewMemory()
	ctx := context.Background()

	store, err := NewStore(ctx, StoreParams{KV: kv})
	require.NoError(t, err)

	store.AddItem(ctx, shoe())
	assertPersistedIDs(t, kv, 1)

	store.AddItem(ctx, hat())
	assertPersistedIDs(t, kv, 1, 2)

	store.UpdateQuantity(ctx, 1, 4)
	assertPersistedIDs(t, kv, 1, 2)

	store.RemoveItem(ctx, 2)
	assertPersistedIDs(t, kv, 1)

	store.Clear(ctx)
	assertPersistedIDs(t, kv)
}

func TestStoreRehydratesFromStorage(t *testing.T) {
	t.Parallel()

	kv := storage.NewMemory()
	ctx := context.Background()

	first, err := NewStore(ctx, StoreParams{KV: kv})
	require.NoError(t, err)
	first.AddItem(ctx, shoe())
	first.AddItem(ctx, shoe())

	second, err := NewStore(ctx, StoreParams{KV: kv})
	require.NoError(t, err)

	state := second.State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].Quantity)
	assert.True(t, state.Items[0].Price.Equal(decimal.NewFromInt(10)))
}

func TestStoreFallsBackToEmptyOnCorruptStorage(t *testing.T) {
	t.Parallel()

	kv := storage.NewMemory()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, StorageKey, "{not json"))

	store, err := NewStore(ctx, StoreParams{KV: kv})
	require.NoError(t, err, "corrupt storage must not surface as an error")
	assert.Empty(t, store.State().Items)
}

func TestStoreFallsBackToEmptyOnReadFailure(t *testing.T) {
	t.Parallel()

	store, err := NewStore(context.Background(), StoreParams{KV: failingKV{}})
	require.NoError(t, err)
	assert.Empty(t, store.State().Items)
}

func TestStoreDropsPersistedLinesWithInvalidQuantity(t *testing.T) {
	t.Parallel()

	kv := storage.NewMemory()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, StorageKey, `[{"id":1,"title":"Shoe","price":10,"image":"x","quantity":0},{"id":2,"title":"Hat","price":5,"image":"y","quantity":3}]`))

	store, err := NewStore(ctx, StoreParams{KV: kv})
	require.NoError(t, err)

	state := store.State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, int64(2), state.Items[0].ID)
}

func TestStoreNotifiesSubscribers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := NewStore(ctx, StoreParams{KV: storage.NewMemory()})
	require.NoError(t, err)

	var seen []int
	store.Subscribe(func(state State) {
		seen = append(seen, state.Count())
	})

	store.AddItem(ctx, shoe())
	store.AddItem(ctx, shoe())
	store.Clear(ctx)

	assert.Equal(t, []int{1, 2, 0}, seen)
}

func TestStoreSurvivesWriteFailures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := NewStore(ctx, StoreParams{KV: failingKV{}})
	require.NoError(t, err)

	state := store.AddItem(ctx, shoe())
	require.Len(t, state.Items, 1, "write failure must not lose the in-memory transition")
}

func TestStoreStateReturnsSnapshot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := NewStore(ctx, StoreParams{KV: storage.NewMemory()})
	require.NoError(t, err)
	store.AddItem(ctx, shoe())

	snapshot := store.State()
	snapshot.Items[0].Quantity = 99

	assert.Equal(t, 1, store.State().Items[0].Quantity, "callers must not be able to mutate store state")
}

func assertPersistedIDs(t *testing.T, kv storage.KV, want ...int64) {
	t.Helper()

	raw, err := kv.Get(context.Background(), StorageKey)
	require.NoError(t, err)

	var items []LineItem
	require.NoError(t, json.Unmarshal([]byte(raw), &items))

	require.Len(t, items, len(want))
	for i := range want {
		assert.Equal(t, want[i], items[i].ID)
	}
}

type failingKV struct{}

func (failingKV) Get(ctx context.Context, key string) (string, error) {
	return "", errors.New("disk gone")
}

func (failingKV) Set(ctx context.Context, key, value string) error {
	return errors.New("disk gone")
}
