package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/fmcommerce/storefront/internal/catalog"
	pkgerrors "github.com/fmcommerce/storefront/pkg/errors"
	"github.com/fmcommerce/storefront/pkg/logger"
	"github.com/fmcommerce/storefront/pkg/storage"
)

// StorageKey is where the serialized line item collection lives.
const StorageKey = "fm_cart"

// StoreParams groups dependencies for the cart store.
type StoreParams struct {
	KV     storage.KV
	Logger *logger.Logger
}

// Store owns the cart state. All mutations go through the pure reducer
// functions, serialized by a single mutex; after each transition the store
// notifies its subscribers, persistence being one of them.
type Store struct {
	mu   sync.Mutex
	kv   storage.KV
	logg *logger.Logger

	state State
	subs  []func(context.Context, State)
}

// NewStore builds the cart store and rehydrates state from storage. A missing,
// unreadable or corrupt persisted value falls back to the empty cart; that is
// never an error.
func NewStore(ctx context.Context, params StoreParams) (*Store, error) {
	if params.KV == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "storage is required")
	}
	store := &Store{
		kv:    params.KV,
		logg:  params.Logger,
		state: State{Items: []LineItem{}},
	}
	store.subs = append(store.subs, store.persist)
	store.rehydrate(ctx)
	return store, nil
}

// Subscribe registers a callback invoked with a state snapshot after every
// successful transition.
func (s *Store) Subscribe(fn func(State)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, func(_ context.Context, state State) {
		fn(state)
	})
}

// State returns a snapshot of the current cart.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{Items: cloneItems(s.state.Items)}
}

// AddItem dispatches an add for the given product snapshot.
func (s *Store) AddItem(ctx context.Context, product catalog.Product) State {
	return s.dispatch(ctx, func(state State) State {
		return AddItem(state, product)
	})
}

// RemoveItem dispatches a removal of the line with the given id.
func (s *Store) RemoveItem(ctx context.Context, id int64) State {
	return s.dispatch(ctx, func(state State) State {
		return RemoveItem(state, id)
	})
}

// UpdateQuantity dispatches a quantity change for the line with the given id.
func (s *Store) UpdateQuantity(ctx context.Context, id int64, quantity int) State {
	return s.dispatch(ctx, func(state State) State {
		return UpdateQuantity(state, id, quantity)
	})
}

// Clear dispatches a full cart clear.
func (s *Store) Clear(ctx context.Context) State {
	return s.dispatch(ctx, Clear)
}

func (s *Store) dispatch(ctx context.Context, reduce func(State) State) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = reduce(s.state)
	snapshot := State{Items: cloneItems(s.state.Items)}
	for _, fn := range s.subs {
		fn(ctx, snapshot)
	}
	return snapshot
}

// persist serializes the line items under the fixed key. Write failures are
// logged and swallowed, matching best-effort local storage semantics.
func (s *Store) persist(ctx context.Context, state State) {
	payload, err := json.Marshal(state.Items)
	if err != nil {
		s.warn(ctx, "cart.persist.encode_failed", err)
		return
	}
	if err := s.kv.Set(ctx, StorageKey, string(payload)); err != nil {
		s.warn(ctx, "cart.persist.write_failed", err)
	}
}

func (s *Store) rehydrate(ctx context.Context) {
	raw, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.warn(ctx, "cart.rehydrate.read_failed", err)
		}
		return
	}

	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.warn(ctx, "cart.rehydrate.corrupt_payload", err)
		return
	}

	// Persisted lines that violate the quantity invariant are dropped.
	kept := make([]LineItem, 0, len(items))
	for _, item := range items {
		if item.Quantity >= 1 {
			kept = append(kept, item)
		}
	}
	s.state = State{Items: kept}
}

func (s *Store) warn(ctx context.Context, msg string, err error) {
	if s.logg == nil {
		return
	}
	ctx = s.logg.WithStorageKey(ctx, StorageKey)
	ctx = s.logg.WithField(ctx, "error", err.Error())
	s.logg.Warn(ctx, msg)
}
