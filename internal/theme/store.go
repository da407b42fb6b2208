package theme

import (
	"context"
	"errors"
	"sync"

	pkgerrors "github.com/fmcommerce/storefront/pkg/errors"
	"github.com/fmcommerce/storefront/pkg/logger"
	"github.com/fmcommerce/storefront/pkg/storage"
)

// StorageKey is where the literal theme value lives.
const StorageKey = "fm_theme"

// Theme is the binary visual mode preference.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Parse returns the theme for a persisted value, falling back to light for
// anything unknown.
func Parse(value string) Theme {
	if Theme(value) == Dark {
		return Dark
	}
	return Light
}

// StoreParams groups dependencies for the theme store.
type StoreParams struct {
	KV     storage.KV
	Logger *logger.Logger
}

// Store owns the theme preference and persists it on every toggle. Consumers
// subscribe to apply the global visual mode flag.
type Store struct {
	mu   sync.Mutex
	kv   storage.KV
	logg *logger.Logger

	current Theme
	subs    []func(Theme)
}

// NewStore builds the theme store, rehydrating from storage. A missing or
// invalid persisted value silently defaults to light.
func NewStore(ctx context.Context, params StoreParams) (*Store, error) {
	if params.KV == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "storage is required")
	}
	store := &Store{
		kv:      params.KV,
		logg:    params.Logger,
		current: Light,
	}
	store.rehydrate(ctx)
	return store, nil
}

// Current returns the active theme.
func (s *Store) Current() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Toggle flips light and dark, persists the new value and notifies
// subscribers. Persistence failures are logged and swallowed.
func (s *Store) Toggle(ctx context.Context) Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == Light {
		s.current = Dark
	} else {
		s.current = Light
	}

	if err := s.kv.Set(ctx, StorageKey, string(s.current)); err != nil {
		s.warn(ctx, "theme.persist.write_failed", err)
	}
	for _, fn := range s.subs {
		fn(s.current)
	}
	return s.current
}

// Subscribe registers a callback invoked with the new theme after each toggle.
func (s *Store) Subscribe(fn func(Theme)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) rehydrate(ctx context.Context) {
	raw, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.warn(ctx, "theme.rehydrate.read_failed", err)
		}
		return
	}
	s.current = Parse(raw)
}

func (s *Store) warn(ctx context.Context, msg string, err error) {
	if s.logg == nil {
		return
	}
	ctx = s.logg.WithStorageKey(ctx, StorageKey)
	ctx = s.logg.WithField(ctx, "error", err.Error())
	s.logg.Warn(ctx, msg)
}
