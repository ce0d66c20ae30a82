// Package entity implements the indexed-entity persistence abstraction: a
// typed convenience layer per entity kind over the generic EntityStore port,
// plus singleton entities that bypass the index.
package entity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dentalflow/clinic-system/internal/core/domain"
	"github.com/dentalflow/clinic-system/internal/core/ports"
)

// Definition describes one indexed entity kind: its storage kind name, how
// to read and write the record id, the declared initial state returned for
// reads of absent records, and optional seed data.
type Definition[T any] struct {
	Kind    string
	Initial func() T
	ID      func(T) string
	SetID   func(*T, string)
	Seed    func() []T
}

// Collection is the typed handle for one indexed entity kind.
type Collection[T any] struct {
	def   Definition[T]
	store ports.EntityStore
	log   zerolog.Logger
}

func NewCollection[T any](store ports.EntityStore, def Definition[T], log zerolog.Logger) *Collection[T] {
	return &Collection[T]{def: def, store: store, log: log.With().Str("kind", def.Kind).Logger()}
}

// Kind returns the storage kind name.
func (c *Collection[T]) Kind() string { return c.def.Kind }

// ID returns the record id of state.
func (c *Collection[T]) ID(state T) string { return c.def.ID(state) }

// SetID writes id into state using the kind's accessor.
func (c *Collection[T]) SetID(state *T, id string) { c.def.SetID(state, id) }

// Exists reports whether a document is stored under id.
func (c *Collection[T]) Exists(ctx context.Context, id string) (bool, error) {
	_, err := c.store.Get(ctx, c.def.Kind, id)
	if errors.Is(err, domain.ErrNoDocument) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetState returns the stored document, or the kind's declared initial state
// when absent. Callers that need create/update/delete correctness check
// Exists first.
func (c *Collection[T]) GetState(ctx context.Context, id string) (T, error) {
	raw, err := c.store.Get(ctx, c.def.Kind, id)
	if errors.Is(err, domain.ErrNoDocument) {
		return c.def.Initial(), nil
	}
	if err != nil {
		var zero T
		return zero, err
	}
	var state T
	if err := json.Unmarshal(raw, &state); err != nil {
		var zero T
		return zero, fmt.Errorf("decode %s/%s: %w", c.def.Kind, id, err)
	}
	return state, nil
}

// Save fully replaces the document and records its id in the kind's index.
func (c *Collection[T]) Save(ctx context.Context, state T) error {
	id := c.def.ID(state)
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", c.def.Kind, id, err)
	}
	if err := c.store.Put(ctx, c.def.Kind, id, raw); err != nil {
		return err
	}
	return c.store.AddToIndex(ctx, c.def.Kind, id)
}

// Mutate loads the current document, applies fn and persists the result.
// There is no conflict detection: concurrent mutations on the same id race
// under last-writer-wins.
func (c *Collection[T]) Mutate(ctx context.Context, id string, fn func(T) T) (T, error) {
	current, err := c.GetState(ctx, id)
	if err != nil {
		var zero T
		return zero, err
	}
	next := fn(current)
	if err := c.Save(ctx, next); err != nil {
		var zero T
		return zero, err
	}
	return next, nil
}

// List fetches every indexed document, in index (insertion) order. An
// indexed id with no backing document is a data-integrity fault: it is
// logged and skipped, never fatal for the listing.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	ids, err := c.store.ListIDs(ctx, c.def.Kind)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0, len(ids))
	for _, id := range ids {
		raw, err := c.store.Get(ctx, c.def.Kind, id)
		if errors.Is(err, domain.ErrNoDocument) {
			c.log.Warn().Str("id", id).Msg("indexed id has no document, skipping")
			continue
		}
		if err != nil {
			return nil, err
		}
		var state T
		if err := json.Unmarshal(raw, &state); err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", c.def.Kind, id, err)
		}
		items = append(items, state)
	}
	return items, nil
}

// Delete removes the document and its index entry, reporting whether the
// document existed.
func (c *Collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	existed, err := c.store.Delete(ctx, c.def.Kind, id)
	if err != nil {
		return false, err
	}
	if err := c.store.RemoveFromIndex(ctx, c.def.Kind, id); err != nil {
		return existed, err
	}
	return existed, nil
}

// EnsureSeed populates an empty kind with its static seed data. The
// index-empty check makes it idempotent; it is meant to run once at
// bootstrap, not on request paths.
func (c *Collection[T]) EnsureSeed(ctx context.Context) error {
	ids, err := c.store.ListIDs(ctx, c.def.Kind)
	if err != nil {
		return err
	}
	if len(ids) > 0 || c.def.Seed == nil {
		return nil
	}
	seed := c.def.Seed()
	for _, item := range seed {
		if err := c.Save(ctx, item); err != nil {
			return fmt.Errorf("seed %s: %w", c.def.Kind, err)
		}
	}
	if len(seed) > 0 {
		c.log.Info().Int("count", len(seed)).Msg("seeded collection")
	}
	return nil
}
