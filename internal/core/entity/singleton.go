package entity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dentalflow/clinic-system/internal/core/domain"
	"github.com/dentalflow/clinic-system/internal/core/ports"
)

// Singleton is an entity kind with exactly one record at a fixed id. It
// bypasses the per-kind index entirely: there is no create, list or delete,
// only get-with-lazy-default and mutate.
type Singleton[T any] struct {
	kind    string
	id      string
	initial func() T
	store   ports.EntityStore
}

func NewSingleton[T any](store ports.EntityStore, kind, id string, initial func() T) *Singleton[T] {
	return &Singleton[T]{kind: kind, id: id, initial: initial, store: store}
}

// Get returns the singleton state, creating the default document on first
// access so the record always exists afterwards.
func (s *Singleton[T]) Get(ctx context.Context) (T, error) {
	raw, err := s.store.Get(ctx, s.kind, s.id)
	if errors.Is(err, domain.ErrNoDocument) {
		state := s.initial()
		if err := s.put(ctx, state); err != nil {
			var zero T
			return zero, err
		}
		return state, nil
	}
	if err != nil {
		var zero T
		return zero, err
	}
	var state T
	if err := json.Unmarshal(raw, &state); err != nil {
		var zero T
		return zero, fmt.Errorf("decode %s/%s: %w", s.kind, s.id, err)
	}
	return state, nil
}

// Mutate applies fn to the current state and persists the result.
// Last writer wins; no conflict detection.
func (s *Singleton[T]) Mutate(ctx context.Context, fn func(T) T) (T, error) {
	current, err := s.Get(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	next := fn(current)
	if err := s.put(ctx, next); err != nil {
		var zero T
		return zero, err
	}
	return next, nil
}

func (s *Singleton[T]) put(ctx context.Context, state T) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", s.kind, s.id, err)
	}
	return s.store.Put(ctx, s.kind, s.id, raw)
}
