/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package relation

import (
	"context"
	"fmt"
	"reflect"

	"github.com/suparena/entitybond/datastore"
	"github.com/suparena/entitybond/errors"
	"github.com/suparena/entitybond/storagemodels"
)

// Relation is an unexecuted relationship query. GetResults runs it and returns a
// single related entity, a slice of them, or nil when nothing is related.
type Relation interface {
	GetResults(ctx context.Context) (any, error)
}

// Func adapts a plain function to the Relation interface.
type Func func(ctx context.Context) (any, error)

// GetResults calls f(ctx).
func (f Func) GetResults(ctx context.Context) (any, error) {
	return f(ctx)
}

// HasMany relates an owner to every T stored under the owner's partition.
type HasMany[T any] struct {
	store  datastore.DataStore[T]
	params *storagemodels.QueryParams
}

// NewHasMany creates a HasMany relation that runs params against store.
func NewHasMany[T any](store datastore.DataStore[T], params *storagemodels.QueryParams) *HasMany[T] {
	return &HasMany[T]{store: store, params: params}
}

// Get runs the query and returns the related entities.
func (r *HasMany[T]) Get(ctx context.Context) ([]T, error) {
	items, err := r.store.Query(ctx, r.params)
	if err != nil {
		var zero T
		return nil, fmt.Errorf("has many %T: %w", zero, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// GetResults implements Relation. The result is a []T.
func (r *HasMany[T]) GetResults(ctx context.Context) (any, error) {
	return r.Get(ctx)
}

// HasOne relates an owner to the single T stored under key.
type HasOne[T any] struct {
	store datastore.DataStore[T]
	key   string
}

// NewHasOne creates a HasOne relation fetching key from store.
func NewHasOne[T any](store datastore.DataStore[T], key string) *HasOne[T] {
	return &HasOne[T]{store: store, key: key}
}

// Get returns the related entity, or nil if it does not exist.
func (r *HasOne[T]) Get(ctx context.Context) (*T, error) {
	return getOne(ctx, r.store, r.key, "has one")
}

// GetResults implements Relation. The result is a *T or nil.
func (r *HasOne[T]) GetResults(ctx context.Context) (any, error) {
	return orNil(r.Get(ctx))
}

// BelongsTo relates an owner to its parent T through a foreign key held by the owner.
// An empty foreign key means the owner has no parent and nothing is queried.
type BelongsTo[T any] struct {
	store      datastore.DataStore[T]
	foreignKey string
}

// NewBelongsTo creates a BelongsTo relation fetching foreignKey from store.
func NewBelongsTo[T any](store datastore.DataStore[T], foreignKey string) *BelongsTo[T] {
	return &BelongsTo[T]{store: store, foreignKey: foreignKey}
}

// Get returns the parent entity, or nil if there is none.
func (r *BelongsTo[T]) Get(ctx context.Context) (*T, error) {
	if r.foreignKey == "" {
		return nil, nil
	}
	return getOne(ctx, r.store, r.foreignKey, "belongs to")
}

// GetResults implements Relation. The result is a *T or nil.
func (r *BelongsTo[T]) GetResults(ctx context.Context) (any, error) {
	return orNil(r.Get(ctx))
}

func getOne[T any](ctx context.Context, store datastore.DataStore[T], key, kind string) (*T, error) {
	item, err := store.GetOne(ctx, key)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		var zero T
		return nil, fmt.Errorf("%s %T: %w", kind, zero, err)
	}
	return item, nil
}

// orNil keeps a missing entity as an untyped nil so callers can compare against nil.
func orNil[T any](item *T, err error) (any, error) {
	if err != nil || item == nil {
		return nil, err
	}
	return item, nil
}

// As reports whether v is a usable Relation. Nil pointers, maps and funcs
// holding a Relation type are rejected.
func As(v any) (Relation, bool) {
	r, ok := v.(Relation)
	if !ok {
		return nil, false
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Slice, reflect.Chan:
		if rv.IsNil() {
			return nil, false
		}
	}
	return r, true
}
