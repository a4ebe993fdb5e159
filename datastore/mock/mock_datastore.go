/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of datastore.DataStore for testing
package mock

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/suparena/entitybond/errors"
	"github.com/suparena/entitybond/storagemodels"
)

// DataStore is a mock implementation of datastore.DataStore[T] for testing
type DataStore[T any] struct {
	mu            sync.RWMutex
	data          map[string]T
	queryFunc     func(ctx context.Context, params *storagemodels.QueryParams) ([]T, error)
	getKeyFunc    func(entity T) string
	partitionFunc func(entity T) string
	sortKeyFunc   func(entity T) string
	getError      error
	putError      error
	deleteError   error
	queryError    error

	gets    atomic.Int64
	queries atomic.Int64
}

// New creates a new mock DataStore
func New[T any]() *DataStore[T] {
	return &DataStore[T]{
		data: make(map[string]T),
	}
}

// WithGetKeyFunc sets a custom function to extract keys from entities
func (m *DataStore[T]) WithGetKeyFunc(f func(T) string) *DataStore[T] {
	m.getKeyFunc = f
	return m
}

// WithPartitionKeyFunc sets the function Query matches against the ":pk" placeholder
func (m *DataStore[T]) WithPartitionKeyFunc(f func(T) string) *DataStore[T] {
	m.partitionFunc = f
	return m
}

// WithSortKeyFunc sets the function Query matches against the ":sk" prefix
func (m *DataStore[T]) WithSortKeyFunc(f func(T) string) *DataStore[T] {
	m.sortKeyFunc = f
	return m
}

// WithQueryFunc replaces the default Query behavior
func (m *DataStore[T]) WithQueryFunc(f func(ctx context.Context, params *storagemodels.QueryParams) ([]T, error)) *DataStore[T] {
	m.queryFunc = f
	return m
}

// WithGetError makes GetOne operations return an error
func (m *DataStore[T]) WithGetError(err error) *DataStore[T] {
	m.getError = err
	return m
}

// WithPutError makes Put operations return an error
func (m *DataStore[T]) WithPutError(err error) *DataStore[T] {
	m.putError = err
	return m
}

// WithDeleteError makes Delete operations return an error
func (m *DataStore[T]) WithDeleteError(err error) *DataStore[T] {
	m.deleteError = err
	return m
}

// WithQueryError makes Query operations return an error
func (m *DataStore[T]) WithQueryError(err error) *DataStore[T] {
	m.queryError = err
	return m
}

// GetOne retrieves an entity by key
func (m *DataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	m.gets.Add(1)
	if m.getError != nil {
		return nil, m.getError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if entity, exists := m.data[key]; exists {
		return &entity, nil
	}

	var zero T
	return nil, errors.NewNotFoundError(fmt.Sprintf("%T", zero), key)
}

// Put stores an entity
func (m *DataStore[T]) Put(ctx context.Context, entity T) error {
	if m.putError != nil {
		return m.putError
	}

	key := m.extractKey(entity)
	if key == "" {
		return errors.NewValidationError("key", "unable to extract key from entity")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = entity
	return nil
}

// Delete removes an entity by key
func (m *DataStore[T]) Delete(ctx context.Context, key string) error {
	if m.deleteError != nil {
		return m.deleteError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; !exists {
		var zero T
		return errors.NewNotFoundError(fmt.Sprintf("%T", zero), key)
	}

	delete(m.data, key)
	return nil
}

// Query returns the entities whose partition key equals ":pk" and whose sort key
// starts with ":sk", in key order. Without a partition key function every entity matches.
func (m *DataStore[T]) Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error) {
	m.queries.Add(1)
	if m.queryError != nil {
		return nil, m.queryError
	}
	if m.queryFunc != nil {
		return m.queryFunc(ctx, params)
	}

	if params != nil && params.Limit != nil && *params.Limit < 0 {
		return nil, errors.NewValidationError("Limit", "must not be negative")
	}

	pk, hasPK := params.PartitionKey()
	sk, hasSK := params.SortKeyPrefix()

	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	results := make([]T, 0, len(keys))
	for _, k := range keys {
		v := m.data[k]
		if hasPK && m.partitionFunc != nil && m.partitionFunc(v) != pk {
			continue
		}
		if hasSK && m.sortKeyFunc != nil && !strings.HasPrefix(m.sortKeyFunc(v), sk) {
			continue
		}
		results = append(results, v)
	}
	if params != nil && params.Limit != nil && int(*params.Limit) < len(results) {
		results = results[:*params.Limit]
	}
	return results, nil
}

// Helper methods for testing

// SetData directly sets the internal data map (for testing)
func (m *DataStore[T]) SetData(data map[string]T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
}

// GetData returns a copy of the internal data map (for testing)
func (m *DataStore[T]) GetData() map[string]T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]T, len(m.data))
	for k, v := range m.data {
		result[k] = v
	}
	return result
}

// Count returns the number of stored entities
func (m *DataStore[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// GetCalls returns how many times GetOne was called
func (m *DataStore[T]) GetCalls() int64 {
	return m.gets.Load()
}

// QueryCalls returns how many times Query was called
func (m *DataStore[T]) QueryCalls() int64 {
	return m.queries.Load()
}

// Clear removes all data
func (m *DataStore[T]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]T)
}

func (m *DataStore[T]) extractKey(entity T) string {
	if m.getKeyFunc != nil {
		return m.getKeyFunc(entity)
	}
	return fmt.Sprintf("key_%v", entity)
}
