/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entitybond

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/suparena/entitybond/datastore"
	"github.com/suparena/entitybond/registry"
)

// Stores is a thread-safe directory holding one DataStore per entity type.
// Resolvers use it to reach the datastore of the related type.
type Stores struct {
	mu     sync.RWMutex
	stores map[reflect.Type]any
}

// NewStores creates an empty Stores
func NewStores() *Stores {
	return &Stores{
		stores: make(map[reflect.Type]any),
	}
}

// RegisterStore adds the datastore for entity type T
func RegisterStore[T any](s *Stores, ds datastore.DataStore[T]) error {
	t := registry.Indirect(reflect.TypeFor[T]())

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.stores[t]; exists {
		return fmt.Errorf("datastore for %s already registered", registry.TypeName(t))
	}
	s.stores[t] = ds
	return nil
}

// StoreFor returns the datastore registered for entity type T
func StoreFor[T any](s *Stores) (datastore.DataStore[T], error) {
	t := registry.Indirect(reflect.TypeFor[T]())

	s.mu.RLock()
	defer s.mu.RUnlock()

	ds, exists := s.stores[t]
	if !exists {
		return nil, fmt.Errorf("datastore for %s not found", registry.TypeName(t))
	}
	return ds.(datastore.DataStore[T]), nil
}

// RemoveStore deletes the datastore registered for entity type T
func RemoveStore[T any](s *Stores) error {
	t := registry.Indirect(reflect.TypeFor[T]())

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.stores[t]; !exists {
		return fmt.Errorf("datastore for %s not found", registry.TypeName(t))
	}
	delete(s.stores, t)
	return nil
}

// Types returns the names of all entity types with a registered datastore, sorted
func (s *Stores) Types() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.stores))
	for t := range s.stores {
		names = append(names, registry.TypeName(t))
	}
	sort.Strings(names)
	return names
}
