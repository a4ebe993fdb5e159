/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sync"
)

// indexMapRegistry holds the DynamoDB key templates of each entity type.
var (
	indexMapRegistry = make(map[reflect.Type]map[string]string)
	indexMapMu       sync.RWMutex
)

// RegisterIndexMap associates a Go type T with a given DynamoDB index map (PK, SK, etc.).
// The map is copied, later changes by the caller have no effect.
func RegisterIndexMap[T any](idxMap map[string]string) {
	t := Indirect(reflect.TypeFor[T]())

	cp := make(map[string]string, len(idxMap))
	for k, v := range idxMap {
		cp[k] = v
	}

	indexMapMu.Lock()
	defer indexMapMu.Unlock()
	indexMapRegistry[t] = cp
}

// GetIndexMap retrieves the indexMap for type T, if any.
func GetIndexMap[T any]() (map[string]string, bool) {
	return IndexMapFor(reflect.TypeFor[T]())
}

// IndexMapFor retrieves the indexMap registered for t, if any.
func IndexMapFor(t reflect.Type) (map[string]string, bool) {
	t = Indirect(t)

	indexMapMu.RLock()
	defer indexMapMu.RUnlock()
	m, ok := indexMapRegistry[t]
	return m, ok
}
