/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"reflect"
	"sync"
)

// typeNames holds display names for entity types, used in error messages.
var (
	typeNames   = make(map[reflect.Type]string)
	typeNamesMu sync.RWMutex
)

// RegisterTypeName associates a display name (like "User") with type T.
// If a different name is already registered for T, it panics to prevent accidental overrides.
func RegisterTypeName[T any](name string) {
	t := Indirect(reflect.TypeFor[T]())

	typeNamesMu.Lock()
	defer typeNamesMu.Unlock()

	if existing, exists := typeNames[t]; exists && existing != name {
		panic(fmt.Sprintf("type registry: type %s already registered as %q", t, existing))
	}
	typeNames[t] = name
}

// TypeName returns the display name registered for t, or its package-qualified
// Go name when none was registered.
func TypeName(t reflect.Type) string {
	t = Indirect(t)
	if t == nil {
		return "<nil>"
	}

	typeNamesMu.RLock()
	name, ok := typeNames[t]
	typeNamesMu.RUnlock()

	if ok {
		return name
	}
	return t.String()
}
