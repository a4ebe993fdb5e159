/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sync"

	"github.com/suparena/entitybond/errors"
)

// Resolver produces a relationship for the owning entity passed as owner.
// When resolved as a relation value it is invoked without args and must return
// a relation.Relation; when dispatched as a method call, args are passed through
// and the return value is handed back untouched.
type Resolver func(owner any, args ...any) any

// BondRegistry maps a concrete entity type to its named relationship resolvers.
// Bonds registered for one type are never visible from another, including types
// that embed the same base model.
type BondRegistry struct {
	mu    sync.RWMutex
	bonds map[reflect.Type]map[string]Resolver
}

// Default is the process-wide registry used by entities that were not given one.
var Default = NewBondRegistry()

// NewBondRegistry creates an empty BondRegistry.
func NewBondRegistry() *BondRegistry {
	return &BondRegistry{
		bonds: make(map[reflect.Type]map[string]Resolver),
	}
}

// Bond registers fn as the resolver for relation on type t, replacing any
// previous resolver for the same pair. fn is not inspected until it is resolved.
func (r *BondRegistry) Bond(t reflect.Type, relation string, fn Resolver) {
	t = Indirect(t)

	r.mu.Lock()
	defer r.mu.Unlock()

	byName, ok := r.bonds[t]
	if !ok {
		byName = make(map[string]Resolver)
		r.bonds[t] = byName
	}
	byName[relation] = fn
}

// Breakup removes the bond for relation on type t. Removing an absent bond is a no-op.
func (r *BondRegistry) Breakup(t reflect.Type, relation string) {
	t = Indirect(t)

	r.mu.Lock()
	defer r.mu.Unlock()

	byName, ok := r.bonds[t]
	if !ok {
		return
	}
	delete(byName, relation)
	if len(byName) == 0 {
		delete(r.bonds, t)
	}
}

// Bonds returns a copy of the resolvers registered for type t.
// The result is never nil.
func (r *BondRegistry) Bonds(t reflect.Type) map[string]Resolver {
	t = Indirect(t)

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]Resolver, len(r.bonds[t]))
	for name, fn := range r.bonds[t] {
		out[name] = fn
	}
	return out
}

// IsBondedWith reports whether type t has a resolver registered under relation.
func (r *BondRegistry) IsBondedWith(t reflect.Type, relation string) bool {
	t = Indirect(t)

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.bonds[t][relation]
	return ok
}

// Resolver returns the resolver registered for relation on type t.
// It returns a NotBondedError if there is none.
func (r *BondRegistry) Resolver(t reflect.Type, relation string) (Resolver, error) {
	t = Indirect(t)

	r.mu.RLock()
	fn, ok := r.bonds[t][relation]
	r.mu.RUnlock()

	if !ok {
		return nil, errors.NewNotBondedError(TypeName(t), relation)
	}
	return fn, nil
}

// Reset drops every bond. Intended for test teardown.
func (r *BondRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bonds = make(map[reflect.Type]map[string]Resolver)
}

// Indirect strips pointer indirections so that *User and User share bonds.
func Indirect(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
