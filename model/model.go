/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package model

import (
	"reflect"

	"github.com/suparena/entitybond/errors"
	"github.com/suparena/entitybond/registry"
)

// Entity is implemented by every struct that embeds Model. RelationValue and
// Call only depend on this interface, so entities may override any of it.
type Entity interface {
	// Relation returns the cached value of a loaded relationship.
	Relation(name string) (any, bool)
	// SetRelation caches value as the loaded relationship name.
	SetRelation(name string, value any)
	// UnsetRelation forgets a loaded relationship.
	UnsetRelation(name string)
	// CallUndefined handles a call that matched no method and no bond.
	CallUndefined(method string, args []any) (any, error)
	// BondRegistry returns the registry holding the entity type's bonds.
	BondRegistry() *registry.BondRegistry
}

// Model is the embeddable base of an entity. It holds the relationship cache
// of one instance and the bond registry it resolves against.
//
// The cache belongs to the Model it was written through. A value copy of an
// entity starts with an empty cache and never writes into the original's.
// A Model is not safe for concurrent use; callers sharing an instance across
// goroutines must serialize access themselves.
type Model struct {
	relations map[string]any
	owner     *Model
	bonds     *registry.BondRegistry
}

// UseBonds makes the entity resolve bonds from reg instead of registry.Default.
func (m *Model) UseBonds(reg *registry.BondRegistry) {
	m.bonds = reg
}

// BondRegistry implements Entity.
func (m *Model) BondRegistry() *registry.BondRegistry {
	if m.bonds == nil {
		return registry.Default
	}
	return m.bonds
}

// cache returns the relations written through m, or nil for a copy.
func (m *Model) cache() map[string]any {
	if m.owner != m {
		return nil
	}
	return m.relations
}

// Relation implements Entity.
func (m *Model) Relation(name string) (any, bool) {
	v, ok := m.cache()[name]
	return v, ok
}

// RelationLoaded reports whether name has been loaded on this instance.
func (m *Model) RelationLoaded(name string) bool {
	_, ok := m.cache()[name]
	return ok
}

// SetRelation implements Entity.
func (m *Model) SetRelation(name string, value any) {
	if m.owner != m || m.relations == nil {
		m.relations = make(map[string]any)
		m.owner = m
	}
	m.relations[name] = value
}

// UnsetRelation implements Entity.
func (m *Model) UnsetRelation(name string) {
	delete(m.cache(), name)
}

// ClearRelations forgets every loaded relationship.
func (m *Model) ClearRelations() {
	m.relations = nil
	m.owner = nil
}

// Relations returns a copy of the loaded relationships.
func (m *Model) Relations() map[string]any {
	cache := m.cache()
	out := make(map[string]any, len(cache))
	for k, v := range cache {
		out[k] = v
	}
	return out
}

// CallUndefined implements Entity. The base behavior rejects the call.
func (m *Model) CallUndefined(method string, args []any) (any, error) {
	return nil, errors.NewUndefinedMethodError("", method)
}

// baseMethods are the methods every entity gets from Model. They are never
// treated as relationship methods or dispatch targets.
var baseMethods = func() map[string]struct{} {
	t := reflect.TypeFor[*Model]()
	out := make(map[string]struct{}, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		out[t.Method(i).Name] = struct{}{}
	}
	return out
}()

func typeOf(e Entity) reflect.Type {
	return registry.Indirect(reflect.TypeOf(e))
}

func typeName(e Entity) string {
	return registry.TypeName(reflect.TypeOf(e))
}

// definedMethod returns the exported method called name on the concrete entity type.
func definedMethod(e Entity, name string) (reflect.Value, bool) {
	if name == "" {
		return reflect.Value{}, false
	}
	if _, ok := baseMethods[name]; ok {
		return reflect.Value{}, false
	}
	m := reflect.ValueOf(e).MethodByName(name)
	return m, m.IsValid()
}

// relationMethod returns name if it can act as a relationship method: no
// parameters and a single result.
func relationMethod(e Entity, name string) (reflect.Value, bool) {
	m, ok := definedMethod(e, name)
	if !ok {
		return reflect.Value{}, false
	}
	if mt := m.Type(); mt.NumIn() != 0 || mt.NumOut() != 1 {
		return reflect.Value{}, false
	}
	return m, true
}
