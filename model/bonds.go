/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package model

import (
	"reflect"

	"github.com/suparena/entitybond/registry"
	"github.com/suparena/entitybond/relation"
)

// Bond registers fn as the resolver for relation on entity type T in reg
// (registry.Default when reg is nil). The owner handed to fn is the *T being
// resolved; args are only non-empty when the bond is invoked through Call.
func Bond[T any](reg *registry.BondRegistry, name string, fn func(owner *T, args ...any) any) {
	registryOr(reg).Bond(reflect.TypeFor[T](), name, func(owner any, args ...any) any {
		return fn(owner.(*T), args...)
	})
}

// BondRelation is Bond for the common case of a resolver that builds a
// relationship descriptor from its owner and takes no arguments.
func BondRelation[T any](reg *registry.BondRegistry, name string, fn func(owner *T) relation.Relation) {
	Bond(reg, name, func(owner *T, _ ...any) any {
		return fn(owner)
	})
}

// Breakup removes the bond relation from entity type T.
func Breakup[T any](reg *registry.BondRegistry, name string) {
	registryOr(reg).Breakup(reflect.TypeFor[T](), name)
}

// GetBonds returns the resolvers bonded to entity type T.
func GetBonds[T any](reg *registry.BondRegistry) map[string]registry.Resolver {
	return registryOr(reg).Bonds(reflect.TypeFor[T]())
}

// IsBondedWith reports whether entity type T has a bond called name.
func IsBondedWith[T any](reg *registry.BondRegistry, name string) bool {
	return registryOr(reg).IsBondedWith(reflect.TypeFor[T](), name)
}

// GetBondResolver returns the resolver bonded to entity type T under name,
// or a NotBondedError.
func GetBondResolver[T any](reg *registry.BondRegistry, name string) (registry.Resolver, error) {
	return registryOr(reg).Resolver(reflect.TypeFor[T](), name)
}

func registryOr(reg *registry.BondRegistry) *registry.BondRegistry {
	if reg == nil {
		return registry.Default
	}
	return reg
}
