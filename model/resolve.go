/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package model

import (
	"context"
	"fmt"

	"github.com/suparena/entitybond/errors"
	"github.com/suparena/entitybond/relation"
)

// RelationValue returns the relationship name of e, loading and caching it on
// first access. Lookup order:
//
//  1. a value already loaded on e
//  2. a relationship method defined on e's type, if it yields a non-nil value
//  3. a bond registered for e's type
//
// A name matching none of these is reported as an UnknownRelationError.
func RelationValue(ctx context.Context, e Entity, name string) (any, error) {
	if v, ok := e.Relation(name); ok {
		return v, nil
	}

	m, defined := relationMethod(e, name)
	if defined {
		v, err := loadRelation(ctx, e, name, m.Call(nil)[0].Interface())
		if err != nil || v != nil {
			return v, err
		}
	}

	if e.BondRegistry().IsBondedWith(typeOf(e), name) {
		return RelationFromMethod(ctx, e, name)
	}

	if defined {
		return nil, nil
	}
	return nil, errors.NewUnknownRelationError(typeName(e), name)
}

// RelationFromMethod resolves name through its bond, or through e's own
// relationship method when no bond exists, then executes the resulting
// descriptor and caches the outcome on e. Bonds win over methods here; use
// RelationValue for the regular lookup order.
func RelationFromMethod(ctx context.Context, e Entity, name string) (any, error) {
	var rel any

	t := typeOf(e)
	reg := e.BondRegistry()
	if reg.IsBondedWith(t, name) {
		fn, err := reg.Resolver(t, name)
		if err != nil {
			return nil, err
		}
		rel = fn(e)
	} else if m, ok := relationMethod(e, name); ok {
		rel = m.Call(nil)[0].Interface()
	} else {
		return nil, errors.NewUnknownRelationError(typeName(e), name)
	}

	return loadRelation(ctx, e, name, rel)
}

// Related is RelationValue with the result asserted to R. A relation that
// resolved to nil yields the zero R.
func Related[R any](ctx context.Context, e Entity, name string) (R, error) {
	var zero R

	v, err := RelationValue(ctx, e, name)
	if err != nil || v == nil {
		return zero, err
	}

	r, ok := v.(R)
	if !ok {
		return zero, fmt.Errorf("relation %s.%s is %T, not %T", typeName(e), name, v, zero)
	}
	return r, nil
}

// Load resolves every named relationship of e that is not loaded yet.
func Load(ctx context.Context, e Entity, names ...string) error {
	for _, name := range names {
		if _, err := RelationValue(ctx, e, name); err != nil {
			return err
		}
	}
	return nil
}

func loadRelation(ctx context.Context, e Entity, name string, v any) (any, error) {
	rel, ok := relation.As(v)
	if !ok {
		return nil, errors.NewInvalidRelationshipResultError(typeName(e), name, v)
	}

	results, err := rel.GetResults(ctx)
	if err != nil {
		return nil, fmt.Errorf("load relation %s.%s: %w", typeName(e), name, err)
	}

	e.SetRelation(name, results)
	return results, nil
}
