/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/entitybond/storagemodels"
)

// DataStore persists entities of type T. Relation descriptors execute their
// queries through it.
type DataStore[T any] interface {
	// GetOne returns the entity stored under key, or a NotFoundError. Key is a
	// single identifier; stores whose primary key combines several fields may
	// not be able to address every entity this way.
	GetOne(ctx context.Context, key string) (*T, error)

	Put(ctx context.Context, entity T) error

	Delete(ctx context.Context, key string) error

	// Query returns every entity matching params.
	Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error)
}
