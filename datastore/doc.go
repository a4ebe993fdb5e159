/*
Package datastore defines the persistence interface that relation descriptors
execute against.

	type DataStore[T any] interface {
	    GetOne(ctx context.Context, key string) (*T, error)
	    Put(ctx context.Context, entity T) error
	    Delete(ctx context.Context, key string) error
	    Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error)
	}

Implementations:
  - ddb: DynamoDB implementation with support for single-table design
  - mock: In-memory implementation for testing

Missing entities are reported as errors.NotFoundError by every implementation,
which lets single-valued relations resolve to nil instead of failing.
*/
package datastore
