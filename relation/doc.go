/*
Package relation provides the relationship descriptors that resolvers return.

A descriptor knows how to fetch its related records but does not run the
query until GetResults is called:

	type Relation interface {
	    GetResults(ctx context.Context) (any, error)
	}

Descriptors:
  - HasMany[T]: every T under the owner's partition, result []T
  - HasOne[T]: a single T by key, result *T or nil
  - BelongsTo[T]: the parent T named by the owner's foreign key, result *T or nil
  - Func: adapts an ad-hoc function

Query params for HasMany are built with ByPartition:

	relation.NewHasMany(records, relation.ByPartition("SYSTEM#"+s.ID,
	    relation.SortKeyPrefix("RECORD#"),
	    relation.Limit(50),
	))
*/
package relation
