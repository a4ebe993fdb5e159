/*
Package entitybond lets entities gain relationships at runtime.

A relationship is normally a method on the entity type that returns a
relationship descriptor. entitybond adds "bonds": named resolvers registered
per entity type that are resolved exactly like defined relationships.

The library is split into:
  - model: the embeddable Model, bond helpers, RelationValue and Call
  - registry: the bond, index map and type name registries
  - relation: HasMany, HasOne and BelongsTo descriptors
  - datastore: persistence interface with DynamoDB and in-memory implementations

Basic Usage:

	type User struct {
	    model.Model
	    ID string
	}

	stores := entitybond.NewStores()
	entitybond.RegisterStore[Post](stores, postStore)

	model.BondRelation(nil, "Posts", func(u *User) relation.Relation {
	    posts, _ := entitybond.StoreFor[Post](stores)
	    return relation.NewHasMany(posts, relation.ByPartition("USER#"+u.ID))
	})

	// first access queries and caches, later accesses hit the cache
	posts, err := model.Related[[]Post](ctx, user, "Posts")

	// bonds can also be invoked like methods, with arguments
	raw, err := model.Call(ctx, user, "Posts")

Bonds are scoped to the concrete entity type. Two types embedding model.Model
never share bonds.
*/
package entitybond
