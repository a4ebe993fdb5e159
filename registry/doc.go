/*
Package registry holds the process-wide registries of entitybond.

Bond Registry:
Maps a concrete entity type to named relationship resolvers. Bonds are scoped
to the exact type they were registered for; two entity types that embed the
same base model never see each other's bonds.

	reg := registry.NewBondRegistry()
	reg.Bond(reflect.TypeFor[User](), "Posts", func(owner any, _ ...any) any {
	    u := owner.(*User)
	    return relation.NewHasMany(posts, relation.ByPartition("USER#"+u.ID))
	})

	reg.IsBondedWith(reflect.TypeFor[User](), "Posts")  // true
	reg.IsBondedWith(reflect.TypeFor[Admin](), "Posts") // false

Most callers use the typed helpers in package model instead of reflect.Type.
registry.Default is used by entities that were not given their own registry.

Index Map Registry:
Associates Go types with DynamoDB key patterns:

	registry.RegisterIndexMap[User](map[string]string{
	    "PK": "USER#{ID}",
	    "SK": "USER#{ID}",
	})

Type Names:
Optional display names used in error messages:

	registry.RegisterTypeName[User]("User")

All registries are thread-safe and are usually populated during initialization.
*/
package registry
