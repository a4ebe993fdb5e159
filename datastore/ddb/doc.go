/*
Package ddb provides a DynamoDB implementation of the DataStore interface.

The DynamodbDataStore supports:
  - Single-table design patterns
  - Macro-based key expansion (e.g., "SYSTEM#{ID}")
  - Typed queries that skip items of other entity types in the same partition
  - Automatic EntityType injection on Put

Key Features:

Macro Expansion:
Keys can use macros that are replaced with entity field values:

	registry.RegisterIndexMap[RatingRecord](map[string]string{
	    "PK": "SYSTEM#{SystemID}",   // Becomes "SYSTEM#42"
	    "SK": "RECORD#{ID}",
	})

GetOne and Delete substitute their string key for every macro of PK and SK.

Relations:
A HasMany relation over a partition runs through Query:

	records, _ := ddb.NewFromConfig[RatingRecord](ctx, cfg)
	rel := relation.NewHasMany[RatingRecord](records, relation.ByPartition("SYSTEM#42",
	    relation.SortKeyPrefix("RECORD#"),
	))

Any value implementing Client can stand in for *dynamodb.Client, which is how
the unit tests run without a table.
*/
package ddb
