/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package testmodels

import (
	"context"

	"github.com/suparena/entitybond"
	"github.com/suparena/entitybond/model"
	"github.com/suparena/entitybond/registry"
	"github.com/suparena/entitybond/relation"
)

// BondRelations bonds "Records" on RatingSystem and "System" on RatingRecord.
// Datastores are looked up in stores when a relation is resolved, so they may
// be registered after bonding.
func BondRelations(reg *registry.BondRegistry, stores *entitybond.Stores) {
	model.BondRelation(reg, "Records", func(s *RatingSystem) relation.Relation {
		records, err := entitybond.StoreFor[RatingRecord](stores)
		if err != nil {
			return failed(err)
		}
		return relation.NewHasMany[RatingRecord](records, relation.ByPartition(
			SystemPartition(s.ID),
			relation.SortKeyPrefix(RecordSortPrefix),
		))
	})

	model.BondRelation(reg, "System", func(r *RatingRecord) relation.Relation {
		systems, err := entitybond.StoreFor[RatingSystem](stores)
		if err != nil {
			return failed(err)
		}
		return relation.NewBelongsTo[RatingSystem](systems, r.SystemID)
	})
}

func failed(err error) relation.Relation {
	return relation.Func(func(context.Context) (any, error) {
		return nil, err
	})
}
