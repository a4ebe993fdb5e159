/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/entitybond/errors"
	"github.com/suparena/entitybond/internal/ctxlog"
	"github.com/suparena/entitybond/storagemodels"
)

// Query pages through every item matching params and returns those whose
// EntityType is T. In a single-table layout a partition often holds several
// entity types (a parent and its children), so items of other types are skipped.
// params.Limit caps the number of returned items.
func (d *DynamodbDataStore[T]) Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error) {
	input, err := d.queryInput(params)
	if err != nil {
		return nil, err
	}

	want := entityType[T]()
	results := make([]T, 0)
	pages := 0

	paginator := sdk.NewQueryPaginator(d.client, input)
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("query error: %w", err)
		}
		pages++

		for _, item := range out.Items {
			if !isEntityType(item, want) {
				continue
			}
			var v T
			if err := attributevalue.UnmarshalMap(item, &v); err != nil {
				return nil, fmt.Errorf("failed to unmarshal item for EntityType %q: %w", want, err)
			}
			results = append(results, v)
			if params.Limit != nil && len(results) >= int(*params.Limit) {
				return results, nil
			}
		}
	}

	ctxlog.FromContext(ctx).Debug("query finished", "entityType", want, "items", len(results), "pages", pages)
	return results, nil
}

func (d *DynamodbDataStore[T]) queryInput(params *storagemodels.QueryParams) (*sdk.QueryInput, error) {
	if params == nil || params.KeyConditionExpression == "" {
		return nil, errors.NewValidationError("KeyConditionExpression", "must not be empty")
	}

	if params.Limit != nil && *params.Limit < 1 {
		return nil, errors.NewValidationError("Limit", "must be at least 1")
	}

	table := params.TableName
	if table == "" {
		table = d.tableName
	}

	return &sdk.QueryInput{
		TableName:                 &table,
		KeyConditionExpression:    &params.KeyConditionExpression,
		ExpressionAttributeValues: params.ExpressionAttributeValues,
		FilterExpression:          params.FilterExpression,
		IndexName:                 params.IndexName,
		Limit:                     params.Limit,
		ScanIndexForward:          params.ScanIndexForward,
	}, nil
}

func isEntityType(item map[string]types.AttributeValue, want string) bool {
	attr, ok := item[AttrEntityType].(*types.AttributeValueMemberS)
	return ok && attr.Value == want
}
