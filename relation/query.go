/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package relation

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/entitybond/storagemodels"
)

// queryOptions configures the params built by ByPartition
type queryOptions struct {
	indexName     string
	partitionAttr string
	sortAttr      string
	sortPrefix    string
	limit         int32
	descending    bool
}

// QueryOption is a functional option for ByPartition
type QueryOption func(*queryOptions)

// OnIndex queries a secondary index whose key attributes are pkAttr and skAttr
func OnIndex(indexName, pkAttr, skAttr string) QueryOption {
	return func(o *queryOptions) {
		o.indexName = indexName
		o.partitionAttr = pkAttr
		o.sortAttr = skAttr
	}
}

// SortKeyPrefix restricts results to sort keys starting with prefix
func SortKeyPrefix(prefix string) QueryOption {
	return func(o *queryOptions) {
		o.sortPrefix = prefix
	}
}

// Limit caps the number of related items
func Limit(n int32) QueryOption {
	return func(o *queryOptions) {
		o.limit = n
	}
}

// Descending reverses sort key order
func Descending() QueryOption {
	return func(o *queryOptions) {
		o.descending = true
	}
}

// ByPartition builds query params selecting every item whose partition key equals pk.
func ByPartition(pk string, opts ...QueryOption) *storagemodels.QueryParams {
	o := queryOptions{partitionAttr: "PK", sortAttr: "SK"}
	for _, opt := range opts {
		opt(&o)
	}

	params := &storagemodels.QueryParams{
		KeyConditionExpression: o.partitionAttr + " = " + storagemodels.PartitionKeyPlaceholder,
		ExpressionAttributeValues: map[string]types.AttributeValue{
			storagemodels.PartitionKeyPlaceholder: &types.AttributeValueMemberS{Value: pk},
		},
	}

	if o.sortPrefix != "" {
		params.KeyConditionExpression += " AND begins_with(" + o.sortAttr + ", " + storagemodels.SortKeyPlaceholder + ")"
		params.ExpressionAttributeValues[storagemodels.SortKeyPlaceholder] = &types.AttributeValueMemberS{Value: o.sortPrefix}
	}
	if o.indexName != "" {
		params.IndexName = aws.String(o.indexName)
	}
	if o.limit > 0 {
		params.Limit = aws.Int32(o.limit)
	}
	if o.descending {
		params.ScanIndexForward = aws.Bool(false)
	}
	return params
}
