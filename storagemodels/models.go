/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Placeholder names used by relation queries in ExpressionAttributeValues.
const (
	PartitionKeyPlaceholder = ":pk"
	SortKeyPlaceholder      = ":sk"
)

// QueryParams defines parameters for a DynamoDB Query operation.
type QueryParams struct {
	// TableName is the DynamoDB table name. Datastores fill in their own table when empty.
	TableName string
	// KeyConditionExpression is the primary condition for the query.
	KeyConditionExpression string
	// FilterExpression is an optional filter expression.
	FilterExpression *string
	// ExpressionAttributeValues contains the values for expression placeholders.
	ExpressionAttributeValues map[string]types.AttributeValue
	// IndexName is optional if you wish to query a secondary index.
	IndexName *string
	// Limit defines an optional limit per query page.
	Limit *int32
	// ScanIndexForward specifies the order for index traversal.
	// If true (default), traversal is in ascending order.
	ScanIndexForward *bool
}

// PartitionKey returns the string bound to the ":pk" placeholder, if any.
func (p *QueryParams) PartitionKey() (string, bool) {
	return p.stringValue(PartitionKeyPlaceholder)
}

// SortKeyPrefix returns the string bound to the ":sk" placeholder, if any.
func (p *QueryParams) SortKeyPrefix() (string, bool) {
	return p.stringValue(SortKeyPlaceholder)
}

func (p *QueryParams) stringValue(placeholder string) (string, bool) {
	if p == nil {
		return "", false
	}
	v, ok := p.ExpressionAttributeValues[placeholder].(*types.AttributeValueMemberS)
	if !ok {
		return "", false
	}
	return v.Value, true
}
