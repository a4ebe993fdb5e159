/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package testmodels

import (
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"
)

// Timestamp is a strfmt.DateTime stored in DynamoDB as an RFC 3339 string.
type Timestamp struct {
	strfmt.DateTime
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{DateTime: strfmt.DateTime(t)}
}

// MarshalDynamoDBAttributeValue implements attributevalue.Marshaler.
func (t Timestamp) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberS{Value: t.DateTime.String()}, nil
}

// UnmarshalDynamoDBAttributeValue implements attributevalue.Unmarshaler.
func (t *Timestamp) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	s, ok := av.(*types.AttributeValueMemberS)
	if !ok {
		return fmt.Errorf("timestamp: expected string attribute, got %T", av)
	}
	dt, err := strfmt.ParseDateTime(s.Value)
	if err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	t.DateTime = dt
	return nil
}
