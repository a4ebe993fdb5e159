/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/entitybond/errors"
)

// Attribute names of the single-table layout.
const (
	AttrPK         = "PK"
	AttrSK         = "SK"
	AttrEntityType = "EntityType"
)

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

// expandMacros fills every template of indexMap with field values of entity,
// e.g. "SYSTEM#{SystemID}" becomes "SYSTEM#42". A PK or SK template that
// references a missing, empty or non-scalar field is a ValidationError. Any
// other attribute with such a field is left out, keeping secondary indexes sparse.
func expandMacros(indexMap map[string]string, entity any) (map[string]string, error) {
	av, err := attributevalue.MarshalMap(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity for key expansion: %w", err)
	}

	res := make(map[string]string, len(indexMap))
	for attr, template := range indexMap {
		var missing string
		value := macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
			field := strings.Trim(macro, "{}")
			v := scalarString(av[field])
			if v == "" && missing == "" {
				missing = field
			}
			return v
		})

		if missing != "" {
			if attr == AttrPK || attr == AttrSK {
				return nil, errors.NewValidationError(attr, fmt.Sprintf("field %s referenced by %q is empty", missing, template))
			}
			continue
		}
		res[attr] = value
	}
	return res, nil
}

func scalarString(val types.AttributeValue) string {
	switch tv := val.(type) {
	case *types.AttributeValueMemberS:
		return tv.Value
	case *types.AttributeValueMemberN:
		return tv.Value
	case *types.AttributeValueMemberBOOL:
		return fmt.Sprintf("%v", tv.Value)
	default:
		return ""
	}
}

// expandStringKey substitutes key for every macro in the primary key templates.
func expandStringKey(indexMap map[string]string, key string) map[string]string {
	expanded := make(map[string]string, 2)
	for _, attr := range []string{AttrPK, AttrSK} {
		if template, ok := indexMap[attr]; ok {
			expanded[attr] = macroPattern.ReplaceAllLiteralString(template, key)
		}
	}
	return expanded
}

// buildKeyFromExpanded builds a DynamoDB key from the expanded index map.
// Both PK and SK must be present and non-empty.
func buildKeyFromExpanded(expanded map[string]string) (map[string]types.AttributeValue, error) {
	pk, sk := expanded[AttrPK], expanded[AttrSK]
	if pk == "" || sk == "" {
		return nil, fmt.Errorf("expanded index map missing valid %s or %s", AttrPK, AttrSK)
	}

	return map[string]types.AttributeValue{
		AttrPK: &types.AttributeValueMemberS{Value: pk},
		AttrSK: &types.AttributeValueMemberS{Value: sk},
	}, nil
}
