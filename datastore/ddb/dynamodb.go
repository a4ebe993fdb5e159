/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"reflect"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	appconfig "github.com/suparena/entitybond/config"
	"github.com/suparena/entitybond/errors"
	"github.com/suparena/entitybond/internal/ctxlog"
	"github.com/suparena/entitybond/registry"
)

// Client is the subset of the DynamoDB API used by DynamodbDataStore.
// *dynamodb.Client satisfies it.
type Client interface {
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
	Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
}

// DynamodbDataStore implements datastore.DataStore[T] on a single DynamoDB table.
type DynamodbDataStore[T any] struct {
	client    Client
	tableName string
}

// NewDynamoDBClient initializes a DynamoDB client from cfg. Static credentials
// are used when set, otherwise the default AWS credential chain applies.
func NewDynamoDBClient(ctx context.Context, cfg appconfig.AWS) (*sdk.Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := sdk.NewFromConfig(awsCfg, func(o *sdk.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	ctxlog.FromContext(ctx).Debug("dynamodb client initialized", "region", cfg.Region, "endpoint", cfg.Endpoint)
	return client, nil
}

// New wraps an existing client. T must have an index map registered.
func New[T any](client Client, tableName string) (*DynamodbDataStore[T], error) {
	if tableName == "" {
		return nil, errors.NewValidationError("tableName", "must not be empty")
	}
	if _, ok := registry.GetIndexMap[T](); !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrNoIndexMap, entityType[T]())
	}
	return &DynamodbDataStore[T]{client: client, tableName: tableName}, nil
}

// NewFromConfig builds a client from cfg and returns a datastore for cfg.Table.
func NewFromConfig[T any](ctx context.Context, cfg *appconfig.Config) (*DynamodbDataStore[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	client, err := NewDynamoDBClient(ctx, cfg.AWS)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	return New[T](client, cfg.Table)
}

// entityType is the EntityType attribute written for T.
func entityType[T any]() string {
	return registry.TypeName(reflect.TypeFor[T]())
}

func (d *DynamodbDataStore[T]) indexMap() (map[string]string, error) {
	indexMap, ok := registry.GetIndexMap[T]()
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrNoIndexMap, entityType[T]())
	}
	return indexMap, nil
}

func (d *DynamodbDataStore[T]) keyFor(key string) (map[string]types.AttributeValue, error) {
	indexMap, err := d.indexMap()
	if err != nil {
		return nil, err
	}
	keyMap, err := buildKeyFromExpanded(expandStringKey(indexMap, key))
	if err != nil {
		return nil, fmt.Errorf("failed to build key: %w", err)
	}
	return keyMap, nil
}

// GetOne retrieves a single item using a string key that is substituted into
// every macro of the PK and SK templates. It only reaches types whose PK and SK
// are built from the same field; use GetByKey for the others. A missing item
// yields a NotFoundError.
func (d *DynamodbDataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	keyMap, err := d.keyFor(key)
	if err != nil {
		return nil, err
	}
	return d.getItem(ctx, keyMap, key)
}

// GetByKey retrieves a single item by its fully expanded PK and SK values,
// e.g. "SYSTEM#oak" and "RECORD#r1".
func (d *DynamodbDataStore[T]) GetByKey(ctx context.Context, pk, sk string) (*T, error) {
	keyMap, err := buildKeyFromExpanded(map[string]string{AttrPK: pk, AttrSK: sk})
	if err != nil {
		return nil, errors.NewValidationError("key", err.Error())
	}
	return d.getItem(ctx, keyMap, pk+"|"+sk)
}

func (d *DynamodbDataStore[T]) getItem(ctx context.Context, keyMap map[string]types.AttributeValue, key string) (*T, error) {
	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: aws.String(d.tableName),
		Key:       keyMap,
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, errors.NewNotFoundError(entityType[T](), key)
	}

	result := new(T)
	if err := attributevalue.UnmarshalMap(out.Item, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return result, nil
}

// Put stores entity with its key attributes expanded from the index map and
// the EntityType attribute set.
func (d *DynamodbDataStore[T]) Put(ctx context.Context, entity T) error {
	indexMap, err := d.indexMap()
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	expanded, err := expandMacros(indexMap, entity)
	if err != nil {
		return err
	}
	if _, err := buildKeyFromExpanded(expanded); err != nil {
		return errors.NewValidationError("key", err.Error())
	}
	for k, v := range expanded {
		av[k] = &types.AttributeValueMemberS{Value: v}
	}
	av[AttrEntityType] = &types.AttributeValueMemberS{Value: entityType[T]()}

	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: aws.String(d.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}

	ctxlog.FromContext(ctx).Debug("item stored", "entityType", entityType[T](), "pk", expanded[AttrPK], "sk", expanded[AttrSK])
	return nil
}

// Delete removes the item stored under key.
func (d *DynamodbDataStore[T]) Delete(ctx context.Context, key string) error {
	keyMap, err := d.keyFor(key)
	if err != nil {
		return err
	}

	_, err = d.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: aws.String(d.tableName),
		Key:       keyMap,
	})
	if err != nil {
		return fmt.Errorf("failed to delete item in DynamoDB: %w", err)
	}
	return nil
}
