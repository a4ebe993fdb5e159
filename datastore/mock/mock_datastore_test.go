/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock_test

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/entitybond/datastore"
	"github.com/suparena/entitybond/datastore/mock"
	"github.com/suparena/entitybond/errors"
	"github.com/suparena/entitybond/storagemodels"
)

type TestEntity struct {
	ID      string
	OwnerID string
	Name    string
}

var _ datastore.DataStore[TestEntity] = (*mock.DataStore[TestEntity])(nil)

func byOwner(owner string) *storagemodels.QueryParams {
	return &storagemodels.QueryParams{
		KeyConditionExpression: "PK = :pk",
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: owner},
		},
	}
}

func TestMockDataStore(t *testing.T) {
	ctx := context.Background()

	t.Run("BasicOperations", func(t *testing.T) {
		mockStore := mock.New[TestEntity]().
			WithGetKeyFunc(func(e TestEntity) string { return e.ID })

		entity := TestEntity{ID: "123", Name: "Test"}
		if err := mockStore.Put(ctx, entity); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		retrieved, err := mockStore.GetOne(ctx, "123")
		if err != nil {
			t.Fatalf("GetOne failed: %v", err)
		}
		if retrieved.ID != "123" || retrieved.Name != "Test" {
			t.Fatalf("Retrieved entity mismatch: %+v", retrieved)
		}

		if err := mockStore.Delete(ctx, "123"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}

		_, err = mockStore.GetOne(ctx, "123")
		if !errors.IsNotFound(err) {
			t.Fatalf("Expected not found error, got: %v", err)
		}
		if mockStore.GetCalls() != 2 {
			t.Fatalf("Expected 2 GetOne calls, got %d", mockStore.GetCalls())
		}
	})

	t.Run("ErrorSimulation", func(t *testing.T) {
		mockStore := mock.New[TestEntity]()

		putErr := errors.NewValidationError("name", "required")
		mockStore.WithPutError(putErr)
		if err := mockStore.Put(ctx, TestEntity{ID: "123"}); err != putErr {
			t.Fatalf("Expected put error, got: %v", err)
		}

		queryErr := errors.NewValidationError("params", "bad key condition")
		mockStore.WithQueryError(queryErr)
		if _, err := mockStore.Query(ctx, byOwner("x")); err != queryErr {
			t.Fatalf("Expected query error, got: %v", err)
		}
	})

	t.Run("QueryByPartition", func(t *testing.T) {
		mockStore := mock.New[TestEntity]().
			WithGetKeyFunc(func(e TestEntity) string { return e.ID }).
			WithPartitionKeyFunc(func(e TestEntity) string { return e.OwnerID })

		for _, e := range []TestEntity{
			{ID: "3", OwnerID: "a", Name: "Three"},
			{ID: "1", OwnerID: "a", Name: "One"},
			{ID: "2", OwnerID: "b", Name: "Two"},
		} {
			if err := mockStore.Put(ctx, e); err != nil {
				t.Fatalf("Put failed: %v", err)
			}
		}

		results, err := mockStore.Query(ctx, byOwner("a"))
		if err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		if len(results) != 2 || results[0].ID != "1" || results[1].ID != "3" {
			t.Fatalf("Expected [1 3] in key order, got %+v", results)
		}

		limited := byOwner("a")
		limited.Limit = aws.Int32(1)
		results, err = mockStore.Query(ctx, limited)
		if err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		if len(results) != 1 {
			t.Fatalf("Expected 1 result with limit, got %d", len(results))
		}

		limited.Limit = aws.Int32(-1)
		if _, err := mockStore.Query(ctx, limited); !errors.IsValidationError(err) {
			t.Fatalf("Expected ValidationError for negative limit, got %v", err)
		}

		all, err := mockStore.Query(ctx, &storagemodels.QueryParams{})
		if err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		if len(all) != 3 {
			t.Fatalf("Expected 3 results without partition key, got %d", len(all))
		}
		if mockStore.QueryCalls() != 3 {
			t.Fatalf("Expected 3 Query calls, got %d", mockStore.QueryCalls())
		}
	})

	t.Run("CustomQueryFunction", func(t *testing.T) {
		mockStore := mock.New[TestEntity]().
			WithQueryFunc(func(ctx context.Context, params *storagemodels.QueryParams) ([]TestEntity, error) {
				return []TestEntity{{ID: "1", Name: "Filtered"}}, nil
			})

		results, err := mockStore.Query(ctx, byOwner("anything"))
		if err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		if len(results) != 1 {
			t.Fatalf("Expected 1 result, got %d", len(results))
		}
	})

	t.Run("HelperMethods", func(t *testing.T) {
		mockStore := mock.New[TestEntity]()
		mockStore.SetData(map[string]TestEntity{
			"1": {ID: "1"},
			"2": {ID: "2"},
		})

		if mockStore.Count() != 2 {
			t.Fatalf("Expected count 2, got %d", mockStore.Count())
		}

		data := mockStore.GetData()
		delete(data, "1")
		if mockStore.Count() != 2 {
			t.Fatal("GetData should return a copy")
		}

		mockStore.Clear()
		if mockStore.Count() != 0 {
			t.Fatalf("Expected count 0 after Clear, got %d", mockStore.Count())
		}
	})
}
