//go:build integration
// +build integration

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"

	"github.com/suparena/entitybond/config"
	"github.com/suparena/entitybond/datastore/testmodels"
)

func getRatingSystemStore(t *testing.T) *DynamodbDataStore[testmodels.RatingSystem] {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, proceeding with environment variables")
	}
	if os.Getenv(config.EnvTable) == "" {
		t.Skip(config.EnvTable + " not set, skipping integration test")
	}

	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	store, err := NewFromConfig[testmodels.RatingSystem](context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	return store
}

func TestIntegrationRatingSystemRoundTrip(t *testing.T) {
	store := getRatingSystemStore(t)
	ctx := context.Background()

	rs := testmodels.RatingSystem{
		ID:          "TTOakville",
		Name:        "Oakville Table Tennis Ranking System (test)",
		Description: "This is a test rating system for Oakville Table Tennis Club",
		CreatedAt:   testmodels.NewTimestamp(time.Now()),
	}
	if err := store.Put(ctx, rs); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetOne(ctx, "TTOakville")
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("Rating System: %+v", got)

	if err := store.Delete(ctx, "TTOakville"); err != nil {
		t.Fatal(err)
	}
}
