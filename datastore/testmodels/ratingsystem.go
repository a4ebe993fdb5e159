/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package testmodels

import (
	"github.com/suparena/entitybond/model"
	"github.com/suparena/entitybond/registry"
)

// RatingSystem is a ranking scheme that groups rating records.
type RatingSystem struct {
	model.Model

	// Unique identifier for the rating system.
	// Required: true
	ID string `json:"Id" dynamodbav:"Id"`

	// Name of the rating system.
	// Required: true
	Name string `json:"Name" dynamodbav:"Name"`

	// A description of the rating system.
	Description string `json:"Description,omitempty" dynamodbav:"Description,omitempty"`

	// site Url
	SiteURL string `json:"SiteUrl,omitempty" dynamodbav:"SiteUrl,omitempty"`

	// Timestamp when the rating system was created.
	// Format: date-time
	CreatedAt Timestamp `json:"CreatedAt" dynamodbav:"CreatedAt"`
}

// RatingRecord is one player's rating within a RatingSystem.
type RatingRecord struct {
	model.Model

	ID         string    `json:"Id" dynamodbav:"Id"`
	SystemID   string    `json:"SystemId" dynamodbav:"SystemId"`
	PlayerName string    `json:"PlayerName" dynamodbav:"PlayerName"`
	Rating     float64   `json:"Rating" dynamodbav:"Rating"`
	RecordedAt Timestamp `json:"RecordedAt" dynamodbav:"RecordedAt"`
}

// SystemPartition is the partition key shared by a system and its records.
func SystemPartition(systemID string) string {
	return "SYSTEM#" + systemID
}

// RecordSortPrefix prefixes the sort key of every RatingRecord.
const RecordSortPrefix = "RECORD#"

func init() {
	registry.RegisterTypeName[RatingSystem]("RatingSystem")
	registry.RegisterTypeName[RatingRecord]("RatingRecord")

	registry.RegisterIndexMap[RatingSystem](map[string]string{
		"PK": "SYSTEM#{Id}",
		"SK": "SYSTEM#{Id}",
	})
	registry.RegisterIndexMap[RatingRecord](map[string]string{
		"PK": "SYSTEM#{SystemId}",
		"SK": RecordSortPrefix + "{Id}",
	})
}
