/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("User", "123")

	expected := `User with key "123" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "table",
			message:  "must not be empty",
			expected: `validation failed for field "table": must not be empty`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "missing required fields",
			expected: "validation failed: missing required fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !IsValidationError(err) {
				t.Error("IsValidationError should return true for ValidationError")
			}
		})
	}
}

func TestRelationshipErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		check    func(error) bool
		expected string
	}{
		{
			name:     "not bonded",
			err:      NewNotBondedError("User", "Posts"),
			sentinel: ErrNotBonded,
			check:    IsNotBonded,
			expected: `the relationship "Posts" is not bonded with User`,
		},
		{
			name:     "invalid result",
			err:      NewInvalidRelationshipResultError("User", "Posts", 42),
			sentinel: ErrInvalidRelationshipResult,
			check:    IsInvalidRelationshipResult,
			expected: "User.Posts must return a relationship instance, got int",
		},
		{
			name:     "unknown relation",
			err:      NewUnknownRelationError("User", "Teams"),
			sentinel: ErrUnknownRelation,
			check:    IsUnknownRelation,
			expected: `User has no relationship named "Teams"`,
		},
		{
			name:     "undefined method",
			err:      NewUndefinedMethodError("User", "Frobnicate"),
			sentinel: ErrUndefinedMethod,
			check:    IsUndefinedMethod,
			expected: "call to undefined method User.Frobnicate()",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, tt.err.Error())
			}
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("%T should match %v", tt.err, tt.sentinel)
			}
			if !tt.check(tt.err) {
				t.Errorf("helper should return true for %T", tt.err)
			}
		})
	}
}

func TestInvalidRelationshipResultNilValue(t *testing.T) {
	err := NewInvalidRelationshipResultError("User", "Posts", nil)

	var target *InvalidRelationshipResultError
	if !errors.As(err, &target) {
		t.Fatal("errors.As should unwrap InvalidRelationshipResultError")
	}
	if target.Got != "<nil>" {
		t.Errorf("Expected Got %q, got %q", "<nil>", target.Got)
	}
}

func TestErrorWrapping(t *testing.T) {
	original := NewNotBondedError("User", "Posts")
	wrapped := fmt.Errorf("resolve failed: %w", original)

	if !errors.Is(wrapped, ErrNotBonded) {
		t.Error("Wrapped NotBondedError should still match ErrNotBonded")
	}

	if !IsNotBonded(wrapped) {
		t.Error("IsNotBonded should work with wrapped errors")
	}
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrNotFound,
		ErrInvalidInput,
		ErrNoIndexMap,
		ErrNotBonded,
		ErrInvalidRelationshipResult,
		ErrUnknownRelation,
		ErrUndefinedMethod,
	}

	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v matches %v", err1, err2)
			}
		}
	}
}
