/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoIndexMap is returned when no index map is found for a type
	ErrNoIndexMap = errors.New("no index map found for type")

	// ErrNotBonded is returned when a resolver is requested for a relationship that was never bonded
	ErrNotBonded = errors.New("relationship not bonded")

	// ErrInvalidRelationshipResult is returned when a resolver or relation method
	// yields something other than a relationship descriptor
	ErrInvalidRelationshipResult = errors.New("invalid relationship result")

	// ErrUnknownRelation is returned when a name is neither a defined nor a bonded relationship
	ErrUnknownRelation = errors.New("unknown relationship")

	// ErrUndefinedMethod is returned by the base dispatch fallback for unknown methods
	ErrUndefinedMethod = errors.New("undefined method")
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NotBondedError reports a missing bond for an entity type and relationship name.
type NotBondedError struct {
	Type     string
	Relation string
}

func (e *NotBondedError) Error() string {
	return fmt.Sprintf("the relationship %q is not bonded with %s", e.Relation, e.Type)
}

func (e *NotBondedError) Is(target error) bool {
	return target == ErrNotBonded
}

// InvalidRelationshipResultError reports a resolver that returned a non-descriptor value.
type InvalidRelationshipResultError struct {
	Type     string
	Relation string
	// Got is the dynamic type of the offending value
	Got string
}

func (e *InvalidRelationshipResultError) Error() string {
	return fmt.Sprintf("%s.%s must return a relationship instance, got %s", e.Type, e.Relation, e.Got)
}

func (e *InvalidRelationshipResultError) Is(target error) bool {
	return target == ErrInvalidRelationshipResult
}

// UnknownRelationError reports a lookup of a relationship that is neither defined nor bonded.
type UnknownRelationError struct {
	Type     string
	Relation string
}

func (e *UnknownRelationError) Error() string {
	return fmt.Sprintf("%s has no relationship named %q", e.Type, e.Relation)
}

func (e *UnknownRelationError) Is(target error) bool {
	return target == ErrUnknownRelation
}

// UndefinedMethodError is raised for calls that match no method and no bond.
type UndefinedMethodError struct {
	Type   string
	Method string
}

func (e *UndefinedMethodError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("call to undefined method %s()", e.Method)
	}
	return fmt.Sprintf("call to undefined method %s.%s()", e.Type, e.Method)
}

func (e *UndefinedMethodError) Is(target error) bool {
	return target == ErrUndefinedMethod
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entityType, key string) error {
	return &NotFoundError{Type: entityType, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewNotBondedError creates a new NotBondedError
func NewNotBondedError(entityType, relation string) error {
	return &NotBondedError{Type: entityType, Relation: relation}
}

// NewInvalidRelationshipResultError creates a new InvalidRelationshipResultError for value v
func NewInvalidRelationshipResultError(entityType, relation string, v any) error {
	return &InvalidRelationshipResultError{Type: entityType, Relation: relation, Got: fmt.Sprintf("%T", v)}
}

// NewUnknownRelationError creates a new UnknownRelationError
func NewUnknownRelationError(entityType, relation string) error {
	return &UnknownRelationError{Type: entityType, Relation: relation}
}

// NewUndefinedMethodError creates a new UndefinedMethodError
func NewUndefinedMethodError(entityType, method string) error {
	return &UndefinedMethodError{Type: entityType, Method: method}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNotBonded checks if an error is a not bonded error
func IsNotBonded(err error) bool {
	return errors.Is(err, ErrNotBonded)
}

// IsInvalidRelationshipResult checks if an error is an invalid relationship result error
func IsInvalidRelationshipResult(err error) bool {
	return errors.Is(err, ErrInvalidRelationshipResult)
}

// IsUnknownRelation checks if an error is an unknown relation error
func IsUnknownRelation(err error) bool {
	return errors.Is(err, ErrUnknownRelation)
}

// IsUndefinedMethod checks if an error is an undefined method error
func IsUndefinedMethod(err error) bool {
	return errors.Is(err, ErrUndefinedMethod)
}
