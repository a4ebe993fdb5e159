/*
Package errors provides semantic error types for the entitybond library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound                  = errors.New("entity not found")
	    ErrInvalidInput              = errors.New("invalid input")
	    ErrNoIndexMap                = errors.New("no index map found for type")
	    ErrNotBonded                 = errors.New("relationship not bonded")
	    ErrInvalidRelationshipResult = errors.New("invalid relationship result")
	    ErrUnknownRelation           = errors.New("unknown relationship")
	    ErrUndefinedMethod           = errors.New("undefined method")
	)

ErrNotBonded and ErrInvalidRelationshipResult signal misconfiguration: a
caller assumed a bond that was never registered, or a resolver returned
something that is not a relationship descriptor. Neither is retryable.

Usage:

	posts, err := model.RelationValue(ctx, user, "Posts")
	if err != nil {
	    if errors.IsInvalidRelationshipResult(err) {
	        // fix the resolver registered for "Posts"
	    }
	    return nil, err
	}

	// Create typed errors
	err := errors.NewNotBondedError("User", "Posts")
	err := errors.NewValidationError("table", "must not be empty")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
