// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys and identifier
// generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// OwnerScopeCtxKey is the key used to store the owner scope in the context.
// Used together with GetOwnerScopeFromContext for type-safe retrieval of the
// shop identifier from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.OwnerScopeCtxKey, "shop-1")
var OwnerScopeCtxKey = contextKey("ownerScope")

// GetOwnerScopeFromContext retrieves the owner scope from the context.
//
// Returns the owner scope string and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetOwnerScopeFromContext(ctx context.Context) (string, bool) {
	scope, ok := ctx.Value(OwnerScopeCtxKey).(string)
	return scope, ok && scope != ""
}
