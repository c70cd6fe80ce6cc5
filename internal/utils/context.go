// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP request and response bodies, HTTP client initialization, JWT token
// generation and validation, and other common operations.
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

// MemberIDCtxKey is the key used to store the identifier of the member that
// presented a valid token with the request.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.MemberIDCtxKey, int64(42))
var MemberIDCtxKey = contextKey("memberID")

// GetMemberIDFromContext retrieves the member identifier from the context.
//
// Returns the member ID of type int64 and an ok flag:
//   - ok == true : value is found and has the correct int64 type
//   - ok == false: value is missing or has an unexpected type
func GetMemberIDFromContext(ctx context.Context) (int64, bool) {
	memberID, ok := ctx.Value(MemberIDCtxKey).(int64)
	return memberID, ok
}
