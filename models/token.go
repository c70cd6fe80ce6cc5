package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// MemberClaims is the claim set of a member token: the standard registered
// claims plus the member's email. The member id travels in "sub".
type MemberClaims struct {
	// Email is the login email of the member the token was issued for.
	Email string `json:"email"`

	jwt.RegisteredClaims
}

// Token wraps a signed member token with convenience accessors.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [MemberClaims] for claim access (subject, email, expiry).
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// MemberClaims is the decoded claim set.
	MemberClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// MemberID is the member identifier parsed from the "sub" claim.
	MemberID int64 `json:"-"`
}

// GetMemberID parses the "sub" claim as a base-10 int64.
func (t *Token) GetMemberID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting member id from token: %w", err)
	}

	memberID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting member id from token to int64: %w", err)
	}

	return memberID, nil
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
