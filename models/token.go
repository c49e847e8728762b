package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT bearer token presented by a workflow host calling the
// scan endpoint.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// Caller is a cached copy of the "sub" (subject) claim: the name of the host
// or workflow the token was issued to. It is attached to the request logger
// so scans can be traced back to their origin.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Caller is the subject the token was issued to.
	Caller string `json:"-"`
}

// GetCaller extracts the caller name from the token's "sub" claim.
//
// Returns an error if the subject claim is missing or empty.
func (t *Token) GetCaller() (string, error) {
	caller, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting caller from token: %w", err)
	}
	if caller == "" {
		return "", fmt.Errorf("error extracting caller from token: empty subject")
	}

	return caller, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
