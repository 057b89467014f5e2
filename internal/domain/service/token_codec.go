package service

import "time"

// Standard claim names used across the service. The timestamp claims are
// managed by the codec; callers cannot supply their own.
const (
	ClaimSubject   = "sub"
	ClaimIssuedAt  = "iat"
	ClaimExpiresAt = "exp"
)

// TokenCodec defines the interface for encoding claim sets into signed,
// time-bounded token strings and decoding them back.
// This abstracts the token format (e.g., JWT) from the use cases.
type TokenCodec interface {
	// Issue signs the given claims and returns the encoded token string.
	// The issued-at and expiry claims are stamped by the codec; any
	// caller-supplied values for them are overwritten. The caller's map is
	// never mutated. When no lifetime is given, the configured default is used.
	Issue(claims map[string]any, lifetime ...time.Duration) (string, error)

	// Decode verifies the token's signature and expiry and returns the full
	// claim set. Expired tokens fail with domainerrors.ErrTokenExpired;
	// malformed, tampered, or wrongly-signed tokens fail with
	// domainerrors.ErrTokenInvalid.
	Decode(tokenString string) (map[string]any, error)

	// AccessTokenDuration returns the configured default token lifetime.
	AccessTokenDuration() time.Duration
}
