// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"passport/config"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/service"
)

// jwtCodec is a concrete implementation of the TokenCodec interface using the JWT standard.
// The signing configuration is fixed at construction time and never mutated,
// so a single codec is safe for unsynchronized concurrent use.
type jwtCodec struct {
	secret []byte            // Secret key for signing tokens.
	method jwt.SigningMethod // Configured HMAC signing method.
	ttl    time.Duration     // Default time-to-live for issued tokens.
}

// NewJWTCodec is the constructor for jwtCodec.
// It takes configuration values to create a new token codec instance and
// fails when the secret is missing or the algorithm is not an HMAC method.
func NewJWTCodec(cfg *config.Config) (service.TokenCodec, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	method := jwt.GetSigningMethod(cfg.JWT.Algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.Errorf("unsupported jwt signing algorithm: %s", cfg.JWT.Algorithm)
	}

	return &jwtCodec{
		secret: []byte(cfg.JWT.Secret),
		method: method,
		ttl:    time.Duration(cfg.JWT.ExpireMinutes) * time.Minute,
	}, nil
}

// Issue merges the reserved timestamp claims into a copy of the caller's
// claim set, signs it, and returns the encoded token string.
// The codec is the sole authority on "iat" and "exp": caller-supplied values
// for those names are overwritten.
func (s *jwtCodec) Issue(claims map[string]any, lifetime ...time.Duration) (string, error) {
	ttl := s.ttl
	if len(lifetime) > 0 {
		ttl = lifetime[0]
	}

	now := time.Now()
	merged := make(jwt.MapClaims, len(claims)+2)
	for name, value := range claims {
		merged[name] = value
	}
	merged[service.ClaimIssuedAt] = now.Unix()
	merged[service.ClaimExpiresAt] = now.Add(ttl).Unix()

	token := jwt.NewWithClaims(s.method, merged)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Decode verifies the signature and expiry of a token string and returns the
// full claim set, including the reserved timestamp claims.
// Expiry and signature failures are distinct outcomes: an expired token was
// once valid ("log in again"), an invalid one never was.
func (s *jwtCodec) Decode(tokenString string) (map[string]any, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// The algorithm must match the configured one exactly; a token signed
		// with any other method is rejected outright.
		if token.Method.Alg() != s.method.Alg() {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired.WrapMessage("token decode failed")
		}

		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token decode failed")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.WithStack(domainerrors.ErrTokenInvalid)
	}

	return map[string]any(claims), nil
}

// AccessTokenDuration returns the configured default token lifetime.
func (s *jwtCodec) AccessTokenDuration() time.Duration {
	return s.ttl
}
