package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformed is returned by [Decode] when a credential is not a
// well-formed JWT: wrong segment count, non-decodable payload, or a payload
// that is not a JSON claims object.
var ErrMalformed = errors.New("malformed credential")

// Claims is the decoded payload of a backend-issued credential.
//
// Claims instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Claims struct {
	SubjectID string `json:"id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// unverifiedParser skips signature verification entirely; the backend owns
// authenticity, the client only reads claims.
var unverifiedParser = jwt.NewParser()

// Decode parses the payload segment of credential without verifying its
// signature. It fails with an error wrapping [ErrMalformed] for anything
// that is not a structurally valid JWT.
func Decode(credential string) (*Claims, error) {
	if credential == "" {
		return nil, fmt.Errorf("%w: empty string", ErrMalformed)
	}

	claims := &Claims{}
	if _, _, err := unverifiedParser.ParseUnverified(credential, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return claims, nil
}

// IsLive reports whether credential decodes and its expiry lies strictly in
// the future relative to now. Any decode failure, and any token without an
// exp claim, yields false. IsLive never panics and never returns an error;
// it is deterministic in (credential, now).
func IsLive(credential string, now time.Time) bool {
	claims, err := Decode(credential)
	if err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}

	// Millisecond comparison matches the exp*1000 > now contract exactly.
	return claims.ExpiresAt.Time.UnixMilli() > now.UnixMilli()
}
