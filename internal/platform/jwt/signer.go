// Package jwt issues and verifies the access tokens handed out by the access gate.
package jwt

import (
	"time"
)

// Claims represents the verified claims of an access token.
type Claims struct {
	Subject string
	TokenID string
}

// Signer defines methods for signing and verifying JWT tokens.
type Signer interface {
	Sign(subject string, duration time.Duration) (token string, err error)
	Verify(tokenString string) (*Claims, error)
}
