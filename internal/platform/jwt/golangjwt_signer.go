package jwt

import (
	"fmt"
	"time"

	"github.com/ferdiebergado/jobnotes/internal/config"
	"github.com/ferdiebergado/jobnotes/internal/pkg/security"
	"github.com/golang-jwt/jwt/v5"
)

// golangJWTSigner implements the Signer interface using the golang-jwt library.
type golangJWTSigner struct {
	method   jwt.SigningMethod
	key      []byte
	jtiLen   uint32
	issuer   string
	audience string
}

var _ Signer = (*golangJWTSigner)(nil)

// NewGolangJWTSigner creates an HS256 Signer with the provided JWT config and signing key.
func NewGolangJWTSigner(cfg *config.JWT, key string) Signer {
	return &golangJWTSigner{
		method:   jwt.SigningMethodHS256,
		key:      []byte(key),
		jtiLen:   cfg.JTILength,
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
	}
}

// Sign generates a signed JWT token with the given subject, valid for duration.
func (s *golangJWTSigner) Sign(sub string, duration time.Duration) (string, error) {
	jti, err := security.GenerateRandomBytesURLEncoded(s.jtiLen)
	if err != nil {
		return "", fmt.Errorf("generate jti with length %d: %w", s.jtiLen, err)
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		IssuedAt:  jwt.NewNumericDate(now),
		Issuer:    s.issuer,
		Subject:   sub,
		ID:        jti,
	}
	if s.audience != "" {
		claims.Audience = jwt.ClaimStrings{s.audience}
	}

	token := jwt.NewWithClaims(s.method, claims)
	signedToken, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signedToken, nil
}

// Verify parses and validates a JWT token string and returns its claims if valid.
func (s *golangJWTSigner) Verify(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}
	if s.audience != "" {
		opts = append(opts, jwt.WithAudience(s.audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(_ *jwt.Token) (any, error) {
		return s.key, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse with claims: %w", err)
	}

	registered, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, fmt.Errorf("unknown claims type: %T", token.Claims)
	}

	return &Claims{
		Subject: registered.Subject,
		TokenID: registered.ID,
	}, nil
}
