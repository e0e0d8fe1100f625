// Package access guards the mutating note routes behind the shared condition text.
package access

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ferdiebergado/jobnotes/internal/config"
	"github.com/ferdiebergado/jobnotes/internal/platform/hash"
	"github.com/ferdiebergado/jobnotes/internal/platform/jwt"
	"github.com/ferdiebergado/jobnotes/internal/platform/paramstore"
)

// tokenSubject is the subject of every token issued by the gate.
const tokenSubject = "condition"

var (
	ErrInvalidCondition = errors.New("access: invalid condition text")
	ErrInvalidToken     = errors.New("access: invalid access token")
	ErrGateDisabled     = errors.New("access: gate is disabled")
)

// Gate exchanges the condition text for access tokens and checks them.
type Gate interface {
	Enabled() bool
	Unlock(ctx context.Context, conditionText string) (token string, err error)
	Verify(token string) error
}

type Service struct {
	hasher hash.Hasher
	signer jwt.Signer
	ttl    time.Duration
	hashed string
}

var _ Gate = (*Service)(nil)

// NewService hashes the secret and keeps only the hash. An empty secret
// disables the gate.
func NewService(secret string, hasher hash.Hasher, signer jwt.Signer, ttl time.Duration) (*Service, error) {
	svc := &Service{hasher: hasher, signer: signer, ttl: ttl}
	if secret == "" {
		slog.Warn("No condition text configured, access gate is disabled")
		return svc, nil
	}

	hashed, err := hasher.Hash(secret)
	if err != nil {
		return nil, fmt.Errorf("hash condition text: %w", err)
	}
	svc.hashed = hashed
	return svc, nil
}

func (s *Service) Enabled() bool {
	return s.hashed != ""
}

func (s *Service) Unlock(_ context.Context, conditionText string) (string, error) {
	if !s.Enabled() {
		return "", ErrGateDisabled
	}

	ok, err := s.hasher.Verify(conditionText, s.hashed)
	if err != nil {
		return "", fmt.Errorf("verify condition text: %w", err)
	}
	if !ok {
		return "", ErrInvalidCondition
	}

	token, err := s.signer.Sign(tokenSubject, s.ttl)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return token, nil
}

// Verify accepts any token when the gate is disabled.
func (s *Service) Verify(token string) error {
	if !s.Enabled() {
		return nil
	}

	claims, err := s.signer.Verify(token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Subject != tokenSubject {
		return fmt.Errorf("%w: unexpected subject %q", ErrInvalidToken, claims.Subject)
	}
	return nil
}

// ResolveSecret returns the configured condition text. The inline text wins
// over the Parameter Store parameter. params is only used when a parameter
// name is configured.
func ResolveSecret(ctx context.Context, cfg *config.Access, params paramstore.Getter) (string, error) {
	if cfg.ConditionText != "" {
		return cfg.ConditionText, nil
	}

	if cfg.ConditionParam == "" {
		return "", nil
	}

	if params == nil {
		return "", fmt.Errorf("access: parameter %q configured without a parameter store", cfg.ConditionParam)
	}

	slog.Info("Fetching condition text from parameter store...", "name", cfg.ConditionParam)
	secret, err := params.GetParameter(ctx, cfg.ConditionParam)
	if err != nil {
		return "", fmt.Errorf("access: fetch condition text: %w", err)
	}
	return secret, nil
}
