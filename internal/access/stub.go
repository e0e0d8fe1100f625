package access

import (
	"context"
	"errors"
)

type StubGate struct {
	EnabledFunc func() bool
	UnlockFunc  func(ctx context.Context, conditionText string) (string, error)
	VerifyFunc  func(token string) error
}

var _ Gate = (*StubGate)(nil)

func (g *StubGate) Enabled() bool {
	if g.EnabledFunc == nil {
		return true
	}
	return g.EnabledFunc()
}

func (g *StubGate) Unlock(ctx context.Context, conditionText string) (string, error) {
	if g.UnlockFunc == nil {
		return "", errors.New("Unlock() not implemented by stub")
	}
	return g.UnlockFunc(ctx, conditionText)
}

func (g *StubGate) Verify(token string) error {
	if g.VerifyFunc == nil {
		return errors.New("Verify() not implemented by stub")
	}
	return g.VerifyFunc(token)
}
