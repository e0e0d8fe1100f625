package web

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoParams is returned when the request context carries no decoded payload of the wanted type.
var ErrNoParams = errors.New("web: no decoded params in context")

type paramsKey struct{}

// NewContextWithParams stores the decoded request payload for the handlers down the chain.
//
//nolint:ireturn //This function needs to return a context.
func NewContextWithParams(baseCtx context.Context, params any) context.Context {
	return context.WithValue(baseCtx, paramsKey{}, params)
}

// ParamsFromContext returns the payload stored by NewContextWithParams.
//
//nolint:ireturn //This is a generic function.
func ParamsFromContext[T any](ctx context.Context) (T, error) {
	var zero T
	val := ctx.Value(paramsKey{})
	if val == nil {
		return zero, ErrNoParams
	}
	params, ok := val.(T)
	if !ok {
		return zero, fmt.Errorf("%w: have %T, want %T", ErrNoParams, val, zero)
	}
	return params, nil
}
