// Package provider builds the shared collaborators handed to the application.
package provider

import (
	"errors"

	"github.com/ferdiebergado/jobnotes/internal/config"
	"github.com/ferdiebergado/jobnotes/internal/platform/hash"
	"github.com/ferdiebergado/jobnotes/internal/platform/jwt"
	"github.com/ferdiebergado/jobnotes/internal/platform/router"
	"github.com/ferdiebergado/jobnotes/internal/platform/validation"
)

type Provider struct {
	Cfg       *config.Config
	Signer    jwt.Signer
	Hasher    hash.Hasher
	Validator validation.Validator
	Router    router.Router
}

func New(cfg *config.Config) (*Provider, error) {
	if cfg == nil || cfg.App == nil || cfg.JWT == nil || cfg.Argon2 == nil {
		return nil, errors.New("config with app, jwt and argon2 sections is required")
	}

	securityKey := cfg.App.Key
	if securityKey == "" {
		return nil, errors.New("app key should not be empty")
	}

	provider := &Provider{
		Cfg:       cfg,
		Signer:    jwt.NewGolangJWTSigner(cfg.JWT, securityKey),
		Hasher:    hash.NewArgon2Hasher(cfg.Argon2, securityKey),
		Validator: validation.NewGoPlaygroundValidator(),
		Router:    router.NewGoexpressRouter(),
	}

	return provider, nil
}
