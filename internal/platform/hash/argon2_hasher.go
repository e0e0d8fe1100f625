package hash

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/ferdiebergado/jobnotes/internal/config"
	"github.com/ferdiebergado/jobnotes/internal/pkg/security"
	"golang.org/x/crypto/argon2"
)

var ErrInvalidHash = errors.New("hash: invalid argon2id hash format")

type argon2Hasher struct {
	memory     uint32
	iterations uint32
	threads    uint8
	saltLen    uint32
	keyLen     uint32
	pepper     string
}

var _ Hasher = (*argon2Hasher)(nil)

// NewArgon2Hasher returns an argon2id Hasher. The pepper is appended to every plain value.
func NewArgon2Hasher(cfg *config.Argon2, pepper string) Hasher {
	return &argon2Hasher{
		memory:     cfg.Memory,
		iterations: cfg.Iterations,
		threads:    cfg.Threads,
		saltLen:    cfg.SaltLength,
		keyLen:     cfg.KeyLength,
		pepper:     pepper,
	}
}

func (h *argon2Hasher) Hash(plain string) (string, error) {
	salt, err := security.GenerateRandomBytes(h.saltLen)
	if err != nil {
		return "", fmt.Errorf("generate salt with length %d: %w", h.saltLen, err)
	}

	key := argon2.IDKey([]byte(plain+h.pepper), salt, h.iterations, h.memory, h.threads, h.keyLen)

	saltBase64 := base64.RawStdEncoding.EncodeToString(salt)
	keyBase64 := base64.RawStdEncoding.EncodeToString(key)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.memory, h.iterations, h.threads, saltBase64, keyBase64)

	return encoded, nil
}

func (h *argon2Hasher) Verify(plain, hashed string) (bool, error) {
	parts := strings.Split(hashed, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, ErrInvalidHash
	}

	var memory, iterations uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false, fmt.Errorf("%w: parse params: %w", ErrInvalidHash, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("base64 decode salt: %w", err)
	}

	wantKey, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("base64 decode hash: %w", err)
	}

	keyLen := len(wantKey)
	if err := security.CheckUint(keyLen); err != nil {
		return false, err
	}

	//nolint:gosec //keyLen was checked against uint32 overflow above.
	gotKey := argon2.IDKey([]byte(plain+h.pepper), salt, iterations, memory, threads, uint32(keyLen))
	return subtle.ConstantTimeCompare(gotKey, wantKey) == 1, nil
}
