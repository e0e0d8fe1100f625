// Package security provides random material and bearer token helpers.
package security

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrMissingAuthHeader = errors.New("missing Authorization header")
	ErrMissingBearer     = errors.New("missing Bearer prefix")
)

func GenerateRandomBytes(length uint32) ([]byte, error) {
	key := make([]byte, length)

	_, err := rand.Read(key)
	if err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}

	return key, nil
}

func GenerateRandomBytesStdEncoded(length uint32) (string, error) {
	key, err := GenerateRandomBytes(length)

	if err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}

	return base64.StdEncoding.EncodeToString(key), nil
}

func GenerateRandomBytesURLEncoded(length uint32) (string, error) {
	key, err := GenerateRandomBytes(length)

	if err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}

	return base64.URLEncoding.EncodeToString(key), nil
}

func CheckUint(i int) error {
	if i > int(^uint32(0)) {
		return fmt.Errorf("integer %d exceeds uint32", i)
	}
	return nil
}

// ExtractBearerToken returns the token of an "Authorization: Bearer <token>" header.
func ExtractBearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrMissingAuthHeader
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", ErrMissingBearer
	}
	return strings.TrimSpace(header[len(prefix):]), nil
}
