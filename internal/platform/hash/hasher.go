// Package hash hashes and verifies secrets.
package hash

// Hasher hashes a plain secret and verifies a plain secret against a stored hash.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) (bool, error)
}
