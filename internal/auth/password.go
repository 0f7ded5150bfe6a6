package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Schemes a Hasher can write.
const (
	SchemeBcrypt       = "bcrypt"
	SchemeLegacySHA256 = "legacy-sha256"
)

var ErrUnknownScheme = errors.New("unknown password hash scheme")

// PasswordHasher turns a plaintext password into its stored form and checks it back.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// Hasher writes digests in one scheme but verifies any scheme it recognises,
// so rows written under the legacy scheme still log in after switching to bcrypt.
type Hasher struct {
	scheme string
	cost   int
}

// NewHasher returns a Hasher for the given scheme. A cost outside bcrypt's
// range falls back to bcrypt.DefaultCost.
func NewHasher(scheme string, cost int) (*Hasher, error) {
	if scheme != SchemeBcrypt && scheme != SchemeLegacySHA256 {
		return nil, ErrUnknownScheme
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{scheme: scheme, cost: cost}, nil
}

// Hash creates a digest of the password in the configured scheme.
func (h *Hasher) Hash(password string) (string, error) {
	if h.scheme == SchemeLegacySHA256 {
		return legacyDigest(password), nil
	}
	// the cost determines the computational complexity of the hashing process
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// Verify reports whether password matches the stored digest.
func (h *Hasher) Verify(password, digest string) bool {
	if isBcrypt(digest) {
		return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
	}
	if isLegacy(digest) {
		want := legacyDigest(password)
		return subtle.ConstantTimeCompare([]byte(want), []byte(strings.ToLower(digest))) == 1
	}
	return false
}

// legacyDigest is the hex SHA-256 of the password, unsalted.
func legacyDigest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func isBcrypt(digest string) bool {
	return strings.HasPrefix(digest, "$2a$") ||
		strings.HasPrefix(digest, "$2b$") ||
		strings.HasPrefix(digest, "$2y$")
}

func isLegacy(digest string) bool {
	if len(digest) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(digest)
	return err == nil
}
