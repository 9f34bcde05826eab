package passwordservice

import (
	"crypto/sha256"
	"fmt"

	"github.com/ireporter/api/internal/domain/contract"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the work factor the mobile backend has always used.
const bcryptCost = 12

type Hasher struct{}

// check if IHasher was implemented at compile time
var _ contract.IHasher = (*Hasher)(nil)

func NewHasher() *Hasher {
	return &Hasher{}
}

func (h *Hasher) HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func (h *Hasher) ComparePasswordHash(password, hashedPassword string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if err == bcrypt.ErrMismatchedHashAndPassword {
			return fmt.Errorf("password verification failed")
		}
		// Malformed hash (e.g. empty hash on an OAuth account) reads the same
		// as a mismatch to the caller.
		return fmt.Errorf("failed to check password hash: %w", err)
	}
	return nil
}

func (h *Hasher) HashToken(token string) string {
	// SHA-256 for verification/reset tokens: the plaintext is high-entropy
	// random data, so an adaptive hash buys nothing here.
	if token == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", hash)
}
