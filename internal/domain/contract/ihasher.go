package contract

// IHasher provides one-way password hashing and token digests.
type IHasher interface {
	HashPassword(password string) (string, error)
	// ComparePasswordHash returns a non-nil error on any mismatch, malformed
	// hash or internal failure. It never panics past this boundary.
	ComparePasswordHash(password, hashedPassword string) error
	// HashToken returns the hex-encoded SHA-256 digest of a verification or
	// reset token. Only the digest is ever persisted; redemption re-hashes
	// the presented token and matches on the digest.
	HashToken(token string) string
}
