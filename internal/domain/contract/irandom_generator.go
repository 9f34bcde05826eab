package contract

// IRandomGenerator produces high-entropy tokens for email verification and
// password reset links.
type IRandomGenerator interface {
	// GenerateRandomToken returns the hex encoding of n random bytes.
	GenerateRandomToken(n int) (string, error)
}
