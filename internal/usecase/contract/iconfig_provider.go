package usecasecontract

import (
	"time"
)

// IConfigProvider exposes the configuration the usecases need. Configuration
// is loaded once at process start and injected; core logic never reads the
// environment directly.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetSessionTokenExpiry() time.Duration
	GetPasswordResetTokenExpiry() time.Duration
	GetVerificationTokenExpiry() time.Duration
}
