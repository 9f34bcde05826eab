package entity

import (
	"time"
)

// DefaultPhotoURL is used when a user has not uploaded a profile photo.
const DefaultPhotoURL = "https://res.cloudinary.com/dfxgefgqc/image/upload/v1733488719/default_a7m2rb.jpg"

// User represents a registered, verified principal in the system.
type User struct {
	ID           string       `bson:"_id,omitempty" json:"id"`
	Firstname    string       `bson:"firstname" json:"firstname"`
	Lastname     string       `bson:"lastname" json:"lastname"`
	Othernames   string       `bson:"othernames" json:"othernames"`
	PhoneNumber  string       `bson:"phoneNumber,omitempty" json:"phoneNumber"`
	Email        string       `bson:"email" json:"email"`
	Username     string       `bson:"username" json:"username"`
	Photo        string       `bson:"photo" json:"photo"`
	SignupMethod SignupMethod `bson:"signupMethod" json:"signupMethod"`
	Role         UserRole     `bson:"role" json:"role"`
	// IsAdmin is kept for wire compatibility with older clients. It is derived
	// from Role on every write and must never be consulted for authorization.
	IsAdmin              bool       `bson:"isAdmin" json:"isAdmin"`
	PasswordHash         string     `bson:"password" json:"-"`
	PasswordChangedAt    *time.Time `bson:"passwordChangedAt,omitempty" json:"-"`
	PasswordResetToken   string     `bson:"passwordResetToken,omitempty" json:"-"`
	PasswordResetExpires *time.Time `bson:"passwordResetExpires,omitempty" json:"-"`
	Active               bool       `bson:"active" json:"-"`
	CreatedAt            time.Time  `bson:"createdAt" json:"createdAt"`
}

// UserRole represents the role of a user in the system.
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

func DefaultRole() UserRole {
	return UserRoleUser
}

// SignupMethod records how the account was originally created.
type SignupMethod string

const (
	SignupMethodEmail    SignupMethod = "email"
	SignupMethodGoogle   SignupMethod = "google"
	SignupMethodFacebook SignupMethod = "facebook"
	SignupMethodTwitter  SignupMethod = "twitter"
)

// PasswordChangedAfter reports whether the password was changed after the
// given token issuance time. Session tokens issued before a password change
// are rejected by the auth middleware through this check.
func (u *User) PasswordChangedAfter(issuedAt time.Time) bool {
	if u.PasswordChangedAt == nil {
		return false
	}
	// Compare at second granularity, matching the issued-at resolution of the
	// session token.
	return u.PasswordChangedAt.Unix() > issuedAt.Unix()
}

// SyncLegacyAdminFlag derives the legacy boolean from the authoritative role.
func (u *User) SyncLegacyAdminFlag() {
	u.IsAdmin = u.Role == UserRoleAdmin
}

// UnverifiedUser is a pending registration: the email and password captured at
// signup time, held until the verification token is redeemed.
type UnverifiedUser struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password" json:"-"`
	TokenHash    string    `bson:"tokenHash" json:"-"`
	TokenExpires time.Time `bson:"tokenExpires" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
