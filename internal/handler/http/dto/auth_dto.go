package dto

import "github.com/ireporter/api/internal/domain/entity"

// SignupRequest starts the registration flow.
type SignupRequest struct {
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	PasswordConfirm string `json:"passwordConfirm" binding:"required"`
}

// CompleteSignupRequest finishes a pending registration with the profile
// fields not captured at signup.
type CompleteSignupRequest struct {
	Username    string `json:"username" binding:"required"`
	Firstname   string `json:"firstname" binding:"required"`
	Lastname    string `json:"lastname" binding:"required"`
	Othernames  string `json:"othernames"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// LoginRequest authenticates by email or username.
type LoginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password" binding:"required"`
}

// Identifier returns the login key: the email when present, the username
// otherwise.
func (r LoginRequest) Identifier() string {
	if r.Email != "" {
		return r.Email
	}
	return r.Username
}

// ForgotPasswordRequest asks for a reset email.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// ResetPasswordRequest redeems an emailed reset token.
type ResetPasswordRequest struct {
	Password        string `json:"password" binding:"required"`
	PasswordConfirm string `json:"passwordConfirm" binding:"required"`
}

// UpdatePasswordRequest changes the password of a logged-in user.
type UpdatePasswordRequest struct {
	PasswordCurrent string `json:"passwordCurrent" binding:"required"`
	Password        string `json:"password" binding:"required"`
	PasswordConfirm string `json:"passwordConfirm" binding:"required"`
}

// UpdateMeRequest is the partial self-service profile update. It binds to a
// raw map so the handler can reject credential fields explicitly.
type UpdateMeRequest map[string]interface{}

// CreateReportRequest creates a new incident report.
type CreateReportRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description" binding:"required"`
	Type        string           `json:"type" binding:"required"`
	Images      []string         `json:"images"`
	Videos      []string         `json:"videos"`
	Location    *entity.GeoPoint `json:"location"`
}

// UpdateReportRequest partially updates a report. Status is absent on
// purpose; it changes only through the admin status route.
type UpdateReportRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Type        *string          `json:"type"`
	Images      []string         `json:"images"`
	Videos      []string         `json:"videos"`
	Location    *entity.GeoPoint `json:"location"`
}

// ChangeReportStatusRequest transitions the triage state of a report.
type ChangeReportStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
