package validator

import (
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"

	usecasecontract "github.com/ireporter/api/internal/usecase/contract"
)

const (
	usernameMinLength = 4
	usernameMaxLength = 20
	passwordMinLength = 8
)

// AppValidator implements the usecase validator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator for boundary input.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	return &AppValidator{validate: v}
}

var _ usecasecontract.IValidator = (*AppValidator)(nil)

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	if err := av.validate.Var(email, "required,email"); err != nil {
		return fmt.Errorf("please provide a valid email")
	}
	return nil
}

// ValidatePassword checks the minimum password length.
func (av *AppValidator) ValidatePassword(password string) error {
	if len(password) < passwordMinLength {
		return fmt.Errorf("password must be at least %d characters long", passwordMinLength)
	}
	return nil
}

// ValidateUsername enforces 4-20 alphanumeric characters.
func (av *AppValidator) ValidateUsername(username string) error {
	if len(username) < usernameMinLength || len(username) > usernameMaxLength {
		return fmt.Errorf("username must be between %d and %d characters", usernameMinLength, usernameMaxLength)
	}
	if err := av.validate.Var(username, "alphanum"); err != nil {
		return fmt.Errorf("username must contain only alphanumeric characters")
	}
	return nil
}

// ValidatePhoneNumber enforces a numeric phone number.
func (av *AppValidator) ValidatePhoneNumber(phone string) error {
	if phone == "" {
		return fmt.Errorf("please provide a phone number")
	}
	for _, char := range phone {
		if !unicode.IsDigit(char) {
			return fmt.Errorf("please provide a valid phone number")
		}
	}
	return nil
}
