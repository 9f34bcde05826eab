package usecasecontract

// IValidator validates boundary input before it reaches the flow controllers.
type IValidator interface {
	ValidateEmail(email string) error
	// ValidatePassword enforces the minimum password length.
	ValidatePassword(password string) error
	// ValidateUsername enforces 4-20 alphanumeric characters.
	ValidateUsername(username string) error
	// ValidatePhoneNumber enforces a numeric phone number.
	ValidatePhoneNumber(phone string) error
}
