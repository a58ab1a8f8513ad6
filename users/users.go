package users

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// User is a registered account. PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id,omitempty"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	DateJoined   time.Time `json:"date_joined,omitempty"`
	LastLogin    time.Time `json:"last_login,omitempty"`
}

const minPasswordLength = 8

// ValidateRegistration checks the fields supplied on account creation.
// Returns a map of field name to message for every invalid field, so
// callers can surface field-level errors the way the API promises.
func ValidateRegistration(username, email, password string) map[string]string {
	problems := map[string]string{}
	if strings.TrimSpace(username) == "" {
		problems["username"] = "This field is required"
	}
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			problems["email"] = "Enter a valid email address"
		}
	}
	if len(password) < minPasswordLength {
		problems["password"] = fmt.Sprintf("Password must be at least %d characters long", minPasswordLength)
	}
	if len(problems) == 0 {
		return nil
	}
	return problems
}
