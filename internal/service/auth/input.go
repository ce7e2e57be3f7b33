package auth

import (
	"strings"

	"github.com/heartmarshall/ainotes/internal/domain"
)

const (
	maxUsernameLen = 64
	// bcrypt rejects passwords longer than 72 bytes.
	maxPasswordLen = 72
)

// CredentialsInput holds a username/password pair from a login or register form.
type CredentialsInput struct {
	Username string
	Password string
}

// normalize trims surrounding whitespace from the username only.
func (i CredentialsInput) normalize() CredentialsInput {
	i.Username = strings.TrimSpace(i.Username)
	return i
}

// Validate validates the credentials.
func (i CredentialsInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if len(i.Username) > maxUsernameLen {
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > maxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
