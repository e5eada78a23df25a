package account

import "github.com/ignishealth/ignis/internal/domain"

// SignupInput holds parameters for the signup operation.
type SignupInput struct {
	Username string
	Password string
}

// Validate validates the signup input.
func (i SignupInput) Validate() error {
	var errs []domain.FieldError

	switch l := len(i.Username); {
	case l == 0:
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	case l < 3 || l > 50:
		errs = append(errs, domain.FieldError{Field: "username", Message: "must be 3–50 characters"})
	}

	switch l := len(i.Password); {
	case l == 0:
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case l < 6:
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 6 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for the login operation.
type LoginInput struct {
	Username string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
