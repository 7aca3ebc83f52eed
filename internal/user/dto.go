package user

import (
	"strings"

	errors "github.com/frahmantamala/asset-inventory/internal"
	"github.com/frahmantamala/asset-inventory/internal/auth"
)

// RegisterDTO is the admin-only account creation request.
type RegisterDTO struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

// UpdateProfileDTO is the self-service profile update. Role and active flag
// are deliberately absent; only admins touch those.
type UpdateProfileDTO struct {
	Email      *string `json:"email"`
	Password   *string `json:"password"`
	Department *string `json:"department"`
}

// AdminUpdateUserDTO is the admin-side account update.
type AdminUpdateUserDTO struct {
	Email      *string `json:"email"`
	Password   *string `json:"password"`
	Role       *string `json:"role"`
	Department *string `json:"department"`
	IsActive   *bool   `json:"is_active"`
}

func (d *RegisterDTO) Validate() *errors.AppError {
	if d.Role == "" {
		d.Role = string(auth.RoleUser)
	}

	var fieldErrors []errors.ValidationError
	if len(strings.TrimSpace(d.Username)) < 3 {
		fieldErrors = append(fieldErrors, errors.ValidationError{
			Field: "username", Message: "username must be at least 3 characters", Code: string(errors.ErrCodeValidationFailed),
		})
	}
	if !validEmail(d.Email) {
		fieldErrors = append(fieldErrors, errors.ValidationError{
			Field: "email", Message: "email must be a valid address", Code: string(errors.ErrCodeValidationFailed),
		})
	}
	if len(d.Password) < 6 {
		fieldErrors = append(fieldErrors, errors.ValidationError{
			Field: "password", Message: "password must be at least 6 characters", Code: string(errors.ErrCodeValidationFailed),
		})
	}
	if !auth.Role(d.Role).Valid() {
		fieldErrors = append(fieldErrors, errors.ValidationError{
			Field: "role", Message: "role must be one of admin, manager, user", Code: string(errors.ErrCodeValidationFailed),
		})
	}

	if len(fieldErrors) > 0 {
		return errors.NewValidationError("Validation failed", errors.ErrCodeValidationFailed).
			WithDetails(errors.ValidationErrors{Errors: fieldErrors})
	}
	return nil
}

func (d UpdateProfileDTO) Validate() *errors.AppError {
	if d.Email != nil && !validEmail(*d.Email) {
		return errors.NewValidationFieldError("email", "email must be a valid address", errors.ErrCodeValidationFailed)
	}
	if d.Password != nil && len(*d.Password) < 6 {
		return errors.NewValidationFieldError("password", "password must be at least 6 characters", errors.ErrCodeValidationFailed)
	}
	return nil
}

func (d AdminUpdateUserDTO) Validate() *errors.AppError {
	if d.Email != nil && !validEmail(*d.Email) {
		return errors.NewValidationFieldError("email", "email must be a valid address", errors.ErrCodeValidationFailed)
	}
	if d.Password != nil && len(*d.Password) < 6 {
		return errors.NewValidationFieldError("password", "password must be at least 6 characters", errors.ErrCodeValidationFailed)
	}
	if d.Role != nil && !auth.Role(*d.Role).Valid() {
		return errors.NewValidationFieldError("role", "role must be one of admin, manager, user", errors.ErrCodeValidationFailed)
	}
	return nil
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return !strings.ContainsAny(email, " \t")
}
