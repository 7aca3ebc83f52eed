package auth

// LoginDTO is the transport shape for login requests. Login accepts either
// a username or an email address.
type LoginDTO struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d LoginDTO) Validate() error {
	if d.Login == "" {
		return ValidationError{Msg: "login is required"}
	}
	if d.Password == "" {
		return ValidationError{Msg: "password is required"}
	}
	return nil
}
