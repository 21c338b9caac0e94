package users

import "strings"

// CreateUserDTO mirrors the create-user form: profile fields plus the
// selected role's identifier.
type CreateUserDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   string `json:"roleId"`
}

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d CreateUserDTO) Validate() error {
	if d.Name == "" {
		return ValidationError{Msg: "name is required"}
	}
	if d.Email == "" || !strings.Contains(d.Email, "@") {
		return ValidationError{Msg: "a valid email is required"}
	}
	if d.Password == "" {
		return ValidationError{Msg: "password is required"}
	}
	if d.RoleID == "" {
		return ValidationError{Msg: "roleId is required"}
	}
	return nil
}
