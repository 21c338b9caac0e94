package roles

// RoleDTO is the create/update payload for a role.
type RoleDTO struct {
	Name        string   `json:"name"`
	Key         string   `json:"key"`
	Permissions []string `json:"permissions"`
}

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d RoleDTO) Validate() error {
	if d.Name == "" {
		return ValidationError{Msg: "name is required"}
	}
	if d.Key == "" {
		return ValidationError{Msg: "key is required"}
	}
	return nil
}
