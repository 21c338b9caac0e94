package session

import (
	"bytes"
	"encoding/json"
)

// FlexID is an identifier that tolerates both string and numeric JSON
// representations. The backend is not consistent about which one it sends,
// so all comparisons go through the normalized string form.
type FlexID string

func (f *FlexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

func (f FlexID) String() string {
	return string(f)
}

func (f FlexID) Equal(other FlexID) bool {
	return string(f) == string(other)
}

// Role is a named bundle of permission keys. The session holds a copy of the
// signed-in user's role, not a live reference: edits made on the role screens
// only reach the session through the explicit propagation path.
type Role struct {
	ID          FlexID   `json:"id"`
	Name        string   `json:"name"`
	Key         string   `json:"key"`
	Permissions []string `json:"permissions"`
}

// Some backend responses carry the role identifier as "_id" instead of "id".
func (r *Role) UnmarshalJSON(b []byte) error {
	type alias Role
	aux := struct {
		*alias
		MongoID FlexID `json:"_id"`
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if r.ID == "" {
		r.ID = aux.MongoID
	}
	return nil
}

func (r *Role) Clone() *Role {
	if r == nil {
		return nil
	}
	clone := *r
	if r.Permissions != nil {
		clone.Permissions = append([]string(nil), r.Permissions...)
	}
	return &clone
}

// HasPermission reports exact-match membership in the role's permission set.
// A nil role or an absent permission list denies everything.
func (r *Role) HasPermission(key string) bool {
	if r == nil || r.Permissions == nil {
		return false
	}
	for _, p := range r.Permissions {
		if p == key {
			return true
		}
	}
	return false
}

// Identity is the signed-in user's profile plus role copy. It is replaced
// wholesale on login, refresh and role propagation, and cleared on logout.
type Identity struct {
	ID    FlexID `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  *Role  `json:"role"`
}

func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}
	clone := *i
	clone.Role = i.Role.Clone()
	return &clone
}

// Session is a point-in-time snapshot of the store: credential token,
// resolved identity and whether a bootstrap refresh is still pending.
type Session struct {
	Token    string
	Identity *Identity
	Loading  bool
}

// Authenticated reports whether a credential token is present. An identity
// without a token is treated as unauthenticated for routing purposes.
func (s Session) Authenticated() bool {
	return s.Token != ""
}
