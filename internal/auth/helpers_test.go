package auth

import (
	"encoding/json"

	"github.com/chaimictalks/news-admin/internal/session"
)

func mustJSON(v interface{}) string {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(raw)
}

func unmarshalRole(raw string, role *session.Role) error {
	return json.Unmarshal([]byte(raw), role)
}
