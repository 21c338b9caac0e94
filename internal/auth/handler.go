package auth

import (
	"encoding/json"
	"net/http"

	"github.com/chaimictalks/news-admin/internal"
	"github.com/chaimictalks/news-admin/internal/session"
	"github.com/chaimictalks/news-admin/internal/transport"
)

// Handler exposes the session endpoints on the local console gateway.
type Handler struct {
	*transport.BaseHandler
	Service  *Service
	Sessions interface {
		Snapshot() session.Session
	}
}

func NewHandler(svc *Service, sessions SessionStore) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(nil),
		Service:     svc,
		Sessions:    sessions,
	}
}

// SessionView is what the gateway reports about the running session. The
// token itself is never echoed back.
type SessionView struct {
	Authenticated bool              `json:"authenticated"`
	Loading       bool              `json:"loading"`
	User          *session.Identity `json:"user,omitempty"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	identity, err := h.Service.Login(r.Context(), dto)
	if err != nil {
		switch e := err.(type) {
		case ValidationError:
			h.WriteError(w, http.StatusBadRequest, e.Error())
		case BackendError:
			// The backend's message is surfaced verbatim.
			h.WriteError(w, e.HTTPStatus(), e.Error())
		default:
			if appErr, ok := internal.IsAppError(err); ok {
				h.WriteError(w, appErr.StatusCode, appErr.Message)
				return
			}
			h.Logger.Error("login failed", "error", err)
			h.WriteError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, identity)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Logout(); err != nil {
		h.Logger.Error("logout failed", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	snap := h.Sessions.Snapshot()
	h.WriteJSON(w, http.StatusOK, SessionView{
		Authenticated: snap.Authenticated(),
		Loading:       snap.Loading,
		User:          snap.Identity,
	})
}
