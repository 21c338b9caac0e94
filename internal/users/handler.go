package users

import (
	"encoding/json"
	"net/http"

	"github.com/chaimictalks/news-admin/internal/auth"
	"github.com/chaimictalks/news-admin/internal/transport"
)

type Handler struct {
	*transport.BaseHandler
	Service *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(nil),
		Service:     svc,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.List(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, users)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.Service.Create(r.Context(), dto)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, user)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch e := err.(type) {
	case ValidationError:
		h.WriteError(w, http.StatusBadRequest, e.Error())
	case auth.BackendError:
		h.WriteError(w, e.HTTPStatus(), e.Error())
	default:
		h.Logger.Error("users request failed", "error", err)
		h.WriteError(w, http.StatusBadGateway, "backend request failed")
	}
}
