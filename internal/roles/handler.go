package roles

import (
	"encoding/json"
	"net/http"

	"github.com/chaimictalks/news-admin/internal/auth"
	"github.com/chaimictalks/news-admin/internal/backend"
	"github.com/chaimictalks/news-admin/internal/transport"
	"github.com/go-chi/chi"
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
	roles, err := h.Service.List(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, roles)
}

func (h *Handler) Datatable(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.Datatable(r.Context(), backend.DatatableQueryFromRequest(r))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	role, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, role)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto RoleDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	role, err := h.Service.Create(r.Context(), dto)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, role)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var dto RoleDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	role, err := h.Service.Update(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, role)
}

func (h *Handler) Permissions(w http.ResponseWriter, r *http.Request) {
	perms, err := h.Service.Permissions(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, perms)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch e := err.(type) {
	case ValidationError:
		h.WriteError(w, http.StatusBadRequest, e.Error())
	case auth.BackendError:
		h.WriteError(w, e.HTTPStatus(), e.Error())
	default:
		h.Logger.Error("roles request failed", "error", err)
		h.WriteError(w, http.StatusBadGateway, "backend request failed")
	}
}
