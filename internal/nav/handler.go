package nav

import (
	"net/http"

	"github.com/chaimictalks/news-admin/internal/transport"
	"github.com/go-chi/chi"
)

type Handler struct {
	*transport.BaseHandler
	Composer *Composer
}

func NewHandler(composer *Composer) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(nil),
		Composer:    composer,
	}
}

// MenuView is the composed navigation shell for the current session.
type MenuView struct {
	Items []Item          `json:"items"`
	Open  map[string]bool `json:"open"`
}

// Menu returns the visible tree. An optional ?path= seeds groups containing
// the active path to open.
func (h *Handler) Menu(w http.ResponseWriter, r *http.Request) {
	if path := r.URL.Query().Get("path"); path != "" {
		h.Composer.SeedOpen(path)
	}

	h.WriteJSON(w, http.StatusOK, MenuView{
		Items: h.Composer.Visible(),
		Open:  h.Composer.OpenState(),
	})
}

// Toggle flips a submenu's open state.
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		h.WriteError(w, http.StatusBadRequest, "menu key is required")
		return
	}

	h.Composer.Toggle(key)
	h.WriteJSON(w, http.StatusOK, map[string]bool{key: h.Composer.IsOpen(key)})
}
