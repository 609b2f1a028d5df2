package http

import (
	"net/http"

	"github.com/MKhiriev/go-micro-blog/internal/logger"
	"github.com/MKhiriev/go-micro-blog/internal/render"
	"github.com/MKhiriev/go-micro-blog/internal/service"
	"github.com/MKhiriev/go-micro-blog/internal/session"
)

type Handler struct {
	services *service.Services
	sessions *session.Manager
	renderer *render.Renderer

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Manager, renderer *render.Renderer, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		sessions: sessions,
		renderer: renderer,
		logger:   logger,
	}
}

// render fills in the resolved request identity and writes the view. Every
// handler goes through here so pages always know who is logged in.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, view string, data render.Data) {
	if user, ok := userFrom(r); ok {
		data.User = &user
	}

	if err := h.renderer.Render(w, status, view, data); err != nil {
		logger.FromRequest(r).Err(err).Str("view", view).Msg("rendering view failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
