package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-micro-blog/internal/logger"
	"github.com/MKhiriev/go-micro-blog/internal/render"
	"github.com/MKhiriev/go-micro-blog/internal/service"
	"github.com/MKhiriev/go-micro-blog/internal/store"
)

func (h *Handler) registerForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "register", render.Data{})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	_, err := h.services.AuthService.RegisterUser(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameRequired):
			h.render(w, r, http.StatusOK, "register", render.Data{Error: "Username is required."})
			return
		case errors.Is(err, service.ErrPasswordRequired):
			h.render(w, r, http.StatusOK, "register", render.Data{Error: "Password is required."})
			return
		case errors.Is(err, store.ErrUsernameTaken):
			log.Debug().Str("username", username).Msg("registration attempt with taken username")
			h.render(w, r, http.StatusOK, "register", render.Data{
				Error: fmt.Sprintf("Users %s is already registered.", username),
			})
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "login", render.Data{})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.services.AuthService.VerifyUser(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			h.render(w, r, http.StatusOK, "login", render.Data{Error: "Incorrect username."})
			return
		case errors.Is(err, service.ErrWrongPassword):
			h.render(w, r, http.StatusOK, "login", render.Data{Error: "Incorrect password."})
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	if err := h.sessions.Establish(w, user.UserID); err != nil {
		log.Err(err).Msg("session creation failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully logged in")

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Terminate(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
