package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-micro-blog/internal/logger"
	"github.com/MKhiriev/go-micro-blog/internal/render"
	"github.com/MKhiriev/go-micro-blog/internal/service"
	"github.com/MKhiriev/go-micro-blog/internal/store"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	posts, err := h.services.PostService.ListPosts(ctx)
	if err != nil {
		log.Err(err).Msg("listing posts failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.render(w, r, http.StatusOK, "index", render.Data{Posts: posts})
}

func (h *Handler) createForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "create", render.Data{})
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := userFrom(r)
	if !ok {
		http.Redirect(w, r, loginRoute, http.StatusFound)
		return
	}

	title := r.PostFormValue("title")
	body := r.PostFormValue("body")

	_, err := h.services.PostService.CreatePost(ctx, user.UserID, title, body)
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			h.render(w, r, http.StatusOK, "create", render.Data{Error: "Title is required."})
			return
		}
		log.Err(err).Msg("post creation failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) updateForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := userFrom(r)
	if !ok {
		http.Redirect(w, r, loginRoute, http.StatusFound)
		return
	}

	postID, err := postIDFromRequest(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	post, err := h.services.PostService.GetOwnedPost(ctx, postID, user.UserID)
	if err != nil {
		h.postError(w, r, err)
		return
	}

	log.Debug().Int64("post_id", post.PostID).Msg("post edit form requested")

	h.render(w, r, http.StatusOK, "update", render.Data{Post: post})
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := userFrom(r)
	if !ok {
		http.Redirect(w, r, loginRoute, http.StatusFound)
		return
	}

	postID, err := postIDFromRequest(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	title := r.PostFormValue("title")
	body := r.PostFormValue("body")

	if err := h.services.PostService.UpdatePost(ctx, postID, user.UserID, title, body); err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			post, getErr := h.services.PostService.GetOwnedPost(ctx, postID, user.UserID)
			if getErr != nil {
				h.postError(w, r, getErr)
				return
			}
			h.render(w, r, http.StatusOK, "update", render.Data{Error: "Title is required.", Post: post})
			return
		}
		h.postError(w, r, err)
		return
	}

	log.Debug().Int64("post_id", postID).Msg("post updated")

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := userFrom(r)
	if !ok {
		http.Redirect(w, r, loginRoute, http.StatusFound)
		return
	}

	postID, err := postIDFromRequest(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.services.PostService.DeletePost(ctx, postID, user.UserID); err != nil {
		h.postError(w, r, err)
		return
	}

	log.Debug().Int64("post_id", postID).Msg("post deleted")

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// postIDFromRequest parses the {id} route parameter.
func postIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// postError maps ownership and lookup failures of the post operations to
// their HTTP statuses.
func (h *Handler) postError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, store.ErrPostNotFound):
		http.NotFound(w, r)
	case errors.Is(err, service.ErrNotPostAuthor):
		log.Debug().Err(err).Msg("post belongs to another user")
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
	default:
		log.Err(err).Msg("unexpected error occurred during post operation")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
