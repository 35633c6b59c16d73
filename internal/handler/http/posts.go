package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/postboard/postboard/internal/logger"
	"github.com/postboard/postboard/internal/service"
	"github.com/postboard/postboard/internal/store"
	"github.com/postboard/postboard/internal/utils"
	"github.com/postboard/postboard/models"
)

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	posts, err := h.services.PostService.ListPosts(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during listing posts")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	postID, err := getPostIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid post id was passed")
		http.Error(w, "invalid post id", http.StatusUnprocessableEntity)
		return
	}

	post, err := h.services.PostService.GetPost(ctx, postID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrPostNotFound):
			log.Err(err).Msg("post was not found")
			http.Error(w, "post was not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during getting post")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id found in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var input models.PostCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusUnprocessableEntity)
		return
	}

	post, err := h.services.PostService.CreatePost(ctx, userID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusUnprocessableEntity)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during creating post")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("post_id", post.PostID).Msg("post successfully created")

	utils.WriteJSON(w, post, http.StatusCreated)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id found in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	postID, err := getPostIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid post id was passed")
		http.Error(w, "invalid post id", http.StatusUnprocessableEntity)
		return
	}

	var input models.PostUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusUnprocessableEntity)
		return
	}

	post, err := h.services.PostService.UpdatePost(ctx, userID, postID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusUnprocessableEntity)
			return
		case errors.Is(err, store.ErrPostNotFound):
			log.Err(err).Msg("post was not found")
			http.Error(w, "post was not found", http.StatusNotFound)
			return
		case errors.Is(err, service.ErrNotPostOwner):
			log.Err(err).Msg("user is not the owner of the post")
			http.Error(w, "not authorized to perform requested action", http.StatusForbidden)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during updating post")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id found in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	postID, err := getPostIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid post id was passed")
		http.Error(w, "invalid post id", http.StatusUnprocessableEntity)
		return
	}

	if err := h.services.PostService.DeletePost(ctx, userID, postID); err != nil {
		switch {
		case errors.Is(err, store.ErrPostNotFound):
			log.Err(err).Msg("post was not found")
			http.Error(w, "post was not found", http.StatusNotFound)
			return
		case errors.Is(err, service.ErrNotPostOwner):
			log.Err(err).Msg("user is not the owner of the post")
			http.Error(w, "not authorized to perform requested action", http.StatusForbidden)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during deleting post")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// getPostIDFromURL parses the {postID} URL parameter as a base-10 int64.
func getPostIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
}
