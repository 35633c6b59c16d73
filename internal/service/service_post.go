// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/postboard/postboard/internal/logger"
	"github.com/postboard/postboard/internal/store"
	"github.com/postboard/postboard/models"
)

type postService struct {
	postRepository store.PostRepository
	logger         *logger.Logger
}

// NewPostService creates a PostService backed by the given post repository.
func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		logger:         logger,
	}
}

// ListPosts returns every post ordered by creation. The result is never nil.
func (s *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	log := s.logger

	posts, err := s.postRepository.ListPosts(ctx)
	if err != nil {
		log.Err(err).Str("func", "ListPosts").Msg("error occurred during listing posts")
		return nil, fmt.Errorf("error occurred during listing posts: %w", err)
	}

	return posts, nil
}

// GetPost returns the post with the given ID. A missing post surfaces as
// store.ErrPostNotFound.
func (s *postService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	log := s.logger

	post, err := s.postRepository.GetPost(ctx, postID)
	if err != nil {
		log.Err(err).Str("func", "GetPost").Int64("post_id", postID).Msg("error occurred during getting post")
		return models.Post{}, fmt.Errorf("error occurred during getting post: %w", err)
	}

	return post, nil
}

// CreatePost stores a new post owned by ownerID. Title and content are
// required; published defaults to true when the client omits it.
func (s *postService) CreatePost(ctx context.Context, ownerID int64, input models.PostCreate) (models.Post, error) {
	log := s.logger

	if input.Title == "" || input.Content == "" {
		return models.Post{}, fmt.Errorf("title and content are required: %w", ErrInvalidDataProvided)
	}

	published := true
	if input.Published != nil {
		published = *input.Published
	}

	post, err := s.postRepository.CreatePost(ctx, models.Post{
		Title:     input.Title,
		Content:   input.Content,
		Published: published,
		OwnerID:   ownerID,
	})
	if err != nil {
		log.Err(err).Str("func", "CreatePost").Msg("error occurred during creating post")
		return models.Post{}, fmt.Errorf("error occurred during creating post: %w", err)
	}

	return post, nil
}

// UpdatePost applies the given changes to an existing post on behalf of
// userID. Title and content are required; a post owned by another user
// surfaces as ErrNotPostOwner and a missing one as store.ErrPostNotFound.
func (s *postService) UpdatePost(ctx context.Context, userID, postID int64, input models.PostUpdate) (models.Post, error) {
	log := s.logger

	if input.Title == nil || *input.Title == "" || input.Content == nil || *input.Content == "" {
		return models.Post{}, fmt.Errorf("title and content are required: %w", ErrInvalidDataProvided)
	}

	if err := s.checkPostOwnership(ctx, userID, postID); err != nil {
		return models.Post{}, err
	}

	post, err := s.postRepository.UpdatePost(ctx, postID, input)
	if err != nil {
		log.Err(err).Str("func", "UpdatePost").Int64("post_id", postID).Msg("error occurred during updating post")
		return models.Post{}, fmt.Errorf("error occurred during updating post: %w", err)
	}

	return post, nil
}

// DeletePost removes an existing post on behalf of userID. A post owned by
// another user surfaces as ErrNotPostOwner and a missing one as
// store.ErrPostNotFound.
func (s *postService) DeletePost(ctx context.Context, userID, postID int64) error {
	log := s.logger

	if err := s.checkPostOwnership(ctx, userID, postID); err != nil {
		return err
	}

	if err := s.postRepository.DeletePost(ctx, postID); err != nil {
		log.Err(err).Str("func", "DeletePost").Int64("post_id", postID).Msg("error occurred during deleting post")
		return fmt.Errorf("error occurred during deleting post: %w", err)
	}

	return nil
}

func (s *postService) checkPostOwnership(ctx context.Context, userID, postID int64) error {
	log := s.logger

	post, err := s.postRepository.GetPost(ctx, postID)
	if err != nil {
		log.Err(err).Str("func", "checkPostOwnership").Int64("post_id", postID).Msg("error occurred during getting post")
		return fmt.Errorf("error occurred during getting post: %w", err)
	}

	if post.OwnerID != userID {
		log.Warn().Str("func", "checkPostOwnership").
			Int64("post_id", postID).
			Int64("user_id", userID).
			Int64("owner_id", post.OwnerID).
			Msg("user is not the owner of the post")
		return ErrNotPostOwner
	}

	return nil
}
