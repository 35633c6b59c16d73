package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postboard/postboard/internal/logger"
	"github.com/postboard/postboard/internal/store"
	"github.com/postboard/postboard/models"
)

type stubPostRepository struct {
	listPostsFn  func(ctx context.Context) ([]models.Post, error)
	getPostFn    func(ctx context.Context, postID int64) (models.Post, error)
	createPostFn func(ctx context.Context, post models.Post) (models.Post, error)
	updatePostFn func(ctx context.Context, postID int64, update models.PostUpdate) (models.Post, error)
	deletePostFn func(ctx context.Context, postID int64) error
}

func (s *stubPostRepository) ListPosts(ctx context.Context) ([]models.Post, error) {
	return s.listPostsFn(ctx)
}

func (s *stubPostRepository) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	return s.getPostFn(ctx, postID)
}

func (s *stubPostRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	return s.createPostFn(ctx, post)
}

func (s *stubPostRepository) UpdatePost(ctx context.Context, postID int64, update models.PostUpdate) (models.Post, error) {
	return s.updatePostFn(ctx, postID, update)
}

func (s *stubPostRepository) DeletePost(ctx context.Context, postID int64) error {
	return s.deletePostFn(ctx, postID)
}

func ownedPost(postID, ownerID int64) models.Post {
	return models.Post{
		PostID:    postID,
		Title:     "T",
		Content:   "C",
		Published: true,
		CreatedAt: time.Now(),
		OwnerID:   ownerID,
	}
}

func TestCreatePost_PublishedDefaultsToTrue(t *testing.T) {
	var stored models.Post
	repo := &stubPostRepository{
		createPostFn: func(_ context.Context, post models.Post) (models.Post, error) {
			stored = post
			post.PostID = 1
			return post, nil
		},
	}
	svc := NewPostService(repo, logger.Nop())

	post, err := svc.CreatePost(context.Background(), 3, models.PostCreate{
		Title:   "T",
		Content: "C",
	})
	require.NoError(t, err)

	assert.True(t, stored.Published)
	assert.Equal(t, int64(3), stored.OwnerID)
	assert.Equal(t, int64(1), post.PostID)
}

func TestCreatePost_ExplicitPublishedFalse(t *testing.T) {
	var stored models.Post
	repo := &stubPostRepository{
		createPostFn: func(_ context.Context, post models.Post) (models.Post, error) {
			stored = post
			return post, nil
		},
	}
	svc := NewPostService(repo, logger.Nop())

	published := false
	_, err := svc.CreatePost(context.Background(), 3, models.PostCreate{
		Title:     "T",
		Content:   "C",
		Published: &published,
	})
	require.NoError(t, err)
	assert.False(t, stored.Published)
}

func TestCreatePost_MissingFields(t *testing.T) {
	svc := NewPostService(&stubPostRepository{}, logger.Nop())

	tests := []struct {
		name  string
		input models.PostCreate
	}{
		{name: "empty title", input: models.PostCreate{Content: "C"}},
		{name: "empty content", input: models.PostCreate{Title: "T"}},
		{name: "both empty", input: models.PostCreate{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePost(context.Background(), 1, tt.input)
			require.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestUpdatePost_OwnerCanUpdate(t *testing.T) {
	title, content := "new title", "new content"
	repo := &stubPostRepository{
		getPostFn: func(_ context.Context, postID int64) (models.Post, error) {
			return ownedPost(postID, 3), nil
		},
		updatePostFn: func(_ context.Context, postID int64, update models.PostUpdate) (models.Post, error) {
			post := ownedPost(postID, 3)
			post.Title = *update.Title
			post.Content = *update.Content
			return post, nil
		},
	}
	svc := NewPostService(repo, logger.Nop())

	post, err := svc.UpdatePost(context.Background(), 3, 5, models.PostUpdate{
		Title:   &title,
		Content: &content,
	})
	require.NoError(t, err)
	assert.Equal(t, "new title", post.Title)
}

func TestUpdatePost_NotOwner(t *testing.T) {
	title, content := "T", "C"
	repo := &stubPostRepository{
		getPostFn: func(_ context.Context, postID int64) (models.Post, error) {
			return ownedPost(postID, 99), nil
		},
	}
	svc := NewPostService(repo, logger.Nop())

	_, err := svc.UpdatePost(context.Background(), 3, 5, models.PostUpdate{
		Title:   &title,
		Content: &content,
	})
	require.ErrorIs(t, err, ErrNotPostOwner)
}

func TestUpdatePost_MissingFields(t *testing.T) {
	svc := NewPostService(&stubPostRepository{}, logger.Nop())

	title, empty := "T", ""
	tests := []struct {
		name  string
		input models.PostUpdate
	}{
		{name: "nil title", input: models.PostUpdate{Content: &title}},
		{name: "nil content", input: models.PostUpdate{Title: &title}},
		{name: "empty title", input: models.PostUpdate{Title: &empty, Content: &title}},
		{name: "empty content", input: models.PostUpdate{Title: &title, Content: &empty}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdatePost(context.Background(), 1, 1, tt.input)
			require.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestUpdatePost_NotFound(t *testing.T) {
	title, content := "T", "C"
	repo := &stubPostRepository{
		getPostFn: func(_ context.Context, _ int64) (models.Post, error) {
			return models.Post{}, store.ErrPostNotFound
		},
	}
	svc := NewPostService(repo, logger.Nop())

	_, err := svc.UpdatePost(context.Background(), 3, 99, models.PostUpdate{
		Title:   &title,
		Content: &content,
	})
	require.ErrorIs(t, err, store.ErrPostNotFound)
}

func TestDeletePost_OwnerCanDelete(t *testing.T) {
	deleted := false
	repo := &stubPostRepository{
		getPostFn: func(_ context.Context, postID int64) (models.Post, error) {
			return ownedPost(postID, 3), nil
		},
		deletePostFn: func(_ context.Context, _ int64) error {
			deleted = true
			return nil
		},
	}
	svc := NewPostService(repo, logger.Nop())

	require.NoError(t, svc.DeletePost(context.Background(), 3, 5))
	assert.True(t, deleted)
}

func TestDeletePost_NotOwner(t *testing.T) {
	repo := &stubPostRepository{
		getPostFn: func(_ context.Context, postID int64) (models.Post, error) {
			return ownedPost(postID, 99), nil
		},
	}
	svc := NewPostService(repo, logger.Nop())

	err := svc.DeletePost(context.Background(), 3, 5)
	require.ErrorIs(t, err, ErrNotPostOwner)
}

func TestDeletePost_NotFound(t *testing.T) {
	repo := &stubPostRepository{
		getPostFn: func(_ context.Context, _ int64) (models.Post, error) {
			return models.Post{}, store.ErrPostNotFound
		},
	}
	svc := NewPostService(repo, logger.Nop())

	err := svc.DeletePost(context.Background(), 3, 99)
	require.ErrorIs(t, err, store.ErrPostNotFound)
}

func TestListPosts_PassesThrough(t *testing.T) {
	repo := &stubPostRepository{
		listPostsFn: func(_ context.Context) ([]models.Post, error) {
			return []models.Post{ownedPost(1, 1), ownedPost(2, 2)}, nil
		},
	}
	svc := NewPostService(repo, logger.Nop())

	posts, err := svc.ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
}

func TestGetPost_PassesThrough(t *testing.T) {
	repo := &stubPostRepository{
		getPostFn: func(_ context.Context, postID int64) (models.Post, error) {
			return ownedPost(postID, 1), nil
		},
	}
	svc := NewPostService(repo, logger.Nop())

	post, err := svc.GetPost(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), post.PostID)
}
