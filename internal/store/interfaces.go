package store

import (
	"context"

	"github.com/postboard/postboard/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// PostRepository is the data-access contract for posts.
//
// ListPosts returns posts in creation order (ORDER BY post_id); the store's
// default ordering is unspecified, so it is made explicit in the query.
type PostRepository interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	UpdatePost(ctx context.Context, postID int64, update models.PostUpdate) (models.Post, error)
	DeletePost(ctx context.Context, postID int64) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implemented by [PostgresErrorClassifier].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
