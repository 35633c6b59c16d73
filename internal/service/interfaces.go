package service

import (
	"context"

	"github.com/postboard/postboard/models"
)

// AuthService handles account registration, credential verification, and
// JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// PostService orchestrates post CRUD on top of the persistence layer and
// enforces the ownership policy: updates and deletes are restricted to the
// post's owner.
type PostService interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	CreatePost(ctx context.Context, ownerID int64, input models.PostCreate) (models.Post, error)
	UpdatePost(ctx context.Context, userID, postID int64, input models.PostUpdate) (models.Post, error)
	DeletePost(ctx context.Context, userID, postID int64) error
}
