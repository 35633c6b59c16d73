package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/postboard/postboard/models"
)

const (
	createUser = `INSERT INTO users (email, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	listPosts = `SELECT post_id, title, content, published, created_at, owner_id
    FROM posts
    ORDER BY post_id;`

	getPost = `SELECT post_id, title, content, published, created_at, owner_id
    FROM posts
    WHERE post_id = $1;`

	createPost = `INSERT INTO posts (title, content, published, owner_id)
    VALUES ($1, $2, $3, $4)
    RETURNING post_id, title, content, published, created_at, owner_id;`

	deletePost = `DELETE FROM posts
    WHERE post_id = $1;`
)

// buildUpdatePostQuery dynamically builds the partial UPDATE for a post.
// Only title, content, and published are updatable; post_id, created_at,
// and owner_id are never touched. Returns ErrBuildingSQLQuery when the
// update carries no fields at all.
func buildUpdatePostQuery(postID int64, update models.PostUpdate) (string, []any, error) {
	builder := sq.Update("posts").
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"post_id": postID}).
		Suffix("RETURNING post_id, title, content, published, created_at, owner_id")

	fields := 0
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
		fields++
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
		fields++
	}
	if update.Published != nil {
		builder = builder.Set("published", *update.Published)
		fields++
	}

	if fields == 0 {
		return "", nil, ErrBuildingSQLQuery
	}

	return builder.ToSql()
}
