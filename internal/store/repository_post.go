package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/postboard/postboard/internal/logger"
	"github.com/postboard/postboard/models"
)

// postRepository is the PostgreSQL-backed implementation of [PostRepository].
// It handles post CRUD against the "posts" table.
//
// Every mutation is a single statement, so each one is atomic on its own:
// either the row is fully written/updated/removed and visible to subsequent
// reads, or nothing changes.
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// ListPosts returns every post ordered by post_id, i.e. creation order.
func (r *postRepository) ListPosts(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listPosts)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.PostID, &post.Title, &post.Content, &post.Published, &post.CreatedAt, &post.OwnerID); err != nil {
			log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error: rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

// GetPost retrieves a single post by its id.
//
// Error handling:
//   - Empty result set → [ErrPostNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *postRepository) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	var post models.Post
	row := r.db.QueryRowContext(ctx, getPost, postID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.GetPost").Msg("error: row is nil")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&post.PostID, &post.Title, &post.Content, &post.Published, &post.CreatedAt, &post.OwnerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}

		log.Err(err).Str("func", "*postRepository.GetPost").Msg("error: scanning error")
		return models.Post{}, err
	}

	return post, nil
}

// CreatePost persists a new post and returns the fully populated
// [models.Post] with server-assigned fields (PostID, CreatedAt).
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createPost, post.Title, post.Content, post.Published, post.OwnerID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error: row is nil")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&post.PostID, &post.Title, &post.Content, &post.Published, &post.CreatedAt, &post.OwnerID); err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error: scanning error")
		return models.Post{}, err
	}

	return post, nil
}

// UpdatePost applies a partial update (title/content/published only) to an
// existing post and returns the updated record. The UPDATE is built
// dynamically with squirrel so that nil fields are left untouched.
//
// Error handling:
//   - Post does not exist → [ErrPostNotFound].
//   - Update with no fields → [ErrBuildingSQLQuery].
func (r *postRepository) UpdatePost(ctx context.Context, postID int64, update models.PostUpdate) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePostQuery(postID, update)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error: building update query")
		return models.Post{}, err
	}

	var post models.Post
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error: row is nil")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&post.PostID, &post.Title, &post.Content, &post.Published, &post.CreatedAt, &post.OwnerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}

		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error: scanning error")
		return models.Post{}, err
	}

	return post, nil
}

// DeletePost removes a post permanently (hard delete, no tombstone).
//
// Error handling:
//   - Zero rows affected → [ErrPostNotFound].
func (r *postRepository) DeletePost(ctx context.Context, postID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deletePost, postID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error: delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error: rows affected unavailable")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}
