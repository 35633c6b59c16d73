package models

import "time"

// Post is a single published entry owned by a registered user.
type Post struct {
	// PostID is the store-assigned surrogate key of the post.
	// Immutable once assigned.
	PostID int64 `json:"id"`

	// Title is the short heading of the post. Required, non-empty.
	Title string `json:"title"`

	// Content is the body text of the post. Required, non-empty.
	Content string `json:"content"`

	// Published marks whether the post is visible. Defaults to true.
	Published bool `json:"published"`

	// CreatedAt is set once by the store at insert time and never changes.
	CreatedAt time.Time `json:"created_at"`

	// OwnerID references the user that created the post. Updates and
	// deletes are restricted to this user.
	OwnerID int64 `json:"owner_id"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// PostCreate is the request body for creating a post. Published is a
// pointer so that an omitted field can be distinguished from an explicit
// false and defaulted to true.
type PostCreate struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Published *bool  `json:"published"`
}

// PostUpdate is the request body for updating a post. Every field is
// optional; nil fields are left untouched by the store. PostID,
// CreatedAt and OwnerID are never updatable.
type PostUpdate struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Published *bool   `json:"published"`
}
