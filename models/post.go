package models

import "time"

// Post represents a single blog entry authored by a registered user.
type Post struct {
	// PostID is the internal unique identifier of the post.
	PostID int64 `json:"-"`

	// AuthorID references the UserID of the post's author.
	AuthorID int64 `json:"-"`

	// AuthorName is the author's username, joined in from the users table
	// for display purposes. It is never written back.
	AuthorName string `json:"author"`

	// Title is the post headline. Required on create and update.
	Title string `json:"title"`

	// Body is the post content. May be empty.
	Body string `json:"body"`

	// CreatedAt is the timestamp when the post was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}
