package domain

import (
	"context"
	"time"
)

// Post is a single blog entry authored by the administrator.
// Date is the human-readable publication date stamped at creation
// time ("January 2, 2006" format) and is never modified by edits.
type Post struct {
	ID        int64
	AuthorID  int64
	Title     string
	Subtitle  string
	Date      string
	Body      string
	ImgURL    string
	Author    *User
	Comments  []Comment
	CreatedAt time.Time
}

// PostRepository defines persistence operations for blog posts.
// List and GetByID populate the Author field; GetByID does not load
// comments (callers fetch them through CommentRepository).
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id int64) (*Post, error)
	List(ctx context.Context) ([]Post, error)
	Update(ctx context.Context, post *Post) error
	Delete(ctx context.Context, id int64) error
}
