package domain

import (
	"context"
	"time"
)

// Comment is a reader's remark attached to a post. Comments are
// append-only: there is no update or user-facing delete.
type Comment struct {
	ID        int64
	PostID    int64
	AuthorID  int64
	Text      string
	Author    *User
	CreatedAt time.Time
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	ListByPost(ctx context.Context, postID int64) ([]Comment, error)
}
