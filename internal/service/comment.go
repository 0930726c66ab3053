package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmorhart/inkwell/internal/domain"
)

// CommentService handles comment creation. Comments are append-only.
type CommentService struct {
	comments domain.CommentRepository
	posts    domain.PostRepository
	users    domain.UserRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(comments domain.CommentRepository, posts domain.PostRepository, users domain.UserRepository) *CommentService {
	return &CommentService{comments: comments, posts: posts, users: users}
}

// Add attaches a comment by the given author to a post. The post must
// exist and the text must be non-empty. The returned comment has its
// Author populated so callers can render it immediately.
func (s *CommentService) Add(ctx context.Context, postID, authorID int64, text string) (*domain.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: comment text is required", domain.ErrInvalidInput)
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Text:     text,
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("load comment author: %w", err)
	}
	comment.Author = author

	return comment, nil
}
