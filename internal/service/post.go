package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jmorhart/inkwell/internal/domain"
)

// dateFormat is the human-readable publication date stamped on new posts,
// e.g. "September 1, 2026".
const dateFormat = "January 2, 2006"

// PostService handles blog post CRUD. Admin gating happens upstream in
// the route layer; the service trusts its callers on authorization.
type PostService struct {
	posts    domain.PostRepository
	comments domain.CommentRepository
	now      func() time.Time
}

// NewPostService creates a new PostService.
func NewPostService(posts domain.PostRepository, comments domain.CommentRepository) *PostService {
	return &PostService{posts: posts, comments: comments, now: time.Now}
}

// List returns all posts with their authors, in insertion order.
func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	return s.posts.List(ctx)
}

// Get returns a post with its author and comments.
func (s *PostService) Get(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}
	post.Comments = comments
	return post, nil
}

// Create validates and persists a new post, stamping the publication
// date at call time.
func (s *PostService) Create(ctx context.Context, post *domain.Post) error {
	if err := validatePost(post); err != nil {
		return err
	}

	post.Date = s.now().Format(dateFormat)
	if err := s.posts.Create(ctx, post); err != nil {
		return err
	}
	return nil
}

// Update overwrites a post's title, subtitle, body, and image URL.
// The stored publication date and comments are untouched.
func (s *PostService) Update(ctx context.Context, post *domain.Post) error {
	if err := validatePost(post); err != nil {
		return err
	}
	return s.posts.Update(ctx, post)
}

// Delete removes a post together with all its comments.
func (s *PostService) Delete(ctx context.Context, id int64) error {
	return s.posts.Delete(ctx, id)
}

func validatePost(post *domain.Post) error {
	if post.Title == "" || post.Subtitle == "" || post.Body == "" {
		return fmt.Errorf("%w: title, subtitle, and body are required", domain.ErrInvalidInput)
	}
	return nil
}
