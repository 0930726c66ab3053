package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmorhart/inkwell/internal/domain"
	"github.com/jmorhart/inkwell/internal/service"
)

func TestCommentService_Add(t *testing.T) {
	posts, db, author := newTestPostService(t)
	comments := service.NewCommentService(db.Comments(), db.Posts(), db.Users())
	ctx := context.Background()

	post := &domain.Post{AuthorID: author.ID, Title: "Hello", Subtitle: "s", Body: "b"}
	if err := posts.Create(ctx, post); err != nil {
		t.Fatalf("create post: %v", err)
	}

	commenter := &domain.User{Name: "Reader", Email: "reader@example.com", PasswordHash: "hash"}
	if err := db.Users().Create(ctx, commenter); err != nil {
		t.Fatalf("create commenter: %v", err)
	}

	comment, err := comments.Add(ctx, post.ID, commenter.ID, "nice post")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if comment.ID == 0 {
		t.Fatal("expected comment ID to be set")
	}
	if comment.Author == nil || comment.Author.Name != "Reader" {
		t.Fatalf("expected comment author to be populated, got %+v", comment.Author)
	}

	// The comment shows up on the post.
	found, err := posts.Get(ctx, post.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(found.Comments) != 1 {
		t.Fatalf("expected 1 comment on post, got %d", len(found.Comments))
	}
	if found.Comments[0].Text != "nice post" {
		t.Fatalf("expected comment text %q, got %q", "nice post", found.Comments[0].Text)
	}
}

func TestCommentService_Add_EmptyText(t *testing.T) {
	posts, db, author := newTestPostService(t)
	comments := service.NewCommentService(db.Comments(), db.Posts(), db.Users())
	ctx := context.Background()

	post := &domain.Post{AuthorID: author.ID, Title: "Hello", Subtitle: "s", Body: "b"}
	if err := posts.Create(ctx, post); err != nil {
		t.Fatalf("create post: %v", err)
	}

	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := comments.Add(ctx, post.ID, author.ID, text); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("text %q: expected ErrInvalidInput, got %v", text, err)
		}
	}
}

func TestCommentService_Add_PostNotFound(t *testing.T) {
	_, db, author := newTestPostService(t)
	comments := service.NewCommentService(db.Comments(), db.Posts(), db.Users())

	_, err := comments.Add(context.Background(), 999, author.ID, "into the void")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
