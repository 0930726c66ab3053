package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmorhart/inkwell/internal/domain"
	"github.com/jmorhart/inkwell/internal/repository/sqlite"
	"github.com/jmorhart/inkwell/internal/service"
)

func newTestPostService(t *testing.T) (*service.PostService, *sqlite.DB, *domain.User) {
	t.Helper()
	db := newTestDB(t)
	author := &domain.User{Name: "Author", Email: "author@example.com", PasswordHash: "hash"}
	if err := db.Users().Create(context.Background(), author); err != nil {
		t.Fatalf("create author: %v", err)
	}
	return service.NewPostService(db.Posts(), db.Comments()), db, author
}

func TestPostService_Create_StampsDate(t *testing.T) {
	posts, _, author := newTestPostService(t)
	ctx := context.Background()

	post := &domain.Post{
		AuthorID: author.ID,
		Title:    "Hello",
		Subtitle: "First post",
		Body:     "<p>Welcome.</p>",
		ImgURL:   "https://example.com/cover.jpg",
	}
	if err := posts.Create(ctx, post); err != nil {
		t.Fatalf("Create: %v", err)
	}

	want := time.Now().Format("January 2, 2006")
	if post.Date != want {
		t.Fatalf("expected date %q, got %q", want, post.Date)
	}
}

func TestPostService_CreateThenGet_RoundTrip(t *testing.T) {
	posts, _, author := newTestPostService(t)
	ctx := context.Background()

	post := &domain.Post{
		AuthorID: author.ID,
		Title:    "Round Trip",
		Subtitle: "In and out",
		Body:     "<p>Body.</p>",
		ImgURL:   "https://example.com/rt.jpg",
	}
	if err := posts.Create(ctx, post); err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := posts.Get(ctx, post.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found.Title != post.Title || found.Subtitle != post.Subtitle ||
		found.Body != post.Body || found.ImgURL != post.ImgURL {
		t.Fatalf("round trip mismatch: %+v", found)
	}
	if len(found.Comments) != 0 {
		t.Fatalf("expected empty comment list on a fresh post, got %d", len(found.Comments))
	}
}

func TestPostService_Create_DuplicateTitle(t *testing.T) {
	posts, _, author := newTestPostService(t)
	ctx := context.Background()

	base := &domain.Post{AuthorID: author.ID, Title: "Taken", Subtitle: "s", Body: "b"}
	if err := posts.Create(ctx, base); err != nil {
		t.Fatalf("Create: %v", err)
	}

	err := posts.Create(ctx, &domain.Post{AuthorID: author.ID, Title: "Taken", Subtitle: "s2", Body: "b2"})
	if !errors.Is(err, domain.ErrDuplicateTitle) {
		t.Fatalf("expected ErrDuplicateTitle, got %v", err)
	}
}

func TestPostService_Create_MissingFields(t *testing.T) {
	posts, _, author := newTestPostService(t)

	err := posts.Create(context.Background(), &domain.Post{AuthorID: author.ID, Title: "Only Title"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPostService_Update_KeepsDate(t *testing.T) {
	posts, _, author := newTestPostService(t)
	ctx := context.Background()

	post := &domain.Post{AuthorID: author.ID, Title: "Hello", Subtitle: "s", Body: "b"}
	if err := posts.Create(ctx, post); err != nil {
		t.Fatalf("Create: %v", err)
	}
	originalDate := post.Date

	post.Title = "Hello v2"
	if err := posts.Update(ctx, post); err != nil {
		t.Fatalf("Update: %v", err)
	}

	found, err := posts.Get(ctx, post.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found.Title != "Hello v2" {
		t.Fatalf("expected title Hello v2, got %q", found.Title)
	}
	if found.ID != post.ID {
		t.Fatalf("expected same id %d, got %d", post.ID, found.ID)
	}
	if found.Date != originalDate {
		t.Fatalf("expected date %q unchanged, got %q", originalDate, found.Date)
	}
}

func TestPostService_Update_NotFound(t *testing.T) {
	posts, _, author := newTestPostService(t)

	err := posts.Update(context.Background(), &domain.Post{
		ID: 999, AuthorID: author.ID, Title: "Ghost", Subtitle: "s", Body: "b",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostService_Delete(t *testing.T) {
	posts, _, author := newTestPostService(t)
	ctx := context.Background()

	post := &domain.Post{AuthorID: author.ID, Title: "Doomed", Subtitle: "s", Body: "b"}
	if err := posts.Create(ctx, post); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := posts.Delete(ctx, post.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := posts.Get(ctx, post.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestPostService_Get_NotFound(t *testing.T) {
	posts, _, _ := newTestPostService(t)

	if _, err := posts.Get(context.Background(), 999); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
