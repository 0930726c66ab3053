package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmorhart/inkwell/internal/domain"
)

// PostRepository implements domain.PostRepository using SQLite.
type PostRepository struct {
	db *sql.DB
}

// NewPostRepository creates a new SQLite-backed PostRepository.
func NewPostRepository(db *DB) *PostRepository {
	return &PostRepository{db: db.SqlDB}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO blog_posts (author_id, title, subtitle, date, body, img_url, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		post.AuthorID, post.Title, post.Subtitle, post.Date, post.Body, post.ImgURL, now,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicateTitle
		}
		return fmt.Errorf("insert post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	post.ID = id
	post.CreatedAt = now
	return nil
}

// GetByID returns a post with its author populated. Comments are loaded
// separately through the comment repository.
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT p.id, p.author_id, p.title, p.subtitle, p.date, p.body, p.img_url, p.created_at,
		        u.id, u.name, u.email, u.role
		 FROM blog_posts p
		 JOIN users u ON u.id = p.author_id
		 WHERE p.id = ?`, id)

	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query post by id: %w", err)
	}
	return post, nil
}

// List returns all posts with authors, oldest first (insertion order).
func (r *PostRepository) List(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT p.id, p.author_id, p.title, p.subtitle, p.date, p.body, p.img_url, p.created_at,
		        u.id, u.name, u.email, u.role
		 FROM blog_posts p
		 JOIN users u ON u.id = p.author_id
		 ORDER BY p.id`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}

// Update overwrites the mutable fields of an existing post. The stored
// publication date is left untouched.
func (r *PostRepository) Update(ctx context.Context, post *domain.Post) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE blog_posts SET title = ?, subtitle = ?, body = ?, img_url = ?, author_id = ?
		 WHERE id = ?`,
		post.Title, post.Subtitle, post.Body, post.ImgURL, post.AuthorID, post.ID,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicateTitle
		}
		return fmt.Errorf("update post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a post and every comment attached to it. The schema
// declares ON DELETE CASCADE, but the comments are also deleted
// explicitly so the invariant survives a connection opened without
// foreign key enforcement.
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM comments WHERE post_id = ?", id); err != nil {
		return fmt.Errorf("delete comments: %w", err)
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM blog_posts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*domain.Post, error) {
	post := &domain.Post{Author: &domain.User{}}
	err := row.Scan(
		&post.ID, &post.AuthorID, &post.Title, &post.Subtitle, &post.Date,
		&post.Body, &post.ImgURL, &post.CreatedAt,
		&post.Author.ID, &post.Author.Name, &post.Author.Email, &post.Author.Role,
	)
	if err != nil {
		return nil, err
	}
	return post, nil
}
