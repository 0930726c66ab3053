package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmorhart/inkwell/internal/domain"
)

// CommentRepository implements domain.CommentRepository using SQLite.
type CommentRepository struct {
	db *sql.DB
}

// NewCommentRepository creates a new SQLite-backed CommentRepository.
func NewCommentRepository(db *DB) *CommentRepository {
	return &CommentRepository{db: db.SqlDB}
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (post_id, author_id, text, created_at)
		 VALUES (?, ?, ?, ?)`,
		comment.PostID, comment.AuthorID, comment.Text, now,
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	comment.ID = id
	comment.CreatedAt = now
	return nil
}

// ListByPost returns a post's comments with authors, oldest first.
func (r *CommentRepository) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT c.id, c.post_id, c.author_id, c.text, c.created_at,
		        u.id, u.name, u.email, u.role
		 FROM comments c
		 JOIN users u ON u.id = c.author_id
		 WHERE c.post_id = ?
		 ORDER BY c.id`, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		comment := domain.Comment{Author: &domain.User{}}
		if err := rows.Scan(
			&comment.ID, &comment.PostID, &comment.AuthorID, &comment.Text, &comment.CreatedAt,
			&comment.Author.ID, &comment.Author.Name, &comment.Author.Email, &comment.Author.Role,
		); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}
