package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/mrwnh/eventreg/internal/domain"
)

type CommentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCommentRepo(db *dbpg.DB) *CommentRepository {
	return &CommentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	query := `INSERT INTO comments (id, registration_id, content, author_email, author_name, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := r.db.ExecContext(
		ctx, query,
		c.ID, c.RegistrationID, c.Content, c.AuthorEmail, c.AuthorName, c.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}

	return nil
}

func (r *CommentRepository) ListByRegistration(ctx context.Context, registrationID string) ([]domain.Comment, error) {
	query := `SELECT id, registration_id, content, author_email, author_name, created_at
			  FROM comments
			  WHERE registration_id = $1
			  ORDER BY created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, registrationID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var res []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.RegistrationID, &c.Content, &c.AuthorEmail, &c.AuthorName, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}
