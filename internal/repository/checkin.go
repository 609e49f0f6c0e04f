package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/mrwnh/eventreg/internal/domain"
)

type CheckInRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCheckInRepo(db *dbpg.DB) *CheckInRepository {
	return &CheckInRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create appends a check-in event. Rows are never updated or deleted
// (outside the registration cascade).
func (r *CheckInRepository) Create(ctx context.Context, c *domain.CheckIn) error {
	query := `INSERT INTO check_ins (id, registration_id, checked_in_by, checked_in_at)
			  VALUES ($1, $2, $3, $4)`

	if _, err := r.db.ExecContext(ctx, query, c.ID, c.RegistrationID, c.CheckedInBy, c.CheckedInAt); err != nil {
		return fmt.Errorf("insert check-in: %w", err)
	}

	return nil
}

func (r *CheckInRepository) ListByRegistration(ctx context.Context, registrationID string) ([]domain.CheckIn, error) {
	query := `SELECT id, registration_id, checked_in_by, checked_in_at
			  FROM check_ins
			  WHERE registration_id = $1
			  ORDER BY checked_in_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, registrationID)
	if err != nil {
		return nil, fmt.Errorf("list check-ins: %w", err)
	}
	defer rows.Close()

	var res []domain.CheckIn
	for rows.Next() {
		var c domain.CheckIn
		if err := rows.Scan(&c.ID, &c.RegistrationID, &c.CheckedInBy, &c.CheckedInAt); err != nil {
			return nil, fmt.Errorf("scan check-in: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}
