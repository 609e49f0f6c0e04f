package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/mrwnh/eventreg/internal/domain"
)

const registrationColumns = `id, registration_type, first_name, last_name, email, phone_number,
			  company, designation, city, status, image_url, qr_code_url, created_at, updated_at`

type RegistrationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRegistrationRepo(db *dbpg.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *RegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `INSERT INTO registrations
			  (id, registration_type, first_name, last_name, email, phone_number,
			   company, designation, city, status, image_url, qr_code_url, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.ExecContext(
		ctx, query,
		reg.ID, reg.RegistrationType, reg.FirstName, reg.LastName, reg.Email, reg.PhoneNumber,
		reg.Company, reg.Designation, reg.City, reg.Status, reg.ImageURL, reg.QRCodeURL,
		reg.CreatedAt, reg.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert registration: %w", err)
	}

	return nil
}

func (r *RegistrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	return scanRegistration(row)
}

func (r *RegistrationRepository) GetByEmail(ctx context.Context, email string) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE lower(email) = lower($1)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, email)
	if err != nil {
		return nil, fmt.Errorf("get registration by email: %w", err)
	}

	return scanRegistration(row)
}

func (r *RegistrationRepository) List(ctx context.Context) ([]*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Registration
	for rows.Next() {
		reg, err := scanRegistrationRow(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, reg)
	}

	return res, rows.Err()
}

func (r *RegistrationRepository) Update(ctx context.Context, reg *domain.Registration) error {
	query := `UPDATE registrations
			  SET first_name = $2, last_name = $3, phone_number = $4, company = $5,
			      designation = $6, city = $7, image_url = $8, updated_at = NOW()
			  WHERE id = $1`

	res, err := r.db.ExecContext(
		ctx, query,
		reg.ID, reg.FirstName, reg.LastName, reg.PhoneNumber, reg.Company,
		reg.Designation, reg.City, reg.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("update registration: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update registration rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRegistrationNotFound
	}

	return nil
}

func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id string, status domain.RegistrationStatus) error {
	query := `UPDATE registrations SET status = $2, updated_at = NOW() WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update registration status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("status rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRegistrationNotFound
	}

	return nil
}

// Delete removes the registration with its payment, comments and check-in
// events in one transaction. Children go first so referential integrity
// holds at every point.
func (r *RegistrationRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, q := range []string{
		`DELETE FROM check_ins WHERE registration_id = $1`,
		`DELETE FROM comments WHERE registration_id = $1`,
		`DELETE FROM payments WHERE registration_id = $1`,
	} {
		if _, err := tx.ExecContext(ctx, q, id); err != nil {
			return fmt.Errorf("delete registration children: %w", err)
		}
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM registrations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRegistrationNotFound
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRegistration(row *sql.Row) (*domain.Registration, error) {
	reg, err := scanRegistrationRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, err
	}
	return reg, nil
}

func scanRegistrationRow(row rowScanner) (*domain.Registration, error) {
	var reg domain.Registration
	if err := row.Scan(
		&reg.ID, &reg.RegistrationType, &reg.FirstName, &reg.LastName, &reg.Email, &reg.PhoneNumber,
		&reg.Company, &reg.Designation, &reg.City, &reg.Status, &reg.ImageURL, &reg.QRCodeURL,
		&reg.CreatedAt, &reg.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}

	if !domain.ValidRegistrationStatus(reg.Status) {
		return nil, fmt.Errorf("registration %s has invalid status %q", reg.ID, reg.Status)
	}

	return &reg, nil
}
