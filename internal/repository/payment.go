package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/mrwnh/eventreg/internal/domain"
)

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments
			  (id, registration_id, status, ticket_type, last_four_digits, payment_date,
			   amount, currency, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(
		ctx, query,
		p.ID, p.RegistrationID, p.Status, p.TicketType, p.LastFourDigits, p.PaymentDate,
		decimalOrNil(p.Amount), p.Currency, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrPaymentAlreadyExists
		}
		return fmt.Errorf("insert payment: %w", err)
	}

	return nil
}

func (r *PaymentRepository) GetByRegistration(ctx context.Context, registrationID string) (*domain.Payment, error) {
	query := `SELECT id, registration_id, status, ticket_type, last_four_digits, payment_date,
			         amount, currency, created_at, updated_at
			  FROM payments
			  WHERE registration_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, registrationID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}

	return p, nil
}

// MarkPaid applies the gateway-reported outcome with a conditional update
// so two concurrent reconciliations cannot both win: only the transition
// out of UNPAID writes anything. false means the row was not UNPAID (or
// does not exist); callers disambiguate with a follow-up read.
func (r *PaymentRepository) MarkPaid(ctx context.Context, registrationID string, upd domain.PaidUpdate) (bool, error) {
	query := `UPDATE payments
			  SET status = $2, last_four_digits = $3, payment_date = $4,
			      amount = $5, currency = $6, updated_at = NOW()
			  WHERE registration_id = $1 AND status = $7`

	res, err := r.db.ExecContext(
		ctx, query,
		registrationID, domain.PaymentStatusPaid, upd.LastFourDigits, upd.PaymentDate,
		upd.Amount.StringFixed(2), upd.Currency, domain.PaymentStatusUnpaid,
	)
	if err != nil {
		return false, fmt.Errorf("mark payment paid: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("mark paid rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *PaymentRepository) TransitionStatus(ctx context.Context, registrationID string, from, to domain.PaymentStatus) (bool, error) {
	query := `UPDATE payments SET status = $3, updated_at = NOW()
			  WHERE registration_id = $1 AND status = $2`

	res, err := r.db.ExecContext(ctx, query, registrationID, from, to)
	if err != nil {
		return false, fmt.Errorf("transition payment status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("transition rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *PaymentRepository) UpdateTicketType(ctx context.Context, registrationID string, t domain.TicketType, amount decimal.Decimal, currency string) error {
	query := `UPDATE payments
			  SET ticket_type = $2, amount = $3, currency = $4, updated_at = NOW()
			  WHERE registration_id = $1`

	res, err := r.db.ExecContext(ctx, query, registrationID, t, amount.StringFixed(2), currency)
	if err != nil {
		return fmt.Errorf("update ticket type: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ticket type rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrPaymentNotFound
	}

	return nil
}

func scanPayment(row *sql.Row) (*domain.Payment, error) {
	var (
		p         domain.Payment
		amountStr sql.NullString
	)
	if err := row.Scan(
		&p.ID, &p.RegistrationID, &p.Status, &p.TicketType, &p.LastFourDigits, &p.PaymentDate,
		&amountStr, &p.Currency, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}

	if amountStr.Valid {
		amount, err := decimal.NewFromString(amountStr.String)
		if err != nil {
			return nil, fmt.Errorf("parse payment amount %q: %w", amountStr.String, err)
		}
		p.Amount = &amount
	}

	if !domain.ValidPaymentStatus(p.Status) {
		return nil, fmt.Errorf("payment %s has invalid status %q", p.ID, p.Status)
	}
	if p.TicketType != nil && !domain.ValidTicketType(*p.TicketType) {
		return nil, fmt.Errorf("payment %s has invalid ticket type %q", p.ID, *p.TicketType)
	}

	return &p, nil
}

func decimalOrNil(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.StringFixed(2)
}
