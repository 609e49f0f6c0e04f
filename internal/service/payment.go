package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/mrwnh/eventreg/internal/catalog"
	"github.com/mrwnh/eventreg/internal/domain"
	"github.com/mrwnh/eventreg/internal/service/ports"
)

type PaymentService struct {
	paymentRepo      ports.PaymentRepo
	registrationRepo ports.RegistrationRepo
	catalog          *catalog.Catalog
	logger           logger.Logger
}

func NewPaymentService(
	paymentRepo ports.PaymentRepo,
	registrationRepo ports.RegistrationRepo,
	catalog *catalog.Catalog,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo:      paymentRepo,
		registrationRepo: registrationRepo,
		catalog:          catalog,
		logger:           logger,
	}
}

// IssueRequest creates the payment record for an approved registration and
// prices it from the ticket catalog. A registration carries at most one
// payment record; issuing twice yields ErrPaymentAlreadyExists.
func (s *PaymentService) IssueRequest(ctx context.Context, registrationID string, ticketType domain.TicketType) (*domain.Payment, error) {
	if !domain.ValidTicketType(ticketType) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownTicketType, ticketType)
	}

	reg, err := s.registrationRepo.GetByID(ctx, registrationID)
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}
	if reg.Status != domain.RegistrationStatusApproved {
		return nil, fmt.Errorf("%w: registration is %s", domain.ErrRegistrationNotApproved, reg.Status)
	}

	price, err := s.catalog.Price(ticketType)
	if err != nil {
		return nil, err
	}

	amount := price.Amount
	currency := price.Currency
	payment := &domain.Payment{
		ID:             uuid.New().String(),
		RegistrationID: registrationID,
		Status:         domain.PaymentStatusUnpaid,
		TicketType:     &ticketType,
		Amount:         &amount,
		Currency:       &currency,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	s.logger.Info("payment request issued",
		logger.String("registration_id", registrationID),
		logger.String("ticket_type", string(ticketType)),
		logger.String("amount", amount.StringFixed(2)),
		logger.String("currency", currency),
	)

	return payment, nil
}

func (s *PaymentService) GetByRegistration(ctx context.Context, registrationID string) (*domain.Payment, error) {
	return s.paymentRepo.GetByRegistration(ctx, registrationID)
}

// UpdateTicketType reprices an outstanding payment request. Once money has
// moved the recorded ticket is frozen; only UNPAID payments may change.
func (s *PaymentService) UpdateTicketType(ctx context.Context, registrationID string, ticketType domain.TicketType) (*domain.Payment, error) {
	if !domain.ValidTicketType(ticketType) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownTicketType, ticketType)
	}

	payment, err := s.paymentRepo.GetByRegistration(ctx, registrationID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if payment.Status != domain.PaymentStatusUnpaid {
		return nil, fmt.Errorf("%w: payment is %s", domain.ErrPaymentNotUnpaid, payment.Status)
	}

	price, err := s.catalog.Price(ticketType)
	if err != nil {
		return nil, err
	}

	if err := s.paymentRepo.UpdateTicketType(ctx, registrationID, ticketType, price.Amount, price.Currency); err != nil {
		return nil, fmt.Errorf("update ticket type: %w", err)
	}

	return s.paymentRepo.GetByRegistration(ctx, registrationID)
}

// Waive marks an outstanding payment as WAIVED so check-in no longer
// requires money. Already-settled payments cannot be waived.
func (s *PaymentService) Waive(ctx context.Context, registrationID string) (*domain.Payment, error) {
	ok, err := s.paymentRepo.TransitionStatus(ctx, registrationID, domain.PaymentStatusUnpaid, domain.PaymentStatusWaived)
	if err != nil {
		return nil, fmt.Errorf("waive payment: %w", err)
	}
	if !ok {
		payment, err := s.paymentRepo.GetByRegistration(ctx, registrationID)
		if err != nil {
			return nil, fmt.Errorf("get payment: %w", err)
		}
		return nil, fmt.Errorf("%w: payment is %s", domain.ErrPaymentNotUnpaid, payment.Status)
	}

	s.logger.Info("payment waived", logger.String("registration_id", registrationID))

	return s.paymentRepo.GetByRegistration(ctx, registrationID)
}

// Refund marks a settled payment as REFUNDED. The actual money movement
// happens in the gateway back office; this records the outcome.
func (s *PaymentService) Refund(ctx context.Context, registrationID string) (*domain.Payment, error) {
	ok, err := s.paymentRepo.TransitionStatus(ctx, registrationID, domain.PaymentStatusPaid, domain.PaymentStatusRefunded)
	if err != nil {
		return nil, fmt.Errorf("refund payment: %w", err)
	}
	if !ok {
		payment, err := s.paymentRepo.GetByRegistration(ctx, registrationID)
		if err != nil {
			return nil, fmt.Errorf("get payment: %w", err)
		}
		return nil, fmt.Errorf("%w: payment is %s", domain.ErrPaymentNotPaid, payment.Status)
	}

	s.logger.Info("payment refunded", logger.String("registration_id", registrationID))

	return s.paymentRepo.GetByRegistration(ctx, registrationID)
}
