package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/mrwnh/eventreg/internal/domain"
	"github.com/mrwnh/eventreg/internal/service/ports"
)

type CheckInService struct {
	checkInRepo      ports.CheckInRepo
	registrationRepo ports.RegistrationRepo
	paymentRepo      ports.PaymentRepo
	logger           logger.Logger
}

func NewCheckInService(
	checkInRepo ports.CheckInRepo,
	registrationRepo ports.RegistrationRepo,
	paymentRepo ports.PaymentRepo,
	logger logger.Logger,
) *CheckInService {
	return &CheckInService{
		checkInRepo:      checkInRepo,
		registrationRepo: registrationRepo,
		paymentRepo:      paymentRepo,
		logger:           logger,
	}
}

// CheckIn admits the attendee at the door. A REJECTED registration is
// never admitted, forced or not. Otherwise admission requires a PAID or
// WAIVED payment unless force overrides the payment gate. Each admission
// appends a check-in event and promotes the registration to APPROVED.
func (s *CheckInService) CheckIn(ctx context.Context, registrationID, staffEmail string, force bool) (*domain.CheckIn, error) {
	reg, err := s.registrationRepo.GetByID(ctx, registrationID)
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}
	if reg.Status == domain.RegistrationStatusRejected {
		return nil, domain.ErrRegistrationRejected
	}

	if !force {
		payment, err := s.paymentRepo.GetByRegistration(ctx, registrationID)
		switch {
		case errors.Is(err, domain.ErrPaymentNotFound):
			return nil, fmt.Errorf("%w: no payment record", domain.ErrPaymentRequired)
		case err != nil:
			return nil, fmt.Errorf("get payment: %w", err)
		}
		if payment.Status != domain.PaymentStatusPaid && payment.Status != domain.PaymentStatusWaived {
			return nil, fmt.Errorf("%w: payment is %s", domain.ErrPaymentRequired, payment.Status)
		}
	}

	event := &domain.CheckIn{
		ID:             uuid.New().String(),
		RegistrationID: registrationID,
		CheckedInBy:    staffEmail,
		CheckedInAt:    time.Now().UTC(),
	}
	if err := s.checkInRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create check-in: %w", err)
	}

	if reg.Status != domain.RegistrationStatusApproved {
		if err := s.registrationRepo.UpdateStatus(ctx, registrationID, domain.RegistrationStatusApproved); err != nil {
			return nil, fmt.Errorf("promote registration: %w", err)
		}
	}

	s.logger.Info("attendee checked in",
		logger.String("registration_id", registrationID),
		logger.String("checked_in_by", staffEmail),
		logger.Any("force", force),
	)

	return event, nil
}

func (s *CheckInService) History(ctx context.Context, registrationID string) ([]domain.CheckIn, error) {
	if _, err := s.registrationRepo.GetByID(ctx, registrationID); err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}
	return s.checkInRepo.ListByRegistration(ctx, registrationID)
}
