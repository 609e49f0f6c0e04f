package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"

	"github.com/mrwnh/eventreg/internal/catalog"
	"github.com/mrwnh/eventreg/internal/domain"
	"github.com/mrwnh/eventreg/internal/gateway"
	"github.com/mrwnh/eventreg/internal/service/ports"
)

const (
	customParamRegistrationID = "registrationId"
	customParamTicketType     = "ticketType"
)

// CheckoutService prepares hosted-payment-page sessions and reconciles
// their outcome. It holds no session state of its own: everything needed
// to finish a checkout travels through the gateway's custom parameters.
type CheckoutService struct {
	gateway          ports.PaymentGateway
	paymentRepo      ports.PaymentRepo
	registrationRepo ports.RegistrationRepo
	catalog          *catalog.Catalog
	logger           logger.Logger
}

func NewCheckoutService(
	gw ports.PaymentGateway,
	paymentRepo ports.PaymentRepo,
	registrationRepo ports.RegistrationRepo,
	catalog *catalog.Catalog,
	logger logger.Logger,
) *CheckoutService {
	return &CheckoutService{
		gateway:          gw,
		paymentRepo:      paymentRepo,
		registrationRepo: registrationRepo,
		catalog:          catalog,
		logger:           logger,
	}
}

// Prepare opens a checkout session for an outstanding payment. The amount
// always comes from the ticket catalog, never from the caller, and the
// registration id rides along in the merchant transaction id and the
// custom parameters so reconciliation can find its way back. Nothing is
// persisted here: the authoritative state change happens on Reconcile, so
// an abandoned checkout leaves no trace.
func (s *CheckoutService) Prepare(ctx context.Context, registrationID string, ticketType domain.TicketType, currency string) (*domain.PreparedCheckout, error) {
	price, err := s.catalog.Price(ticketType)
	if err != nil {
		return nil, err
	}
	entityID, err := s.catalog.EntityID(currency)
	if err != nil {
		return nil, err
	}

	if _, err := s.registrationRepo.GetByID(ctx, registrationID); err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	payment, err := s.paymentRepo.GetByRegistration(ctx, registrationID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if payment.Status != domain.PaymentStatusUnpaid {
		return nil, fmt.Errorf("%w: payment is %s", domain.ErrPaymentNotUnpaid, payment.Status)
	}

	amount := price.Amount.StringFixed(2)
	session, err := s.gateway.CreateCheckout(ctx, ports.CheckoutRequest{
		EntityID:              entityID,
		Amount:                amount,
		Currency:              currency,
		PaymentType:           gateway.PaymentTypeDebit,
		MerchantTransactionID: registrationID,
		CustomParameters: map[string]string{
			customParamRegistrationID: registrationID,
			customParamTicketType:     string(ticketType),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create checkout: %w", err)
	}

	s.logger.Info("checkout prepared",
		logger.String("registration_id", registrationID),
		logger.String("checkout_id", session.ID),
		logger.String("amount", amount),
		logger.String("currency", currency),
	)

	return &domain.PreparedCheckout{
		CheckoutID: session.ID,
		EntityID:   entityID,
		Amount:     amount,
		Currency:   currency,
		TicketType: ticketType,
	}, nil
}

// Reconcile asks the gateway for the outcome of a finished checkout and
// settles the payment record. The registration is recovered from the
// report itself, so the call needs nothing beyond the resource path the
// payment page redirected back with. Reconciling the same checkout twice
// is a no-op that returns the stored payment.
func (s *CheckoutService) Reconcile(ctx context.Context, resourcePath, currency string) (*domain.Payment, error) {
	entityID, err := s.catalog.EntityID(currency)
	if err != nil {
		return nil, err
	}

	report, err := s.gateway.PaymentStatus(ctx, resourcePath, entityID)
	if err != nil {
		return nil, fmt.Errorf("query payment status: %w", err)
	}

	registrationID := report.MerchantTransactionID
	if registrationID == "" {
		registrationID = report.CustomParameters[customParamRegistrationID]
	}
	if registrationID == "" {
		return nil, fmt.Errorf("%w: report carries no registration id", domain.ErrValidation)
	}

	if !report.Success {
		s.logger.Warn("payment declined",
			logger.String("registration_id", registrationID),
			logger.String("result_code", report.ResultCode),
			logger.String("result_description", report.ResultDescription),
		)
		return nil, fmt.Errorf("%w: %s %s", domain.ErrPaymentDeclined, report.ResultCode, report.ResultDescription)
	}

	upd := domain.PaidUpdate{
		PaymentDate:    time.Now().UTC(),
		LastFourDigits: report.CardLast4,
	}
	if upd.Amount, err = decimal.NewFromString(report.Amount); err != nil {
		return nil, fmt.Errorf("%w: report amount %q: %v", domain.ErrGatewayUnavailable, report.Amount, err)
	}
	upd.Currency = report.Currency

	marked, err := s.paymentRepo.MarkPaid(ctx, registrationID, upd)
	if err != nil {
		return nil, fmt.Errorf("mark paid: %w", err)
	}

	payment, err := s.paymentRepo.GetByRegistration(ctx, registrationID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	if !marked {
		if payment.Status == domain.PaymentStatusPaid {
			// Second reconciliation of the same checkout.
			return payment, nil
		}
		return nil, fmt.Errorf("%w: payment is %s", domain.ErrPaymentNotUnpaid, payment.Status)
	}

	s.logger.Info("payment reconciled",
		logger.String("registration_id", registrationID),
		logger.String("result_code", report.ResultCode),
	)

	return payment, nil
}
