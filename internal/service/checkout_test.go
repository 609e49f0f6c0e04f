package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mrwnh/eventreg/internal/domain"
	"github.com/mrwnh/eventreg/internal/service/ports"
	"github.com/mrwnh/eventreg/internal/service/ports/mocks"
)

func newCheckoutService(t *testing.T) (*CheckoutService, *mocks.MockPaymentGateway, *mocks.MockPaymentRepo, *mocks.MockRegistrationRepo) {
	t.Helper()
	gw := mocks.NewMockPaymentGateway(t)
	paymentRepo := mocks.NewMockPaymentRepo(t)
	registrationRepo := mocks.NewMockRegistrationRepo(t)
	svc := NewCheckoutService(gw, paymentRepo, registrationRepo, newTestCatalog(t), newTestLogger(t))
	return svc, gw, paymentRepo, registrationRepo
}

func TestCheckoutService_Prepare_Success(t *testing.T) {
	svc, gw, paymentRepo, registrationRepo := newCheckoutService(t)

	reg := &domain.Registration{ID: "r1", Status: domain.RegistrationStatusApproved}
	full := domain.TicketTypeFull
	unpaid := &domain.Payment{ID: "p1", RegistrationID: "r1", Status: domain.PaymentStatusUnpaid, TicketType: &full}

	registrationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)
	paymentRepo.EXPECT().GetByRegistration(mock.Anything, "r1").Return(unpaid, nil)
	gw.EXPECT().CreateCheckout(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, req ports.CheckoutRequest) {
			assert.Equal(t, "entity-eur", req.EntityID)
			assert.Equal(t, "300.00", req.Amount)
			assert.Equal(t, "EUR", req.Currency)
			assert.Equal(t, "DB", req.PaymentType)
			assert.Equal(t, "r1", req.MerchantTransactionID)
			assert.Equal(t, "r1", req.CustomParameters["registrationId"])
			assert.Equal(t, "FULL", req.CustomParameters["ticketType"])
		}).
		Return(&ports.CheckoutSession{ID: "cs-1", ResultCode: "000.200.100"}, nil)

	prepared, err := svc.Prepare(context.Background(), "r1", domain.TicketTypeFull, "EUR")

	require.NoError(t, err)
	assert.Equal(t, "cs-1", prepared.CheckoutID)
	assert.Equal(t, "entity-eur", prepared.EntityID)
	assert.Equal(t, "300.00", prepared.Amount)
	assert.Equal(t, "EUR", prepared.Currency)
}

func TestCheckoutService_Prepare_UnknownCurrencyFailsBeforeGateway(t *testing.T) {
	svc, _, _, _ := newCheckoutService(t)

	_, err := svc.Prepare(context.Background(), "r1", domain.TicketTypeFull, "JPY")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownCurrency)
}

func TestCheckoutService_Prepare_UnknownTicketType(t *testing.T) {
	svc, _, _, _ := newCheckoutService(t)

	_, err := svc.Prepare(context.Background(), "r1", "PLATINUM", "EUR")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownTicketType)
}

func TestCheckoutService_Prepare_PaymentNotUnpaid(t *testing.T) {
	svc, _, paymentRepo, registrationRepo := newCheckoutService(t)

	reg := &domain.Registration{ID: "r1", Status: domain.RegistrationStatusApproved}
	paid := &domain.Payment{ID: "p1", RegistrationID: "r1", Status: domain.PaymentStatusPaid}

	registrationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)
	paymentRepo.EXPECT().GetByRegistration(mock.Anything, "r1").Return(paid, nil)

	_, err := svc.Prepare(context.Background(), "r1", domain.TicketTypeFull, "EUR")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentNotUnpaid)
}

func TestCheckoutService_Reconcile_Success(t *testing.T) {
	svc, gw, paymentRepo, _ := newCheckoutService(t)

	report := &ports.PaymentReport{
		Success:               true,
		ResultCode:            "000.000.000",
		MerchantTransactionID: "r1",
		CardLast4:             "4242",
		Amount:                "300.00",
		Currency:              "EUR",
	}
	paid := &domain.Payment{ID: "p1", RegistrationID: "r1", Status: domain.PaymentStatusPaid}

	gw.EXPECT().PaymentStatus(mock.Anything, "/v1/checkouts/cs-1/payment", "entity-eur").Return(report, nil)
	paymentRepo.EXPECT().MarkPaid(mock.Anything, "r1", mock.Anything).
		Run(func(ctx context.Context, registrationID string, upd domain.PaidUpdate) {
			assert.Equal(t, "4242", upd.LastFourDigits)
			assert.Equal(t, "300.00", upd.Amount.StringFixed(2))
			assert.Equal(t, "EUR", upd.Currency)
		}).
		Return(true, nil)
	paymentRepo.EXPECT().GetByRegistration(mock.Anything, "r1").Return(paid, nil)

	payment, err := svc.Reconcile(context.Background(), "/v1/checkouts/cs-1/payment", "EUR")

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, payment.Status)
}

func TestCheckoutService_Reconcile_SecondCallIsNoOp(t *testing.T) {
	svc, gw, paymentRepo, _ := newCheckoutService(t)

	report := &ports.PaymentReport{
		Success:               true,
		ResultCode:            "000.100.110",
		MerchantTransactionID: "r1",
		Amount:                "300.00",
		Currency:              "EUR",
	}
	paid := &domain.Payment{ID: "p1", RegistrationID: "r1", Status: domain.PaymentStatusPaid}

	gw.EXPECT().PaymentStatus(mock.Anything, "/v1/checkouts/cs-1/payment", "entity-eur").Return(report, nil)
	paymentRepo.EXPECT().MarkPaid(mock.Anything, "r1", mock.Anything).Return(false, nil)
	paymentRepo.EXPECT().GetByRegistration(mock.Anything, "r1").Return(paid, nil)

	payment, err := svc.Reconcile(context.Background(), "/v1/checkouts/cs-1/payment", "EUR")

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, payment.Status)
}

func TestCheckoutService_Reconcile_RecoversIDFromCustomParameters(t *testing.T) {
	svc, gw, paymentRepo, _ := newCheckoutService(t)

	report := &ports.PaymentReport{
		Success:          true,
		ResultCode:       "000.000.000",
		CustomParameters: map[string]string{"registrationId": "r1", "ticketType": "FULL"},
		Amount:           "300.00",
		Currency:         "EUR",
	}
	paid := &domain.Payment{ID: "p1", RegistrationID: "r1", Status: domain.PaymentStatusPaid}

	gw.EXPECT().PaymentStatus(mock.Anything, "/v1/checkouts/cs-1/payment", "entity-eur").Return(report, nil)
	paymentRepo.EXPECT().MarkPaid(mock.Anything, "r1", mock.Anything).Return(true, nil)
	paymentRepo.EXPECT().GetByRegistration(mock.Anything, "r1").Return(paid, nil)

	_, err := svc.Reconcile(context.Background(), "/v1/checkouts/cs-1/payment", "EUR")

	require.NoError(t, err)
}

func TestCheckoutService_Reconcile_Decline(t *testing.T) {
	svc, gw, _, _ := newCheckoutService(t)

	report := &ports.PaymentReport{
		Success:               false,
		ResultCode:            "800.100.151",
		ResultDescription:     "transaction declined (invalid card)",
		MerchantTransactionID: "r1",
	}

	gw.EXPECT().PaymentStatus(mock.Anything, "/v1/checkouts/cs-1/payment", "entity-eur").Return(report, nil)

	_, err := svc.Reconcile(context.Background(), "/v1/checkouts/cs-1/payment", "EUR")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentDeclined)
	assert.Contains(t, err.Error(), "800.100.151")
}

func TestCheckoutService_Reconcile_GatewayFault(t *testing.T) {
	svc, gw, _, _ := newCheckoutService(t)

	gw.EXPECT().PaymentStatus(mock.Anything, "/v1/checkouts/cs-1/payment", "entity-eur").
		Return(nil, domain.ErrGatewayUnavailable)

	_, err := svc.Reconcile(context.Background(), "/v1/checkouts/cs-1/payment", "EUR")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
}

func TestCheckoutService_Reconcile_MalformedAmountIsGatewayFault(t *testing.T) {
	svc, gw, _, _ := newCheckoutService(t)

	report := &ports.PaymentReport{
		Success:               true,
		ResultCode:            "000.000.000",
		MerchantTransactionID: "r1",
		CardLast4:             "4242",
		Amount:                "three hundred",
		Currency:              "EUR",
	}

	gw.EXPECT().PaymentStatus(mock.Anything, "/v1/checkouts/cs-1/payment", "entity-eur").Return(report, nil)

	_, err := svc.Reconcile(context.Background(), "/v1/checkouts/cs-1/payment", "EUR")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
}
