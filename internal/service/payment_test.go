package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mrwnh/eventreg/internal/catalog"
	"github.com/mrwnh/eventreg/internal/domain"
	"github.com/mrwnh/eventreg/internal/service/ports/mocks"
)

func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(
		map[domain.TicketType]catalog.Price{
			domain.TicketTypeFull: {Amount: decimal.NewFromInt(300), Currency: "EUR"},
			domain.TicketTypeVIP:  {Amount: decimal.NewFromInt(400), Currency: "EUR"},
			domain.TicketTypeFree: {Amount: decimal.Zero, Currency: "EUR"},
		},
		map[string]string{"EUR": "entity-eur", "SAR": "entity-sar"},
	)
	require.NoError(t, err)
	return cat
}

func newPaymentService(t *testing.T) (*PaymentService, *mocks.MockPaymentRepo, *mocks.MockRegistrationRepo) {
	t.Helper()
	paymentRepo := mocks.NewMockPaymentRepo(t)
	registrationRepo := mocks.NewMockRegistrationRepo(t)
	svc := NewPaymentService(paymentRepo, registrationRepo, newTestCatalog(t), newTestLogger(t))
	return svc, paymentRepo, registrationRepo
}

func TestPaymentService_IssueRequest_Success(t *testing.T) {
	svc, paymentRepo, registrationRepo := newPaymentService(t)

	reg := &domain.Registration{ID: "r1", Status: domain.RegistrationStatusApproved}
	registrationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)
	paymentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	payment, err := svc.IssueRequest(context.Background(), "r1", domain.TicketTypeFull)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusUnpaid, payment.Status)
	require.NotNil(t, payment.Amount)
	assert.Equal(t, "300.00", payment.Amount.StringFixed(2))
	require.NotNil(t, payment.Currency)
	assert.Equal(t, "EUR", *payment.Currency)
}

func TestPaymentService_IssueRequest_NotApproved(t *testing.T) {
	svc, _, registrationRepo := newPaymentService(t)

	reg := &domain.Registration{ID: "r1", Status: domain.RegistrationStatusPending}
	registrationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)

	_, err := svc.IssueRequest(context.Background(), "r1", domain.TicketTypeFull)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistrationNotApproved)
}

func TestPaymentService_IssueRequest_RegistrationNotFound(t *testing.T) {
	svc, _, registrationRepo := newPaymentService(t)

	registrationRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrRegistrationNotFound)

	_, err := svc.IssueRequest(context.Background(), "missing", domain.TicketTypeFull)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
}

func TestPaymentService_IssueRequest_AlreadyExists(t *testing.T) {
	svc, paymentRepo, registrationRepo := newPaymentService(t)

	reg := &domain.Registration{ID: "r1", Status: domain.RegistrationStatusApproved}
	registrationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)
	paymentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrPaymentAlreadyExists)

	_, err := svc.IssueRequest(context.Background(), "r1", domain.TicketTypeFull)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentAlreadyExists)
}

func TestPaymentService_IssueRequest_UnknownTicketType(t *testing.T) {
	svc, _, _ := newPaymentService(t)

	_, err := svc.IssueRequest(context.Background(), "r1", "PLATINUM")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownTicketType)
}

func TestPaymentService_UpdateTicketType_Reprices(t *testing.T) {
	svc, paymentRepo, _ := newPaymentService(t)

	full := domain.TicketTypeFull
	unpaid := &domain.Payment{ID: "p1", RegistrationID: "r1", Status: domain.PaymentStatusUnpaid, TicketType: &full}
	vip := domain.TicketTypeVIP
	amount := decimal.NewFromInt(400)
	currency := "EUR"
	repriced := &domain.Payment{
		ID: "p1", RegistrationID: "r1", Status: domain.PaymentStatusUnpaid,
		TicketType: &vip, Amount: &amount, Currency: &currency,
	}

	paymentRepo.EXPECT().GetByRegistration(mock.Anything, "r1").Return(unpaid, nil).Once()
	paymentRepo.EXPECT().UpdateTicketType(mock.Anything, "r1", domain.TicketTypeVIP, decimal.NewFromInt(400), "EUR").Return(nil)
	paymentRepo.EXPECT().GetByRegistration(mock.Anything, "r1").Return(repriced, nil).Once()

	payment, err := svc.UpdateTicketType(context.Background(), "r1", domain.TicketTypeVIP)

	require.NoError(t, err)
	assert.Equal(t, "400.00", payment.Amount.StringFixed(2))
}

func TestPaymentService_UpdateTicketType_RefusedOncePaid(t *testing.T) {
	svc, paymentRepo, _ := newPaymentService(t)

	paid := &domain.Payment{ID: "p1", RegistrationID: "r1", Status: domain.PaymentStatusPaid}
	paymentRepo.EXPECT().GetByRegistration(mock.Anything, "r1").Return(paid, nil)

	_, err := svc.UpdateTicketType(context.Background(), "r1", domain.TicketTypeVIP)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentNotUnpaid)
}

func TestPaymentService_Waive_Success(t *testing.T) {
	svc, paymentRepo, _ := newPaymentService(t)

	waived := &domain.Payment{ID: "p1", RegistrationID: "r1", Status: domain.PaymentStatusWaived}
	paymentRepo.EXPECT().TransitionStatus(mock.Anything, "r1", domain.PaymentStatusUnpaid, domain.PaymentStatusWaived).Return(true, nil)
	paymentRepo.EXPECT().GetByRegistration(mock.Anything, "r1").Return(waived, nil)

	payment, err := svc.Waive(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusWaived, payment.Status)
}

func TestPaymentService_Waive_AlreadyPaid(t *testing.T) {
	svc, paymentRepo, _ := newPaymentService(t)

	paid := &domain.Payment{ID: "p1", RegistrationID: "r1", Status: domain.PaymentStatusPaid}
	paymentRepo.EXPECT().TransitionStatus(mock.Anything, "r1", domain.PaymentStatusUnpaid, domain.PaymentStatusWaived).Return(false, nil)
	paymentRepo.EXPECT().GetByRegistration(mock.Anything, "r1").Return(paid, nil)

	_, err := svc.Waive(context.Background(), "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentNotUnpaid)
}

func TestPaymentService_Refund_Success(t *testing.T) {
	svc, paymentRepo, _ := newPaymentService(t)

	refunded := &domain.Payment{ID: "p1", RegistrationID: "r1", Status: domain.PaymentStatusRefunded}
	paymentRepo.EXPECT().TransitionStatus(mock.Anything, "r1", domain.PaymentStatusPaid, domain.PaymentStatusRefunded).Return(true, nil)
	paymentRepo.EXPECT().GetByRegistration(mock.Anything, "r1").Return(refunded, nil)

	payment, err := svc.Refund(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusRefunded, payment.Status)
}

func TestPaymentService_Refund_NotPaid(t *testing.T) {
	svc, paymentRepo, _ := newPaymentService(t)

	unpaid := &domain.Payment{ID: "p1", RegistrationID: "r1", Status: domain.PaymentStatusUnpaid}
	paymentRepo.EXPECT().TransitionStatus(mock.Anything, "r1", domain.PaymentStatusPaid, domain.PaymentStatusRefunded).Return(false, nil)
	paymentRepo.EXPECT().GetByRegistration(mock.Anything, "r1").Return(unpaid, nil)

	_, err := svc.Refund(context.Background(), "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentNotPaid)
}
