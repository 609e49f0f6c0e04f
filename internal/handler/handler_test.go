package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/mrwnh/eventreg/internal/domain"
	"github.com/mrwnh/eventreg/internal/handler/dto"
	hmocks "github.com/mrwnh/eventreg/internal/handler/mocks"
	"github.com/mrwnh/eventreg/internal/middleware"
)

type handlerMocks struct {
	registrationSvc *hmocks.MockRegistrationSvc
	paymentSvc      *hmocks.MockPaymentSvc
	checkoutSvc     *hmocks.MockCheckoutSvc
	checkInSvc      *hmocks.MockCheckInSvc
	uploader        *hmocks.MockUploader
}

func setupRouter(t *testing.T) (handlerMocks, http.Handler) {
	t.Helper()
	m := handlerMocks{
		registrationSvc: hmocks.NewMockRegistrationSvc(t),
		paymentSvc:      hmocks.NewMockPaymentSvc(t),
		checkoutSvc:     hmocks.NewMockCheckoutSvc(t),
		checkInSvc:      hmocks.NewMockCheckInSvc(t),
		uploader:        hmocks.NewMockUploader(t),
	}

	h := NewHandler(m.registrationSvc, m.paymentSvc, m.checkoutSvc, m.checkInSvc, m.uploader, "EUR")

	r := ginext.New("test")
	r.Use(func(c *ginext.Context) {
		middleware.SetPrincipal(c, middleware.Principal{Email: "staff@x.com", Name: "Staff"})
		c.Next()
	})
	api := r.Group("/api")
	{
		api.POST("/registrations", h.CreateRegistration)
		api.GET("/registrations", h.ListRegistrations)
		api.GET("/registrations/check", h.CheckEmail)
		api.GET("/registrations/:id", h.GetRegistration)
		api.PUT("/registrations/:id", h.UpdateRegistration)
		api.POST("/registrations/:id/status", h.SetRegistrationStatus)
		api.DELETE("/registrations/:id", h.DeleteRegistration)
		api.POST("/registrations/:id/comments", h.AddComment)
		api.POST("/payment-requests", h.IssuePaymentRequest)
		api.GET("/registrations/:id/payment", h.GetPayment)
		api.PATCH("/registrations/:id/payment", h.UpdateTicketType)
		api.POST("/registrations/:id/payment/waive", h.WaivePayment)
		api.POST("/registrations/:id/payment/refund", h.RefundPayment)
		api.POST("/checkout", h.PrepareCheckout)
		api.GET("/payment-result", h.PaymentResult)
		api.POST("/check-in", h.CheckIn)
		api.GET("/registrations/:id/check-ins", h.CheckInHistory)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Registrations ---

func TestHandler_CreateRegistration_Success(t *testing.T) {
	m, r := setupRouter(t)

	reg := &domain.Registration{
		ID:               uuid.New().String(),
		RegistrationType: domain.RegistrationTypeVisitor,
		FirstName:        "Ada",
		LastName:         "Lovelace",
		Email:            "a@x.com",
		Status:           domain.RegistrationStatusPending,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	m.registrationSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(reg, nil)

	w := doJSON(t, r, http.MethodPost, "/api/registrations", dto.CreateRegistrationRequest{
		RegistrationType: "VISITOR",
		FirstName:        "Ada",
		LastName:         "Lovelace",
		Email:            "a@x.com",
		PhoneNumber:      "+100000000",
		Company:          "Analytical Engines",
		Designation:      "Engineer",
		City:             "London",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, "a@x.com", resp.Email)
}

func TestHandler_CreateRegistration_MissingFields(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/registrations", map[string]string{"first_name": "Ada"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateRegistration_DuplicateEmail(t *testing.T) {
	m, r := setupRouter(t)

	m.registrationSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := doJSON(t, r, http.MethodPost, "/api/registrations", dto.CreateRegistrationRequest{
		RegistrationType: "VISITOR",
		FirstName:        "Ada",
		LastName:         "Lovelace",
		Email:            "a@x.com",
		PhoneNumber:      "+100000000",
		Company:          "Analytical Engines",
		Designation:      "Engineer",
		City:             "London",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetRegistration_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	details := &domain.RegistrationDetails{
		Registration: domain.Registration{ID: id, Status: domain.RegistrationStatusApproved, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Comments:     []domain.Comment{},
		CheckIns:     []domain.CheckIn{{ID: "c1", RegistrationID: id, CheckedInAt: time.Now()}},
	}
	m.registrationSvc.EXPECT().Get(mock.Anything, id).Return(details, nil)

	w := doJSON(t, r, http.MethodGet, "/api/registrations/"+id, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RegistrationDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.CheckedInToday)
	assert.Len(t, resp.CheckIns, 1)
}

func TestHandler_GetRegistration_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.registrationSvc.EXPECT().Get(mock.Anything, id).Return(nil, domain.ErrRegistrationNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/registrations/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetRegistration_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/registrations/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CheckEmail(t *testing.T) {
	m, r := setupRouter(t)

	m.registrationSvc.EXPECT().GetByEmail(mock.Anything, "a@x.com").Return(&domain.Registration{ID: "r1"}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/registrations/check?email=a%40x.com", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"registered": true}`, w.Body.String())
}

func TestHandler_SetStatus_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	approved := &domain.Registration{ID: id, Status: domain.RegistrationStatusApproved, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	m.registrationSvc.EXPECT().SetStatus(mock.Anything, id, domain.RegistrationStatusApproved).Return(approved, nil)

	w := doJSON(t, r, http.MethodPost, "/api/registrations/"+id+"/status", dto.SetStatusRequest{Status: "APPROVED"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_AddComment_UsesPrincipal(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	comment := &domain.Comment{ID: "cm1", RegistrationID: id, AuthorEmail: "staff@x.com", CreatedAt: time.Now()}
	m.registrationSvc.EXPECT().AddComment(mock.Anything, id, "staff@x.com", "Staff", "called venue").Return(comment, nil)

	w := doJSON(t, r, http.MethodPost, "/api/registrations/"+id+"/comments", dto.AddCommentRequest{Content: "called venue"})

	assert.Equal(t, http.StatusCreated, w.Code)
}

// --- Payments ---

func TestHandler_IssuePaymentRequest_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	full := domain.TicketTypeFull
	payment := &domain.Payment{ID: "p1", RegistrationID: id, Status: domain.PaymentStatusUnpaid, TicketType: &full, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	m.paymentSvc.EXPECT().IssueRequest(mock.Anything, id, domain.TicketTypeFull).Return(payment, nil)

	w := doJSON(t, r, http.MethodPost, "/api/payment-requests", dto.IssuePaymentRequest{
		RegistrationID: id,
		TicketType:     "FULL",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.PaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "UNPAID", resp.Status)
}

func TestHandler_IssuePaymentRequest_NotApproved(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.paymentSvc.EXPECT().IssueRequest(mock.Anything, id, domain.TicketTypeFull).Return(nil, domain.ErrRegistrationNotApproved)

	w := doJSON(t, r, http.MethodPost, "/api/payment-requests", dto.IssuePaymentRequest{
		RegistrationID: id,
		TicketType:     "FULL",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_WaivePayment_Conflict(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.paymentSvc.EXPECT().Waive(mock.Anything, id).Return(nil, domain.ErrPaymentNotUnpaid)

	w := doJSON(t, r, http.MethodPost, "/api/registrations/"+id+"/payment/waive", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Checkout ---

func TestHandler_PrepareCheckout_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	prepared := &domain.PreparedCheckout{
		CheckoutID: "cs-1",
		EntityID:   "entity-eur",
		Amount:     "300.00",
		Currency:   "EUR",
		TicketType: domain.TicketTypeFull,
	}
	m.checkoutSvc.EXPECT().Prepare(mock.Anything, id, domain.TicketTypeFull, "EUR").Return(prepared, nil)

	w := doJSON(t, r, http.MethodPost, "/api/checkout", dto.PrepareCheckoutRequest{
		RegistrationID: id,
		TicketType:     "FULL",
		Currency:       "EUR",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CheckoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cs-1", resp.CheckoutID)
	assert.Equal(t, "300.00", resp.Amount)
}

func TestHandler_PrepareCheckout_UnknownCurrency(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.checkoutSvc.EXPECT().Prepare(mock.Anything, id, domain.TicketTypeFull, "JPY").Return(nil, domain.ErrUnknownCurrency)

	w := doJSON(t, r, http.MethodPost, "/api/checkout", dto.PrepareCheckoutRequest{
		RegistrationID: id,
		TicketType:     "FULL",
		Currency:       "JPY",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_PaymentResult_Success(t *testing.T) {
	m, r := setupRouter(t)

	paid := &domain.Payment{ID: "p1", RegistrationID: "r1", Status: domain.PaymentStatusPaid, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	m.checkoutSvc.EXPECT().Reconcile(mock.Anything, "/v1/checkouts/cs-1/payment", "EUR").Return(paid, nil)

	w := doJSON(t, r, http.MethodGet, "/api/payment-result?resourcePath=%2Fv1%2Fcheckouts%2Fcs-1%2Fpayment", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PAID", resp.Status)
}

func TestHandler_PaymentResult_MissingResourcePath(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/payment-result", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_PaymentResult_Declined(t *testing.T) {
	m, r := setupRouter(t)

	m.checkoutSvc.EXPECT().Reconcile(mock.Anything, "/v1/checkouts/cs-1/payment", "EUR").
		Return(nil, domain.ErrPaymentDeclined)

	w := doJSON(t, r, http.MethodGet, "/api/payment-result?resourcePath=%2Fv1%2Fcheckouts%2Fcs-1%2Fpayment", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_PaymentResult_GatewayDown(t *testing.T) {
	m, r := setupRouter(t)

	m.checkoutSvc.EXPECT().Reconcile(mock.Anything, "/v1/checkouts/cs-1/payment", "EUR").
		Return(nil, domain.ErrGatewayUnavailable)

	w := doJSON(t, r, http.MethodGet, "/api/payment-result?resourcePath=%2Fv1%2Fcheckouts%2Fcs-1%2Fpayment", nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

// --- Check-in ---

func TestHandler_CheckIn_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	event := &domain.CheckIn{ID: "c1", RegistrationID: id, CheckedInBy: "staff@x.com", CheckedInAt: time.Now()}
	m.checkInSvc.EXPECT().CheckIn(mock.Anything, id, "staff@x.com", false).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/check-in", dto.CheckInRequest{RegistrationID: id})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CheckIn_Force(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	event := &domain.CheckIn{ID: "c1", RegistrationID: id, CheckedInBy: "staff@x.com", CheckedInAt: time.Now()}
	m.checkInSvc.EXPECT().CheckIn(mock.Anything, id, "staff@x.com", true).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/check-in", dto.CheckInRequest{RegistrationID: id, Force: true})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CheckIn_PaymentRequired(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.checkInSvc.EXPECT().CheckIn(mock.Anything, id, "staff@x.com", false).Return(nil, domain.ErrPaymentRequired)

	w := doJSON(t, r, http.MethodPost, "/api/check-in", dto.CheckInRequest{RegistrationID: id})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CheckIn_Rejected(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.checkInSvc.EXPECT().CheckIn(mock.Anything, id, "staff@x.com", true).Return(nil, domain.ErrRegistrationRejected)

	w := doJSON(t, r, http.MethodPost, "/api/check-in", dto.CheckInRequest{RegistrationID: id, Force: true})

	assert.Equal(t, http.StatusConflict, w.Code)
}
