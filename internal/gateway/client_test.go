package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrwnh/eventreg/internal/domain"
	"github.com/mrwnh/eventreg/internal/service/ports"
)

func checkoutRequest() ports.CheckoutRequest {
	return ports.CheckoutRequest{
		EntityID:              "entity-eur",
		Amount:                "300.00",
		Currency:              "EUR",
		PaymentType:           PaymentTypeDebit,
		MerchantTransactionID: "r1",
		CustomParameters: map[string]string{
			"registrationId": "r1",
			"ticketType":     "FULL",
		},
	}
}

func TestClient_CreateCheckout_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/checkouts", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "entity-eur", r.PostForm.Get("entityId"))
		assert.Equal(t, "300.00", r.PostForm.Get("amount"))
		assert.Equal(t, "EUR", r.PostForm.Get("currency"))
		assert.Equal(t, "DB", r.PostForm.Get("paymentType"))
		assert.Equal(t, "r1", r.PostForm.Get("merchantTransactionId"))
		assert.Equal(t, "r1", r.PostForm.Get("customParameters[registrationId]"))
		assert.Equal(t, "FULL", r.PostForm.Get("customParameters[ticketType]"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"cs-1","result":{"code":"000.200.100","description":"successfully created checkout"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", 5*time.Second)

	session, err := client.CreateCheckout(context.Background(), checkoutRequest())

	require.NoError(t, err)
	assert.Equal(t, "cs-1", session.ID)
	assert.Equal(t, "000.200.100", session.ResultCode)
}

func TestClient_CreateCheckout_NotCreated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":{"code":"800.100.100","description":"transaction declined"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", 5*time.Second)

	_, err := client.CreateCheckout(context.Background(), checkoutRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "800.100.100")
}

func TestClient_CreateCheckout_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", 5*time.Second)

	_, err := client.CreateCheckout(context.Background(), checkoutRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
}

func TestClient_CreateCheckout_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", 5*time.Second)

	_, err := client.CreateCheckout(context.Background(), checkoutRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
}

func TestClient_PaymentStatus_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/checkouts/cs-1/payment", r.URL.Path)
		assert.Equal(t, "entity-eur", r.URL.Query().Get("entityId"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "tx-1",
			"result": {"code": "000.100.110", "description": "Request successfully processed"},
			"merchantTransactionId": "r1",
			"customParameters": {"registrationId": "r1", "ticketType": "FULL"},
			"amount": "300.00",
			"currency": "EUR",
			"card": {"last4Digits": "4242"}
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", 5*time.Second)

	report, err := client.PaymentStatus(context.Background(), "/v1/checkouts/cs-1/payment", "entity-eur")

	require.NoError(t, err)
	assert.True(t, report.Success)
	assert.Equal(t, "000.100.110", report.ResultCode)
	assert.Equal(t, "r1", report.MerchantTransactionID)
	assert.Equal(t, "r1", report.CustomParameters["registrationId"])
	assert.Equal(t, "4242", report.CardLast4)
	assert.Equal(t, "300.00", report.Amount)
	assert.Equal(t, "EUR", report.Currency)
}

func TestClient_PaymentStatus_Decline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"result": {"code": "800.100.151", "description": "transaction declined (invalid card)"},
			"merchantTransactionId": "r1"
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", 5*time.Second)

	report, err := client.PaymentStatus(context.Background(), "/v1/checkouts/cs-1/payment", "entity-eur")

	require.NoError(t, err)
	assert.False(t, report.Success)
	assert.Equal(t, "800.100.151", report.ResultCode)
}

func TestClient_PaymentStatus_RelativeResourcePath(t *testing.T) {
	client := NewClient("https://gateway.example.com", "secret", 5*time.Second)

	_, err := client.PaymentStatus(context.Background(), "v1/checkouts/cs-1/payment", "entity-eur")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSuccessfulTransaction(t *testing.T) {
	cases := []struct {
		code string
		want bool
	}{
		{"000.000.000", true},
		{"000.000.100", true},
		{"000.100.110", true},
		{"000.100.112", true},
		{"000.200.100", false},
		{"800.100.151", false},
		{"900.100.300", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, successfulTransaction(tc.code), "code %q", tc.code)
	}
}
