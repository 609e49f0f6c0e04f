// Package gateway implements the server-to-server client for the hosted
// payment page provider: checkout session creation and definitive status
// queries by resource path. The provider's own UI and card handling are
// out of scope; this client never sees card data beyond the reported
// last four digits.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mrwnh/eventreg/internal/domain"
	"github.com/mrwnh/eventreg/internal/service/ports"
)

const (
	// PaymentTypeDebit is the payment-type code sent on checkout creation.
	PaymentTypeDebit = "DB"

	// codeCheckoutCreated is the result code the gateway documents for a
	// successfully created checkout session.
	codeCheckoutCreated = "000.200.100"
)

// successCodePrefixes classify a transaction result code as a successful
// payment, per the gateway's result-code documentation.
var successCodePrefixes = []string{"000.000.", "000.100.1"}

func successfulTransaction(code string) bool {
	for _, p := range successCodePrefixes {
		if strings.HasPrefix(code, p) {
			return true
		}
	}
	return false
}

type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   &http.Client{Timeout: timeout},
	}
}

type resultEnvelope struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type checkoutResponse struct {
	ID     string         `json:"id"`
	Result resultEnvelope `json:"result"`
}

type statusResponse struct {
	ID                    string            `json:"id"`
	Result                resultEnvelope    `json:"result"`
	MerchantTransactionID string            `json:"merchantTransactionId"`
	CustomParameters      map[string]string `json:"customParameters"`
	Amount                string            `json:"amount"`
	Currency              string            `json:"currency"`
	Card                  struct {
		Last4Digits string `json:"last4Digits"`
	} `json:"card"`
}

// CreateCheckout asks the gateway to mint a one-time checkout session.
// Any non-created result code, transport failure or malformed response is
// a checkout-preparation failure; nothing is retried here.
func (c *Client) CreateCheckout(ctx context.Context, req ports.CheckoutRequest) (*ports.CheckoutSession, error) {
	form := url.Values{}
	form.Set("entityId", req.EntityID)
	form.Set("amount", req.Amount)
	form.Set("currency", req.Currency)
	form.Set("paymentType", req.PaymentType)
	form.Set("merchantTransactionId", req.MerchantTransactionID)
	for k, v := range req.CustomParameters {
		form.Set(fmt.Sprintf("customParameters[%s]", k), v)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/v1/checkouts",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("build checkout request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	var resp checkoutResponse
	if err := c.do(httpReq, &resp); err != nil {
		return nil, err
	}

	if resp.Result.Code != codeCheckoutCreated || resp.ID == "" {
		return nil, fmt.Errorf("checkout not created: %s (%s)", resp.Result.Code, resp.Result.Description)
	}

	return &ports.CheckoutSession{ID: resp.ID, ResultCode: resp.Result.Code}, nil
}

// PaymentStatus fetches the definitive outcome for a completed attempt.
// The resource path is the opaque reference handed back by the hosted
// payment form; entityId scopes the query to our merchant.
func (c *Client) PaymentStatus(ctx context.Context, resourcePath, entityID string) (*ports.PaymentReport, error) {
	if !strings.HasPrefix(resourcePath, "/") {
		return nil, fmt.Errorf("%w: resource path must be absolute", domain.ErrValidation)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx, http.MethodGet,
		c.baseURL+resourcePath+"?entityId="+url.QueryEscape(entityID),
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("build status request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	var resp statusResponse
	if err := c.do(httpReq, &resp); err != nil {
		return nil, err
	}

	return &ports.PaymentReport{
		Success:               successfulTransaction(resp.Result.Code),
		ResultCode:            resp.Result.Code,
		ResultDescription:     resp.Result.Description,
		MerchantTransactionID: resp.MerchantTransactionID,
		CustomParameters:      resp.CustomParameters,
		CardLast4:             resp.Card.Last4Digits,
		Amount:                resp.Amount,
		Currency:              resp.Currency,
	}, nil
}

// do executes the request and decodes the JSON body. Transport and parse
// faults wrap domain.ErrGatewayUnavailable so callers can tell retryable
// infrastructure trouble apart from an explicit decline.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%w: read response: %v", domain.ErrGatewayUnavailable, err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: gateway returned %d", domain.ErrGatewayUnavailable, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrGatewayUnavailable, err)
	}

	return nil
}
