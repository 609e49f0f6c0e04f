package ports

import "context"

// CheckoutRequest is the server-to-server checkout-creation call. Amount
// is a fixed two-decimal string resolved from the ticket catalog; the
// registration id rides in MerchantTransactionID and CustomParameters so
// reconciliation can recover it without a session lookup.
type CheckoutRequest struct {
	EntityID              string
	Amount                string
	Currency              string
	PaymentType           string
	MerchantTransactionID string
	CustomParameters      map[string]string
}

type CheckoutSession struct {
	ID         string
	ResultCode string
}

// PaymentReport is the gateway's definitive outcome for one checkout
// attempt. Success is classified by the gateway client against the result
// codes documented for the gateway; a false Success with a nil error is an
// explicit decline, not a transport fault.
type PaymentReport struct {
	Success               bool
	ResultCode            string
	ResultDescription     string
	MerchantTransactionID string
	CustomParameters      map[string]string
	CardLast4             string
	Amount                string
	Currency              string
}

type PaymentGateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	// PaymentStatus queries the resource path handed back by the hosted
	// payment page, scoped to the merchant entity.
	PaymentStatus(ctx context.Context, resourcePath, entityID string) (*PaymentReport, error)
}
