package domain

// PreparedCheckout is the outcome of opening a hosted-payment-page
// session: everything the payment widget needs, nothing persisted.
type PreparedCheckout struct {
	CheckoutID string
	EntityID   string
	Amount     string
	Currency   string
	TicketType TicketType
}
