package domain

import "errors"

var (
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrPaymentNotFound      = errors.New("payment not found")
)

var (
	ErrEmailTaken              = errors.New("registration with this email already exists")
	ErrRegistrationNotApproved = errors.New("registration is not approved")
	ErrRegistrationRejected    = errors.New("registration has been rejected")
	ErrPaymentAlreadyExists    = errors.New("payment request already exists")
	ErrPaymentNotUnpaid        = errors.New("payment is not in unpaid status")
	ErrPaymentNotPaid          = errors.New("payment is not in paid status")
	ErrPaymentRequired         = errors.New("payment is neither paid nor waived")
)

var (
	ErrUnknownTicketType = errors.New("unknown ticket type")
	ErrUnknownCurrency   = errors.New("no merchant entity configured for currency")
)

// Gateway failures: a decline is a terminal business outcome for that
// attempt, a transport fault is retryable infrastructure.
var (
	ErrPaymentDeclined    = errors.New("payment declined by gateway")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrValidation       = errors.New("validation error")
)
