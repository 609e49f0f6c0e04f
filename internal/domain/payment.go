package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "UNPAID"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusWaived   PaymentStatus = "WAIVED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusUnpaid, PaymentStatusPaid, PaymentStatusWaived, PaymentStatusRefunded:
		return true
	}
	return false
}

type TicketType string

const (
	TicketTypeFull   TicketType = "FULL"
	TicketTypeFree   TicketType = "FREE"
	TicketTypeVVIP   TicketType = "VVIP"
	TicketTypeVIP    TicketType = "VIP"
	TicketTypePass   TicketType = "PASS"
	TicketTypeOneDay TicketType = "ONE_DAY"
	TicketTypeTwoDay TicketType = "TWO_DAY"
)

func ValidTicketType(t TicketType) bool {
	switch t {
	case TicketTypeFull, TicketTypeFree, TicketTypeVVIP, TicketTypeVIP,
		TicketTypePass, TicketTypeOneDay, TicketTypeTwoDay:
		return true
	}
	return false
}

// Payment is the monetary-collection record, 1:1 with a registration.
// Amount and currency are nullable until assigned and, once set, always
// come from the ticket catalog or the gateway's definitive report.
type Payment struct {
	ID             string           `json:"id"`
	RegistrationID string           `json:"registration_id"`
	Status         PaymentStatus    `json:"status"`
	TicketType     *TicketType      `json:"ticket_type"`
	LastFourDigits *string          `json:"last_four_digits"`
	PaymentDate    *time.Time       `json:"payment_date"`
	Amount         *decimal.Decimal `json:"amount"`
	Currency       *string          `json:"currency"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// PaidUpdate carries the gateway-reported outcome applied on a successful
// reconciliation. The update is conditional on the payment still being
// UNPAID; a repeated reconciliation is a no-op.
type PaidUpdate struct {
	LastFourDigits string
	PaymentDate    time.Time
	Amount         decimal.Decimal
	Currency       string
}
