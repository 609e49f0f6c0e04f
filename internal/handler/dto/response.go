package dto

import (
	"time"

	"github.com/mrwnh/eventreg/internal/domain"
)

type RegistrationResponse struct {
	ID               string  `json:"id"`
	RegistrationType string  `json:"registration_type"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	Email            string  `json:"email"`
	PhoneNumber      string  `json:"phone_number"`
	Company          string  `json:"company"`
	Designation      string  `json:"designation"`
	City             string  `json:"city"`
	Status           string  `json:"status"`
	ImageURL         *string `json:"image_url,omitempty"`
	QRCodeURL        *string `json:"qr_code_url,omitempty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type RegistrationDetailsResponse struct {
	Registration   RegistrationResponse `json:"registration"`
	Payment        *PaymentResponse     `json:"payment,omitempty"`
	Comments       []CommentResponse    `json:"comments"`
	CheckIns       []CheckInResponse    `json:"check_ins"`
	CheckedInToday bool                 `json:"checked_in_today"`
}

type PaymentResponse struct {
	ID             string  `json:"id"`
	RegistrationID string  `json:"registration_id"`
	Status         string  `json:"status"`
	TicketType     *string `json:"ticket_type,omitempty"`
	LastFourDigits *string `json:"last_four_digits,omitempty"`
	PaymentDate    *string `json:"payment_date,omitempty"`
	Amount         *string `json:"amount,omitempty"`
	Currency       *string `json:"currency,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

type CommentResponse struct {
	ID          string `json:"id"`
	Content     string `json:"content"`
	AuthorEmail string `json:"author_email"`
	AuthorName  string `json:"author_name"`
	CreatedAt   string `json:"created_at"`
}

type CheckInResponse struct {
	ID             string `json:"id"`
	RegistrationID string `json:"registration_id"`
	CheckedInBy    string `json:"checked_in_by"`
	CheckedInAt    string `json:"checked_in_at"`
}

type CheckoutResponse struct {
	CheckoutID string `json:"checkout_id"`
	EntityID   string `json:"entity_id"`
	Amount     string `json:"amount"`
	Currency   string `json:"currency"`
	TicketType string `json:"ticket_type"`
}

type UploadResponse struct {
	URL string `json:"url"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToRegistrationResponse(r *domain.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:               r.ID,
		RegistrationType: string(r.RegistrationType),
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Email:            r.Email,
		PhoneNumber:      r.PhoneNumber,
		Company:          r.Company,
		Designation:      r.Designation,
		City:             r.City,
		Status:           string(r.Status),
		ImageURL:         r.ImageURL,
		QRCodeURL:        r.QRCodeURL,
		CreatedAt:        r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        r.UpdatedAt.Format(time.RFC3339),
	}
}

func ToRegistrationDetailsResponse(d *domain.RegistrationDetails) RegistrationDetailsResponse {
	comments := make([]CommentResponse, 0, len(d.Comments))
	for _, cm := range d.Comments {
		comments = append(comments, ToCommentResponse(&cm))
	}

	checkIns := make([]CheckInResponse, 0, len(d.CheckIns))
	for _, e := range d.CheckIns {
		checkIns = append(checkIns, ToCheckInResponse(&e))
	}

	resp := RegistrationDetailsResponse{
		Registration:   ToRegistrationResponse(&d.Registration),
		Comments:       comments,
		CheckIns:       checkIns,
		CheckedInToday: domain.CheckedInToday(d.CheckIns, time.Now()),
	}
	if d.Payment != nil {
		p := ToPaymentResponse(d.Payment)
		resp.Payment = &p
	}

	return resp
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:             p.ID,
		RegistrationID: p.RegistrationID,
		Status:         string(p.Status),
		LastFourDigits: p.LastFourDigits,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      p.UpdatedAt.Format(time.RFC3339),
	}
	if p.TicketType != nil {
		t := string(*p.TicketType)
		resp.TicketType = &t
	}
	if p.PaymentDate != nil {
		d := p.PaymentDate.Format(time.RFC3339)
		resp.PaymentDate = &d
	}
	if p.Amount != nil {
		a := p.Amount.StringFixed(2)
		resp.Amount = &a
	}
	if p.Currency != nil {
		c := *p.Currency
		resp.Currency = &c
	}

	return resp
}

func ToCommentResponse(cm *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:          cm.ID,
		Content:     cm.Content,
		AuthorEmail: cm.AuthorEmail,
		AuthorName:  cm.AuthorName,
		CreatedAt:   cm.CreatedAt.Format(time.RFC3339),
	}
}

func ToCheckInResponse(e *domain.CheckIn) CheckInResponse {
	return CheckInResponse{
		ID:             e.ID,
		RegistrationID: e.RegistrationID,
		CheckedInBy:    e.CheckedInBy,
		CheckedInAt:    e.CheckedInAt.Format(time.RFC3339),
	}
}
