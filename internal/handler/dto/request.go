package dto

type CreateRegistrationRequest struct {
	RegistrationType string  `json:"registration_type" binding:"required"`
	FirstName        string  `json:"first_name" binding:"required"`
	LastName         string  `json:"last_name" binding:"required"`
	Email            string  `json:"email" binding:"required,email"`
	PhoneNumber      string  `json:"phone_number" binding:"required"`
	Company          string  `json:"company" binding:"required"`
	Designation      string  `json:"designation" binding:"required"`
	City             string  `json:"city" binding:"required"`
	ImageURL         *string `json:"image_url"`
}

type UpdateRegistrationRequest struct {
	FirstName   string  `json:"first_name" binding:"required"`
	LastName    string  `json:"last_name" binding:"required"`
	PhoneNumber string  `json:"phone_number" binding:"required"`
	Company     string  `json:"company" binding:"required"`
	Designation string  `json:"designation" binding:"required"`
	City        string  `json:"city" binding:"required"`
	ImageURL    *string `json:"image_url"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type IssuePaymentRequest struct {
	RegistrationID string `json:"registration_id" binding:"required,uuid"`
	TicketType     string `json:"ticket_type" binding:"required"`
}

type UpdateTicketTypeRequest struct {
	TicketType string `json:"ticket_type" binding:"required"`
}

type PrepareCheckoutRequest struct {
	RegistrationID string `json:"registration_id" binding:"required,uuid"`
	TicketType     string `json:"ticket_type" binding:"required"`
	Currency       string `json:"currency" binding:"required"`
}

type CheckInRequest struct {
	RegistrationID string `json:"registration_id" binding:"required,uuid"`
	Force          bool   `json:"force"`
}
