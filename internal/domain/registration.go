package domain

import "time"

type RegistrationStatus string

const (
	RegistrationStatusPending  RegistrationStatus = "PENDING"
	RegistrationStatusApproved RegistrationStatus = "APPROVED"
	RegistrationStatusRejected RegistrationStatus = "REJECTED"
)

// ValidRegistrationStatus reports whether s is one of the three closed
// status values. Statuses are validated at every boundary (API input,
// persistence read), never trusted implicitly.
func ValidRegistrationStatus(s RegistrationStatus) bool {
	switch s {
	case RegistrationStatusPending, RegistrationStatusApproved, RegistrationStatusRejected:
		return true
	}
	return false
}

type RegistrationType string

const (
	RegistrationTypeSpeaker RegistrationType = "SPEAKER"
	RegistrationTypeSponsor RegistrationType = "SPONSOR"
	RegistrationTypeVisitor RegistrationType = "VISITOR"
	RegistrationTypeMedia   RegistrationType = "MEDIA"
	RegistrationTypeOthers  RegistrationType = "OTHERS"
)

func ValidRegistrationType(t RegistrationType) bool {
	switch t {
	case RegistrationTypeSpeaker, RegistrationTypeSponsor, RegistrationTypeVisitor,
		RegistrationTypeMedia, RegistrationTypeOthers:
		return true
	}
	return false
}

type Registration struct {
	ID               string             `json:"id"`
	RegistrationType RegistrationType   `json:"registration_type"`
	FirstName        string             `json:"first_name"`
	LastName         string             `json:"last_name"`
	Email            string             `json:"email"`
	PhoneNumber      string             `json:"phone_number"`
	Company          string             `json:"company"`
	Designation      string             `json:"designation"`
	City             string             `json:"city"`
	Status           RegistrationStatus `json:"status"`
	ImageURL         *string            `json:"image_url"`
	QRCodeURL        *string            `json:"qr_code_url"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// RegistrationDetails is the admin/staff view: the registration with its
// payment (nil until a payment request is issued), audit comments and
// check-in history.
type RegistrationDetails struct {
	Registration Registration `json:"registration"`
	Payment      *Payment     `json:"payment"`
	Comments     []Comment    `json:"comments"`
	CheckIns     []CheckIn    `json:"check_ins"`
}

type CreateRegistrationInput struct {
	RegistrationType RegistrationType
	FirstName        string
	LastName         string
	Email            string
	PhoneNumber      string
	Company          string
	Designation      string
	City             string
	ImageURL         *string
}

type UpdateRegistrationInput struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	Company     string
	Designation string
	City        string
	ImageURL    *string
}
