package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/mrwnh/eventreg/internal/domain"
	"github.com/mrwnh/eventreg/internal/qr"
	"github.com/mrwnh/eventreg/internal/service/ports"
)

type RegistrationService struct {
	registrationRepo ports.RegistrationRepo
	paymentRepo      ports.PaymentRepo
	commentRepo      ports.CommentRepo
	checkInRepo      ports.CheckInRepo
	objectStore      ports.ObjectStore
	notifier         ports.RegistrationNotifier
	publicURL        string
	logger           logger.Logger
}

func NewRegistrationService(
	registrationRepo ports.RegistrationRepo,
	paymentRepo ports.PaymentRepo,
	commentRepo ports.CommentRepo,
	checkInRepo ports.CheckInRepo,
	objectStore ports.ObjectStore,
	notifier ports.RegistrationNotifier,
	publicURL string,
	logger logger.Logger,
) *RegistrationService {
	return &RegistrationService{
		registrationRepo: registrationRepo,
		paymentRepo:      paymentRepo,
		commentRepo:      commentRepo,
		checkInRepo:      checkInRepo,
		objectStore:      objectStore,
		notifier:         notifier,
		publicURL:        strings.TrimRight(publicURL, "/"),
		logger:           logger,
	}
}

// Create submits a new registration with status PENDING. The attendee QR
// code is generated and uploaded before the insert; if that fails the
// registration still goes through with a null qr_code_url. The
// confirmation email is fire-and-forget.
func (s *RegistrationService) Create(ctx context.Context, input domain.CreateRegistrationInput) (*domain.Registration, error) {
	if !domain.ValidRegistrationType(input.RegistrationType) {
		return nil, fmt.Errorf("%w: unknown registration type %q", domain.ErrValidation, input.RegistrationType)
	}

	if _, err := s.registrationRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrRegistrationNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	reg := &domain.Registration{
		ID:               uuid.New().String(),
		RegistrationType: input.RegistrationType,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Email:            input.Email,
		PhoneNumber:      input.PhoneNumber,
		Company:          input.Company,
		Designation:      input.Designation,
		City:             input.City,
		Status:           domain.RegistrationStatusPending,
		ImageURL:         input.ImageURL,
		CreatedAt:        time.Now().UTC(),
		UpdatedAt:        time.Now().UTC(),
	}

	if url, err := s.uploadQRCode(ctx, reg.ID); err != nil {
		s.logger.Warn("qr code upload failed, registration continues without it",
			logger.String("registration_id", reg.ID),
			logger.String("error", err.Error()),
		)
	} else {
		reg.QRCodeURL = &url
	}

	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	s.logger.Info("registration created",
		logger.String("registration_id", reg.ID),
		logger.String("email", reg.Email),
		logger.String("type", string(reg.RegistrationType)),
	)

	go s.notifier.NotifyRegistrationCreated(context.WithoutCancel(ctx), reg)

	return reg, nil
}

func (s *RegistrationService) uploadQRCode(ctx context.Context, registrationID string) (string, error) {
	viewURL := fmt.Sprintf("%s/registration/%s/view", s.publicURL, registrationID)

	png, err := qr.EncodePNG(viewURL)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}

	url, err := s.objectStore.Upload(ctx, bytes.NewReader(png), fmt.Sprintf("qr-codes/%s.png", registrationID))
	if err != nil {
		return "", fmt.Errorf("upload qr: %w", err)
	}

	return url, nil
}

func (s *RegistrationService) Get(ctx context.Context, id string) (*domain.RegistrationDetails, error) {
	reg, err := s.registrationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	details := &domain.RegistrationDetails{Registration: *reg}

	payment, err := s.paymentRepo.GetByRegistration(ctx, id)
	switch {
	case err == nil:
		details.Payment = payment
	case !errors.Is(err, domain.ErrPaymentNotFound):
		return nil, fmt.Errorf("get payment: %w", err)
	}

	if details.Comments, err = s.commentRepo.ListByRegistration(ctx, id); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	if details.CheckIns, err = s.checkInRepo.ListByRegistration(ctx, id); err != nil {
		return nil, fmt.Errorf("list check-ins: %w", err)
	}

	return details, nil
}

// GetByEmail backs the duplicate pre-check used by the registration form.
func (s *RegistrationService) GetByEmail(ctx context.Context, email string) (*domain.Registration, error) {
	return s.registrationRepo.GetByEmail(ctx, email)
}

func (s *RegistrationService) List(ctx context.Context) ([]*domain.Registration, error) {
	return s.registrationRepo.List(ctx)
}

func (s *RegistrationService) Update(ctx context.Context, id string, input domain.UpdateRegistrationInput) (*domain.Registration, error) {
	reg, err := s.registrationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	reg.FirstName = input.FirstName
	reg.LastName = input.LastName
	reg.PhoneNumber = input.PhoneNumber
	reg.Company = input.Company
	reg.Designation = input.Designation
	reg.City = input.City
	reg.ImageURL = input.ImageURL

	if err := s.registrationRepo.Update(ctx, reg); err != nil {
		return nil, fmt.Errorf("update registration: %w", err)
	}

	return reg, nil
}

// SetStatus moves a registration between PENDING, APPROVED and REJECTED.
// The transition is unconditional among those three values: re-review in
// either direction is an intended administrative correction.
func (s *RegistrationService) SetStatus(ctx context.Context, id string, status domain.RegistrationStatus) (*domain.Registration, error) {
	if !domain.ValidRegistrationStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	if err := s.registrationRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("set status: %w", err)
	}

	s.logger.Info("registration status changed",
		logger.String("registration_id", id),
		logger.String("status", string(status)),
	)

	return s.registrationRepo.GetByID(ctx, id)
}

func (s *RegistrationService) Delete(ctx context.Context, id string) error {
	if err := s.registrationRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}

	s.logger.Info("registration deleted", logger.String("registration_id", id))
	return nil
}

func (s *RegistrationService) AddComment(ctx context.Context, registrationID, authorEmail, authorName, content string) (*domain.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: comment content is empty", domain.ErrValidation)
	}

	if _, err := s.registrationRepo.GetByID(ctx, registrationID); err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	comment := &domain.Comment{
		ID:             uuid.New().String(),
		RegistrationID: registrationID,
		Content:        content,
		AuthorEmail:    authorEmail,
		AuthorName:     authorName,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	return comment, nil
}
