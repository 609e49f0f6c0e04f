package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/mrwnh/eventreg/internal/domain"
	"github.com/mrwnh/eventreg/internal/handler/dto"
	"github.com/mrwnh/eventreg/internal/middleware"
)

type RegistrationSvc interface {
	Create(ctx context.Context, input domain.CreateRegistrationInput) (*domain.Registration, error)
	Get(ctx context.Context, id string) (*domain.RegistrationDetails, error)
	GetByEmail(ctx context.Context, email string) (*domain.Registration, error)
	List(ctx context.Context) ([]*domain.Registration, error)
	Update(ctx context.Context, id string, input domain.UpdateRegistrationInput) (*domain.Registration, error)
	SetStatus(ctx context.Context, id string, status domain.RegistrationStatus) (*domain.Registration, error)
	Delete(ctx context.Context, id string) error
	AddComment(ctx context.Context, registrationID, authorEmail, authorName, content string) (*domain.Comment, error)
}

type PaymentSvc interface {
	IssueRequest(ctx context.Context, registrationID string, ticketType domain.TicketType) (*domain.Payment, error)
	GetByRegistration(ctx context.Context, registrationID string) (*domain.Payment, error)
	UpdateTicketType(ctx context.Context, registrationID string, ticketType domain.TicketType) (*domain.Payment, error)
	Waive(ctx context.Context, registrationID string) (*domain.Payment, error)
	Refund(ctx context.Context, registrationID string) (*domain.Payment, error)
}

type CheckoutSvc interface {
	Prepare(ctx context.Context, registrationID string, ticketType domain.TicketType, currency string) (*domain.PreparedCheckout, error)
	Reconcile(ctx context.Context, resourcePath, currency string) (*domain.Payment, error)
}

type CheckInSvc interface {
	CheckIn(ctx context.Context, registrationID, staffEmail string, force bool) (*domain.CheckIn, error)
	History(ctx context.Context, registrationID string) ([]domain.CheckIn, error)
}

type Uploader interface {
	Upload(ctx context.Context, content io.Reader, path string) (string, error)
}

type Handler struct {
	registrationService RegistrationSvc
	paymentService      PaymentSvc
	checkoutService     CheckoutSvc
	checkInService      CheckInSvc
	uploader            Uploader
	defaultCurrency     string
}

func NewHandler(
	registrationService RegistrationSvc,
	paymentService PaymentSvc,
	checkoutService CheckoutSvc,
	checkInService CheckInSvc,
	uploader Uploader,
	defaultCurrency string,
) *Handler {
	return &Handler{
		registrationService: registrationService,
		paymentService:      paymentService,
		checkoutService:     checkoutService,
		checkInService:      checkInService,
		uploader:            uploader,
		defaultCurrency:     defaultCurrency,
	}
}

// Registrations

func (h *Handler) CreateRegistration(c *ginext.Context) {
	var req dto.CreateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateRegistrationInput{
		RegistrationType: domain.RegistrationType(req.RegistrationType),
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		PhoneNumber:      req.PhoneNumber,
		Company:          req.Company,
		Designation:      req.Designation,
		City:             req.City,
		ImageURL:         req.ImageURL,
	}

	reg, err := h.registrationService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRegistrationResponse(reg))
}

func (h *Handler) GetRegistration(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	details, err := h.registrationService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationDetailsResponse(details))
}

func (h *Handler) ListRegistrations(c *ginext.Context) {
	regs, err := h.registrationService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RegistrationResponse, 0, len(regs))
	for _, r := range regs {
		resp = append(resp, dto.ToRegistrationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

// CheckEmail backs the registration form's duplicate pre-check.
func (h *Handler) CheckEmail(c *ginext.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "email query parameter required"})
		return
	}

	_, err := h.registrationService.GetByEmail(c.Request.Context(), email)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, ginext.H{"registered": true})
	case errors.Is(err, domain.ErrRegistrationNotFound):
		c.JSON(http.StatusOK, ginext.H{"registered": false})
	default:
		h.handleError(c, err)
	}
}

func (h *Handler) UpdateRegistration(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	var req dto.UpdateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateRegistrationInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Company:     req.Company,
		Designation: req.Designation,
		City:        req.City,
		ImageURL:    req.ImageURL,
	}

	reg, err := h.registrationService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationResponse(reg))
}

func (h *Handler) SetRegistrationStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	reg, err := h.registrationService.SetStatus(c.Request.Context(), id, domain.RegistrationStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationResponse(reg))
}

func (h *Handler) DeleteRegistration(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	if err := h.registrationService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) AddComment(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		h.handleError(c, domain.ErrNotAuthenticated)
		return
	}

	comment, err := h.registrationService.AddComment(c.Request.Context(), id, principal.Email, principal.Name, req.Content)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}

// Payments

func (h *Handler) IssuePaymentRequest(c *ginext.Context) {
	var req dto.IssuePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	payment, err := h.paymentService.IssueRequest(c.Request.Context(), req.RegistrationID, domain.TicketType(req.TicketType))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

func (h *Handler) GetPayment(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	payment, err := h.paymentService.GetByRegistration(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

func (h *Handler) UpdateTicketType(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	var req dto.UpdateTicketTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	payment, err := h.paymentService.UpdateTicketType(c.Request.Context(), id, domain.TicketType(req.TicketType))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

func (h *Handler) WaivePayment(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	payment, err := h.paymentService.Waive(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

func (h *Handler) RefundPayment(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	payment, err := h.paymentService.Refund(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// Checkout

func (h *Handler) PrepareCheckout(c *ginext.Context) {
	var req dto.PrepareCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	prepared, err := h.checkoutService.Prepare(c.Request.Context(), req.RegistrationID,
		domain.TicketType(req.TicketType), req.Currency)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutResponse{
		CheckoutID: prepared.CheckoutID,
		EntityID:   prepared.EntityID,
		Amount:     prepared.Amount,
		Currency:   prepared.Currency,
		TicketType: string(prepared.TicketType),
	})
}

func (h *Handler) PaymentResult(c *ginext.Context) {
	resourcePath := c.Query("resourcePath")
	if resourcePath == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "resourcePath query parameter required"})
		return
	}

	currency := c.Query("currency")
	if currency == "" {
		currency = h.defaultCurrency
	}

	payment, err := h.checkoutService.Reconcile(c.Request.Context(), resourcePath, currency)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// Check-in

func (h *Handler) CheckIn(c *ginext.Context) {
	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		h.handleError(c, domain.ErrNotAuthenticated)
		return
	}

	event, err := h.checkInService.CheckIn(c.Request.Context(), req.RegistrationID, principal.Email, req.Force)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCheckInResponse(event))
}

func (h *Handler) CheckInHistory(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	events, err := h.checkInService.History(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CheckInResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToCheckInResponse(&e))
	}

	c.JSON(http.StatusOK, resp)
}

// Uploads

const maxUploadSize = 5 << 20

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

func (h *Handler) UploadImage(c *ginext.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "no image file provided"})
		return
	}

	if file.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "file too large, maximum is 5MB"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid file type, allowed: jpg, jpeg, png, webp"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to open file"})
		return
	}
	defer src.Close()

	url, err := h.uploader.Upload(c.Request.Context(), src, fmt.Sprintf("images/%s%s", uuid.New().String(), ext))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UploadResponse{URL: url})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrRegistrationNotFound),
		errors.Is(err, domain.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrRegistrationNotApproved),
		errors.Is(err, domain.ErrRegistrationRejected),
		errors.Is(err, domain.ErrPaymentAlreadyExists),
		errors.Is(err, domain.ErrPaymentNotUnpaid),
		errors.Is(err, domain.ErrPaymentNotPaid),
		errors.Is(err, domain.ErrPaymentRequired),
		errors.Is(err, domain.ErrPaymentDeclined):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUnknownTicketType),
		errors.Is(err, domain.ErrUnknownCurrency):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrGatewayUnavailable):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
