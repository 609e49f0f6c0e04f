package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateRegistration(c *ginext.Context)
	GetRegistration(c *ginext.Context)
	ListRegistrations(c *ginext.Context)
	CheckEmail(c *ginext.Context)
	UpdateRegistration(c *ginext.Context)
	SetRegistrationStatus(c *ginext.Context)
	DeleteRegistration(c *ginext.Context)
	AddComment(c *ginext.Context)
	IssuePaymentRequest(c *ginext.Context)
	GetPayment(c *ginext.Context)
	UpdateTicketType(c *ginext.Context)
	WaivePayment(c *ginext.Context)
	RefundPayment(c *ginext.Context)
	PrepareCheckout(c *ginext.Context)
	PaymentResult(c *ginext.Context)
	CheckIn(c *ginext.Context)
	CheckInHistory(c *ginext.Context)
	UploadImage(c *ginext.Context)
}

// InitRouter wires the HTTP surface. auth guards every /api route; the
// health probe stays open.
func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)
	router.Use(cors.Default())

	api := router.Group("/api", auth)
	{
		// Registrations
		api.POST("/registrations", h.CreateRegistration)
		api.GET("/registrations", h.ListRegistrations)
		api.GET("/registrations/check", h.CheckEmail)
		api.GET("/registrations/:id", h.GetRegistration)
		api.PUT("/registrations/:id", h.UpdateRegistration)
		api.POST("/registrations/:id/status", h.SetRegistrationStatus)
		api.DELETE("/registrations/:id", h.DeleteRegistration)
		api.POST("/registrations/:id/comments", h.AddComment)

		// Payments
		api.POST("/payment-requests", h.IssuePaymentRequest)
		api.GET("/registrations/:id/payment", h.GetPayment)
		api.PATCH("/registrations/:id/payment", h.UpdateTicketType)
		api.POST("/registrations/:id/payment/waive", h.WaivePayment)
		api.POST("/registrations/:id/payment/refund", h.RefundPayment)

		// Hosted payment page
		api.POST("/checkout", h.PrepareCheckout)
		api.GET("/payment-result", h.PaymentResult)

		// Check-in
		api.POST("/check-in", h.CheckIn)
		api.GET("/registrations/:id/check-ins", h.CheckInHistory)

		// Uploads
		api.POST("/uploads", h.UploadImage)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
