package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/driveease/rental-service/internal/http/middleware"
	"github.com/driveease/rental-service/internal/service"
)

type Handler struct {
	auth     *service.AuthService
	admin    *service.AdminService
	bookings *service.BookingService
	contact  *service.ContactService
	reports  *service.ReportService
	log      zerolog.Logger
}

func NewHandler(
	auth *service.AuthService,
	admin *service.AdminService,
	bookings *service.BookingService,
	contact *service.ContactService,
	reports *service.ReportService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		auth:     auth,
		admin:    admin,
		bookings: bookings,
		contact:  contact,
		reports:  reports,
		log:      log,
	}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	api := router.Group("/api")

	// Public surface: login, signup, agent directory, vehicle search and
	// the contact form.
	api.POST("/auth/login", h.login)
	api.POST("/auth/signup", h.signup)
	api.GET("/auth/agents", h.listAgents)
	api.GET("/bookings/search", h.searchVehicles)
	api.POST("/contact/send", h.sendContactMessage)

	protected := api.Group("/")
	protected.Use(authMiddleware)

	protected.GET("/auth/users", h.listUsers)
	protected.PUT("/auth/users/:id", h.updateUser)
	protected.DELETE("/auth/users/:id", h.deleteUser)

	protected.GET("/bookings/all", h.listBookings)
	protected.GET("/bookings/agent/:agentId", h.listBookingsByAgent)
	protected.POST("/bookings/confirm", h.confirmBooking)
	protected.POST("/bookings/create", h.createBooking)
	protected.PUT("/bookings/:id", h.updateBooking)
	protected.DELETE("/bookings/:id", h.deleteBooking)
	protected.GET("/bookings/:id/receipt", h.bookingReceipt)

	protected.POST("/booking-requests/send", h.sendBookingRequest)
	protected.GET("/booking-requests/agent/:agentId", h.listRequestsByAgent)
	protected.GET("/booking-requests/customer/:customerId", h.listRequestsByCustomer)

	protected.GET("/contact/all", middleware.RequireAdmin(), h.listContactMessages)

	admin := protected.Group("/admin")
	admin.Use(middleware.RequireAdmin())

	admin.GET("/providers", h.listProviders)
	admin.POST("/providers", h.createProvider)
	admin.PUT("/providers/:id", h.updateProvider)
	admin.DELETE("/providers/:id", h.deleteProvider)

	admin.GET("/contracts", h.listContracts)
	admin.GET("/contracts/agent/:agentId", h.listContractsByAgent)
	admin.POST("/contracts", h.createContract)
	admin.PUT("/contracts/:id", h.updateContract)
	admin.PATCH("/contracts/:id/status", h.toggleContractStatus)
	admin.DELETE("/contracts/:id", h.deleteContract)

	admin.GET("/users", h.listUsers)
	admin.DELETE("/users/:id", h.deleteUser)
	admin.GET("/list-admins", h.listAdmins)

	admin.GET("/reports/summary", h.reportSummary)
	admin.GET("/reports/export", h.reportExport)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseID(raw string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(raw))
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidInput
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, service.ErrInvalidInput
}
