package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/driveease/rental-service/internal/service"
)

func (h *Handler) searchVehicles(c *gin.Context) {
	vehicleType := c.DefaultQuery("type", "")
	days, err := strconv.Atoi(c.DefaultQuery("days", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid days"})
		return
	}
	count, err := strconv.Atoi(c.DefaultQuery("count", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid count"})
		return
	}

	offers, err := h.bookings.SearchOffers(c.Request.Context(), vehicleType, days, count)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, offers)
}

func (h *Handler) listBookings(c *gin.Context) {
	bookings, err := h.bookings.ListBookings(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *Handler) listBookingsByAgent(c *gin.Context) {
	agentID, err := parseID(c.Param("agentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid agent id"})
		return
	}

	bookings, err := h.bookings.ListBookingsByAgent(c.Request.Context(), agentID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

type confirmBookingRequest struct {
	RequestID    string          `json:"requestId" binding:"required"`
	CustomerID   string          `json:"customerId" binding:"required"`
	AgentID      string          `json:"agentId" binding:"required"`
	ContractID   string          `json:"contractId" binding:"required"`
	RentalDays   int             `json:"rentalDays" binding:"required"`
	VehicleCount int             `json:"vehicleCount" binding:"required"`
	FinalPrice   decimal.Decimal `json:"finalPrice" binding:"required"`
}

func (h *Handler) confirmBooking(c *gin.Context) {
	var req confirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requestID, err := parseID(req.RequestID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return
	}
	customerID, err := parseID(req.CustomerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}
	agentID, err := parseID(req.AgentID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid agent id"})
		return
	}
	contractID, err := parseID(req.ContractID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contract id"})
		return
	}

	booking, err := h.bookings.ApproveRequest(c.Request.Context(), service.ApproveRequestInput{
		RequestID:    requestID,
		CustomerID:   customerID,
		AgentID:      agentID,
		ContractID:   contractID,
		RentalDays:   req.RentalDays,
		VehicleCount: req.VehicleCount,
		FinalPrice:   req.FinalPrice,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

type createBookingRequest struct {
	AgentID      string          `json:"agentId" binding:"required"`
	ContractID   string          `json:"contractId" binding:"required"`
	CustomerName string          `json:"customerName"`
	Requirements string          `json:"requirements"`
	PickupDate   string          `json:"pickupDate" binding:"required"`
	RentalDays   int             `json:"rentalDays" binding:"required"`
	VehicleCount int             `json:"vehicleCount" binding:"required"`
	FinalPrice   decimal.Decimal `json:"finalPrice" binding:"required"`
}

func (h *Handler) createBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	agentID, err := parseID(req.AgentID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid agent id"})
		return
	}
	contractID, err := parseID(req.ContractID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contract id"})
		return
	}
	pickupDate, err := parseDate(req.PickupDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pickup date"})
		return
	}

	booking, err := h.bookings.CreateBooking(c.Request.Context(), service.CreateBookingInput{
		AgentID:      agentID,
		ContractID:   contractID,
		CustomerName: req.CustomerName,
		Requirements: req.Requirements,
		PickupDate:   pickupDate,
		RentalDays:   req.RentalDays,
		VehicleCount: req.VehicleCount,
		FinalPrice:   req.FinalPrice,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

type updateBookingRequest struct {
	CustomerName *string `json:"customerName"`
	PickupDate   *string `json:"pickupDate"`
}

func (h *Handler) updateBooking(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	var req updateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var pickupDate *time.Time
	if req.PickupDate != nil {
		parsed, err := parseDate(*req.PickupDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pickup date"})
			return
		}
		pickupDate = &parsed
	}

	if err := h.bookings.UpdateBooking(c.Request.Context(), id, req.CustomerName, pickupDate); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking updated"})
}

func (h *Handler) deleteBooking(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	if err := h.bookings.DeleteBooking(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}

func (h *Handler) bookingReceipt(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	result, err := h.bookings.Receipt(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}
