package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/driveease/rental-service/internal/service"
)

type sendRequestRequest struct {
	CustomerID  string          `json:"customerId" binding:"required"`
	AgentID     string          `json:"agentId" binding:"required"`
	ContractID  string          `json:"contractId" binding:"required"`
	VehicleType string          `json:"vehicleType" binding:"required"`
	FinalPrice  decimal.Decimal `json:"finalPrice" binding:"required"`
}

func (h *Handler) sendBookingRequest(c *gin.Context) {
	var req sendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
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

	request, err := h.bookings.SubmitRequest(c.Request.Context(), service.SubmitRequestInput{
		CustomerID:  customerID,
		AgentID:     agentID,
		ContractID:  contractID,
		VehicleType: req.VehicleType,
		FinalPrice:  req.FinalPrice,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

func (h *Handler) listRequestsByAgent(c *gin.Context) {
	agentID, err := parseID(c.Param("agentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid agent id"})
		return
	}

	requests, err := h.bookings.ListRequestsByAgent(c.Request.Context(), agentID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *Handler) listRequestsByCustomer(c *gin.Context) {
	customerID, err := parseID(c.Param("customerId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}

	requests, err := h.bookings.ListRequestsByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}
