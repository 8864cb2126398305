package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/driveease/rental-service/internal/model"
)

type providerRequest struct {
	ProviderName   string `json:"providerName" binding:"required"`
	ContactDetails string `json:"contactDetails"`
}

func (h *Handler) listProviders(c *gin.Context) {
	providers, err := h.admin.ListProviders(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}

func (h *Handler) createProvider(c *gin.Context) {
	var req providerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	provider, err := h.admin.CreateProvider(c.Request.Context(), model.Provider{
		ProviderName:   req.ProviderName,
		ContactDetails: req.ContactDetails,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, provider)
}

func (h *Handler) updateProvider(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid provider id"})
		return
	}

	var req providerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	provider, err := h.admin.UpdateProvider(c.Request.Context(), id, req.ProviderName, req.ContactDetails)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, provider)
}

func (h *Handler) deleteProvider(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid provider id"})
		return
	}

	if err := h.admin.DeleteProvider(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "provider removed"})
}

type contractRequest struct {
	VehicleType        string          `json:"vehicleType" binding:"required"`
	BaseRatePerDay     decimal.Decimal `json:"baseRatePerDay"`
	AllowedMileage     int             `json:"allowedMileage"`
	AvailabilityStatus bool            `json:"availabilityStatus"`
	ProviderID         string          `json:"providerId"`
	AgentID            string          `json:"agentId"`
}

func (h *Handler) listContracts(c *gin.Context) {
	contracts, err := h.admin.ListContracts(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contracts)
}

func (h *Handler) listContractsByAgent(c *gin.Context) {
	agentID, err := parseID(c.Param("agentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid agent id"})
		return
	}

	contracts, err := h.admin.ListContractsByAgent(c.Request.Context(), agentID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contracts)
}

func (h *Handler) createContract(c *gin.Context) {
	var req contractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contract := model.VehicleContract{
		VehicleType:        req.VehicleType,
		BaseRatePerDay:     req.BaseRatePerDay,
		AllowedMileage:     req.AllowedMileage,
		AvailabilityStatus: req.AvailabilityStatus,
	}
	if req.ProviderID != "" {
		providerID, err := parseID(req.ProviderID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid provider id"})
			return
		}
		contract.ProviderID = &providerID
	}
	if req.AgentID != "" {
		agentID, err := parseID(req.AgentID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid agent id"})
			return
		}
		contract.AgentID = &agentID
	}

	saved, err := h.admin.CreateContract(c.Request.Context(), contract)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *Handler) updateContract(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contract id"})
		return
	}

	var req contractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contract, err := h.admin.UpdateContract(c.Request.Context(), model.VehicleContract{
		ID:                 id,
		VehicleType:        req.VehicleType,
		BaseRatePerDay:     req.BaseRatePerDay,
		AllowedMileage:     req.AllowedMileage,
		AvailabilityStatus: req.AvailabilityStatus,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract)
}

func (h *Handler) toggleContractStatus(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contract id"})
		return
	}

	status, err := strconv.ParseBool(c.Query("status"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	if err := h.admin.SetContractAvailability(c.Request.Context(), id, status); err != nil {
		h.handleError(c, err)
		return
	}

	label := "Non-Rent"
	if status {
		label = "Rent"
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated: " + label})
}

func (h *Handler) deleteContract(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contract id"})
		return
	}

	if err := h.admin.DeleteContract(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vehicle removed from inventory"})
}
