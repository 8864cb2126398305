package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/driveease/rental-service/internal/model"
)

type contactMessageRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message" binding:"required"`
}

func (h *Handler) sendContactMessage(c *gin.Context) {
	var req contactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.contact.SendMessage(c.Request.Context(), model.ContactMessage{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (h *Handler) listContactMessages(c *gin.Context) {
	messages, err := h.contact.ListMessages(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}
