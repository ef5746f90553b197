package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Yashkhope01/Blog/internal/service"
)

// ContactHandler exposes the public contact form and the admin inbox.
type ContactHandler struct {
	contactService *service.ContactService
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// SubmitContactRequest is the public contact-form payload.
type SubmitContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required,max=2000"`
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.SubmitContact: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input: name, email, subject and message are required")
		return
	}

	contact, err := h.contactService.Submit(c.Request.Context(), service.SubmitContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	MessageResponse(c, http.StatusCreated, "Your message has been sent successfully!", contact)
}

// List handles GET /api/contact (admin only). Query: status, page, limit.
func (h *ContactHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	contacts, pageInfo, err := h.contactService.List(c.Request.Context(), service.ContactListQuery{
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	PagedResponse(c, http.StatusOK, contacts, pageInfo)
}

// Get handles GET /api/contact/:id (admin only). The first view of an unread
// message marks it read.
func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	contact, err := h.contactService.Get(c.Request.Context(), id)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, contact)
}

// UpdateContactRequest carries the admin-editable fields.
type UpdateContactRequest struct {
	Status   string `json:"status" binding:"omitempty,oneof=unread read replied"`
	Response string `json:"response"`
}

// Update handles PUT /api/contact/:id (admin only).
func (h *ContactHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.UpdateContact: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input: status must be unread, read or replied")
		return
	}

	contact, err := h.contactService.Update(c.Request.Context(), id, service.UpdateContactInput{
		Status:   req.Status,
		Response: req.Response,
	})
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, contact)
}

// Delete handles DELETE /api/contact/:id (admin only).
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.contactService.Delete(c.Request.Context(), id); err != nil {
		HandleServiceError(c, err)
		return
	}

	MessageResponse(c, http.StatusOK, "Contact message deleted", nil)
}
