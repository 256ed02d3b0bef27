package handlers

import (
	"context"
	"errors"
	"net/http"

	request "github.com/x17green/realest-sub003/internal/adapter/http/dto/request"
	response "github.com/x17green/realest-sub003/internal/adapter/http/dto/response"
	"github.com/x17green/realest-sub003/internal/adapter/http/middleware"
	"github.com/x17green/realest-sub003/internal/domain/entities"
	"github.com/x17green/realest-sub003/internal/usecase"
	"github.com/x17green/realest-sub003/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInquiryPayload = pkg.NewDomainErrorSimple("INVALID_INQUIRY_INPUT", "Invalid inquiry payload", http.StatusBadRequest)

// InquiryHandler handles HTTP requests for buyer-to-owner inquiries.

type InquiryHandler struct {
	usecase usecase.IInquiryUseCase
}

func NewInquiryHandler(uc usecase.IInquiryUseCase) *InquiryHandler {
	return &InquiryHandler{usecase: uc}
}

// CreateInquiry opens an inquiry against a publicly visible listing.
//
// @Summary Send an inquiry about a listing
// @Tags inquiries
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param payload body request.CreateInquiryRequest true "Inquiry message"
// @Success 201 {object} response.InquiryResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /properties/{id}/inquiries [post]
func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	var payload request.CreateInquiryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInquiryPayload.HTTPStatus, errInvalidInquiryPayload.ToHTTPError())
		return
	}

	senderID := c.GetString(middleware.ContextUserID)
	propertyID := c.Param("id")

	inquiry, err := h.usecase.Create(c.Request.Context(), senderID, propertyID, payload.Message)
	if err != nil {
		appErr := mapInquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInquiry(inquiry))
}

// ListReceivedInquiries returns the inquiries addressed to the caller,
// newest first.
//
// @Summary List inquiries received by the caller
// @Tags inquiries
// @Produce json
// @Success 200 {array} response.InquiryResponse
// @Security BearerAuth
// @Router /inquiries [get]
func (h *InquiryHandler) ListReceivedInquiries(c *gin.Context) {
	receiverID := c.GetString(middleware.ContextUserID)

	inquiries, err := h.usecase.ListReceived(c.Request.Context(), receiverID)
	if err != nil {
		appErr := mapInquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInquiries(inquiries))
}

// RespondInquiry marks a pending inquiry as responded.
//
// @Summary Mark an inquiry as responded
// @Tags inquiries
// @Produce json
// @Param id path string true "Inquiry ID"
// @Success 200 {object} response.InquiryResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /inquiries/{id}/respond [patch]
func (h *InquiryHandler) RespondInquiry(c *gin.Context) {
	h.patchInquiryStatus(c, h.usecase.Respond)
}

// CloseInquiry closes an inquiry in any non-closed state.
//
// @Summary Close an inquiry
// @Tags inquiries
// @Produce json
// @Param id path string true "Inquiry ID"
// @Success 200 {object} response.InquiryResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /inquiries/{id}/close [patch]
func (h *InquiryHandler) CloseInquiry(c *gin.Context) {
	h.patchInquiryStatus(c, h.usecase.Close)
}

func (h *InquiryHandler) patchInquiryStatus(
	c *gin.Context,
	updater func(ctx context.Context, receiverID, inquiryID string) (entities.Inquiry, error),
) {
	receiverID := c.GetString(middleware.ContextUserID)
	inquiryID := c.Param("id")

	inquiry, err := updater(c.Request.Context(), receiverID, inquiryID)
	if err != nil {
		appErr := mapInquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInquiry(inquiry))
}

func mapInquiryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInquiryID), errors.Is(err, usecase.ErrInvalidInquiryMessage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInquiryToOwnListing):
		return pkg.NewDomainErrorSimple("INQUIRY_TO_OWN_LISTING", "Cannot inquire about your own listing", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInquiryNotFound):
		return pkg.NewDomainErrorSimple("INQUIRY_NOT_FOUND", "Inquiry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPropertyNotFound):
		return pkg.NewDomainErrorSimple("PROPERTY_NOT_FOUND", "Property not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotInquiryReceiver):
		return pkg.NewDomainErrorSimple("NOT_INQUIRY_RECEIVER", "Only the inquiry receiver may perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Inquiry state does not allow this transition", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
