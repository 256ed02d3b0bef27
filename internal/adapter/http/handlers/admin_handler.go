package handlers

import (
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

var errInvalidAdminPayload = pkg.NewDomainErrorSimple("INVALID_ADMIN_INPUT", "Invalid status payload", http.StatusBadRequest)

// AdminHandler handles moderation and analytics endpoints. Routes using it
// sit behind the admin role guard.

type AdminHandler struct {
	properties usecase.IPropertyUseCase
	analytics  usecase.IAnalyticsUseCase
}

func NewAdminHandler(properties usecase.IPropertyUseCase, analytics usecase.IAnalyticsUseCase) *AdminHandler {
	return &AdminHandler{properties: properties, analytics: analytics}
}

// UpdatePropertyStatus moves a listing through its lifecycle. Concurrent
// conflicting updates lose with a 409.
//
// @Summary Update a listing's lifecycle status
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param payload body request.UpdatePropertyStatusRequest true "Target status"
// @Success 200 {object} response.PropertyResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /admin/properties/{id}/status [patch]
func (h *AdminHandler) UpdatePropertyStatus(c *gin.Context) {
	var payload request.UpdatePropertyStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdminPayload.HTTPStatus, errInvalidAdminPayload.ToHTTPError())
		return
	}

	adminID := c.GetString(middleware.ContextUserID)
	id := c.Param("id")

	property, err := h.properties.UpdateStatus(c.Request.Context(), adminID, id, entities.PropertyStatus(payload.Status))
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProperty(property))
}

// UpdatePropertyVerification records the verification outcome for a
// listing. Verified and rejected are terminal.
//
// @Summary Update a listing's verification status
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param payload body request.UpdateVerificationRequest true "Target verification status"
// @Success 200 {object} response.PropertyResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /admin/properties/{id}/verification [patch]
func (h *AdminHandler) UpdatePropertyVerification(c *gin.Context) {
	var payload request.UpdateVerificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdminPayload.HTTPStatus, errInvalidAdminPayload.ToHTTPError())
		return
	}

	adminID := c.GetString(middleware.ContextUserID)
	id := c.Param("id")

	property, err := h.properties.UpdateVerification(c.Request.Context(), adminID, id, entities.VerificationStatus(payload.Status))
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProperty(property))
}

// AnalyticsOverview returns the platform metrics for a reporting period.
//
// @Summary Platform analytics overview
// @Tags admin
// @Produce json
// @Param period query string false "Reporting period: 7d, 30d, 90d, 1y or all" default(30d)
// @Param include_trends query bool false "Include the daily trend series"
// @Success 200 {object} usecase.AnalyticsOverview
// @Failure 400 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /admin/analytics/overview [get]
func (h *AdminHandler) AnalyticsOverview(c *gin.Context) {
	period := c.DefaultQuery("period", "30d")
	includeTrends := c.Query("include_trends") == "true"

	overview, err := h.analytics.Overview(c.Request.Context(), period, includeTrends)
	if err != nil {
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, overview)
}

func mapAnalyticsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPeriod):
		return pkg.NewDomainErrorSimple("INVALID_PERIOD", "Unknown reporting period", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
