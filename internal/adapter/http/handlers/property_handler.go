package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "github.com/x17green/realest-sub003/internal/adapter/http/dto/request"
	response "github.com/x17green/realest-sub003/internal/adapter/http/dto/response"
	"github.com/x17green/realest-sub003/internal/adapter/http/middleware"
	"github.com/x17green/realest-sub003/internal/domain/entities"
	"github.com/x17green/realest-sub003/internal/domain/search"
	"github.com/x17green/realest-sub003/internal/usecase"
	"github.com/x17green/realest-sub003/pkg"

	"github.com/gin-gonic/gin"
)

// PropertyHandler handles HTTP requests for listing submission, lookup and
// public search.

type PropertyHandler struct {
	usecase usecase.IPropertyUseCase
}

func NewPropertyHandler(uc usecase.IPropertyUseCase) *PropertyHandler {
	return &PropertyHandler{usecase: uc}
}

// CreateProperty accepts a listing submission from an authenticated owner or
// agent. Validation failures report every violation with its field path.
//
// @Summary Submit a property listing
// @Tags properties
// @Accept json
// @Produce json
// @Param payload body request.CreatePropertyRequest true "Listing submission"
// @Success 201 {object} response.CreatePropertyResponse
// @Failure 400 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var payload request.CreatePropertyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewValidationError("Invalid property payload", request.FieldErrors(err), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	ownerID := c.GetString(middleware.ContextUserID)
	created, err := h.usecase.Create(c.Request.Context(), ownerID, payload.ToEntity(), payload.DetailsEntity())
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.CreatePropertyResponse{
		Property: response.FromPropertyWithDetails(created, payload.DetailsEntity()),
		Message:  "property submitted and queued for verification checks",
	})
}

// GetProperty returns one listing. Listings that are not publicly visible
// are only returned to their owner or an admin.
//
// @Summary Get a property by id
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.PropertyResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id := c.Param("id")
	viewerID := c.GetString(middleware.ContextUserID)
	viewerAdmin := c.GetString(middleware.ContextUserRole) == string(entities.UserTypeAdmin)

	property, details, err := h.usecase.GetByID(c.Request.Context(), id, viewerID, viewerAdmin)
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var detailsPtr *entities.PropertyDetails
	if details.PropertyID != "" {
		detailsPtr = &details
	}
	c.JSON(http.StatusOK, response.FromPropertyWithDetails(property, detailsPtr))
}

// SearchProperties runs the public listing search. Unknown detail-level
// filter parameters are rejected, not ignored.
//
// @Summary Search public listings
// @Tags properties
// @Produce json
// @Param query query string false "Free text over title, description and address"
// @Param state query string false "State filter"
// @Param city query string false "City filter"
// @Param property_type query string false "Property type filter"
// @Param listing_type query string false "Listing type filter"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param bedrooms query int false "Minimum bedrooms"
// @Param bathrooms query int false "Minimum bathrooms"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.SearchPropertiesResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /properties [get]
func (h *PropertyHandler) SearchProperties(c *gin.Context) {
	var payload request.SearchPropertiesRequest
	if err := c.ShouldBindQuery(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_SEARCH", "Invalid search parameters", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	filter := payload.ToFilter(request.UnsupportedParams(c.Request.URL.Query()))
	result, err := h.usecase.Search(c.Request.Context(), filter)
	if err != nil {
		appErr := mapSearchError(err, filter)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	normalized := filter.Normalize()
	c.JSON(http.StatusOK, response.FromSearchResult(result.Properties, result.Total, normalized.Page, normalized.Limit))
}

// SubmitProperty moves the caller's draft or rejected listing back into the
// verification queue.
//
// @Summary Submit a listing for verification
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.PropertyResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /properties/{id}/submit [patch]
func (h *PropertyHandler) SubmitProperty(c *gin.Context) {
	id := c.Param("id")
	ownerID := c.GetString(middleware.ContextUserID)

	property, err := h.usecase.Submit(c.Request.Context(), ownerID, id)
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProperty(property))
}

func mapPropertyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPropertyID), errors.Is(err, usecase.ErrInvalidOwnerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPropertyNotFound):
		return pkg.NewDomainErrorSimple("PROPERTY_NOT_FOUND", "Property not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOwnershipRequired):
		return pkg.NewDomainErrorSimple("OWNERSHIP_REQUIRED", "Only the listing owner may perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrListingNotAllowed):
		return pkg.NewDomainErrorSimple("LISTING_NOT_ALLOWED", "Account is not permitted to create listings", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidTransition), errors.Is(err, usecase.ErrUnknownStatus):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Listing state does not allow this transition", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapSearchError(err error, f search.Filter) *pkg.AppError {
	switch {
	case errors.Is(err, search.ErrUnsupportedFilter):
		msg := "Unsupported filter parameters: " + strings.Join(f.Unsupported, ", ")
		return pkg.NewDomainErrorSimple("UNSUPPORTED_FILTER", msg, http.StatusBadRequest)
	case errors.Is(err, search.ErrInvalidPriceRange):
		return pkg.NewDomainErrorSimple("INVALID_PRICE_RANGE", "min_price must not exceed max_price", http.StatusBadRequest)
	case errors.Is(err, search.ErrNegativePrice):
		return pkg.NewDomainErrorSimple("INVALID_PRICE_RANGE", "price bounds must not be negative", http.StatusBadRequest)
	case errors.Is(err, search.ErrUnknownEnumValue):
		return pkg.NewDomainErrorSimple("INVALID_SEARCH", "Unknown property_type or listing_type value", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
