package handler

import (
	"strconv"

	"github.com/cleansync/service-booking/internal/application"
	providerDomain "github.com/cleansync/service-booking/internal/domain/provider"
	"github.com/cleansync/service-booking/internal/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProviderHandler handles HTTP requests for provider record management.
type ProviderHandler struct {
	service *application.ProviderService
}

// NewProviderHandler creates a new ProviderHandler.
func NewProviderHandler(service *application.ProviderService) *ProviderHandler {
	return &ProviderHandler{service: service}
}

// RegisterRoutes registers all provider routes on the given router group.
func (h *ProviderHandler) RegisterRoutes(r *gin.RouterGroup) {
	providers := r.Group("/api/v1/providers")
	{
		providers.POST("", h.CreateProvider)
		providers.GET("", h.ListProviders)
		providers.GET("/available", h.ListAvailableProviders)
		providers.GET("/:id", h.GetProvider)
		providers.PUT("/:id", h.UpdateProvider)
		providers.DELETE("/:id", h.DeleteProvider)
	}
}

// CreateProvider handles POST /api/v1/providers.
func (h *ProviderHandler) CreateProvider(c *gin.Context) {
	var req application.CreateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateProvider(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListProviders handles GET /api/v1/providers with optional service_type,
// min_rating, max_rate and available filters.
func (h *ProviderHandler) ListProviders(c *gin.Context) {
	filter, ok := parseProviderFilter(c)
	if !ok {
		return
	}
	page, limit := parsePagination(c)

	result, err := h.service.ListProviders(c.Request.Context(), filter, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, result.Items, result.Total, result.Page, result.Limit)
}

// ListAvailableProviders handles GET /api/v1/providers/available.
func (h *ProviderHandler) ListAvailableProviders(c *gin.Context) {
	available := true
	filter := providerDomain.Filter{Available: &available}
	page, limit := parsePagination(c)

	result, err := h.service.ListProviders(c.Request.Context(), filter, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, result.Items, result.Total, result.Page, result.Limit)
}

// GetProvider handles GET /api/v1/providers/:id.
func (h *ProviderHandler) GetProvider(c *gin.Context) {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid provider ID")
		return
	}

	result, err := h.service.GetProvider(c.Request.Context(), providerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateProvider handles PUT /api/v1/providers/:id (partial update).
func (h *ProviderHandler) UpdateProvider(c *gin.Context) {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid provider ID")
		return
	}

	var req application.UpdateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.UpdateProvider(c.Request.Context(), providerID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteProvider handles DELETE /api/v1/providers/:id.
func (h *ProviderHandler) DeleteProvider(c *gin.Context) {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid provider ID")
		return
	}

	if err := h.service.DeleteProvider(c.Request.Context(), providerID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "provider deleted"})
}

// parseProviderFilter reads the optional provider query filters. On a
// malformed numeric value it writes a 400 response and returns ok=false.
func parseProviderFilter(c *gin.Context) (providerDomain.Filter, bool) {
	var filter providerDomain.Filter
	filter.ServiceType = c.Query("service_type")

	if raw := c.Query("min_rating"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.BadRequest(c, "invalid min_rating")
			return filter, false
		}
		filter.MinRating = &v
	}
	if raw := c.Query("max_rate"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.BadRequest(c, "invalid max_rate")
			return filter, false
		}
		filter.MaxRate = &v
	}
	if raw := c.Query("available"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			response.BadRequest(c, "invalid available")
			return filter, false
		}
		filter.Available = &v
	}

	return filter, true
}
