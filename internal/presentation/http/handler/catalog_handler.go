package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/invinci009/rmw/internal/application/service"
	"github.com/invinci009/rmw/internal/domain/enum"
	"github.com/invinci009/rmw/internal/presentation/http/dto/response"
)

// CatalogHandler handles service catalog HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// List handles listing catalog services. Public callers see active entries
// only; admins may pass include_inactive=true.
func (h *CatalogHandler) List(c *gin.Context) {
	var vehicleType *enum.VehicleType
	if vt := c.Query("vehicle_type"); vt != "" {
		parsed := enum.VehicleType(strings.ToUpper(vt))
		vehicleType = &parsed
	}

	includeInactive := IsAdmin(c) && c.Query("include_inactive") == "true"

	services, err := h.catalogService.ListServices(c.Request.Context(), vehicleType, includeInactive)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Services retrieved successfully", services)
}

// GetBySlug handles fetching one service by slug
func (h *CatalogHandler) GetBySlug(c *gin.Context) {
	svc, err := h.catalogService.GetServiceBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service retrieved successfully", svc)
}

// Create handles creating a catalog service
func (h *CatalogHandler) Create(c *gin.Context) {
	var input service.CatalogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	svc, err := h.catalogService.CreateService(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Service created successfully", svc)
}

// Update handles updating a catalog service
func (h *CatalogHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service ID")
		return
	}

	var input service.CatalogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	svc, err := h.catalogService.UpdateService(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service updated successfully", svc)
}

// Delete handles deleting a catalog service
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service ID")
		return
	}

	if err := h.catalogService.DeleteService(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service deleted successfully", nil)
}
