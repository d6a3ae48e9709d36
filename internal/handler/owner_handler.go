package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/petclinic-micro/service-customers/internal/application"
	"github.com/petclinic-micro/service-customers/internal/domain"
)

// OwnerHandler handles HTTP requests for owner operations.
type OwnerHandler struct {
	service *application.OwnerService
}

// NewOwnerHandler creates a new OwnerHandler.
func NewOwnerHandler(service *application.OwnerService) *OwnerHandler {
	return &OwnerHandler{service: service}
}

// RegisterRoutes registers all owner routes on the given router group.
func (h *OwnerHandler) RegisterRoutes(r *gin.RouterGroup) {
	owners := r.Group("/owners")
	{
		owners.POST("", h.CreateOwner)
		owners.GET("", h.ListOwners)
		owners.GET("/:ownerId", h.GetOwner)
		owners.PUT("/:ownerId", h.UpdateOwner)
	}
}

// CreateOwner handles POST /owners.
func (h *OwnerHandler) CreateOwner(c *gin.Context) {
	var req application.OwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(domain.NewValidationError(map[string]string{"body": "invalid request body"}))
		return
	}

	result, err := h.service.CreateOwner(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetOwner handles GET /owners/:ownerId.
func (h *OwnerHandler) GetOwner(c *gin.Context) {
	ownerID, ok := pathInt(c, "ownerId")
	if !ok {
		return
	}

	result, err := h.service.GetOwner(c.Request.Context(), ownerID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListOwners handles GET /owners.
func (h *OwnerHandler) ListOwners(c *gin.Context) {
	result, err := h.service.ListOwners(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateOwner handles PUT /owners/:ownerId.
func (h *OwnerHandler) UpdateOwner(c *gin.Context) {
	ownerID, ok := pathInt(c, "ownerId")
	if !ok {
		return
	}

	var req application.OwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(domain.NewValidationError(map[string]string{"body": "invalid request body"}))
		return
	}

	result, err := h.service.UpdateOwner(c.Request.Context(), ownerID, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// pathInt parses an integer path parameter, pushing a validation error and
// returning false when the segment is not a number.
func pathInt(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		_ = c.Error(domain.NewValidationError(map[string]string{name: "must be an integer"}))
		return 0, false
	}
	return v, true
}
