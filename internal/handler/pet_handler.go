package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petclinic-micro/service-customers/internal/application"
	"github.com/petclinic-micro/service-customers/internal/domain"
)

// PetHandler handles HTTP requests for pet operations.
type PetHandler struct {
	service *application.PetService
}

// NewPetHandler creates a new PetHandler.
func NewPetHandler(service *application.PetService) *PetHandler {
	return &PetHandler{service: service}
}

// RegisterRoutes registers all pet routes on the given router group.
func (h *PetHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/petTypes", h.GetPetTypes)

	pets := r.Group("/owners/:ownerId/pets")
	{
		pets.POST("", h.CreatePet)
		pets.PUT("/:petId", h.UpdatePet)
		pets.GET("/:petId", h.GetPet)
	}
}

// GetPetTypes handles GET /petTypes.
func (h *PetHandler) GetPetTypes(c *gin.Context) {
	result, err := h.service.GetPetTypes(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreatePet handles POST /owners/:ownerId/pets.
func (h *PetHandler) CreatePet(c *gin.Context) {
	ownerID, ok := pathInt(c, "ownerId")
	if !ok {
		return
	}

	var req application.PetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(domain.NewValidationError(map[string]string{"body": "invalid request body"}))
		return
	}

	result, err := h.service.CreatePet(c.Request.Context(), ownerID, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// UpdatePet handles PUT /owners/:ownerId/pets/:petId. The owner and pet
// path segments are not used to resolve the target; lookup is purely by the
// body-carried id (preserved upstream behavior).
func (h *PetHandler) UpdatePet(c *gin.Context) {
	var req application.PetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(domain.NewValidationError(map[string]string{"body": "invalid request body"}))
		return
	}

	result, err := h.service.UpdatePet(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPet handles GET /owners/:ownerId/pets/:petId. The owner segment is not
// used for the lookup.
func (h *PetHandler) GetPet(c *gin.Context) {
	petID, ok := pathInt(c, "petId")
	if !ok {
		return
	}

	result, err := h.service.GetPet(c.Request.Context(), petID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}
