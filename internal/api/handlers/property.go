package handlers

import (
	"net/http"

	"imobiliaria-backend/internal/auth"
	"imobiliaria-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PropertyHandler handles HTTP requests for properties
type PropertyHandler struct {
	service service.PropertyServiceInterface
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(service service.PropertyServiceInterface) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// CreateProperty handles POST /api/v1/properties
// @Summary Create a property
// @Description Create a property owned by a landlord of the caller's company
// @Tags properties
// @Accept json
// @Produce json
// @Param property body service.CreatePropertyRequest true "Property data"
// @Success 201 {object} DataResponse{data=service.PropertyResponse}
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Landlord belongs to another company"
// @Security BearerAuth
// @Router /api/v1/properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req service.CreatePropertyRequest
	if !bindJSON(c, &req) {
		return
	}

	property, err := h.service.Create(auth.GetScope(c), &req)
	if err != nil {
		respondError(c, err, "failed to create property")
		return
	}

	respondData(c, http.StatusCreated, property)
}

// GetProperty handles GET /api/v1/properties/:id
// @Summary Get property by ID
// @Tags properties
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} DataResponse{data=service.PropertyResponse}
// @Failure 404 {object} ErrorResponse "Property not found"
// @Security BearerAuth
// @Router /api/v1/properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, ok := pathID(c, "id", "property")
	if !ok {
		return
	}

	property, err := h.service.GetByID(auth.GetScope(c), id)
	if err != nil {
		respondError(c, err, "failed to get property")
		return
	}

	respondData(c, http.StatusOK, property)
}

// ListProperties handles GET /api/v1/properties
// @Summary List properties
// @Tags properties
// @Produce json
// @Param endereco query string false "Address contains"
// @Param cidade query string false "City contains"
// @Param bairro query string false "District contains"
// @Param tipo query string false "Property type" Enums(casa, apartamento, comercial, terreno, outro)
// @Param locador_id query int false "Landlord ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.PropertyListResponse
// @Security BearerAuth
// @Router /api/v1/properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	var req service.PropertyListRequest
	if !bindQuery(c, &req) {
		return
	}

	properties, err := h.service.List(auth.GetScope(c), &req)
	if err != nil {
		respondError(c, err, "failed to list properties")
		return
	}

	c.JSON(http.StatusOK, properties)
}

// UpdateProperty handles PATCH and PUT /api/v1/properties/:id
// @Summary Update a property
// @Tags properties
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Param property body service.UpdatePropertyRequest true "Fields to change"
// @Success 200 {object} DataResponse{data=service.PropertyResponse}
// @Failure 404 {object} ErrorResponse "Property not found"
// @Failure 409 {object} ErrorResponse "Landlord belongs to another company"
// @Security BearerAuth
// @Router /api/v1/properties/{id} [patch]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	id, ok := pathID(c, "id", "property")
	if !ok {
		return
	}

	var req service.UpdatePropertyRequest
	if !bindJSON(c, &req) {
		return
	}

	property, err := h.service.Update(auth.GetScope(c), id, &req)
	if err != nil {
		respondError(c, err, "failed to update property")
		return
	}

	respondData(c, http.StatusOK, property)
}
