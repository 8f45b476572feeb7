package handlers

import (
	"net/http"

	"imobiliaria-backend/internal/auth"
	"imobiliaria-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LandlordHandler handles HTTP requests for landlords
type LandlordHandler struct {
	service service.LandlordServiceInterface
}

// NewLandlordHandler creates a new landlord handler
func NewLandlordHandler(service service.LandlordServiceInterface) *LandlordHandler {
	return &LandlordHandler{service: service}
}

// CreateLandlord handles POST /api/v1/landlords
// @Summary Create a landlord
// @Description Create a landlord in the caller's company
// @Tags landlords
// @Accept json
// @Produce json
// @Param landlord body service.CreateLandlordRequest true "Landlord data"
// @Success 201 {object} DataResponse{data=service.LandlordResponse} "Created landlord"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/landlords [post]
func (h *LandlordHandler) CreateLandlord(c *gin.Context) {
	var req service.CreateLandlordRequest
	if !bindJSON(c, &req) {
		return
	}

	landlord, err := h.service.Create(auth.GetScope(c), &req)
	if err != nil {
		respondError(c, err, "failed to create landlord")
		return
	}

	respondData(c, http.StatusCreated, landlord)
}

// GetLandlord handles GET /api/v1/landlords/:id
// @Summary Get landlord by ID
// @Tags landlords
// @Produce json
// @Param id path int true "Landlord ID"
// @Success 200 {object} DataResponse{data=service.LandlordResponse}
// @Failure 400 {object} ErrorResponse "Invalid landlord ID"
// @Failure 404 {object} ErrorResponse "Landlord not found"
// @Security BearerAuth
// @Router /api/v1/landlords/{id} [get]
func (h *LandlordHandler) GetLandlord(c *gin.Context) {
	id, ok := pathID(c, "id", "landlord")
	if !ok {
		return
	}

	landlord, err := h.service.GetByID(auth.GetScope(c), id)
	if err != nil {
		respondError(c, err, "failed to get landlord")
		return
	}

	respondData(c, http.StatusOK, landlord)
}

// ListLandlords handles GET /api/v1/landlords
// @Summary List landlords
// @Description List the landlords visible to the caller, ordered by name
// @Tags landlords
// @Produce json
// @Param nome query string false "Name contains"
// @Param cpf_cnpj query string false "CPF/CNPJ"
// @Param cidade query string false "City contains"
// @Param forma_repasse query string false "Payout method" Enums(pix, boleto, transferencia, deposito)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.LandlordListResponse
// @Failure 400 {object} ErrorResponse "Invalid filters"
// @Security BearerAuth
// @Router /api/v1/landlords [get]
func (h *LandlordHandler) ListLandlords(c *gin.Context) {
	var req service.LandlordListRequest
	if !bindQuery(c, &req) {
		return
	}

	landlords, err := h.service.List(auth.GetScope(c), &req)
	if err != nil {
		respondError(c, err, "failed to list landlords")
		return
	}

	c.JSON(http.StatusOK, landlords)
}

// UpdateLandlord handles PATCH and PUT /api/v1/landlords/:id
// @Summary Update a landlord
// @Description Apply a partial update; omitted fields keep their values
// @Tags landlords
// @Accept json
// @Produce json
// @Param id path int true "Landlord ID"
// @Param landlord body service.UpdateLandlordRequest true "Fields to change"
// @Success 200 {object} DataResponse{data=service.LandlordResponse}
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Landlord not found"
// @Security BearerAuth
// @Router /api/v1/landlords/{id} [patch]
func (h *LandlordHandler) UpdateLandlord(c *gin.Context) {
	id, ok := pathID(c, "id", "landlord")
	if !ok {
		return
	}

	var req service.UpdateLandlordRequest
	if !bindJSON(c, &req) {
		return
	}

	landlord, err := h.service.Update(auth.GetScope(c), id, &req)
	if err != nil {
		respondError(c, err, "failed to update landlord")
		return
	}

	respondData(c, http.StatusOK, landlord)
}
