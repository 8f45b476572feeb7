package handlers

import (
	"net/http"
	"strconv"

	"imobiliaria-backend/internal/auth"
	"imobiliaria-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SettlementHandler handles HTTP requests for monthly settlements
type SettlementHandler struct {
	service service.SettlementServiceInterface
}

// NewSettlementHandler creates a new settlement handler
func NewSettlementHandler(service service.SettlementServiceInterface) *SettlementHandler {
	return &SettlementHandler{service: service}
}

// RecordSettlement handles POST /api/v1/settlements
// @Summary Record a settlement
// @Description Append the settlement of one reference month (MM/YYYY) of a contract
// @Tags settlements
// @Accept json
// @Produce json
// @Param settlement body service.RecordSettlementRequest true "Settlement data"
// @Success 201 {object} DataResponse{data=service.SettlementResponse}
// @Failure 400 {object} ErrorResponse "Invalid amounts, month or contract"
// @Failure 409 {object} ErrorResponse "Settlement already recorded for the month"
// @Security BearerAuth
// @Router /api/v1/settlements [post]
func (h *SettlementHandler) RecordSettlement(c *gin.Context) {
	var req service.RecordSettlementRequest
	if !bindJSON(c, &req) {
		return
	}

	settlement, err := h.service.Record(c.Request.Context(), auth.GetScope(c), &req)
	if err != nil {
		respondError(c, err, "failed to record settlement")
		return
	}

	respondData(c, http.StatusCreated, settlement)
}

// GetSettlement handles GET /api/v1/settlements/:id
// @Summary Get settlement by ID
// @Tags settlements
// @Produce json
// @Param id path int true "Settlement ID"
// @Success 200 {object} DataResponse{data=service.SettlementResponse}
// @Failure 404 {object} ErrorResponse "Settlement not found"
// @Security BearerAuth
// @Router /api/v1/settlements/{id} [get]
func (h *SettlementHandler) GetSettlement(c *gin.Context) {
	id, ok := pathID(c, "id", "settlement")
	if !ok {
		return
	}

	settlement, err := h.service.GetByID(auth.GetScope(c), id)
	if err != nil {
		respondError(c, err, "failed to get settlement")
		return
	}

	respondData(c, http.StatusOK, settlement)
}

// ListContractSettlements handles GET /api/v1/contracts/:id/settlements
// @Summary List the settlements of a contract
// @Description Most recent reference month first
// @Tags settlements
// @Produce json
// @Param id path int true "Contract ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.SettlementListResponse
// @Failure 404 {object} ErrorResponse "Contract not found"
// @Security BearerAuth
// @Router /api/v1/contracts/{id}/settlements [get]
func (h *SettlementHandler) ListContractSettlements(c *gin.Context) {
	contractID, ok := pathID(c, "id", "contract")
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	settlements, err := h.service.ListByContract(auth.GetScope(c), contractID, page, pageSize)
	if err != nil {
		respondError(c, err, "failed to list settlements")
		return
	}

	c.JSON(http.StatusOK, settlements)
}
