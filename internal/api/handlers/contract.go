package handlers

import (
	"net/http"

	"imobiliaria-backend/internal/auth"
	"imobiliaria-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ContractHandler handles HTTP requests for rental contracts
type ContractHandler struct {
	service service.ContractServiceInterface
}

// NewContractHandler creates a new contract handler
func NewContractHandler(service service.ContractServiceInterface) *ContractHandler {
	return &ContractHandler{service: service}
}

// CreateContract handles POST /api/v1/contracts
// @Summary Create a contract
// @Description Create a contract between a tenant and a property of the caller's company
// @Tags contracts
// @Accept json
// @Produce json
// @Param contract body service.CreateContractRequest true "Contract data"
// @Success 201 {object} DataResponse{data=service.ContractResponse}
// @Failure 400 {object} ErrorResponse "Invalid request body or date range"
// @Failure 409 {object} ErrorResponse "Tenant or property belongs to another company"
// @Security BearerAuth
// @Router /api/v1/contracts [post]
func (h *ContractHandler) CreateContract(c *gin.Context) {
	var req service.CreateContractRequest
	if !bindJSON(c, &req) {
		return
	}

	contract, err := h.service.Create(auth.GetScope(c), &req)
	if err != nil {
		respondError(c, err, "failed to create contract")
		return
	}

	respondData(c, http.StatusCreated, contract)
}

// GetContract handles GET /api/v1/contracts/:id
// @Summary Get contract by ID
// @Tags contracts
// @Produce json
// @Param id path int true "Contract ID"
// @Success 200 {object} DataResponse{data=service.ContractResponse}
// @Failure 404 {object} ErrorResponse "Contract not found"
// @Security BearerAuth
// @Router /api/v1/contracts/{id} [get]
func (h *ContractHandler) GetContract(c *gin.Context) {
	id, ok := pathID(c, "id", "contract")
	if !ok {
		return
	}

	contract, err := h.service.GetByID(auth.GetScope(c), id)
	if err != nil {
		respondError(c, err, "failed to get contract")
		return
	}

	respondData(c, http.StatusOK, contract)
}

// ListContracts handles GET /api/v1/contracts
// @Summary List contracts
// @Description List contracts ordered by tenant name. status: ativo (not ended), a_vencer (ends within 30 days), encerrado (ended)
// @Tags contracts
// @Produce json
// @Param locatario_id query int false "Tenant ID"
// @Param imovel_id query int false "Property ID"
// @Param locatario query string false "Tenant name contains"
// @Param endereco query string false "Property address contains"
// @Param status query string false "Contract status" Enums(ativo, a_vencer, encerrado)
// @Param data_inicio_de query string false "Start date from (YYYY-MM-DD)"
// @Param data_inicio_ate query string false "Start date until (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ContractListResponse
// @Failure 400 {object} ErrorResponse "Invalid filters"
// @Security BearerAuth
// @Router /api/v1/contracts [get]
func (h *ContractHandler) ListContracts(c *gin.Context) {
	var req service.ContractListRequest
	if !bindQuery(c, &req) {
		return
	}

	contracts, err := h.service.List(auth.GetScope(c), &req)
	if err != nil {
		respondError(c, err, "failed to list contracts")
		return
	}

	c.JSON(http.StatusOK, contracts)
}

// UpdateContract handles PATCH and PUT /api/v1/contracts/:id
// @Summary Update a contract
// @Description Apply a partial update; omitted fields keep their values
// @Tags contracts
// @Accept json
// @Produce json
// @Param id path int true "Contract ID"
// @Param contract body service.UpdateContractRequest true "Fields to change"
// @Success 200 {object} DataResponse{data=service.ContractResponse}
// @Failure 400 {object} ErrorResponse "Invalid request or date range"
// @Failure 404 {object} ErrorResponse "Contract not found"
// @Failure 409 {object} ErrorResponse "Tenant or property belongs to another company"
// @Security BearerAuth
// @Router /api/v1/contracts/{id} [patch]
func (h *ContractHandler) UpdateContract(c *gin.Context) {
	id, ok := pathID(c, "id", "contract")
	if !ok {
		return
	}

	var req service.UpdateContractRequest
	if !bindJSON(c, &req) {
		return
	}

	contract, err := h.service.Update(auth.GetScope(c), id, &req)
	if err != nil {
		respondError(c, err, "failed to update contract")
		return
	}

	respondData(c, http.StatusOK, contract)
}
