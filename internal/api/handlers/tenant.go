package handlers

import (
	"net/http"

	"imobiliaria-backend/internal/auth"
	"imobiliaria-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TenantHandler handles HTTP requests for tenants
type TenantHandler struct {
	service service.TenantServiceInterface
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(service service.TenantServiceInterface) *TenantHandler {
	return &TenantHandler{service: service}
}

// CreateTenant handles POST /api/v1/tenants
// @Summary Create a tenant
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant body service.CreateTenantRequest true "Tenant data"
// @Success 201 {object} DataResponse{data=service.TenantResponse}
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /api/v1/tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req service.CreateTenantRequest
	if !bindJSON(c, &req) {
		return
	}

	tenant, err := h.service.Create(auth.GetScope(c), &req)
	if err != nil {
		respondError(c, err, "failed to create tenant")
		return
	}

	respondData(c, http.StatusCreated, tenant)
}

// GetTenant handles GET /api/v1/tenants/:id
// @Summary Get tenant by ID
// @Tags tenants
// @Produce json
// @Param id path int true "Tenant ID"
// @Success 200 {object} DataResponse{data=service.TenantResponse}
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Security BearerAuth
// @Router /api/v1/tenants/{id} [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	id, ok := pathID(c, "id", "tenant")
	if !ok {
		return
	}

	tenant, err := h.service.GetByID(auth.GetScope(c), id)
	if err != nil {
		respondError(c, err, "failed to get tenant")
		return
	}

	respondData(c, http.StatusOK, tenant)
}

// ListTenants handles GET /api/v1/tenants
// @Summary List tenants
// @Tags tenants
// @Produce json
// @Param nome query string false "Name contains"
// @Param cpf_cnpj query string false "CPF/CNPJ"
// @Param cidade query string false "City contains"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.TenantListResponse
// @Security BearerAuth
// @Router /api/v1/tenants [get]
func (h *TenantHandler) ListTenants(c *gin.Context) {
	var req service.TenantListRequest
	if !bindQuery(c, &req) {
		return
	}

	tenants, err := h.service.List(auth.GetScope(c), &req)
	if err != nil {
		respondError(c, err, "failed to list tenants")
		return
	}

	c.JSON(http.StatusOK, tenants)
}

// UpdateTenant handles PATCH and PUT /api/v1/tenants/:id
// @Summary Update a tenant
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path int true "Tenant ID"
// @Param tenant body service.UpdateTenantRequest true "Fields to change"
// @Success 200 {object} DataResponse{data=service.TenantResponse}
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Security BearerAuth
// @Router /api/v1/tenants/{id} [patch]
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	id, ok := pathID(c, "id", "tenant")
	if !ok {
		return
	}

	var req service.UpdateTenantRequest
	if !bindJSON(c, &req) {
		return
	}

	tenant, err := h.service.Update(auth.GetScope(c), id, &req)
	if err != nil {
		respondError(c, err, "failed to update tenant")
		return
	}

	respondData(c, http.StatusOK, tenant)
}
