package service

import (
	"fmt"
	"time"

	"imobiliaria-backend/internal/database/models"
	apperrors "imobiliaria-backend/internal/errors"
	"imobiliaria-backend/internal/repository"
	"imobiliaria-backend/internal/scope"

	"github.com/go-playground/validator/v10"
)

// TenantService handles business logic for tenants
type TenantService struct {
	repo      repository.TenantRepositoryInterface
	validator *validator.Validate
}

// NewTenantService creates a new tenant service
func NewTenantService(repo repository.TenantRepositoryInterface, validator *validator.Validate) *TenantService {
	return &TenantService{
		repo:      repo,
		validator: validator,
	}
}

// CreateTenantRequest represents the request to create a tenant
type CreateTenantRequest struct {
	Name          string  `json:"nome" validate:"required,max=150"`
	TaxID         string  `json:"cpf_cnpj" validate:"omitempty,max=18"`
	PersonType    string  `json:"tipo_pessoa" validate:"omitempty,oneof=fisica juridica"`
	IDNumber      string  `json:"rg" validate:"omitempty,max=20"`
	Email         string  `json:"email" validate:"omitempty,email,max=150"`
	Phone         string  `json:"telefone" validate:"omitempty,max=30"`
	Address       string  `json:"endereco" validate:"omitempty,max=255"`
	City          string  `json:"cidade" validate:"omitempty,max=100"`
	State         string  `json:"estado" validate:"omitempty,len=2"`
	Occupation    string  `json:"profissao" validate:"omitempty,max=100"`
	MonthlyIncome float64 `json:"renda_mensal" validate:"gte=0"`
	Notes         string  `json:"observacoes"`
}

// UpdateTenantRequest represents a partial update of a tenant; nil fields are left untouched
type UpdateTenantRequest struct {
	Name          *string  `json:"nome" validate:"omitempty,min=1,max=150"`
	TaxID         *string  `json:"cpf_cnpj" validate:"omitempty,max=18"`
	PersonType    *string  `json:"tipo_pessoa" validate:"omitempty,oneof=fisica juridica"`
	IDNumber      *string  `json:"rg" validate:"omitempty,max=20"`
	Email         *string  `json:"email" validate:"omitempty,email,max=150"`
	Phone         *string  `json:"telefone" validate:"omitempty,max=30"`
	Address       *string  `json:"endereco" validate:"omitempty,max=255"`
	City          *string  `json:"cidade" validate:"omitempty,max=100"`
	State         *string  `json:"estado" validate:"omitempty,len=2"`
	Occupation    *string  `json:"profissao" validate:"omitempty,max=100"`
	MonthlyIncome *float64 `json:"renda_mensal" validate:"omitempty,gte=0"`
	Notes         *string  `json:"observacoes"`
}

// TenantListRequest holds list filters and pagination for tenants
type TenantListRequest struct {
	Name     string `form:"nome"`
	TaxID    string `form:"cpf_cnpj"`
	City     string `form:"cidade"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// TenantResponse represents the response for tenant operations
type TenantResponse struct {
	ID            uint      `json:"id"`
	CompanyID     uint      `json:"empresa_id"`
	Name          string    `json:"nome"`
	TaxID         string    `json:"cpf_cnpj"`
	PersonType    string    `json:"tipo_pessoa"`
	IDNumber      string    `json:"rg"`
	Email         string    `json:"email"`
	Phone         string    `json:"telefone"`
	Address       string    `json:"endereco"`
	City          string    `json:"cidade"`
	State         string    `json:"estado"`
	Occupation    string    `json:"profissao"`
	MonthlyIncome float64   `json:"renda_mensal"`
	Notes         string    `json:"observacoes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TenantListResponse represents a paginated list of tenants
type TenantListResponse struct {
	Data     []TenantResponse `json:"data"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create creates a new tenant in the caller's company
func (s *TenantService) Create(sc scope.Scope, req *CreateTenantRequest) (*TenantResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	if !sc.Valid() {
		return nil, apperrors.ErrScopeMissing
	}
	taxID, err := normalizeTaxID(req.TaxID)
	if err != nil {
		return nil, err
	}

	tenant := &models.Tenant{
		CompanyScoped: models.CompanyScoped{CompanyID: sc.CompanyID()},
		Name:          req.Name,
		TaxID:         taxID,
		PersonType:    models.PersonType(req.PersonType),
		IDNumber:      req.IDNumber,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		Occupation:    req.Occupation,
		MonthlyIncome: req.MonthlyIncome,
		Notes:         req.Notes,
	}

	if err := s.repo.Create(tenant); err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	return s.toResponse(tenant), nil
}

// GetByID retrieves a tenant visible to the caller
func (s *TenantService) GetByID(sc scope.Scope, id uint) (*TenantResponse, error) {
	tenant, err := s.repo.GetByID(id, sc)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTenantNotFound, "get tenant")
	}
	return s.toResponse(tenant), nil
}

// List retrieves tenants visible to the caller with filters and pagination
func (s *TenantService) List(sc scope.Scope, req *TenantListRequest) (*TenantListResponse, error) {
	page, pageSize := normalizePage(req.Page, req.PageSize)

	filter := repository.TenantFilter{
		Name:  req.Name,
		TaxID: req.TaxID,
		City:  req.City,
	}
	tenants, total, err := s.repo.List(filter, sc, pageSize, offsetOf(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	responses := make([]TenantResponse, len(tenants))
	for i := range tenants {
		responses[i] = *s.toResponse(&tenants[i])
	}

	return &TenantListResponse{
		Data:     responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update applies a partial update to a tenant visible to the caller
func (s *TenantService) Update(sc scope.Scope, id uint, req *UpdateTenantRequest) (*TenantResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.TaxID != nil {
		taxID, err := normalizeTaxID(*req.TaxID)
		if err != nil {
			return nil, err
		}
		updates["cpf_cnpj"] = taxID
	}
	setIf(updates, "nome", req.Name)
	setIf(updates, "tipo_pessoa", req.PersonType)
	setIf(updates, "rg", req.IDNumber)
	setIf(updates, "email", req.Email)
	setIf(updates, "telefone", req.Phone)
	setIf(updates, "endereco", req.Address)
	setIf(updates, "cidade", req.City)
	setIf(updates, "estado", req.State)
	setIf(updates, "profissao", req.Occupation)
	setIf(updates, "renda_mensal", req.MonthlyIncome)
	setIf(updates, "observacoes", req.Notes)
	if err := requireUpdates(updates); err != nil {
		return nil, err
	}

	tenant, err := s.repo.Update(id, sc, updates)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTenantNotFound, "update tenant")
	}
	return s.toResponse(tenant), nil
}

// toResponse converts a tenant model to response
func (s *TenantService) toResponse(tenant *models.Tenant) *TenantResponse {
	return &TenantResponse{
		ID:            tenant.ID,
		CompanyID:     tenant.CompanyID,
		Name:          tenant.Name,
		TaxID:         tenant.TaxID,
		PersonType:    string(tenant.PersonType),
		IDNumber:      tenant.IDNumber,
		Email:         tenant.Email,
		Phone:         tenant.Phone,
		Address:       tenant.Address,
		City:          tenant.City,
		State:         tenant.State,
		Occupation:    tenant.Occupation,
		MonthlyIncome: tenant.MonthlyIncome,
		Notes:         tenant.Notes,
		CreatedAt:     tenant.CreatedAt,
		UpdatedAt:     tenant.UpdatedAt,
	}
}
