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

// ContractService handles business logic for rental contracts
type ContractService struct {
	repo      repository.ContractRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewContractService creates a new contract service
func NewContractService(repo repository.ContractRepositoryInterface, validator *validator.Validate) *ContractService {
	return &ContractService{
		repo:      repo,
		validator: validator,
		now:       time.Now,
	}
}

// CreateContractRequest represents the request to create a contract
type CreateContractRequest struct {
	TenantID               uint    `json:"locatario_id" validate:"required,gt=0"`
	PropertyID             uint    `json:"imovel_id" validate:"required,gt=0"`
	StartDate              string  `json:"data_inicio" validate:"required,datetime=2006-01-02"`
	EndDate                string  `json:"data_fim" validate:"required,datetime=2006-01-02"`
	RentAmount             float64 `json:"valor_aluguel" validate:"gt=0"`
	AdminFee               float64 `json:"taxa_administracao" validate:"gte=0,lte=100"`
	Bonus                  float64 `json:"bonificacao" validate:"gte=0"`
	AdjustmentIndex        string  `json:"indice_reajuste" validate:"omitempty,oneof=IGPM IPCA outro"`
	AdjustmentPercent      float64 `json:"percentual_reajuste" validate:"gte=0"`
	DueDay                 int     `json:"dia_vencimento" validate:"required,min=1,max=31"`
	AutoRenewal            bool    `json:"renovacao_automatica"`
	FireInsurance          bool    `json:"seguro_incendio"`
	RentGuaranteeInsurance bool    `json:"seguro_fianca"`
	Clauses                string  `json:"clausulas"`
}

// UpdateContractRequest represents a partial update of a contract; nil fields are left untouched
type UpdateContractRequest struct {
	TenantID               *uint    `json:"locatario_id" validate:"omitempty,gt=0"`
	PropertyID             *uint    `json:"imovel_id" validate:"omitempty,gt=0"`
	StartDate              *string  `json:"data_inicio" validate:"omitempty,datetime=2006-01-02"`
	EndDate                *string  `json:"data_fim" validate:"omitempty,datetime=2006-01-02"`
	RentAmount             *float64 `json:"valor_aluguel" validate:"omitempty,gt=0"`
	AdminFee               *float64 `json:"taxa_administracao" validate:"omitempty,gte=0,lte=100"`
	Bonus                  *float64 `json:"bonificacao" validate:"omitempty,gte=0"`
	AdjustmentIndex        *string  `json:"indice_reajuste" validate:"omitempty,oneof=IGPM IPCA outro"`
	AdjustmentPercent      *float64 `json:"percentual_reajuste" validate:"omitempty,gte=0"`
	DueDay                 *int     `json:"dia_vencimento" validate:"omitempty,min=1,max=31"`
	AutoRenewal            *bool    `json:"renovacao_automatica"`
	FireInsurance          *bool    `json:"seguro_incendio"`
	RentGuaranteeInsurance *bool    `json:"seguro_fianca"`
	Clauses                *string  `json:"clausulas"`
}

// ContractListRequest holds list filters and pagination for contracts
type ContractListRequest struct {
	TenantID        *uint  `form:"locatario_id"`
	PropertyID      *uint  `form:"imovel_id"`
	TenantName      string `form:"locatario"`
	PropertyAddress string `form:"endereco"`
	Status          string `form:"status" validate:"omitempty,oneof=ativo a_vencer encerrado"`
	StartFrom       string `form:"data_inicio_de" validate:"omitempty,datetime=2006-01-02"`
	StartTo         string `form:"data_inicio_ate" validate:"omitempty,datetime=2006-01-02"`
	Page            int    `form:"page"`
	PageSize        int    `form:"page_size"`
}

// ContractResponse represents the response for contract operations
type ContractResponse struct {
	ID                     uint      `json:"id"`
	CompanyID              uint      `json:"empresa_id"`
	TenantID               uint      `json:"locatario_id"`
	TenantName             string    `json:"locatario_nome,omitempty"`
	PropertyID             uint      `json:"imovel_id"`
	PropertyAddress        string    `json:"imovel_endereco,omitempty"`
	StartDate              string    `json:"data_inicio"`
	EndDate                string    `json:"data_fim"`
	Status                 string    `json:"status"`
	RentAmount             float64   `json:"valor_aluguel"`
	AdminFee               float64   `json:"taxa_administracao"`
	Bonus                  float64   `json:"bonificacao"`
	AdjustmentIndex        string    `json:"indice_reajuste"`
	AdjustmentPercent      float64   `json:"percentual_reajuste"`
	DueDay                 int       `json:"dia_vencimento"`
	AutoRenewal            bool      `json:"renovacao_automatica"`
	FireInsurance          bool      `json:"seguro_incendio"`
	RentGuaranteeInsurance bool      `json:"seguro_fianca"`
	Clauses                string    `json:"clausulas"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// ContractListResponse represents a paginated list of contracts
type ContractListResponse struct {
	Data     []ContractResponse `json:"data"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// Create creates a new contract in the caller's company
func (s *ContractService) Create(sc scope.Scope, req *CreateContractRequest) (*ContractResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	if !sc.Valid() {
		return nil, apperrors.ErrScopeMissing
	}
	start, err := parseDate("data_inicio", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("data_fim", req.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, apperrors.ErrInvalidDateRange
	}

	contract := &models.Contract{
		CompanyScoped:          models.CompanyScoped{CompanyID: sc.CompanyID()},
		TenantID:               req.TenantID,
		PropertyID:             req.PropertyID,
		StartDate:              start,
		EndDate:                end,
		RentAmount:             req.RentAmount,
		AdminFee:               req.AdminFee,
		Bonus:                  req.Bonus,
		AdjustmentIndex:        models.AdjustmentIndex(req.AdjustmentIndex),
		AdjustmentPercent:      req.AdjustmentPercent,
		DueDay:                 req.DueDay,
		AutoRenewal:            req.AutoRenewal,
		FireInsurance:          req.FireInsurance,
		RentGuaranteeInsurance: req.RentGuaranteeInsurance,
		Clauses:                req.Clauses,
	}

	if err := s.repo.Create(contract); err != nil {
		return nil, fmt.Errorf("failed to create contract: %w", err)
	}

	return s.toResponse(contract), nil
}

// GetByID retrieves a contract visible to the caller
func (s *ContractService) GetByID(sc scope.Scope, id uint) (*ContractResponse, error) {
	contract, err := s.repo.GetByID(id, sc)
	if err != nil {
		return nil, notFound(err, apperrors.ErrContractNotFound, "get contract")
	}
	return s.toResponse(contract), nil
}

// List retrieves contracts visible to the caller with filters and pagination
func (s *ContractService) List(sc scope.Scope, req *ContractListRequest) (*ContractListResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	page, pageSize := normalizePage(req.Page, req.PageSize)

	from, err := parseOptionalDate("data_inicio_de", &req.StartFrom)
	if err != nil {
		return nil, err
	}
	to, err := parseOptionalDate("data_inicio_ate", &req.StartTo)
	if err != nil {
		return nil, err
	}

	filter := repository.ContractFilter{
		TenantID:        req.TenantID,
		PropertyID:      req.PropertyID,
		TenantName:      req.TenantName,
		PropertyAddress: req.PropertyAddress,
		Status:          models.ContractStatus(req.Status),
		StartFrom:       from,
		StartTo:         to,
		Now:             s.now(),
	}
	contracts, total, err := s.repo.List(filter, sc, pageSize, offsetOf(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	responses := make([]ContractResponse, len(contracts))
	for i := range contracts {
		responses[i] = *s.toResponse(&contracts[i])
	}

	return &ContractListResponse{
		Data:     responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update applies a partial update to a contract visible to the caller
func (s *ContractService) Update(sc scope.Scope, id uint, req *UpdateContractRequest) (*ContractResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	start, err := parseOptionalDate("data_inicio", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalDate("data_fim", req.EndDate)
	if err != nil {
		return nil, err
	}
	setIf(updates, "data_inicio", start)
	setIf(updates, "data_fim", end)
	setIf(updates, "locatario_id", req.TenantID)
	setIf(updates, "imovel_id", req.PropertyID)
	setIf(updates, "valor_aluguel", req.RentAmount)
	setIf(updates, "taxa_administracao", req.AdminFee)
	setIf(updates, "bonificacao", req.Bonus)
	setIf(updates, "indice_reajuste", req.AdjustmentIndex)
	setIf(updates, "percentual_reajuste", req.AdjustmentPercent)
	setIf(updates, "dia_vencimento", req.DueDay)
	setIf(updates, "renovacao_automatica", req.AutoRenewal)
	setIf(updates, "seguro_incendio", req.FireInsurance)
	setIf(updates, "seguro_fianca", req.RentGuaranteeInsurance)
	setIf(updates, "clausulas", req.Clauses)
	if err := requireUpdates(updates); err != nil {
		return nil, err
	}

	contract, err := s.repo.Update(id, sc, updates)
	if err != nil {
		return nil, notFound(err, apperrors.ErrContractNotFound, "update contract")
	}
	return s.toResponse(contract), nil
}

// toResponse converts a contract model to response
func (s *ContractService) toResponse(contract *models.Contract) *ContractResponse {
	response := &ContractResponse{
		ID:                     contract.ID,
		CompanyID:              contract.CompanyID,
		TenantID:               contract.TenantID,
		PropertyID:             contract.PropertyID,
		StartDate:              formatDate(contract.StartDate),
		EndDate:                formatDate(contract.EndDate),
		Status:                 string(contract.Status(s.now())),
		RentAmount:             contract.RentAmount,
		AdminFee:               contract.AdminFee,
		Bonus:                  contract.Bonus,
		AdjustmentIndex:        string(contract.AdjustmentIndex),
		AdjustmentPercent:      contract.AdjustmentPercent,
		DueDay:                 contract.DueDay,
		AutoRenewal:            contract.AutoRenewal,
		FireInsurance:          contract.FireInsurance,
		RentGuaranteeInsurance: contract.RentGuaranteeInsurance,
		Clauses:                contract.Clauses,
		CreatedAt:              contract.CreatedAt,
		UpdatedAt:              contract.UpdatedAt,
	}
	if contract.Tenant != nil {
		response.TenantName = contract.Tenant.Name
	}
	if contract.Property != nil {
		response.PropertyAddress = contract.Property.Address
	}
	return response
}
