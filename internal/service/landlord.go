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

// LandlordService handles business logic for landlords
type LandlordService struct {
	repo      repository.LandlordRepositoryInterface
	validator *validator.Validate
}

// NewLandlordService creates a new landlord service
func NewLandlordService(repo repository.LandlordRepositoryInterface, validator *validator.Validate) *LandlordService {
	return &LandlordService{
		repo:      repo,
		validator: validator,
	}
}

// CreateLandlordRequest represents the request to create a landlord
type CreateLandlordRequest struct {
	Name                   string `json:"nome" validate:"required,max=150"`
	TaxID                  string `json:"cpf_cnpj" validate:"omitempty,max=18"`
	PersonType             string `json:"tipo_pessoa" validate:"omitempty,oneof=fisica juridica"`
	Email                  string `json:"email" validate:"omitempty,email,max=150"`
	Phone                  string `json:"telefone" validate:"omitempty,max=30"`
	Address                string `json:"endereco" validate:"omitempty,max=255"`
	City                   string `json:"cidade" validate:"omitempty,max=100"`
	State                  string `json:"estado" validate:"omitempty,len=2"`
	PayoutMethod           string `json:"forma_repasse" validate:"omitempty,oneof=pix boleto transferencia deposito"`
	Bank                   string `json:"banco" validate:"omitempty,max=100"`
	Branch                 string `json:"agencia" validate:"omitempty,max=20"`
	Account                string `json:"conta" validate:"omitempty,max=30"`
	PixKey                 string `json:"chave_pix" validate:"omitempty,max=150"`
	FireInsurance          bool   `json:"seguro_incendio"`
	RentGuaranteeInsurance bool   `json:"seguro_fianca"`
	Notes                  string `json:"observacoes"`
}

// UpdateLandlordRequest represents a partial update of a landlord; nil fields are left untouched
type UpdateLandlordRequest struct {
	Name                   *string `json:"nome" validate:"omitempty,min=1,max=150"`
	TaxID                  *string `json:"cpf_cnpj" validate:"omitempty,max=18"`
	PersonType             *string `json:"tipo_pessoa" validate:"omitempty,oneof=fisica juridica"`
	Email                  *string `json:"email" validate:"omitempty,email,max=150"`
	Phone                  *string `json:"telefone" validate:"omitempty,max=30"`
	Address                *string `json:"endereco" validate:"omitempty,max=255"`
	City                   *string `json:"cidade" validate:"omitempty,max=100"`
	State                  *string `json:"estado" validate:"omitempty,len=2"`
	PayoutMethod           *string `json:"forma_repasse" validate:"omitempty,oneof=pix boleto transferencia deposito"`
	Bank                   *string `json:"banco" validate:"omitempty,max=100"`
	Branch                 *string `json:"agencia" validate:"omitempty,max=20"`
	Account                *string `json:"conta" validate:"omitempty,max=30"`
	PixKey                 *string `json:"chave_pix" validate:"omitempty,max=150"`
	FireInsurance          *bool   `json:"seguro_incendio"`
	RentGuaranteeInsurance *bool   `json:"seguro_fianca"`
	Notes                  *string `json:"observacoes"`
}

// LandlordListRequest holds list filters and pagination for landlords
type LandlordListRequest struct {
	Name         string `form:"nome"`
	TaxID        string `form:"cpf_cnpj"`
	City         string `form:"cidade"`
	PayoutMethod string `form:"forma_repasse" validate:"omitempty,oneof=pix boleto transferencia deposito"`
	Page         int    `form:"page"`
	PageSize     int    `form:"page_size"`
}

// LandlordResponse represents the response for landlord operations
type LandlordResponse struct {
	ID                     uint      `json:"id"`
	CompanyID              uint      `json:"empresa_id"`
	Name                   string    `json:"nome"`
	TaxID                  string    `json:"cpf_cnpj"`
	PersonType             string    `json:"tipo_pessoa"`
	Email                  string    `json:"email"`
	Phone                  string    `json:"telefone"`
	Address                string    `json:"endereco"`
	City                   string    `json:"cidade"`
	State                  string    `json:"estado"`
	PayoutMethod           string    `json:"forma_repasse"`
	Bank                   string    `json:"banco"`
	Branch                 string    `json:"agencia"`
	Account                string    `json:"conta"`
	PixKey                 string    `json:"chave_pix"`
	FireInsurance          bool      `json:"seguro_incendio"`
	RentGuaranteeInsurance bool      `json:"seguro_fianca"`
	Notes                  string    `json:"observacoes"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// LandlordListResponse represents a paginated list of landlords
type LandlordListResponse struct {
	Data     []LandlordResponse `json:"data"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// Create creates a new landlord in the caller's company
func (s *LandlordService) Create(sc scope.Scope, req *CreateLandlordRequest) (*LandlordResponse, error) {
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

	landlord := &models.Landlord{
		CompanyScoped:          models.CompanyScoped{CompanyID: sc.CompanyID()},
		Name:                   req.Name,
		TaxID:                  taxID,
		PersonType:             models.PersonType(req.PersonType),
		Email:                  req.Email,
		Phone:                  req.Phone,
		Address:                req.Address,
		City:                   req.City,
		State:                  req.State,
		PayoutMethod:           models.PayoutMethod(req.PayoutMethod),
		Bank:                   req.Bank,
		Branch:                 req.Branch,
		Account:                req.Account,
		PixKey:                 req.PixKey,
		FireInsurance:          req.FireInsurance,
		RentGuaranteeInsurance: req.RentGuaranteeInsurance,
		Notes:                  req.Notes,
	}

	if err := s.repo.Create(landlord); err != nil {
		return nil, fmt.Errorf("failed to create landlord: %w", err)
	}

	return s.toResponse(landlord), nil
}

// GetByID retrieves a landlord visible to the caller
func (s *LandlordService) GetByID(sc scope.Scope, id uint) (*LandlordResponse, error) {
	landlord, err := s.repo.GetByID(id, sc)
	if err != nil {
		return nil, notFound(err, apperrors.ErrLandlordNotFound, "get landlord")
	}
	return s.toResponse(landlord), nil
}

// List retrieves landlords visible to the caller with filters and pagination
func (s *LandlordService) List(sc scope.Scope, req *LandlordListRequest) (*LandlordListResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	page, pageSize := normalizePage(req.Page, req.PageSize)

	filter := repository.LandlordFilter{
		Name:         req.Name,
		TaxID:        req.TaxID,
		City:         req.City,
		PayoutMethod: req.PayoutMethod,
	}
	landlords, total, err := s.repo.List(filter, sc, pageSize, offsetOf(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list landlords: %w", err)
	}

	responses := make([]LandlordResponse, len(landlords))
	for i := range landlords {
		responses[i] = *s.toResponse(&landlords[i])
	}

	return &LandlordListResponse{
		Data:     responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update applies a partial update to a landlord visible to the caller
func (s *LandlordService) Update(sc scope.Scope, id uint, req *UpdateLandlordRequest) (*LandlordResponse, error) {
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
	setIf(updates, "email", req.Email)
	setIf(updates, "telefone", req.Phone)
	setIf(updates, "endereco", req.Address)
	setIf(updates, "cidade", req.City)
	setIf(updates, "estado", req.State)
	setIf(updates, "forma_repasse", req.PayoutMethod)
	setIf(updates, "banco", req.Bank)
	setIf(updates, "agencia", req.Branch)
	setIf(updates, "conta", req.Account)
	setIf(updates, "chave_pix", req.PixKey)
	setIf(updates, "seguro_incendio", req.FireInsurance)
	setIf(updates, "seguro_fianca", req.RentGuaranteeInsurance)
	setIf(updates, "observacoes", req.Notes)
	if err := requireUpdates(updates); err != nil {
		return nil, err
	}

	landlord, err := s.repo.Update(id, sc, updates)
	if err != nil {
		return nil, notFound(err, apperrors.ErrLandlordNotFound, "update landlord")
	}
	return s.toResponse(landlord), nil
}

// toResponse converts a landlord model to response
func (s *LandlordService) toResponse(landlord *models.Landlord) *LandlordResponse {
	return &LandlordResponse{
		ID:                     landlord.ID,
		CompanyID:              landlord.CompanyID,
		Name:                   landlord.Name,
		TaxID:                  landlord.TaxID,
		PersonType:             string(landlord.PersonType),
		Email:                  landlord.Email,
		Phone:                  landlord.Phone,
		Address:                landlord.Address,
		City:                   landlord.City,
		State:                  landlord.State,
		PayoutMethod:           string(landlord.PayoutMethod),
		Bank:                   landlord.Bank,
		Branch:                 landlord.Branch,
		Account:                landlord.Account,
		PixKey:                 landlord.PixKey,
		FireInsurance:          landlord.FireInsurance,
		RentGuaranteeInsurance: landlord.RentGuaranteeInsurance,
		Notes:                  landlord.Notes,
		CreatedAt:              landlord.CreatedAt,
		UpdatedAt:              landlord.UpdatedAt,
	}
}
