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

// PropertyService handles business logic for properties
type PropertyService struct {
	repo      repository.PropertyRepositoryInterface
	validator *validator.Validate
}

// NewPropertyService creates a new property service
func NewPropertyService(repo repository.PropertyRepositoryInterface, validator *validator.Validate) *PropertyService {
	return &PropertyService{
		repo:      repo,
		validator: validator,
	}
}

// CreatePropertyRequest represents the request to create a property
type CreatePropertyRequest struct {
	LandlordID    *uint   `json:"locador_id" validate:"omitempty,gt=0"`
	Type          string  `json:"tipo" validate:"omitempty,oneof=casa apartamento comercial terreno outro"`
	Address       string  `json:"endereco" validate:"required,max=255"`
	Number        string  `json:"numero" validate:"omitempty,max=20"`
	Complement    string  `json:"complemento" validate:"omitempty,max=100"`
	District      string  `json:"bairro" validate:"omitempty,max=100"`
	City          string  `json:"cidade" validate:"omitempty,max=100"`
	State         string  `json:"estado" validate:"omitempty,len=2"`
	ZipCode       string  `json:"cep" validate:"omitempty,max=9"`
	AreaM2        float64 `json:"area_m2" validate:"gte=0"`
	Bedrooms      int     `json:"quartos" validate:"gte=0"`
	Bathrooms     int     `json:"banheiros" validate:"gte=0"`
	ParkingSpots  int     `json:"vagas" validate:"gte=0"`
	SuggestedRent float64 `json:"valor_aluguel_sugerido" validate:"gte=0"`
	RegistryCode  string  `json:"matricula" validate:"omitempty,max=50"`
	Description   string  `json:"descricao"`
}

// UpdatePropertyRequest represents a partial update of a property; nil fields are left untouched
type UpdatePropertyRequest struct {
	LandlordID    *uint    `json:"locador_id" validate:"omitempty,gt=0"`
	Type          *string  `json:"tipo" validate:"omitempty,oneof=casa apartamento comercial terreno outro"`
	Address       *string  `json:"endereco" validate:"omitempty,min=1,max=255"`
	Number        *string  `json:"numero" validate:"omitempty,max=20"`
	Complement    *string  `json:"complemento" validate:"omitempty,max=100"`
	District      *string  `json:"bairro" validate:"omitempty,max=100"`
	City          *string  `json:"cidade" validate:"omitempty,max=100"`
	State         *string  `json:"estado" validate:"omitempty,len=2"`
	ZipCode       *string  `json:"cep" validate:"omitempty,max=9"`
	AreaM2        *float64 `json:"area_m2" validate:"omitempty,gte=0"`
	Bedrooms      *int     `json:"quartos" validate:"omitempty,gte=0"`
	Bathrooms     *int     `json:"banheiros" validate:"omitempty,gte=0"`
	ParkingSpots  *int     `json:"vagas" validate:"omitempty,gte=0"`
	SuggestedRent *float64 `json:"valor_aluguel_sugerido" validate:"omitempty,gte=0"`
	RegistryCode  *string  `json:"matricula" validate:"omitempty,max=50"`
	Description   *string  `json:"descricao"`
}

// PropertyListRequest holds list filters and pagination for properties
type PropertyListRequest struct {
	Address    string `form:"endereco"`
	City       string `form:"cidade"`
	District   string `form:"bairro"`
	Type       string `form:"tipo" validate:"omitempty,oneof=casa apartamento comercial terreno outro"`
	LandlordID *uint  `form:"locador_id"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
}

// LandlordSummary is the landlord reference embedded in property responses
type LandlordSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"nome"`
}

// PropertyResponse represents the response for property operations
type PropertyResponse struct {
	ID            uint             `json:"id"`
	CompanyID     uint             `json:"empresa_id"`
	LandlordID    *uint            `json:"locador_id"`
	Landlord      *LandlordSummary `json:"locador,omitempty"`
	Type          string           `json:"tipo"`
	Address       string           `json:"endereco"`
	Number        string           `json:"numero"`
	Complement    string           `json:"complemento"`
	District      string           `json:"bairro"`
	City          string           `json:"cidade"`
	State         string           `json:"estado"`
	ZipCode       string           `json:"cep"`
	AreaM2        float64          `json:"area_m2"`
	Bedrooms      int              `json:"quartos"`
	Bathrooms     int              `json:"banheiros"`
	ParkingSpots  int              `json:"vagas"`
	SuggestedRent float64          `json:"valor_aluguel_sugerido"`
	RegistryCode  string           `json:"matricula"`
	Description   string           `json:"descricao"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// PropertyListResponse represents a paginated list of properties
type PropertyListResponse struct {
	Data     []PropertyResponse `json:"data"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// Create creates a new property in the caller's company
func (s *PropertyService) Create(sc scope.Scope, req *CreatePropertyRequest) (*PropertyResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	if !sc.Valid() {
		return nil, apperrors.ErrScopeMissing
	}
	zipCode, err := normalizeZipCode(req.ZipCode)
	if err != nil {
		return nil, err
	}

	property := &models.Property{
		CompanyScoped: models.CompanyScoped{CompanyID: sc.CompanyID()},
		LandlordID:    req.LandlordID,
		Type:          models.PropertyType(req.Type),
		Address:       req.Address,
		Number:        req.Number,
		Complement:    req.Complement,
		District:      req.District,
		City:          req.City,
		State:         req.State,
		ZipCode:       zipCode,
		AreaM2:        req.AreaM2,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		ParkingSpots:  req.ParkingSpots,
		SuggestedRent: req.SuggestedRent,
		RegistryCode:  req.RegistryCode,
		Description:   req.Description,
	}

	if err := s.repo.Create(property); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	return s.toResponse(property), nil
}

// GetByID retrieves a property visible to the caller
func (s *PropertyService) GetByID(sc scope.Scope, id uint) (*PropertyResponse, error) {
	property, err := s.repo.GetByID(id, sc)
	if err != nil {
		return nil, notFound(err, apperrors.ErrPropertyNotFound, "get property")
	}
	return s.toResponse(property), nil
}

// List retrieves properties visible to the caller with filters and pagination
func (s *PropertyService) List(sc scope.Scope, req *PropertyListRequest) (*PropertyListResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	page, pageSize := normalizePage(req.Page, req.PageSize)

	filter := repository.PropertyFilter{
		Address:    req.Address,
		City:       req.City,
		District:   req.District,
		Type:       req.Type,
		LandlordID: req.LandlordID,
	}
	properties, total, err := s.repo.List(filter, sc, pageSize, offsetOf(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	responses := make([]PropertyResponse, len(properties))
	for i := range properties {
		responses[i] = *s.toResponse(&properties[i])
	}

	return &PropertyListResponse{
		Data:     responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update applies a partial update to a property visible to the caller
func (s *PropertyService) Update(sc scope.Scope, id uint, req *UpdatePropertyRequest) (*PropertyResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.ZipCode != nil {
		zipCode, err := normalizeZipCode(*req.ZipCode)
		if err != nil {
			return nil, err
		}
		updates["cep"] = zipCode
	}
	setIf(updates, "locador_id", req.LandlordID)
	setIf(updates, "tipo", req.Type)
	setIf(updates, "endereco", req.Address)
	setIf(updates, "numero", req.Number)
	setIf(updates, "complemento", req.Complement)
	setIf(updates, "bairro", req.District)
	setIf(updates, "cidade", req.City)
	setIf(updates, "estado", req.State)
	setIf(updates, "area_m2", req.AreaM2)
	setIf(updates, "quartos", req.Bedrooms)
	setIf(updates, "banheiros", req.Bathrooms)
	setIf(updates, "vagas", req.ParkingSpots)
	setIf(updates, "valor_aluguel_sugerido", req.SuggestedRent)
	setIf(updates, "matricula", req.RegistryCode)
	setIf(updates, "descricao", req.Description)
	if err := requireUpdates(updates); err != nil {
		return nil, err
	}

	property, err := s.repo.Update(id, sc, updates)
	if err != nil {
		return nil, notFound(err, apperrors.ErrPropertyNotFound, "update property")
	}
	return s.toResponse(property), nil
}

// toResponse converts a property model to response
func (s *PropertyService) toResponse(property *models.Property) *PropertyResponse {
	response := &PropertyResponse{
		ID:            property.ID,
		CompanyID:     property.CompanyID,
		LandlordID:    property.LandlordID,
		Type:          string(property.Type),
		Address:       property.Address,
		Number:        property.Number,
		Complement:    property.Complement,
		District:      property.District,
		City:          property.City,
		State:         property.State,
		ZipCode:       property.ZipCode,
		AreaM2:        property.AreaM2,
		Bedrooms:      property.Bedrooms,
		Bathrooms:     property.Bathrooms,
		ParkingSpots:  property.ParkingSpots,
		SuggestedRent: property.SuggestedRent,
		RegistryCode:  property.RegistryCode,
		Description:   property.Description,
		CreatedAt:     property.CreatedAt,
		UpdatedAt:     property.UpdatedAt,
	}
	if property.Landlord != nil {
		response.Landlord = &LandlordSummary{ID: property.Landlord.ID, Name: property.Landlord.Name}
	}
	return response
}
