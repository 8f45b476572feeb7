package repository

import (
	"imobiliaria-backend/internal/database/models"
	"imobiliaria-backend/internal/scope"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// LandlordRepositoryInterface defines the interface for landlord repository operations
type LandlordRepositoryInterface interface {
	Create(landlord *models.Landlord) error
	GetByID(id uint, s scope.Scope) (*models.Landlord, error)
	List(filter LandlordFilter, s scope.Scope, limit, offset int) ([]models.Landlord, int64, error)
	Search(term string, s scope.Scope, limit int) ([]models.Landlord, error)
	Update(id uint, s scope.Scope, updates map[string]interface{}) (*models.Landlord, error)
}

// TenantRepositoryInterface defines the interface for tenant repository operations
type TenantRepositoryInterface interface {
	Create(tenant *models.Tenant) error
	GetByID(id uint, s scope.Scope) (*models.Tenant, error)
	List(filter TenantFilter, s scope.Scope, limit, offset int) ([]models.Tenant, int64, error)
	Search(term string, s scope.Scope, limit int) ([]models.Tenant, error)
	Update(id uint, s scope.Scope, updates map[string]interface{}) (*models.Tenant, error)
}

// PropertyRepositoryInterface defines the interface for property repository operations
type PropertyRepositoryInterface interface {
	Create(property *models.Property) error
	GetByID(id uint, s scope.Scope) (*models.Property, error)
	List(filter PropertyFilter, s scope.Scope, limit, offset int) ([]models.Property, int64, error)
	Search(term string, s scope.Scope, limit int) ([]models.Property, error)
	Update(id uint, s scope.Scope, updates map[string]interface{}) (*models.Property, error)
}

// ContractRepositoryInterface defines the interface for contract repository operations
type ContractRepositoryInterface interface {
	Create(contract *models.Contract) error
	GetByID(id uint, s scope.Scope) (*models.Contract, error)
	List(filter ContractFilter, s scope.Scope, limit, offset int) ([]models.Contract, int64, error)
	Search(term string, s scope.Scope, limit int) ([]models.Contract, error)
	Update(id uint, s scope.Scope, updates map[string]interface{}) (*models.Contract, error)
}

// SettlementRepositoryInterface defines the interface for settlement repository operations
type SettlementRepositoryInterface interface {
	Record(settlement *models.Settlement, s scope.Scope) error
	GetByID(id uint, s scope.Scope) (*models.Settlement, error)
	ListByContract(contractID uint, s scope.Scope, limit, offset int) ([]models.Settlement, int64, error)
}

// Compile-time checks
var (
	_ LandlordRepositoryInterface   = (*LandlordRepository)(nil)
	_ TenantRepositoryInterface     = (*TenantRepository)(nil)
	_ PropertyRepositoryInterface   = (*PropertyRepository)(nil)
	_ ContractRepositoryInterface   = (*ContractRepository)(nil)
	_ SettlementRepositoryInterface = (*SettlementRepository)(nil)
)
