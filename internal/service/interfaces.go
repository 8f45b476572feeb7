package service

import (
	"context"

	"imobiliaria-backend/internal/scope"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// LandlordServiceInterface defines the interface for landlord service
type LandlordServiceInterface interface {
	Create(sc scope.Scope, req *CreateLandlordRequest) (*LandlordResponse, error)
	GetByID(sc scope.Scope, id uint) (*LandlordResponse, error)
	List(sc scope.Scope, req *LandlordListRequest) (*LandlordListResponse, error)
	Update(sc scope.Scope, id uint, req *UpdateLandlordRequest) (*LandlordResponse, error)
}

// TenantServiceInterface defines the interface for tenant service
type TenantServiceInterface interface {
	Create(sc scope.Scope, req *CreateTenantRequest) (*TenantResponse, error)
	GetByID(sc scope.Scope, id uint) (*TenantResponse, error)
	List(sc scope.Scope, req *TenantListRequest) (*TenantListResponse, error)
	Update(sc scope.Scope, id uint, req *UpdateTenantRequest) (*TenantResponse, error)
}

// PropertyServiceInterface defines the interface for property service
type PropertyServiceInterface interface {
	Create(sc scope.Scope, req *CreatePropertyRequest) (*PropertyResponse, error)
	GetByID(sc scope.Scope, id uint) (*PropertyResponse, error)
	List(sc scope.Scope, req *PropertyListRequest) (*PropertyListResponse, error)
	Update(sc scope.Scope, id uint, req *UpdatePropertyRequest) (*PropertyResponse, error)
}

// ContractServiceInterface defines the interface for contract service
type ContractServiceInterface interface {
	Create(sc scope.Scope, req *CreateContractRequest) (*ContractResponse, error)
	GetByID(sc scope.Scope, id uint) (*ContractResponse, error)
	List(sc scope.Scope, req *ContractListRequest) (*ContractListResponse, error)
	Update(sc scope.Scope, id uint, req *UpdateContractRequest) (*ContractResponse, error)
}

// SearchServiceInterface defines the interface for the unified search
type SearchServiceInterface interface {
	Search(ctx context.Context, sc scope.Scope, term string) ([]SearchResult, error)
}

// SettlementServiceInterface defines the interface for settlement service
type SettlementServiceInterface interface {
	Record(ctx context.Context, sc scope.Scope, req *RecordSettlementRequest) (*SettlementResponse, error)
	GetByID(sc scope.Scope, id uint) (*SettlementResponse, error)
	ListByContract(sc scope.Scope, contractID uint, page, pageSize int) (*SettlementListResponse, error)
}

// Compile-time checks
var (
	_ LandlordServiceInterface   = (*LandlordService)(nil)
	_ TenantServiceInterface     = (*TenantService)(nil)
	_ PropertyServiceInterface   = (*PropertyService)(nil)
	_ ContractServiceInterface   = (*ContractService)(nil)
	_ SearchServiceInterface     = (*SearchService)(nil)
	_ SettlementServiceInterface = (*SettlementService)(nil)
)
