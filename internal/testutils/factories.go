package testutils

import (
	"time"

	"imobiliaria-backend/internal/database/models"
)

// CompanyFactory provides methods to create test Company data
type CompanyFactory struct{}

// NewCompanyFactory creates a new CompanyFactory
func NewCompanyFactory() *CompanyFactory {
	return &CompanyFactory{}
}

// Create creates a test Company with default values
func (f *CompanyFactory) Create() *models.Company {
	return &models.Company{
		Name:  "Imobiliária Teste",
		TaxID: "",
	}
}

// WithName sets a custom name for the company
func (f *CompanyFactory) WithName(name string) *models.Company {
	company := f.Create()
	company.Name = name
	return company
}

// LandlordFactory provides methods to create test Landlord data
type LandlordFactory struct{}

// NewLandlordFactory creates a new LandlordFactory
func NewLandlordFactory() *LandlordFactory {
	return &LandlordFactory{}
}

// Create creates a test Landlord with default values
func (f *LandlordFactory) Create() *models.Landlord {
	return &models.Landlord{
		CompanyScoped: models.CompanyScoped{CompanyID: 1},
		Name:          "Maria Souza",
		TaxID:         "12345678909",
		PersonType:    models.PersonTypeFisica,
		Email:         "maria.souza@example.com",
		Phone:         "(11) 98765-4321",
		Address:       "Rua das Flores, 100",
		City:          "São Paulo",
		State:         "SP",
		PayoutMethod:  models.PayoutMethodPix,
		PixKey:        "maria.souza@example.com",
	}
}

// WithCompany creates a landlord owned by the given company
func (f *LandlordFactory) WithCompany(companyID uint, name string) *models.Landlord {
	landlord := f.Create()
	landlord.CompanyID = companyID
	landlord.Name = name
	return landlord
}

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates a test Tenant with default values
func (f *TenantFactory) Create() *models.Tenant {
	return &models.Tenant{
		CompanyScoped: models.CompanyScoped{CompanyID: 1},
		Name:          "João Pereira",
		TaxID:         "98765432100",
		PersonType:    models.PersonTypeFisica,
		IDNumber:      "12.345.678-9",
		Email:         "joao.pereira@example.com",
		Phone:         "(11) 91234-5678",
		City:          "Campinas",
		State:         "SP",
		Occupation:    "Engenheiro",
		MonthlyIncome: 8500,
	}
}

// WithCompany creates a tenant owned by the given company
func (f *TenantFactory) WithCompany(companyID uint, name string) *models.Tenant {
	tenant := f.Create()
	tenant.CompanyID = companyID
	tenant.Name = name
	return tenant
}

// PropertyFactory provides methods to create test Property data
type PropertyFactory struct{}

// NewPropertyFactory creates a new PropertyFactory
func NewPropertyFactory() *PropertyFactory {
	return &PropertyFactory{}
}

// Create creates a test Property with default values
func (f *PropertyFactory) Create() *models.Property {
	return &models.Property{
		CompanyScoped: models.CompanyScoped{CompanyID: 1},
		Type:          models.PropertyTypeApartamento,
		Address:       "Avenida Paulista",
		Number:        "1000",
		Complement:    "Apto 52",
		District:      "Bela Vista",
		City:          "São Paulo",
		State:         "SP",
		ZipCode:       "01310100",
		AreaM2:        68.5,
		Bedrooms:      2,
		Bathrooms:     1,
		ParkingSpots:  1,
		SuggestedRent: 3200,
		RegistryCode:  "MAT-4471",
	}
}

// WithCompany creates a property owned by the given company
func (f *PropertyFactory) WithCompany(companyID uint, address string) *models.Property {
	property := f.Create()
	property.CompanyID = companyID
	property.Address = address
	return property
}

// ContractFactory provides methods to create test Contract data
type ContractFactory struct{}

// NewContractFactory creates a new ContractFactory
func NewContractFactory() *ContractFactory {
	return &ContractFactory{}
}

// Create creates a test Contract with default values. Tenant and property ids
// must be set by the caller.
func (f *ContractFactory) Create() *models.Contract {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return &models.Contract{
		CompanyScoped:     models.CompanyScoped{CompanyID: 1},
		StartDate:         start,
		EndDate:           start.AddDate(2, 0, 0),
		RentAmount:        1500,
		AdminFee:          10,
		Bonus:             100,
		AdjustmentIndex:   models.AdjustmentIndexIGPM,
		AdjustmentPercent: 4.5,
		DueDay:            10,
		AutoRenewal:       true,
	}
}

// For creates a contract binding the given tenant and property in their company
func (f *ContractFactory) For(tenant *models.Tenant, property *models.Property) *models.Contract {
	contract := f.Create()
	contract.CompanyID = tenant.CompanyID
	contract.TenantID = tenant.ID
	contract.PropertyID = property.ID
	return contract
}

// SettlementFactory provides methods to create test Settlement data
type SettlementFactory struct{}

// NewSettlementFactory creates a new SettlementFactory
func NewSettlementFactory() *SettlementFactory {
	return &SettlementFactory{}
}

// Create creates a test Settlement for the given contract and reference month
func (f *SettlementFactory) Create(contractID uint, referenceMonth string) *models.Settlement {
	return &models.Settlement{
		ContractID:          contractID,
		ReferenceMonth:      referenceMonth,
		AmountReceived:      1500,
		AmountPassedThrough: 1350,
		Fees:                150,
	}
}
