package repository

import (
	"imobiliaria-backend/internal/database/models"
	"imobiliaria-backend/internal/scope"

	"gorm.io/gorm"
)

var tenantCols = struct {
	tableColumns
	Name, TaxID, Email, Phone, City Column
}{
	tableColumns: columnsOf("locatarios"),
	Name:         Column{Table: "locatarios", Name: "nome"},
	TaxID:        Column{Table: "locatarios", Name: "cpf_cnpj"},
	Email:        Column{Table: "locatarios", Name: "email"},
	Phone:        Column{Table: "locatarios", Name: "telefone"},
	City:         Column{Table: "locatarios", Name: "cidade"},
}

// TenantFilter holds the optional list criteria for tenants
type TenantFilter struct {
	Name  string
	TaxID string
	City  string
}

// TenantRepository handles database operations for tenants
type TenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// Create creates a new tenant
func (r *TenantRepository) Create(tenant *models.Tenant) error {
	return translateError(r.db.Create(tenant).Error)
}

// GetByID retrieves a tenant by ID within the scope
func (r *TenantRepository) GetByID(id uint, s scope.Scope) (*models.Tenant, error) {
	return firstScoped[models.Tenant](r.db, tenantCols.tableColumns, id, s)
}

// List retrieves tenants matching the filter with pagination
func (r *TenantRepository) List(filter TenantFilter, s scope.Scope, limit, offset int) ([]models.Tenant, int64, error) {
	if err := requireScope(s); err != nil {
		return nil, 0, err
	}
	where := NewFilter().
		Scoped(s, tenantCols.Company).
		Contains(filter.Name, tenantCols.Name).
		EqIf(filter.TaxID != "", tenantCols.TaxID, OnlyDigits(filter.TaxID)).
		Contains(filter.City, tenantCols.City)

	var total int64
	if err := where.Apply(r.db.Model(&models.Tenant{})).Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	var tenants []models.Tenant
	err := paginate(where.Apply(r.db), limit, offset).
		Order(orderBy(tenantCols.Name, tenantCols.ID)).
		Find(&tenants).Error
	if err != nil {
		return nil, 0, translateError(err)
	}

	return tenants, total, nil
}

// Search retrieves tenants matching the term on id, tax id, name or contact fields
func (r *TenantRepository) Search(term string, s scope.Scope, limit int) ([]models.Tenant, error) {
	if err := requireScope(s); err != nil {
		return nil, err
	}
	m := searchMatch{
		name:      NewFilter().Contains(term, tenantCols.Name),
		secondary: NewFilter().Contains(term, tenantCols.Email, tenantCols.Phone, tenantCols.City),
	}
	if id, ok := parseID(term); ok {
		m.exact = append(m.exact, NewFilter().Eq(tenantCols.ID, id))
	}
	if digits := OnlyDigits(term); digits != "" {
		m.exact = append(m.exact, NewFilter().Eq(tenantCols.TaxID, digits))
	}

	var tenants []models.Tenant
	err := paginate(m.where(s, tenantCols.Company).Apply(r.db), limit, 0).
		Order(m.order(tenantCols.Name, tenantCols.ID)).
		Find(&tenants).Error
	if err != nil {
		return nil, translateError(err)
	}
	return tenants, nil
}

// Update applies the given column updates to a tenant within the scope
func (r *TenantRepository) Update(id uint, s scope.Scope, updates map[string]interface{}) (*models.Tenant, error) {
	return updateScoped[models.Tenant](r.db, tenantCols.tableColumns, id, s, updates, nil, nil)
}
