package repository

import (
	"time"

	"imobiliaria-backend/internal/database/models"
	apperrors "imobiliaria-backend/internal/errors"
	"imobiliaria-backend/internal/scope"

	"gorm.io/gorm"
)

var contractCols = struct {
	tableColumns
	Tenant, Property, StartDate, EndDate Column
}{
	tableColumns: columnsOf("contratos"),
	Tenant:       Column{Table: "contratos", Name: "locatario_id"},
	Property:     Column{Table: "contratos", Name: "imovel_id"},
	StartDate:    Column{Table: "contratos", Name: "data_inicio"},
	EndDate:      Column{Table: "contratos", Name: "data_fim"},
}

// ContractFilter holds the optional list criteria for contracts.
// Now anchors the status filter; the zero value means the current time.
type ContractFilter struct {
	TenantID        *uint
	PropertyID      *uint
	TenantName      string
	PropertyAddress string
	Status          models.ContractStatus
	StartFrom       *time.Time
	StartTo         *time.Time
	Now             time.Time
}

// ContractRepository handles database operations for contracts
type ContractRepository struct {
	db *gorm.DB
}

// NewContractRepository creates a new contract repository
func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

// joined returns a query over contracts joined with their tenant and property
func (r *ContractRepository) joined() *gorm.DB {
	return r.db.Model(&models.Contract{}).
		Joins("JOIN locatarios ON locatarios.id = contratos.locatario_id").
		Joins("JOIN imoveis ON imoveis.id = contratos.imovel_id")
}

func (r *ContractRepository) withParties(db *gorm.DB) *gorm.DB {
	return db.Preload("Tenant").Preload("Property")
}

// Create creates a new contract. Tenant and property must belong to the contract's company.
func (r *ContractRepository) Create(contract *models.Contract) error {
	return translateError(r.db.Transaction(func(tx *gorm.DB) error {
		if err := checkContractParties(tx, contract.TenantID, contract.PropertyID, contract.CompanyID); err != nil {
			return err
		}
		return tx.Create(contract).Error
	}))
}

// GetByID retrieves a contract with its tenant and property within the scope
func (r *ContractRepository) GetByID(id uint, s scope.Scope) (*models.Contract, error) {
	return firstScoped[models.Contract](r.withParties(r.db), contractCols.tableColumns, id, s)
}

// List retrieves contracts matching the filter with pagination
func (r *ContractRepository) List(filter ContractFilter, s scope.Scope, limit, offset int) ([]models.Contract, int64, error) {
	if err := requireScope(s); err != nil {
		return nil, 0, err
	}
	where := NewFilter().
		Scoped(s, contractCols.Company).
		Contains(filter.TenantName, tenantCols.Name).
		Contains(filter.PropertyAddress, propertyCols.Address).
		From(contractCols.StartDate, filter.StartFrom).
		Until(contractCols.StartDate, filter.StartTo)
	if filter.TenantID != nil {
		where.Eq(contractCols.Tenant, *filter.TenantID)
	}
	if filter.PropertyID != nil {
		where.Eq(contractCols.Property, *filter.PropertyID)
	}
	if filter.Status != "" {
		now := filter.Now
		if now.IsZero() {
			now = time.Now()
		}
		statusFilter(where, filter.Status, now)
	}

	var total int64
	if err := where.Apply(r.joined()).Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	var contracts []models.Contract
	err := paginate(where.Apply(r.withParties(r.joined().Select("contratos.*"))), limit, offset).
		Order(orderBy(tenantCols.Name, contractCols.ID)).
		Find(&contracts).Error
	if err != nil {
		return nil, 0, translateError(err)
	}

	return contracts, total, nil
}

// statusFilter restricts contracts by status derived from the end date
func statusFilter(f *Filter, status models.ContractStatus, now time.Time) {
	switch status {
	case models.ContractStatusActive:
		f.From(contractCols.EndDate, &now)
	case models.ContractStatusExpiring:
		cutoff := models.ExpiringCutoff(now)
		f.From(contractCols.EndDate, &now).Until(contractCols.EndDate, &cutoff)
	case models.ContractStatusEnded:
		f.Before(contractCols.EndDate, now)
	default:
		f.Or()
	}
}

// Search retrieves contracts matching the term on id, tenant tax id, tenant name or property address
func (r *ContractRepository) Search(term string, s scope.Scope, limit int) ([]models.Contract, error) {
	if err := requireScope(s); err != nil {
		return nil, err
	}
	m := searchMatch{
		name:      NewFilter().Contains(term, tenantCols.Name),
		secondary: NewFilter().Contains(term, propertyCols.Address),
	}
	if id, ok := parseID(term); ok {
		m.exact = append(m.exact, NewFilter().Eq(contractCols.ID, id))
	}
	if digits := OnlyDigits(term); digits != "" {
		m.exact = append(m.exact, NewFilter().Eq(tenantCols.TaxID, digits))
	}

	var contracts []models.Contract
	query := m.where(s, contractCols.Company).Apply(r.withParties(r.joined().Select("contratos.*")))
	err := paginate(query, limit, 0).
		Order(m.order(tenantCols.Name, contractCols.ID)).
		Find(&contracts).Error
	if err != nil {
		return nil, translateError(err)
	}
	return contracts, nil
}

// Update applies the given column updates to a contract within the scope. Changes to
// the tenant or property are checked against the contract's company and the
// resulting period must still be ordered.
func (r *ContractRepository) Update(id uint, s scope.Scope, updates map[string]interface{}) (*models.Contract, error) {
	check := func(tx *gorm.DB, current *models.Contract) error {
		tenantID, property := current.TenantID, current.PropertyID
		if v, ok := uintValue(updates["locatario_id"]); ok {
			tenantID = v
		}
		if v, ok := uintValue(updates["imovel_id"]); ok {
			property = v
		}
		if tenantID != current.TenantID || property != current.PropertyID {
			if err := checkContractParties(tx, tenantID, property, current.CompanyID); err != nil {
				return err
			}
		}

		start, end := current.StartDate, current.EndDate
		if v, ok := updates["data_inicio"].(time.Time); ok {
			start = v
		}
		if v, ok := updates["data_fim"].(time.Time); ok {
			end = v
		}
		if end.Before(start) {
			return apperrors.ErrInvalidDateRange
		}
		return nil
	}
	return updateScoped[models.Contract](r.db, contractCols.tableColumns, id, s, updates, check, r.withParties)
}

func checkContractParties(tx *gorm.DB, tenantID, propertyID, companyID uint) error {
	ok, err := belongsTo(tx, &models.Tenant{}, tenantCols.tableColumns, tenantID, companyID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrContractTenantScope
	}
	ok, err = belongsTo(tx, &models.Property{}, propertyCols.tableColumns, propertyID, companyID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrContractPropertyScope
	}
	return nil
}
