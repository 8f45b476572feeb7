package repository

import (
	"imobiliaria-backend/internal/database/models"
	"imobiliaria-backend/internal/scope"

	"gorm.io/gorm"
)

var landlordCols = struct {
	tableColumns
	Name, TaxID, Email, Phone, City, PayoutMethod Column
}{
	tableColumns: columnsOf("locadores"),
	Name:         Column{Table: "locadores", Name: "nome"},
	TaxID:        Column{Table: "locadores", Name: "cpf_cnpj"},
	Email:        Column{Table: "locadores", Name: "email"},
	Phone:        Column{Table: "locadores", Name: "telefone"},
	City:         Column{Table: "locadores", Name: "cidade"},
	PayoutMethod: Column{Table: "locadores", Name: "forma_repasse"},
}

// LandlordFilter holds the optional list criteria for landlords
type LandlordFilter struct {
	Name         string
	TaxID        string
	City         string
	PayoutMethod string
}

// LandlordRepository handles database operations for landlords
type LandlordRepository struct {
	db *gorm.DB
}

// NewLandlordRepository creates a new landlord repository
func NewLandlordRepository(db *gorm.DB) *LandlordRepository {
	return &LandlordRepository{db: db}
}

// Create creates a new landlord
func (r *LandlordRepository) Create(landlord *models.Landlord) error {
	return translateError(r.db.Create(landlord).Error)
}

// GetByID retrieves a landlord by ID within the scope
func (r *LandlordRepository) GetByID(id uint, s scope.Scope) (*models.Landlord, error) {
	return firstScoped[models.Landlord](r.db, landlordCols.tableColumns, id, s)
}

// List retrieves landlords matching the filter with pagination
func (r *LandlordRepository) List(filter LandlordFilter, s scope.Scope, limit, offset int) ([]models.Landlord, int64, error) {
	if err := requireScope(s); err != nil {
		return nil, 0, err
	}
	where := NewFilter().
		Scoped(s, landlordCols.Company).
		Contains(filter.Name, landlordCols.Name).
		EqIf(filter.TaxID != "", landlordCols.TaxID, OnlyDigits(filter.TaxID)).
		Contains(filter.City, landlordCols.City).
		EqIf(filter.PayoutMethod != "", landlordCols.PayoutMethod, filter.PayoutMethod)

	var total int64
	if err := where.Apply(r.db.Model(&models.Landlord{})).Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	var landlords []models.Landlord
	err := paginate(where.Apply(r.db), limit, offset).
		Order(orderBy(landlordCols.Name, landlordCols.ID)).
		Find(&landlords).Error
	if err != nil {
		return nil, 0, translateError(err)
	}

	return landlords, total, nil
}

// Search retrieves landlords matching the term on id, tax id, name or contact fields
func (r *LandlordRepository) Search(term string, s scope.Scope, limit int) ([]models.Landlord, error) {
	if err := requireScope(s); err != nil {
		return nil, err
	}
	m := searchMatch{
		name:      NewFilter().Contains(term, landlordCols.Name),
		secondary: NewFilter().Contains(term, landlordCols.Email, landlordCols.Phone, landlordCols.City),
	}
	if id, ok := parseID(term); ok {
		m.exact = append(m.exact, NewFilter().Eq(landlordCols.ID, id))
	}
	if digits := OnlyDigits(term); digits != "" {
		m.exact = append(m.exact, NewFilter().Eq(landlordCols.TaxID, digits))
	}

	var landlords []models.Landlord
	err := paginate(m.where(s, landlordCols.Company).Apply(r.db), limit, 0).
		Order(m.order(landlordCols.Name, landlordCols.ID)).
		Find(&landlords).Error
	if err != nil {
		return nil, translateError(err)
	}
	return landlords, nil
}

// Update applies the given column updates to a landlord within the scope
func (r *LandlordRepository) Update(id uint, s scope.Scope, updates map[string]interface{}) (*models.Landlord, error) {
	return updateScoped[models.Landlord](r.db, landlordCols.tableColumns, id, s, updates, nil, nil)
}
