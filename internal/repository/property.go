package repository

import (
	"imobiliaria-backend/internal/database/models"
	apperrors "imobiliaria-backend/internal/errors"
	"imobiliaria-backend/internal/scope"

	"gorm.io/gorm"
)

var propertyCols = struct {
	tableColumns
	Landlord, Type, Address, District, City, ZipCode, Registry Column
}{
	tableColumns: columnsOf("imoveis"),
	Landlord:     Column{Table: "imoveis", Name: "locador_id"},
	Type:         Column{Table: "imoveis", Name: "tipo"},
	Address:      Column{Table: "imoveis", Name: "endereco"},
	District:     Column{Table: "imoveis", Name: "bairro"},
	City:         Column{Table: "imoveis", Name: "cidade"},
	ZipCode:      Column{Table: "imoveis", Name: "cep"},
	Registry:     Column{Table: "imoveis", Name: "matricula"},
}

// PropertyFilter holds the optional list criteria for properties
type PropertyFilter struct {
	Address    string
	City       string
	District   string
	Type       string
	LandlordID *uint
}

// PropertyRepository handles database operations for properties
type PropertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// Create creates a new property. A linked landlord must belong to the property's company.
func (r *PropertyRepository) Create(property *models.Property) error {
	return translateError(r.db.Transaction(func(tx *gorm.DB) error {
		if property.LandlordID != nil {
			if err := checkLandlordCompany(tx, *property.LandlordID, property.CompanyID); err != nil {
				return err
			}
		}
		return tx.Create(property).Error
	}))
}

// GetByID retrieves a property with its landlord within the scope
func (r *PropertyRepository) GetByID(id uint, s scope.Scope) (*models.Property, error) {
	return firstScoped[models.Property](r.db.Preload("Landlord"), propertyCols.tableColumns, id, s)
}

// List retrieves properties matching the filter with pagination
func (r *PropertyRepository) List(filter PropertyFilter, s scope.Scope, limit, offset int) ([]models.Property, int64, error) {
	if err := requireScope(s); err != nil {
		return nil, 0, err
	}
	where := NewFilter().
		Scoped(s, propertyCols.Company).
		Contains(filter.Address, propertyCols.Address).
		Contains(filter.City, propertyCols.City).
		Contains(filter.District, propertyCols.District).
		EqIf(filter.Type != "", propertyCols.Type, filter.Type)
	if filter.LandlordID != nil {
		where.Eq(propertyCols.Landlord, *filter.LandlordID)
	}

	var total int64
	if err := where.Apply(r.db.Model(&models.Property{})).Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	var properties []models.Property
	err := paginate(where.Apply(r.db), limit, offset).
		Order(orderBy(propertyCols.Address, propertyCols.ID)).
		Find(&properties).Error
	if err != nil {
		return nil, 0, translateError(err)
	}

	return properties, total, nil
}

// Search retrieves properties matching the term on id, registry code, zip code,
// address or location fields
func (r *PropertyRepository) Search(term string, s scope.Scope, limit int) ([]models.Property, error) {
	if err := requireScope(s); err != nil {
		return nil, err
	}
	m := searchMatch{
		exact:     []*Filter{NewFilter().Eq(propertyCols.Registry, term)},
		name:      NewFilter().Contains(term, propertyCols.Address),
		secondary: NewFilter().Contains(term, propertyCols.District, propertyCols.City),
	}
	if id, ok := parseID(term); ok {
		m.exact = append(m.exact, NewFilter().Eq(propertyCols.ID, id))
	}
	if digits := OnlyDigits(term); digits != "" {
		m.exact = append(m.exact, NewFilter().Eq(propertyCols.ZipCode, digits))
	}

	var properties []models.Property
	err := paginate(m.where(s, propertyCols.Company).Apply(r.db), limit, 0).
		Order(m.order(propertyCols.Address, propertyCols.ID)).
		Find(&properties).Error
	if err != nil {
		return nil, translateError(err)
	}
	return properties, nil
}

// Update applies the given column updates to a property within the scope
func (r *PropertyRepository) Update(id uint, s scope.Scope, updates map[string]interface{}) (*models.Property, error) {
	check := func(tx *gorm.DB, current *models.Property) error {
		landlordID, ok := uintValue(updates["locador_id"])
		if !ok {
			return nil
		}
		return checkLandlordCompany(tx, landlordID, current.CompanyID)
	}
	reload := func(tx *gorm.DB) *gorm.DB { return tx.Preload("Landlord") }
	return updateScoped[models.Property](r.db, propertyCols.tableColumns, id, s, updates, check, reload)
}

func checkLandlordCompany(tx *gorm.DB, landlordID, companyID uint) error {
	ok, err := belongsTo(tx, &models.Landlord{}, landlordCols.tableColumns, landlordID, companyID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrPropertyLandlordScope
	}
	return nil
}
