package repository

import (
	"errors"

	"imobiliaria-backend/internal/database/models"
	apperrors "imobiliaria-backend/internal/errors"
	"imobiliaria-backend/internal/scope"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var settlementCols = struct {
	tableColumns
	Contract, ReferenceMonth, Period Column
}{
	tableColumns:   columnsOf("prestacoes_contas"),
	Contract:       Column{Table: "prestacoes_contas", Name: "contrato_id"},
	ReferenceMonth: Column{Table: "prestacoes_contas", Name: "mes_referencia"},
	Period:         Column{Table: "prestacoes_contas", Name: "periodo"},
}

// SettlementRepository handles database operations for settlement records
type SettlementRepository struct {
	db *gorm.DB
}

// NewSettlementRepository creates a new settlement repository
func NewSettlementRepository(db *gorm.DB) *SettlementRepository {
	return &SettlementRepository{db: db}
}

// Record inserts a settlement for a contract visible in the scope. The contract
// lookup, the duplicate check and the insert share one transaction; the record
// inherits the contract's company.
func (r *SettlementRepository) Record(settlement *models.Settlement, s scope.Scope) error {
	if err := requireScope(s); err != nil {
		return err
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var contract models.Contract
		err := NewFilter().
			Eq(contractCols.ID, settlement.ContractID).
			Scoped(s, contractCols.Company).
			Apply(tx).
			First(&contract).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSettlementContract
		}
		if err != nil {
			return err
		}

		var count int64
		err = NewFilter().
			Eq(settlementCols.Contract, settlement.ContractID).
			Eq(settlementCols.ReferenceMonth, settlement.ReferenceMonth).
			Apply(tx.Model(&models.Settlement{})).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrSettlementExists
		}

		settlement.CompanyID = contract.CompanyID
		return tx.Create(settlement).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrSettlementExists
	}
	return translateError(err)
}

// GetByID retrieves a settlement record within the scope
func (r *SettlementRepository) GetByID(id uint, s scope.Scope) (*models.Settlement, error) {
	return firstScoped[models.Settlement](r.db, settlementCols.tableColumns, id, s)
}

// ListByContract retrieves a contract's settlements, most recent reference month first
func (r *SettlementRepository) ListByContract(contractID uint, s scope.Scope, limit, offset int) ([]models.Settlement, int64, error) {
	if err := requireScope(s); err != nil {
		return nil, 0, err
	}
	where := NewFilter().
		Scoped(s, settlementCols.Company).
		Eq(settlementCols.Contract, contractID)

	var total int64
	if err := where.Apply(r.db.Model(&models.Settlement{})).Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	var settlements []models.Settlement
	err := paginate(where.Apply(r.db), limit, offset).
		Order(clause.OrderBy{Columns: []clause.OrderByColumn{
			{Column: settlementCols.Period.clause(), Desc: true},
			{Column: settlementCols.ID.clause(), Desc: true},
		}}).
		Find(&settlements).Error
	if err != nil {
		return nil, 0, translateError(err)
	}

	return settlements, total, nil
}
