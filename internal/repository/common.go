package repository

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	apperrors "imobiliaria-backend/internal/errors"
	"imobiliaria-backend/internal/scope"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// tableColumns names the columns every company-owned table shares
type tableColumns struct {
	ID      Column
	Company Column
}

func columnsOf(table string) tableColumns {
	return tableColumns{
		ID:      Column{Table: table, Name: "id"},
		Company: Column{Table: table, Name: "empresa_id"},
	}
}

// translateError maps driver-level failures onto the application error taxonomy.
// gorm.ErrRecordNotFound passes through untouched for services to translate.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var netErr net.Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return err
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", apperrors.ErrForeignKeyViolation, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.NewAlreadyExistsError("record", "with these unique fields")
	case errors.Is(err, driver.ErrBadConn), errors.As(err, &netErr):
		return apperrors.NewConnectionError("query", err)
	}
	return err
}

// firstScoped loads one record by id, visible only inside the scope
func firstScoped[T any](db *gorm.DB, cols tableColumns, id uint, s scope.Scope) (*T, error) {
	if err := requireScope(s); err != nil {
		return nil, err
	}
	var record T
	err := NewFilter().Eq(cols.ID, id).Scoped(s, cols.Company).Apply(db).First(&record).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &record, nil
}

// updateScoped applies a partial update to a record inside the scope in a single
// unit of work: scoped lookup, optional check, column updates, reload.
func updateScoped[T any](db *gorm.DB, cols tableColumns, id uint, s scope.Scope, updates map[string]interface{}, check func(tx *gorm.DB, current *T) error, reload func(tx *gorm.DB) *gorm.DB) (*T, error) {
	if err := requireScope(s); err != nil {
		return nil, err
	}
	var updated T
	err := db.Transaction(func(tx *gorm.DB) error {
		var current T
		if err := NewFilter().Eq(cols.ID, id).Scoped(s, cols.Company).Apply(tx).First(&current).Error; err != nil {
			return err
		}
		if check != nil {
			if err := check(tx, &current); err != nil {
				return err
			}
		}
		if len(updates) > 0 {
			if err := tx.Model(&current).Updates(updates).Error; err != nil {
				return err
			}
		}
		q := tx
		if reload != nil {
			q = reload(tx)
		}
		return NewFilter().Eq(cols.ID, id).Apply(q).First(&updated).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &updated, nil
}

// paginate applies limit/offset; a non-positive limit leaves the query unbounded
func paginate(db *gorm.DB, limit, offset int) *gorm.DB {
	if limit > 0 {
		db = db.Limit(limit)
	}
	if offset > 0 {
		db = db.Offset(offset)
	}
	return db
}

// orderBy renders ascending ORDER BY columns
func orderBy(cols ...Column) clause.OrderBy {
	order := clause.OrderBy{}
	for _, col := range cols {
		order.Columns = append(order.Columns, clause.OrderByColumn{Column: col.clause()})
	}
	return order
}

// searchMatch splits a search term into match classes: exact identifiers, the
// display name, and secondary fields. Candidates are fetched best class first so
// a row cap never drops an exact match in favour of a looser one.
type searchMatch struct {
	exact     []*Filter
	name      *Filter
	secondary *Filter
}

func (m searchMatch) where(s scope.Scope, company Column) *Filter {
	alts := append([]*Filter{m.name, m.secondary}, m.exact...)
	return NewFilter().Scoped(s, company).Or(alts...)
}

func (m searchMatch) order(cols ...Column) clause.OrderBy {
	var exact *Filter
	if len(m.exact) > 0 {
		exact = NewFilter().Or(m.exact...)
	}
	return RankBy([]*Filter{exact, m.name}, cols...)
}

// parseID interprets a search term as a record id
func parseID(term string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(term), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// OnlyDigits strips formatting from CPF/CNPJ/CEP style identifiers
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// belongsTo reports whether the record id of model's table is owned by companyID
func belongsTo(tx *gorm.DB, model interface{}, cols tableColumns, id, companyID uint) (bool, error) {
	var count int64
	err := NewFilter().Eq(cols.ID, id).Eq(cols.Company, companyID).Apply(tx.Model(model)).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// uintValue extracts a non-nil id from an update map value
func uintValue(v interface{}) (uint, bool) {
	switch id := v.(type) {
	case uint:
		return id, true
	case *uint:
		if id != nil {
			return *id, true
		}
	}
	return 0, false
}
