package repository

import (
	"strconv"
	"strings"
	"time"

	apperrors "imobiliaria-backend/internal/errors"
	"imobiliaria-backend/internal/scope"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Column is a column reference known at compile time. Filters never accept
// column names from request input.
type Column struct {
	Table string
	Name  string
}

func (c Column) clause() clause.Column {
	return clause.Column{Table: c.Table, Name: c.Name}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a case-insensitive LIKE pattern with wildcards escaped
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

// Filter composes typed predicates that are AND'ed together and rendered as
// parameterized SQL.
type Filter struct {
	exprs []clause.Expression
}

// NewFilter creates an empty filter
func NewFilter() *Filter {
	return &Filter{}
}

// Scoped restricts the filter to the scope's company unless the scope sees all
// companies. col is the company column of the queried table.
func (f *Filter) Scoped(s scope.Scope, col Column) *Filter {
	if s.SeesAll() {
		return f
	}
	return f.Eq(col, s.CompanyID())
}

// Eq adds col = value
func (f *Filter) Eq(col Column, value interface{}) *Filter {
	f.exprs = append(f.exprs, clause.Eq{Column: col.clause(), Value: value})
	return f
}

// EqIf adds col = value when set is true
func (f *Filter) EqIf(set bool, col Column, value interface{}) *Filter {
	if !set {
		return f
	}
	return f.Eq(col, value)
}

// Contains adds a case-insensitive substring match of term against any of cols.
// An empty term adds nothing.
func (f *Filter) Contains(term string, cols ...Column) *Filter {
	term = strings.TrimSpace(term)
	if term == "" || len(cols) == 0 {
		return f
	}
	pattern := containsPattern(term)
	ors := make([]clause.Expression, 0, len(cols))
	for _, col := range cols {
		ors = append(ors, clause.Expr{
			SQL:  `LOWER(?) LIKE ? ESCAPE '\'`,
			Vars: []interface{}{col.clause(), pattern},
		})
	}
	if len(ors) == 1 {
		f.exprs = append(f.exprs, ors[0])
	} else {
		f.exprs = append(f.exprs, clause.Or(ors...))
	}
	return f
}

// From adds col >= t when t is set
func (f *Filter) From(col Column, t *time.Time) *Filter {
	if t == nil {
		return f
	}
	f.exprs = append(f.exprs, clause.Gte{Column: col.clause(), Value: *t})
	return f
}

// Until adds col <= t when t is set
func (f *Filter) Until(col Column, t *time.Time) *Filter {
	if t == nil {
		return f
	}
	f.exprs = append(f.exprs, clause.Lte{Column: col.clause(), Value: *t})
	return f
}

// Before adds col < t
func (f *Filter) Before(col Column, t time.Time) *Filter {
	f.exprs = append(f.exprs, clause.Lt{Column: col.clause(), Value: t})
	return f
}

// Or adds a disjunction of the alternatives, each alternative being the
// conjunction of its own predicates. With no usable alternative the filter
// matches nothing.
func (f *Filter) Or(alts ...*Filter) *Filter {
	ors := make([]clause.Expression, 0, len(alts))
	for _, alt := range alts {
		if alt == nil || len(alt.exprs) == 0 {
			continue
		}
		ors = append(ors, clause.And(alt.exprs...))
	}
	switch len(ors) {
	case 0:
		f.exprs = append(f.exprs, clause.Expr{SQL: "1 = 0"})
	case 1:
		f.exprs = append(f.exprs, ors[0])
	default:
		f.exprs = append(f.exprs, clause.Or(ors...))
	}
	return f
}

// expr returns the conjunction of the predicates, or nil for an empty filter
func (f *Filter) expr() clause.Expression {
	if f == nil || len(f.exprs) == 0 {
		return nil
	}
	return clause.And(f.exprs...)
}

// RankBy orders rows by the first tier they match, tiers in the given order and
// rows matching none last, then by cols ascending. Empty tiers are skipped.
func RankBy(tiers []*Filter, cols ...Column) clause.OrderBy {
	var sql strings.Builder
	vars := make([]interface{}, 0, len(tiers)+len(cols))
	for _, tier := range tiers {
		cond := tier.expr()
		if cond == nil {
			continue
		}
		if sql.Len() == 0 {
			sql.WriteString("CASE")
		}
		sql.WriteString(" WHEN (?) THEN " + strconv.Itoa(len(vars)))
		vars = append(vars, cond)
	}
	if sql.Len() > 0 {
		sql.WriteString(" ELSE " + strconv.Itoa(len(vars)) + " END")
	}
	for _, col := range cols {
		if sql.Len() > 0 {
			sql.WriteString(", ")
		}
		sql.WriteString("?")
		vars = append(vars, col.clause())
	}
	return clause.OrderBy{Expression: clause.Expr{SQL: sql.String(), Vars: vars}}
}

// Len returns the number of predicates
func (f *Filter) Len() int {
	return len(f.exprs)
}

// Apply attaches the predicates to a query
func (f *Filter) Apply(db *gorm.DB) *gorm.DB {
	if len(f.exprs) == 0 {
		return db
	}
	return db.Where(clause.And(f.exprs...))
}

// requireScope rejects the zero scope before any SQL is issued
func requireScope(s scope.Scope) error {
	if !s.Valid() {
		return apperrors.ErrScopeMissing
	}
	return nil
}
