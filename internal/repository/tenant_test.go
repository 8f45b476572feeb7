package repository

import (
	"testing"

	apperrors "imobiliaria-backend/internal/errors"
	"imobiliaria-backend/internal/scope"
	"imobiliaria-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTenantRepository_ListAndSearchScoped(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	repo := NewTenantRepository(db)
	factory := testutils.NewTenantFactory()

	for _, tc := range []struct {
		company uint
		name    string
	}{
		{1, "Paula Rocha"},
		{3, "Paulo Mendes"},
		{3, "Rafaela Nunes"},
		{5, "Paulina Reis"},
	} {
		require.NoError(t, repo.Create(factory.WithCompany(tc.company, tc.name)))
	}

	tenants, total, err := repo.List(TenantFilter{Name: "paul"}, scope.ForCompany(3), 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, tenants, 1)
	assert.Equal(t, "Paulo Mendes", tenants[0].Name)

	all, total, err := repo.List(TenantFilter{Name: "paul"}, scope.Global(3), 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, all, 3)

	found, err := repo.Search("rafaela", scope.ForCompany(3), 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, uint(3), found[0].CompanyID)

	found, err = repo.Search("rafaela", scope.ForCompany(5), 10)
	require.NoError(t, err)
	assert.Empty(t, found)

	_, err = repo.Search("rafaela", scope.Scope{}, 10)
	assert.ErrorIs(t, err, apperrors.ErrScopeMissing)
}

func TestTenantRepository_TaxIDFilter(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	repo := NewTenantRepository(db)
	tenant := testutils.NewTenantFactory().Create()
	require.NoError(t, repo.Create(tenant))

	tenants, _, err := repo.List(TenantFilter{TaxID: "987.654.321-00"}, scope.ForCompany(1), 20, 0)
	require.NoError(t, err)
	require.Len(t, tenants, 1)
	assert.Equal(t, tenant.ID, tenants[0].ID)
}

func TestTenantRepository_UpdateAndGet(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	repo := NewTenantRepository(db)
	tenant := testutils.NewTenantFactory().WithCompany(3, "Paulo Mendes")
	require.NoError(t, repo.Create(tenant))

	updated, err := repo.Update(tenant.ID, scope.ForCompany(3), map[string]interface{}{"renda_mensal": 12000.0})
	require.NoError(t, err)
	assert.Equal(t, 12000.0, updated.MonthlyIncome)
	assert.Equal(t, "Paulo Mendes", updated.Name)
	assert.Equal(t, tenant.Email, updated.Email)

	_, err = repo.GetByID(tenant.ID, scope.ForCompany(1))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.Update(9999, scope.ForCompany(3), map[string]interface{}{"nome": "x"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
