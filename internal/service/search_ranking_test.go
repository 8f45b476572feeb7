package service_test

import (
	"context"
	"fmt"
	"testing"

	"imobiliaria-backend/internal/repository"
	"imobiliaria-backend/internal/scope"
	"imobiliaria-backend/internal/service"
	"imobiliaria-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteSearchService(t *testing.T, groupLimit int) (*service.SearchService, *repository.LandlordRepository, *repository.TenantRepository) {
	db := testutils.NewSQLiteDB(t)
	landlords := repository.NewLandlordRepository(db)
	tenants := repository.NewTenantRepository(db)
	svc := service.NewSearchService(
		landlords,
		tenants,
		repository.NewPropertyRepository(db),
		repository.NewContractRepository(db),
		groupLimit,
	)
	return svc, landlords, tenants
}

func TestSearch_ExactIDSurvivesManyNameMatches(t *testing.T) {
	svc, landlords, _ := newSQLiteSearchService(t, 5)
	factory := testutils.NewLandlordFactory()

	zuleica := factory.WithCompany(1, "Zuleica")
	require.NoError(t, landlords.Create(zuleica))
	for i := 0; i < 30; i++ {
		require.NoError(t, landlords.Create(factory.WithCompany(1, fmt.Sprintf("Ana 1 %02d", i))))
	}

	results, err := svc.Search(context.Background(), scope.ForCompany(1), "1")

	require.NoError(t, err)
	require.Len(t, results, 5)
	assert.Equal(t, zuleica.ID, results[0].ID)
	assert.Equal(t, service.RelevanceExact, results[0].Relevance)
	for _, r := range results[1:] {
		assert.Equal(t, service.RelevanceName, r.Relevance)
	}
	assert.Equal(t, "Ana 1 00", results[1].Title)
}

func TestSearch_ExactTaxIDSurvivesManySecondaryMatches(t *testing.T) {
	svc, _, tenants := newSQLiteSearchService(t, 3)
	factory := testutils.NewTenantFactory()

	for i := 0; i < 20; i++ {
		tenant := factory.WithCompany(1, fmt.Sprintf("Bruno %02d", i))
		tenant.TaxID = ""
		tenant.Phone = "(31) 52998224725"
		require.NoError(t, tenants.Create(tenant))
	}
	target := factory.WithCompany(1, "Zilda Moraes")
	target.TaxID = "52998224725"
	require.NoError(t, tenants.Create(target))

	results, err := svc.Search(context.Background(), scope.ForCompany(1), "52998224725")

	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, service.SearchKindTenant, results[0].Kind)
	assert.Equal(t, target.ID, results[0].ID)
	assert.Equal(t, service.RelevanceExact, results[0].Relevance)
}
