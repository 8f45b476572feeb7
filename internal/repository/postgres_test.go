//go:build integration

package repository

import (
	"testing"
	"time"

	"imobiliaria-backend/internal/database/models"
	apperrors "imobiliaria-backend/internal/errors"
	"imobiliaria-backend/internal/scope"
	"imobiliaria-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// PostgresRepositoryTestSuite runs the scoping and ledger rules against a real Postgres
type PostgresRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	landlords     *LandlordRepository
	tenants       *TenantRepository
	properties    *PropertyRepository
	contracts     *ContractRepository
	settlements   *SettlementRepository
}

func (suite *PostgresRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.landlords = NewLandlordRepository(db)
	suite.tenants = NewTenantRepository(db)
	suite.properties = NewPropertyRepository(db)
	suite.contracts = NewContractRepository(db)
	suite.settlements = NewSettlementRepository(db)
}

func (suite *PostgresRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.CleanTestDB()
}

func (suite *PostgresRepositoryTestSuite) TestLandlordScoping() {
	factory := testutils.NewLandlordFactory()
	for _, company := range []uint{1, 3, 5} {
		suite.Require().NoError(suite.landlords.Create(factory.WithCompany(company, "Locador 100%")))
	}
	suite.Require().NoError(suite.landlords.Create(factory.WithCompany(3, "Locador 1000")))

	scoped, total, err := suite.landlords.List(LandlordFilter{Name: "100%"}, scope.ForCompany(3), 20, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total, "wildcards in the term match literally")
	suite.Equal(uint(3), scoped[0].CompanyID)
	suite.Equal("Locador 100%", scoped[0].Name)

	_, total, err = suite.landlords.List(LandlordFilter{}, scope.Global(1), 20, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(4), total)

	_, err = suite.landlords.GetByID(scoped[0].ID, scope.ForCompany(5))
	suite.Error(err)
}

func (suite *PostgresRepositoryTestSuite) TestContractStatusAndSettlementUniqueness() {
	tenant := testutils.NewTenantFactory().WithCompany(3, "Paulo Mendes")
	suite.Require().NoError(suite.tenants.Create(tenant))
	property := testutils.NewPropertyFactory().WithCompany(3, "Rua Bahia")
	suite.Require().NoError(suite.properties.Create(property))

	now := time.Now().UTC().Truncate(24 * time.Hour)
	contract := testutils.NewContractFactory().For(tenant, property)
	contract.StartDate = now.AddDate(-1, 0, 0)
	contract.EndDate = now.AddDate(0, 0, 10)
	suite.Require().NoError(suite.contracts.Create(contract))

	expiring, _, err := suite.contracts.List(ContractFilter{Status: models.ContractStatusExpiring, Now: now}, scope.ForCompany(3), 20, 0)
	suite.Require().NoError(err)
	suite.Len(expiring, 1)

	ended, _, err := suite.contracts.List(ContractFilter{Status: models.ContractStatusEnded, Now: now}, scope.ForCompany(3), 20, 0)
	suite.Require().NoError(err)
	suite.Empty(ended)

	factory := testutils.NewSettlementFactory()
	suite.Require().NoError(suite.settlements.Record(factory.Create(contract.ID, "03/2025"), scope.ForCompany(3)))
	err = suite.settlements.Record(factory.Create(contract.ID, "03/2025"), scope.ForCompany(3))
	suite.ErrorIs(err, apperrors.ErrSettlementExists)
}

func TestPostgresRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PostgresRepositoryTestSuite))
}
