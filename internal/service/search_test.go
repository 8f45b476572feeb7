package service_test

import (
	"context"
	"testing"

	"imobiliaria-backend/internal/database/models"
	apperrors "imobiliaria-backend/internal/errors"
	"imobiliaria-backend/internal/mocks"
	"imobiliaria-backend/internal/scope"
	"imobiliaria-backend/internal/service"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SearchServiceTestSuite defines the test suite for SearchService
type SearchServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	landlords  *mocks.MockLandlordRepositoryInterface
	tenants    *mocks.MockTenantRepositoryInterface
	properties *mocks.MockPropertyRepositoryInterface
	contracts  *mocks.MockContractRepositoryInterface
	service    *service.SearchService
}

// SetupTest sets up the test suite
func (suite *SearchServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.landlords = mocks.NewMockLandlordRepositoryInterface(suite.ctrl)
	suite.tenants = mocks.NewMockTenantRepositoryInterface(suite.ctrl)
	suite.properties = mocks.NewMockPropertyRepositoryInterface(suite.ctrl)
	suite.contracts = mocks.NewMockContractRepositoryInterface(suite.ctrl)
	suite.service = service.NewSearchService(suite.landlords, suite.tenants, suite.properties, suite.contracts, 2)
}

// TearDownTest cleans up after each test
func (suite *SearchServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func company(id uint) models.CompanyScoped {
	return models.CompanyScoped{CompanyID: id}
}

func base(id uint) models.BaseModel {
	return models.BaseModel{ID: id}
}

// TestEmptyTerm tests that a blank term matches nothing and queries nothing
func (suite *SearchServiceTestSuite) TestEmptyTerm() {
	for _, term := range []string{"", "   "} {
		results, err := suite.service.Search(context.Background(), scope.ForCompany(1), term)
		suite.NoError(err)
		suite.NotNil(results)
		suite.Empty(results)
	}
}

// TestRequiresScope tests that the zero scope is rejected
func (suite *SearchServiceTestSuite) TestRequiresScope() {
	_, err := suite.service.Search(context.Background(), scope.Scope{}, "ana")
	suite.ErrorIs(err, apperrors.ErrScopeMissing)
}

// TestGroupsAndRanking tests fixed group order, per-group ranking and the group cap
func (suite *SearchServiceTestSuite) TestGroupsAndRanking() {
	sc := scope.ForCompany(3)
	term := "silva"

	suite.landlords.EXPECT().Search(term, sc, 8).Return([]models.Landlord{
		{BaseModel: base(1), CompanyScoped: company(3), Name: "Zeca", Email: "silva@example.com"},
		{BaseModel: base(2), CompanyScoped: company(3), Name: "Bruno Silva"},
		{BaseModel: base(3), CompanyScoped: company(3), Name: "Ana Silva"},
	}, nil)
	suite.tenants.EXPECT().Search(term, sc, 8).Return([]models.Tenant{
		{BaseModel: base(5), CompanyScoped: company(3), Name: "Carlos Silva"},
	}, nil)
	suite.properties.EXPECT().Search(term, sc, 8).Return([]models.Property{
		{BaseModel: base(6), CompanyScoped: company(3), Address: "Rua Silva Jardim", Number: "10"},
	}, nil)
	suite.contracts.EXPECT().Search(term, sc, 8).Return([]models.Contract{
		{BaseModel: base(7), CompanyScoped: company(3), Tenant: &models.Tenant{Name: "Carlos Silva"}, Property: &models.Property{Address: "Rua B"}},
	}, nil)

	results, err := suite.service.Search(context.Background(), sc, "  silva ")

	suite.NoError(err)
	suite.Require().Len(results, 5)

	suite.Equal(service.SearchKindLandlord, results[0].Kind)
	suite.Equal("Ana Silva", results[0].Title)
	suite.Equal(service.RelevanceName, results[0].Relevance)
	suite.Equal("Bruno Silva", results[1].Title)

	suite.Equal(service.SearchKindTenant, results[2].Kind)
	suite.Equal(service.SearchKindProperty, results[3].Kind)
	suite.Equal("Rua Silva Jardim, 10", results[3].Title)
	suite.Equal(service.SearchKindContract, results[4].Kind)
	suite.Equal("Contrato #7 - Carlos Silva", results[4].Title)
	suite.Equal("Rua B", results[4].Subtitle)

	for _, r := range results {
		suite.Equal(uint(3), r.CompanyID)
	}
}

// TestExactIdentifierRanksFirst tests that an exact id or tax id outranks name matches
func (suite *SearchServiceTestSuite) TestExactIdentifierRanksFirst() {
	sc := scope.ForCompany(1)
	term := "12345678909"

	suite.landlords.EXPECT().Search(term, sc, gomock.Any()).Return([]models.Landlord{
		{BaseModel: base(2), CompanyScoped: company(1), Name: "Ana 12345678909"},
		{BaseModel: base(9), CompanyScoped: company(1), Name: "Zeca", TaxID: "12345678909"},
	}, nil)
	suite.tenants.EXPECT().Search(term, sc, gomock.Any()).Return(nil, nil)
	suite.properties.EXPECT().Search(term, sc, gomock.Any()).Return([]models.Property{
		{BaseModel: base(4), CompanyScoped: company(1), Address: "Rua A", District: "Centro"},
	}, nil)
	suite.contracts.EXPECT().Search(term, sc, gomock.Any()).Return([]models.Contract{
		{BaseModel: base(3), CompanyScoped: company(1), Tenant: &models.Tenant{Name: "Zeca", TaxID: "12345678909"}},
	}, nil)

	results, err := suite.service.Search(context.Background(), sc, term)

	suite.NoError(err)
	suite.Require().Len(results, 4)
	suite.Equal(uint(9), results[0].ID)
	suite.Equal(service.RelevanceExact, results[0].Relevance)
	suite.Equal(uint(2), results[1].ID)
	suite.Equal(service.RelevanceName, results[1].Relevance)
	suite.Equal(service.RelevanceSecondary, results[2].Relevance)
	suite.Equal(service.RelevanceExact, results[3].Relevance)
}

// TestRepositoryError tests that a failing group aborts the search
func (suite *SearchServiceTestSuite) TestRepositoryError() {
	sc := scope.ForCompany(1)
	suite.landlords.EXPECT().Search("ana", sc, gomock.Any()).Return(nil, nil)
	suite.tenants.EXPECT().Search("ana", sc, gomock.Any()).Return(nil, apperrors.NewConnectionError("query", nil))

	_, err := suite.service.Search(context.Background(), sc, "ana")

	suite.True(apperrors.IsConnection(err))
}

func TestSearchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SearchServiceTestSuite))
}
