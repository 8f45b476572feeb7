package service_test

import (
	"testing"
	"time"

	"imobiliaria-backend/internal/database/models"
	apperrors "imobiliaria-backend/internal/errors"
	"imobiliaria-backend/internal/mocks"
	"imobiliaria-backend/internal/repository"
	"imobiliaria-backend/internal/scope"
	"imobiliaria-backend/internal/service"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ContractServiceTestSuite defines the test suite for ContractService
type ContractServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockContractRepositoryInterface
	service  *service.ContractService
}

// SetupTest sets up the test suite
func (suite *ContractServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockContractRepositoryInterface(suite.ctrl)
	suite.service = service.NewContractService(suite.mockRepo, service.NewValidator())
}

// TearDownTest cleans up after each test
func (suite *ContractServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ContractServiceTestSuite) validRequest() *service.CreateContractRequest {
	return &service.CreateContractRequest{
		TenantID:        1,
		PropertyID:      2,
		StartDate:       "2025-01-01",
		EndDate:         "2099-12-31",
		RentAmount:      1500,
		AdminFee:        10,
		Bonus:           100,
		AdjustmentIndex: "IGPM",
		DueDay:          10,
	}
}

// TestCreate tests date parsing and company assignment
func (suite *ContractServiceTestSuite) TestCreate() {
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(c *models.Contract) error {
			suite.Equal(uint(3), c.CompanyID)
			suite.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), c.StartDate)
			suite.Equal(models.AdjustmentIndexIGPM, c.AdjustmentIndex)
			c.ID = 1
			return nil
		}).
		Times(1)

	response, err := suite.service.Create(scope.ForCompany(3), suite.validRequest())

	suite.NoError(err)
	suite.Equal("2025-01-01", response.StartDate)
	suite.Equal("2099-12-31", response.EndDate)
	suite.Equal(string(models.ContractStatusActive), response.Status)
}

// TestCreateInvalidRequests tests validation failures that never reach the repository
func (suite *ContractServiceTestSuite) TestCreateInvalidRequests() {
	badIndex := suite.validRequest()
	badIndex.AdjustmentIndex = "INCC"

	badDueDay := suite.validRequest()
	badDueDay.DueDay = 32

	badDate := suite.validRequest()
	badDate.StartDate = "01/01/2025"

	for _, req := range []*service.CreateContractRequest{badIndex, badDueDay, badDate} {
		_, err := suite.service.Create(scope.ForCompany(1), req)
		suite.True(apperrors.IsValidation(err), "%v", err)
	}

	reversed := suite.validRequest()
	reversed.StartDate, reversed.EndDate = "2026-01-01", "2025-01-01"
	_, err := suite.service.Create(scope.ForCompany(1), reversed)
	suite.ErrorIs(err, apperrors.ErrInvalidDateRange)
}

// TestCreateCrossCompanyParty tests that repository constraint errors pass through
func (suite *ContractServiceTestSuite) TestCreateCrossCompanyParty() {
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		Return(apperrors.ErrContractTenantScope).
		Times(1)

	_, err := suite.service.Create(scope.ForCompany(1), suite.validRequest())

	suite.ErrorIs(err, apperrors.ErrContractTenantScope)
	suite.True(apperrors.IsConstraint(err))
}

// TestUpdateRentKeepsBonus tests that a rent-only update sends only the rent column
func (suite *ContractServiceTestSuite) TestUpdateRentKeepsBonus() {
	rent := 1850.0
	sc := scope.ForCompany(1)

	suite.mockRepo.EXPECT().
		Update(uint(1), sc, map[string]interface{}{"valor_aluguel": 1850.0}).
		Return(&models.Contract{RentAmount: 1850, Bonus: 100, EndDate: time.Now().AddDate(1, 0, 0)}, nil).
		Times(1)

	response, err := suite.service.Update(sc, 1, &service.UpdateContractRequest{RentAmount: &rent})

	suite.NoError(err)
	suite.Equal(1850.0, response.RentAmount)
	suite.Equal(100.0, response.Bonus)
}

// TestUpdateDates tests that dates are parsed before reaching the repository
func (suite *ContractServiceTestSuite) TestUpdateDates() {
	end := "2030-06-30"
	sc := scope.ForCompany(1)

	suite.mockRepo.EXPECT().
		Update(uint(1), sc, map[string]interface{}{"data_fim": time.Date(2030, 6, 30, 0, 0, 0, 0, time.UTC)}).
		Return(&models.Contract{EndDate: time.Date(2030, 6, 30, 0, 0, 0, 0, time.UTC)}, nil).
		Times(1)

	response, err := suite.service.Update(sc, 1, &service.UpdateContractRequest{EndDate: &end})

	suite.NoError(err)
	suite.Equal("2030-06-30", response.EndDate)
}

// TestUpdateNotFound tests translation of a missing contract
func (suite *ContractServiceTestSuite) TestUpdateNotFound() {
	rent := 1850.0
	suite.mockRepo.EXPECT().
		Update(uint(99), gomock.Any(), gomock.Any()).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	_, err := suite.service.Update(scope.ForCompany(1), 99, &service.UpdateContractRequest{RentAmount: &rent})

	suite.ErrorIs(err, apperrors.ErrContractNotFound)
}

// TestListStatusFilter tests that the status and date filters reach the repository
func (suite *ContractServiceTestSuite) TestListStatusFilter() {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.mockRepo.EXPECT().
		List(gomock.Any(), scope.Global(1), 20, 0).
		DoAndReturn(func(f repository.ContractFilter, _ scope.Scope, _, _ int) ([]models.Contract, int64, error) {
			suite.Equal(models.ContractStatusExpiring, f.Status)
			suite.Require().NotNil(f.StartFrom)
			suite.Equal(from, *f.StartFrom)
			suite.False(f.Now.IsZero())
			return nil, 0, nil
		}).
		Times(1)

	response, err := suite.service.List(scope.Global(1), &service.ContractListRequest{Status: "a_vencer", StartFrom: "2025-01-01"})

	suite.NoError(err)
	suite.Empty(response.Data)

	_, err = suite.service.List(scope.Global(1), &service.ContractListRequest{Status: "suspenso"})
	suite.True(apperrors.IsValidation(err))
}

func TestContractServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContractServiceTestSuite))
}
