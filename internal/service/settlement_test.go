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
	"gorm.io/gorm"
)

// SettlementServiceTestSuite defines the test suite for SettlementService
type SettlementServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *mocks.MockSettlementRepositoryInterface
	mockContract *mocks.MockContractRepositoryInterface
	service      *service.SettlementService
}

// SetupTest sets up the test suite
func (suite *SettlementServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockSettlementRepositoryInterface(suite.ctrl)
	suite.mockContract = mocks.NewMockContractRepositoryInterface(suite.ctrl)
	suite.service = service.NewSettlementService(suite.mockRepo, suite.mockContract, service.NewValidator())
}

// TearDownTest cleans up after each test
func (suite *SettlementServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SettlementServiceTestSuite) request() *service.RecordSettlementRequest {
	return &service.RecordSettlementRequest{
		ContractID:          1,
		ReferenceMonth:      "03/2025",
		AmountReceived:      1500,
		AmountPassedThrough: 1350,
		Fees:                150,
	}
}

// TestRecord tests a successful recording
func (suite *SettlementServiceTestSuite) TestRecord() {
	sc := scope.ForCompany(3)
	suite.mockRepo.EXPECT().
		Record(gomock.Any(), sc).
		DoAndReturn(func(s *models.Settlement, _ scope.Scope) error {
			suite.Equal(uint(1), s.ContractID)
			suite.Equal("03/2025", s.ReferenceMonth)
			s.ID = 10
			s.CompanyID = 3
			return nil
		}).
		Times(1)

	response, err := suite.service.Record(context.Background(), sc, suite.request())

	suite.NoError(err)
	suite.Equal(uint(10), response.ID)
	suite.Equal(uint(3), response.CompanyID)
}

// TestRecordNegativeAmounts tests that negative money fields fail without a write
func (suite *SettlementServiceTestSuite) TestRecordNegativeAmounts() {
	negFees := suite.request()
	negFees.Fees = -1
	negReceived := suite.request()
	negReceived.AmountReceived = -0.01
	negPassed := suite.request()
	negPassed.AmountPassedThrough = -100

	for _, req := range []*service.RecordSettlementRequest{negFees, negReceived, negPassed} {
		response, err := suite.service.Record(context.Background(), scope.ForCompany(1), req)
		suite.Nil(response)
		suite.True(apperrors.IsValidation(err), "%v", err)
	}
}

// TestRecordBadMonth tests the MM/YYYY format check
func (suite *SettlementServiceTestSuite) TestRecordBadMonth() {
	for _, month := range []string{"3/2025", "13/2025", "2025-03", "march"} {
		req := suite.request()
		req.ReferenceMonth = month
		_, err := suite.service.Record(context.Background(), scope.ForCompany(1), req)
		suite.ErrorIs(err, apperrors.ErrInvalidReferenceMonth, month)
	}
}

// TestRecordDuplicate tests that the duplicate sentinel passes through
func (suite *SettlementServiceTestSuite) TestRecordDuplicate() {
	suite.mockRepo.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		Return(apperrors.ErrSettlementExists)

	_, err := suite.service.Record(context.Background(), scope.ForCompany(1), suite.request())

	suite.ErrorIs(err, apperrors.ErrSettlementExists)
	suite.True(apperrors.IsAlreadyExists(err))
}

// TestRecordInvisibleContract tests that an unknown contract is a validation error
func (suite *SettlementServiceTestSuite) TestRecordInvisibleContract() {
	suite.mockRepo.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		Return(apperrors.ErrSettlementContract)

	_, err := suite.service.Record(context.Background(), scope.ForCompany(1), suite.request())

	suite.True(apperrors.IsValidation(err))
}

// TestListByContract tests that the contract must be visible before listing
func (suite *SettlementServiceTestSuite) TestListByContract() {
	sc := scope.ForCompany(3)
	suite.mockContract.EXPECT().GetByID(uint(1), sc).Return(&models.Contract{}, nil)
	suite.mockRepo.EXPECT().
		ListByContract(uint(1), sc, 20, 0).
		Return([]models.Settlement{{ReferenceMonth: "01/2025"}, {ReferenceMonth: "12/2024"}}, int64(2), nil)

	response, err := suite.service.ListByContract(sc, 1, 0, 0)

	suite.NoError(err)
	suite.Equal(int64(2), response.Total)
	suite.Equal("01/2025", response.Data[0].ReferenceMonth)

	suite.mockContract.EXPECT().GetByID(uint(2), sc).Return(nil, gorm.ErrRecordNotFound)
	_, err = suite.service.ListByContract(sc, 2, 1, 20)
	suite.ErrorIs(err, apperrors.ErrContractNotFound)
}

// TestGetByIDNotFound tests translation of a missing settlement
func (suite *SettlementServiceTestSuite) TestGetByIDNotFound() {
	suite.mockRepo.EXPECT().GetByID(uint(5), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetByID(scope.ForCompany(1), 5)

	suite.ErrorIs(err, apperrors.ErrSettlementNotFound)
}

func TestSettlementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettlementServiceTestSuite))
}
