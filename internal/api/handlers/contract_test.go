package handlers

import (
	"net/http"
	"testing"

	apperrors "imobiliaria-backend/internal/errors"
	"imobiliaria-backend/internal/mocks"
	"imobiliaria-backend/internal/scope"
	"imobiliaria-backend/internal/service"
	"imobiliaria-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ContractHandlerTestSuite defines the test suite for ContractHandler
type ContractHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockContractServiceInterface
	httpSuite   *testutils.HTTPTestSuite
	scope       scope.Scope
}

func (suite *ContractHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockContractServiceInterface(suite.ctrl)
	suite.scope = scope.Global(1)

	handler := NewContractHandler(suite.mockService)
	suite.httpSuite = setupScopedHTTP(suite.scope)
	contracts := suite.httpSuite.Router.Group("/api/v1/contracts")
	{
		contracts.GET("", handler.ListContracts)
		contracts.POST("", handler.CreateContract)
		contracts.GET("/:id", handler.GetContract)
		contracts.PATCH("/:id", handler.UpdateContract)
	}
}

func (suite *ContractHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ContractHandlerTestSuite) TestCreateContract() {
	suite.mockService.EXPECT().
		Create(suite.scope, gomock.Any()).
		DoAndReturn(func(_ scope.Scope, req *service.CreateContractRequest) (*service.ContractResponse, error) {
			assert.Equal(suite.T(), uint(4), req.TenantID)
			assert.Equal(suite.T(), uint(9), req.PropertyID)
			assert.Equal(suite.T(), "2025-01-01", req.StartDate)
			assert.Equal(suite.T(), 1500.0, req.RentAmount)
			return &service.ContractResponse{ID: 1, TenantID: 4, PropertyID: 9, Status: "ativo"}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/contracts", map[string]interface{}{
		"locatario_id":   4,
		"imovel_id":      9,
		"data_inicio":    "2025-01-01",
		"data_fim":       "2026-12-31",
		"valor_aluguel":  1500,
		"dia_vencimento": 10,
	})

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), `"status":"ativo"`)
}

func (suite *ContractHandlerTestSuite) TestCreateContract_CrossCompanyTenant() {
	suite.mockService.EXPECT().
		Create(suite.scope, gomock.Any()).
		Return(nil, apperrors.ErrContractTenantScope).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/contracts", map[string]interface{}{"locatario_id": 4})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "tenant belongs to a different company")
}

func (suite *ContractHandlerTestSuite) TestListContracts_StatusFilter() {
	tenantID := uint(4)
	suite.mockService.EXPECT().
		List(suite.scope, &service.ContractListRequest{
			TenantID:  &tenantID,
			Status:    "a_vencer",
			StartFrom: "2025-01-01",
		}).
		Return(&service.ContractListResponse{
			Data:     []service.ContractResponse{{ID: 1, Status: "a_vencer", TenantName: "Carlos Lima"}},
			Total:    1,
			Page:     1,
			PageSize: 20,
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/contracts?locatario_id=4&status=a_vencer&data_inicio_de=2025-01-01", nil)

	var response service.ContractListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Carlos Lima", response.Data[0].TenantName)
}

func (suite *ContractHandlerTestSuite) TestUpdateContract_KeepsOmittedFields() {
	suite.mockService.EXPECT().
		Update(suite.scope, uint(1), gomock.Any()).
		DoAndReturn(func(_ scope.Scope, _ uint, req *service.UpdateContractRequest) (*service.ContractResponse, error) {
			require.NotNil(suite.T(), req.RentAmount)
			assert.Equal(suite.T(), 1850.0, *req.RentAmount)
			assert.Nil(suite.T(), req.Bonus)
			return &service.ContractResponse{ID: 1, RentAmount: 1850, Bonus: 100}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/contracts/1", map[string]interface{}{"valor_aluguel": 1850})

	var response struct {
		Data service.ContractResponse `json:"data"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), 1850.0, response.Data.RentAmount)
	assert.Equal(suite.T(), 100.0, response.Data.Bonus)
}

func (suite *ContractHandlerTestSuite) TestUpdateContract_DateRange() {
	suite.mockService.EXPECT().
		Update(suite.scope, uint(1), gomock.Any()).
		Return(nil, apperrors.ErrInvalidDateRange).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/contracts/1", map[string]interface{}{"data_fim": "2020-01-01"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "data_fim")
}

func (suite *ContractHandlerTestSuite) TestGetContract_NotFound() {
	suite.mockService.EXPECT().
		GetByID(suite.scope, uint(99)).
		Return(nil, apperrors.ErrContractNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/contracts/99", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "contract not found")
}

func TestContractHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ContractHandlerTestSuite))
}
