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

// LandlordHandlerTestSuite defines the test suite for LandlordHandler
type LandlordHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockLandlordServiceInterface
	handler     *LandlordHandler
	httpSuite   *testutils.HTTPTestSuite
	scope       scope.Scope
}

func (suite *LandlordHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockLandlordServiceInterface(suite.ctrl)
	suite.handler = NewLandlordHandler(suite.mockService)
	suite.scope = scope.ForCompany(3)

	suite.httpSuite = setupScopedHTTP(suite.scope)
	landlords := suite.httpSuite.Router.Group("/api/v1/landlords")
	{
		landlords.GET("", suite.handler.ListLandlords)
		landlords.POST("", suite.handler.CreateLandlord)
		landlords.GET("/:id", suite.handler.GetLandlord)
		landlords.PATCH("/:id", suite.handler.UpdateLandlord)
		landlords.PUT("/:id", suite.handler.UpdateLandlord)
	}
}

func (suite *LandlordHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LandlordHandlerTestSuite) TestCreateLandlord() {
	expected := &service.LandlordResponse{ID: 7, CompanyID: 3, Name: "Maria Oliveira", TaxID: "12345678901"}

	suite.mockService.EXPECT().
		Create(suite.scope, gomock.Any()).
		DoAndReturn(func(_ scope.Scope, req *service.CreateLandlordRequest) (*service.LandlordResponse, error) {
			assert.Equal(suite.T(), "Maria Oliveira", req.Name)
			assert.Equal(suite.T(), "123.456.789-01", req.TaxID)
			return expected, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/landlords", map[string]interface{}{
		"nome":     "Maria Oliveira",
		"cpf_cnpj": "123.456.789-01",
	})

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
	var response struct {
		Data service.LandlordResponse `json:"data"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), uint(7), response.Data.ID)
	assert.Equal(suite.T(), uint(3), response.Data.CompanyID)
}

func (suite *LandlordHandlerTestSuite) TestCreateLandlord_InvalidJSON() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/landlords", "not an object")

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid request body")
}

func (suite *LandlordHandlerTestSuite) TestCreateLandlord_ValidationError() {
	suite.mockService.EXPECT().
		Create(suite.scope, gomock.Any()).
		Return(nil, apperrors.NewValidationError("nome", "validation failed on the 'required' rule")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/landlords", map[string]interface{}{})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "nome")
}

func (suite *LandlordHandlerTestSuite) TestGetLandlord() {
	suite.mockService.EXPECT().
		GetByID(suite.scope, uint(7)).
		Return(&service.LandlordResponse{ID: 7, Name: "Maria Oliveira"}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/landlords/7", nil)

	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK)
	assert.Contains(suite.T(), recorder.Body.String(), `"nome":"Maria Oliveira"`)
}

func (suite *LandlordHandlerTestSuite) TestGetLandlord_InvalidID() {
	for _, id := range []string{"abc", "0", "-1"} {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/landlords/"+id, nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid landlord id")
	}
}

func (suite *LandlordHandlerTestSuite) TestGetLandlord_OtherCompany() {
	suite.mockService.EXPECT().
		GetByID(suite.scope, uint(8)).
		Return(nil, apperrors.ErrLandlordNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/landlords/8", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "landlord not found")
}

func (suite *LandlordHandlerTestSuite) TestListLandlords_BindsFilters() {
	suite.mockService.EXPECT().
		List(suite.scope, &service.LandlordListRequest{
			Name:         "silva",
			City:         "Campinas",
			PayoutMethod: "pix",
			Page:         2,
			PageSize:     10,
		}).
		Return(&service.LandlordListResponse{
			Data:     []service.LandlordResponse{{ID: 1, Name: "Ana Silva"}},
			Total:    11,
			Page:     2,
			PageSize: 10,
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/landlords?nome=silva&cidade=Campinas&forma_repasse=pix&page=2&page_size=10", nil)

	var response service.LandlordListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), int64(11), response.Total)
	assert.Equal(suite.T(), 2, response.Page)
}

func (suite *LandlordHandlerTestSuite) TestListLandlords_BadPage() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/landlords?page=first", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid query parameters")
}

func (suite *LandlordHandlerTestSuite) TestUpdateLandlord_PatchAndPut() {
	for _, method := range []string{http.MethodPatch, http.MethodPut} {
		suite.mockService.EXPECT().
			Update(suite.scope, uint(7), gomock.Any()).
			DoAndReturn(func(_ scope.Scope, _ uint, req *service.UpdateLandlordRequest) (*service.LandlordResponse, error) {
				require.NotNil(suite.T(), req.City)
				assert.Equal(suite.T(), "Santos", *req.City)
				assert.Nil(suite.T(), req.Name)
				return &service.LandlordResponse{ID: 7, Name: "Maria Oliveira", City: "Santos"}, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(method, "/api/v1/landlords/7", map[string]interface{}{"cidade": "Santos"})

		assert.Equal(suite.T(), http.StatusOK, recorder.Code, method)
	}
}

func (suite *LandlordHandlerTestSuite) TestUpdateLandlord_NoFields() {
	suite.mockService.EXPECT().
		Update(suite.scope, uint(7), gomock.Any()).
		Return(nil, apperrors.ErrNoFieldsToUpdate).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/landlords/7", map[string]interface{}{})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "no fields to update")
}

func TestLandlordHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LandlordHandlerTestSuite))
}
