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
	"go.uber.org/mock/gomock"
)

func TestTenantHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockTenantServiceInterface(ctrl)
	handler := NewTenantHandler(mockService)
	s := scope.ForCompany(5)

	httpSuite := setupScopedHTTP(s)
	httpSuite.Router.GET("/api/v1/tenants", handler.ListTenants)
	httpSuite.Router.POST("/api/v1/tenants", handler.CreateTenant)
	httpSuite.Router.GET("/api/v1/tenants/:id", handler.GetTenant)
	httpSuite.Router.PATCH("/api/v1/tenants/:id", handler.UpdateTenant)

	t.Run("create", func(t *testing.T) {
		mockService.EXPECT().
			Create(s, &service.CreateTenantRequest{Name: "Carlos Lima", Email: "carlos@mail.com"}).
			Return(&service.TenantResponse{ID: 4, CompanyID: 5, Name: "Carlos Lima"}, nil)

		recorder := httpSuite.MakeRequest(http.MethodPost, "/api/v1/tenants", map[string]interface{}{
			"nome":  "Carlos Lima",
			"email": "carlos@mail.com",
		})

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"empresa_id":5`)
	})

	t.Run("list by tax id", func(t *testing.T) {
		mockService.EXPECT().
			List(s, &service.TenantListRequest{TaxID: "98765432100"}).
			Return(&service.TenantListResponse{Data: []service.TenantResponse{}, Page: 1, PageSize: 20}, nil)

		recorder := httpSuite.MakeRequest(http.MethodGet, "/api/v1/tenants?cpf_cnpj=98765432100", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("get missing", func(t *testing.T) {
		mockService.EXPECT().GetByID(s, uint(4)).Return(nil, apperrors.ErrTenantNotFound)

		recorder := httpSuite.MakeRequest(http.MethodGet, "/api/v1/tenants/4", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "tenant not found")
	})

	t.Run("update", func(t *testing.T) {
		phone := "11 99999-0000"
		mockService.EXPECT().
			Update(s, uint(4), &service.UpdateTenantRequest{Phone: &phone}).
			Return(&service.TenantResponse{ID: 4, Phone: phone}, nil)

		recorder := httpSuite.MakeRequest(http.MethodPatch, "/api/v1/tenants/4", map[string]interface{}{"telefone": phone})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
