package handlers

import (
	"errors"
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

func TestPropertyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockPropertyServiceInterface(ctrl)
	handler := NewPropertyHandler(mockService)
	s := scope.ForCompany(3)

	httpSuite := setupScopedHTTP(s)
	httpSuite.Router.GET("/api/v1/properties", handler.ListProperties)
	httpSuite.Router.POST("/api/v1/properties", handler.CreateProperty)
	httpSuite.Router.GET("/api/v1/properties/:id", handler.GetProperty)
	httpSuite.Router.PUT("/api/v1/properties/:id", handler.UpdateProperty)

	t.Run("create with foreign landlord", func(t *testing.T) {
		mockService.EXPECT().
			Create(s, gomock.Any()).
			Return(nil, apperrors.ErrPropertyLandlordScope)

		recorder := httpSuite.MakeRequest(http.MethodPost, "/api/v1/properties", map[string]interface{}{
			"locador_id": 2,
			"endereco":   "Rua Augusta, 100",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "landlord belongs to a different company")
	})

	t.Run("list by landlord", func(t *testing.T) {
		landlordID := uint(2)
		mockService.EXPECT().
			List(s, &service.PropertyListRequest{LandlordID: &landlordID, Type: "apartamento"}).
			Return(&service.PropertyListResponse{
				Data:  []service.PropertyResponse{{ID: 9, Address: "Rua Augusta, 100"}},
				Total: 1,
			}, nil)

		recorder := httpSuite.MakeRequest(http.MethodGet, "/api/v1/properties?locador_id=2&tipo=apartamento", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Rua Augusta, 100")
	})

	t.Run("invalid landlord filter", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/api/v1/properties?locador_id=x", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("get unavailable database", func(t *testing.T) {
		mockService.EXPECT().
			GetByID(s, uint(9)).
			Return(nil, apperrors.NewConnectionError("query", errors.New("connection refused")))

		recorder := httpSuite.MakeRequest(http.MethodGet, "/api/v1/properties/9", nil)

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	})

	t.Run("put applies partial update", func(t *testing.T) {
		district := "Consolação"
		mockService.EXPECT().
			Update(s, uint(9), &service.UpdatePropertyRequest{District: &district}).
			Return(&service.PropertyResponse{ID: 9, District: district}, nil)

		recorder := httpSuite.MakeRequest(http.MethodPut, "/api/v1/properties/9", map[string]interface{}{"bairro": district})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
