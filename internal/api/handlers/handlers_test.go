package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"imobiliaria-backend/internal/auth"
	apperrors "imobiliaria-backend/internal/errors"
	"imobiliaria-backend/internal/scope"
	"imobiliaria-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// setupScopedHTTP returns a test router whose requests run under s, standing
// in for the JWT middleware
func setupScopedHTTP(s scope.Scope) *testutils.HTTPTestSuite {
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.Use(func(c *gin.Context) {
		auth.SetScope(c, s)
		c.Next()
	})
	return httpSuite
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperrors.NewValidationError("nome", "required"), http.StatusBadRequest},
		{"no fields", apperrors.ErrNoFieldsToUpdate, http.StatusBadRequest},
		{"not found", apperrors.ErrLandlordNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("get: %w", apperrors.ErrContractNotFound), http.StatusNotFound},
		{"already exists", apperrors.ErrSettlementExists, http.StatusConflict},
		{"constraint", apperrors.ErrContractTenantScope, http.StatusConflict},
		{"authentication", apperrors.ErrInvalidToken, http.StatusUnauthorized},
		{"authorization", apperrors.ErrScopeMissing, http.StatusForbidden},
		{"connection", apperrors.NewConnectionError("query", errors.New("refused")), http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestRespondError_HidesInternals(t *testing.T) {
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/fail", func(c *gin.Context) {
		respondError(c, errors.New("pq: relation does not exist"), "failed to list landlords")
	})

	recorder := httpSuite.MakeRequest(http.MethodGet, "/fail", nil)

	testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "failed to list landlords")
	assert.NotContains(t, recorder.Body.String(), "relation")
}

func TestPathID(t *testing.T) {
	tests := []struct {
		value  string
		wantID uint
		wantOK bool
	}{
		{"42", 42, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			ctx, recorder := testutils.NewTestContext(http.MethodGet, "/api/v1/contracts/"+tt.value, nil)
			testutils.WithParam(ctx, "id", tt.value)

			id, ok := pathID(ctx, "id", "contract")

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
			if !tt.wantOK {
				testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid contract id")
			}
		})
	}
}

func TestBindJSON_Malformed(t *testing.T) {
	ctx, recorder := testutils.NewTestContext(http.MethodPost, "/api/v1/tenants", `{"nome": `)

	var req struct {
		Name string `json:"nome"`
	}
	assert.False(t, bindJSON(ctx, &req))
	testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid request body")
}

func TestBindQuery(t *testing.T) {
	var req struct {
		Name string `form:"nome"`
		Page int    `form:"page"`
	}

	ctx, _ := testutils.NewTestContext(http.MethodGet, "/api/v1/tenants?nome=ana&page=2", nil)
	assert.True(t, bindQuery(ctx, &req))
	assert.Equal(t, "ana", req.Name)
	assert.Equal(t, 2, req.Page)

	ctx, recorder := testutils.NewTestContext(http.MethodGet, "/api/v1/tenants?page=two", nil)
	assert.False(t, bindQuery(ctx, &req))
	testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid query parameters")
}
