package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "imobiliaria-backend/internal/errors"
	"imobiliaria-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

func TestJWTOperations(t *testing.T) {
	service := NewAuthService("test-secret", 1)

	t.Run("round trip keeps company claims", func(t *testing.T) {
		token, err := service.GenerateJWT(Identity{
			UserID:    12,
			Email:     "ana@imob.com.br",
			Name:      "Ana Souza",
			CompanyID: uintPtr(3),
		}, time.Hour)
		require.NoError(t, err)

		claims, err := service.ValidateJWT(token)
		require.NoError(t, err)
		assert.Equal(t, uint(12), claims.UserID)
		assert.Equal(t, "ana@imob.com.br", claims.Email)
		require.NotNil(t, claims.CompanyID)
		assert.Equal(t, uint(3), *claims.CompanyID)
		assert.False(t, claims.SeeAllCompanies)
		assert.Equal(t, Issuer, claims.Issuer)
		assert.Equal(t, "12", claims.Subject)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewAuthService("other-secret", 1)
		token, err := other.GenerateJWT(Identity{UserID: 1}, time.Hour)
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.True(t, apperrors.IsAuthentication(err))
	})

	t.Run("expired token", func(t *testing.T) {
		past := NewAuthService("test-secret", 1)
		past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := past.GenerateJWT(Identity{UserID: 1}, time.Hour)
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		require.Error(t, err)
		assert.True(t, apperrors.IsAuthentication(err))
		assert.Contains(t, err.Error(), "expired")
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, &AuthClaims{UserID: 1})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = service.ValidateJWT(signed)
		assert.True(t, apperrors.IsAuthentication(err))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := service.ValidateJWT("not-a-token")
		assert.True(t, apperrors.IsAuthentication(err))
	})
}

func TestScopeFor(t *testing.T) {
	service := NewAuthService("test-secret", 7)

	s := service.ScopeFor(&AuthClaims{CompanyID: uintPtr(3)})
	assert.Equal(t, uint(3), s.CompanyID())
	assert.False(t, s.SeesAll())

	s = service.ScopeFor(&AuthClaims{})
	assert.Equal(t, uint(7), s.CompanyID(), "missing company falls back to the configured default")

	s = service.ScopeFor(&AuthClaims{CompanyID: uintPtr(5), SeeAllCompanies: true})
	assert.Equal(t, uint(5), s.CompanyID())
	assert.True(t, s.SeesAll())

	assert.Equal(t, uint(1), NewAuthService("x", 0).ScopeFor(&AuthClaims{}).CompanyID())
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := NewAuthService("test-secret", 1)
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/me", middleware.RequireAuth(), func(c *gin.Context) {
		s := GetScope(c)
		claims, ok := GetAuthClaims(c)
		require.True(t, ok)
		company, _ := c.Request.Context().Value(logger.CompanyKey).(uint)
		user, _ := c.Request.Context().Value(logger.UserKey).(string)
		c.JSON(http.StatusOK, gin.H{
			"company_id":  s.CompanyID(),
			"see_all":     s.SeesAll(),
			"email":       claims.Email,
			"ctx_company": company,
			"ctx_user":    user,
		})
	})

	do := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("missing header", func(t *testing.T) {
		w := do("")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("not a bearer header", func(t *testing.T) {
		w := do("Basic abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		w := do("Bearer nope")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Contains(t, body["error"], "invalid token")
	})

	t.Run("valid token resolves scope", func(t *testing.T) {
		token, err := service.GenerateJWT(Identity{UserID: 2, Email: "bia@imob.com.br", CompanyID: uintPtr(3)}, time.Hour)
		require.NoError(t, err)

		w := do("Bearer " + token)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, float64(3), body["company_id"])
		assert.Equal(t, false, body["see_all"])
		assert.Equal(t, "bia@imob.com.br", body["email"])
		assert.Equal(t, float64(3), body["ctx_company"])
		assert.Equal(t, "bia@imob.com.br", body["ctx_user"])
	})

	t.Run("token without company uses default", func(t *testing.T) {
		token, err := service.GenerateJWT(Identity{UserID: 9, SeeAllCompanies: true}, time.Hour)
		require.NoError(t, err)

		w := do("Bearer " + token)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, float64(1), body["company_id"])
		assert.Equal(t, true, body["see_all"])
	})
}

func TestGetScope_WithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.False(t, GetScope(c).Valid())
	_, ok := GetAuthClaims(c)
	assert.False(t, ok)
}
