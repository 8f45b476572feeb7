package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	apperrors "imobiliaria-backend/internal/errors"
	"imobiliaria-backend/internal/scope"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer is the iss claim of tokens minted by this service
const Issuer = "imobiliaria-backend"

// DefaultTokenTTL is the lifetime of issued tokens when none is given
const DefaultTokenTTL = time.Hour

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID          uint   `json:"user_id" example:"12"`
	Email           string `json:"email" example:"ana@imob.com.br"`
	Name            string `json:"name,omitempty" example:"Ana Souza"`
	CompanyID       *uint  `json:"company_id,omitempty" example:"3"`
	SeeAllCompanies bool   `json:"see_all_companies,omitempty" example:"false"`
	// Standard JWT fields
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// Identity describes the caller a token is issued for
type Identity struct {
	UserID          uint
	Email           string
	Name            string
	CompanyID       *uint
	SeeAllCompanies bool
}

// AuthService issues and validates access tokens and resolves the caller's scope
type AuthService struct {
	secret           []byte
	defaultCompanyID uint
	now              func() time.Time
}

// NewAuthService creates a new auth service. A zero defaultCompanyID falls
// back to scope.DefaultCompanyID.
func NewAuthService(secret string, defaultCompanyID uint) *AuthService {
	if defaultCompanyID == 0 {
		defaultCompanyID = scope.DefaultCompanyID
	}
	return &AuthService{
		secret:           []byte(secret),
		defaultCompanyID: defaultCompanyID,
		now:              time.Now,
	}
}

// GenerateJWT creates a signed token for the identity valid for ttl
func (s *AuthService) GenerateJWT(identity Identity, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	now := s.now()
	claims := &AuthClaims{
		UserID:          identity.UserID,
		Email:           identity.Email,
		Name:            identity.Name,
		CompanyID:       identity.CompanyID,
		SeeAllCompanies: identity.SeeAllCompanies,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    Issuer,
			Subject:   strconv.FormatUint(uint64(identity.UserID), 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.NewAuthenticationError("token expired")
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}

// ScopeFor resolves the company scope the claims grant
func (s *AuthService) ScopeFor(claims *AuthClaims) scope.Scope {
	return scope.Resolve(claims.CompanyID, claims.SeeAllCompanies, s.defaultCompanyID)
}
