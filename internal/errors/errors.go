package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this contract and month"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConstraintError represents a referential integrity violation
type ConstraintError struct {
	Constraint string
	Message    string
}

func (e *ConstraintError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("constraint violation: %s - %s", e.Constraint, e.Message)
	}
	return fmt.Sprintf("constraint violation: %s", e.Message)
}

// ConnectionError represents a failure to reach the database
type ConnectionError struct {
	Message string
	Err     error
}

func (e *ConnectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("connection error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("connection error: %s", e.Message)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrCompanyNotFound    = &NotFoundError{Entity: "company"}
	ErrLandlordNotFound   = &NotFoundError{Entity: "landlord"}
	ErrTenantNotFound     = &NotFoundError{Entity: "tenant"}
	ErrPropertyNotFound   = &NotFoundError{Entity: "property"}
	ErrContractNotFound   = &NotFoundError{Entity: "contract"}
	ErrSettlementNotFound = &NotFoundError{Entity: "settlement"}
)

// Already Exists Errors
var (
	ErrSettlementExists = &AlreadyExistsError{Entity: "settlement", Context: "for this contract and reference month"}
)

// Constraint Errors
var (
	ErrContractTenantScope   = &ConstraintError{Constraint: "contract_tenant_company", Message: "tenant belongs to a different company than the contract"}
	ErrContractPropertyScope = &ConstraintError{Constraint: "contract_property_company", Message: "property belongs to a different company than the contract"}
	ErrPropertyLandlordScope = &ConstraintError{Constraint: "property_landlord_company", Message: "landlord belongs to a different company than the property"}
	ErrForeignKeyViolation   = &ConstraintError{Constraint: "foreign_key", Message: "referenced record does not exist"}
)

// Business Logic Errors
var (
	ErrInvalidDateRange      = &ValidationError{Field: "data_fim", Message: "must not be before data_inicio"}
	ErrInvalidReferenceMonth = &ValidationError{Field: "mes_referencia", Message: "must be in MM/YYYY format"}
	ErrSettlementContract    = &ValidationError{Field: "contrato_id", Message: "contract does not exist or is not visible"}
	ErrNoFieldsToUpdate      = &ValidationError{Message: "no fields to update"}
)

// Authentication Errors
var (
	ErrMissingToken = &AuthenticationError{Message: "authorization header is required"}
	ErrInvalidToken = &AuthenticationError{Message: "invalid token"}
	ErrScopeMissing = &AuthorizationError{Message: "company scope is required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConstraint checks if an error is a ConstraintError
func IsConstraint(err error) bool {
	var constraintErr *ConstraintError
	return errors.As(err, &constraintErr)
}

// IsConnection checks if an error is a ConnectionError
func IsConnection(err error) bool {
	var connErr *ConnectionError
	return errors.As(err, &connErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConstraintError creates a new ConstraintError
func NewConstraintError(constraint, message string) error {
	return &ConstraintError{Constraint: constraint, Message: message}
}

// NewConnectionError creates a new ConnectionError wrapping the driver failure
func NewConnectionError(message string, err error) error {
	return &ConnectionError{Message: message, Err: err}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
