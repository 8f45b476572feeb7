package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	apperrors "imobiliaria-backend/internal/errors"
	"imobiliaria-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// NewValidator returns a validator reporting fields by their JSON names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validate runs struct validation and reports the first failing field as a ValidationError
func validate(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(fe.Field(), fmt.Sprintf("validation failed on the '%s' rule", fe.Tag()))
	}
	return apperrors.NewValidationError("", "validation failed: "+err.Error())
}

// normalizePage applies the default page and page size bounds
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return page, pageSize
}

func offsetOf(page, pageSize int) int {
	return (page - 1) * pageSize
}

// notFound translates a missing record into the entity's NotFound sentinel
func notFound(err error, sentinel error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// normalizeTaxID strips a CPF/CNPJ to digits and checks its length
func normalizeTaxID(taxID string) (string, error) {
	if strings.TrimSpace(taxID) == "" {
		return "", nil
	}
	digits := repository.OnlyDigits(taxID)
	if len(digits) != 11 && len(digits) != 14 {
		return "", apperrors.NewValidationError("cpf_cnpj", "must have 11 (CPF) or 14 (CNPJ) digits")
	}
	return digits, nil
}

// normalizeZipCode strips a CEP to digits and checks its length
func normalizeZipCode(cep string) (string, error) {
	if strings.TrimSpace(cep) == "" {
		return "", nil
	}
	digits := repository.OnlyDigits(cep)
	if len(digits) != 8 {
		return "", apperrors.NewValidationError("cep", "must have 8 digits")
	}
	return digits, nil
}

// parseDate parses a calendar date as midnight UTC
func parseDate(field, value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	return t, nil
}

func parseOptionalDate(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := parseDate(field, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(DateLayout)
}

// setIf records column = *v when the request supplied the field
func setIf[T any](updates map[string]interface{}, column string, v *T) {
	if v != nil {
		updates[column] = *v
	}
}

// requireUpdates rejects a partial update that supplies no field
func requireUpdates(updates map[string]interface{}) error {
	if len(updates) == 0 {
		return apperrors.ErrNoFieldsToUpdate
	}
	return nil
}
