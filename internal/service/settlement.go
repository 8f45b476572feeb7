package service

import (
	"context"
	"fmt"
	"time"

	"imobiliaria-backend/internal/database/models"
	apperrors "imobiliaria-backend/internal/errors"
	"imobiliaria-backend/internal/logger"
	"imobiliaria-backend/internal/repository"
	"imobiliaria-backend/internal/scope"

	"github.com/go-playground/validator/v10"
)

// SettlementService records and reads monthly settlement records
type SettlementService struct {
	repo         repository.SettlementRepositoryInterface
	contractRepo repository.ContractRepositoryInterface
	validator    *validator.Validate
}

// NewSettlementService creates a new settlement service
func NewSettlementService(repo repository.SettlementRepositoryInterface, contractRepo repository.ContractRepositoryInterface, validator *validator.Validate) *SettlementService {
	return &SettlementService{
		repo:         repo,
		contractRepo: contractRepo,
		validator:    validator,
	}
}

// RecordSettlementRequest represents the request to record a settlement
type RecordSettlementRequest struct {
	ContractID          uint    `json:"contrato_id" validate:"required,gt=0"`
	ReferenceMonth      string  `json:"mes_referencia" validate:"required"`
	AmountReceived      float64 `json:"valor_recebido" validate:"gte=0"`
	AmountPassedThrough float64 `json:"valor_repassado" validate:"gte=0"`
	Fees                float64 `json:"taxas" validate:"gte=0"`
	Notes               string  `json:"observacoes"`
}

// SettlementResponse represents the response for settlement operations
type SettlementResponse struct {
	ID                  uint      `json:"id"`
	CompanyID           uint      `json:"empresa_id"`
	ContractID          uint      `json:"contrato_id"`
	ReferenceMonth      string    `json:"mes_referencia"`
	AmountReceived      float64   `json:"valor_recebido"`
	AmountPassedThrough float64   `json:"valor_repassado"`
	Fees                float64   `json:"taxas"`
	Notes               string    `json:"observacoes"`
	CreatedAt           time.Time `json:"created_at"`
}

// SettlementListResponse represents a paginated list of settlements
type SettlementListResponse struct {
	Data     []SettlementResponse `json:"data"`
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
}

// Record appends a settlement for a contract visible to the caller. Negative
// amounts and malformed months are rejected before anything is written.
func (s *SettlementService) Record(ctx context.Context, sc scope.Scope, req *RecordSettlementRequest) (*SettlementResponse, error) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"contract_id":     req.ContractID,
		"reference_month": req.ReferenceMonth,
	})

	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	if _, _, err := models.ParseReferenceMonth(req.ReferenceMonth); err != nil {
		return nil, apperrors.ErrInvalidReferenceMonth
	}

	settlement := &models.Settlement{
		ContractID:          req.ContractID,
		ReferenceMonth:      req.ReferenceMonth,
		AmountReceived:      req.AmountReceived,
		AmountPassedThrough: req.AmountPassedThrough,
		Fees:                req.Fees,
		Notes:               req.Notes,
	}
	if err := s.repo.Record(settlement, sc); err != nil {
		log.WithError(err).Warn("Settlement not recorded")
		return nil, fmt.Errorf("failed to record settlement: %w", err)
	}

	log.WithField("settlement_id", settlement.ID).Info("Settlement recorded")
	return s.toResponse(settlement), nil
}

// GetByID retrieves a settlement visible to the caller
func (s *SettlementService) GetByID(sc scope.Scope, id uint) (*SettlementResponse, error) {
	settlement, err := s.repo.GetByID(id, sc)
	if err != nil {
		return nil, notFound(err, apperrors.ErrSettlementNotFound, "get settlement")
	}
	return s.toResponse(settlement), nil
}

// ListByContract retrieves a contract's settlements, most recent month first
func (s *SettlementService) ListByContract(sc scope.Scope, contractID uint, page, pageSize int) (*SettlementListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)

	if _, err := s.contractRepo.GetByID(contractID, sc); err != nil {
		return nil, notFound(err, apperrors.ErrContractNotFound, "verify contract")
	}

	settlements, total, err := s.repo.ListByContract(contractID, sc, pageSize, offsetOf(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}

	responses := make([]SettlementResponse, len(settlements))
	for i := range settlements {
		responses[i] = *s.toResponse(&settlements[i])
	}

	return &SettlementListResponse{
		Data:     responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// toResponse converts a settlement model to response
func (s *SettlementService) toResponse(settlement *models.Settlement) *SettlementResponse {
	return &SettlementResponse{
		ID:                  settlement.ID,
		CompanyID:           settlement.CompanyID,
		ContractID:          settlement.ContractID,
		ReferenceMonth:      settlement.ReferenceMonth,
		AmountReceived:      settlement.AmountReceived,
		AmountPassedThrough: settlement.AmountPassedThrough,
		Fees:                settlement.Fees,
		Notes:               settlement.Notes,
		CreatedAt:           settlement.CreatedAt,
	}
}
