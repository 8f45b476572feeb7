package models

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Settlement (prestação de contas) reconciles one month of rent received for a
// contract against the amount passed to the landlord. One per contract and month.
type Settlement struct {
	BaseModel
	CompanyScoped
	ContractID          uint    `json:"contrato_id" gorm:"column:contrato_id;not null;uniqueIndex:idx_prestacao_contrato_mes"`
	ReferenceMonth      string  `json:"mes_referencia" gorm:"column:mes_referencia;size:7;not null;uniqueIndex:idx_prestacao_contrato_mes"`
	Period              int     `json:"-" gorm:"column:periodo;not null;index"`
	AmountReceived      float64 `json:"valor_recebido" gorm:"column:valor_recebido;type:decimal(12,2);not null"`
	AmountPassedThrough float64 `json:"valor_repassado" gorm:"column:valor_repassado;type:decimal(12,2);not null"`
	Fees                float64 `json:"taxas" gorm:"column:taxas;type:decimal(12,2);not null"`
	Notes               string  `json:"observacoes" gorm:"column:observacoes;type:text"`

	// Relationships
	Contract *Contract `json:"contrato,omitempty" gorm:"foreignKey:ContractID"`
}

// TableName returns the table name for Settlement
func (Settlement) TableName() string {
	return "prestacoes_contas"
}

// BeforeSave derives the sortable period (YYYYMM) from the reference month
func (s *Settlement) BeforeSave(tx *gorm.DB) error {
	year, month, err := ParseReferenceMonth(s.ReferenceMonth)
	if err != nil {
		return err
	}
	s.Period = year*100 + month
	return nil
}

// ParseReferenceMonth parses an "MM/YYYY" reference month
func ParseReferenceMonth(ref string) (year, month int, err error) {
	parts := strings.Split(ref, "/")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 4 {
		return 0, 0, fmt.Errorf("invalid reference month %q: expected MM/YYYY", ref)
	}
	month, err = strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid reference month %q: month must be 01-12", ref)
	}
	year, err = strconv.Atoi(parts[1])
	if err != nil || year < 1900 {
		return 0, 0, fmt.Errorf("invalid reference month %q: bad year", ref)
	}
	return year, month, nil
}
