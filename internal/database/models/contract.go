package models

import (
	"time"
)

// expiringWindow is how close to its end date an active contract is reported as expiring
const expiringWindow = 30 * 24 * time.Hour

// Contract (contrato) binds one tenant to one property for a period.
// Tenant, property and contract always share the same company.
type Contract struct {
	BaseModel
	CompanyScoped
	TenantID               uint            `json:"locatario_id" gorm:"column:locatario_id;not null;index"`
	PropertyID             uint            `json:"imovel_id" gorm:"column:imovel_id;not null;index"`
	StartDate              time.Time       `json:"data_inicio" gorm:"column:data_inicio;not null;index"`
	EndDate                time.Time       `json:"data_fim" gorm:"column:data_fim;not null;index"`
	RentAmount             float64         `json:"valor_aluguel" gorm:"column:valor_aluguel;type:decimal(12,2);not null"`
	AdminFee               float64         `json:"taxa_administracao" gorm:"column:taxa_administracao;type:decimal(5,2);not null;default:0"`
	Bonus                  float64         `json:"bonificacao" gorm:"column:bonificacao;type:decimal(12,2);not null;default:0"`
	AdjustmentIndex        AdjustmentIndex `json:"indice_reajuste" gorm:"column:indice_reajuste;size:10"`
	AdjustmentPercent      float64         `json:"percentual_reajuste" gorm:"column:percentual_reajuste;type:decimal(5,2);not null;default:0"`
	DueDay                 int             `json:"dia_vencimento" gorm:"column:dia_vencimento;not null"`
	AutoRenewal            bool            `json:"renovacao_automatica" gorm:"column:renovacao_automatica;not null;default:false"`
	FireInsurance          bool            `json:"seguro_incendio" gorm:"column:seguro_incendio;not null;default:false"`
	RentGuaranteeInsurance bool            `json:"seguro_fianca" gorm:"column:seguro_fianca;not null;default:false"`
	Clauses                string          `json:"clausulas" gorm:"column:clausulas;type:text"`

	// Relationships
	Tenant   *Tenant   `json:"locatario,omitempty" gorm:"foreignKey:TenantID"`
	Property *Property `json:"imovel,omitempty" gorm:"foreignKey:PropertyID"`
}

// TableName returns the table name for Contract
func (Contract) TableName() string {
	return "contratos"
}

// Status derives the contract status at the given instant
func (c *Contract) Status(now time.Time) ContractStatus {
	switch {
	case c.EndDate.Before(now):
		return ContractStatusEnded
	case c.EndDate.Sub(now) <= expiringWindow:
		return ContractStatusExpiring
	default:
		return ContractStatusActive
	}
}

// ExpiringCutoff returns the end date up to which an active contract counts as expiring
func ExpiringCutoff(now time.Time) time.Time {
	return now.Add(expiringWindow)
}
