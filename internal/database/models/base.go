package models

import (
	"time"
)

// BaseModel provides common fields for all models with auto-increment primary keys
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by" gorm:"size:100" validate:"max=100"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy string    `json:"updated_by" gorm:"size:100" validate:"max=100"`
}

// CompanyScoped is embedded by every record owned by a managing company
type CompanyScoped struct {
	CompanyID uint `json:"empresa_id" gorm:"column:empresa_id;not null;index"`
}

// OwnerCompanyID returns the company that owns the record
func (c CompanyScoped) OwnerCompanyID() uint {
	return c.CompanyID
}
