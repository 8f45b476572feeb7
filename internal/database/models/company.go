package models

// Company is a managing real-estate company; it partitions every other record
type Company struct {
	BaseModel
	Name  string `json:"nome" gorm:"column:nome;size:150;not null" validate:"required,max=150"`
	TaxID string `json:"cnpj" gorm:"column:cnpj;size:18;index" validate:"max=18"`
}

// TableName returns the table name for Company
func (Company) TableName() string {
	return "empresas"
}
