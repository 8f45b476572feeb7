package models

// Tenant (locatário) rents properties under contracts
type Tenant struct {
	BaseModel
	CompanyScoped
	Name          string     `json:"nome" gorm:"column:nome;size:150;not null"`
	TaxID         string     `json:"cpf_cnpj" gorm:"column:cpf_cnpj;size:18;index"`
	PersonType    PersonType `json:"tipo_pessoa" gorm:"column:tipo_pessoa;size:10"`
	IDNumber      string     `json:"rg" gorm:"column:rg;size:20"`
	Email         string     `json:"email" gorm:"column:email;size:150"`
	Phone         string     `json:"telefone" gorm:"column:telefone;size:30"`
	Address       string     `json:"endereco" gorm:"column:endereco;size:255"`
	City          string     `json:"cidade" gorm:"column:cidade;size:100"`
	State         string     `json:"estado" gorm:"column:estado;size:2"`
	Occupation    string     `json:"profissao" gorm:"column:profissao;size:100"`
	MonthlyIncome float64    `json:"renda_mensal" gorm:"column:renda_mensal;type:decimal(12,2);not null;default:0"`
	Notes         string     `json:"observacoes" gorm:"column:observacoes;type:text"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "locatarios"
}
