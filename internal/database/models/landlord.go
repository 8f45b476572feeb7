package models

// Landlord (locador) owns properties and receives the rent passed through
type Landlord struct {
	BaseModel
	CompanyScoped
	Name                   string       `json:"nome" gorm:"column:nome;size:150;not null"`
	TaxID                  string       `json:"cpf_cnpj" gorm:"column:cpf_cnpj;size:18;index"`
	PersonType             PersonType   `json:"tipo_pessoa" gorm:"column:tipo_pessoa;size:10"`
	Email                  string       `json:"email" gorm:"column:email;size:150"`
	Phone                  string       `json:"telefone" gorm:"column:telefone;size:30"`
	Address                string       `json:"endereco" gorm:"column:endereco;size:255"`
	City                   string       `json:"cidade" gorm:"column:cidade;size:100"`
	State                  string       `json:"estado" gorm:"column:estado;size:2"`
	PayoutMethod           PayoutMethod `json:"forma_repasse" gorm:"column:forma_repasse;size:20"`
	Bank                   string       `json:"banco" gorm:"column:banco;size:100"`
	Branch                 string       `json:"agencia" gorm:"column:agencia;size:20"`
	Account                string       `json:"conta" gorm:"column:conta;size:30"`
	PixKey                 string       `json:"chave_pix" gorm:"column:chave_pix;size:150"`
	FireInsurance          bool         `json:"seguro_incendio" gorm:"column:seguro_incendio;not null;default:false"`
	RentGuaranteeInsurance bool         `json:"seguro_fianca" gorm:"column:seguro_fianca;not null;default:false"`
	Notes                  string       `json:"observacoes" gorm:"column:observacoes;type:text"`

	// Relationships
	Properties []Property `json:"imoveis,omitempty" gorm:"foreignKey:LandlordID"`
}

// TableName returns the table name for Landlord
func (Landlord) TableName() string {
	return "locadores"
}
