package models

// PayoutMethod defines how rent collected is forwarded to a landlord
type PayoutMethod string

const (
	PayoutMethodPix           PayoutMethod = "pix"
	PayoutMethodBoleto        PayoutMethod = "boleto"
	PayoutMethodTransferencia PayoutMethod = "transferencia"
	PayoutMethodDeposito      PayoutMethod = "deposito"
)

// PersonType distinguishes individuals (CPF) from legal entities (CNPJ)
type PersonType string

const (
	PersonTypeFisica   PersonType = "fisica"
	PersonTypeJuridica PersonType = "juridica"
)

// PropertyType defines the kinds of rentable property
type PropertyType string

const (
	PropertyTypeCasa        PropertyType = "casa"
	PropertyTypeApartamento PropertyType = "apartamento"
	PropertyTypeComercial   PropertyType = "comercial"
	PropertyTypeTerreno     PropertyType = "terreno"
	PropertyTypeOutro       PropertyType = "outro"
)

// AdjustmentIndex defines the inflation index a contract's rent follows
type AdjustmentIndex string

const (
	AdjustmentIndexIGPM  AdjustmentIndex = "IGPM"
	AdjustmentIndexIPCA  AdjustmentIndex = "IPCA"
	AdjustmentIndexOutro AdjustmentIndex = "outro"
)

// ContractStatus is derived from a contract's end date
type ContractStatus string

const (
	ContractStatusActive   ContractStatus = "ativo"
	ContractStatusExpiring ContractStatus = "a_vencer"
	ContractStatusEnded    ContractStatus = "encerrado"
)

// IsValid checks if the PayoutMethod is valid
func (p PayoutMethod) IsValid() bool {
	switch p {
	case PayoutMethodPix, PayoutMethodBoleto, PayoutMethodTransferencia, PayoutMethodDeposito:
		return true
	}
	return false
}

// IsValid checks if the PersonType is valid
func (p PersonType) IsValid() bool {
	switch p {
	case PersonTypeFisica, PersonTypeJuridica:
		return true
	}
	return false
}

// IsValid checks if the PropertyType is valid
func (p PropertyType) IsValid() bool {
	switch p {
	case PropertyTypeCasa, PropertyTypeApartamento, PropertyTypeComercial, PropertyTypeTerreno, PropertyTypeOutro:
		return true
	}
	return false
}

// IsValid checks if the AdjustmentIndex is valid
func (a AdjustmentIndex) IsValid() bool {
	switch a {
	case AdjustmentIndexIGPM, AdjustmentIndexIPCA, AdjustmentIndexOutro:
		return true
	}
	return false
}

// IsValid checks if the ContractStatus is valid
func (s ContractStatus) IsValid() bool {
	switch s {
	case ContractStatusActive, ContractStatusExpiring, ContractStatusEnded:
		return true
	}
	return false
}
