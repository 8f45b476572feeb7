package models

// Property (imóvel) is a rentable unit, optionally linked to its landlord
type Property struct {
	BaseModel
	CompanyScoped
	LandlordID    *uint        `json:"locador_id" gorm:"column:locador_id;index"`
	Type          PropertyType `json:"tipo" gorm:"column:tipo;size:20"`
	Address       string       `json:"endereco" gorm:"column:endereco;size:255;not null"`
	Number        string       `json:"numero" gorm:"column:numero;size:20"`
	Complement    string       `json:"complemento" gorm:"column:complemento;size:100"`
	District      string       `json:"bairro" gorm:"column:bairro;size:100"`
	City          string       `json:"cidade" gorm:"column:cidade;size:100"`
	State         string       `json:"estado" gorm:"column:estado;size:2"`
	ZipCode       string       `json:"cep" gorm:"column:cep;size:9"`
	AreaM2        float64      `json:"area_m2" gorm:"column:area_m2;type:decimal(10,2);not null;default:0"`
	Bedrooms      int          `json:"quartos" gorm:"column:quartos;not null;default:0"`
	Bathrooms     int          `json:"banheiros" gorm:"column:banheiros;not null;default:0"`
	ParkingSpots  int          `json:"vagas" gorm:"column:vagas;not null;default:0"`
	SuggestedRent float64      `json:"valor_aluguel_sugerido" gorm:"column:valor_aluguel_sugerido;type:decimal(12,2);not null;default:0"`
	RegistryCode  string       `json:"matricula" gorm:"column:matricula;size:50;index"`
	Description   string       `json:"descricao" gorm:"column:descricao;type:text"`

	// Relationships
	Landlord *Landlord `json:"locador,omitempty" gorm:"foreignKey:LandlordID"`
}

// TableName returns the table name for Property
func (Property) TableName() string {
	return "imoveis"
}
