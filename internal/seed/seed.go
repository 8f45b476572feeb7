// Package seed loads reference data from YAML files into the database. Every
// record goes through the service layer, so seeded data passes the same
// validation and company checks as API writes. Loading is idempotent: records
// that already exist are skipped.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"imobiliaria-backend/internal/database/models"
	apperrors "imobiliaria-backend/internal/errors"
	"imobiliaria-backend/internal/logger"
	"imobiliaria-backend/internal/repository"
	"imobiliaria-backend/internal/scope"
	"imobiliaria-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// File is the layout of one seed file
type File struct {
	Companies []CompanyData `yaml:"empresas"`
}

// CompanyData is a managing company with the records it owns
type CompanyData struct {
	Name       string         `yaml:"nome"`
	TaxID      string         `yaml:"cnpj"`
	Landlords  []LandlordData `yaml:"locadores"`
	Tenants    []TenantData   `yaml:"locatarios"`
	Properties []PropertyData `yaml:"imoveis"`
	Contracts  []ContractData `yaml:"contratos"`
}

type LandlordData struct {
	Name         string `yaml:"nome"`
	TaxID        string `yaml:"cpf_cnpj"`
	PersonType   string `yaml:"tipo_pessoa"`
	Email        string `yaml:"email"`
	Phone        string `yaml:"telefone"`
	City         string `yaml:"cidade"`
	State        string `yaml:"estado"`
	PayoutMethod string `yaml:"forma_repasse"`
	PixKey       string `yaml:"chave_pix"`
}

type TenantData struct {
	Name          string  `yaml:"nome"`
	TaxID         string  `yaml:"cpf_cnpj"`
	Email         string  `yaml:"email"`
	Phone         string  `yaml:"telefone"`
	City          string  `yaml:"cidade"`
	MonthlyIncome float64 `yaml:"renda_mensal"`
}

// PropertyData references its landlord by CPF/CNPJ
type PropertyData struct {
	LandlordTaxID string  `yaml:"locador_cpf_cnpj"`
	Type          string  `yaml:"tipo"`
	Address       string  `yaml:"endereco"`
	Number        string  `yaml:"numero"`
	District      string  `yaml:"bairro"`
	City          string  `yaml:"cidade"`
	State         string  `yaml:"estado"`
	ZipCode       string  `yaml:"cep"`
	RegistryCode  string  `yaml:"matricula"`
	SuggestedRent float64 `yaml:"valor_aluguel_sugerido"`
}

// ContractData references its tenant by CPF/CNPJ and its property by address
type ContractData struct {
	TenantTaxID     string           `yaml:"locatario_cpf_cnpj"`
	PropertyAddress string           `yaml:"imovel_endereco"`
	StartDate       string           `yaml:"data_inicio"`
	EndDate         string           `yaml:"data_fim"`
	RentAmount      float64          `yaml:"valor_aluguel"`
	AdminFee        float64          `yaml:"taxa_administracao"`
	Bonus           float64          `yaml:"bonificacao"`
	AdjustmentIndex string           `yaml:"indice_reajuste"`
	DueDay          int              `yaml:"dia_vencimento"`
	Settlements     []SettlementData `yaml:"prestacoes"`
}

type SettlementData struct {
	ReferenceMonth      string  `yaml:"mes_referencia"`
	AmountReceived      float64 `yaml:"valor_recebido"`
	AmountPassedThrough float64 `yaml:"valor_repassado"`
	Fees                float64 `yaml:"taxas"`
}

// Counts tracks created and skipped records of one kind
type Counts struct {
	Created int
	Skipped int
}

func (c *Counts) add(created bool) {
	if created {
		c.Created++
	} else {
		c.Skipped++
	}
}

// Stats summarizes a load
type Stats struct {
	Companies   Counts
	Landlords   Counts
	Tenants     Counts
	Properties  Counts
	Contracts   Counts
	Settlements Counts
}

// Loader writes seed files through the service layer
type Loader struct {
	db          *gorm.DB
	landlords   service.LandlordServiceInterface
	tenants     service.TenantServiceInterface
	properties  service.PropertyServiceInterface
	contracts   service.ContractServiceInterface
	settlements service.SettlementServiceInterface
}

// NewLoader wires the repositories and services the loader writes through
func NewLoader(db *gorm.DB, v *validator.Validate) *Loader {
	contractRepo := repository.NewContractRepository(db)
	return &Loader{
		db:          db,
		landlords:   service.NewLandlordService(repository.NewLandlordRepository(db), v),
		tenants:     service.NewTenantService(repository.NewTenantRepository(db), v),
		properties:  service.NewPropertyService(repository.NewPropertyRepository(db), v),
		contracts:   service.NewContractService(contractRepo, v),
		settlements: service.NewSettlementService(repository.NewSettlementRepository(db), contractRepo, v),
	}
}

// ReadDir parses every .yaml/.yml file below dir
func ReadDir(dir string) ([]File, error) {
	var files []File

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file File
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		files = append(files, file)
		return nil
	})

	return files, err
}

// Load applies the files in order
func (l *Loader) Load(ctx context.Context, files []File) (*Stats, error) {
	stats := &Stats{}
	for _, file := range files {
		for _, company := range file.Companies {
			if err := l.loadCompany(ctx, company, stats); err != nil {
				return stats, fmt.Errorf("company %q: %w", company.Name, err)
			}
		}
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"companies":   stats.Companies.Created,
		"landlords":   stats.Landlords.Created,
		"tenants":     stats.Tenants.Created,
		"properties":  stats.Properties.Created,
		"contracts":   stats.Contracts.Created,
		"settlements": stats.Settlements.Created,
	}).Info("seed data loaded")

	return stats, nil
}

func (l *Loader) loadCompany(ctx context.Context, data CompanyData, stats *Stats) error {
	company, created, err := l.ensureCompany(data)
	if err != nil {
		return err
	}
	stats.Companies.add(created)
	sc := scope.ForCompany(company.ID)

	landlordIDs := make(map[string]uint)
	for _, d := range data.Landlords {
		id, created, err := l.ensureLandlord(sc, d)
		if err != nil {
			return fmt.Errorf("landlord %q: %w", d.Name, err)
		}
		stats.Landlords.add(created)
		landlordIDs[repository.OnlyDigits(d.TaxID)] = id
	}

	tenantIDs := make(map[string]uint)
	for _, d := range data.Tenants {
		id, created, err := l.ensureTenant(sc, d)
		if err != nil {
			return fmt.Errorf("tenant %q: %w", d.Name, err)
		}
		stats.Tenants.add(created)
		tenantIDs[repository.OnlyDigits(d.TaxID)] = id
	}

	propertyIDs := make(map[string]uint)
	for _, d := range data.Properties {
		var landlordID *uint
		if d.LandlordTaxID != "" {
			id, ok := landlordIDs[repository.OnlyDigits(d.LandlordTaxID)]
			if !ok {
				return fmt.Errorf("property %q: unknown landlord %s", d.Address, d.LandlordTaxID)
			}
			landlordID = &id
		}
		id, created, err := l.ensureProperty(sc, landlordID, d)
		if err != nil {
			return fmt.Errorf("property %q: %w", d.Address, err)
		}
		stats.Properties.add(created)
		propertyIDs[d.Address] = id
	}

	for _, d := range data.Contracts {
		tenantID, ok := tenantIDs[repository.OnlyDigits(d.TenantTaxID)]
		if !ok {
			return fmt.Errorf("contract: unknown tenant %s", d.TenantTaxID)
		}
		propertyID, ok := propertyIDs[d.PropertyAddress]
		if !ok {
			return fmt.Errorf("contract: unknown property %q", d.PropertyAddress)
		}
		contractID, created, err := l.ensureContract(sc, tenantID, propertyID, d)
		if err != nil {
			return fmt.Errorf("contract for %s: %w", d.TenantTaxID, err)
		}
		stats.Contracts.add(created)

		for _, s := range d.Settlements {
			created, err := l.ensureSettlement(ctx, sc, contractID, s)
			if err != nil {
				return fmt.Errorf("settlement %s: %w", s.ReferenceMonth, err)
			}
			stats.Settlements.add(created)
		}
	}

	return nil
}

func (l *Loader) ensureCompany(data CompanyData) (*models.Company, bool, error) {
	var company models.Company
	query := l.db.Where("nome = ?", data.Name)
	if data.TaxID != "" {
		query = l.db.Where("cnpj = ?", repository.OnlyDigits(data.TaxID))
	}
	if err := query.First(&company).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, fmt.Errorf("failed to query company: %w", err)
		}
		company = models.Company{Name: data.Name, TaxID: repository.OnlyDigits(data.TaxID)}
		if err := l.db.Create(&company).Error; err != nil {
			return nil, false, fmt.Errorf("failed to create company: %w", err)
		}
		return &company, true, nil
	}
	return &company, false, nil
}

func (l *Loader) ensureLandlord(sc scope.Scope, d LandlordData) (uint, bool, error) {
	existing, err := l.landlords.List(sc, &service.LandlordListRequest{Name: d.Name, TaxID: d.TaxID, PageSize: 100})
	if err != nil {
		return 0, false, err
	}
	for _, landlord := range existing.Data {
		if landlord.Name == d.Name {
			return landlord.ID, false, nil
		}
	}

	landlord, err := l.landlords.Create(sc, &service.CreateLandlordRequest{
		Name:         d.Name,
		TaxID:        d.TaxID,
		PersonType:   d.PersonType,
		Email:        d.Email,
		Phone:        d.Phone,
		City:         d.City,
		State:        d.State,
		PayoutMethod: d.PayoutMethod,
		PixKey:       d.PixKey,
	})
	if err != nil {
		return 0, false, err
	}
	return landlord.ID, true, nil
}

func (l *Loader) ensureTenant(sc scope.Scope, d TenantData) (uint, bool, error) {
	existing, err := l.tenants.List(sc, &service.TenantListRequest{Name: d.Name, TaxID: d.TaxID, PageSize: 100})
	if err != nil {
		return 0, false, err
	}
	for _, tenant := range existing.Data {
		if tenant.Name == d.Name {
			return tenant.ID, false, nil
		}
	}

	tenant, err := l.tenants.Create(sc, &service.CreateTenantRequest{
		Name:          d.Name,
		TaxID:         d.TaxID,
		Email:         d.Email,
		Phone:         d.Phone,
		City:          d.City,
		MonthlyIncome: d.MonthlyIncome,
	})
	if err != nil {
		return 0, false, err
	}
	return tenant.ID, true, nil
}

func (l *Loader) ensureProperty(sc scope.Scope, landlordID *uint, d PropertyData) (uint, bool, error) {
	existing, err := l.properties.List(sc, &service.PropertyListRequest{Address: d.Address, LandlordID: landlordID, PageSize: 100})
	if err != nil {
		return 0, false, err
	}
	for _, property := range existing.Data {
		if property.Address == d.Address {
			return property.ID, false, nil
		}
	}

	property, err := l.properties.Create(sc, &service.CreatePropertyRequest{
		LandlordID:    landlordID,
		Type:          d.Type,
		Address:       d.Address,
		Number:        d.Number,
		District:      d.District,
		City:          d.City,
		State:         d.State,
		ZipCode:       d.ZipCode,
		RegistryCode:  d.RegistryCode,
		SuggestedRent: d.SuggestedRent,
	})
	if err != nil {
		return 0, false, err
	}
	return property.ID, true, nil
}

func (l *Loader) ensureContract(sc scope.Scope, tenantID, propertyID uint, d ContractData) (uint, bool, error) {
	existing, err := l.contracts.List(sc, &service.ContractListRequest{
		TenantID:   &tenantID,
		PropertyID: &propertyID,
		StartFrom:  d.StartDate,
		StartTo:    d.StartDate,
		PageSize:   1,
	})
	if err != nil {
		return 0, false, err
	}
	if len(existing.Data) > 0 {
		return existing.Data[0].ID, false, nil
	}

	contract, err := l.contracts.Create(sc, &service.CreateContractRequest{
		TenantID:        tenantID,
		PropertyID:      propertyID,
		StartDate:       d.StartDate,
		EndDate:         d.EndDate,
		RentAmount:      d.RentAmount,
		AdminFee:        d.AdminFee,
		Bonus:           d.Bonus,
		AdjustmentIndex: d.AdjustmentIndex,
		DueDay:          d.DueDay,
	})
	if err != nil {
		return 0, false, err
	}
	return contract.ID, true, nil
}

func (l *Loader) ensureSettlement(ctx context.Context, sc scope.Scope, contractID uint, d SettlementData) (bool, error) {
	_, err := l.settlements.Record(ctx, sc, &service.RecordSettlementRequest{
		ContractID:          contractID,
		ReferenceMonth:      d.ReferenceMonth,
		AmountReceived:      d.AmountReceived,
		AmountPassedThrough: d.AmountPassedThrough,
		Fees:                d.Fees,
	})
	if errors.Is(err, apperrors.ErrSettlementExists) {
		return false, nil
	}
	return err == nil, err
}
