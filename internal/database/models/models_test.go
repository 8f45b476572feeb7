package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestContractStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	ended := &Contract{EndDate: now.AddDate(0, 0, -1)}
	expiring := &Contract{EndDate: now.AddDate(0, 0, 10)}
	active := &Contract{EndDate: now.AddDate(1, 0, 0)}

	assert.Equal(t, ContractStatusEnded, ended.Status(now))
	assert.Equal(t, ContractStatusExpiring, expiring.Status(now))
	assert.Equal(t, ContractStatusActive, active.Status(now))
	assert.Equal(t, now.AddDate(0, 0, 30), ExpiringCutoff(now))
}

func TestParseReferenceMonth(t *testing.T) {
	year, month, err := ParseReferenceMonth("03/2025")
	assert.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 3, month)

	for _, bad := range []string{"", "3/2025", "13/2025", "00/2025", "03-2025", "03/25", "ab/2025", "03/2025/1"} {
		_, _, err := ParseReferenceMonth(bad)
		assert.Error(t, err, bad)
	}
}

func TestSettlementBeforeSave(t *testing.T) {
	s := &Settlement{ReferenceMonth: "11/2024"}
	assert.NoError(t, s.BeforeSave(nil))
	assert.Equal(t, 202411, s.Period)

	bad := &Settlement{ReferenceMonth: "2024-11"}
	assert.Error(t, bad.BeforeSave(nil))
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, PayoutMethodPix.IsValid())
	assert.False(t, PayoutMethod("cheque").IsValid())
	assert.True(t, AdjustmentIndexIGPM.IsValid())
	assert.False(t, AdjustmentIndex("INCC").IsValid())
	assert.True(t, PersonTypeJuridica.IsValid())
	assert.True(t, PropertyTypeApartamento.IsValid())
	assert.False(t, ContractStatus("suspenso").IsValid())
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "empresas", Company{}.TableName())
	assert.Equal(t, "locadores", Landlord{}.TableName())
	assert.Equal(t, "locatarios", Tenant{}.TableName())
	assert.Equal(t, "imoveis", Property{}.TableName())
	assert.Equal(t, "contratos", Contract{}.TableName())
	assert.Equal(t, "prestacoes_contas", Settlement{}.TableName())
}
