//go:build integration

package testutils

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type SharedContainerTestSuite struct {
	suite.Suite
	base *BaseTestSuite
}

func (s *SharedContainerTestSuite) SetupSuite() {
	s.base = SetupTestSuite(s.T())
}

func (s *SharedContainerTestSuite) TestSchemaMigrated() {
	m := s.base.DB.Migrator()
	for _, table := range tables {
		s.True(m.HasTable(table), table)
	}
	s.True(m.HasIndex("prestacoes_contas", "idx_prestacao_contrato_mes"))
}

func (s *SharedContainerTestSuite) TestCleanTestDB() {
	company := NewCompanyFactory().Create()
	s.Require().NoError(s.base.DB.Create(company).Error)

	s.base.CleanTestDB()

	var count int64
	s.Require().NoError(s.base.DB.Table("empresas").Count(&count).Error)
	s.Zero(count)
}

func TestSharedContainerTestSuite(t *testing.T) {
	suite.Run(t, new(SharedContainerTestSuite))
}
