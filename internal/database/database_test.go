package database

import (
	"testing"

	apperrors "imobiliaria-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_SQLiteMigratesSchema(t *testing.T) {
	db, err := Initialize("file::memory:?cache=private", &Options{Driver: DriverSQLite, MaxOpenConns: 1})
	require.NoError(t, err)
	defer Close(db)

	m := db.Migrator()
	for _, table := range []string{"empresas", "locadores", "locatarios", "imoveis", "contratos", "prestacoes_contas"} {
		assert.True(t, m.HasTable(table), table)
	}
	assert.True(t, m.HasIndex("prestacoes_contas", "idx_prestacao_contrato_mes"))
}

func TestInitialize_UnsupportedDriver(t *testing.T) {
	db, err := Initialize("whatever", &Options{Driver: "mssql"})
	assert.Nil(t, db)
	assert.True(t, apperrors.IsConfiguration(err))
}

func TestConnect_UnreachablePostgres(t *testing.T) {
	db, err := Connect(ConnectionOptions{
		Driver:   DriverPostgres,
		Host:     "127.0.0.1",
		Port:     "1",
		Database: "imobiliaria",
		User:     "postgres",
		Password: "postgres",
	}, nil)

	assert.Nil(t, db)
	require.Error(t, err)
	assert.True(t, apperrors.IsConnection(err))
}

func TestConnectionOptionsDSN(t *testing.T) {
	conn := ConnectionOptions{
		Driver:           DriverPostgres,
		Host:             "db",
		Port:             "5432",
		Database:         "imob",
		User:             "app",
		Password:         "secret",
		Encrypt:          true,
		TrustCertificate: true,
	}
	assert.Equal(t, "postgres://app:secret@db:5432/imob?sslmode=require", conn.DSN())

	sqliteConn := ConnectionOptions{Driver: DriverSQLite, Database: "imob.db"}
	assert.Equal(t, "imob.db", sqliteConn.DSN())
}

func TestClose_Nil(t *testing.T) {
	assert.NoError(t, Close(nil))
}
