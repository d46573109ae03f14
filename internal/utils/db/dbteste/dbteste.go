// Package dbteste abre bancos SQLite em memória; uso exclusivo dos _test.go.
package dbteste

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Abrir cria um banco novo em memória e migra os modelos informados.
func Abrir(t *testing.T, modelos ...any) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// uma conexão só: cada conexão em memória seria um banco diferente
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(modelos...))
	return db
}
