package db

import (
	"fmt"
	"time"

	"github.com/KromaEnergia/erp-admin/internal/config"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN monta a string de conexão; DATABASE_DSN tem precedência.
func DSN(cfg config.Database) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}
	var sslMode string
	if cfg.SSLDisable {
		sslMode = " sslmode=disable"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d%s",
		cfg.Host, cfg.Username, cfg.Password, cfg.Name, cfg.Port, sslMode)
}

func ConnectDataBase(cfg config.Database, log *zap.Logger) (*gorm.DB, error) {
	gormLog := logger.New(zap.NewStdLog(log.Named("gorm")), logger.Config{
		SlowThreshold:             500 * time.Millisecond,
		LogLevel:                  logger.Error,
		IgnoreRecordNotFoundError: true,
	})

	database, err := gorm.Open(postgres.Open(DSN(cfg)), &gorm.Config{
		Logger: gormLog,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar no banco: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	return database, nil
}
