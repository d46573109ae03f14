package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Novo cria o logger da aplicação. Em desenvolvimento usa saída de console.
func Novo(nivel, ambiente string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(nivel)
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL inválido: %w", err)
	}

	cfg := zap.NewProductionConfig()
	if ambiente == "development" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("falha ao iniciar logger: %w", err)
	}
	return log, nil
}
