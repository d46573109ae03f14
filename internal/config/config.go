package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	AmbienteDesenvolvimento = "development"
	AmbienteProducao        = "production"
)

type Config struct {
	HTTPPort    string
	Ambiente    string
	LogLevel    string
	CORSOrigins []string

	Database Database

	JWTSecret      string
	JWTTTL         time.Duration
	AdminUsuario   string
	AdminSenhaHash string

	// CredenciaisChave cifra o client_secret das integrações; vazio = texto puro
	CredenciaisChave []byte
}

type Database struct {
	DSN         string
	Host        string
	Port        uint
	Name        string
	Username    string
	Password    string
	SSLDisable  bool
	AutoMigrate bool
}

// Load lê o .env (se existir) e as variáveis de ambiente.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("erro ao ler .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv monta a Config a partir de uma função de lookup, útil nos testes.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	port, err := strconv.ParseUint(get("DB_PORT", "5432"), 10, 32)
	if err != nil {
		port = 5432 // porta padrão do PostgreSQL
	}

	cfg := &Config{
		HTTPPort:     get("HTTP_PORT", "8080"),
		Ambiente:     get("AMBIENTE", AmbienteDesenvolvimento),
		LogLevel:     get("LOG_LEVEL", "info"),
		CORSOrigins:  splitCSV(get("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		JWTSecret:    getenv("JWT_SECRET"),
		AdminUsuario: get("ADMIN_USUARIO", "admin"),
		// hash bcrypt, nunca a senha em texto
		AdminSenhaHash: getenv("ADMIN_SENHA_HASH"),
		Database: Database{
			DSN:         getenv("DATABASE_DSN"),
			Host:        get("DB_HOST", "localhost"),
			Port:        uint(port),
			Name:        get("DB_NAME", "erp"),
			Username:    getenv("DB_USERNAME"),
			Password:    getenv("DB_PASSWORD"),
			SSLDisable:  getenv("DB_SSL_MODE_DISABLE") == "true",
			AutoMigrate: getenv("DB_AUTO_MIGRATE") == "true",
		},
	}

	cfg.JWTTTL, err = time.ParseDuration(get("JWT_TTL", "12h"))
	if err != nil {
		return nil, fmt.Errorf("JWT_TTL inválido: %w", err)
	}

	if raw := getenv("CREDENCIAIS_CHAVE"); raw != "" {
		chave, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			return nil, fmt.Errorf("CREDENCIAIS_CHAVE não é base64: %w", err)
		}
		if len(chave) != 32 {
			return nil, fmt.Errorf("CREDENCIAIS_CHAVE deve ter 32 bytes, recebido %d", len(chave))
		}
		cfg.CredenciaisChave = chave
	}

	if err := cfg.validar(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validar() error {
	if c.Ambiente != AmbienteDesenvolvimento && c.Ambiente != AmbienteProducao {
		return fmt.Errorf("AMBIENTE inválido: %q", c.Ambiente)
	}
	if c.JWTSecret == "" && c.Ambiente == AmbienteProducao {
		return errors.New("JWT_SECRET é obrigatório em produção")
	}
	if c.JWTSecret != "" && len(c.JWTSecret) < 32 {
		return errors.New("JWT_SECRET deve ter pelo menos 32 caracteres")
	}
	return nil
}

// AuthHabilitada indica se as rotas /api exigem token.
func (c *Config) AuthHabilitada() bool {
	return c.JWTSecret != ""
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
