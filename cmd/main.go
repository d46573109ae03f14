package main

import (
	"fmt"
	"os"

	"github.com/KromaEnergia/erp-admin/internal/config"
	"github.com/KromaEnergia/erp-admin/internal/logger"
	"github.com/KromaEnergia/erp-admin/internal/utils"
	"github.com/KromaEnergia/erp-admin/internal/utils/db"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootCmd sem subcomando sobe o servidor
var rootCmd = &cobra.Command{
	Use:           "erp",
	Short:         "API do painel administrativo (produtos, categorias, fornecedores, integração Tiny)",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Inicia o servidor HTTP",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Cria/ajusta as tabelas no banco (AutoMigrate)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := carregar()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		database, err := db.ConnectDataBase(cfg.Database, log)
		if err != nil {
			return err
		}
		if err := db.Migrar(database); err != nil {
			return fmt.Errorf("erro no AutoMigrate: %w", err)
		}
		log.Info("migração concluída")
		return nil
	},
}

var hashSenhaCmd = &cobra.Command{
	Use:   "hash-senha <senha>",
	Short: "Gera o hash bcrypt para ADMIN_SENHA_HASH",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := utils.HashSenha(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, hashSenhaCmd)
}

func carregar() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.Novo(cfg.LogLevel, cfg.Ambiente)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "erro:", err)
		os.Exit(1)
	}
}
