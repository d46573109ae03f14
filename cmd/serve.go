package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KromaEnergia/erp-admin/internal/server"
	"github.com/KromaEnergia/erp-admin/internal/utils"
	"github.com/KromaEnergia/erp-admin/internal/utils/db"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const prazoDesligamento = 10 * time.Second

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := carregar()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	database, err := db.GetDB(cfg, log)
	if err != nil {
		return err
	}
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	cifrador, err := utils.NovoCifrador(cfg.CredenciaisChave)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: ":" + cfg.HTTPPort,
		Handler: server.NovoRouter(server.Deps{
			DB:       database,
			Config:   cfg,
			Relogio:  utils.RelogioSistema(),
			Cifrador: cifrador,
			Log:      log,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	erros := make(chan error, 1)
	go func() {
		log.Info("servidor rodando", zap.String("addr", srv.Addr), zap.String("ambiente", cfg.Ambiente))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			erros <- err
		}
		close(erros)
	}()

	select {
	case err := <-erros:
		return err
	case <-ctx.Done():
	}

	log.Info("desligando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), prazoDesligamento)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
