package db

import (
	"github.com/KromaEnergia/erp-admin/internal/config"
	"github.com/KromaEnergia/erp-admin/internal/categorias"
	"github.com/KromaEnergia/erp-admin/internal/fornecedores"
	"github.com/KromaEnergia/erp-admin/internal/integracao"
	"github.com/KromaEnergia/erp-admin/internal/produtos"
	"github.com/KromaEnergia/erp-admin/internal/subcategorias"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Modelos lista todas as tabelas da aplicação, na ordem de criação.
func Modelos() []any {
	return []any{
		&categorias.Categoria{},
		&subcategorias.Subcategoria{},
		&fornecedores.Fornecedor{},
		&produtos.Produto{},
		&integracao.CredencialAplicacao{},
	}
}

// Migrar cria/ajusta as tabelas.
func Migrar(db *gorm.DB) error {
	return db.AutoMigrate(Modelos()...)
}

func GetDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	database, err := ConnectDataBase(cfg.Database, log)
	if err != nil {
		return nil, err
	}
	if cfg.Database.AutoMigrate {
		log.Info("executando AutoMigrate")
		if err := Migrar(database); err != nil {
			return nil, err
		}
	}
	return database, nil
}
