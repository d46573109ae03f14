package integracao

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Salvar faz o upsert por nome_aplicacao e devolve a linha gravada.
func (r *Repository) Salvar(ctx context.Context, c *CredencialAplicacao) (*CredencialAplicacao, error) {
	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "nome_aplicacao"}},
		DoUpdates: clause.AssignmentColumns([]string{"client_id", "client_secret", "dados_adicionais", "atualizado_em"}),
	}).Create(c).Error
	if err != nil {
		return nil, err
	}
	return r.BuscarPorNome(ctx, c.NomeAplicacao)
}

func (r *Repository) BuscarPorNome(ctx context.Context, nome string) (*CredencialAplicacao, error) {
	var c CredencialAplicacao
	if err := r.DB.WithContext(ctx).Where("nome_aplicacao = ?", nome).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
