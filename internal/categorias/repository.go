package categorias

import (
	"context"

	"github.com/KromaEnergia/erp-admin/internal/consulta"
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Listar devolve a página pedida e o total de registros que casam com a busca.
func (r *Repository) Listar(ctx context.Context, p consulta.Parametros) ([]Categoria, int64, error) {
	q := r.DB.WithContext(ctx).Model(&Categoria{}).Scopes(p.Buscar("nome"))

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []Categoria
	err := p.Paginar(q.Session(&gorm.Session{})).Find(&list).Error
	return list, total, err
}

// ListarTodas alimenta os selects do formulário de produto.
func (r *Repository) ListarTodas(ctx context.Context) ([]Categoria, error) {
	var list []Categoria
	err := r.DB.WithContext(ctx).Order("nome ASC").Order("id ASC").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(ctx context.Context, id uint) (*Categoria, error) {
	var c Categoria
	if err := r.DB.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Criar(ctx context.Context, c *Categoria) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

// Atualizar grava os campos editáveis; data_criacao nunca é tocada.
func (r *Repository) Atualizar(ctx context.Context, c *Categoria) error {
	res := r.DB.WithContext(ctx).Model(&Categoria{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"nome":             c.Nome,
			"descricao":        c.Descricao,
			"data_atualizacao": c.DataAtualizacao,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Deletar não mexe em produtos/subcategorias que apontam para a categoria.
func (r *Repository) Deletar(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&Categoria{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
