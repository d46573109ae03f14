package subcategorias

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

// Listar filtra opcionalmente pela categoria.
func (r *Repository) Listar(ctx context.Context, p consulta.Parametros, categoriaID *uint) ([]Subcategoria, int64, error) {
	q := r.DB.WithContext(ctx).Model(&Subcategoria{}).Scopes(p.Buscar("nome"))
	if categoriaID != nil {
		q = q.Where("categoria_id = ?", *categoriaID)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []Subcategoria
	err := p.Paginar(q.Session(&gorm.Session{})).Find(&list).Error
	return list, total, err
}

// ListarPorCategoria devolve todas as subcategorias de uma categoria, por nome.
func (r *Repository) ListarPorCategoria(ctx context.Context, categoriaID uint) ([]Subcategoria, error) {
	var list []Subcategoria
	err := r.DB.WithContext(ctx).
		Where("categoria_id = ?", categoriaID).
		Order("nome ASC").
		Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(ctx context.Context, id uint) (*Subcategoria, error) {
	var s Subcategoria
	if err := r.DB.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Criar(ctx context.Context, s *Subcategoria) error {
	return r.DB.WithContext(ctx).Create(s).Error
}

func (r *Repository) Atualizar(ctx context.Context, s *Subcategoria) error {
	res := r.DB.WithContext(ctx).Model(&Subcategoria{}).
		Where("id = ?", s.ID).
		Updates(map[string]interface{}{
			"nome":             s.Nome,
			"descricao":        s.Descricao,
			"categoria_id":     s.CategoriaID,
			"data_atualizacao": s.DataAtualizacao,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) Deletar(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&Subcategoria{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
