package fornecedores

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

func (r *Repository) Listar(ctx context.Context, p consulta.Parametros) ([]Fornecedor, int64, error) {
	q := r.DB.WithContext(ctx).Model(&Fornecedor{}).
		Scopes(p.Buscar("nome", "contato", "email")).
		Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []Fornecedor
	err := p.Paginar(q).Find(&list).Error
	return list, total, err
}

func (r *Repository) BuscarPorID(ctx context.Context, id uint) (*Fornecedor, error) {
	var f Fornecedor
	if err := r.DB.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *Repository) Criar(ctx context.Context, f *Fornecedor) error {
	return r.DB.WithContext(ctx).Create(f).Error
}

func (r *Repository) Atualizar(ctx context.Context, f *Fornecedor) error {
	res := r.DB.WithContext(ctx).Model(&Fornecedor{}).
		Where("id = ?", f.ID).
		Updates(map[string]interface{}{
			"nome":             f.Nome,
			"contato":          f.Contato,
			"email":            f.Email,
			"telefone":         f.Telefone,
			"endereco":         f.Endereco,
			"data_atualizacao": f.DataAtualizacao,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Deletar deixa produtos.fornecedor_id órfão, sem cascata.
func (r *Repository) Deletar(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&Fornecedor{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
