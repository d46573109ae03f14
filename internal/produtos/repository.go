// internal/produtos/repository.go
package produtos

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

const colunasDetalhe = "produtos.*, categorias.nome AS categoria_nome, subcategorias.nome AS subcategoria_nome"

func (r *Repository) comRelacoes(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Model(&Produto{}).
		Joins("LEFT JOIN categorias ON categorias.id = produtos.categoria_id").
		Joins("LEFT JOIN subcategorias ON subcategorias.id = produtos.subcategoria_id")
}

// Listar busca por nome, SKU, nome da categoria ou nome da subcategoria.
func (r *Repository) Listar(ctx context.Context, p consulta.Parametros) ([]ProdutoDetalhado, int64, error) {
	q := r.comRelacoes(ctx).
		Scopes(p.Buscar("produtos.nome", "produtos.sku", "categorias.nome", "subcategorias.nome")).
		Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var linhas []produtoLinha
	if err := p.Paginar(q.Select(colunasDetalhe)).Scan(&linhas).Error; err != nil {
		return nil, 0, err
	}

	out := make([]ProdutoDetalhado, len(linhas))
	for i, l := range linhas {
		out[i] = l.detalhado()
	}
	return out, total, nil
}

func (r *Repository) BuscarPorID(ctx context.Context, id uint) (*ProdutoDetalhado, error) {
	var linhas []produtoLinha
	err := r.comRelacoes(ctx).
		Select(colunasDetalhe).
		Where("produtos.id = ?", id).
		Limit(1).
		Scan(&linhas).Error
	if err != nil {
		return nil, err
	}
	if len(linhas) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	d := linhas[0].detalhado()
	return &d, nil
}

func (r *Repository) Criar(ctx context.Context, p *Produto) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

// Atualizar substitui os campos editáveis (último a gravar vence).
func (r *Repository) Atualizar(ctx context.Context, p *Produto) error {
	res := r.DB.WithContext(ctx).Model(&Produto{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"nome":             p.Nome,
			"preco":            p.Preco,
			"estoque":          p.Estoque,
			"sku":              p.SKU,
			"categoria_id":     p.CategoriaID,
			"subcategoria_id":  p.SubcategoriaID,
			"descricao":        p.Descricao,
			"fornecedor_id":    p.FornecedorID,
			"imagem":           p.Imagem,
			"data_atualizacao": p.DataAtualizacao,
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
	res := r.DB.WithContext(ctx).Delete(&Produto{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
