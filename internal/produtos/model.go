// internal/produtos/model.go
package produtos

import "time"

type Produto struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Nome            string     `gorm:"size:255;not null;index" json:"nome"`
	Preco           *float64   `gorm:"type:numeric(12,2)" json:"preco"`
	Estoque         *int       `json:"estoque"`
	SKU             string     `gorm:"column:sku;size:100;not null" json:"sku"`
	CategoriaID     *uint      `gorm:"index" json:"categoria_id"`
	SubcategoriaID  *uint      `gorm:"index" json:"subcategoria_id"`
	Descricao       *string    `json:"descricao"`
	FornecedorID    *uint      `json:"fornecedor_id"` // sem FK: não é validado
	Imagem          *string    `json:"imagem"`
	DataCriacao     *time.Time `json:"data_criacao"`
	DataAtualizacao *time.Time `json:"data_atualizacao"`
}

func (Produto) TableName() string { return "produtos" }

// NomeRelacionado é o {nome} de categoria/subcategoria trazido pelo JOIN.
type NomeRelacionado struct {
	Nome string `json:"nome"`
}

// ProdutoDetalhado é o produto com os nomes de categoria e subcategoria,
// usado na tabela e no modal de detalhes.
type ProdutoDetalhado struct {
	Produto
	Categoria    *NomeRelacionado `json:"categorias"`
	Subcategoria *NomeRelacionado `json:"subcategorias"`
}

// produtoLinha é a linha crua devolvida pelo LEFT JOIN.
type produtoLinha struct {
	Produto
	CategoriaNome    *string
	SubcategoriaNome *string
}

func (l produtoLinha) detalhado() ProdutoDetalhado {
	d := ProdutoDetalhado{Produto: l.Produto}
	if l.CategoriaNome != nil {
		d.Categoria = &NomeRelacionado{Nome: *l.CategoriaNome}
	}
	if l.SubcategoriaNome != nil {
		d.Subcategoria = &NomeRelacionado{Nome: *l.SubcategoriaNome}
	}
	return d
}
