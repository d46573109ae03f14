package fornecedores

import "time"

// Fornecedor guarda os dados de contato; produtos.fornecedor_id aponta para cá.
type Fornecedor struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Nome            string     `gorm:"size:255;not null;index" json:"nome"`
	Contato         *string    `json:"contato"`
	Email           *string    `json:"email"`
	Telefone        *string    `json:"telefone"`
	Endereco        *string    `json:"endereco"`
	DataCriacao     *time.Time `json:"data_criacao"`
	DataAtualizacao *time.Time `json:"data_atualizacao"`
}

func (Fornecedor) TableName() string { return "fornecedores" }
