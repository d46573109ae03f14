package categorias

import "time"

type Categoria struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Nome            string     `gorm:"size:255;not null;index" json:"nome"`
	Descricao       *string    `json:"descricao"`
	DataCriacao     *time.Time `json:"data_criacao"`
	DataAtualizacao *time.Time `json:"data_atualizacao"`
}

func (Categoria) TableName() string { return "categorias" }

