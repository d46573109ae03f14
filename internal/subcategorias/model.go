package subcategorias

import "time"

type Subcategoria struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Nome            string     `gorm:"size:255;not null" json:"nome"`
	Descricao       *string    `json:"descricao"`
	CategoriaID     *uint      `gorm:"index" json:"categoria_id"`
	DataCriacao     *time.Time `json:"data_criacao"`
	DataAtualizacao *time.Time `json:"data_atualizacao"`
}

func (Subcategoria) TableName() string { return "subcategorias" }
