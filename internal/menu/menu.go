// Package menu serve a árvore fixa da navegação lateral.
package menu

import (
	"net/http"

	"github.com/KromaEnergia/erp-admin/internal/utils"
)

type Item struct {
	Titulo string `json:"titulo"`
	Rota   string `json:"rota,omitempty"`
	Itens  []Item `json:"itens,omitempty"`
}

// Arvore devolve o menu; grupos sem rota própria só agrupam filhos.
func Arvore() []Item {
	return []Item{
		{Titulo: "Dashboard", Rota: "/dashboard"},
		{Titulo: "Produtos", Itens: []Item{
			{Titulo: "Lista de Produtos", Rota: "/produtos"},
			{Titulo: "Categorias", Rota: "/produtos/categorias"},
		}},
		{Titulo: "Fornecedores", Rota: "/fornecedores"},
		{Titulo: "Integração", Itens: []Item{
			{Titulo: "Tiny", Rota: "/integracao/tiny"},
		}},
	}
}

// GET /api/menu
func Handler(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, Arvore())
}
