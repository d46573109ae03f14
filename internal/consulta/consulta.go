// Package consulta trata os parâmetros de listagem (paginação, ordenação e
// busca) comuns a todas as tabelas e os aplica a uma consulta gorm.
package consulta

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

const (
	PaginaPadrao    = 1
	PorPaginaPadrao = 10
	PorPaginaMaximo = 100
)

// Direcao do ORDER BY.
type Direcao string

const (
	Asc  Direcao = "asc"
	Desc Direcao = "desc"
)

var ErrParametroInvalido = errors.New("parâmetro de consulta inválido")

// Ordenacao descreve as colunas aceitas em ?ordenar= para uma tabela.
type Ordenacao struct {
	// Tabela qualifica as colunas (ex.: "produtos") quando há JOIN.
	Tabela     string
	Permitidas []string
	Padrao     string
}

type Parametros struct {
	Pagina    int
	PorPagina int
	Ordenar   string
	Direcao   Direcao
	Busca     string

	tabela string
}

// ParseParametros lê pagina, por_pagina, ordenar, direcao e busca.
func ParseParametros(q url.Values, ord Ordenacao) (Parametros, error) {
	p := Parametros{
		Pagina:    PaginaPadrao,
		PorPagina: PorPaginaPadrao,
		Ordenar:   ord.Padrao,
		Direcao:   Asc,
		Busca:     strings.TrimSpace(q.Get("busca")),
		tabela:    ord.Tabela,
	}

	if v := q.Get("pagina"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return p, fmt.Errorf("%w: pagina deve ser um inteiro >= 1", ErrParametroInvalido)
		}
		p.Pagina = n
	}

	if v := q.Get("por_pagina"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > PorPaginaMaximo {
			return p, fmt.Errorf("%w: por_pagina deve estar entre 1 e %d", ErrParametroInvalido, PorPaginaMaximo)
		}
		p.PorPagina = n
	}

	if v := q.Get("ordenar"); v != "" {
		if !slices.Contains(ord.Permitidas, v) {
			return p, fmt.Errorf("%w: não é possível ordenar por %q", ErrParametroInvalido, v)
		}
		p.Ordenar = v
	}

	switch Direcao(strings.ToLower(q.Get("direcao"))) {
	case "", Asc:
		p.Direcao = Asc
	case Desc:
		p.Direcao = Desc
	default:
		return p, fmt.Errorf("%w: direcao deve ser asc ou desc", ErrParametroInvalido)
	}

	return p, nil
}

func (p Parametros) Offset() int {
	return (p.Pagina - 1) * p.PorPagina
}

func (p Parametros) coluna(nome string) string {
	if p.tabela == "" {
		return nome
	}
	return p.tabela + "." + nome
}

// Paginar aplica ORDER BY (com id como desempate), LIMIT e OFFSET.
func (p Parametros) Paginar(db *gorm.DB) *gorm.DB {
	dir := "ASC"
	if p.Direcao == Desc {
		dir = "DESC"
	}
	// Ordenar já foi validado contra a lista de colunas permitidas
	db = db.Order(p.coluna(p.Ordenar) + " " + dir)
	if p.Ordenar != "id" {
		db = db.Order(p.coluna("id") + " ASC")
	}
	return db.Limit(p.PorPagina).Offset(p.Offset())
}

// Buscar aplica a busca por substring, sem diferenciar maiúsculas, nas
// colunas informadas (combinadas com OR). Sem termo, não filtra.
func (p Parametros) Buscar(colunas ...string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if p.Busca == "" || len(colunas) == 0 {
			return db
		}
		padrao := PadraoLike(p.Busca)
		partes := make([]string, len(colunas))
		args := make([]any, len(colunas))
		for i, c := range colunas {
			partes[i] = "LOWER(" + c + `) LIKE ? ESCAPE '\'`
			args[i] = padrao
		}
		return db.Where("("+strings.Join(partes, " OR ")+")", args...)
	}
}

// PadraoLike devolve %termo% em minúsculas com os curingas escapados.
func PadraoLike(termo string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(termo)) + "%"
}

// Pagina é o envelope das listagens.
type Pagina[T any] struct {
	Dados        []T   `json:"dados"`
	Total        int64 `json:"total"`
	Pagina       int   `json:"pagina"`
	PorPagina    int   `json:"por_pagina"`
	TotalPaginas int   `json:"total_paginas"`
}

func NovaPagina[T any](dados []T, total int64, p Parametros) Pagina[T] {
	if dados == nil {
		dados = []T{}
	}
	totalPaginas := 0
	if p.PorPagina > 0 {
		totalPaginas = int((total + int64(p.PorPagina) - 1) / int64(p.PorPagina))
	}
	return Pagina[T]{
		Dados:        dados,
		Total:        total,
		Pagina:       p.Pagina,
		PorPagina:    p.PorPagina,
		TotalPaginas: totalPaginas,
	}
}
