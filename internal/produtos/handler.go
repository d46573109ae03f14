// internal/produtos/handler.go
package produtos

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/KromaEnergia/erp-admin/internal/consulta"
	"github.com/KromaEnergia/erp-admin/internal/utils"
	"go.uber.org/zap"
)

var ordenacao = consulta.Ordenacao{
	Tabela: "produtos",
	Permitidas: []string{
		"id", "nome", "sku", "categoria_id", "subcategoria_id",
		"preco", "estoque", "data_criacao", "data_atualizacao",
	},
	Padrao: "nome",
}

type Handler struct {
	Repo    *Repository
	Relogio utils.Relogio
	Log     *zap.Logger
}

func NewHandler(repo *Repository, relogio utils.Relogio, log *zap.Logger) *Handler {
	return &Handler{Repo: repo, Relogio: relogio, Log: log.Named("produtos")}
}

type produtoRequest struct {
	Nome           string   `json:"nome"`
	Preco          *float64 `json:"preco"`
	Estoque        *int     `json:"estoque"`
	SKU            string   `json:"sku"`
	CategoriaID    *uint    `json:"categoria_id"`
	SubcategoriaID *uint    `json:"subcategoria_id"`
	Descricao      *string  `json:"descricao"`
	FornecedorID   *uint    `json:"fornecedor_id"`
	Imagem         *string  `json:"imagem"`
}

func (req *produtoRequest) validar() error {
	req.Nome = strings.TrimSpace(req.Nome)
	req.SKU = strings.TrimSpace(req.SKU)
	if req.Nome == "" {
		return errors.New("O campo 'nome' é obrigatório")
	}
	if req.SKU == "" {
		return errors.New("O campo 'sku' é obrigatório")
	}
	return nil
}

func (req produtoRequest) produto() Produto {
	return Produto{
		Nome:           req.Nome,
		Preco:          req.Preco,
		Estoque:        req.Estoque,
		SKU:            req.SKU,
		CategoriaID:    req.CategoriaID,
		SubcategoriaID: req.SubcategoriaID,
		Descricao:      req.Descricao,
		FornecedorID:   req.FornecedorID,
		Imagem:         req.Imagem,
	}
}

func decodeProduto(r *http.Request) (produtoRequest, error) {
	var req produtoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, errors.New("JSON inválido")
	}
	return req, req.validar()
}

// GET /api/produtos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	p, err := consulta.ParseParametros(r.URL.Query(), ordenacao)
	if err != nil {
		utils.Erro(w, http.StatusBadRequest, err.Error())
		return
	}

	list, total, err := h.Repo.Listar(r.Context(), p)
	if err != nil {
		h.Log.Error("Erro ao buscar produtos", zap.Error(err))
		utils.Erro(w, http.StatusInternalServerError, "Erro ao buscar produtos")
		return
	}
	utils.JSON(w, http.StatusOK, consulta.NovaPagina(list, total, p))
}

// GET /api/produtos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.Erro(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.Repo.BuscarPorID(r.Context(), id)
	if err != nil {
		utils.ErroBanco(w, h.Log, err, "Produto não encontrado", "Erro ao buscar detalhes do produto")
		return
	}
	utils.JSON(w, http.StatusOK, p)
}

// POST /api/produtos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	req, err := decodeProduto(r)
	if err != nil {
		utils.Erro(w, http.StatusBadRequest, err.Error())
		return
	}

	agora := h.Relogio.Agora()
	p := req.produto()
	p.DataCriacao = &agora
	p.DataAtualizacao = &agora
	if err := h.Repo.Criar(r.Context(), &p); err != nil {
		h.Log.Error("Erro ao adicionar produto", zap.Error(err))
		utils.Erro(w, http.StatusInternalServerError, "Erro ao adicionar produto")
		return
	}
	utils.JSON(w, http.StatusCreated, p)
}

// PUT /api/produtos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.Erro(w, http.StatusBadRequest, err.Error())
		return
	}
	req, err := decodeProduto(r)
	if err != nil {
		utils.Erro(w, http.StatusBadRequest, err.Error())
		return
	}

	agora := h.Relogio.Agora()
	dados := req.produto()
	dados.ID = id
	dados.DataAtualizacao = &agora
	if err := h.Repo.Atualizar(r.Context(), &dados); err != nil {
		utils.ErroBanco(w, h.Log, err, "Produto não encontrado", "Erro ao atualizar produto")
		return
	}

	p, err := h.Repo.BuscarPorID(r.Context(), id)
	if err != nil {
		utils.ErroBanco(w, h.Log, err, "Produto não encontrado", "Erro ao atualizar produto")
		return
	}
	utils.JSON(w, http.StatusOK, p)
}

// DELETE /api/produtos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.Erro(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repo.Deletar(r.Context(), id); err != nil {
		utils.ErroBanco(w, h.Log, err, "Produto não encontrado", "Erro ao excluir produto")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
