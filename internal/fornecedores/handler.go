package fornecedores

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
	Permitidas: []string{"id", "nome", "contato", "email", "telefone", "data_criacao", "data_atualizacao"},
	Padrao:     "nome",
}

type Handler struct {
	Repo    *Repository
	Relogio utils.Relogio
	Log     *zap.Logger
}

func NewHandler(repo *Repository, relogio utils.Relogio, log *zap.Logger) *Handler {
	return &Handler{Repo: repo, Relogio: relogio, Log: log.Named("fornecedores")}
}

type fornecedorRequest struct {
	Nome     string  `json:"nome"`
	Contato  *string `json:"contato"`
	Email    *string `json:"email"`
	Telefone *string `json:"telefone"`
	Endereco *string `json:"endereco"`
}

func (req *fornecedorRequest) validar() error {
	req.Nome = strings.TrimSpace(req.Nome)
	if req.Nome == "" {
		return errors.New("O campo 'nome' é obrigatório")
	}
	return nil
}

func (req fornecedorRequest) fornecedor() Fornecedor {
	return Fornecedor{
		Nome:     req.Nome,
		Contato:  req.Contato,
		Email:    req.Email,
		Telefone: req.Telefone,
		Endereco: req.Endereco,
	}
}

// GET /api/fornecedores
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	p, err := consulta.ParseParametros(r.URL.Query(), ordenacao)
	if err != nil {
		utils.Erro(w, http.StatusBadRequest, err.Error())
		return
	}

	list, total, err := h.Repo.Listar(r.Context(), p)
	if err != nil {
		h.Log.Error("Erro ao buscar fornecedores", zap.Error(err))
		utils.Erro(w, http.StatusInternalServerError, "Erro ao buscar fornecedores")
		return
	}
	utils.JSON(w, http.StatusOK, consulta.NovaPagina(list, total, p))
}

// GET /api/fornecedores/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.Erro(w, http.StatusBadRequest, err.Error())
		return
	}

	f, err := h.Repo.BuscarPorID(r.Context(), id)
	if err != nil {
		utils.ErroBanco(w, h.Log, err, "Fornecedor não encontrado", "Erro ao buscar detalhes do fornecedor")
		return
	}
	utils.JSON(w, http.StatusOK, f)
}

// POST /api/fornecedores
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req fornecedorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Erro(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if err := req.validar(); err != nil {
		utils.Erro(w, http.StatusBadRequest, err.Error())
		return
	}

	agora := h.Relogio.Agora()
	f := req.fornecedor()
	f.DataCriacao = &agora
	f.DataAtualizacao = &agora
	if err := h.Repo.Criar(r.Context(), &f); err != nil {
		h.Log.Error("Erro ao adicionar fornecedor", zap.Error(err))
		utils.Erro(w, http.StatusInternalServerError, "Erro ao adicionar fornecedor")
		return
	}
	utils.JSON(w, http.StatusCreated, f)
}

// PUT /api/fornecedores/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.Erro(w, http.StatusBadRequest, err.Error())
		return
	}

	var req fornecedorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Erro(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if err := req.validar(); err != nil {
		utils.Erro(w, http.StatusBadRequest, err.Error())
		return
	}

	agora := h.Relogio.Agora()
	dados := req.fornecedor()
	dados.ID = id
	dados.DataAtualizacao = &agora
	if err := h.Repo.Atualizar(r.Context(), &dados); err != nil {
		utils.ErroBanco(w, h.Log, err, "Fornecedor não encontrado", "Erro ao atualizar fornecedor")
		return
	}

	f, err := h.Repo.BuscarPorID(r.Context(), id)
	if err != nil {
		utils.ErroBanco(w, h.Log, err, "Fornecedor não encontrado", "Erro ao atualizar fornecedor")
		return
	}
	utils.JSON(w, http.StatusOK, f)
}

// DELETE /api/fornecedores/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.Erro(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repo.Deletar(r.Context(), id); err != nil {
		utils.ErroBanco(w, h.Log, err, "Fornecedor não encontrado", "Erro ao excluir fornecedor")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
