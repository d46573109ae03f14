package categorias

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
	Permitidas: []string{"id", "nome", "descricao", "data_criacao", "data_atualizacao"},
	Padrao:     "nome",
}

type Handler struct {
	Repo    *Repository
	Relogio utils.Relogio
	Log     *zap.Logger
}

func NewHandler(repo *Repository, relogio utils.Relogio, log *zap.Logger) *Handler {
	return &Handler{Repo: repo, Relogio: relogio, Log: log.Named("categorias")}
}

// corpo de POST/PUT; id e datas enviados pelo cliente são ignorados
type categoriaRequest struct {
	Nome      string  `json:"nome"`
	Descricao *string `json:"descricao"`
}

func (req *categoriaRequest) validar() error {
	req.Nome = strings.TrimSpace(req.Nome)
	if req.Nome == "" {
		return errors.New("O campo 'nome' é obrigatório")
	}
	return nil
}

// GET /api/categorias
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	p, err := consulta.ParseParametros(r.URL.Query(), ordenacao)
	if err != nil {
		utils.Erro(w, http.StatusBadRequest, err.Error())
		return
	}

	list, total, err := h.Repo.Listar(r.Context(), p)
	if err != nil {
		h.Log.Error("Erro ao buscar categorias", zap.Error(err))
		utils.Erro(w, http.StatusInternalServerError, "Erro ao buscar categorias")
		return
	}
	utils.JSON(w, http.StatusOK, consulta.NovaPagina(list, total, p))
}

// GET /api/categorias/todas
func (h *Handler) ListarTodas(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListarTodas(r.Context())
	if err != nil {
		h.Log.Error("Erro ao buscar categorias", zap.Error(err))
		utils.Erro(w, http.StatusInternalServerError, "Erro ao buscar categorias")
		return
	}
	if list == nil {
		list = []Categoria{}
	}
	utils.JSON(w, http.StatusOK, list)
}

// GET /api/categorias/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.Erro(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := h.Repo.BuscarPorID(r.Context(), id)
	if err != nil {
		utils.ErroBanco(w, h.Log, err, "Categoria não encontrada", "Erro ao buscar detalhes da categoria")
		return
	}
	utils.JSON(w, http.StatusOK, c)
}

// POST /api/categorias
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req categoriaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Erro(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if err := req.validar(); err != nil {
		utils.Erro(w, http.StatusBadRequest, err.Error())
		return
	}

	agora := h.Relogio.Agora()
	c := Categoria{
		Nome:            req.Nome,
		Descricao:       req.Descricao,
		DataCriacao:     &agora,
		DataAtualizacao: &agora,
	}
	if err := h.Repo.Criar(r.Context(), &c); err != nil {
		h.Log.Error("Erro ao adicionar categoria", zap.Error(err))
		utils.Erro(w, http.StatusInternalServerError, "Erro ao adicionar categoria")
		return
	}
	utils.JSON(w, http.StatusCreated, c)
}

// PUT /api/categorias/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.Erro(w, http.StatusBadRequest, err.Error())
		return
	}

	var req categoriaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Erro(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if err := req.validar(); err != nil {
		utils.Erro(w, http.StatusBadRequest, err.Error())
		return
	}

	agora := h.Relogio.Agora()
	dados := Categoria{ID: id, Nome: req.Nome, Descricao: req.Descricao, DataAtualizacao: &agora}
	if err := h.Repo.Atualizar(r.Context(), &dados); err != nil {
		utils.ErroBanco(w, h.Log, err, "Categoria não encontrada", "Erro ao atualizar categoria")
		return
	}

	c, err := h.Repo.BuscarPorID(r.Context(), id)
	if err != nil {
		utils.ErroBanco(w, h.Log, err, "Categoria não encontrada", "Erro ao atualizar categoria")
		return
	}
	utils.JSON(w, http.StatusOK, c)
}

// DELETE /api/categorias/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.Erro(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repo.Deletar(r.Context(), id); err != nil {
		utils.ErroBanco(w, h.Log, err, "Categoria não encontrada", "Erro ao excluir categoria")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
