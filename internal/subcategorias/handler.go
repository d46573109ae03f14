package subcategorias

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/KromaEnergia/erp-admin/internal/consulta"
	"github.com/KromaEnergia/erp-admin/internal/utils"
	"go.uber.org/zap"
)

var ordenacao = consulta.Ordenacao{
	Permitidas: []string{"id", "nome", "categoria_id", "data_criacao", "data_atualizacao"},
	Padrao:     "nome",
}

type Handler struct {
	Repo    *Repository
	Relogio utils.Relogio
	Log     *zap.Logger
}

func NewHandler(repo *Repository, relogio utils.Relogio, log *zap.Logger) *Handler {
	return &Handler{Repo: repo, Relogio: relogio, Log: log.Named("subcategorias")}
}

type subcategoriaRequest struct {
	Nome        string  `json:"nome"`
	Descricao   *string `json:"descricao"`
	CategoriaID *uint   `json:"categoria_id"`
}

func (req *subcategoriaRequest) validar() error {
	req.Nome = strings.TrimSpace(req.Nome)
	if req.Nome == "" {
		return errors.New("O campo 'nome' é obrigatório")
	}
	return nil
}

// GET /api/subcategorias?categoria_id=
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	p, err := consulta.ParseParametros(r.URL.Query(), ordenacao)
	if err != nil {
		utils.Erro(w, http.StatusBadRequest, err.Error())
		return
	}

	var categoriaID *uint
	if v := r.URL.Query().Get("categoria_id"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			utils.Erro(w, http.StatusBadRequest, "categoria_id inválido")
			return
		}
		id := uint(n)
		categoriaID = &id
	}

	list, total, err := h.Repo.Listar(r.Context(), p, categoriaID)
	if err != nil {
		h.Log.Error("Erro ao buscar subcategorias", zap.Error(err))
		utils.Erro(w, http.StatusInternalServerError, "Erro ao buscar subcategorias")
		return
	}
	utils.JSON(w, http.StatusOK, consulta.NovaPagina(list, total, p))
}

// GET /api/categorias/{id}/subcategorias
func (h *Handler) ListarPorCategoria(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.Erro(w, http.StatusBadRequest, err.Error())
		return
	}

	list, err := h.Repo.ListarPorCategoria(r.Context(), id)
	if err != nil {
		h.Log.Error("Erro ao buscar subcategorias", zap.Uint("categoria_id", id), zap.Error(err))
		utils.Erro(w, http.StatusInternalServerError, "Erro ao buscar subcategorias")
		return
	}
	if list == nil {
		list = []Subcategoria{}
	}
	utils.JSON(w, http.StatusOK, list)
}

// GET /api/subcategorias/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.Erro(w, http.StatusBadRequest, err.Error())
		return
	}

	s, err := h.Repo.BuscarPorID(r.Context(), id)
	if err != nil {
		utils.ErroBanco(w, h.Log, err, "Subcategoria não encontrada", "Erro ao buscar subcategoria")
		return
	}
	utils.JSON(w, http.StatusOK, s)
}

// POST /api/subcategorias
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req subcategoriaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Erro(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if err := req.validar(); err != nil {
		utils.Erro(w, http.StatusBadRequest, err.Error())
		return
	}

	agora := h.Relogio.Agora()
	s := Subcategoria{
		Nome:            req.Nome,
		Descricao:       req.Descricao,
		CategoriaID:     req.CategoriaID,
		DataCriacao:     &agora,
		DataAtualizacao: &agora,
	}
	if err := h.Repo.Criar(r.Context(), &s); err != nil {
		h.Log.Error("Erro ao adicionar subcategoria", zap.Error(err))
		utils.Erro(w, http.StatusInternalServerError, "Erro ao adicionar subcategoria")
		return
	}
	utils.JSON(w, http.StatusCreated, s)
}

// PUT /api/subcategorias/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.Erro(w, http.StatusBadRequest, err.Error())
		return
	}

	var req subcategoriaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Erro(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	if err := req.validar(); err != nil {
		utils.Erro(w, http.StatusBadRequest, err.Error())
		return
	}

	agora := h.Relogio.Agora()
	dados := Subcategoria{
		ID:              id,
		Nome:            req.Nome,
		Descricao:       req.Descricao,
		CategoriaID:     req.CategoriaID,
		DataAtualizacao: &agora,
	}
	if err := h.Repo.Atualizar(r.Context(), &dados); err != nil {
		utils.ErroBanco(w, h.Log, err, "Subcategoria não encontrada", "Erro ao atualizar subcategoria")
		return
	}

	s, err := h.Repo.BuscarPorID(r.Context(), id)
	if err != nil {
		utils.ErroBanco(w, h.Log, err, "Subcategoria não encontrada", "Erro ao atualizar subcategoria")
		return
	}
	utils.JSON(w, http.StatusOK, s)
}

// DELETE /api/subcategorias/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDDaRota(r, "id")
	if err != nil {
		utils.Erro(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repo.Deletar(r.Context(), id); err != nil {
		utils.ErroBanco(w, h.Log, err, "Subcategoria não encontrada", "Erro ao excluir subcategoria")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
