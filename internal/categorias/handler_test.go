package categorias

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/KromaEnergia/erp-admin/internal/consulta"
	"github.com/KromaEnergia/erp-admin/internal/utils"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func novoHandler(t *testing.T) (*Handler, *utils.RelogioFixo) {
	relogio := utils.NovoRelogioFixo(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	return NewHandler(novoRepo(t), relogio, zap.NewNop()), relogio
}

func requisicao(method, target, body string, vars map[string]string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	if vars != nil {
		r = mux.SetURLVars(r, vars)
	}
	return r
}

func TestHandler_CRUD(t *testing.T) {
	h, relogio := novoHandler(t)

	rec := httptest.NewRecorder()
	h.Criar(rec, requisicao(http.MethodPost, "/api/categorias", `{"nome":"  Ferragens ","descricao":"metais"}`, nil))
	require.Equal(t, http.StatusCreated, rec.Code)
	var criada Categoria
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &criada))
	assert.Equal(t, "Ferragens", criada.Nome)
	assert.True(t, criada.DataCriacao.Equal(relogio.Agora()))
	id := map[string]string{"id": "1"}

	relogio.Avancar(time.Minute)
	rec = httptest.NewRecorder()
	h.Atualizar(rec, requisicao(http.MethodPut, "/api/categorias/1", `{"nome":"Ferramentas","data_criacao":"1999-01-01T00:00:00Z"}`, id))
	require.Equal(t, http.StatusOK, rec.Code)
	var atualizada Categoria
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &atualizada))
	assert.Equal(t, "Ferramentas", atualizada.Nome)
	assert.True(t, atualizada.DataCriacao.Equal(*criada.DataCriacao))
	assert.True(t, atualizada.DataAtualizacao.After(*criada.DataAtualizacao))

	rec = httptest.NewRecorder()
	h.BuscarPorID(rec, requisicao(http.MethodGet, "/api/categorias/1", "", id))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.Deletar(rec, requisicao(http.MethodDelete, "/api/categorias/1", "", id))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	h.BuscarPorID(rec, requisicao(http.MethodGet, "/api/categorias/1", "", id))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Categoria não encontrada"}`, rec.Body.String())
}

func TestHandler_Validacao(t *testing.T) {
	h, _ := novoHandler(t)

	cases := []struct {
		name string
		call func(w http.ResponseWriter)
		want int
	}{
		{"json invalido", func(w http.ResponseWriter) {
			h.Criar(w, requisicao(http.MethodPost, "/", `{`, nil))
		}, http.StatusBadRequest},
		{"nome vazio", func(w http.ResponseWriter) {
			h.Criar(w, requisicao(http.MethodPost, "/", `{"nome":"   "}`, nil))
		}, http.StatusBadRequest},
		{"id invalido", func(w http.ResponseWriter) {
			h.BuscarPorID(w, requisicao(http.MethodGet, "/", "", map[string]string{"id": "x"}))
		}, http.StatusBadRequest},
		{"atualizar inexistente", func(w http.ResponseWriter) {
			h.Atualizar(w, requisicao(http.MethodPut, "/", `{"nome":"a"}`, map[string]string{"id": "77"}))
		}, http.StatusNotFound},
		{"deletar inexistente", func(w http.ResponseWriter) {
			h.Deletar(w, requisicao(http.MethodDelete, "/", "", map[string]string{"id": "77"}))
		}, http.StatusNotFound},
		{"ordenar invalido", func(w http.ResponseWriter) {
			h.Listar(w, requisicao(http.MethodGet, "/api/categorias?ordenar=senha", "", nil))
		}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tc.call(rec)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestHandler_Listar(t *testing.T) {
	h, _ := novoHandler(t)
	for _, n := range []string{"Tintas", "Telhas", "Elétrica"} {
		rec := httptest.NewRecorder()
		h.Criar(rec, requisicao(http.MethodPost, "/", `{"nome":"`+n+`"}`, nil))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := httptest.NewRecorder()
	h.Listar(rec, requisicao(http.MethodGet, "/api/categorias?busca=T&por_pagina=1&pagina=2", "", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var pg consulta.Pagina[Categoria]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pg))
	assert.Equal(t, int64(3), pg.Total)
	assert.Equal(t, 3, pg.TotalPaginas)
	require.Len(t, pg.Dados, 1)
	assert.Equal(t, "Telhas", pg.Dados[0].Nome)

	rec = httptest.NewRecorder()
	h.ListarTodas(rec, requisicao(http.MethodGet, "/api/categorias/todas", "", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var todas []Categoria
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &todas))
	assert.Len(t, todas, 3)
}
