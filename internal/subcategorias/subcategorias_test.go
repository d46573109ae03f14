package subcategorias

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/KromaEnergia/erp-admin/internal/consulta"
	"github.com/KromaEnergia/erp-admin/internal/utils"
	"github.com/KromaEnergia/erp-admin/internal/utils/db/dbteste"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func uintPtr(v uint) *uint { return &v }

func TestRepository_FiltroPorCategoria(t *testing.T) {
	repo := NewRepository(dbteste.Abrir(t, &Subcategoria{}))
	ctx := context.Background()

	seed := []Subcategoria{
		{Nome: "Sextavado", CategoriaID: uintPtr(1)},
		{Nome: "Allen", CategoriaID: uintPtr(1)},
		{Nome: "Latex", CategoriaID: uintPtr(2)},
		{Nome: "Avulsa"},
	}
	for i := range seed {
		require.NoError(t, repo.Criar(ctx, &seed[i]))
	}

	list, err := repo.ListarPorCategoria(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Allen", list[0].Nome)

	p := consulta.Parametros{Pagina: 1, PorPagina: 10, Ordenar: "nome", Direcao: consulta.Asc}
	page, total, err := repo.Listar(ctx, p, uintPtr(2))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Latex", page[0].Nome)

	_, total, err = repo.Listar(ctx, p, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
}

func TestRepository_AtualizarEDeletar(t *testing.T) {
	repo := NewRepository(dbteste.Abrir(t, &Subcategoria{}))
	ctx := context.Background()
	criacao := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	s := Subcategoria{Nome: "Allen", CategoriaID: uintPtr(1), DataCriacao: &criacao, DataAtualizacao: &criacao}
	require.NoError(t, repo.Criar(ctx, &s))

	depois := criacao.Add(24 * time.Hour)
	require.NoError(t, repo.Atualizar(ctx, &Subcategoria{ID: s.ID, Nome: "Torx", DataAtualizacao: &depois}))
	got, err := repo.BuscarPorID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Torx", got.Nome)
	assert.Nil(t, got.CategoriaID)
	assert.True(t, got.DataCriacao.Equal(criacao))
	assert.True(t, got.DataAtualizacao.Equal(depois))

	require.NoError(t, repo.Deletar(ctx, s.ID))
	_, err = repo.BuscarPorID(ctx, s.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.Deletar(ctx, s.ID), gorm.ErrRecordNotFound)
}

func TestHandler(t *testing.T) {
	relogio := utils.NovoRelogioFixo(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	h := NewHandler(NewRepository(dbteste.Abrir(t, &Subcategoria{})), relogio, zap.NewNop())

	rec := httptest.NewRecorder()
	h.Criar(rec, httptest.NewRequest(http.MethodPost, "/api/subcategorias", strings.NewReader(`{"nome":"Allen","categoria_id":3}`)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	h.Criar(rec, httptest.NewRequest(http.MethodPost, "/api/subcategorias", strings.NewReader(`{"categoria_id":3}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.Listar(rec, httptest.NewRequest(http.MethodGet, "/api/subcategorias?categoria_id=3", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var pg consulta.Pagina[Subcategoria]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pg))
	assert.Equal(t, int64(1), pg.Total)

	rec = httptest.NewRecorder()
	h.Listar(rec, httptest.NewRequest(http.MethodGet, "/api/subcategorias?categoria_id=abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/categorias/3/subcategorias", nil), map[string]string{"id": "3"})
	h.ListarPorCategoria(rec, r)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []Subcategoria
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Allen", list[0].Nome)

	rec = httptest.NewRecorder()
	r = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/categorias/9/subcategorias", nil), map[string]string{"id": "9"})
	h.ListarPorCategoria(rec, r)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = httptest.NewRecorder()
	r = mux.SetURLVars(httptest.NewRequest(http.MethodPut, "/api/subcategorias/1", strings.NewReader(`{"nome":"Torx","categoria_id":3}`)), map[string]string{"id": "1"})
	h.Atualizar(rec, r)
	require.Equal(t, http.StatusOK, rec.Code)
	var s Subcategoria
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Equal(t, "Torx", s.Nome)

	rec = httptest.NewRecorder()
	r = mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/subcategorias/1", nil), map[string]string{"id": "1"})
	h.Deletar(rec, r)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	r = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/subcategorias/1", nil), map[string]string{"id": "1"})
	h.BuscarPorID(rec, r)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
