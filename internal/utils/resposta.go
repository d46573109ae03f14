package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrIDInvalido = errors.New("ID inválido")

// JSON escreve v como corpo da resposta.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Erro responde {"error": msg}.
func Erro(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"error": msg})
}

// IDDaRota lê {id} da rota do mux.
func IDDaRota(r *http.Request, nome string) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[nome], 10, 64)
	if err != nil || id == 0 {
		return 0, ErrIDInvalido
	}
	return uint(id), nil
}

// ErroBanco responde 404 para registro inexistente e 500 (com log) para o resto.
func ErroBanco(w http.ResponseWriter, log *zap.Logger, err error, naoEncontrado, falha string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		Erro(w, http.StatusNotFound, naoEncontrado)
		return
	}
	log.Error(falha, zap.Error(err))
	Erro(w, http.StatusInternalServerError, falha)
}
