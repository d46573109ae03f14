package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/KromaEnergia/erp-admin/internal/utils"
	"go.uber.org/zap"
)

// Handler autentica o único usuário administrador configurado.
type Handler struct {
	Emissor   *Emissor
	Usuario   string
	SenhaHash string
	Log       *zap.Logger
}

func NewHandler(emissor *Emissor, usuario, senhaHash string, log *zap.Logger) *Handler {
	return &Handler{Emissor: emissor, Usuario: usuario, SenhaHash: senhaHash, Log: log.Named("auth")}
}

type loginRequest struct {
	Usuario string `json:"usuario"`
	Senha   string `json:"senha"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Erro(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	usuarioOK := subtle.ConstantTimeCompare([]byte(req.Usuario), []byte(h.Usuario)) == 1
	// compara a senha mesmo com usuário errado
	senhaOK := utils.CheckSenha(h.SenhaHash, req.Senha)
	if !usuarioOK || !senhaOK {
		h.Log.Warn("login recusado", zap.String("usuario", req.Usuario))
		utils.Erro(w, http.StatusUnauthorized, "Usuário ou senha inválidos")
		return
	}

	token, err := h.Emissor.GerarToken(h.Usuario)
	if err != nil {
		h.Log.Error("Erro ao gerar token", zap.Error(err))
		utils.Erro(w, http.StatusInternalServerError, "Erro ao gerar token")
		return
	}
	utils.JSON(w, http.StatusOK, LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.Emissor.TTL().Seconds()),
	})
}
