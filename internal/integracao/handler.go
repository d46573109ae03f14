package integracao

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KromaEnergia/erp-admin/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	Repo     *Repository
	Cifrador utils.Cifrador
	Relogio  utils.Relogio
	Log      *zap.Logger
}

func NewHandler(repo *Repository, cifrador utils.Cifrador, relogio utils.Relogio, log *zap.Logger) *Handler {
	return &Handler{Repo: repo, Cifrador: cifrador, Relogio: relogio, Log: log.Named("integracao")}
}

// TinyConfig é o formato trocado com a tela de integração.
type TinyConfig struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	RedirectURI  string `json:"redirectUri"`
	VercelURL    string `json:"vercelUrl"`
}

type resultadoSalvar struct {
	Success bool                  `json:"success"`
	Data    []CredencialAplicacao `json:"data,omitempty"`
	Error   string                `json:"error,omitempty"`
}

// POST /api/tiny-config
func (h *Handler) Salvar(w http.ResponseWriter, r *http.Request) {
	var cfg TinyConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		utils.JSON(w, http.StatusBadRequest, resultadoSalvar{Error: "JSON inválido"})
		return
	}

	segredo, err := h.Cifrador.Cifrar(cfg.ClientSecret)
	if err != nil {
		h.Log.Error("Erro ao cifrar client_secret", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, resultadoSalvar{Error: "Erro ao salvar configurações"})
		return
	}

	row, err := h.Repo.Salvar(r.Context(), &CredencialAplicacao{
		NomeAplicacao: NomeTiny,
		ClientID:      cfg.ClientID,
		ClientSecret:  segredo,
		DadosAdicionais: DadosAdicionais{
			RedirectURI: cfg.RedirectURI,
			VercelURL:   cfg.VercelURL,
		},
		AtualizadoEm: h.Relogio.Agora(),
	})
	if err != nil {
		h.Log.Error("Erro ao salvar configurações", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, resultadoSalvar{Error: "Erro ao salvar configurações"})
		return
	}

	// a resposta leva o segredo como o usuário digitou
	row.ClientSecret = cfg.ClientSecret
	utils.JSON(w, http.StatusOK, resultadoSalvar{Success: true, Data: []CredencialAplicacao{*row}})
}

// GET /api/tiny-config
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	row, err := h.Repo.BuscarPorNome(r.Context(), NomeTiny)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Erro(w, http.StatusNotFound, "Configurações não encontradas")
		return
	}
	if err != nil {
		h.Log.Error("Erro ao buscar configurações", zap.Error(err))
		utils.Erro(w, http.StatusInternalServerError, "Erro ao buscar configurações")
		return
	}

	segredo, err := h.Cifrador.Decifrar(row.ClientSecret)
	if err != nil {
		h.Log.Error("Erro ao decifrar client_secret", zap.Error(err))
		utils.Erro(w, http.StatusInternalServerError, "Erro ao buscar configurações")
		return
	}

	utils.JSON(w, http.StatusOK, TinyConfig{
		ClientID:     row.ClientID,
		ClientSecret: segredo,
		RedirectURI:  row.DadosAdicionais.RedirectURI,
		VercelURL:    row.DadosAdicionais.VercelURL,
	})
}
