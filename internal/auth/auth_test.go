package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/KromaEnergia/erp-admin/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const segredo = "segredo-de-teste-com-32-caracteres!!"

func novoEmissor() (*Emissor, *utils.RelogioFixo) {
	relogio := utils.NovoRelogioFixo(time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))
	return NovoEmissor(segredo, time.Hour, relogio), relogio
}

func TestEmissor_GerarEValidar(t *testing.T) {
	e, relogio := novoEmissor()

	token, err := e.GerarToken("admin")
	require.NoError(t, err)

	claims, err := e.ValidarToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Usuario)
	assert.Equal(t, Issuer, claims.Issuer)
	assert.True(t, claims.ExpiresAt.Time.Equal(relogio.Agora().Add(time.Hour)))

	relogio.Avancar(61 * time.Minute)
	_, err = e.ValidarToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestEmissor_Rejeita(t *testing.T) {
	e, relogio := novoEmissor()

	outro := NovoEmissor(strings.Repeat("x", 32), time.Hour, relogio)
	alheio, err := outro.GerarToken("admin")
	require.NoError(t, err)

	semExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Usuario:          "admin",
		RegisteredClaims: jwt.RegisteredClaims{Issuer: Issuer},
	}).SignedString([]byte(segredo))
	require.NoError(t, err)

	outroIssuer, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Usuario: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "outro",
			ExpiresAt: jwt.NewNumericDate(relogio.Agora().Add(time.Hour)),
		},
	}).SignedString([]byte(segredo))
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"assinatura": alheio,
		"sem exp":    semExp,
		"issuer":     outroIssuer,
		"lixo":       "nao.e.jwt",
		"alg none":   "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJ1c3VhcmlvIjoiYWRtaW4ifQ.",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := e.ValidarToken(tok)
			assert.Error(t, err)
		})
	}
}

func TestMiddleware(t *testing.T) {
	e, _ := novoEmissor()
	token, err := e.GerarToken("admin")
	require.NoError(t, err)

	var visto string
	protegido := e.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		visto, _ = UsuarioDoContexto(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	cases := []struct {
		name   string
		method string
		path   string
		header string
		want   int
	}{
		{"sem token", http.MethodGet, "/api/produtos", "", http.StatusUnauthorized},
		{"esquema errado", http.MethodGet, "/api/produtos", "Basic abc", http.StatusUnauthorized},
		{"token invalido", http.MethodGet, "/api/produtos", "Bearer abc", http.StatusUnauthorized},
		{"preflight", http.MethodOptions, "/api/produtos", "", http.StatusTeapot},
		{"login", http.MethodPost, RotaLogin, "", http.StatusTeapot},
		{"token valido", http.MethodGet, "/api/produtos", "Bearer " + token, http.StatusTeapot},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			protegido.ServeHTTP(rec, r)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
	assert.Equal(t, "admin", visto)
}

func TestHandler_Login(t *testing.T) {
	e, _ := novoEmissor()
	hash, err := utils.HashSenha("s3nha-forte")
	require.NoError(t, err)
	h := NewHandler(e, "admin", hash, zap.NewNop())

	login := func(body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		h.Login(rec, httptest.NewRequest(http.MethodPost, RotaLogin, strings.NewReader(body)))
		return rec
	}

	rec := login(`{"usuario":"admin","senha":"s3nha-forte"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var res LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "Bearer", res.TokenType)
	assert.EqualValues(t, 3600, res.ExpiresIn)
	claims, err := e.ValidarToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Usuario)

	assert.Equal(t, http.StatusUnauthorized, login(`{"usuario":"admin","senha":"errada"}`).Code)
	assert.Equal(t, http.StatusUnauthorized, login(`{"usuario":"root","senha":"s3nha-forte"}`).Code)
	assert.Equal(t, http.StatusBadRequest, login(`{`).Code)

	semHash := NewHandler(e, "admin", "", zap.NewNop())
	rec = httptest.NewRecorder()
	semHash.Login(rec, httptest.NewRequest(http.MethodPost, RotaLogin, strings.NewReader(`{"usuario":"admin","senha":""}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
