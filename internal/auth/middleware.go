package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/KromaEnergia/erp-admin/internal/utils"
)

// RotaLogin fica fora da autenticação.
const RotaLogin = "/api/auth/login"

type ctxKey string

const CtxUsuario ctxKey = "usuario"

// UsuarioDoContexto devolve o usuário autenticado da requisição.
func UsuarioDoContexto(ctx context.Context) (string, bool) {
	u, ok := ctx.Value(CtxUsuario).(string)
	return u, ok
}

// Middleware exige "Authorization: Bearer <token>" em tudo menos OPTIONS e login.
func (e *Emissor) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions || r.URL.Path == RotaLogin {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			utils.Erro(w, http.StatusUnauthorized, "Token ausente")
			return
		}
		claims, err := e.ValidarToken(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			utils.Erro(w, http.StatusUnauthorized, "Token inválido")
			return
		}
		ctx := context.WithValue(r.Context(), CtxUsuario, claims.Usuario)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
