package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/KromaEnergia/erp-admin/internal/utils"
	"github.com/golang-jwt/jwt/v5"
)

const Issuer = "erp-admin"

type Claims struct {
	Usuario string `json:"usuario"`
	jwt.RegisteredClaims
}

// Emissor assina e valida os access tokens (HS256).
type Emissor struct {
	segredo []byte
	ttl     time.Duration
	relogio utils.Relogio
}

func NovoEmissor(segredo string, ttl time.Duration, relogio utils.Relogio) *Emissor {
	return &Emissor{segredo: []byte(segredo), ttl: ttl, relogio: relogio}
}

func (e *Emissor) TTL() time.Duration { return e.ttl }

// GerarToken gera um JWT para o usuário com validade ttl
func (e *Emissor) GerarToken(usuario string) (string, error) {
	agora := e.relogio.Agora()
	claims := &Claims{
		Usuario: usuario,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   usuario,
			IssuedAt:  jwt.NewNumericDate(agora),
			ExpiresAt: jwt.NewNumericDate(agora.Add(e.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(e.segredo)
}

// ValidarToken valida assinatura, emissor e expiração e retorna as claims
func (e *Emissor) ValidarToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return e.segredo, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(e.relogio.Agora),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("token inválido ou expirado: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("não foi possível extrair claims")
	}
	return claims, nil
}
