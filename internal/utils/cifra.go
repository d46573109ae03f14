package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"
)

// prefixo dos valores cifrados gravados no banco
const prefixoCifrado = "enc:v1:"

var ErrCifraInvalida = errors.New("valor cifrado inválido")

// Cifrador protege segredos em repouso (ex.: client_secret de integrações).
type Cifrador interface {
	Cifrar(texto string) (string, error)
	Decifrar(valor string) (string, error)
}

// SemCifra grava o texto como veio.
type SemCifra struct{}

func (SemCifra) Cifrar(texto string) (string, error) { return texto, nil }

func (SemCifra) Decifrar(valor string) (string, error) {
	if strings.HasPrefix(valor, prefixoCifrado) {
		return "", fmt.Errorf("%w: chave de credenciais não configurada", ErrCifraInvalida)
	}
	return valor, nil
}

type cifradorXChaCha struct {
	chave []byte
}

// NovoCifrador usa XChaCha20-Poly1305 quando há chave; sem chave devolve SemCifra.
func NovoCifrador(chave []byte) (Cifrador, error) {
	if len(chave) == 0 {
		return SemCifra{}, nil
	}
	if len(chave) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("chave deve ter %d bytes", chacha20poly1305.KeySize)
	}
	return &cifradorXChaCha{chave: append([]byte(nil), chave...)}, nil
}

func (c *cifradorXChaCha) Cifrar(texto string) (string, error) {
	aead, err := chacha20poly1305.NewX(c.chave)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(texto)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	sealed := aead.Seal(nonce, nonce, []byte(texto), nil)
	return prefixoCifrado + base64.RawStdEncoding.EncodeToString(sealed), nil
}

// Decifrar aceita valores antigos gravados em texto puro.
func (c *cifradorXChaCha) Decifrar(valor string) (string, error) {
	if !strings.HasPrefix(valor, prefixoCifrado) {
		return valor, nil
	}
	raw, err := base64.RawStdEncoding.DecodeString(strings.TrimPrefix(valor, prefixoCifrado))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCifraInvalida, err)
	}
	aead, err := chacha20poly1305.NewX(c.chave)
	if err != nil {
		return "", err
	}
	if len(raw) < aead.NonceSize() {
		return "", ErrCifraInvalida
	}
	nonce, ct := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	texto, err := aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCifraInvalida, err)
	}
	return string(texto), nil
}
