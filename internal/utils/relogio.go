package utils

import "time"

// Relogio abstrai a hora atual; os carimbos data_criacao/data_atualizacao
// são gerados pela aplicação, não pelo banco.
type Relogio interface {
	Agora() time.Time
}

type relogioSistema struct{}

// RelogioSistema devolve a hora do sistema em UTC.
func RelogioSistema() Relogio { return relogioSistema{} }

func (relogioSistema) Agora() time.Time { return time.Now().UTC() }

// RelogioFixo é usado nos testes.
type RelogioFixo struct {
	atual time.Time
}

func NovoRelogioFixo(t time.Time) *RelogioFixo {
	return &RelogioFixo{atual: t}
}

func (r *RelogioFixo) Agora() time.Time { return r.atual }

// Avancar move o relógio para frente.
func (r *RelogioFixo) Avancar(d time.Duration) { r.atual = r.atual.Add(d) }
