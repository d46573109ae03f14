package integracao

import "time"

// NomeTiny identifica a linha de credenciais do Tiny ERP.
const NomeTiny = "Tiny"

type DadosAdicionais struct {
	RedirectURI string `json:"redirectUri"`
	VercelURL   string `json:"vercelUrl"`
}

// CredencialAplicacao é uma linha por aplicação integrada (nome_aplicacao único).
type CredencialAplicacao struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	NomeAplicacao   string          `gorm:"size:100;not null;uniqueIndex" json:"nome_aplicacao"`
	ClientID        string          `json:"client_id"`
	ClientSecret    string          `json:"client_secret"`
	DadosAdicionais DadosAdicionais `gorm:"type:jsonb;serializer:json" json:"dados_adicionais"`
	AtualizadoEm    time.Time       `json:"atualizado_em"`
}

func (CredencialAplicacao) TableName() string { return "credenciais_aplicacoes" }
