package models

import (
	"time"
)

// Landing represents one row of the desembarques table: a completed fishing
// trip's catch report. A landing always references the vessel that made the
// trip (embarcacao_id is NOT NULL).
type Landing struct {
	ID               int64          `json:"id"`
	EmbarcacaoID     int64          `json:"embarcacao_id"`
	DataDesembarque  time.Time      `json:"data_desembarque"`
	LocalDesembarque string         `json:"local_desembarque"`
	Destinacao       string         `json:"destinacao"`
	OutroDestinacao  *string        `json:"outro_destinacao,omitempty"`
	ArtePesca        string         `json:"arte_pesca"`
	OutroArtePesca   *string        `json:"outro_arte_pesca,omitempty"`
	DataSaida        *time.Time     `json:"data_saida"`
	DataRetorno      *time.Time     `json:"data_retorno"`
	DataInicioPesca  *time.Time     `json:"data_inicio_pesca"`
	DataFimPesca     *time.Time     `json:"data_fim_pesca"`
	Esforco          *string        `json:"esforco"`
	LocalPesca       *string        `json:"local_pesca"`
	Coordenadas      *string        `json:"coordenadas"`
	Observacoes      *string        `json:"observacoes"`
	Imagens          []Attachment   `json:"imagens"`
	Especies         []SpeciesCatch `json:"especies"`
	Status           Status         `json:"status"`
	ReviewNote       *string        `json:"review_note"`
	ReviewedAt       *time.Time     `json:"reviewed_at"`
	Version          int            `json:"version"`
	CreatedAt        time.Time      `json:"created_at"`
}

// LandingWithVessel is a landing joined with the name and registration of its
// vessel. The join is a LEFT JOIN so both fields are nullable: a missing
// vessel yields nulls, not an error.
type LandingWithVessel struct {
	Landing
	NomeEmbarcacao *string `json:"nome_embarcacao"`
	RGP            *string `json:"rgp"`
}
