package models

import (
	"time"
)

// Vessel represents one row of the embarcacoes table.
// Nullable columns use pointers to distinguish zero values from NULL.
// JSON keys match the column names so API responses mirror the stored row.
type Vessel struct {
	ID                 int64        `json:"id"`
	NomeEmbarcacao     string       `json:"nome_embarcacao"`
	RGP                string       `json:"rgp"`
	TipoCasco          string       `json:"tipo_casco"`
	OutroTipoCasco     *string      `json:"outro_tipo_casco,omitempty"`
	ArqueacaoBruta     float64      `json:"arqueacao_bruta"`
	TipoPropulsao      string       `json:"tipo_propulsao"`
	OutroTipoPropulsao *string      `json:"outro_tipo_propulsao,omitempty"`
	PortoBase          string       `json:"porto_base"`
	UF                 string       `json:"uf"`
	Municipio          string       `json:"municipio"`
	Responsavel        string       `json:"responsavel"`
	Contato            *string      `json:"contato"`
	Observacoes        *string      `json:"observacoes"`
	Anexos             []Attachment `json:"anexos"`
	Status             Status       `json:"status"`
	ReviewNote         *string      `json:"review_note"`
	ReviewedAt         *time.Time   `json:"reviewed_at"`
	Version            int          `json:"version"`
	CreatedAt          time.Time    `json:"created_at"`
}
