package models

import (
	"time"
)

// FisherProfile represents one row of the pescadores table.
// Filiação fields hold the name of the union/association/colony when the
// fisher declared the affiliation, NULL otherwise.
type FisherProfile struct {
	ID                 int64      `json:"id"`
	NomeCompleto       string     `json:"nome_completo"`
	Genero             string     `json:"genero"`
	OutroGenero        *string    `json:"outro_genero,omitempty"`
	Raca               string     `json:"raca"`
	OutroRaca          *string    `json:"outro_raca,omitempty"`
	Idade              int        `json:"idade"`
	MembrosFamilia     int        `json:"membros_familia"`
	UF                 string     `json:"uf"`
	Municipio          string     `json:"municipio"`
	LocalPesca         string     `json:"local_pesca"`
	Artes              []string   `json:"artes"`
	OutraArte          *string    `json:"outra_arte,omitempty"`
	FiliacaoSindicato  *string    `json:"filiacao_sindicato"`
	FiliacaoAssociacao *string    `json:"filiacao_associacao"`
	FiliacaoColonia    *string    `json:"filiacao_colonia"`
	Status             Status     `json:"status"`
	ReviewNote         *string    `json:"review_note"`
	ReviewedAt         *time.Time `json:"reviewed_at"`
	Version            int        `json:"version"`
	CreatedAt          time.Time  `json:"created_at"`
}
