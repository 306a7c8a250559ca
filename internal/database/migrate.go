package database

import (
	"context"
	"fmt"
)

// Table definitions applied at boot. CREATE TABLE IF NOT EXISTS keeps the
// startup idempotent across restarts.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS embarcacoes (
		id SERIAL PRIMARY KEY,
		nome_embarcacao VARCHAR(255) NOT NULL,
		rgp VARCHAR(20) NOT NULL,
		tipo_casco VARCHAR(100) NOT NULL,
		outro_tipo_casco VARCHAR(255),
		arqueacao_bruta DECIMAL(10,2) NOT NULL,
		tipo_propulsao VARCHAR(100) NOT NULL,
		outro_tipo_propulsao VARCHAR(255),
		porto_base VARCHAR(255) NOT NULL,
		uf VARCHAR(2) NOT NULL,
		municipio VARCHAR(255) NOT NULL,
		responsavel VARCHAR(255) NOT NULL,
		contato TEXT,
		observacoes TEXT,
		anexos JSONB,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		review_note TEXT,
		reviewed_at TIMESTAMPTZ,
		version INTEGER NOT NULL DEFAULT 1,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS desembarques (
		id SERIAL PRIMARY KEY,
		embarcacao_id INTEGER NOT NULL REFERENCES embarcacoes(id),
		data_desembarque DATE NOT NULL,
		local_desembarque VARCHAR(255) NOT NULL,
		destinacao VARCHAR(100) NOT NULL,
		outro_destinacao VARCHAR(255),
		arte_pesca VARCHAR(100) NOT NULL,
		outro_arte_pesca VARCHAR(255),
		data_saida TIMESTAMPTZ,
		data_retorno TIMESTAMPTZ,
		data_inicio_pesca TIMESTAMPTZ,
		data_fim_pesca TIMESTAMPTZ,
		esforco VARCHAR(100),
		local_pesca VARCHAR(100),
		coordenadas TEXT,
		observacoes TEXT,
		imagens JSONB,
		especies JSONB NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		review_note TEXT,
		reviewed_at TIMESTAMPTZ,
		version INTEGER NOT NULL DEFAULT 1,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS pescadores (
		id SERIAL PRIMARY KEY,
		nome_completo VARCHAR(255) NOT NULL,
		genero VARCHAR(50) NOT NULL,
		outro_genero VARCHAR(255),
		raca VARCHAR(50) NOT NULL,
		outro_raca VARCHAR(255),
		idade INTEGER NOT NULL,
		membros_familia INTEGER NOT NULL,
		uf VARCHAR(2) NOT NULL,
		municipio VARCHAR(255) NOT NULL,
		local_pesca VARCHAR(255) NOT NULL,
		artes JSONB NOT NULL,
		outra_arte VARCHAR(255),
		filiacao_sindicato VARCHAR(255),
		filiacao_associacao VARCHAR(255),
		filiacao_colonia VARCHAR(255),
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		review_note TEXT,
		reviewed_at TIMESTAMPTZ,
		version INTEGER NOT NULL DEFAULT 1,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_embarcacoes_status ON embarcacoes (status)`,
	`CREATE INDEX IF NOT EXISTS idx_desembarques_status ON desembarques (status)`,
	`CREATE INDEX IF NOT EXISTS idx_desembarques_embarcacao ON desembarques (embarcacao_id)`,
	`CREATE INDEX IF NOT EXISTS idx_pescadores_status ON pescadores (status)`,
}

// Migrate creates the record tables and indexes if they do not exist yet.
func (db *Database) Migrate(ctx context.Context) error {
	for _, stmt := range migrations {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
