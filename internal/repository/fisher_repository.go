package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/GiulianoD/vports/internal/database"
	"github.com/GiulianoD/vports/internal/models"
)

// FisherRepository defines the interface for fisher profile data access.
type FisherRepository interface {
	Insert(ctx context.Context, p *models.FisherProfile) (*models.FisherProfile, error)
	List(ctx context.Context, f Filter) ([]models.FisherProfile, error)
	GetByID(ctx context.Context, id int64) (*models.FisherProfile, error)
	UpdateStatus(ctx context.Context, id int64, status models.Status, note string, expectedVersion *int) (*models.FisherProfile, error)
}

const fisherColumns = `
	id, nome_completo, genero, outro_genero, raca, outro_raca,
	idade, membros_familia, uf, municipio, local_pesca,
	artes, outra_arte, filiacao_sindicato, filiacao_associacao, filiacao_colonia,
	status, review_note, reviewed_at, version, created_at`

type fisherRepository struct {
	db *database.Database
}

// NewFisherRepository creates a new instance of FisherRepository.
func NewFisherRepository(db *database.Database) FisherRepository {
	return &fisherRepository{db: db}
}

func scanFisher(row pgx.Row) (*models.FisherProfile, error) {
	var p models.FisherProfile
	err := row.Scan(
		&p.ID,
		&p.NomeCompleto,
		&p.Genero,
		&p.OutroGenero,
		&p.Raca,
		&p.OutroRaca,
		&p.Idade,
		&p.MembrosFamilia,
		&p.UF,
		&p.Municipio,
		&p.LocalPesca,
		&p.Artes,
		&p.OutraArte,
		&p.FiliacaoSindicato,
		&p.FiliacaoAssociacao,
		&p.FiliacaoColonia,
		&p.Status,
		&p.ReviewNote,
		&p.ReviewedAt,
		&p.Version,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *fisherRepository) Insert(ctx context.Context, p *models.FisherProfile) (*models.FisherProfile, error) {
	query := `
		INSERT INTO pescadores (
			nome_completo, genero, outro_genero, raca, outro_raca,
			idade, membros_familia, uf, municipio, local_pesca,
			artes, outra_arte, filiacao_sindicato, filiacao_associacao, filiacao_colonia,
			status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING` + fisherColumns

	row := r.db.Pool.QueryRow(ctx, query,
		p.NomeCompleto,
		p.Genero,
		p.OutroGenero,
		p.Raca,
		p.OutroRaca,
		p.Idade,
		p.MembrosFamilia,
		p.UF,
		p.Municipio,
		p.LocalPesca,
		p.Artes,
		p.OutraArte,
		p.FiliacaoSindicato,
		p.FiliacaoAssociacao,
		p.FiliacaoColonia,
		models.StatusPending,
	)

	stored, err := scanFisher(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert fisher profile: %w", err)
	}
	return stored, nil
}

func (r *fisherRepository) List(ctx context.Context, f Filter) ([]models.FisherProfile, error) {
	query := `SELECT` + fisherColumns + ` FROM pescadores`

	var args []any
	query, args = appendFilter(query, f, "status", []string{
		"nome_completo", "uf", "municipio", "local_pesca",
	})
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fisher profiles: %w", err)
	}
	defer rows.Close()

	results := []models.FisherProfile{}
	for rows.Next() {
		p, err := scanFisher(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fisher profile row: %w", err)
		}
		results = append(results, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fisher profile rows: %w", err)
	}

	return results, nil
}

func (r *fisherRepository) GetByID(ctx context.Context, id int64) (*models.FisherProfile, error) {
	query := `SELECT` + fisherColumns + ` FROM pescadores WHERE id = $1`

	p, err := scanFisher(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query fisher profile %d: %w", id, err)
	}
	return p, nil
}

func (r *fisherRepository) UpdateStatus(ctx context.Context, id int64, status models.Status, note string, expectedVersion *int) (*models.FisherProfile, error) {
	query := `
		UPDATE pescadores
		SET status = $1, review_note = $2, reviewed_at = CURRENT_TIMESTAMP,
			version = version + 1
		WHERE id = $3 AND ($4::int IS NULL OR version = $4)
		RETURNING` + fisherColumns

	p, err := scanFisher(r.db.Pool.QueryRow(ctx, query, status, note, id, expectedVersion))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update fisher profile %d status: %w", id, err)
	}
	return p, nil
}
