package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/GiulianoD/vports/internal/database"
	"github.com/GiulianoD/vports/internal/models"
)

// LandingRepository defines the interface for landing data access operations.
type LandingRepository interface {
	// Insert persists a new landing row and returns the stored record.
	Insert(ctx context.Context, l *models.Landing) (*models.Landing, error)

	// List returns landings matching the filter, newest first, each joined
	// with the name and registration of its vessel. A dangling vessel
	// reference yields null join fields, not an error.
	List(ctx context.Context, f Filter) ([]models.LandingWithVessel, error)

	// GetByID returns nil, nil when the id is absent.
	GetByID(ctx context.Context, id int64) (*models.LandingWithVessel, error)

	// UpdateStatus applies a review action, see VesselRepository.UpdateStatus.
	UpdateStatus(ctx context.Context, id int64, status models.Status, note string, expectedVersion *int) (*models.Landing, error)
}

const landingColumns = `
	d.id, d.embarcacao_id, d.data_desembarque, d.local_desembarque,
	d.destinacao, d.outro_destinacao, d.arte_pesca, d.outro_arte_pesca,
	d.data_saida, d.data_retorno, d.data_inicio_pesca, d.data_fim_pesca,
	d.esforco, d.local_pesca, d.coordenadas, d.observacoes,
	d.imagens, d.especies, d.status, d.review_note, d.reviewed_at,
	d.version, d.created_at`

type landingRepository struct {
	db *database.Database
}

// NewLandingRepository creates a new instance of LandingRepository.
func NewLandingRepository(db *database.Database) LandingRepository {
	return &landingRepository{db: db}
}

func landingDests(l *models.Landing) []any {
	return []any{
		&l.ID,
		&l.EmbarcacaoID,
		&l.DataDesembarque,
		&l.LocalDesembarque,
		&l.Destinacao,
		&l.OutroDestinacao,
		&l.ArtePesca,
		&l.OutroArtePesca,
		&l.DataSaida,
		&l.DataRetorno,
		&l.DataInicioPesca,
		&l.DataFimPesca,
		&l.Esforco,
		&l.LocalPesca,
		&l.Coordenadas,
		&l.Observacoes,
		&l.Imagens,
		&l.Especies,
		&l.Status,
		&l.ReviewNote,
		&l.ReviewedAt,
		&l.Version,
		&l.CreatedAt,
	}
}

func scanLanding(row pgx.Row) (*models.Landing, error) {
	var l models.Landing
	if err := row.Scan(landingDests(&l)...); err != nil {
		return nil, err
	}
	return &l, nil
}

func scanLandingWithVessel(row pgx.Row) (*models.LandingWithVessel, error) {
	var l models.LandingWithVessel
	dests := append(landingDests(&l.Landing), &l.NomeEmbarcacao, &l.RGP)
	if err := row.Scan(dests...); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *landingRepository) Insert(ctx context.Context, l *models.Landing) (*models.Landing, error) {
	query := `
		INSERT INTO desembarques (
			embarcacao_id, data_desembarque, local_desembarque,
			destinacao, outro_destinacao, arte_pesca, outro_arte_pesca,
			data_saida, data_retorno, data_inicio_pesca, data_fim_pesca,
			esforco, local_pesca, coordenadas, observacoes,
			imagens, especies, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING ` + unqualified(landingColumns)

	var imagens any
	if len(l.Imagens) > 0 {
		imagens = l.Imagens
	}

	row := r.db.Pool.QueryRow(ctx, query,
		l.EmbarcacaoID,
		l.DataDesembarque,
		l.LocalDesembarque,
		l.Destinacao,
		l.OutroDestinacao,
		l.ArtePesca,
		l.OutroArtePesca,
		l.DataSaida,
		l.DataRetorno,
		l.DataInicioPesca,
		l.DataFimPesca,
		l.Esforco,
		l.LocalPesca,
		l.Coordenadas,
		l.Observacoes,
		imagens,
		l.Especies,
		models.StatusPending,
	)

	stored, err := scanLanding(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert landing: %w", err)
	}
	return stored, nil
}

func (r *landingRepository) List(ctx context.Context, f Filter) ([]models.LandingWithVessel, error) {
	query := `
		SELECT` + landingColumns + `, e.nome_embarcacao, e.rgp
		FROM desembarques d
		LEFT JOIN embarcacoes e ON e.id = d.embarcacao_id`

	var args []any
	query, args = appendFilter(query, f, "d.status", []string{
		"e.nome_embarcacao", "d.local_desembarque", "d.data_desembarque::text",
		"d.destinacao", "d.arte_pesca", "d.observacoes",
	})
	query += " ORDER BY d.created_at DESC"

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query landings: %w", err)
	}
	defer rows.Close()

	results := []models.LandingWithVessel{}
	for rows.Next() {
		l, err := scanLandingWithVessel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan landing row: %w", err)
		}
		results = append(results, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating landing rows: %w", err)
	}

	return results, nil
}

func (r *landingRepository) GetByID(ctx context.Context, id int64) (*models.LandingWithVessel, error) {
	query := `
		SELECT` + landingColumns + `, e.nome_embarcacao, e.rgp
		FROM desembarques d
		LEFT JOIN embarcacoes e ON e.id = d.embarcacao_id
		WHERE d.id = $1`

	l, err := scanLandingWithVessel(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query landing %d: %w", id, err)
	}
	return l, nil
}

func (r *landingRepository) UpdateStatus(ctx context.Context, id int64, status models.Status, note string, expectedVersion *int) (*models.Landing, error) {
	query := `
		UPDATE desembarques d
		SET status = $1, review_note = $2, reviewed_at = CURRENT_TIMESTAMP,
			version = version + 1
		WHERE d.id = $3 AND ($4::int IS NULL OR d.version = $4)
		RETURNING ` + landingColumns

	l, err := scanLanding(r.db.Pool.QueryRow(ctx, query, status, note, id, expectedVersion))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update landing %d status: %w", id, err)
	}
	return l, nil
}

// unqualified strips the "d." table qualifier from the column list for use
// in INSERT ... RETURNING, where no alias is in scope.
func unqualified(columns string) string {
	return strings.ReplaceAll(columns, "d.", "")
}
