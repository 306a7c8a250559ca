package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/GiulianoD/vports/internal/database"
	"github.com/GiulianoD/vports/internal/models"
)

// Filter narrows a record listing. The zero value lists everything.
type Filter struct {
	Status models.Status // exact status match, "" for all
	Query  string        // case-insensitive substring over the type's search fields
}

// VesselRepository defines the interface for vessel data access operations.
type VesselRepository interface {
	// Insert persists a new vessel row and returns the stored record,
	// including the generated id, version and created_at.
	Insert(ctx context.Context, v *models.Vessel) (*models.Vessel, error)

	// List returns vessels matching the filter, newest first.
	// Returns an empty slice when nothing matches (not an error).
	List(ctx context.Context, f Filter) ([]models.Vessel, error)

	// GetByID returns nil, nil when the id is absent.
	// Returns error only for actual database failures.
	GetByID(ctx context.Context, id int64) (*models.Vessel, error)

	// UpdateStatus applies a review action. When expectedVersion is non-nil
	// the update only succeeds if the row still carries that version.
	// Returns nil, nil when no row was updated (absent id or stale version).
	UpdateStatus(ctx context.Context, id int64, status models.Status, note string, expectedVersion *int) (*models.Vessel, error)
}

const vesselColumns = `
	id, nome_embarcacao, rgp, tipo_casco, outro_tipo_casco,
	arqueacao_bruta, tipo_propulsao, outro_tipo_propulsao,
	porto_base, uf, municipio, responsavel, contato, observacoes,
	anexos, status, review_note, reviewed_at, version, created_at`

type vesselRepository struct {
	db *database.Database
}

// NewVesselRepository creates a new instance of VesselRepository.
func NewVesselRepository(db *database.Database) VesselRepository {
	return &vesselRepository{db: db}
}

func scanVessel(row pgx.Row) (*models.Vessel, error) {
	var v models.Vessel
	err := row.Scan(
		&v.ID,
		&v.NomeEmbarcacao,
		&v.RGP,
		&v.TipoCasco,
		&v.OutroTipoCasco,
		&v.ArqueacaoBruta,
		&v.TipoPropulsao,
		&v.OutroTipoPropulsao,
		&v.PortoBase,
		&v.UF,
		&v.Municipio,
		&v.Responsavel,
		&v.Contato,
		&v.Observacoes,
		&v.Anexos,
		&v.Status,
		&v.ReviewNote,
		&v.ReviewedAt,
		&v.Version,
		&v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vesselRepository) Insert(ctx context.Context, v *models.Vessel) (*models.Vessel, error) {
	query := `
		INSERT INTO embarcacoes (
			nome_embarcacao, rgp, tipo_casco, outro_tipo_casco,
			arqueacao_bruta, tipo_propulsao, outro_tipo_propulsao,
			porto_base, uf, municipio, responsavel, contato, observacoes,
			anexos, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING` + vesselColumns

	// SQL NULL instead of a JSON null for attachment-less submissions.
	var anexos any
	if len(v.Anexos) > 0 {
		anexos = v.Anexos
	}

	row := r.db.Pool.QueryRow(ctx, query,
		v.NomeEmbarcacao,
		v.RGP,
		v.TipoCasco,
		v.OutroTipoCasco,
		v.ArqueacaoBruta,
		v.TipoPropulsao,
		v.OutroTipoPropulsao,
		v.PortoBase,
		v.UF,
		v.Municipio,
		v.Responsavel,
		v.Contato,
		v.Observacoes,
		anexos,
		models.StatusPending,
	)

	stored, err := scanVessel(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert vessel: %w", err)
	}
	return stored, nil
}

func (r *vesselRepository) List(ctx context.Context, f Filter) ([]models.Vessel, error) {
	query := `SELECT` + vesselColumns + ` FROM embarcacoes`

	var args []any
	query, args = appendFilter(query, f, "status", []string{
		"nome_embarcacao", "rgp", "uf", "municipio", "responsavel",
	})
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query vessels: %w", err)
	}
	defer rows.Close()

	results := []models.Vessel{}
	for rows.Next() {
		v, err := scanVessel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vessel row: %w", err)
		}
		results = append(results, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vessel rows: %w", err)
	}

	return results, nil
}

func (r *vesselRepository) GetByID(ctx context.Context, id int64) (*models.Vessel, error) {
	query := `SELECT` + vesselColumns + ` FROM embarcacoes WHERE id = $1`

	v, err := scanVessel(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query vessel %d: %w", id, err)
	}
	return v, nil
}

func (r *vesselRepository) UpdateStatus(ctx context.Context, id int64, status models.Status, note string, expectedVersion *int) (*models.Vessel, error) {
	query := `
		UPDATE embarcacoes
		SET status = $1, review_note = $2, reviewed_at = CURRENT_TIMESTAMP,
			version = version + 1
		WHERE id = $3 AND ($4::int IS NULL OR version = $4)
		RETURNING` + vesselColumns

	v, err := scanVessel(r.db.Pool.QueryRow(ctx, query, status, note, id, expectedVersion))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update vessel %d status: %w", id, err)
	}
	return v, nil
}

// appendFilter adds WHERE clauses for the status and free-text filters. The
// free-text filter is a case-insensitive substring match over searchColumns.
// Column names are qualified by the caller when the query joins tables.
func appendFilter(query string, f Filter, statusColumn string, searchColumns []string) (string, []any) {
	var args []any
	where := ""

	if f.Status != "" {
		args = append(args, f.Status)
		where = fmt.Sprintf(" WHERE %s = $%d", statusColumn, len(args))
	}
	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		n := len(args)
		clause := ""
		for i, col := range searchColumns {
			if i > 0 {
				clause += " OR "
			}
			clause += fmt.Sprintf("%s ILIKE $%d", col, n)
		}
		if where == "" {
			where = " WHERE (" + clause + ")"
		} else {
			where += " AND (" + clause + ")"
		}
	}

	return query + where, args
}
