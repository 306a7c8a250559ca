package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/GiulianoD/vports/internal/fields"
	"github.com/GiulianoD/vports/internal/logger"
	"github.com/GiulianoD/vports/internal/models"
	"github.com/GiulianoD/vports/internal/repository"
	"github.com/GiulianoD/vports/internal/storage"
)

// LandingInput carries the fields of a landing report form. Dates arrive as
// the raw form strings and are parsed here, so a bad date yields a pt-BR
// validation message instead of a binding error. The species list arrives as
// parallel especie[]/quantidade[] arrays, one entry per dynamic form row.
type LandingInput struct {
	EmbarcacaoID     int64    `form:"embarcacaoId" binding:"gt=0"`
	DataDesembarque  string   `form:"dataDesembarque" binding:"required"`
	LocalDesembarque string   `form:"localDesembarque" binding:"required"`
	Destinacao       string   `form:"destinacao" binding:"required"`
	OutroDestinacao  string   `form:"outroDestinacao"`
	ArtePesca        string   `form:"artePesca" binding:"required"`
	OutroArtePesca   string   `form:"outroArtePesca"`
	DataSaida        string   `form:"dataSaida"`
	DataRetorno      string   `form:"dataRetorno"`
	DataInicioPesca  string   `form:"dataInicioPesca"`
	DataFimPesca     string   `form:"dataFimPesca"`
	LocalPesca       string   `form:"localPesca"`
	Coordenadas      string   `form:"coordenadas"`
	Observacoes      string   `form:"observacoes"`
	Especies         []string `form:"especie[]"`
	Quantidades      []string `form:"quantidade[]"`
}

// LandingService defines the interface for landing business logic operations.
type LandingService interface {
	// Submit validates a landing report, stages its images, inserts the row
	// and publishes the files. The referenced vessel must exist. The fishing
	// effort is recomputed server-side from the start/end timestamps.
	Submit(ctx context.Context, in LandingInput, files []*multipart.FileHeader) (*models.Landing, error)

	// List returns landings matching the filter, newest first, joined with
	// their vessel's name and registration.
	List(ctx context.Context, f repository.Filter) ([]models.LandingWithVessel, error)

	// GetByID returns ErrLandingNotFound when the id is absent.
	GetByID(ctx context.Context, id int64) (*models.LandingWithVessel, error)

	// Review applies an approve/reject decision, see VesselService.Review.
	Review(ctx context.Context, id int64, in ReviewInput) (*models.Landing, error)
}

type landingService struct {
	repo    repository.LandingRepository
	vessels repository.VesselRepository
	store   *storage.Store
	log     *logger.Logger
}

// NewLandingService creates a new instance of LandingService.
func NewLandingService(repo repository.LandingRepository, vessels repository.VesselRepository, store *storage.Store, log *logger.Logger) LandingService {
	return &landingService{
		repo:    repo,
		vessels: vessels,
		store:   store,
		log:     log,
	}
}

func (s *landingService) Submit(ctx context.Context, in LandingInput, files []*multipart.FileHeader) (*models.Landing, error) {
	landing, err := buildLanding(in)
	if err != nil {
		s.log.Warn("Rejected landing submission", map[string]interface{}{
			"reason": err.Error(),
		})
		return nil, err
	}

	vessel, err := s.vessels.GetByID(ctx, landing.EmbarcacaoID)
	if err != nil {
		s.log.Error("Failed to check landing vessel", err, map[string]interface{}{
			"embarcacao_id": landing.EmbarcacaoID,
		})
		return nil, fmt.Errorf("failed to check vessel: %w", err)
	}
	if vessel == nil {
		return nil, invalidf("embarcação %d não encontrada", landing.EmbarcacaoID)
	}

	staged, err := s.store.Stage(files)
	if err != nil {
		if errors.Is(err, storage.ErrFileTooLarge) || errors.Is(err, storage.ErrTooManyFiles) {
			return nil, invalid(err)
		}
		s.log.Error("Failed to stage landing images", err, nil)
		return nil, fmt.Errorf("failed to stage images: %w", err)
	}
	landing.Imagens = staged.Attachments()

	stored, err := s.repo.Insert(ctx, landing)
	if err != nil {
		staged.Discard()
		s.log.Error("Failed to insert landing", err, map[string]interface{}{
			"embarcacao_id": landing.EmbarcacaoID,
		})
		return nil, fmt.Errorf("failed to insert landing: %w", err)
	}

	if err := staged.Commit(); err != nil {
		s.log.Error("Failed to publish landing images", err, map[string]interface{}{
			"landing_id": stored.ID,
		})
	}

	s.log.Info("Landing reported", map[string]interface{}{
		"landing_id":    stored.ID,
		"embarcacao_id": stored.EmbarcacaoID,
		"especies":      len(stored.Especies),
	})
	return stored, nil
}

func (s *landingService) List(ctx context.Context, f repository.Filter) ([]models.LandingWithVessel, error) {
	landings, err := s.repo.List(ctx, f)
	if err != nil {
		s.log.Error("Failed to list landings", err, nil)
		return nil, fmt.Errorf("failed to list landings: %w", err)
	}
	return landings, nil
}

func (s *landingService) GetByID(ctx context.Context, id int64) (*models.LandingWithVessel, error) {
	landing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get landing", err, map[string]interface{}{
			"landing_id": id,
		})
		return nil, fmt.Errorf("failed to get landing: %w", err)
	}
	if landing == nil {
		return nil, ErrLandingNotFound
	}
	return landing, nil
}

func (s *landingService) Review(ctx context.Context, id int64, in ReviewInput) (*models.Landing, error) {
	status, err := reviewStatus(in)
	if err != nil {
		return nil, err
	}

	landing, err := s.repo.UpdateStatus(ctx, id, status, strings.TrimSpace(in.Note), in.Version)
	if err != nil {
		s.log.Error("Failed to update landing status", err, map[string]interface{}{
			"landing_id": id,
		})
		return nil, fmt.Errorf("failed to update landing status: %w", err)
	}
	if landing == nil {
		existing, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get landing: %w", err)
		}
		if existing == nil {
			return nil, ErrLandingNotFound
		}
		return nil, fmt.Errorf("%w: versão atual %d", ErrVersionConflict, existing.Version)
	}

	s.log.Info("Landing reviewed", map[string]interface{}{
		"landing_id": landing.ID,
		"status":     landing.Status,
	})
	return landing, nil
}

// buildLanding validates the form input and assembles the model, including
// the parsed species list and the recomputed fishing effort.
func buildLanding(in LandingInput) (*models.Landing, error) {
	if in.EmbarcacaoID <= 0 {
		return nil, invalidf("Embarcação é obrigatória")
	}

	dataDesembarque, err := parseDate("Data do Desembarque", in.DataDesembarque)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.LocalDesembarque) == "" {
		return nil, invalidf("Local do Desembarque é obrigatório")
	}
	if err := checkEnum(fields.Landing, "destinacao", in.Destinacao, in.OutroDestinacao); err != nil {
		return nil, err
	}
	if err := checkEnum(fields.Landing, "arte_pesca", in.ArtePesca, in.OutroArtePesca); err != nil {
		return nil, err
	}

	dataSaida, err := parseDateTime("Data de Saída", in.DataSaida)
	if err != nil {
		return nil, err
	}
	dataRetorno, err := parseDateTime("Data de Retorno", in.DataRetorno)
	if err != nil {
		return nil, err
	}
	dataInicioPesca, err := parseDateTime("Data de Início da Pesca", in.DataInicioPesca)
	if err != nil {
		return nil, err
	}
	dataFimPesca, err := parseDateTime("Data de Fim da Pesca", in.DataFimPesca)
	if err != nil {
		return nil, err
	}

	especies, err := parseSpecies(in.Especies, in.Quantidades)
	if err != nil {
		return nil, err
	}

	return &models.Landing{
		EmbarcacaoID:     in.EmbarcacaoID,
		DataDesembarque:  dataDesembarque,
		LocalDesembarque: strings.TrimSpace(in.LocalDesembarque),
		Destinacao:       in.Destinacao,
		OutroDestinacao:  otherValue(in.Destinacao, in.OutroDestinacao),
		ArtePesca:        in.ArtePesca,
		OutroArtePesca:   otherValue(in.ArtePesca, in.OutroArtePesca),
		DataSaida:        dataSaida,
		DataRetorno:      dataRetorno,
		DataInicioPesca:  dataInicioPesca,
		DataFimPesca:     dataFimPesca,
		Esforco:          ComputeEffort(dataInicioPesca, dataFimPesca),
		LocalPesca:       optional(in.LocalPesca),
		Coordenadas:      optional(in.Coordenadas),
		Observacoes:      optional(in.Observacoes),
		Especies:         especies,
	}, nil
}

// parseSpecies pairs the especie[]/quantidade[] arrays into the catch list.
// Fully empty rows (the form's spare blank row) are skipped; a half-filled
// row is an error. At least one valid pair is required.
func parseSpecies(names, quantities []string) ([]models.SpeciesCatch, error) {
	n := len(names)
	if len(quantities) > n {
		n = len(quantities)
	}

	var species []models.SpeciesCatch
	for i := 0; i < n; i++ {
		var name, qty string
		if i < len(names) {
			name = strings.TrimSpace(names[i])
		}
		if i < len(quantities) {
			qty = strings.TrimSpace(quantities[i])
		}
		if name == "" && qty == "" {
			continue
		}
		if name == "" {
			return nil, invalidf("espécie sem nome na linha %d", i+1)
		}
		value, err := strconv.ParseFloat(qty, 64)
		if err != nil || value <= 0 {
			return nil, invalidf("quantidade inválida para %s: %q", name, qty)
		}
		species = append(species, models.SpeciesCatch{Nome: name, Quantidade: value})
	}

	if len(species) == 0 {
		return nil, invalidf("informe ao menos uma espécie capturada")
	}
	return species, nil
}
