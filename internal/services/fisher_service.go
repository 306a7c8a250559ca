package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/GiulianoD/vports/internal/fields"
	"github.com/GiulianoD/vports/internal/logger"
	"github.com/GiulianoD/vports/internal/models"
	"github.com/GiulianoD/vports/internal/repository"
)

// Age and household size bounds for fisher profiles.
const (
	MinIdade          = 10
	MaxIdade          = 120
	MinMembrosFamilia = 1
	MaxMembrosFamilia = 30
)

// FiliacoesInput carries the declared affiliations. A nil entry means not
// affiliated; a non-nil entry must carry the organization's name.
type FiliacoesInput struct {
	Sindicato  *string `json:"sindicato"`
	Associacao *string `json:"associacao"`
	Colonia    *string `json:"colonia"`
}

// FisherInput carries the fields of a fisher profile submission. The profile
// form posts JSON, so tags follow the column names.
type FisherInput struct {
	NomeCompleto   string         `json:"nome_completo" binding:"required"`
	Genero         string         `json:"genero" binding:"required"`
	OutroGenero    string         `json:"outro_genero"`
	Raca           string         `json:"raca" binding:"required"`
	OutroRaca      string         `json:"outro_raca"`
	Idade          int            `json:"idade" binding:"gte=10,lte=120"`
	MembrosFamilia int            `json:"membros_familia" binding:"gte=1,lte=30"`
	UF             string         `json:"uf" binding:"required"`
	Municipio      string         `json:"municipio" binding:"required"`
	LocalPesca     string         `json:"local_pesca" binding:"required"`
	Artes          []string       `json:"artes" binding:"min=1"`
	OutraArte      string         `json:"outra_arte"`
	Filiacoes      FiliacoesInput `json:"filiacoes"`
}

// FisherService defines the interface for fisher profile business logic.
type FisherService interface {
	// Submit validates and inserts a fisher profile.
	Submit(ctx context.Context, in FisherInput) (*models.FisherProfile, error)

	// List returns profiles matching the filter, newest first.
	List(ctx context.Context, f repository.Filter) ([]models.FisherProfile, error)

	// GetByID returns ErrFisherNotFound when the id is absent.
	GetByID(ctx context.Context, id int64) (*models.FisherProfile, error)

	// Review applies an approve/reject decision, see VesselService.Review.
	Review(ctx context.Context, id int64, in ReviewInput) (*models.FisherProfile, error)
}

type fisherService struct {
	repo repository.FisherRepository
	log  *logger.Logger
}

// NewFisherService creates a new instance of FisherService.
func NewFisherService(repo repository.FisherRepository, log *logger.Logger) FisherService {
	return &fisherService{
		repo: repo,
		log:  log,
	}
}

func (s *fisherService) Submit(ctx context.Context, in FisherInput) (*models.FisherProfile, error) {
	profile, err := buildFisherProfile(in)
	if err != nil {
		s.log.Warn("Rejected fisher profile submission", map[string]interface{}{
			"reason": err.Error(),
		})
		return nil, err
	}

	stored, err := s.repo.Insert(ctx, profile)
	if err != nil {
		s.log.Error("Failed to insert fisher profile", err, nil)
		return nil, fmt.Errorf("failed to insert fisher profile: %w", err)
	}

	s.log.Info("Fisher profile registered", map[string]interface{}{
		"fisher_id": stored.ID,
		"uf":        stored.UF,
	})
	return stored, nil
}

func (s *fisherService) List(ctx context.Context, f repository.Filter) ([]models.FisherProfile, error) {
	profiles, err := s.repo.List(ctx, f)
	if err != nil {
		s.log.Error("Failed to list fisher profiles", err, nil)
		return nil, fmt.Errorf("failed to list fisher profiles: %w", err)
	}
	return profiles, nil
}

func (s *fisherService) GetByID(ctx context.Context, id int64) (*models.FisherProfile, error) {
	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get fisher profile", err, map[string]interface{}{
			"fisher_id": id,
		})
		return nil, fmt.Errorf("failed to get fisher profile: %w", err)
	}
	if profile == nil {
		return nil, ErrFisherNotFound
	}
	return profile, nil
}

func (s *fisherService) Review(ctx context.Context, id int64, in ReviewInput) (*models.FisherProfile, error) {
	status, err := reviewStatus(in)
	if err != nil {
		return nil, err
	}

	profile, err := s.repo.UpdateStatus(ctx, id, status, strings.TrimSpace(in.Note), in.Version)
	if err != nil {
		s.log.Error("Failed to update fisher profile status", err, map[string]interface{}{
			"fisher_id": id,
		})
		return nil, fmt.Errorf("failed to update fisher profile status: %w", err)
	}
	if profile == nil {
		existing, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get fisher profile: %w", err)
		}
		if existing == nil {
			return nil, ErrFisherNotFound
		}
		return nil, fmt.Errorf("%w: versão atual %d", ErrVersionConflict, existing.Version)
	}

	s.log.Info("Fisher profile reviewed", map[string]interface{}{
		"fisher_id": profile.ID,
		"status":    profile.Status,
	})
	return profile, nil
}

// buildFisherProfile validates the submission and assembles the model.
func buildFisherProfile(in FisherInput) (*models.FisherProfile, error) {
	if strings.TrimSpace(in.NomeCompleto) == "" {
		return nil, invalidf("Nome Completo é obrigatório")
	}
	if err := checkEnum(fields.Fisher, "genero", in.Genero, in.OutroGenero); err != nil {
		return nil, err
	}
	if err := checkEnum(fields.Fisher, "raca", in.Raca, in.OutroRaca); err != nil {
		return nil, err
	}
	if in.Idade < MinIdade || in.Idade > MaxIdade {
		return nil, invalidf("Idade deve estar entre %d e %d", MinIdade, MaxIdade)
	}
	if in.MembrosFamilia < MinMembrosFamilia || in.MembrosFamilia > MaxMembrosFamilia {
		return nil, invalidf("Membros da Família deve estar entre %d e %d", MinMembrosFamilia, MaxMembrosFamilia)
	}
	if err := checkLocation(fields.Fisher, in.UF, in.Municipio); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.LocalPesca) == "" {
		return nil, invalidf("Local Onde Pesca é obrigatório")
	}

	artes, outraArte, err := parseArtes(in.Artes, in.OutraArte)
	if err != nil {
		return nil, err
	}

	filiacoes := []struct {
		label string
		value *string
	}{
		{"Sindicato", in.Filiacoes.Sindicato},
		{"Associação", in.Filiacoes.Associacao},
		{"Colônia", in.Filiacoes.Colonia},
	}
	for _, f := range filiacoes {
		if f.value != nil && strings.TrimSpace(*f.value) == "" {
			return nil, invalidf("informe o nome do(a) %s", f.label)
		}
	}

	return &models.FisherProfile{
		NomeCompleto:       strings.TrimSpace(in.NomeCompleto),
		Genero:             in.Genero,
		OutroGenero:        otherValue(in.Genero, in.OutroGenero),
		Raca:               in.Raca,
		OutroRaca:          otherValue(in.Raca, in.OutroRaca),
		Idade:              in.Idade,
		MembrosFamilia:     in.MembrosFamilia,
		UF:                 in.UF,
		Municipio:          strings.TrimSpace(in.Municipio),
		LocalPesca:         strings.TrimSpace(in.LocalPesca),
		Artes:              artes,
		OutraArte:          outraArte,
		FiliacaoSindicato:  trimmed(in.Filiacoes.Sindicato),
		FiliacaoAssociacao: trimmed(in.Filiacoes.Associacao),
		FiliacaoColonia:    trimmed(in.Filiacoes.Colonia),
	}, nil
}

// parseArtes validates the fishing gear multi-select: every entry must be a
// registry option, duplicates are dropped, and selecting Outro requires the
// companion text.
func parseArtes(artes []string, outraArte string) ([]string, *string, error) {
	f, _ := fields.ByName(fields.Fisher, "artes")

	var selected []string
	seen := map[string]bool{}
	for _, arte := range artes {
		arte = strings.TrimSpace(arte)
		if arte == "" || seen[arte] {
			continue
		}
		if err := fields.CheckEnum(f, arte, outraArte); err != nil {
			return nil, nil, invalid(err)
		}
		seen[arte] = true
		selected = append(selected, arte)
	}
	if len(selected) == 0 {
		return nil, nil, invalidf("selecione ao menos uma Arte de Pesca")
	}

	if seen[fields.Other] {
		return selected, optional(outraArte), nil
	}
	return selected, nil, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	return optional(*s)
}
