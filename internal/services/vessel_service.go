package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"regexp"
	"strings"

	"github.com/GiulianoD/vports/internal/fields"
	"github.com/GiulianoD/vports/internal/logger"
	"github.com/GiulianoD/vports/internal/models"
	"github.com/GiulianoD/vports/internal/repository"
	"github.com/GiulianoD/vports/internal/storage"
)

// rgpPattern matches the Registro Geral da Pesca format: six digits, an
// optional hyphen, and a final check digit.
var rgpPattern = regexp.MustCompile(`^\d{6}-?\d$`)

// VesselInput carries the fields of a vessel registration form. Form tags
// match the public form's input names.
type VesselInput struct {
	NomeEmbarcacao     string  `form:"nomeEmbarcacao" binding:"required"`
	RGP                string  `form:"rgp" binding:"required"`
	TipoCasco          string  `form:"tipoCasco" binding:"required"`
	OutroTipoCasco     string  `form:"outroTipoCasco"`
	ArqueacaoBruta     float64 `form:"arqueacaoBruta" binding:"gte=0"`
	TipoPropulsao      string  `form:"tipoPropulsao" binding:"required"`
	OutroTipoPropulsao string  `form:"outroTipoPropulsao"`
	PortoBase          string  `form:"portoBase" binding:"required"`
	UF                 string  `form:"uf" binding:"required"`
	Municipio          string  `form:"municipio" binding:"required"`
	Responsavel        string  `form:"responsavel" binding:"required"`
	Contato            string  `form:"contato"`
	Observacoes        string  `form:"observacoes"`
}

// VesselService defines the interface for vessel business logic operations.
type VesselService interface {
	// Submit validates a registration, stages its attachments, inserts the
	// row and publishes the files. Returns ErrInvalidInput for
	// user-correctable problems (missing fields, bad RGP, oversized files).
	Submit(ctx context.Context, in VesselInput, files []*multipart.FileHeader) (*models.Vessel, error)

	// List returns vessels matching the filter, newest first.
	List(ctx context.Context, f repository.Filter) ([]models.Vessel, error)

	// ListActive returns approved vessels, for the landing form's vessel
	// picker.
	ListActive(ctx context.Context) ([]models.Vessel, error)

	// GetByID returns ErrVesselNotFound when the id is absent.
	GetByID(ctx context.Context, id int64) (*models.Vessel, error)

	// Review applies an approve/reject decision. Returns ErrVesselNotFound
	// for an absent id and ErrVersionConflict when the caller's version no
	// longer matches the stored row.
	Review(ctx context.Context, id int64, in ReviewInput) (*models.Vessel, error)
}

type vesselService struct {
	repo  repository.VesselRepository
	store *storage.Store
	log   *logger.Logger
}

// NewVesselService creates a new instance of VesselService.
func NewVesselService(repo repository.VesselRepository, store *storage.Store, log *logger.Logger) VesselService {
	return &vesselService{
		repo:  repo,
		store: store,
		log:   log,
	}
}

func (s *vesselService) Submit(ctx context.Context, in VesselInput, files []*multipart.FileHeader) (*models.Vessel, error) {
	if err := validateVesselInput(in); err != nil {
		s.log.Warn("Rejected vessel submission", map[string]interface{}{
			"reason": err.Error(),
		})
		return nil, err
	}

	staged, err := s.store.Stage(files)
	if err != nil {
		if errors.Is(err, storage.ErrFileTooLarge) || errors.Is(err, storage.ErrTooManyFiles) {
			return nil, invalid(err)
		}
		s.log.Error("Failed to stage vessel attachments", err, nil)
		return nil, fmt.Errorf("failed to stage attachments: %w", err)
	}

	vessel := &models.Vessel{
		NomeEmbarcacao:     strings.TrimSpace(in.NomeEmbarcacao),
		RGP:                strings.TrimSpace(in.RGP),
		TipoCasco:          in.TipoCasco,
		OutroTipoCasco:     otherValue(in.TipoCasco, in.OutroTipoCasco),
		ArqueacaoBruta:     in.ArqueacaoBruta,
		TipoPropulsao:      in.TipoPropulsao,
		OutroTipoPropulsao: otherValue(in.TipoPropulsao, in.OutroTipoPropulsao),
		PortoBase:          strings.TrimSpace(in.PortoBase),
		UF:                 in.UF,
		Municipio:          strings.TrimSpace(in.Municipio),
		Responsavel:        strings.TrimSpace(in.Responsavel),
		Contato:            optional(in.Contato),
		Observacoes:        optional(in.Observacoes),
		Anexos:             staged.Attachments(),
	}

	stored, err := s.repo.Insert(ctx, vessel)
	if err != nil {
		staged.Discard()
		s.log.Error("Failed to insert vessel", err, map[string]interface{}{
			"rgp": vessel.RGP,
		})
		return nil, fmt.Errorf("failed to insert vessel: %w", err)
	}

	// The row is committed; a failed publish leaves it referencing missing
	// files, which the admin detail page surfaces as broken links.
	if err := staged.Commit(); err != nil {
		s.log.Error("Failed to publish vessel attachments", err, map[string]interface{}{
			"vessel_id": stored.ID,
		})
	}

	s.log.Info("Vessel registered", map[string]interface{}{
		"vessel_id": stored.ID,
		"rgp":       stored.RGP,
		"anexos":    len(stored.Anexos),
	})
	return stored, nil
}

func (s *vesselService) List(ctx context.Context, f repository.Filter) ([]models.Vessel, error) {
	vessels, err := s.repo.List(ctx, f)
	if err != nil {
		s.log.Error("Failed to list vessels", err, nil)
		return nil, fmt.Errorf("failed to list vessels: %w", err)
	}
	return vessels, nil
}

func (s *vesselService) ListActive(ctx context.Context) ([]models.Vessel, error) {
	return s.List(ctx, repository.Filter{Status: models.StatusApproved})
}

func (s *vesselService) GetByID(ctx context.Context, id int64) (*models.Vessel, error) {
	vessel, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get vessel", err, map[string]interface{}{
			"vessel_id": id,
		})
		return nil, fmt.Errorf("failed to get vessel: %w", err)
	}
	if vessel == nil {
		return nil, ErrVesselNotFound
	}
	return vessel, nil
}

func (s *vesselService) Review(ctx context.Context, id int64, in ReviewInput) (*models.Vessel, error) {
	status, err := reviewStatus(in)
	if err != nil {
		return nil, err
	}

	vessel, err := s.repo.UpdateStatus(ctx, id, status, strings.TrimSpace(in.Note), in.Version)
	if err != nil {
		s.log.Error("Failed to update vessel status", err, map[string]interface{}{
			"vessel_id": id,
		})
		return nil, fmt.Errorf("failed to update vessel status: %w", err)
	}
	if vessel == nil {
		existing, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get vessel: %w", err)
		}
		if existing == nil {
			return nil, ErrVesselNotFound
		}
		return nil, fmt.Errorf("%w: versão atual %d", ErrVersionConflict, existing.Version)
	}

	s.log.Info("Vessel reviewed", map[string]interface{}{
		"vessel_id": vessel.ID,
		"status":    vessel.Status,
	})
	return vessel, nil
}

// validateVesselInput checks the registration fields against the vessel field
// registry plus the RGP format.
func validateVesselInput(in VesselInput) error {
	if strings.TrimSpace(in.NomeEmbarcacao) == "" {
		return invalidf("Nome da Embarcação é obrigatório")
	}

	rgp := strings.TrimSpace(in.RGP)
	if rgp == "" {
		return invalidf("RGP é obrigatório")
	}
	if !rgpPattern.MatchString(rgp) {
		return invalidf("RGP inválido: %q (formato esperado: 000000-0)", rgp)
	}

	if err := checkEnum(fields.Vessel, "tipo_casco", in.TipoCasco, in.OutroTipoCasco); err != nil {
		return err
	}
	if in.ArqueacaoBruta < 0 {
		return invalidf("Arqueação Bruta não pode ser negativa")
	}
	if err := checkEnum(fields.Vessel, "tipo_propulsao", in.TipoPropulsao, in.OutroTipoPropulsao); err != nil {
		return err
	}
	if strings.TrimSpace(in.PortoBase) == "" {
		return invalidf("Porto Base é obrigatório")
	}
	if err := checkLocation(fields.Vessel, in.UF, in.Municipio); err != nil {
		return err
	}
	if strings.TrimSpace(in.Responsavel) == "" {
		return invalidf("Responsável é obrigatório")
	}
	return nil
}
