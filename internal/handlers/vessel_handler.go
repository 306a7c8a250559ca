package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apierrors "github.com/GiulianoD/vports/internal/errors"
	"github.com/GiulianoD/vports/internal/export"
	"github.com/GiulianoD/vports/internal/services"
)

// VesselHandler handles vessel registration and review HTTP requests.
type VesselHandler struct {
	service services.VesselService
}

// NewVesselHandler creates a new VesselHandler instance.
func NewVesselHandler(service services.VesselService) *VesselHandler {
	return &VesselHandler{service: service}
}

// Submit handles POST /api/embarcacoes. The body is a multipart form with
// the registration fields plus up to 10 files under "anexos".
func (h *VesselHandler) Submit(c *gin.Context) {
	var in services.VesselInput
	if err := c.ShouldBind(&in); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Dados do formulário inválidos", nil)
		return
	}

	vessel, err := h.service.Submit(c.Request.Context(), in, formFiles(c, "anexos"))
	if err != nil {
		serviceError(c, err)
		return
	}

	created(c, "Embarcação cadastrada com sucesso", vessel)
}

// List handles GET /api/embarcacoes with optional ?status= and ?q= filters.
func (h *VesselHandler) List(c *gin.Context) {
	f, okFilter := listFilter(c)
	if !okFilter {
		return
	}

	vessels, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		serviceError(c, err)
		return
	}
	ok(c, vessels)
}

// ListActive handles GET /api/embarcacoes-ativas: the approved vessels that
// the landing form offers in its vessel picker.
func (h *VesselHandler) ListActive(c *gin.Context) {
	vessels, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	ok(c, vessels)
}

// GetByID handles GET /api/embarcacoes/:id.
func (h *VesselHandler) GetByID(c *gin.Context) {
	id, okID := pathID(c)
	if !okID {
		return
	}

	vessel, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	ok(c, vessel)
}

// Review handles PATCH /api/embarcacoes/:id/status.
func (h *VesselHandler) Review(c *gin.Context) {
	id, okID := pathID(c)
	if !okID {
		return
	}

	var in services.ReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Corpo da requisição inválido", nil)
		return
	}

	vessel, err := h.service.Review(c.Request.Context(), id, in)
	if err != nil {
		serviceError(c, err)
		return
	}
	ok(c, vessel)
}

// Export handles GET /api/embarcacoes/export?format=json|csv with the full
// dataset, unfiltered.
func (h *VesselHandler) Export(c *gin.Context) {
	vessels, err := h.service.List(c.Request.Context(), emptyFilter)
	if err != nil {
		serviceError(c, err)
		return
	}

	switch c.DefaultQuery("format", "json") {
	case "json":
		c.Header("Content-Disposition", "attachment; filename="+export.Filename("embarcacoes", "json"))
		c.JSON(http.StatusOK, vessels)
	case "csv":
		writeCSV(c, "embarcacoes", export.VesselTable(vessels))
	default:
		apierrors.BadRequest(c, "formato inválido: use json ou csv", nil)
	}
}

// formFiles returns the uploaded files under the given multipart field, nil
// when the form carries none.
func formFiles(c *gin.Context, field string) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File[field]
}
