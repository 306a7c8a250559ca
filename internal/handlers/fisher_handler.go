package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apierrors "github.com/GiulianoD/vports/internal/errors"
	"github.com/GiulianoD/vports/internal/export"
	"github.com/GiulianoD/vports/internal/services"
)

// FisherHandler handles fisher profile HTTP requests.
type FisherHandler struct {
	service services.FisherService
}

// NewFisherHandler creates a new FisherHandler instance.
func NewFisherHandler(service services.FisherService) *FisherHandler {
	return &FisherHandler{service: service}
}

// Submit handles POST /api/pescadores. The profile form posts JSON; there
// are no file uploads on this dataset.
func (h *FisherHandler) Submit(c *gin.Context) {
	var in services.FisherInput
	if err := c.ShouldBindJSON(&in); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Corpo da requisição inválido", nil)
		return
	}

	profile, err := h.service.Submit(c.Request.Context(), in)
	if err != nil {
		serviceError(c, err)
		return
	}

	created(c, "Cadastro de pescador(a) realizado com sucesso", profile)
}

// List handles GET /api/pescadores with optional ?status= and ?q= filters.
func (h *FisherHandler) List(c *gin.Context) {
	f, okFilter := listFilter(c)
	if !okFilter {
		return
	}

	profiles, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		serviceError(c, err)
		return
	}
	ok(c, profiles)
}

// GetByID handles GET /api/pescadores/:id.
func (h *FisherHandler) GetByID(c *gin.Context) {
	id, okID := pathID(c)
	if !okID {
		return
	}

	profile, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	ok(c, profile)
}

// Review handles PATCH /api/pescadores/:id/status.
func (h *FisherHandler) Review(c *gin.Context) {
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

	profile, err := h.service.Review(c.Request.Context(), id, in)
	if err != nil {
		serviceError(c, err)
		return
	}
	ok(c, profile)
}

// Export handles GET /api/pescadores/export?format=json|csv.
func (h *FisherHandler) Export(c *gin.Context) {
	profiles, err := h.service.List(c.Request.Context(), emptyFilter)
	if err != nil {
		serviceError(c, err)
		return
	}

	switch c.DefaultQuery("format", "json") {
	case "json":
		c.Header("Content-Disposition", "attachment; filename="+export.Filename("pescadores", "json"))
		c.JSON(http.StatusOK, profiles)
	case "csv":
		writeCSV(c, "pescadores", export.FisherTable(profiles))
	default:
		apierrors.BadRequest(c, "formato inválido: use json ou csv", nil)
	}
}
