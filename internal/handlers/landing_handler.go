package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apierrors "github.com/GiulianoD/vports/internal/errors"
	"github.com/GiulianoD/vports/internal/export"
	"github.com/GiulianoD/vports/internal/services"
)

// LandingHandler handles landing report and review HTTP requests.
type LandingHandler struct {
	service services.LandingService
}

// NewLandingHandler creates a new LandingHandler instance.
func NewLandingHandler(service services.LandingService) *LandingHandler {
	return &LandingHandler{service: service}
}

// Submit handles POST /api/desembarques. The body is a multipart form with
// the report fields, the especie[]/quantidade[] species rows and up to 10
// files under "imagens".
func (h *LandingHandler) Submit(c *gin.Context) {
	var in services.LandingInput
	if err := c.ShouldBind(&in); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Dados do formulário inválidos", nil)
		return
	}

	landing, err := h.service.Submit(c.Request.Context(), in, formFiles(c, "imagens"))
	if err != nil {
		serviceError(c, err)
		return
	}

	created(c, "Desembarque registrado com sucesso", landing)
}

// List handles GET /api/desembarques with optional ?status= and ?q= filters.
// Each row carries the joined vessel name and registration.
func (h *LandingHandler) List(c *gin.Context) {
	f, okFilter := listFilter(c)
	if !okFilter {
		return
	}

	landings, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		serviceError(c, err)
		return
	}
	ok(c, landings)
}

// GetByID handles GET /api/desembarques/:id.
func (h *LandingHandler) GetByID(c *gin.Context) {
	id, okID := pathID(c)
	if !okID {
		return
	}

	landing, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	ok(c, landing)
}

// Review handles PATCH /api/desembarques/:id/status.
func (h *LandingHandler) Review(c *gin.Context) {
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

	landing, err := h.service.Review(c.Request.Context(), id, in)
	if err != nil {
		serviceError(c, err)
		return
	}
	ok(c, landing)
}

// Export handles GET /api/desembarques/export?format=json|csv.
func (h *LandingHandler) Export(c *gin.Context) {
	landings, err := h.service.List(c.Request.Context(), emptyFilter)
	if err != nil {
		serviceError(c, err)
		return
	}

	switch c.DefaultQuery("format", "json") {
	case "json":
		c.Header("Content-Disposition", "attachment; filename="+export.Filename("desembarques", "json"))
		c.JSON(http.StatusOK, landings)
	case "csv":
		writeCSV(c, "desembarques", export.LandingTable(landings))
	default:
		apierrors.BadRequest(c, "formato inválido: use json ou csv", nil)
	}
}
