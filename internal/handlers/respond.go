package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apierrors "github.com/GiulianoD/vports/internal/errors"
	"github.com/GiulianoD/vports/internal/export"
	"github.com/GiulianoD/vports/internal/middleware"
	"github.com/GiulianoD/vports/internal/models"
	"github.com/GiulianoD/vports/internal/repository"
	"github.com/GiulianoD/vports/internal/services"
)

// emptyFilter lists a full dataset. Exports always cover every record, not
// the admin's filtered view.
var emptyFilter = repository.Filter{}

// SuccessResponse is the JSON envelope of successful API responses.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

func ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: data})
}

func created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{Success: true, Message: message, Data: data})
}

// serviceError translates a service-level error into the HTTP envelope.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		apierrors.BadRequest(c, err.Error(), nil)
	case errors.Is(err, services.ErrVesselNotFound),
		errors.Is(err, services.ErrLandingNotFound),
		errors.Is(err, services.ErrFisherNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrVersionConflict):
		apierrors.Conflict(c, err.Error())
	default:
		apierrors.InternalServerError(c, "Erro ao processar a solicitação", err)
	}
}

// pathID parses the :id path parameter. Writes the 400 response itself when
// the parameter is not a positive integer.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		apierrors.BadRequest(c, "id inválido: "+c.Param("id"), nil)
		return 0, false
	}
	return id, true
}

// listFilter reads the ?status= and ?q= query parameters. Writes the 400
// response itself when the status is not a known value.
func listFilter(c *gin.Context) (repository.Filter, bool) {
	f := repository.Filter{
		Status: models.Status(c.Query("status")),
		Query:  c.Query("q"),
	}
	if f.Status != "" && !f.Status.Valid() {
		apierrors.BadRequest(c, "status inválido: "+string(f.Status), nil)
		return repository.Filter{}, false
	}
	return f, true
}

// writeCSV streams a CSV export with the download headers set. A write
// failure mid-stream can only be logged; the status line is already out.
func writeCSV(c *gin.Context, dataset string, t export.Table) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", "attachment; filename="+export.Filename(dataset, "csv"))
	c.Status(http.StatusOK)

	if err := export.WriteCSV(c.Writer, t); err != nil {
		if log := middleware.GetLogger(c); log != nil {
			log.Error("Failed to stream CSV export", err, map[string]interface{}{
				"dataset": dataset,
			})
		}
	}
}
