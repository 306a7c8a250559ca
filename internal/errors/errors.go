package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/GiulianoD/vports/internal/middleware"
)

// Envelope is the JSON error body shared by every endpoint. Successful
// responses use the same shape with success=true and a data field.
type Envelope struct {
	Success   bool                   `json:"success"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
}

// NotFound returns a 404 response with the standard envelope.
func NotFound(c *gin.Context, message string) {
	requestID := middleware.GetRequestID(c)

	if log := middleware.GetLogger(c); log != nil {
		log.Warn("Resource not found", map[string]interface{}{
			"message": message,
			"path":    c.Request.URL.Path,
		})
	}

	c.JSON(http.StatusNotFound, Envelope{
		Success:   false,
		Message:   message,
		RequestID: requestID,
	})
}

// BadRequest returns a 400 response with optional per-field details.
func BadRequest(c *gin.Context, message string, details map[string]interface{}) {
	requestID := middleware.GetRequestID(c)

	logFields := map[string]interface{}{
		"message": message,
		"path":    c.Request.URL.Path,
	}
	if details != nil {
		logFields["details"] = details
	}
	if log := middleware.GetLogger(c); log != nil {
		log.Warn("Bad request", logFields)
	}

	c.JSON(http.StatusBadRequest, Envelope{
		Success:   false,
		Message:   message,
		Details:   details,
		RequestID: requestID,
	})
}

// Conflict returns a 409 response. Used when a review carries a stale
// version and another reviewer changed the record in between.
func Conflict(c *gin.Context, message string) {
	requestID := middleware.GetRequestID(c)

	if log := middleware.GetLogger(c); log != nil {
		log.Warn("Conflicting update", map[string]interface{}{
			"message": message,
			"path":    c.Request.URL.Path,
		})
	}

	c.JSON(http.StatusConflict, Envelope{
		Success:   false,
		Message:   message,
		RequestID: requestID,
	})
}

// InternalServerError returns a 500 response. The underlying error is logged
// with full context but never sent to the client.
func InternalServerError(c *gin.Context, message string, err error) {
	requestID := middleware.GetRequestID(c)

	if log := middleware.GetLogger(c); log != nil {
		log.Error("Internal server error", err, map[string]interface{}{
			"message": message,
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	}

	c.JSON(http.StatusInternalServerError, Envelope{
		Success:   false,
		Message:   message,
		RequestID: requestID,
	})
}

// ValidationError returns a 400 response with field-specific validation
// errors parsed from the validator library.
func ValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	requestID := middleware.GetRequestID(c)

	details := make(map[string]interface{})
	for _, err := range validationErrors {
		details[err.Field()] = formatValidationError(err)
	}

	if log := middleware.GetLogger(c); log != nil {
		log.Warn("Validation error", map[string]interface{}{
			"path":   c.Request.URL.Path,
			"fields": details,
		})
	}

	c.JSON(http.StatusBadRequest, Envelope{
		Success:   false,
		Message:   "Validação falhou para um ou mais campos",
		Details:   details,
		RequestID: requestID,
	})
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "Campo obrigatório"
	case "min":
		return "Valor muito curto ou pequeno (mínimo: " + err.Param() + ")"
	case "max":
		return "Valor muito longo ou grande (máximo: " + err.Param() + ")"
	case "len":
		return "Deve ter comprimento " + err.Param()
	case "gt":
		return "Deve ser maior que " + err.Param()
	case "gte":
		return "Deve ser maior ou igual a " + err.Param()
	case "lt":
		return "Deve ser menor que " + err.Param()
	case "lte":
		return "Deve ser menor ou igual a " + err.Param()
	case "oneof":
		return "Deve ser um de: " + err.Param()
	case "numeric":
		return "Deve ser numérico"
	default:
		return "Validação falhou para a regra: " + err.Tag()
	}
}
