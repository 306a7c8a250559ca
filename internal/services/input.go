package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/GiulianoD/vports/internal/fields"
	"github.com/GiulianoD/vports/internal/models"
)

// Form date layouts. Date comes from an <input type="date">, DateTime from a
// datetime-local input, which may or may not carry seconds.
const (
	dateLayout            = "2006-01-02"
	dateTimeLayout        = "2006-01-02T15:04"
	dateTimeSecondsLayout = "2006-01-02T15:04:05"
)

// ReviewInput is the body of a review (approve/reject) request. Version, when
// present, enables conflict detection: the update is rejected if another
// reviewer changed the record since this reviewer loaded it.
type ReviewInput struct {
	Status  string `json:"status" binding:"required,oneof=approved rejected"`
	Note    string `json:"review_note"`
	Version *int   `json:"version"`
}

// reviewStatus validates the requested review outcome. Only the two terminal
// statuses can be set through the review endpoint.
func reviewStatus(in ReviewInput) (models.Status, error) {
	status := models.Status(strings.TrimSpace(in.Status))
	if status != models.StatusApproved && status != models.StatusRejected {
		return "", invalidf("status de revisão inválido: %q", in.Status)
	}
	return status, nil
}

// invalidf builds a user-correctable validation error carrying a pt-BR
// message, matching errors.Is(err, ErrInvalidInput).
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// invalid wraps a validation error produced elsewhere (field registry checks,
// storage limits) so handlers can dispatch on ErrInvalidInput.
func invalid(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}

// optional trims a free-text input and returns nil for the empty string, so
// blank optional fields are stored as NULL rather than "".
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// otherValue returns the trimmed companion text when the select value is
// Other, nil otherwise. A companion typed but not activated is dropped.
func otherValue(value, companion string) *string {
	if value != fields.Other {
		return nil
	}
	return optional(companion)
}

// checkEnum validates a select field's value (and its Other companion) against
// the registry.
func checkEnum(set []fields.Field, name, value, companion string) error {
	f, ok := fields.ByName(set, name)
	if !ok {
		return fmt.Errorf("campo desconhecido: %s", name)
	}
	if err := fields.CheckEnum(f, strings.TrimSpace(value), companion); err != nil {
		return invalid(err)
	}
	return nil
}

// checkLocation validates the UF against the accepted states and, for states
// with a municipality list, the município against that list.
func checkLocation(set []fields.Field, uf, municipio string) error {
	if err := checkEnum(set, "uf", uf, ""); err != nil {
		return err
	}
	municipio = strings.TrimSpace(municipio)
	if municipio == "" {
		return invalidf("Município é obrigatório")
	}
	list, ok := fields.Municipios[uf]
	if !ok {
		return nil
	}
	for _, m := range list {
		if m == municipio {
			return nil
		}
	}
	return invalidf("Município inválido para %s: %q", uf, municipio)
}

// parseDate parses an <input type="date"> value.
func parseDate(label, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, invalidf("%s é obrigatório", label)
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, invalidf("%s inválida: %q", label, value)
	}
	return t, nil
}

// parseDateTime parses an optional datetime-local value. Empty input yields
// nil.
func parseDateTime(label, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateTimeLayout, value)
	if err != nil {
		t, err = time.Parse(dateTimeSecondsLayout, value)
	}
	if err != nil {
		return nil, invalidf("%s inválida: %q", label, value)
	}
	return &t, nil
}
