package services

import "errors"

// Service-level errors. Handlers translate these into the HTTP envelope:
// ErrInvalidInput -> 400, the NotFound errors -> 404, ErrVersionConflict -> 409.
var (
	ErrInvalidInput    = errors.New("dados inválidos")
	ErrVesselNotFound  = errors.New("embarcação não encontrada")
	ErrLandingNotFound = errors.New("desembarque não encontrado")
	ErrFisherNotFound  = errors.New("pescador não encontrado")
	ErrVersionConflict = errors.New("registro foi alterado por outro revisor")
)
