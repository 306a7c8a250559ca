package models

// Status is the review state of a submitted record.
// Every record starts as pending and is moved to approved or rejected
// by a single reviewer action.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is one of the known review states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether s is a final review state.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Label returns the Portuguese display label used by the admin UI.
func (s Status) Label() string {
	switch s {
	case StatusApproved:
		return "Aprovado"
	case StatusRejected:
		return "Reprovado"
	default:
		return "Pendente"
	}
}
