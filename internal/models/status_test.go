package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Valid(t *testing.T) {
	tests := []struct {
		status Status
		valid  bool
	}{
		{StatusPending, true},
		{StatusApproved, true},
		{StatusRejected, true},
		{Status(""), false},
		{Status("archived"), false},
		{Status("Aprovado"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, tt.status.Valid(), "status=%q", tt.status)
	}
}

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.True(t, StatusApproved.Terminal())
	assert.True(t, StatusRejected.Terminal())
}

func TestStatus_Label(t *testing.T) {
	assert.Equal(t, "Pendente", StatusPending.Label())
	assert.Equal(t, "Aprovado", StatusApproved.Label())
	assert.Equal(t, "Reprovado", StatusRejected.Label())
}
