package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttachment_IsImage(t *testing.T) {
	assert.True(t, Attachment{Tipo: "image/jpeg"}.IsImage())
	assert.False(t, Attachment{Tipo: "application/pdf"}.IsImage())
	assert.False(t, Attachment{Tipo: "image/"}.IsImage())
	assert.False(t, Attachment{}.IsImage())
}

func TestSpeciesTotal(t *testing.T) {
	especies := []SpeciesCatch{
		{Nome: "Dourado", Quantidade: 120.5},
		{Nome: "Robalo", Quantidade: 30.25},
	}

	assert.Equal(t, 150.75, SpeciesTotal(especies))
	assert.Equal(t, 0.0, SpeciesTotal(nil))
}
