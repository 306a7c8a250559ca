package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckEnum(t *testing.T) {
	casco, ok := ByName(Vessel, "tipo_casco")
	require.True(t, ok)

	tests := []struct {
		name    string
		value   string
		other   string
		wantErr bool
	}{
		{"valid option", "Madeira", "", false},
		{"unknown option", "Concreto", "", true},
		{"required empty", "", "", true},
		{"outro without companion", "Outro", "", true},
		{"outro with blank companion", "Outro", "   ", true},
		{"outro with companion", "Outro", "Casco misto", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckEnum(casco, tt.value, tt.other)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckEnum_OptionalEmptyValue(t *testing.T) {
	f := Field{Name: "x", Label: "X", Kind: Select, Options: []string{"A", "B"}}
	assert.NoError(t, CheckEnum(f, "", ""))
}

func TestFold(t *testing.T) {
	texto := "Casco misto"
	assert.Equal(t, "Outro (Casco misto)", Fold("Outro", &texto))
	assert.Equal(t, "Madeira", Fold("Madeira", &texto))
	assert.Equal(t, "Outro", Fold("Outro", nil))

	vazio := ""
	assert.Equal(t, "Outro", Fold("Outro", &vazio))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Nome da Embarcação", Label(Vessel, "nome_embarcacao"))
	assert.Equal(t, "Status", Label(Vessel, "status"))
	assert.Equal(t, "campo_qualquer", Label(Vessel, "campo_qualquer"))
}

// Every field naming an Other companion must have that companion registered,
// and the companion's options list must contain Other.
func TestRegistries_OtherCompanionsExist(t *testing.T) {
	for _, set := range [][]Field{Vessel, Landing, Fisher} {
		for _, f := range set {
			if !f.HasOther() {
				continue
			}
			_, ok := ByName(set, f.OtherFor)
			assert.True(t, ok, "companion %s of %s not registered", f.OtherFor, f.Name)
			assert.Contains(t, f.Options, Other, "field %s pairs a companion but lacks the Outro option", f.Name)
		}
	}
}

func TestMunicipios_CoverAllUFs(t *testing.T) {
	for _, uf := range UFs {
		assert.NotEmpty(t, Municipios[uf], "UF %s has no municipality list", uf)
	}
}
