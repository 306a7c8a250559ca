// Package fields holds the declarative field metadata shared by server-side
// validation, the public form templates and the admin detail rendering.
// Each record type has exactly one registry, so the label dictionary, the
// enum options and the "Outro" companion pairing cannot drift between the
// validation layer and the UI.
package fields

import (
	"fmt"
	"strings"
)

// Other is the literal enum option that activates a companion free-text
// field. When a select equals Other, the companion carries the effective
// value.
const Other = "Outro"

// Kind describes how a field is entered and rendered.
type Kind int

const (
	Text Kind = iota
	TextArea
	Number
	Date
	DateTime
	Select
	MultiSelect
)

// Field is one entry of a record type's registry.
type Field struct {
	Name     string   // column / JSON name
	Label    string   // human-readable label (pt-BR)
	Kind     Kind
	Options  []string // enum options for Select/MultiSelect
	OtherFor string   // name of the companion field revealed on Other, "" if none
	Required bool
}

// HasOther reports whether the field carries an Other companion.
func (f Field) HasOther() bool { return f.OtherFor != "" }

// Vessel is the registry for embarcacoes submissions.
var Vessel = []Field{
	{Name: "nome_embarcacao", Label: "Nome da Embarcação", Kind: Text, Required: true},
	{Name: "rgp", Label: "RGP", Kind: Text, Required: true},
	{Name: "tipo_casco", Label: "Tipo de Casco", Kind: Select, Required: true,
		Options: []string{"Madeira", "Fibra de Vidro", "Alumínio", "Aço", Other},
		OtherFor: "outro_tipo_casco"},
	{Name: "outro_tipo_casco", Label: "Especifique o Tipo de Casco", Kind: Text},
	{Name: "arqueacao_bruta", Label: "Arqueação Bruta", Kind: Number, Required: true},
	{Name: "tipo_propulsao", Label: "Tipo de Propulsão", Kind: Select, Required: true,
		Options: []string{"Motor", "Vela", "Remo", Other},
		OtherFor: "outro_tipo_propulsao"},
	{Name: "outro_tipo_propulsao", Label: "Especifique o Tipo de Propulsão", Kind: Text},
	{Name: "porto_base", Label: "Porto Base", Kind: Text, Required: true},
	{Name: "uf", Label: "UF", Kind: Select, Required: true, Options: UFs},
	{Name: "municipio", Label: "Município", Kind: Text, Required: true},
	{Name: "responsavel", Label: "Responsável", Kind: Text, Required: true},
	{Name: "contato", Label: "Contato", Kind: Text},
	{Name: "observacoes", Label: "Observações", Kind: TextArea},
}

// Landing is the registry for desembarques submissions.
var Landing = []Field{
	{Name: "embarcacao_id", Label: "ID da Embarcação", Kind: Number, Required: true},
	{Name: "data_desembarque", Label: "Data do Desembarque", Kind: Date, Required: true},
	{Name: "local_desembarque", Label: "Local do Desembarque", Kind: Text, Required: true},
	{Name: "destinacao", Label: "Destinação", Kind: Select, Required: true,
		Options: []string{"Venda", "Consumo Próprio", "Doação", Other},
		OtherFor: "outro_destinacao"},
	{Name: "outro_destinacao", Label: "Especifique a Destinação", Kind: Text},
	{Name: "arte_pesca", Label: "Arte de Pesca", Kind: Select, Required: true,
		Options: []string{"Rede de Espera", "Arrasto", "Linha de Mão", "Espinhel", "Tarrafa", Other},
		OtherFor: "outro_arte_pesca"},
	{Name: "outro_arte_pesca", Label: "Especifique a Arte de Pesca", Kind: Text},
	{Name: "data_saida", Label: "Data de Saída", Kind: DateTime},
	{Name: "data_retorno", Label: "Data de Retorno", Kind: DateTime},
	{Name: "data_inicio_pesca", Label: "Data de Início da Pesca", Kind: DateTime},
	{Name: "data_fim_pesca", Label: "Data de Fim da Pesca", Kind: DateTime},
	{Name: "esforco", Label: "Esforço de Pesca", Kind: Text},
	{Name: "local_pesca", Label: "Local de Pesca (FAO)", Kind: Text},
	{Name: "coordenadas", Label: "Coordenadas", Kind: Text},
	{Name: "observacoes", Label: "Observações", Kind: TextArea},
}

// Fisher is the registry for pescadores submissions.
var Fisher = []Field{
	{Name: "nome_completo", Label: "Nome Completo", Kind: Text, Required: true},
	{Name: "genero", Label: "Gênero", Kind: Select, Required: true,
		Options: []string{"Masculino", "Feminino", Other},
		OtherFor: "outro_genero"},
	{Name: "outro_genero", Label: "Especifique o Gênero", Kind: Text},
	{Name: "raca", Label: "Raça/Cor", Kind: Select, Required: true,
		Options: []string{"Branca", "Preta", "Parda", "Amarela", "Indígena", Other},
		OtherFor: "outro_raca"},
	{Name: "outro_raca", Label: "Especifique a Raça/Cor", Kind: Text},
	{Name: "idade", Label: "Idade", Kind: Number, Required: true},
	{Name: "membros_familia", Label: "Membros da Família", Kind: Number, Required: true},
	{Name: "uf", Label: "UF", Kind: Select, Required: true, Options: UFs},
	{Name: "municipio", Label: "Município", Kind: Text, Required: true},
	{Name: "local_pesca", Label: "Local Onde Pesca", Kind: Text, Required: true},
	{Name: "artes", Label: "Artes de Pesca", Kind: MultiSelect, Required: true,
		Options: []string{"Rede de Espera", "Arrasto", "Linha de Mão", "Espinhel", "Tarrafa", Other},
		OtherFor: "outra_arte"},
	{Name: "outra_arte", Label: "Especifique a Outra Arte", Kind: Text},
	{Name: "filiacao_sindicato", Label: "Sindicato", Kind: Text},
	{Name: "filiacao_associacao", Label: "Associação", Kind: Text},
	{Name: "filiacao_colonia", Label: "Colônia", Kind: Text},
}

// metaLabels covers the review/bookkeeping columns shared by every record
// type plus the structured columns rendered specially by the admin UI.
var metaLabels = map[string]string{
	"id":             "ID",
	"status":         "Status",
	"review_note":    "Nota de Revisão",
	"reviewed_at":    "Data de Revisão",
	"version":        "Versão",
	"created_at":     "Data de Criação",
	"anexos":         "Arquivos Anexados",
	"imagens":        "Imagens Anexadas",
	"especies":       "Espécies Capturadas",
	"nome_embarcacao": "Nome da Embarcação",
	"rgp":            "RGP",
}

// ByName looks a field up in a registry.
func ByName(set []Field, name string) (Field, bool) {
	for _, f := range set {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Label resolves the display label for a field name, falling back to the
// shared meta labels and finally to the raw name.
func Label(set []Field, name string) string {
	if f, ok := ByName(set, name); ok {
		return f.Label
	}
	if l, ok := metaLabels[name]; ok {
		return l
	}
	return name
}

// CheckEnum validates an enum value against the field's options and enforces
// the Other companion invariant: selecting Other requires a non-empty
// companion text.
func CheckEnum(f Field, value, otherValue string) error {
	if value == "" {
		if f.Required {
			return fmt.Errorf("%s é obrigatório", f.Label)
		}
		return nil
	}
	found := false
	for _, opt := range f.Options {
		if opt == value {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%s inválido: %q", f.Label, value)
	}
	if value == Other && f.HasOther() && strings.TrimSpace(otherValue) == "" {
		return fmt.Errorf("especifique %s (Outro)", f.Label)
	}
	return nil
}

// Fold returns the display value for an enum field, folding the Other
// companion into its parent: "Outro (texto livre)".
func Fold(value string, otherValue *string) string {
	if value == Other && otherValue != nil && *otherValue != "" {
		return fmt.Sprintf("%s (%s)", Other, *otherValue)
	}
	return value
}
