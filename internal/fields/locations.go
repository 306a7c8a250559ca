package fields

// UFs is the list of states accepted by the forms. The municipality cascade
// only carries lists for the states the program operates in; other entries
// fall back to free-text municipality input.
var UFs = []string{"ES", "BA", "PA"}

// Municipios maps a UF to its selectable municipalities. Served to the form
// templates for the UF -> município cascade.
var Municipios = map[string][]string{
	"ES": {
		"Vitória", "Vila Velha", "Serra", "Cariacica", "Guarapari",
		"Linhares", "Aracruz", "São Mateus", "Anchieta", "Piúma",
		"Itapemirim", "Marataízes", "Conceição da Barra", "Fundão",
	},
	"BA": {
		"Salvador", "Ilhéus", "Itacaré", "Porto Seguro", "Valença", "Itaparica",
	},
	"PA": {
		"Belém", "Santarém", "Vigia", "Bragança", "Afuá", "Curuçá",
	},
}
