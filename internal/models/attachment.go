package models

// Attachment describes one uploaded file without embedding its bytes in the
// database row. The list is persisted as a JSONB array on the record.
type Attachment struct {
	Nome    string `json:"nome"`
	Caminho string `json:"caminho"`
	Tamanho int64  `json:"tamanho"`
	Tipo    string `json:"tipo"`
}

// IsImage reports whether the attachment is an image by MIME type.
func (a Attachment) IsImage() bool {
	return len(a.Tipo) > 6 && a.Tipo[:6] == "image/"
}

// SpeciesCatch is one species/quantity pair of a landing's catch list.
// Quantidade is in kilograms.
type SpeciesCatch struct {
	Nome       string  `json:"nome"`
	Quantidade float64 `json:"quantidade"`
}

// SpeciesTotal sums the quantities of a catch list.
func SpeciesTotal(especies []SpeciesCatch) float64 {
	var total float64
	for _, e := range especies {
		total += e.Quantidade
	}
	return total
}
