package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GiulianoD/vports/internal/models"
)

func TestWriteCSV_AlwaysQuoted(t *testing.T) {
	table := Table{
		Header: []string{"a", "b"},
		Rows: [][]string{
			{"plain", "with, comma"},
			{`with "quotes"`, "second"},
		},
	}

	var b strings.Builder
	require.NoError(t, WriteCSV(&b, table))
	out := b.String()

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3, "N records must yield N+1 lines")

	assert.Equal(t, `"a","b"`, lines[0])
	assert.Equal(t, `"plain","with, comma"`, lines[1])
	assert.Equal(t, `"with ""quotes""","second"`, lines[2])
}

func TestWriteCSV_EmptyDataset(t *testing.T) {
	var b strings.Builder
	require.NoError(t, WriteCSV(&b, Table{Header: []string{"id"}}))
	assert.Equal(t, "\"id\"\n", b.String())
}

func TestVesselTable(t *testing.T) {
	contato := "27 99999-0000"
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	table := VesselTable([]models.Vessel{
		{
			ID:             1,
			NomeEmbarcacao: "Estrela do Mar",
			RGP:            "123456-7",
			TipoCasco:      "Madeira",
			ArqueacaoBruta: 12.5,
			TipoPropulsao:  "Motor",
			PortoBase:      "Vitória",
			UF:             "ES",
			Municipio:      "Vitória",
			Responsavel:    "José",
			Contato:        &contato,
			Anexos:         []models.Attachment{{Nome: "doc.pdf", Caminho: "uploads/doc.pdf", Tamanho: 100, Tipo: "application/pdf"}},
			Status:         models.StatusPending,
			Version:        1,
			CreatedAt:      created,
		},
	})

	require.Len(t, table.Rows, 1)
	require.Equal(t, len(table.Header), len(table.Rows[0]), "row width must match header")

	row := table.Rows[0]
	assert.Equal(t, "1", row[0])
	assert.Equal(t, "12.5", row[5])
	assert.Equal(t, "pending", row[15])
	assert.Contains(t, row[14], `"nome":"doc.pdf"`)
}

func TestVesselTable_EmptyOptionalCells(t *testing.T) {
	table := VesselTable([]models.Vessel{{ID: 2, NomeEmbarcacao: "Sem Anexos"}})

	row := table.Rows[0]
	assert.Equal(t, "", row[4], "outro_tipo_casco")
	assert.Equal(t, "", row[12], "contato")
	assert.Equal(t, "", row[14], "anexos")
	assert.Equal(t, "", row[17], "reviewed_at")
}

func TestLandingTable_JoinedVesselFields(t *testing.T) {
	nome := "Estrela do Mar"
	rgp := "123456-7"

	table := LandingTable([]models.LandingWithVessel{
		{
			Landing: models.Landing{
				ID:           5,
				EmbarcacaoID: 1,
				Especies:     []models.SpeciesCatch{{Nome: "Dourado", Quantidade: 10}},
			},
			NomeEmbarcacao: &nome,
			RGP:            &rgp,
		},
		{
			Landing: models.Landing{ID: 6, EmbarcacaoID: 99},
		},
	})

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Estrela do Mar", table.Rows[0][2])
	assert.Equal(t, "", table.Rows[1][2], "dangling vessel reference yields an empty cell")
	assert.Contains(t, table.Rows[0][19], `"quantidade":10`)
}

func TestFisherTable_JoinsArtes(t *testing.T) {
	table := FisherTable([]models.FisherProfile{
		{ID: 1, NomeCompleto: "Maria", Artes: []string{"Tarrafa", "Espinhel"}},
	})

	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Tarrafa; Espinhel", table.Rows[0][11])
}

func TestFilename(t *testing.T) {
	name := Filename("embarcacoes", "csv")
	assert.True(t, strings.HasPrefix(name, "embarcacoes-"))
	assert.True(t, strings.HasSuffix(name, ".csv"))
	assert.Len(t, name, len("embarcacoes-20060102.csv"))
}
