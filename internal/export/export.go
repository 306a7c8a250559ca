// Package export renders full datasets for download. JSON export is the
// record list marshaled as-is; CSV export flattens each record into a quoted
// row. Every CSV field is quoted, with internal quotes doubled, so a file
// with N records always has N+1 lines regardless of commas or newlines in
// the data.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/GiulianoD/vports/internal/models"
)

// Table is a rectangular dataset ready for CSV rendering. The header carries
// the record keys in storage order.
type Table struct {
	Header []string
	Rows   [][]string
}

// WriteCSV writes the table with every field quoted. encoding/csv only quotes
// fields that need it, so the fixed always-quoted shape is produced here.
func WriteCSV(w io.Writer, t Table) error {
	if err := writeLine(w, t.Header); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := writeLine(w, row); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, fields []string) error {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

// VesselTable flattens vessels for CSV export.
func VesselTable(vessels []models.Vessel) Table {
	t := Table{Header: []string{
		"id", "nome_embarcacao", "rgp", "tipo_casco", "outro_tipo_casco",
		"arqueacao_bruta", "tipo_propulsao", "outro_tipo_propulsao",
		"porto_base", "uf", "municipio", "responsavel", "contato", "observacoes",
		"anexos", "status", "review_note", "reviewed_at", "version", "created_at",
	}}
	for _, v := range vessels {
		t.Rows = append(t.Rows, []string{
			cellInt(v.ID),
			v.NomeEmbarcacao,
			v.RGP,
			v.TipoCasco,
			cellText(v.OutroTipoCasco),
			cellFloat(v.ArqueacaoBruta),
			v.TipoPropulsao,
			cellText(v.OutroTipoPropulsao),
			v.PortoBase,
			v.UF,
			v.Municipio,
			v.Responsavel,
			cellText(v.Contato),
			cellText(v.Observacoes),
			cellJSON(v.Anexos),
			string(v.Status),
			cellText(v.ReviewNote),
			cellTimePtr(v.ReviewedAt),
			strconv.Itoa(v.Version),
			cellTime(v.CreatedAt),
		})
	}
	return t
}

// LandingTable flattens landings (with their joined vessel fields) for CSV
// export.
func LandingTable(landings []models.LandingWithVessel) Table {
	t := Table{Header: []string{
		"id", "embarcacao_id", "nome_embarcacao", "rgp",
		"data_desembarque", "local_desembarque",
		"destinacao", "outro_destinacao", "arte_pesca", "outro_arte_pesca",
		"data_saida", "data_retorno", "data_inicio_pesca", "data_fim_pesca",
		"esforco", "local_pesca", "coordenadas", "observacoes",
		"imagens", "especies", "status", "review_note", "reviewed_at",
		"version", "created_at",
	}}
	for _, l := range landings {
		t.Rows = append(t.Rows, []string{
			cellInt(l.ID),
			cellInt(l.EmbarcacaoID),
			cellText(l.NomeEmbarcacao),
			cellText(l.RGP),
			cellTime(l.DataDesembarque),
			l.LocalDesembarque,
			l.Destinacao,
			cellText(l.OutroDestinacao),
			l.ArtePesca,
			cellText(l.OutroArtePesca),
			cellTimePtr(l.DataSaida),
			cellTimePtr(l.DataRetorno),
			cellTimePtr(l.DataInicioPesca),
			cellTimePtr(l.DataFimPesca),
			cellText(l.Esforco),
			cellText(l.LocalPesca),
			cellText(l.Coordenadas),
			cellText(l.Observacoes),
			cellJSON(l.Imagens),
			cellJSON(l.Especies),
			string(l.Status),
			cellText(l.ReviewNote),
			cellTimePtr(l.ReviewedAt),
			strconv.Itoa(l.Version),
			cellTime(l.CreatedAt),
		})
	}
	return t
}

// FisherTable flattens fisher profiles for CSV export.
func FisherTable(profiles []models.FisherProfile) Table {
	t := Table{Header: []string{
		"id", "nome_completo", "genero", "outro_genero", "raca", "outro_raca",
		"idade", "membros_familia", "uf", "municipio", "local_pesca",
		"artes", "outra_arte",
		"filiacao_sindicato", "filiacao_associacao", "filiacao_colonia",
		"status", "review_note", "reviewed_at", "version", "created_at",
	}}
	for _, p := range profiles {
		t.Rows = append(t.Rows, []string{
			cellInt(p.ID),
			p.NomeCompleto,
			p.Genero,
			cellText(p.OutroGenero),
			p.Raca,
			cellText(p.OutroRaca),
			strconv.Itoa(p.Idade),
			strconv.Itoa(p.MembrosFamilia),
			p.UF,
			p.Municipio,
			p.LocalPesca,
			strings.Join(p.Artes, "; "),
			cellText(p.OutraArte),
			cellText(p.FiliacaoSindicato),
			cellText(p.FiliacaoAssociacao),
			cellText(p.FiliacaoColonia),
			string(p.Status),
			cellText(p.ReviewNote),
			cellTimePtr(p.ReviewedAt),
			strconv.Itoa(p.Version),
			cellTime(p.CreatedAt),
		})
	}
	return t
}

// Filename builds the download name for an export: "<dataset>-20060102.csv".
func Filename(dataset, format string) string {
	return fmt.Sprintf("%s-%s.%s", dataset, time.Now().Format("20060102"), format)
}

func cellText(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func cellInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func cellFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func cellTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func cellTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return cellTime(*t)
}

// cellJSON serializes a structured column (attachments, species) the same way
// it is stored, so the CSV cell round-trips.
func cellJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil || string(data) == "null" {
		return ""
	}
	return string(data)
}
