// Package admin builds the view models behind the server-rendered review UI.
// The templates only interpolate; labels, "Outro" folding, date and file-size
// formatting all happen here so they can be tested as plain Go.
package admin

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/GiulianoD/vports/internal/fields"
	"github.com/GiulianoD/vports/internal/models"
)

// Dataset slugs used in admin URLs and tab state.
const (
	DatasetVessels  = "embarcacoes"
	DatasetLandings = "desembarques"
	DatasetFishers  = "pescadores"
)

// ListRow is one line of an admin listing table.
type ListRow struct {
	ID          int64
	DetailURL   string
	Cells       []string
	Status      models.Status
	StatusLabel string
	CreatedAt   string
}

// List is an admin listing table for one dataset.
type List struct {
	Dataset string
	Title   string
	Columns []string
	Rows    []ListRow
}

// DetailField is one labeled value on a detail page, in registry order.
type DetailField struct {
	Label string
	Value string
}

// AttachmentView is one uploaded file on a detail page.
type AttachmentView struct {
	Nome    string
	URL     string
	Size    string
	Icon    string
	IsImage bool
}

// SpeciesRow is one line of the catch table.
type SpeciesRow struct {
	Nome       string
	Quantidade string
}

// SpeciesView is the catch table with its two-decimal total.
type SpeciesView struct {
	Rows  []SpeciesRow
	Total string
}

// Detail is the view model of one record's review page.
type Detail struct {
	Dataset     string
	Title       string
	ID          int64
	Status      models.Status
	StatusLabel string
	Terminal    bool
	Fields      []DetailField
	Attachments []AttachmentView
	Species     *SpeciesView
	ReviewNote  string
	ReviewedAt  string
	CreatedAt   string
	Version     int
	RawJSON     string
	ActionURL   string
}

// VesselList builds the vessels listing table.
func VesselList(vessels []models.Vessel) List {
	l := List{
		Dataset: DatasetVessels,
		Title:   "Embarcações",
		Columns: []string{"Nome", "RGP", "Município/UF", "Enviado em", "Status"},
	}
	for _, v := range vessels {
		l.Rows = append(l.Rows, ListRow{
			ID:        v.ID,
			DetailURL: detailURL(DatasetVessels, v.ID),
			Cells: []string{
				v.NomeEmbarcacao,
				v.RGP,
				v.Municipio + "/" + v.UF,
				FormatDateTime(v.CreatedAt),
			},
			Status:      v.Status,
			StatusLabel: v.Status.Label(),
			CreatedAt:   FormatDateTime(v.CreatedAt),
		})
	}
	return l
}

// LandingList builds the landings listing table.
func LandingList(landings []models.LandingWithVessel) List {
	l := List{
		Dataset: DatasetLandings,
		Title:   "Desembarques",
		Columns: []string{"Embarcação", "Data do Desembarque", "Local", "Destinação", "Enviado em", "Status"},
	}
	for _, d := range landings {
		l.Rows = append(l.Rows, ListRow{
			ID:        d.ID,
			DetailURL: detailURL(DatasetLandings, d.ID),
			Cells: []string{
				vesselRef(d),
				FormatDate(d.DataDesembarque),
				d.LocalDesembarque,
				fields.Fold(d.Destinacao, d.OutroDestinacao),
				FormatDateTime(d.CreatedAt),
			},
			Status:      d.Status,
			StatusLabel: d.Status.Label(),
			CreatedAt:   FormatDateTime(d.CreatedAt),
		})
	}
	return l
}

// FisherList builds the fisher profiles listing table.
func FisherList(profiles []models.FisherProfile) List {
	l := List{
		Dataset: DatasetFishers,
		Title:   "Pescadores",
		Columns: []string{"Nome", "Município/UF", "Idade", "Enviado em", "Status"},
	}
	for _, p := range profiles {
		l.Rows = append(l.Rows, ListRow{
			ID:        p.ID,
			DetailURL: detailURL(DatasetFishers, p.ID),
			Cells: []string{
				p.NomeCompleto,
				p.Municipio + "/" + p.UF,
				strconv.Itoa(p.Idade),
				FormatDateTime(p.CreatedAt),
			},
			Status:      p.Status,
			StatusLabel: p.Status.Label(),
			CreatedAt:   FormatDateTime(p.CreatedAt),
		})
	}
	return l
}

// VesselDetail builds the review page view of one vessel.
func VesselDetail(v *models.Vessel) Detail {
	values := map[string]string{
		"nome_embarcacao": v.NomeEmbarcacao,
		"rgp":             v.RGP,
		"tipo_casco":      fields.Fold(v.TipoCasco, v.OutroTipoCasco),
		"arqueacao_bruta": strconv.FormatFloat(v.ArqueacaoBruta, 'f', -1, 64),
		"tipo_propulsao":  fields.Fold(v.TipoPropulsao, v.OutroTipoPropulsao),
		"porto_base":      v.PortoBase,
		"uf":              v.UF,
		"municipio":       v.Municipio,
		"responsavel":     v.Responsavel,
		"contato":         text(v.Contato),
		"observacoes":     text(v.Observacoes),
	}

	d := newDetail(DatasetVessels, v.NomeEmbarcacao, v.ID, v.Status, v.ReviewNote, v.ReviewedAt, v.CreatedAt, v.Version, v)
	d.Fields = registryFields(fields.Vessel, values)
	d.Attachments = attachmentViews(v.Anexos)
	return d
}

// LandingDetail builds the review page view of one landing.
func LandingDetail(l *models.LandingWithVessel) Detail {
	values := map[string]string{
		"embarcacao_id":     vesselRef(*l),
		"data_desembarque":  FormatDate(l.DataDesembarque),
		"local_desembarque": l.LocalDesembarque,
		"destinacao":        fields.Fold(l.Destinacao, l.OutroDestinacao),
		"arte_pesca":        fields.Fold(l.ArtePesca, l.OutroArtePesca),
		"data_saida":        timeText(l.DataSaida),
		"data_retorno":      timeText(l.DataRetorno),
		"data_inicio_pesca": timeText(l.DataInicioPesca),
		"data_fim_pesca":    timeText(l.DataFimPesca),
		"esforco":           text(l.Esforco),
		"local_pesca":       text(l.LocalPesca),
		"coordenadas":       text(l.Coordenadas),
		"observacoes":       text(l.Observacoes),
	}

	title := fmt.Sprintf("Desembarque #%d", l.ID)
	d := newDetail(DatasetLandings, title, l.ID, l.Status, l.ReviewNote, l.ReviewedAt, l.CreatedAt, l.Version, l)
	d.Fields = registryFields(fields.Landing, values)
	d.Attachments = attachmentViews(l.Imagens)
	d.Species = speciesView(l.Especies)
	return d
}

// FisherDetail builds the review page view of one fisher profile.
func FisherDetail(p *models.FisherProfile) Detail {
	values := map[string]string{
		"nome_completo":       p.NomeCompleto,
		"genero":              fields.Fold(p.Genero, p.OutroGenero),
		"raca":                fields.Fold(p.Raca, p.OutroRaca),
		"idade":               strconv.Itoa(p.Idade),
		"membros_familia":     strconv.Itoa(p.MembrosFamilia),
		"uf":                  p.UF,
		"municipio":           p.Municipio,
		"local_pesca":         p.LocalPesca,
		"artes":               artesText(p.Artes, p.OutraArte),
		"filiacao_sindicato":  text(p.FiliacaoSindicato),
		"filiacao_associacao": text(p.FiliacaoAssociacao),
		"filiacao_colonia":    text(p.FiliacaoColonia),
	}

	d := newDetail(DatasetFishers, p.NomeCompleto, p.ID, p.Status, p.ReviewNote, p.ReviewedAt, p.CreatedAt, p.Version, p)
	d.Fields = registryFields(fields.Fisher, values)
	return d
}

func newDetail(dataset, title string, id int64, status models.Status, note *string, reviewedAt *time.Time, createdAt time.Time, version int, record any) Detail {
	return Detail{
		Dataset:     dataset,
		Title:       title,
		ID:          id,
		Status:      status,
		StatusLabel: status.Label(),
		Terminal:    status.Terminal(),
		ReviewNote:  text(note),
		ReviewedAt:  timeText(reviewedAt),
		CreatedAt:   FormatDateTime(createdAt),
		Version:     version,
		RawJSON:     rawJSON(record),
		ActionURL:   detailURL(dataset, id) + "/review",
	}
}

// registryFields walks the record type's field registry in order, skipping
// "Outro" companion fields (their text is already folded into the parent).
func registryFields(set []fields.Field, values map[string]string) []DetailField {
	companions := map[string]bool{}
	for _, f := range set {
		if f.HasOther() {
			companions[f.OtherFor] = true
		}
	}

	var out []DetailField
	for _, f := range set {
		if companions[f.Name] {
			continue
		}
		value := values[f.Name]
		if value == "" {
			value = Empty
		}
		out = append(out, DetailField{Label: f.Label, Value: value})
	}
	return out
}

func attachmentViews(attachments []models.Attachment) []AttachmentView {
	var out []AttachmentView
	for _, a := range attachments {
		out = append(out, AttachmentView{
			Nome:    a.Nome,
			URL:     "/uploads/" + filepath.Base(a.Caminho),
			Size:    HumanSize(a.Tamanho),
			Icon:    FileIcon(a.Tipo),
			IsImage: a.IsImage(),
		})
	}
	return out
}

func speciesView(species []models.SpeciesCatch) *SpeciesView {
	if len(species) == 0 {
		return nil
	}
	view := &SpeciesView{}
	for _, s := range species {
		view.Rows = append(view.Rows, SpeciesRow{
			Nome:       s.Nome,
			Quantidade: fmt.Sprintf("%.2f kg", s.Quantidade),
		})
	}
	view.Total = fmt.Sprintf("%.2f kg", models.SpeciesTotal(species))
	return view
}

// vesselRef names a landing's vessel, falling back to the raw id when the
// join found no row.
func vesselRef(l models.LandingWithVessel) string {
	if l.NomeEmbarcacao == nil {
		return fmt.Sprintf("Embarcação #%d", l.EmbarcacaoID)
	}
	if l.RGP != nil {
		return fmt.Sprintf("%s (RGP %s)", *l.NomeEmbarcacao, *l.RGP)
	}
	return *l.NomeEmbarcacao
}

// artesText joins the gear multi-select, folding "Outro" with its companion.
func artesText(artes []string, outraArte *string) string {
	out := make([]string, len(artes))
	for i, arte := range artes {
		if arte == fields.Other {
			out[i] = fields.Fold(arte, outraArte)
		} else {
			out[i] = arte
		}
	}
	return strings.Join(out, ", ")
}

func detailURL(dataset string, id int64) string {
	return fmt.Sprintf("/admin/%s/%d", dataset, id)
}

func text(s *string) string {
	if s == nil || *s == "" {
		return ""
	}
	return *s
}

func timeText(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatDateTime(*t)
}

func rawJSON(record any) string {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}
