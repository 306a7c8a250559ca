package handlers

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GiulianoD/vports/internal/admin"
	"github.com/GiulianoD/vports/internal/fields"
	"github.com/GiulianoD/vports/internal/middleware"
	"github.com/GiulianoD/vports/internal/models"
	"github.com/GiulianoD/vports/internal/repository"
	"github.com/GiulianoD/vports/internal/services"
)

// AdminHandler renders the server-side review UI and the public forms.
type AdminHandler struct {
	vessels  services.VesselService
	landings services.LandingService
	fishers  services.FisherService
}

// NewAdminHandler creates a new AdminHandler instance.
func NewAdminHandler(vessels services.VesselService, landings services.LandingService, fishers services.FisherService) *AdminHandler {
	return &AdminHandler{
		vessels:  vessels,
		landings: landings,
		fishers:  fishers,
	}
}

// statusOptions feeds the status filter dropdown and the review buttons.
var statusOptions = []gin.H{
	{"Value": models.StatusPending, "Label": models.StatusPending.Label()},
	{"Value": models.StatusApproved, "Label": models.StatusApproved.Label()},
	{"Value": models.StatusRejected, "Label": models.StatusRejected.Label()},
}

// Dashboard handles GET /admin: one tab per dataset with a status dropdown
// and free-text search, all as query parameters so views are linkable.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	tab := c.DefaultQuery("tab", admin.DatasetVessels)

	// An unknown status in the query string just means no status filter.
	f := repository.Filter{
		Status: models.Status(c.Query("status")),
		Query:  c.Query("q"),
	}
	if !f.Status.Valid() {
		f.Status = ""
	}

	var (
		list admin.List
		err  error
	)
	switch tab {
	case admin.DatasetLandings:
		var landings []models.LandingWithVessel
		landings, err = h.landings.List(c.Request.Context(), f)
		list = admin.LandingList(landings)
	case admin.DatasetFishers:
		var profiles []models.FisherProfile
		profiles, err = h.fishers.List(c.Request.Context(), f)
		list = admin.FisherList(profiles)
	default:
		tab = admin.DatasetVessels
		var vessels []models.Vessel
		vessels, err = h.vessels.List(c.Request.Context(), f)
		list = admin.VesselList(vessels)
	}
	if err != nil {
		h.renderError(c, http.StatusInternalServerError, "Erro ao carregar os registros")
		return
	}

	c.HTML(http.StatusOK, "admin_list.html", gin.H{
		"Tab":      tab,
		"Status":   string(f.Status),
		"Query":    f.Query,
		"List":     list,
		"Statuses": statusOptions,
		"Erro":     c.Query("erro"),
	})
}

// Detail handles GET /admin/:dataset/:id: the full record with labeled
// fields, attachments, species table and the review form.
func (h *AdminHandler) Detail(c *gin.Context) {
	view, status, message := h.detailView(c)
	if message != "" {
		h.renderError(c, status, message)
		return
	}

	c.HTML(http.StatusOK, "admin_detail.html", gin.H{
		"Detail": view,
		"Erro":   c.Query("erro"),
	})
}

// Review handles POST /admin/:dataset/:id/review: the detail page's review
// form. On success it redirects back to the listing; on failure back to the
// detail page with the error message in the query string.
func (h *AdminHandler) Review(c *gin.Context) {
	dataset := c.Param("dataset")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.renderError(c, http.StatusBadRequest, "id inválido")
		return
	}

	in := services.ReviewInput{
		Status: c.PostForm("status"),
		Note:   c.PostForm("review_note"),
	}
	if raw := c.PostForm("version"); raw != "" {
		if version, err := strconv.Atoi(raw); err == nil {
			in.Version = &version
		}
	}

	switch dataset {
	case admin.DatasetVessels:
		_, err = h.vessels.Review(c.Request.Context(), id, in)
	case admin.DatasetLandings:
		_, err = h.landings.Review(c.Request.Context(), id, in)
	case admin.DatasetFishers:
		_, err = h.fishers.Review(c.Request.Context(), id, in)
	default:
		h.renderError(c, http.StatusNotFound, "Página não encontrada")
		return
	}

	if err != nil {
		if log := middleware.GetLogger(c); log != nil {
			log.Warn("Review action failed", map[string]interface{}{
				"dataset": dataset,
				"id":      id,
				"reason":  err.Error(),
			})
		}
		back := "/admin/" + dataset + "/" + strconv.FormatInt(id, 10) +
			"?erro=" + url.QueryEscape(err.Error())
		c.Redirect(http.StatusSeeOther, back)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin?tab="+dataset)
}

// FormVessel handles GET /form/embarcacao.
func (h *AdminHandler) FormVessel(c *gin.Context) {
	c.HTML(http.StatusOK, "form_embarcacao.html", gin.H{
		"TiposCasco":     options(fields.Vessel, "tipo_casco"),
		"TiposPropulsao": options(fields.Vessel, "tipo_propulsao"),
		"UFs":            fields.UFs,
		"MunicipiosJSON": municipiosJSON(),
	})
}

// FormLanding handles GET /form/desembarque. The vessel picker only offers
// approved vessels.
func (h *AdminHandler) FormLanding(c *gin.Context) {
	vessels, err := h.vessels.ListActive(c.Request.Context())
	if err != nil {
		h.renderError(c, http.StatusInternalServerError, "Erro ao carregar as embarcações ativas")
		return
	}

	c.HTML(http.StatusOK, "form_desembarque.html", gin.H{
		"Vessels":     vessels,
		"Destinacoes": options(fields.Landing, "destinacao"),
		"ArtesPesca":  options(fields.Landing, "arte_pesca"),
	})
}

// FormFisher handles GET /form/pescadores.
func (h *AdminHandler) FormFisher(c *gin.Context) {
	c.HTML(http.StatusOK, "form_pescadores.html", gin.H{
		"Generos":        options(fields.Fisher, "genero"),
		"Racas":          options(fields.Fisher, "raca"),
		"Artes":          options(fields.Fisher, "artes"),
		"UFs":            fields.UFs,
		"MunicipiosJSON": municipiosJSON(),
	})
}

func (h *AdminHandler) detailView(c *gin.Context) (admin.Detail, int, string) {
	dataset := c.Param("dataset")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return admin.Detail{}, http.StatusBadRequest, "id inválido"
	}

	switch dataset {
	case admin.DatasetVessels:
		vessel, err := h.vessels.GetByID(c.Request.Context(), id)
		if err != nil {
			status, message := detailError(err, "Embarcação não encontrada")
			return admin.Detail{}, status, message
		}
		return admin.VesselDetail(vessel), 0, ""
	case admin.DatasetLandings:
		landing, err := h.landings.GetByID(c.Request.Context(), id)
		if err != nil {
			status, message := detailError(err, "Desembarque não encontrado")
			return admin.Detail{}, status, message
		}
		return admin.LandingDetail(landing), 0, ""
	case admin.DatasetFishers:
		profile, err := h.fishers.GetByID(c.Request.Context(), id)
		if err != nil {
			status, message := detailError(err, "Pescador(a) não encontrado(a)")
			return admin.Detail{}, status, message
		}
		return admin.FisherDetail(profile), 0, ""
	}
	return admin.Detail{}, http.StatusNotFound, "Página não encontrada"
}

// detailError maps a service error to the admin error page's status and
// message.
func detailError(err error, notFound string) (int, string) {
	if errors.Is(err, services.ErrVesselNotFound) ||
		errors.Is(err, services.ErrLandingNotFound) ||
		errors.Is(err, services.ErrFisherNotFound) {
		return http.StatusNotFound, notFound
	}
	return http.StatusInternalServerError, "Erro ao carregar o registro"
}

func (h *AdminHandler) renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "admin_error.html", gin.H{"Message": message})
}

// options returns a registry field's enum options for a form template.
func options(set []fields.Field, name string) []string {
	f, _ := fields.ByName(set, name)
	return f.Options
}

// municipiosJSON serializes the UF -> municipality cascade for inlining into
// the form pages' script block.
func municipiosJSON() template.JS {
	data, err := json.Marshal(fields.Municipios)
	if err != nil {
		return "{}"
	}
	return template.JS(data)
}
