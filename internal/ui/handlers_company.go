package ui

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/me/manyas/pkg/model"
)

const companyRoot = "/dashboard/company"

// --- Company dashboard ---

// HandleCompanyDashboard renders the company overview.
func (ui *UI) HandleCompanyDashboard(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	stats, err := sess.Market.CompanyDashboard(r.Context())
	if err != nil {
		ui.renderError(w, r, "Error al cargar el panel", err)
		return
	}
	if stats.Incomplete > 0 {
		ui.logger.Warn("application counts incomplete", "jobs", stats.Incomplete)
	}
	ui.render(w, r, http.StatusOK, "company/dashboard", map[string]any{
		"Title": "Panel de Empresa - Manyas AI",
		"Stats": stats,
	})
}

// --- Jobs ---

// HandleCompanyJobs lists the company's own job openings.
func (ui *UI) HandleCompanyJobs(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	jobs, err := sess.Market.MyJobs(r.Context())
	if err != nil {
		ui.renderError(w, r, "Error al cargar ofertas", err)
		return
	}
	ui.render(w, r, http.StatusOK, "company/jobs", map[string]any{
		"Title":    "Mis Ofertas - Manyas AI",
		"Jobs":     jobs,
		"Statuses": model.JobStatuses,
	})
}

// HandleCompanyJobNew renders the job creation form.
func (ui *UI) HandleCompanyJobNew(w http.ResponseWriter, r *http.Request) {
	ui.renderJobForm(w, r, http.StatusOK, model.JobInput{}, "")
}

func (ui *UI) renderJobForm(w http.ResponseWriter, r *http.Request, status int, form model.JobInput, errMsg string) {
	sess := SessionFromContext(r.Context())
	categories, err := sess.Market.Categories(r.Context())
	if err != nil {
		// The form still works without categories.
		ui.logger.Warn("list categories failed", "error", err)
	}
	data := map[string]any{
		"Title":      "Nueva Oferta - Manyas AI",
		"Form":       form,
		"Categories": categories,
	}
	if errMsg != "" {
		data["Error"] = errMsg
	}
	ui.render(w, r, status, "company/job_new", data)
}

// HandleCompanyJobCreate publishes a new job opening.
func (ui *UI) HandleCompanyJobCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectFlash(w, r, companyRoot+"/jobs/new", "error", msgInvalidRequest)
		return
	}
	in := model.JobInput{
		Title:        strings.TrimSpace(r.FormValue("title")),
		Description:  strings.TrimSpace(r.FormValue("description")),
		Requirements: strings.TrimSpace(r.FormValue("requirements")),
		Deadline:     r.FormValue("deadline"),
		Status:       model.JobOpen,
	}
	if in.Title == "" || in.Description == "" {
		ui.renderJobForm(w, r, http.StatusUnprocessableEntity, in, "El título y la descripción son obligatorios")
		return
	}
	budget, err := model.ParseAmount(r.FormValue("budget"))
	if err != nil {
		ui.renderJobForm(w, r, http.StatusUnprocessableEntity, in, "Presupuesto inválido")
		return
	}
	in.Budget = budget
	if raw := r.FormValue("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			ui.renderJobForm(w, r, http.StatusUnprocessableEntity, in, "Categoría inválida")
			return
		}
		in.CategoryID = &id
	}

	sess := SessionFromContext(r.Context())
	if err := sess.Market.CreateJob(r.Context(), in); err != nil {
		ui.logger.Error("create job failed", "error", err)
		ui.renderJobForm(w, r, http.StatusBadGateway, in, "Error al crear oferta")
		return
	}
	redirectFlash(w, r, companyRoot+"/jobs", "notice", "Oferta creada exitosamente")
}

// HandleCompanyJobDetail renders one job with the applications it received.
func (ui *UI) HandleCompanyJobDetail(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		ui.renderNotFound(w, r, "Oferta no encontrada")
		return
	}
	sess := SessionFromContext(r.Context())
	job, err := sess.Market.Job(r.Context(), id)
	if err != nil {
		ui.renderError(w, r, "Error al cargar la oferta", err)
		return
	}
	apps, err := sess.Market.JobApplications(r.Context(), id)
	if err != nil {
		ui.renderError(w, r, "Error al cargar aplicaciones", err)
		return
	}
	ui.render(w, r, http.StatusOK, "company/job_detail", map[string]any{
		"Title":        job.Title + " - Manyas AI",
		"Job":          job,
		"Applications": apps,
	})
}

// HandleCompanyJobDelete deletes a job opening.
func (ui *UI) HandleCompanyJobDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		redirectFlash(w, r, companyRoot+"/jobs", "error", "Error al eliminar oferta")
		return
	}
	sess := SessionFromContext(r.Context())
	if err := sess.Market.DeleteJob(r.Context(), id); err != nil {
		ui.logger.Error("delete job failed", "job", id, "error", err)
		redirectFlash(w, r, companyRoot+"/jobs", "error", "Error al eliminar oferta")
		return
	}
	redirectFlash(w, r, companyRoot+"/jobs", "notice", "Oferta eliminada")
}

// HandleCompanyJobStatus moves a job to a new status.
func (ui *UI) HandleCompanyJobStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		redirectFlash(w, r, companyRoot+"/jobs", "error", "Error al actualizar estado")
		return
	}
	status := model.JobStatus(r.FormValue("status"))
	if !validJobStatus(status) {
		redirectFlash(w, r, companyRoot+"/jobs", "error", "Error al actualizar estado")
		return
	}
	sess := SessionFromContext(r.Context())
	if err := sess.Market.SetJobStatus(r.Context(), id, status); err != nil {
		ui.logger.Error("update job status failed", "job", id, "status", status, "error", err)
		redirectFlash(w, r, companyRoot+"/jobs", "error", "Error al actualizar estado")
		return
	}
	redirectFlash(w, r, companyRoot+"/jobs", "notice", "Estado actualizado")
}

func validJobStatus(s model.JobStatus) bool {
	for _, v := range model.JobStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// HandleApplicationStatus accepts or rejects an application and returns
// to the job it belongs to.
func (ui *UI) HandleApplicationStatus(w http.ResponseWriter, r *http.Request) {
	back := companyRoot + "/jobs"
	if jobID, err := strconv.ParseInt(r.FormValue("job_id"), 10, 64); err == nil && jobID > 0 {
		back += "/" + strconv.FormatInt(jobID, 10)
	}
	id, err := idParam(r, "id")
	if err != nil {
		redirectFlash(w, r, back, "error", "Error al actualizar estado")
		return
	}
	status := model.ApplicationStatus(r.FormValue("status"))
	sess := SessionFromContext(r.Context())
	if err := sess.Market.SetApplicationStatus(r.Context(), id, status); err != nil {
		ui.logger.Error("update application status failed", "application", id, "status", status, "error", err)
		redirectFlash(w, r, back, "error", "Error al actualizar estado")
		return
	}
	redirectFlash(w, r, back, "notice", "Aplicación "+strings.ToLower(status.Label()))
}

// --- Creators ---

// HandleCreatorSearch lists creators matching the search form.
func (ui *UI) HandleCreatorSearch(w http.ResponseWriter, r *http.Request) {
	filter := model.JobFilter{
		Category: r.URL.Query().Get("category"),
		Search:   strings.TrimSpace(r.URL.Query().Get("search")),
	}
	sess := SessionFromContext(r.Context())
	creators, err := sess.Market.SearchCreators(r.Context(), filter)
	if err != nil {
		ui.renderError(w, r, "Error al buscar creadores", err)
		return
	}
	categories, err := sess.Market.Categories(r.Context())
	if err != nil {
		ui.logger.Warn("list categories failed", "error", err)
	}
	ui.render(w, r, http.StatusOK, "company/creators", map[string]any{
		"Title":      "Buscar Creadores - Manyas AI",
		"Creators":   creators,
		"Categories": categories,
		"Filter":     filter,
	})
}

// HandleCreatorDetail renders a creator's public profile and portfolio.
func (ui *UI) HandleCreatorDetail(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		ui.renderNotFound(w, r, "Creador no encontrado")
		return
	}
	sess := SessionFromContext(r.Context())
	creator, err := sess.Market.Creator(r.Context(), id)
	if err != nil {
		ui.renderError(w, r, "Error al cargar el creador", err)
		return
	}
	ui.render(w, r, http.StatusOK, "company/creator_detail", map[string]any{
		"Title":   creator.Name + " - Manyas AI",
		"Creator": creator,
	})
}

// --- Profile ---

// HandleCompanyProfile renders the company profile form, prefilled from
// the session's profile.
func (ui *UI) HandleCompanyProfile(w http.ResponseWriter, r *http.Request) {
	user, _ := signedInUser(r)
	var form model.CompanyProfileInput
	if p := user.Profile; p != nil {
		form = model.CompanyProfileInput{
			CompanyName: p.CompanyName,
			Description: p.Description,
			Industry:    p.Industry,
			Website:     p.Website,
			LogoURL:     p.LogoURL,
			Phone:       p.Phone,
			Location:    p.Location,
		}
	}
	ui.render(w, r, http.StatusOK, "company/profile", map[string]any{
		"Title":   "Perfil de Empresa - Manyas AI",
		"Profile": form,
	})
}

// HandleCompanyProfilePost saves the company profile.
func (ui *UI) HandleCompanyProfilePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectFlash(w, r, companyRoot+"/profile", "error", msgInvalidRequest)
		return
	}
	in := model.CompanyProfileInput{
		CompanyName: strings.TrimSpace(r.FormValue("company_name")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Industry:    strings.TrimSpace(r.FormValue("industry")),
		Website:     strings.TrimSpace(r.FormValue("website")),
		LogoURL:     strings.TrimSpace(r.FormValue("logo_url")),
		Phone:       strings.TrimSpace(r.FormValue("phone")),
		Location:    strings.TrimSpace(r.FormValue("location")),
	}
	sess := SessionFromContext(r.Context())
	if err := sess.Market.UpdateCompanyProfile(r.Context(), in); err != nil {
		ui.logger.Error("update company profile failed", "error", err)
		redirectFlash(w, r, companyRoot+"/profile", "error", "Error al actualizar perfil")
		return
	}
	redirectFlash(w, r, companyRoot+"/profile", "notice", "Perfil actualizado exitosamente")
}
