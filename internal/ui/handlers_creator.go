package ui

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/me/manyas/pkg/model"
)

const creatorRoot = "/dashboard/creator"

// HandleCreatorDashboard renders the creator overview.
func (ui *UI) HandleCreatorDashboard(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	stats, err := sess.Market.CreatorDashboard(r.Context())
	if err != nil {
		ui.renderError(w, r, "Error al cargar el panel", err)
		return
	}
	ui.render(w, r, http.StatusOK, "creator/dashboard", map[string]any{
		"Title": "Panel de Creador - Manyas AI",
		"Stats": stats,
	})
}

// HandleJobBrowse lists open jobs matching the search form.
func (ui *UI) HandleJobBrowse(w http.ResponseWriter, r *http.Request) {
	filter := model.JobFilter{
		Category: r.URL.Query().Get("category"),
		Search:   strings.TrimSpace(r.URL.Query().Get("search")),
		Status:   model.JobOpen,
	}
	sess := SessionFromContext(r.Context())
	jobs, err := sess.Market.Jobs(r.Context(), filter)
	if err != nil {
		ui.renderError(w, r, "Error al cargar ofertas", err)
		return
	}
	categories, err := sess.Market.Categories(r.Context())
	if err != nil {
		ui.logger.Warn("list categories failed", "error", err)
	}
	ui.render(w, r, http.StatusOK, "creator/jobs", map[string]any{
		"Title":      "Ofertas - Manyas AI",
		"Jobs":       jobs,
		"Categories": categories,
		"Filter":     filter,
	})
}

// HandleJobDetail renders one job with the application form.
func (ui *UI) HandleJobDetail(w http.ResponseWriter, r *http.Request) {
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
	ui.render(w, r, http.StatusOK, "creator/job_detail", map[string]any{
		"Title": job.Title + " - Manyas AI",
		"Job":   job,
	})
}

// HandleJobApply submits an application to the job.
func (ui *UI) HandleJobApply(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		ui.renderNotFound(w, r, "Oferta no encontrada")
		return
	}
	back := creatorRoot + "/jobs/" + strconv.FormatInt(id, 10)
	if err := r.ParseForm(); err != nil {
		redirectFlash(w, r, back, "error", msgInvalidRequest)
		return
	}
	budget, err := model.ParseAmount(strings.TrimSpace(r.FormValue("proposed_budget")))
	if err != nil {
		redirectFlash(w, r, back, "error", "Presupuesto inválido")
		return
	}
	in := model.ApplicationInput{
		JobOpeningID:   id,
		CoverLetter:    strings.TrimSpace(r.FormValue("cover_letter")),
		ProposedBudget: budget,
	}

	sess := SessionFromContext(r.Context())
	if err := sess.Market.Apply(r.Context(), in); err != nil {
		ui.logger.Error("apply failed", "job", id, "error", err)
		redirectFlash(w, r, back, "error", "Error al enviar la aplicación")
		return
	}
	redirectFlash(w, r, creatorRoot+"/applications", "notice", "¡Aplicación enviada exitosamente!")
}

// HandleMyApplications lists the creator's applications.
func (ui *UI) HandleMyApplications(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	apps, err := sess.Market.MyApplications(r.Context())
	if err != nil {
		ui.renderError(w, r, "Error al cargar aplicaciones", err)
		return
	}
	ui.render(w, r, http.StatusOK, "creator/applications", map[string]any{
		"Title":        "Mis Aplicaciones - Manyas AI",
		"Applications": apps,
	})
}

// HandleWithdraw withdraws a pending application.
func (ui *UI) HandleWithdraw(w http.ResponseWriter, r *http.Request) {
	back := creatorRoot + "/applications"
	id, err := idParam(r, "id")
	if err != nil {
		redirectFlash(w, r, back, "error", "Error al retirar la aplicación")
		return
	}
	sess := SessionFromContext(r.Context())
	if err := sess.Market.WithdrawApplication(r.Context(), id); err != nil {
		ui.logger.Error("withdraw application failed", "application", id, "error", err)
		redirectFlash(w, r, back, "error", "Error al retirar la aplicación")
		return
	}
	redirectFlash(w, r, back, "notice", "Aplicación retirada")
}

// --- Portfolio ---

// HandlePortfolio renders the portfolio with the add form.
func (ui *UI) HandlePortfolio(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	items, err := sess.Market.MyPortfolio(r.Context())
	if err != nil {
		ui.renderError(w, r, "Error al cargar el portafolio", err)
		return
	}
	ui.render(w, r, http.StatusOK, "creator/portfolio", map[string]any{
		"Title": "Mi Portafolio - Manyas AI",
		"Items": items,
	})
}

// HandlePortfolioAdd adds an item to the portfolio.
func (ui *UI) HandlePortfolioAdd(w http.ResponseWriter, r *http.Request) {
	back := creatorRoot + "/portfolio"
	if err := r.ParseForm(); err != nil {
		redirectFlash(w, r, back, "error", msgInvalidRequest)
		return
	}
	in := model.PortfolioInput{
		Title:        strings.TrimSpace(r.FormValue("title")),
		Description:  strings.TrimSpace(r.FormValue("description")),
		FileURL:      strings.TrimSpace(r.FormValue("file_url")),
		FileType:     model.PortfolioKind(r.FormValue("file_type")),
		ThumbnailURL: strings.TrimSpace(r.FormValue("thumbnail_url")),
	}
	if in.Title == "" || in.FileURL == "" {
		redirectFlash(w, r, back, "error", "Error al agregar item al portafolio")
		return
	}
	sess := SessionFromContext(r.Context())
	if err := sess.Market.AddPortfolioItem(r.Context(), in); err != nil {
		ui.logger.Error("add portfolio item failed", "error", err)
		redirectFlash(w, r, back, "error", "Error al agregar item al portafolio")
		return
	}
	redirectFlash(w, r, back, "notice", "Item agregado al portafolio")
}

// HandlePortfolioDelete removes a portfolio item.
func (ui *UI) HandlePortfolioDelete(w http.ResponseWriter, r *http.Request) {
	back := creatorRoot + "/portfolio"
	id, err := idParam(r, "id")
	if err != nil {
		redirectFlash(w, r, back, "error", "Error al eliminar item")
		return
	}
	sess := SessionFromContext(r.Context())
	if err := sess.Market.DeletePortfolioItem(r.Context(), id); err != nil {
		ui.logger.Error("delete portfolio item failed", "item", id, "error", err)
		redirectFlash(w, r, back, "error", "Error al eliminar item")
		return
	}
	redirectFlash(w, r, back, "notice", "Item eliminado")
}

// --- Profile ---

// HandleCreatorProfile renders the profile form and the category picker.
func (ui *UI) HandleCreatorProfile(w http.ResponseWriter, r *http.Request) {
	user, _ := signedInUser(r)
	sess := SessionFromContext(r.Context())

	var form model.CreatorProfileInput
	if p := user.Profile; p != nil {
		form = model.CreatorProfileInput{
			Bio:                  p.Bio,
			Phone:                p.Phone,
			Location:             p.Location,
			PortfolioDescription: p.PortfolioDescription,
			ProfileImage:         p.ProfileImage,
		}
	}

	all, err := sess.Market.Categories(r.Context())
	if err != nil {
		ui.logger.Warn("list categories failed", "error", err)
	}
	me := &model.Creator{ID: user.ID}
	if user.Profile != nil && user.Profile.ID != 0 {
		if c, err := sess.Market.Creator(r.Context(), user.Profile.ID); err == nil {
			me = c
		} else {
			ui.logger.Warn("load own creator record failed", "error", err)
		}
	}
	var available []model.Category
	for _, c := range all {
		if !me.HasCategory(c.ID) {
			available = append(available, c)
		}
	}

	ui.render(w, r, http.StatusOK, "creator/profile", map[string]any{
		"Title":     "Mi Perfil - Manyas AI",
		"Profile":   form,
		"Mine":      me.Categories,
		"Available": available,
	})
}

// HandleCreatorProfilePost saves the creator profile.
func (ui *UI) HandleCreatorProfilePost(w http.ResponseWriter, r *http.Request) {
	back := creatorRoot + "/profile"
	if err := r.ParseForm(); err != nil {
		redirectFlash(w, r, back, "error", msgInvalidRequest)
		return
	}
	in := model.CreatorProfileInput{
		Bio:                  strings.TrimSpace(r.FormValue("bio")),
		Phone:                strings.TrimSpace(r.FormValue("phone")),
		Location:             strings.TrimSpace(r.FormValue("location")),
		PortfolioDescription: strings.TrimSpace(r.FormValue("portfolio_description")),
		ProfileImage:         strings.TrimSpace(r.FormValue("profile_image")),
	}
	sess := SessionFromContext(r.Context())
	if err := sess.Market.UpdateCreatorProfile(r.Context(), in); err != nil {
		ui.logger.Error("update creator profile failed", "error", err)
		redirectFlash(w, r, back, "error", "Error al actualizar perfil")
		return
	}
	redirectFlash(w, r, back, "notice", "Perfil actualizado exitosamente")
}

// HandleCategoryAdd tags the creator with a category.
func (ui *UI) HandleCategoryAdd(w http.ResponseWriter, r *http.Request) {
	back := creatorRoot + "/profile"
	id, err := strconv.ParseInt(r.FormValue("category_id"), 10, 64)
	if err != nil || id <= 0 {
		redirectFlash(w, r, back, "error", "Error al agregar categoría")
		return
	}
	sess := SessionFromContext(r.Context())
	if err := sess.Market.AddCategory(r.Context(), id); err != nil {
		ui.logger.Error("add category failed", "category", id, "error", err)
		redirectFlash(w, r, back, "error", "Error al agregar categoría")
		return
	}
	redirectFlash(w, r, back, "", "")
}

// HandleCategoryRemove removes a category from the creator.
func (ui *UI) HandleCategoryRemove(w http.ResponseWriter, r *http.Request) {
	back := creatorRoot + "/profile"
	id, err := idParam(r, "id")
	if err != nil {
		redirectFlash(w, r, back, "error", "Error al eliminar categoría")
		return
	}
	sess := SessionFromContext(r.Context())
	if err := sess.Market.RemoveCategory(r.Context(), id); err != nil {
		ui.logger.Error("remove category failed", "category", id, "error", err)
		redirectFlash(w, r, back, "error", "Error al eliminar categoría")
		return
	}
	redirectFlash(w, r, back, "", "")
}
