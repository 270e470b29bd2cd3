package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/me/manyas/pkg/model"
)

// RegisterRoutes registers all UI routes on the given router. authLimit
// wraps the credential-submitting POSTs; pass nil for none.
func (ui *UI) RegisterRoutes(r chi.Router, authLimit func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(ui.SessionMiddleware)

		// Public routes.
		r.Get("/", ui.HandleLanding)
		r.Get("/login", ui.HandleLogin)
		r.Get("/register", ui.HandleRegister)
		r.Post("/logout", ui.HandleLogout)
		r.Group(func(r chi.Router) {
			if authLimit != nil {
				r.Use(authLimit)
			}
			r.Post("/login", ui.HandleLoginPost)
			r.Post("/register", ui.HandleRegisterPost)
		})

		// Company dashboard.
		r.Route("/dashboard/company", func(r chi.Router) {
			r.Use(ui.RequireRole(model.RoleCompany))
			r.Get("/", ui.HandleCompanyDashboard)
			r.Route("/jobs", func(r chi.Router) {
				r.Get("/", ui.HandleCompanyJobs)
				r.Post("/", ui.HandleCompanyJobCreate)
				r.Get("/new", ui.HandleCompanyJobNew)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", ui.HandleCompanyJobDetail)
					r.Post("/delete", ui.HandleCompanyJobDelete)
					r.Post("/status", ui.HandleCompanyJobStatus)
				})
			})
			r.Post("/applications/{id}/status", ui.HandleApplicationStatus)
			r.Get("/creators", ui.HandleCreatorSearch)
			r.Get("/creators/{id}", ui.HandleCreatorDetail)
			r.Get("/profile", ui.HandleCompanyProfile)
			r.Post("/profile", ui.HandleCompanyProfilePost)
		})

		// Creator dashboard.
		r.Route("/dashboard/creator", func(r chi.Router) {
			r.Use(ui.RequireRole(model.RoleCreator))
			r.Get("/", ui.HandleCreatorDashboard)
			r.Get("/jobs", ui.HandleJobBrowse)
			r.Get("/jobs/{id}", ui.HandleJobDetail)
			r.Post("/jobs/{id}/apply", ui.HandleJobApply)
			r.Get("/applications", ui.HandleMyApplications)
			r.Post("/applications/{id}/withdraw", ui.HandleWithdraw)
			r.Route("/portfolio", func(r chi.Router) {
				r.Get("/", ui.HandlePortfolio)
				r.Post("/", ui.HandlePortfolioAdd)
				r.Post("/{id}/delete", ui.HandlePortfolioDelete)
			})
			r.Route("/profile", func(r chi.Router) {
				r.Get("/", ui.HandleCreatorProfile)
				r.Post("/", ui.HandleCreatorProfilePost)
				r.Post("/categories", ui.HandleCategoryAdd)
				r.Post("/categories/{id}/delete", ui.HandleCategoryRemove)
			})
		})
	})
}

// StaticHandler returns an http.Handler that serves the embedded static
// assets under /static/.
func StaticHandler() http.Handler {
	return http.StripPrefix("/static/", http.FileServerFS(staticFS()))
}
