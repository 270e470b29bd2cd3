package ui

import (
	"strings"

	"github.com/me/manyas/pkg/model"
)

// NavLink is one entry of the dashboard menu.
type NavLink struct {
	Label  string
	Href   string
	Active bool
}

var menus = map[model.Role][]NavLink{
	model.RoleCreator: {
		{Label: "Inicio", Href: "/dashboard/creator"},
		{Label: "Portafolio", Href: "/dashboard/creator/portfolio"},
		{Label: "Ofertas", Href: "/dashboard/creator/jobs"},
		{Label: "Aplicaciones", Href: "/dashboard/creator/applications"},
		{Label: "Perfil", Href: "/dashboard/creator/profile"},
	},
	model.RoleCompany: {
		{Label: "Inicio", Href: "/dashboard/company"},
		{Label: "Ofertas", Href: "/dashboard/company/jobs"},
		{Label: "Creadores", Href: "/dashboard/company/creators"},
		{Label: "Perfil", Href: "/dashboard/company/profile"},
	},
}

// navLinks returns the role's menu with the link for path marked active.
// The dashboard root is only active on an exact match; other links also
// match their subpages.
func navLinks(role model.Role, path string) []NavLink {
	menu := menus[role]
	links := make([]NavLink, len(menu))
	root := role.DashboardPath()
	for i, l := range menu {
		l.Active = path == l.Href || (l.Href != root && strings.HasPrefix(path, l.Href+"/"))
		links[i] = l
	}
	return links
}
