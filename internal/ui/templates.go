package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/me/manyas/pkg/model"
)

//go:embed static
var staticFiles embed.FS

func staticFS() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// dateLayouts are the date encodings the API is known to emit.
var dateLayouts = []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02"}

// Template functions available in all templates.
var templateFuncs = template.FuncMap{
	"money": func(a *model.Amount) string {
		if a == nil {
			return ""
		}
		return a.String()
	},
	"count": func(n int) string {
		return humanize.Comma(int64(n))
	},
	"date": func(s string) string {
		if s == "" {
			return ""
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format("02/01/2006")
			}
		}
		return s
	},
	"jobBadge": func(s model.JobStatus) string {
		switch s {
		case model.JobOpen:
			return "bg-green-100 text-green-700"
		case model.JobInProgress:
			return "bg-blue-100 text-blue-700"
		default:
			return "bg-gray-100 text-gray-700"
		}
	},
	"appBadge": func(s model.ApplicationStatus) string {
		switch s {
		case model.ApplicationAccepted:
			return "bg-green-100 text-green-700"
		case model.ApplicationRejected:
			return "bg-red-100 text-red-700"
		default:
			return "bg-yellow-100 text-yellow-700"
		}
	},
	"truncate": func(s string, n int) string {
		r := []rune(s)
		if len(r) <= n {
			return s
		}
		return string(r[:n]) + "..."
	},
	"isVideo": func(k model.PortfolioKind) bool {
		return k == model.PortfolioVideo
	},
	"selected": func(a, b any) template.HTMLAttr {
		if fmt.Sprint(a) == fmt.Sprint(b) {
			return "selected"
		}
		return ""
	},
}

// parsePages parses every page together with the layout. The page source
// defines "content"; the layout is executed as "layout".
func parsePages() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template, len(templates))
	for name, content := range templates {
		tmpl, err := template.New("layout").Funcs(templateFuncs).Parse(layout)
		if err != nil {
			return nil, fmt.Errorf("parse layout: %w", err)
		}
		if _, err := tmpl.New("content").Parse(content); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return pages, nil
}

const layout = `<!DOCTYPE html>
<html lang="es">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    {{if .Refresh}}<meta http-equiv="refresh" content="1">{{end}}
    <script src="https://cdn.tailwindcss.com"></script>
    <link rel="stylesheet" href="/static/app.css">
</head>
<body class="bg-gray-50 min-h-screen">
    {{if .User}}
    <nav class="bg-white shadow-sm border-b">
        <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8">
            <div class="flex justify-between h-16">
                <div class="flex items-center">
                    <a href="{{.User.Role.DashboardPath}}" class="flex flex-col px-2">
                        <span class="text-xl font-bold text-indigo-600">Manyas AI</span>
                        <span class="text-xs text-gray-500">{{.RoleLabel}}</span>
                    </a>
                    <div class="hidden sm:ml-6 sm:flex sm:space-x-8">
                        {{range .Nav}}
                        <a href="{{.Href}}" class="{{if .Active}}border-indigo-500 text-gray-900{{else}}border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700{{end}} inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">{{.Label}}</a>
                        {{end}}
                    </div>
                </div>
                <div class="flex items-center">
                    <span class="text-sm text-gray-500 mr-4">{{.User.Name}}</span>
                    <form action="/logout" method="POST">
                        <button type="submit" class="text-sm text-gray-500 hover:text-gray-700">Cerrar Sesión</button>
                    </form>
                </div>
            </div>
        </div>
    </nav>
    {{end}}

    <main class="max-w-7xl mx-auto py-6 px-4 sm:px-6 lg:px-8">
        {{if .Error}}
        <div class="rounded-md bg-red-50 p-4 mb-6"><div class="text-sm text-red-700">{{.Error}}</div></div>
        {{end}}
        {{if .Notice}}
        <div class="rounded-md bg-green-50 p-4 mb-6"><div class="text-sm text-green-700">{{.Notice}}</div></div>
        {{end}}
        {{template "content" .}}
    </main>
</body>
</html>`

// templates holds the content of every page, keyed by page name.
var templates = map[string]string{
	"landing": `{{define "content"}}
<header class="flex justify-between items-center py-4">
    <div class="text-2xl font-bold text-indigo-600">Manyas AI</div>
    <div class="space-x-4">
        <a href="/login" class="text-gray-700 hover:text-indigo-600">Iniciar Sesión</a>
        <a href="/register" class="bg-indigo-600 text-white px-6 py-2 rounded-lg hover:bg-indigo-700">Registrarse</a>
    </div>
</header>
<section class="text-center py-16">
    <h1 class="text-5xl font-bold text-gray-900 mb-6">Conecta Marcas y Creadores<br><span class="text-indigo-600">en Latinoamérica</span></h1>
    <p class="text-xl text-gray-600 mb-10 max-w-3xl mx-auto">
        Manyas AI es el primer marketplace de User Generated Content (UGC) con inteligencia artificial
        entrenada para entender el lenguaje, las tendencias y la cultura de los consumidores latinoamericanos.
    </p>
    <div class="flex justify-center gap-4">
        <a href="/register?role=creator" class="bg-indigo-600 text-white px-8 py-4 rounded-lg text-lg font-semibold hover:bg-indigo-700">Soy Creador</a>
        <a href="/register?role=company" class="bg-white text-indigo-600 border-2 border-indigo-600 px-8 py-4 rounded-lg text-lg font-semibold hover:bg-indigo-50">Soy Empresa</a>
    </div>
</section>
<section class="grid md:grid-cols-3 gap-8">
    <div class="bg-white p-8 rounded-xl shadow"><h3 class="text-xl font-bold mb-3">Para Empresas</h3><p class="text-gray-600">Publica ofertas y encuentra creadores que entienden a tu audiencia.</p></div>
    <div class="bg-white p-8 rounded-xl shadow"><h3 class="text-xl font-bold mb-3">Para Creadores</h3><p class="text-gray-600">Muestra tu portafolio y postula a campañas de marcas.</p></div>
    <div class="bg-white p-8 rounded-xl shadow"><h3 class="text-xl font-bold mb-3">IA Contextual</h3><p class="text-gray-600">Recomendaciones pensadas para el contexto latinoamericano.</p></div>
</section>
<footer class="text-center text-sm text-gray-500 py-8">&copy; Manyas AI. Todos los derechos reservados.</footer>
{{end}}`,

	"login": `{{define "content"}}
<div class="flex items-center justify-center py-12">
    <div class="max-w-md w-full bg-white rounded-xl shadow-lg p-8 space-y-6">
        <div class="text-center">
            <h2 class="text-3xl font-bold text-gray-900">Manyas AI</h2>
            <p class="mt-2 text-sm text-gray-600">Inicia sesión en tu cuenta</p>
        </div>
        <form class="space-y-4" action="/login" method="POST">
            <div>
                <label for="email" class="block text-sm font-medium text-gray-700">Email</label>
                <input id="email" name="email" type="email" required value="{{.Email}}" placeholder="tu@email.com"
                       class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md">
            </div>
            <div>
                <label for="password" class="block text-sm font-medium text-gray-700">Contraseña</label>
                <input id="password" name="password" type="password" required placeholder="••••••••"
                       class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md">
            </div>
            <button type="submit" class="w-full py-2 px-4 rounded-md text-white bg-indigo-600 hover:bg-indigo-700">Iniciar Sesión</button>
        </form>
        <p class="text-center text-sm text-gray-600">¿No tienes cuenta? <a href="/register" class="text-indigo-600">Regístrate</a></p>
    </div>
</div>
{{end}}`,

	"register": `{{define "content"}}
<div class="flex items-center justify-center py-12">
    <div class="max-w-md w-full bg-white rounded-xl shadow-lg p-8 space-y-6">
        <div class="text-center">
            <h1 class="text-3xl font-bold text-gray-900">Manyas AI</h1>
            <p class="mt-2 text-gray-600">Crea tu cuenta</p>
        </div>
        <form class="space-y-4" action="/register" method="POST">
            <div>
                <label for="role" class="block text-sm font-medium text-gray-700">Tipo de cuenta</label>
                <select id="role" name="role" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md">
                    <option value="creator" {{selected .Form.Role "creator"}}>Creador de Contenido</option>
                    <option value="company" {{selected .Form.Role "company"}}>Empresa</option>
                </select>
            </div>
            <div>
                <label for="name" class="block text-sm font-medium text-gray-700">{{if eq (print .Form.Role) "company"}}Nombre de la empresa{{else}}Nombre completo{{end}}</label>
                <input id="name" name="name" type="text" required value="{{.Form.Name}}"
                       placeholder="{{if eq (print .Form.Role) "company"}}Mi Empresa S.A.{{else}}Juan Pérez{{end}}"
                       class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md">
            </div>
            <div>
                <label for="email" class="block text-sm font-medium text-gray-700">Email</label>
                <input id="email" name="email" type="email" required value="{{.Form.Email}}" placeholder="tu@email.com"
                       class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md">
            </div>
            <div>
                <label for="password" class="block text-sm font-medium text-gray-700">Contraseña</label>
                <input id="password" name="password" type="password" required placeholder="••••••••"
                       class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md">
            </div>
            <div>
                <label for="confirm_password" class="block text-sm font-medium text-gray-700">Confirmar contraseña</label>
                <input id="confirm_password" name="confirm_password" type="password" required placeholder="••••••••"
                       class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md">
            </div>
            <button type="submit" class="w-full py-2 px-4 rounded-md text-white bg-indigo-600 hover:bg-indigo-700">Crear cuenta</button>
        </form>
        <p class="text-center text-sm text-gray-600">¿Ya tienes cuenta? <a href="/login" class="text-indigo-600">Inicia sesión</a></p>
    </div>
</div>
{{end}}`,

	"loading": `{{define "content"}}
<div class="flex items-center justify-center h-64">
    <div class="spinner" role="status" aria-label="Cargando"></div>
</div>
{{end}}`,

	"error": `{{define "content"}}
<div class="text-center py-12">
    <h1 class="text-2xl font-semibold text-gray-900">{{.Message}}</h1>
    <p class="mt-4"><a href="/" class="text-indigo-600 hover:text-indigo-500">Volver al inicio</a></p>
</div>
{{end}}`,

	"company/dashboard": `{{define "content"}}
<div class="space-y-8">
    <div class="bg-indigo-600 text-white rounded-xl p-8">
        <h2 class="text-3xl font-bold mb-2">Panel de Control</h2>
        <p class="text-indigo-100">Gestiona tus ofertas de trabajo y encuentra talento creativo</p>
    </div>
    <div class="grid grid-cols-1 sm:grid-cols-2 gap-6">
        <div class="bg-white rounded-xl shadow p-6"><p class="text-sm text-gray-600">Ofertas Activas</p><p class="text-3xl font-bold">{{count .Stats.ActiveJobs}}</p></div>
        <div class="bg-white rounded-xl shadow p-6"><p class="text-sm text-gray-600">Aplicaciones Recibidas</p><p class="text-3xl font-bold">{{count .Stats.TotalApplications}}</p>
            {{if .Stats.Incomplete}}<p class="text-xs text-gray-500">Sin datos de {{.Stats.Incomplete}} oferta(s)</p>{{end}}</div>
    </div>
    <div class="flex gap-4">
        <a href="/dashboard/company/jobs/new" class="bg-indigo-600 text-white px-6 py-3 rounded-lg hover:bg-indigo-700">Crear Nueva Oferta</a>
        <a href="/dashboard/company/creators" class="bg-white border border-indigo-600 text-indigo-600 px-6 py-3 rounded-lg hover:bg-indigo-50">Buscar Creadores</a>
    </div>
    <div class="bg-white rounded-xl shadow">
        <div class="p-6 border-b flex justify-between"><h3 class="text-xl font-bold">Ofertas Recientes</h3><a href="/dashboard/company/jobs" class="text-indigo-600 text-sm">Ver todas</a></div>
        {{if .Stats.RecentJobs}}
        <ul class="divide-y">
            {{range .Stats.RecentJobs}}
            <li class="p-6 flex justify-between">
                <div>
                    <a href="/dashboard/company/jobs/{{.ID}}" class="font-semibold text-gray-900 hover:text-indigo-600">{{.Title}}</a>
                    <p class="text-sm text-gray-600">{{truncate .Description 100}}</p>
                    <p class="text-sm text-gray-500">{{with .Budget}}Presupuesto: {{money .}} · {{end}}{{date .CreatedAt}}</p>
                </div>
                <span class="px-3 py-1 h-fit rounded-full text-xs font-medium {{jobBadge .Status}}">{{.Status.Label}}</span>
            </li>
            {{end}}
        </ul>
        {{else}}
        <div class="p-12 text-center text-gray-600">No tienes ofertas publicadas aún</div>
        {{end}}
    </div>
</div>
{{end}}`,

	"company/jobs": `{{define "content"}}
<div class="space-y-6">
    <div class="flex justify-between items-center">
        <h1 class="text-2xl font-bold text-gray-900">Mis Ofertas</h1>
        <a href="/dashboard/company/jobs/new" class="bg-indigo-600 text-white px-6 py-3 rounded-lg hover:bg-indigo-700">Nueva Oferta</a>
    </div>
    {{if .Jobs}}
    <div class="space-y-4">
        {{range .Jobs}}
        <div class="bg-white rounded-xl shadow p-6">
            <div class="flex justify-between">
                <div>
                    <a href="/dashboard/company/jobs/{{.ID}}" class="text-xl font-bold text-gray-900 hover:text-indigo-600">{{.Title}}</a>
                    <p class="text-gray-600 mt-1">{{truncate .Description 200}}</p>
                    <p class="text-sm text-gray-500 mt-2">
                        {{with .Budget}}{{money .}} · {{end}}{{with .Deadline}}Fecha límite: {{date .}} · {{end}}Publicado: {{date .CreatedAt}}
                    </p>
                </div>
                <span class="px-3 py-1 h-fit rounded-full text-xs font-medium {{jobBadge .Status}}">{{.Status.Label}}</span>
            </div>
            <div class="flex gap-4 mt-4 items-center">
                <form action="/dashboard/company/jobs/{{.ID}}/status" method="POST" class="flex gap-2">
                    <select name="status" class="border border-gray-300 rounded-md px-2 py-1 text-sm">
                        {{$current := .Status}}
                        {{range $.Statuses}}<option value="{{.}}" {{selected . $current}}>{{.Label}}</option>{{end}}
                    </select>
                    <button type="submit" class="text-sm text-indigo-600 hover:text-indigo-800">Actualizar</button>
                </form>
                <form action="/dashboard/company/jobs/{{.ID}}/delete" method="POST" onsubmit="return confirm('¿Estás seguro de que quieres eliminar esta oferta?')">
                    <button type="submit" class="text-sm text-red-600 hover:text-red-800">Eliminar</button>
                </form>
            </div>
        </div>
        {{end}}
    </div>
    {{else}}
    <div class="bg-white rounded-xl shadow p-12 text-center text-gray-600">No tienes ofertas publicadas aún</div>
    {{end}}
</div>
{{end}}`,

	"company/job_new": `{{define "content"}}
<div class="max-w-3xl mx-auto bg-white rounded-xl shadow p-8">
    <h1 class="text-2xl font-bold text-gray-900 mb-6">Nueva Oferta</h1>
    <form action="/dashboard/company/jobs" method="POST" class="space-y-4">
        <div>
            <label for="title" class="block text-sm font-medium text-gray-700">Título *</label>
            <input id="title" name="title" type="text" required value="{{.Form.Title}}" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md">
        </div>
        <div>
            <label for="description" class="block text-sm font-medium text-gray-700">Descripción *</label>
            <textarea id="description" name="description" rows="5" required class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md">{{.Form.Description}}</textarea>
        </div>
        <div>
            <label for="requirements" class="block text-sm font-medium text-gray-700">Requisitos</label>
            <textarea id="requirements" name="requirements" rows="3" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md">{{.Form.Requirements}}</textarea>
        </div>
        <div class="grid grid-cols-1 md:grid-cols-3 gap-4">
            <div>
                <label for="budget" class="block text-sm font-medium text-gray-700">Presupuesto</label>
                <input id="budget" name="budget" type="number" step="0.01" min="0" placeholder="0.00" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md">
            </div>
            <div>
                <label for="deadline" class="block text-sm font-medium text-gray-700">Fecha límite</label>
                <input id="deadline" name="deadline" type="date" value="{{.Form.Deadline}}" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md">
            </div>
            <div>
                <label for="category_id" class="block text-sm font-medium text-gray-700">Categoría</label>
                <select id="category_id" name="category_id" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md">
                    <option value="">Sin categoría</option>
                    {{range .Categories}}<option value="{{.ID}}">{{.Name}}</option>{{end}}
                </select>
            </div>
        </div>
        <div class="flex gap-4">
            <button type="submit" class="bg-indigo-600 text-white px-6 py-2 rounded-lg hover:bg-indigo-700">Publicar Oferta</button>
            <a href="/dashboard/company/jobs" class="px-6 py-2 text-gray-700">Cancelar</a>
        </div>
    </form>
</div>
{{end}}`,

	"company/job_detail": `{{define "content"}}
<div class="space-y-6">
    <a href="/dashboard/company/jobs" class="text-indigo-600 text-sm">&larr; Volver a mis ofertas</a>
    <div class="bg-white rounded-xl shadow p-8">
        <div class="flex justify-between">
            <h1 class="text-2xl font-bold text-gray-900">{{.Job.Title}}</h1>
            <span class="px-3 py-1 h-fit rounded-full text-xs font-medium {{jobBadge .Job.Status}}">{{.Job.Status.Label}}</span>
        </div>
        <p class="text-gray-700 mt-4 whitespace-pre-line">{{.Job.Description}}</p>
        {{with .Job.Requirements}}<h3 class="font-semibold mt-6">Requisitos</h3><p class="text-gray-700 whitespace-pre-line">{{.}}</p>{{end}}
        <div class="grid grid-cols-2 md:grid-cols-3 gap-4 mt-6 text-sm">
            {{with .Job.Budget}}<div><p class="text-gray-500">Presupuesto</p><p class="font-semibold">{{money .}}</p></div>{{end}}
            {{with .Job.Deadline}}<div><p class="text-gray-500">Fecha límite</p><p>{{date .}}</p></div>{{end}}
            {{with .Job.CategoryName}}<div><p class="text-gray-500">Categoría</p><p>{{.}}</p></div>{{end}}
        </div>
    </div>
    <div class="bg-white rounded-xl shadow">
        <div class="p-6 border-b"><h2 class="text-xl font-bold">Aplicaciones ({{len .Applications}})</h2></div>
        {{if .Applications}}
        <ul class="divide-y">
            {{range .Applications}}
            <li class="p-6">
                <div class="flex justify-between">
                    <div>
                        <a href="/dashboard/company/creators/{{.CreatorID}}" class="font-semibold text-gray-900 hover:text-indigo-600">{{.CreatorName}}</a>
                        <p class="text-sm text-gray-500">Aplicó el {{date .CreatedAt}}</p>
                    </div>
                    <span class="px-3 py-1 h-fit rounded-full text-xs font-medium {{appBadge .Status}}">{{.Status.Label}}</span>
                </div>
                {{with .CoverLetter}}<p class="text-gray-700 mt-3 whitespace-pre-line">{{.}}</p>{{end}}
                {{with .ProposedBudget}}<p class="text-sm mt-2">Presupuesto propuesto: <span class="font-semibold">{{money .}}</span></p>{{end}}
                {{if eq (print .Status) "pending"}}
                <div class="flex gap-3 mt-4">
                    <form action="/dashboard/company/applications/{{.ID}}/status" method="POST">
                        <input type="hidden" name="job_id" value="{{$.Job.ID}}">
                        <input type="hidden" name="status" value="accepted">
                        <button type="submit" class="bg-green-600 text-white px-4 py-2 rounded-lg text-sm hover:bg-green-700">Aceptar</button>
                    </form>
                    <form action="/dashboard/company/applications/{{.ID}}/status" method="POST">
                        <input type="hidden" name="job_id" value="{{$.Job.ID}}">
                        <input type="hidden" name="status" value="rejected">
                        <button type="submit" class="bg-red-600 text-white px-4 py-2 rounded-lg text-sm hover:bg-red-700">Rechazar</button>
                    </form>
                </div>
                {{end}}
            </li>
            {{end}}
        </ul>
        {{else}}
        <div class="p-12 text-center text-gray-600">Aún no hay aplicaciones para esta oferta</div>
        {{end}}
    </div>
</div>
{{end}}`,

	"company/creators": `{{define "content"}}
<div class="space-y-6">
    <h1 class="text-2xl font-bold text-gray-900">Buscar Creadores</h1>
    <form method="GET" action="/dashboard/company/creators" class="bg-white rounded-xl shadow p-6 grid grid-cols-1 md:grid-cols-3 gap-4">
        <input type="text" name="search" value="{{.Filter.Search}}" placeholder="Buscar por nombre o bio..." class="px-3 py-2 border border-gray-300 rounded-md">
        <select name="category" class="px-3 py-2 border border-gray-300 rounded-md">
            <option value="">Todas las categorías</option>
            {{range .Categories}}<option value="{{.ID}}" {{selected .ID $.Filter.Category}}>{{.Name}}</option>{{end}}
        </select>
        <button type="submit" class="bg-indigo-600 text-white px-6 py-2 rounded-lg hover:bg-indigo-700">Buscar</button>
    </form>
    {{if .Creators}}
    <div class="grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-6">
        {{range .Creators}}
        <a href="/dashboard/company/creators/{{.ID}}" class="bg-white rounded-xl shadow p-6 hover:shadow-lg">
            <h3 class="font-bold text-gray-900">{{.Name}}</h3>
            {{with .Location}}<p class="text-sm text-gray-500">{{.}}</p>{{end}}
            {{with .Bio}}<p class="text-sm text-gray-600 mt-2">{{truncate . 120}}</p>{{end}}
        </a>
        {{end}}
    </div>
    {{else}}
    <div class="bg-white rounded-xl shadow p-12 text-center text-gray-600">No se encontraron creadores</div>
    {{end}}
</div>
{{end}}`,

	"company/creator_detail": `{{define "content"}}
<div class="space-y-6">
    <a href="/dashboard/company/creators" class="text-indigo-600 text-sm">&larr; Volver a la búsqueda</a>
    <div class="bg-white rounded-xl shadow p-8">
        <h1 class="text-2xl font-bold text-gray-900">{{.Creator.Name}}</h1>
        {{with .Creator.Location}}<p class="text-gray-500">{{.}}</p>{{end}}
        {{with .Creator.Bio}}<p class="text-gray-700 mt-4">{{.}}</p>{{end}}
        {{with .Creator.PortfolioDescription}}<p class="text-gray-700 mt-4">{{.}}</p>{{end}}
        <div class="mt-4 space-x-2">
            {{range .Creator.Categories}}<span class="px-3 py-1 rounded-full text-xs bg-indigo-100 text-indigo-700">{{.Name}}</span>{{end}}
        </div>
        <div class="mt-4 text-sm text-gray-600">
            {{with .Creator.Email}}<p>Email: {{.}}</p>{{end}}
            {{with .Creator.Phone}}<p>Teléfono: {{.}}</p>{{end}}
        </div>
    </div>
    <div class="bg-white rounded-xl shadow p-6">
        <h2 class="text-xl font-bold mb-4">Portafolio</h2>
        {{template "portfolio-grid" .Creator.Portfolio}}
    </div>
</div>
{{end}}
{{define "portfolio-grid"}}
{{if .}}
<div class="grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-6">
    {{range .}}
    <div class="border rounded-lg overflow-hidden">
        {{if isVideo .FileType}}
        <video src="{{.FileURL}}" controls class="w-full h-48 object-cover"></video>
        {{else}}
        <img src="{{if .ThumbnailURL}}{{.ThumbnailURL}}{{else}}{{.FileURL}}{{end}}" alt="{{.Title}}" class="w-full h-48 object-cover">
        {{end}}
        <div class="p-4"><h3 class="font-semibold">{{.Title}}</h3>{{with .Description}}<p class="text-sm text-gray-600">{{.}}</p>{{end}}</div>
    </div>
    {{end}}
</div>
{{else}}
<p class="text-gray-600 text-center py-8">Este creador aún no tiene trabajos en su portafolio</p>
{{end}}
{{end}}`,

	"company/profile": `{{define "content"}}
<div class="max-w-3xl mx-auto bg-white rounded-xl shadow p-8">
    <h1 class="text-2xl font-bold text-gray-900 mb-6">Perfil de Empresa</h1>
    <form action="/dashboard/company/profile" method="POST" class="space-y-4">
        <div>
            <label for="company_name" class="block text-sm font-medium text-gray-700">Nombre de la empresa</label>
            <input id="company_name" name="company_name" type="text" value="{{.Profile.CompanyName}}" placeholder="Mi Empresa S.A." class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md">
        </div>
        <div>
            <label for="description" class="block text-sm font-medium text-gray-700">Descripción</label>
            <textarea id="description" name="description" rows="4" placeholder="Describe tu empresa, misión, valores..." class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md">{{.Profile.Description}}</textarea>
        </div>
        <div class="grid grid-cols-1 md:grid-cols-2 gap-4">
            <div>
                <label for="industry" class="block text-sm font-medium text-gray-700">Industria</label>
                <input id="industry" name="industry" type="text" value="{{.Profile.Industry}}" placeholder="Ej: Tecnología, Moda, Alimentos" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md">
            </div>
            <div>
                <label for="website" class="block text-sm font-medium text-gray-700">Sitio web</label>
                <input id="website" name="website" type="url" value="{{.Profile.Website}}" placeholder="https://..." class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md">
            </div>
        </div>
        <div>
            <label for="logo_url" class="block text-sm font-medium text-gray-700">URL del logo</label>
            <input id="logo_url" name="logo_url" type="url" value="{{.Profile.LogoURL}}" placeholder="https://..." class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md">
        </div>
        <div class="grid grid-cols-1 md:grid-cols-2 gap-4">
            <div>
                <label for="phone" class="block text-sm font-medium text-gray-700">Teléfono</label>
                <input id="phone" name="phone" type="tel" value="{{.Profile.Phone}}" placeholder="+51 999 999 999" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md">
            </div>
            <div>
                <label for="location" class="block text-sm font-medium text-gray-700">Ubicación</label>
                <input id="location" name="location" type="text" value="{{.Profile.Location}}" placeholder="Lima, Perú" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md">
            </div>
        </div>
        <button type="submit" class="bg-indigo-600 text-white px-6 py-2 rounded-lg hover:bg-indigo-700">Guardar Cambios</button>
    </form>
</div>
{{end}}`,

	"creator/dashboard": `{{define "content"}}
<div class="space-y-8">
    <div class="bg-indigo-600 text-white rounded-xl p-8">
        <h2 class="text-3xl font-bold mb-2">¡Bienvenido de vuelta!</h2>
        <p class="text-indigo-100">Explora nuevas oportunidades y gestiona tu portafolio</p>
    </div>
    <div class="grid grid-cols-1 sm:grid-cols-3 gap-6">
        <div class="bg-white rounded-xl shadow p-6"><p class="text-sm text-gray-600">Aplicaciones Enviadas</p><p class="text-3xl font-bold">{{count .Stats.Applications}}</p></div>
        <div class="bg-white rounded-xl shadow p-6"><p class="text-sm text-gray-600">Items en Portafolio</p><p class="text-3xl font-bold">{{count .Stats.PortfolioItems}}</p></div>
        <div class="bg-white rounded-xl shadow p-6"><p class="text-sm text-gray-600">Ofertas Abiertas</p><p class="text-3xl font-bold">{{count .Stats.OpenJobs}}</p></div>
    </div>
    <div class="bg-white rounded-xl shadow">
        <div class="p-6 border-b flex justify-between"><h3 class="text-xl font-bold">Ofertas Recientes</h3><a href="/dashboard/creator/jobs" class="text-indigo-600 text-sm">Ver todas</a></div>
        {{if .Stats.RecentJobs}}
        <ul class="divide-y">
            {{range .Stats.RecentJobs}}
            <li class="p-6">
                <a href="/dashboard/creator/jobs/{{.ID}}" class="font-semibold text-gray-900 hover:text-indigo-600">{{.Title}}</a>
                <p class="text-sm text-gray-500">{{.CompanyName}}{{with .CategoryName}} · {{.}}{{end}}</p>
                <p class="text-sm text-gray-600">{{truncate .Description 120}}</p>
                {{with .Budget}}<p class="text-sm text-gray-500">Presupuesto: {{money .}}</p>{{end}}
            </li>
            {{end}}
        </ul>
        {{else}}
        <div class="p-12 text-center text-gray-600">No hay ofertas disponibles en este momento</div>
        {{end}}
    </div>
</div>
{{end}}`,

	"creator/jobs": `{{define "content"}}
<div class="space-y-6">
    <h1 class="text-2xl font-bold text-gray-900">Ofertas de Trabajo</h1>
    <form method="GET" action="/dashboard/creator/jobs" class="bg-white rounded-xl shadow p-6 grid grid-cols-1 md:grid-cols-3 gap-4">
        <input type="text" name="search" value="{{.Filter.Search}}" placeholder="Buscar ofertas..." class="px-3 py-2 border border-gray-300 rounded-md">
        <select name="category" class="px-3 py-2 border border-gray-300 rounded-md">
            <option value="">Todas las categorías</option>
            {{range .Categories}}<option value="{{.ID}}" {{selected .ID $.Filter.Category}}>{{.Name}}</option>{{end}}
        </select>
        <button type="submit" class="bg-indigo-600 text-white px-6 py-2 rounded-lg hover:bg-indigo-700">Buscar</button>
    </form>
    {{if .Jobs}}
    <div class="space-y-4">
        {{range .Jobs}}
        <a href="/dashboard/creator/jobs/{{.ID}}" class="block bg-white rounded-xl shadow p-6 hover:shadow-lg">
            <h3 class="text-xl font-bold text-gray-900">{{.Title}}</h3>
            <p class="text-sm text-gray-500">{{.CompanyName}}{{with .CategoryName}} · {{.}}{{end}}</p>
            <p class="text-gray-600 mt-2">{{truncate .Description 200}}</p>
            <p class="text-sm text-gray-500 mt-2">
                {{with .Budget}}Presupuesto: {{money .}} · {{end}}{{with .Deadline}}Fecha límite: {{date .}} · {{end}}Publicado: {{date .CreatedAt}}
            </p>
        </a>
        {{end}}
    </div>
    {{else}}
    <div class="bg-white rounded-xl shadow p-12 text-center text-gray-600">No se encontraron ofertas</div>
    {{end}}
</div>
{{end}}`,

	"creator/job_detail": `{{define "content"}}
<div class="space-y-6">
    <a href="/dashboard/creator/jobs" class="text-indigo-600 text-sm">&larr; Volver a ofertas</a>
    <div class="bg-white rounded-xl shadow p-8">
        <div class="flex justify-between">
            <div>
                <h1 class="text-2xl font-bold text-gray-900">{{.Job.Title}}</h1>
                <p class="text-gray-500">{{.Job.CompanyName}}</p>
            </div>
            <span class="px-3 py-1 h-fit rounded-full text-xs font-medium {{jobBadge .Job.Status}}">{{.Job.Status.Label}}</span>
        </div>
        {{with .Job.CompanyDescription}}<p class="text-sm text-gray-600 mt-2">{{.}}</p>{{end}}
        <p class="text-gray-700 mt-6 whitespace-pre-line">{{.Job.Description}}</p>
        {{with .Job.Requirements}}<h3 class="font-semibold mt-6">Requisitos</h3><p class="text-gray-700 whitespace-pre-line">{{.}}</p>{{end}}
        <div class="grid grid-cols-2 md:grid-cols-3 gap-4 mt-6 text-sm">
            {{with .Job.Budget}}<div><p class="text-gray-500">Presupuesto</p><p class="font-semibold">{{money .}}</p></div>{{end}}
            {{with .Job.Deadline}}<div><p class="text-gray-500">Fecha límite</p><p>{{date .}}</p></div>{{end}}
            {{with .Job.CategoryName}}<div><p class="text-gray-500">Categoría</p><p>{{.}}</p></div>{{end}}
        </div>
    </div>
    {{if eq (print .Job.Status) "open"}}
    <div class="bg-white rounded-xl shadow p-8">
        <h2 class="text-xl font-bold mb-4">Aplicar a esta oferta</h2>
        <form action="/dashboard/creator/jobs/{{.Job.ID}}/apply" method="POST" class="space-y-4">
            <div>
                <label for="cover_letter" class="block text-sm font-medium text-gray-700">Carta de presentación *</label>
                <textarea id="cover_letter" name="cover_letter" rows="6" required placeholder="Explica por qué eres el candidato ideal para este proyecto..." class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md"></textarea>
            </div>
            <div>
                <label for="proposed_budget" class="block text-sm font-medium text-gray-700">Presupuesto propuesto</label>
                <input id="proposed_budget" name="proposed_budget" type="number" step="0.01" min="0" placeholder="0.00" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md">
            </div>
            <button type="submit" class="bg-indigo-600 text-white px-6 py-2 rounded-lg hover:bg-indigo-700">Enviar Aplicación</button>
        </form>
    </div>
    {{end}}
</div>
{{end}}`,

	"creator/applications": `{{define "content"}}
<div class="space-y-6">
    <h1 class="text-2xl font-bold text-gray-900">Mis Aplicaciones</h1>
    {{if .Applications}}
    <div class="space-y-4">
        {{range .Applications}}
        <div class="bg-white rounded-xl shadow p-6">
            <div class="flex justify-between">
                <div>
                    <a href="/dashboard/creator/jobs/{{.JobOpeningID}}" class="text-lg font-bold text-gray-900 hover:text-indigo-600">{{.JobTitle}}</a>
                    <p class="text-sm text-gray-500">{{.CompanyName}}{{with .CategoryName}} · {{.}}{{end}}</p>
                </div>
                <span class="px-3 py-1 h-fit rounded-full text-xs font-medium {{appBadge .Status}}">{{.Status.Label}}</span>
            </div>
            {{with .CoverLetter}}<p class="text-gray-700 mt-3">{{truncate . 200}}</p>{{end}}
            <p class="text-sm text-gray-500 mt-2">{{with .ProposedBudget}}Tu propuesta: {{money .}} · {{end}}Enviada: {{date .CreatedAt}}</p>
            {{if eq (print .Status) "pending"}}
            <form action="/dashboard/creator/applications/{{.ID}}/withdraw" method="POST" class="mt-4" onsubmit="return confirm('¿Estás seguro de que quieres retirar esta aplicación?')">
                <button type="submit" class="text-sm text-red-600 hover:text-red-800">Retirar aplicación</button>
            </form>
            {{end}}
        </div>
        {{end}}
    </div>
    {{else}}
    <div class="bg-white rounded-xl shadow p-12 text-center text-gray-600">
        <p>Aún no has aplicado a ninguna oferta</p>
        <a href="/dashboard/creator/jobs" class="text-indigo-600 mt-2 inline-block">Explorar ofertas</a>
    </div>
    {{end}}
</div>
{{end}}`,

	"creator/portfolio": `{{define "content"}}
<div class="space-y-6">
    <h1 class="text-2xl font-bold text-gray-900">Mi Portafolio</h1>
    <div class="bg-white rounded-xl shadow p-6">
        <h2 class="text-lg font-bold mb-4">Agregar trabajo</h2>
        <form action="/dashboard/creator/portfolio" method="POST" class="grid grid-cols-1 md:grid-cols-2 gap-4">
            <input type="text" name="title" required placeholder="Título del trabajo" class="px-3 py-2 border border-gray-300 rounded-md">
            <select name="file_type" class="px-3 py-2 border border-gray-300 rounded-md">
                <option value="image">Imagen</option>
                <option value="video">Video</option>
            </select>
            <input type="url" name="file_url" required placeholder="https://..." class="px-3 py-2 border border-gray-300 rounded-md">
            <input type="url" name="thumbnail_url" placeholder="https://... (miniatura)" class="px-3 py-2 border border-gray-300 rounded-md">
            <textarea name="description" rows="2" placeholder="Describe tu trabajo" class="md:col-span-2 px-3 py-2 border border-gray-300 rounded-md"></textarea>
            <button type="submit" class="md:col-span-2 bg-indigo-600 text-white px-6 py-2 rounded-lg hover:bg-indigo-700">Agregar</button>
        </form>
    </div>
    {{if .Items}}
    <div class="grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-6">
        {{range .Items}}
        <div class="bg-white rounded-xl shadow overflow-hidden">
            {{if isVideo .FileType}}
            <video src="{{.FileURL}}" controls class="w-full h-48 object-cover"></video>
            {{else}}
            <img src="{{if .ThumbnailURL}}{{.ThumbnailURL}}{{else}}{{.FileURL}}{{end}}" alt="{{.Title}}" class="w-full h-48 object-cover">
            {{end}}
            <div class="p-4">
                <h3 class="font-semibold">{{.Title}}</h3>
                {{with .Description}}<p class="text-sm text-gray-600">{{.}}</p>{{end}}
                <form action="/dashboard/creator/portfolio/{{.ID}}/delete" method="POST" class="mt-2" onsubmit="return confirm('¿Estás seguro de que quieres eliminar este item?')">
                    <button type="submit" class="text-sm text-red-600 hover:text-red-800">Eliminar</button>
                </form>
            </div>
        </div>
        {{end}}
    </div>
    {{else}}
    <div class="bg-white rounded-xl shadow p-12 text-center text-gray-600">Tu portafolio está vacío</div>
    {{end}}
</div>
{{end}}`,

	"creator/profile": `{{define "content"}}
<div class="max-w-3xl mx-auto space-y-6">
    <div class="bg-white rounded-xl shadow p-8">
        <h1 class="text-2xl font-bold text-gray-900 mb-6">Mi Perfil</h1>
        <form action="/dashboard/creator/profile" method="POST" class="space-y-4">
            <div>
                <label for="bio" class="block text-sm font-medium text-gray-700">Biografía</label>
                <textarea id="bio" name="bio" rows="4" placeholder="Cuéntanos sobre ti..." class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md">{{.Profile.Bio}}</textarea>
            </div>
            <div class="grid grid-cols-1 md:grid-cols-2 gap-4">
                <div>
                    <label for="phone" class="block text-sm font-medium text-gray-700">Teléfono</label>
                    <input id="phone" name="phone" type="tel" value="{{.Profile.Phone}}" placeholder="+51 999 999 999" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md">
                </div>
                <div>
                    <label for="location" class="block text-sm font-medium text-gray-700">Ubicación</label>
                    <input id="location" name="location" type="text" value="{{.Profile.Location}}" placeholder="Lima, Perú" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md">
                </div>
            </div>
            <div>
                <label for="portfolio_description" class="block text-sm font-medium text-gray-700">Descripción del portafolio</label>
                <textarea id="portfolio_description" name="portfolio_description" rows="3" placeholder="Describe tu portafolio y experiencia..." class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md">{{.Profile.PortfolioDescription}}</textarea>
            </div>
            <div>
                <label for="profile_image" class="block text-sm font-medium text-gray-700">URL de imagen de perfil</label>
                <input id="profile_image" name="profile_image" type="url" value="{{.Profile.ProfileImage}}" placeholder="https://..." class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md">
            </div>
            <button type="submit" class="bg-indigo-600 text-white px-6 py-2 rounded-lg hover:bg-indigo-700">Guardar Cambios</button>
        </form>
    </div>
    <div class="bg-white rounded-xl shadow p-8">
        <h2 class="text-xl font-bold mb-4">Mis Categorías</h2>
        {{if .Mine}}
        <div class="flex flex-wrap gap-2 mb-6">
            {{range .Mine}}
            <form action="/dashboard/creator/profile/categories/{{.ID}}/delete" method="POST" class="inline-flex items-center px-3 py-1 rounded-full bg-indigo-100 text-indigo-700 text-sm">
                {{.Name}}<button type="submit" class="ml-2 text-indigo-500 hover:text-indigo-900" aria-label="Quitar">&times;</button>
            </form>
            {{end}}
        </div>
        {{else}}
        <p class="text-gray-600 mb-6">Aún no has agregado categorías</p>
        {{end}}
        {{if .Available}}
        <form action="/dashboard/creator/profile/categories" method="POST" class="flex gap-2">
            <select name="category_id" class="px-3 py-2 border border-gray-300 rounded-md">
                {{range .Available}}<option value="{{.ID}}">{{.Name}}</option>{{end}}
            </select>
            <button type="submit" class="bg-indigo-600 text-white px-4 py-2 rounded-lg hover:bg-indigo-700">Agregar</button>
        </form>
        {{end}}
    </div>
</div>
{{end}}`,
}
