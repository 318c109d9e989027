// Package views renders the server-side pages. Markup is deliberately
// minimal: tables and forms with the hooks the layout store's
// attributes bind to.
package views

import (
	"html/template"
	"net/http"
	"sync"

	"github.com/HasanBocek/KTUTennisCRM/internal/menu"
	"github.com/HasanBocek/KTUTennisCRM/internal/notify"
	"github.com/HasanBocek/KTUTennisCRM/pkg/types"
)

// DocumentAttributes holds the attribute values the layout store
// pushes; the base template reads them on every render. Implements
// the layout package's attribute applier.
type DocumentAttributes struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewDocumentAttributes() *DocumentAttributes {
	return &DocumentAttributes{values: make(map[string]string)}
}

func (d *DocumentAttributes) SetAttribute(tag, attribute, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.values[tag+":"+attribute] = value
}

func (d *DocumentAttributes) get(tag, attribute, fallback string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if v, ok := d.values[tag+":"+attribute]; ok && v != "" {
		return v
	}
	return fallback
}

// PageData is what every page template receives.
type PageData struct {
	Title   string
	User    *types.Me
	Menu    []menu.Item
	Toasts  []notify.Toast
	Theme   string
	Sidebar string
	Data    any
}

const baseTemplate = `<!DOCTYPE html>
<html lang="tr" data-bs-theme="{{.Theme}}">
<head><meta charset="utf-8"><title>{{.Title}} | Tenis Kulübü Yönetim Sistemi</title></head>
<body data-sidebar-size="{{.Sidebar}}">
{{range .Toasts}}<div class="toast toast-{{.Level}}">{{.Message}}</div>
{{end}}{{if .User}}<nav>
<ul>{{range .Menu}}{{if .IsTitle}}<li class="menu-title">{{.Label}}</li>{{else}}<li><a href="{{.URL}}">{{.Label}}</a></li>{{end}}{{end}}</ul>
</nav>{{end}}
<main>{{template "content" .}}</main>
</body>
</html>`

var pageTemplates = map[string]string{
	"login": `{{define "content"}}<form method="post" action="/auth/login">
<input name="identifier" placeholder="E-posta veya öğrenci numarası">
<input name="password" type="password" placeholder="Şifre">
<button type="submit">Giriş Yap</button>
</form>{{end}}`,

	"profile": `{{define "content"}}{{with .Data}}<h1>{{.FirstName}} {{.LastName}}</h1>
<dl><dt>Telefon</dt><dd>{{.PhoneNumber}}</dd>
<dt>E-posta</dt><dd>{{.Email}}</dd>
<dt>Yetenek</dt><dd>{{.SkillLevel}}</dd></dl>{{end}}{{end}}`,

	"users": `{{define "content"}}<table>
{{range .Data}}<tr><td>{{.FirstName}} {{.LastName}}</td><td>{{.PhoneNumber}}</td><td>{{.SkillLevel}}</td></tr>
{{end}}</table>{{end}}`,

	"groups": `{{define "content"}}<table>
{{range .Data}}<tr><td>{{.Name}}</td><td>{{len .Coaches}} antrenör</td><td>{{if .MembershipOpen}}Açık{{else}}Kapalı{{end}}</td></tr>
{{end}}</table>{{end}}`,

	"group": `{{define "content"}}{{with .Data}}<h1>{{.Name}}</h1>
<p>{{.Description}}</p>
<table>{{range .Schedule}}<tr><td>{{.DayOfWeek}}</td><td>{{.StartTime}}-{{.EndTime}}</td></tr>{{end}}</table>{{end}}{{end}}`,

	"sessions": `{{define "content"}}<table>
{{range .Data}}<tr><td>{{.StartTime.Format "02.01.2006 15:04"}}</td><td>{{.Status}}</td><td>{{.Attendance.Status}}</td></tr>
{{end}}</table>{{end}}`,

	"error": `{{define "content"}}<h1>Bir hata oluştu</h1><p>{{.Data}}</p>{{end}}`,
}

// Renderer parses the page templates once and renders them over the
// shared base.
type Renderer struct {
	attrs     *DocumentAttributes
	templates map[string]*template.Template
}

func NewRenderer(attrs *DocumentAttributes) *Renderer {
	templates := make(map[string]*template.Template, len(pageTemplates))
	for name, content := range pageTemplates {
		templates[name] = template.Must(
			template.Must(template.New(name).Parse(baseTemplate)).Parse(content))
	}
	return &Renderer{attrs: attrs, templates: templates}
}

// Render writes one page. The current layout attributes are injected
// at render time so theme switches take effect on the next request.
func (r *Renderer) Render(w http.ResponseWriter, page string, data PageData) error {
	tmpl, ok := r.templates[page]
	if !ok {
		tmpl = r.templates["error"]
		data.Data = "sayfa bulunamadı"
	}
	if data.Theme == "" {
		data.Theme = r.attrs.get("html", "data-bs-theme", "light")
	}
	if data.Sidebar == "" {
		data.Sidebar = r.attrs.get("body", "data-sidebar-size", "collapsed")
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tmpl.Execute(w, data)
}
