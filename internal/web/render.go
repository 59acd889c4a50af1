package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"vet-clinic-admin/internal/domain/entities"
	"vet-clinic-admin/internal/ui/dialog"
	"vet-clinic-admin/internal/views"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	pageHome = "home.html"
	pageList = "list.html"
	pageForm = "form.html"
)

var funcs = template.FuncMap{
	"inputType":  inputType,
	"inputValue": inputValue,
}

// parsePages arma un template por página: layout + contenido.
func parsePages() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template, 3)
	for _, name := range []string{pageHome, pageList, pageForm} {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("web: parse %s: %w", name, err)
		}
		pages[name] = t
	}
	return pages, nil
}

type navItem struct {
	Label  string
	URL    string
	Active bool
}

type layoutData struct {
	Brand  string
	Title  string
	Active string
	Nav    []navItem
	Year   int
	Dialog dialog.Dialog
	Body   any
}

func navigation(active string) []navItem {
	all := entities.All()
	out := make([]navItem, 0, len(all))
	for _, d := range all {
		out = append(out, navItem{Label: d.Nav, URL: d.ListPath(), Active: d.Slug == active})
	}
	return out
}

// render ejecuta a un buffer para no dejar una respuesta a medias si falla.
func (h *Handler) render(w http.ResponseWriter, status int, page string, data layoutData) {
	data.Brand = Brand
	data.Nav = navigation(data.Active)
	data.Year = time.Now().Year()

	t, ok := h.pages[page]
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		h.log.Error("render failed", map[string]any{"page": page, "error": err.Error()})
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func inputType(k entities.Kind) string {
	switch k {
	case entities.KindEmail:
		return "email"
	case entities.KindNumber:
		return "number"
	case entities.KindDate:
		return "date"
	case entities.KindTime:
		return "time"
	default:
		return "text"
	}
}

// inputValue recorta fecha/hora a lo que aceptan los inputs nativos.
func inputValue(f views.FieldView) string {
	switch f.Kind {
	case entities.KindDate:
		if len(f.Value) > 10 {
			return f.Value[:10]
		}
	case entities.KindTime:
		if len(f.Value) > 5 {
			return f.Value[:5]
		}
	}
	return f.Value
}
