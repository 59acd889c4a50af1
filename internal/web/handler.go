package web

import (
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"vet-clinic-admin/internal/domain/entities"
	"vet-clinic-admin/internal/flash"
	"vet-clinic-admin/internal/platform/logger"
	"vet-clinic-admin/internal/ui/dialog"
	"vet-clinic-admin/internal/views"
)

// Brand aparece en el navbar, el footer y el título.
const Brand = "Veterinaria CatDog"

type Config struct {
	API   views.Resources
	Flash flash.Store
	Log   logger.Logger
	Views views.Options
}

// Handler sirve el panel: inicio, listados y formularios de cada entidad.
type Handler struct {
	api   views.Resources
	flash flash.Store
	log   logger.Logger
	opts  views.Options
	pages map[string]*template.Template
}

func New(cfg Config) (*Handler, error) {
	if cfg.API == nil {
		return nil, errors.New("web: api required")
	}
	if cfg.Flash == nil {
		cfg.Flash = flash.NewMemoryStore(flash.DefaultTTL)
	}
	if cfg.Log == nil {
		cfg.Log = logger.Nop()
	}
	if cfg.Views.Log == nil {
		cfg.Views.Log = cfg.Log
	}
	pages, err := parsePages()
	if err != nil {
		return nil, err
	}
	return &Handler{
		api:   cfg.API,
		flash: cfg.Flash,
		log:   cfg.Log,
		opts:  cfg.Views,
		pages: pages,
	}, nil
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	static, _ := fs.Sub(staticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	r.Get("/", h.home)

	r.Route("/{slug}", func(er chi.Router) {
		er.Get("/", h.list)
		er.Post("/{id}/eliminar", h.remove)

		er.Get("/registro", h.newForm)
		er.Post("/registro", h.create)
		er.Get("/registro/{id}", h.editForm)
		er.Post("/registro/{id}", h.update)
	})
}

type homeLink struct {
	Label string
	URL   string
}

type homeBody struct {
	Brand string
	Links []homeLink
}

func (h *Handler) home(w http.ResponseWriter, _ *http.Request) {
	body := homeBody{Brand: Brand}
	for _, d := range entities.All() {
		body.Links = append(body.Links, homeLink{Label: d.Nav, URL: d.ListPath()})
	}
	h.render(w, http.StatusOK, pageHome, layoutData{Title: "Inicio", Body: body})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	desc, ok := h.descriptor(w, r)
	if !ok {
		return
	}
	v := views.NewListView(desc, h.api, h.opts)
	page := v.Activate(r.Context())

	// El resultado de un borrado llega por flash; un error de carga manda.
	if d, found := h.takeFlash(w, r); found && !page.Dialog.Open {
		page.Dialog = d
	}
	if raw := r.URL.Query().Get(views.ConfirmParam); raw != "" && !page.Dialog.Open {
		if id, ok := parseID(raw); ok {
			page.Dialog = v.ConfirmDelete(id)
		}
	}

	h.render(w, http.StatusOK, pageList, layoutData{
		Title:  page.Title,
		Active: desc.Slug,
		Dialog: page.Dialog,
		Body:   page,
	})
}

// remove borra y redirige al listado (post/redirect/get).
func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	desc, ok := h.descriptor(w, r)
	if !ok {
		return
	}
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	d := views.NewListView(desc, h.api, h.opts).Delete(r.Context(), id)
	if err := flash.Save(r.Context(), w, h.flash, d); err != nil {
		h.log.Warn("flash save failed", map[string]any{"error": err.Error()})
		// sin flash, se muestra el resultado directamente
		page := views.NewListView(desc, h.api, h.opts).Activate(r.Context())
		page.Dialog = d
		h.render(w, http.StatusOK, pageList, layoutData{Title: page.Title, Active: desc.Slug, Dialog: d, Body: page})
		return
	}
	http.Redirect(w, r, desc.ListPath(), http.StatusSeeOther)
}

func (h *Handler) newForm(w http.ResponseWriter, r *http.Request) {
	desc, ok := h.descriptor(w, r)
	if !ok {
		return
	}
	page := views.NewCreateForm(desc, h.api, h.opts).Activate(r.Context())
	h.renderForm(w, desc, page)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	desc, ok := h.descriptor(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "formulario inválido", http.StatusBadRequest)
		return
	}
	page := views.NewCreateForm(desc, h.api, h.opts).Submit(r.Context(), r.PostForm)
	h.renderForm(w, desc, page)
}

func (h *Handler) editForm(w http.ResponseWriter, r *http.Request) {
	desc, id, ok := h.descriptorAndID(w, r)
	if !ok {
		return
	}
	page := views.NewEditForm(desc, h.api, id, h.opts).Activate(r.Context())
	h.renderForm(w, desc, page)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	desc, id, ok := h.descriptorAndID(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "formulario inválido", http.StatusBadRequest)
		return
	}
	page := views.NewEditForm(desc, h.api, id, h.opts).Submit(r.Context(), r.PostForm)
	h.renderForm(w, desc, page)
}

func (h *Handler) renderForm(w http.ResponseWriter, desc *entities.Descriptor, page views.FormPage) {
	h.render(w, http.StatusOK, pageForm, layoutData{
		Title:  page.Title,
		Active: desc.Slug,
		Dialog: page.Dialog,
		Body:   page,
	})
}

func (h *Handler) descriptor(w http.ResponseWriter, r *http.Request) (*entities.Descriptor, bool) {
	desc, ok := entities.BySlug(chi.URLParam(r, "slug"))
	if !ok {
		http.NotFound(w, r)
		return nil, false
	}
	return desc, true
}

func (h *Handler) descriptorAndID(w http.ResponseWriter, r *http.Request) (*entities.Descriptor, int64, bool) {
	desc, ok := h.descriptor(w, r)
	if !ok {
		return nil, 0, false
	}
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return nil, 0, false
	}
	return desc, id, true
}

func (h *Handler) takeFlash(w http.ResponseWriter, r *http.Request) (dialog.Dialog, bool) {
	d, ok, err := flash.Take(w, r, h.flash)
	if err != nil {
		h.log.Warn("flash read failed", map[string]any{"error": err.Error()})
		return dialog.Closed(), false
	}
	return d, ok
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
