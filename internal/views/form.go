package views

import (
	"context"
	"errors"
	"net/url"

	"golang.org/x/sync/errgroup"

	"vet-clinic-admin/internal/domain/entities"
	"vet-clinic-admin/internal/ui/dialog"
)

// FormView es el formulario genérico de alta/edición. El modo se fija al
// construirlo y no cambia: una vista de edición nunca llama a Create.
type FormView struct {
	desc *entities.Descriptor
	api  Resources
	opts Options

	id   int64
	edit bool
}

func NewCreateForm(desc *entities.Descriptor, api Resources, opts Options) *FormView {
	return &FormView{desc: desc, api: api, opts: opts.withDefaults()}
}

func NewEditForm(desc *entities.Descriptor, api Resources, id int64, opts Options) *FormView {
	return &FormView{desc: desc, api: api, opts: opts.withDefaults(), id: id, edit: true}
}

func (v *FormView) IsEdit() bool { return v.edit }

func (v *FormView) ID() int64 { return v.id }

type FieldView struct {
	entities.Field
	Value   string
	Choices []entities.Option
}

type FormPage struct {
	Desc        *entities.Descriptor
	Title       string
	SubmitLabel string
	Action      string
	CancelURL   string
	Edit        bool
	Fields      []FieldView
	Dialog      dialog.Dialog
}

// Values devuelve el valor actual de cada campo por clave.
func (p FormPage) Values() map[string]string {
	out := make(map[string]string, len(p.Fields))
	for _, f := range p.Fields {
		out[f.Key] = f.Value
	}
	return out
}

// Activate carga las colecciones de referencia siempre y, en edición, el
// registro; todo en paralelo. Si falla el registro ese error manda.
func (v *FormView) Activate(ctx context.Context) FormPage {
	var (
		g      errgroup.Group
		rec    entities.Record
		recErr error
	)
	if v.edit {
		g.Go(func() error {
			rec, recErr = v.api.FetchOne(ctx, v.desc.Resource, v.id)
			return nil
		})
	}
	loader := v.startChoices(ctx, &g)
	_ = g.Wait()
	choices, refErr := loader.result()

	values := entities.FormValues(v.desc, entities.Empty(v.desc))
	if v.edit && recErr == nil && rec != nil {
		values = entities.FormValues(v.desc, rec)
	}
	page := v.page(values, choices)

	switch {
	case recErr != nil:
		v.opts.Log.Warn("form record load failed", map[string]any{
			"resource": v.desc.Resource,
			"id":       v.id,
			"error":    recErr.Error(),
		})
		page.Dialog = dialog.Error(v.desc.Texts.LoadOneError).WithCloseURL(v.desc.ListPath())
	case refErr != nil:
		v.opts.Log.Warn("form references load failed", map[string]any{
			"resource": v.desc.Resource,
			"error":    refErr.Error(),
		})
		page.Dialog = dialog.Error(v.refsErrorText())
	}
	return page
}

// Submit valida y persiste. Los valores ingresados se conservan salvo tras
// un alta exitosa, que deja el formulario vacío.
func (v *FormView) Submit(ctx context.Context, form url.Values) FormPage {
	rec := entities.Bind(v.desc, form)
	// se muestra lo que escribió el operador, no el valor ya tipado
	values := make(map[string]string, len(v.desc.Fields))
	for _, f := range v.desc.Fields {
		values[f.Key] = form.Get(f.Key)
	}

	if err := entities.Validate(v.desc, rec); err != nil {
		var ve *entities.ValidationError
		msg := err.Error()
		if errors.As(err, &ve) {
			msg = ve.Message
		}
		page := v.page(values, v.choices(ctx))
		page.Dialog = dialog.Info(entities.ValidationTitle, msg)
		return page
	}

	var (
		err     error
		success string
	)
	if v.edit {
		rec["id"] = v.id
		_, err = v.api.Update(ctx, v.desc.Resource, v.id, rec)
		success = v.desc.Texts.Updated
	} else {
		_, err = v.api.Create(ctx, v.desc.Resource, rec)
		success = v.desc.Texts.Created
	}

	if err != nil {
		page := v.page(values, v.choices(ctx))
		page.Dialog = dialog.Error(v.desc.Texts.SaveError + ": " + describe(err))
		return page
	}

	v.opts.Log.Info("record saved", map[string]any{
		"resource": v.desc.Resource,
		"edit":     v.edit,
		"id":       v.id,
	})
	if !v.edit {
		values = entities.FormValues(v.desc, entities.Empty(v.desc))
	}
	page := v.page(values, v.choices(ctx))
	page.Dialog = dialog.Success(success).
		WithAutoDismiss(v.opts.DismissDelay, v.desc.ListPath()).
		WithCloseURL(v.desc.ListPath())
	return page
}

// choiceLoader reparte un fetch por FK; cada goroutine escribe solo su slot.
type choiceLoader struct {
	refs  []entities.Field
	slots [][]entities.Option
	errs  []error
}

func (v *FormView) startChoices(ctx context.Context, g *errgroup.Group) *choiceLoader {
	refs := v.desc.References()
	l := &choiceLoader{
		refs:  refs,
		slots: make([][]entities.Option, len(refs)),
		errs:  make([]error, len(refs)),
	}
	for i, f := range refs {
		g.Go(func() error {
			recs, err := v.api.FetchCollection(ctx, f.Ref.Resource)
			if err != nil {
				l.errs[i] = err
				return nil
			}
			l.slots[i] = entities.Options(*f.Ref, recs)
			return nil
		})
	}
	return l
}

// result se llama después de g.Wait().
func (l *choiceLoader) result() (map[string][]entities.Option, error) {
	out := make(map[string][]entities.Option, len(l.refs))
	var first error
	for i, f := range l.refs {
		out[f.Key] = l.slots[i]
		if first == nil && l.errs[i] != nil {
			first = l.errs[i]
		}
	}
	return out, first
}

func (v *FormView) choices(ctx context.Context) map[string][]entities.Option {
	var g errgroup.Group
	l := v.startChoices(ctx, &g)
	_ = g.Wait()
	c, _ := l.result()
	return c
}

func (v *FormView) refsErrorText() string {
	if v.desc.Texts.LoadRefsError != "" {
		return v.desc.Texts.LoadRefsError
	}
	return v.desc.Texts.LoadListError
}

func (v *FormView) page(values map[string]string, choices map[string][]entities.Option) FormPage {
	p := FormPage{
		Desc:        v.desc,
		Title:       v.desc.Texts.CreateTitle,
		SubmitLabel: v.desc.Texts.CreateButton,
		Action:      v.desc.NewPath(),
		CancelURL:   v.desc.ListPath(),
		Edit:        v.edit,
		Fields:      make([]FieldView, 0, len(v.desc.Fields)),
	}
	if v.edit {
		p.Title = v.desc.Texts.EditTitle
		p.SubmitLabel = v.desc.Texts.UpdateButton
		p.Action = v.desc.EditPath(v.id)
	}
	for _, f := range v.desc.Fields {
		fv := FieldView{Field: f, Value: values[f.Key]}
		if f.Kind == entities.KindReference {
			fv.Choices = choices[f.Key]
		}
		p.Fields = append(p.Fields, fv)
	}
	return p
}
