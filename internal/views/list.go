package views

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"vet-clinic-admin/internal/domain/entities"
	"vet-clinic-admin/internal/ui/dialog"
)

// ConfirmParam es el query param que abre la confirmación de borrado en el listado.
const ConfirmParam = "eliminar"

// ListView es el listado genérico de una entidad.
type ListView struct {
	desc *entities.Descriptor
	api  Resources
	opts Options
}

func NewListView(desc *entities.Descriptor, api Resources, opts Options) *ListView {
	return &ListView{desc: desc, api: api, opts: opts.withDefaults()}
}

type Row struct {
	ID        int64
	Cells     []string
	EditURL   string
	DeleteURL string // abre la confirmación, no borra

	// Registro crudo; las FKs no se tocan, los nombres van solo en Cells.
	Record entities.Record
}

type ListPage struct {
	Desc         *entities.Descriptor
	Title        string
	NewURL       string
	NewLabel     string
	Columns      []string
	Rows         []Row
	Empty        bool
	EmptyMessage string
	Dialog       dialog.Dialog
}

// Activate carga la colección y las colecciones referenciadas en paralelo.
// Cada fetch escribe solo su propio slot.
func (v *ListView) Activate(ctx context.Context) ListPage {
	refs := v.desc.References()

	var (
		g       errgroup.Group
		records []entities.Record
		listErr error
		lookups = make([]entities.Lookup, len(refs))
		refErrs = make([]error, len(refs))
	)

	g.Go(func() error {
		records, listErr = v.api.FetchCollection(ctx, v.desc.Resource)
		return nil
	})
	for i, f := range refs {
		lookups[i] = entities.NewLookup(*f.Ref, nil)
		g.Go(func() error {
			recs, err := v.api.FetchCollection(ctx, f.Ref.Resource)
			if err != nil {
				refErrs[i] = err
				return nil
			}
			lookups[i] = entities.NewLookup(*f.Ref, recs)
			return nil
		})
	}
	_ = g.Wait()

	page := v.page(nil)

	failed := listErr
	for _, err := range refErrs {
		if failed == nil && err != nil {
			failed = err
		}
	}
	if failed != nil {
		v.opts.Log.Warn("list activation failed", map[string]any{
			"resource": v.desc.Resource,
			"error":    failed.Error(),
		})
		page.Dialog = dialog.Error(v.desc.Texts.LoadListError)
	}
	if listErr != nil {
		return page
	}

	byKey := make(map[string]entities.Lookup, len(refs))
	for i, f := range refs {
		byKey[f.Key] = lookups[i]
	}
	return v.fill(page, records, byKey)
}

// ConfirmDelete abre el diálogo de confirmación; no llama a la API.
// "No" cierra en el navegador, sin recargar el listado.
func (v *ListView) ConfirmDelete(id int64) dialog.Dialog {
	return dialog.Confirm(dialog.TitleConfirm, v.desc.Texts.ConfirmDelete, v.desc.DeletePath(id), "")
}

// Delete borra un registro (una sola llamada) y devuelve el diálogo de resultado,
// que se oculta solo sin navegar: el único refetch es el GET tras el redirect.
func (v *ListView) Delete(ctx context.Context, id int64) dialog.Dialog {
	var d dialog.Dialog
	if _, err := v.api.Remove(ctx, v.desc.Resource, id); err != nil {
		d = dialog.Error(v.desc.Texts.DeleteError + ": " + describe(err))
	} else {
		d = dialog.Success(v.desc.Texts.Deleted)
	}
	return d.WithAutoDismiss(v.opts.DismissDelay, "")
}

func (v *ListView) page(records []entities.Record) ListPage {
	cols := make([]string, 0, len(v.desc.Fields))
	for _, f := range v.desc.Fields {
		cols = append(cols, f.Header())
	}
	return ListPage{
		Desc:         v.desc,
		Title:        v.desc.Texts.ListTitle,
		NewURL:       v.desc.NewPath(),
		NewLabel:     v.desc.Texts.NewButton,
		Columns:      cols,
		Rows:         []Row{},
		Empty:        len(records) == 0,
		EmptyMessage: v.desc.Texts.EmptyList,
	}
}

func (v *ListView) fill(page ListPage, records []entities.Record, lookups map[string]entities.Lookup) ListPage {
	page.Empty = len(records) == 0
	page.Rows = make([]Row, 0, len(records))

	for _, rec := range records {
		id, _ := entities.RecordID(rec)
		cells := make([]string, 0, len(v.desc.Fields))
		for _, f := range v.desc.Fields {
			cells = append(cells, cell(f, rec[f.Key], lookups))
		}
		page.Rows = append(page.Rows, Row{
			ID:        id,
			Cells:     cells,
			EditURL:   v.desc.EditPath(id),
			DeleteURL: v.desc.ListPath() + "?" + ConfirmParam + "=" + strconv.FormatInt(id, 10),
			Record:    rec,
		})
	}
	return page
}

func cell(f entities.Field, raw any, lookups map[string]entities.Lookup) string {
	switch f.Kind {
	case entities.KindReference:
		return lookups[f.Key].Name(raw)
	case entities.KindDate:
		// La API puede devolver un timestamp ISO completo; se muestra la fecha.
		return truncate(entities.Format(raw), 10)
	case entities.KindTime:
		return truncate(entities.Format(raw), 5)
	default:
		return entities.Format(raw)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
