package entities

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Record es un registro tal como lo entrega la API remota (objeto JSON).
// Los números llegan como json.Number; los que vienen de un formulario como int64/float64.
type Record map[string]any

// Kind define cómo se captura, valida y muestra un campo.
type Kind string

const (
	KindText       Kind = "text"
	KindSelect     Kind = "select" // opciones fijas
	KindNumber     Kind = "number"
	KindEmail      Kind = "email"
	KindNationalID Kind = "national_id" // RUT
	KindReference  Kind = "reference"   // FK, selector poblado desde otra colección
	KindDate       Kind = "date"        // YYYY-MM-DD
	KindTime       Kind = "time"        // HH:MM
)

// Numeric indica si el campo se modela como número.
func (k Kind) Numeric() bool {
	return k == KindNumber || k == KindReference
}

// Reference describe una FK: a qué recurso apunta y cómo mostrar sus registros.
type Reference struct {
	Resource string
	Display  string // campo usado como nombre (lookup de listados)
	Detail   string // campo extra mostrado en el selector (opcional)
	// Prefijo del detalle, p.ej. "RUT: ".
	DetailPrefix string
	// Texto cuando el id no existe en el lookup.
	Unknown string
}

// OptionLabel arma el texto de un <option> del selector.
func (r Reference) OptionLabel(rec Record) string {
	name := Format(rec[r.Display])
	if r.Detail == "" {
		return name
	}
	return name + " (" + r.DetailPrefix + Format(rec[r.Detail]) + ")"
}

type Field struct {
	Key         string // clave JSON en la API
	Label       string // etiqueta del formulario
	Column      string // encabezado en el listado (default Label)
	Kind        Kind
	Placeholder string
	Options     []string   // KindSelect
	Ref         *Reference // KindReference
	// Mensaje cuando el valor no es un número positivo.
	InvalidNumber string
}

func (f Field) Header() string {
	if f.Column != "" {
		return f.Column
	}
	return f.Label
}

// Texts son los textos de UI de una entidad.
type Texts struct {
	ListTitle     string
	NewButton     string
	EmptyList     string
	CreateTitle   string
	EditTitle     string
	CreateButton  string
	UpdateButton  string
	Created       string
	Updated       string
	Deleted       string
	ConfirmDelete string
	LoadListError string
	LoadOneError  string
	LoadRefsError string
	SaveError     string // prefijo; se le agrega la causa
	DeleteError   string // prefijo; se le agrega la causa
}

// Descriptor parametriza las vistas genéricas de listado y formulario.
type Descriptor struct {
	Resource string // segmento de la API, p.ej. "dueno"
	Slug     string // segmento de la UI, p.ej. "duenos"
	Nav      string // texto del navbar
	Fields   []Field
	Texts    Texts
}

// References devuelve los campos FK en orden.
func (d *Descriptor) References() []Field {
	out := make([]Field, 0)
	for _, f := range d.Fields {
		if f.Kind == KindReference && f.Ref != nil {
			out = append(out, f)
		}
	}
	return out
}

func (d *Descriptor) ListPath() string { return "/" + d.Slug }

func (d *Descriptor) NewPath() string { return "/" + d.Slug + "/registro" }

func (d *Descriptor) EditPath(id int64) string {
	return "/" + d.Slug + "/registro/" + strconv.FormatInt(id, 10)
}

func (d *Descriptor) DeletePath(id int64) string {
	return "/" + d.Slug + "/" + strconv.FormatInt(id, 10) + "/eliminar"
}

// Empty devuelve los valores por defecto de un formulario nuevo.
func Empty(d *Descriptor) Record {
	rec := make(Record, len(d.Fields))
	for _, f := range d.Fields {
		rec[f.Key] = ""
	}
	return rec
}

// RecordID extrae el id asignado por el servidor.
func RecordID(rec Record) (int64, bool) {
	if rec == nil {
		return 0, false
	}
	n, ok := asFloat(rec["id"])
	if !ok || n <= 0 || n != float64(int64(n)) {
		return 0, false
	}
	return int64(n), true
}

// FormValues formatea un registro como valores de input.
func FormValues(d *Descriptor, rec Record) map[string]string {
	out := make(map[string]string, len(d.Fields))
	for _, f := range d.Fields {
		out[f.Key] = Format(rec[f.Key])
	}
	return out
}

// Format convierte un valor JSON a texto para la UI.
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// asFloat solo acepta números finitos: "Inf" o "NaN" no son números válidos.
func asFloat(v any) (float64, bool) {
	var (
		f   float64
		err error
	)
	switch x := v.(type) {
	case int64:
		return float64(x), true
	case int:
		return float64(x), true
	case float64:
		f = x
	case json.Number:
		f, err = x.Float64()
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		f, err = strconv.ParseFloat(s, 64)
	default:
		return 0, false
	}
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
