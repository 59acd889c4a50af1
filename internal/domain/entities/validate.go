package entities

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Rule string

const (
	RuleRequired          Rule = "required"
	RuleInvalidNumber     Rule = "invalid_number"
	RuleInvalidEmail      Rule = "invalid_email"
	RuleInvalidNationalID Rule = "invalid_national_id"
)

const (
	ValidationTitle = "Error de Validación"

	msgRequired          = "Todos los campos son obligatorios."
	msgInvalidNumber     = "Los campos numéricos deben ser números positivos."
	msgInvalidEmail      = "El formato del correo electrónico no es válido."
	msgInvalidNationalID = "El formato del RUT no es válido. Use el formato XX.XXX.XXX-X o X.XXX.XXX-X."
)

// ValidationError es local al formulario: nunca se envía a la red.
type ValidationError struct {
	Rule    Rule
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var (
	// RUT chileno: D{1,2}.DDD.DDD-D{1,2}
	nationalIDPattern = regexp.MustCompile(`^\d{1,2}\.\d{3}\.\d{3}-\d{1,2}$`)
	emailPattern      = regexp.MustCompile(`\S+@\S+\.\S+`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("national_id", func(fl validator.FieldLevel) bool {
		return nationalIDPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("simple_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return v
}

// Validate corre las reglas en orden y se detiene en la primera falla:
// obligatorios, numéricos positivos, correo, RUT. Dentro de cada regla
// manda el orden de los campos del descriptor.
func Validate(d *Descriptor, rec Record) error {
	present := make(map[string]any, len(d.Fields))
	for _, f := range d.Fields {
		present[f.Key] = strings.TrimSpace(Format(rec[f.Key]))
	}
	if f, bad := firstFailure(d.Fields, present, "required"); bad {
		return &ValidationError{Rule: RuleRequired, Field: f.Key, Message: msgRequired}
	}

	numbers := map[string]any{}
	for _, f := range d.Fields {
		if !f.Kind.Numeric() {
			continue
		}
		n, ok := asFloat(rec[f.Key])
		if !ok {
			// texto que no es número finito: se fuerza la falla de gt=0
			n = 0
		}
		numbers[f.Key] = n
	}
	if f, bad := firstFailure(d.Fields, numbers, "gt=0"); bad {
		msg := f.InvalidNumber
		if msg == "" {
			msg = msgInvalidNumber
		}
		return &ValidationError{Rule: RuleInvalidNumber, Field: f.Key, Message: msg}
	}

	if f, bad := firstFailure(d.Fields, textOf(d, rec, KindEmail), "simple_email"); bad {
		return &ValidationError{Rule: RuleInvalidEmail, Field: f.Key, Message: msgInvalidEmail}
	}
	if f, bad := firstFailure(d.Fields, textOf(d, rec, KindNationalID), "national_id"); bad {
		return &ValidationError{Rule: RuleInvalidNationalID, Field: f.Key, Message: msgInvalidNationalID}
	}
	return nil
}

// firstFailure aplica la misma regla a cada clave de data con ValidateMap y
// devuelve el primer campo que falla según el orden de fields.
func firstFailure(fields []Field, data map[string]any, tag string) (Field, bool) {
	if len(data) == 0 {
		return Field{}, false
	}
	rules := make(map[string]any, len(data))
	for k := range data {
		rules[k] = tag
	}
	errs := validate.ValidateMap(data, rules)
	for _, f := range fields {
		if _, bad := errs[f.Key]; bad {
			return f, true
		}
	}
	return Field{}, false
}

func textOf(d *Descriptor, rec Record, kind Kind) map[string]any {
	out := map[string]any{}
	for _, f := range d.Fields {
		if f.Kind == kind {
			out[f.Key] = Format(rec[f.Key])
		}
	}
	return out
}

// ValidNationalID expone el patrón del RUT (útil para la UI y tests).
func ValidNationalID(s string) bool {
	return validate.Var(s, "national_id") == nil
}

// ValidEmail expone el patrón simple de correo.
func ValidEmail(s string) bool {
	return validate.Var(s, "simple_email") == nil
}

// Bind arma un Record tipado desde los valores del formulario.
// Campos numéricos y FKs pasan a int64 (o float64); si no parsean se
// conservan como texto para que Validate reporte invalid_number.
func Bind(d *Descriptor, values url.Values) Record {
	rec := make(Record, len(d.Fields))
	for _, f := range d.Fields {
		raw := values.Get(f.Key)
		if !f.Kind.Numeric() {
			rec[f.Key] = raw
			continue
		}

		s := strings.TrimSpace(raw)
		switch {
		case s == "":
			rec[f.Key] = ""
		default:
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				rec[f.Key] = n
			} else if x, ok := asFloat(s); ok {
				rec[f.Key] = x
			} else {
				rec[f.Key] = raw
			}
		}
	}
	return rec
}
