package entities

// Lookup mapea id -> nombre para mostrar FKs en los listados.
// Solo presentación: nunca modifica el valor crudo de la FK.
type Lookup struct {
	names   map[int64]string
	unknown string
}

func NewLookup(ref Reference, recs []Record) Lookup {
	names := make(map[int64]string, len(recs))
	for _, rec := range recs {
		id, ok := RecordID(rec)
		if !ok {
			continue
		}
		names[id] = Format(rec[ref.Display])
	}
	unknown := ref.Unknown
	if unknown == "" {
		unknown = "Desconocido"
	}
	return Lookup{names: names, unknown: unknown}
}

// Name resuelve el valor de una FK; si no está en el mapa devuelve el texto de desconocido.
func (l Lookup) Name(fk any) string {
	n, ok := asFloat(fk)
	if !ok || n != float64(int64(n)) {
		return l.unknownText()
	}
	if name, ok := l.names[int64(n)]; ok {
		return name
	}
	return l.unknownText()
}

func (l Lookup) Len() int { return len(l.names) }

func (l Lookup) unknownText() string {
	if l.unknown == "" {
		return "Desconocido"
	}
	return l.unknown
}

// Option es una entrada de un selector de FK.
type Option struct {
	Value string
	Label string
}

// Options arma las opciones de un selector a partir de la colección de referencia.
func Options(ref Reference, recs []Record) []Option {
	out := make([]Option, 0, len(recs))
	for _, rec := range recs {
		id, ok := RecordID(rec)
		if !ok {
			continue
		}
		out = append(out, Option{Value: Format(id), Label: ref.OptionLabel(rec)})
	}
	return out
}
