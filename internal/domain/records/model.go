package records

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"vet-clinic-admin/internal/domain/entities"
)

var (
	ErrNotFound        = errors.New("record not found")
	ErrUnknownResource = errors.New("unknown resource")
	ErrInvalidInput    = errors.New("invalid input")
	ErrConflict        = errors.New("record is referenced")
)

// Record es el cuerpo JSON tal cual; el id lo asigna el servidor.
type Record = entities.Record

// foreignKey: campo del registro -> recurso al que apunta.
type foreignKey struct {
	Field    string
	Resource string
}

// schema declara las FKs de cada recurso; también define qué recursos existen.
var schema = map[string][]foreignKey{
	entities.ResourceOwners: nil,
	entities.ResourceVets:   nil,
	entities.ResourcePets: {
		{Field: "id_dueno", Resource: entities.ResourceOwners},
	},
	entities.ResourceBookings: {
		{Field: "id_mascota", Resource: entities.ResourcePets},
		{Field: "id_veterinario", Resource: entities.ResourceVets},
	},
}

func Known(resource string) bool {
	_, ok := schema[resource]
	return ok
}

// referencedBy devuelve las FKs de otros recursos que apuntan a resource.
func referencedBy(resource string) map[string][]string {
	out := map[string][]string{}
	for child, fks := range schema {
		for _, fk := range fks {
			if fk.Resource == resource {
				out[child] = append(out[child], fk.Field)
			}
		}
	}
	return out
}

// intValue interpreta un valor JSON como id entero positivo.
func intValue(v any) (int64, bool) {
	var n int64
	switch x := v.(type) {
	case int64:
		n = x
	case int:
		n = int64(x)
	case float64:
		if x != float64(int64(x)) {
			return 0, false
		}
		n = int64(x)
	case json.Number:
		i, err := x.Int64()
		if err != nil {
			return 0, false
		}
		n = i
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return 0, false
		}
		n = i
	default:
		return 0, false
	}
	return n, n > 0
}

// clone copia el registro sin "id".
func clone(rec Record) Record {
	out := make(Record, len(rec))
	for k, v := range rec {
		if k == "id" {
			continue
		}
		out[k] = v
	}
	return out
}
