package views

import (
	"context"
	"errors"
	"time"

	"vet-clinic-admin/internal/adapters/clinicapi"
	"vet-clinic-admin/internal/domain/entities"
	"vet-clinic-admin/internal/platform/httpclient"
	"vet-clinic-admin/internal/platform/logger"
)

// DefaultDismissDelay es lo que tarda en cerrarse un diálogo de resultado.
const DefaultDismissDelay = 1500 * time.Millisecond

// Resources son las cinco operaciones del cliente de la API que usan las vistas.
type Resources interface {
	FetchCollection(ctx context.Context, resource string) ([]entities.Record, error)
	FetchOne(ctx context.Context, resource string, id int64) (entities.Record, error)
	Create(ctx context.Context, resource string, rec entities.Record) (entities.Record, error)
	Update(ctx context.Context, resource string, id int64, rec entities.Record) (clinicapi.UpdateResult, error)
	Remove(ctx context.Context, resource string, id int64) (clinicapi.Ack, error)
}

type Options struct {
	DismissDelay time.Duration
	Log          logger.Logger
}

func (o Options) withDefaults() Options {
	if o.DismissDelay <= 0 {
		o.DismissDelay = DefaultDismissDelay
	}
	if o.Log == nil {
		o.Log = logger.Nop()
	}
	return o
}

// describe traduce un error de red/HTTP al texto que ve el operador.
func describe(err error) string {
	var (
		he *httpclient.HTTPError
		ne *httpclient.NetworkError
	)
	switch {
	case errors.As(err, &he):
		if he.Status == "" {
			return he.Message
		}
		return he.Status + " - " + he.Message
	case errors.As(err, &ne):
		if errors.Is(err, context.Canceled) {
			return "la operación fue cancelada"
		}
		return "no se pudo conectar con el servidor"
	case errors.Is(err, httpclient.ErrResponseTooLarge):
		return "la respuesta del servidor es demasiado grande"
	default:
		return err.Error()
	}
}
