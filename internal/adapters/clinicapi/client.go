package clinicapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"vet-clinic-admin/internal/domain/entities"
	"vet-clinic-admin/internal/platform/httpclient"
	"vet-clinic-admin/internal/platform/logger"
	"vet-clinic-admin/internal/platform/metrics"
)

var ErrInvalidResource = errors.New("clinicapi: invalid resource")

const (
	opFetchCollection = "fetch_collection"
	opFetchOne        = "fetch_one"
	opCreate          = "create"
	opUpdate          = "update"
	opRemove          = "remove"
)

// Ack es la confirmación mínima, sin payload de entidad.
type Ack struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UpdateResult: Record viene solo si el servidor respondió JSON; si no (p.ej. 204), Ack.
type UpdateResult struct {
	Record entities.Record
	Ack    Ack
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client traduce intenciones CRUD en llamadas HTTP contra la API de la clínica,
// de forma uniforme para cualquier recurso. No reintenta.
type Client struct {
	http    *httpclient.Client
	log     logger.Logger
	metrics *metrics.Collector
}

func NewClient(cfg Config, log logger.Logger, m *metrics.Collector) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	if hc.BaseURL == "" {
		return nil, errors.New("clinicapi: base url required")
	}
	return NewWithHTTP(hc, log, m), nil
}

// NewWithHTTP permite inyectar un httpclient ya armado (tests).
func NewWithHTTP(hc *httpclient.Client, log logger.Logger, m *metrics.Collector) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		http:    hc,
		log:     log.With(map[string]any{"component": "clinicapi"}),
		metrics: m,
	}
}

func (c *Client) FetchCollection(ctx context.Context, resource string) ([]entities.Record, error) {
	p, err := collectionPath(resource)
	if err != nil {
		return nil, err
	}

	var out []entities.Record
	err = c.call(ctx, resource, opFetchCollection, func() error {
		resp, err := c.http.Do(ctx, http.MethodGet, p, nil, nil)
		if err != nil {
			return err
		}
		return resp.Decode(&out)
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []entities.Record{}
	}
	return out, nil
}

func (c *Client) FetchOne(ctx context.Context, resource string, id int64) (entities.Record, error) {
	p, err := itemPath(resource, id)
	if err != nil {
		return nil, err
	}

	var out entities.Record
	err = c.call(ctx, resource, opFetchOne, func() error {
		resp, err := c.http.Do(ctx, http.MethodGet, p, nil, nil)
		if err != nil {
			return err
		}
		return resp.Decode(&out)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Create(ctx context.Context, resource string, rec entities.Record) (entities.Record, error) {
	p, err := collectionPath(resource)
	if err != nil {
		return nil, err
	}

	var out entities.Record
	err = c.call(ctx, resource, opCreate, func() error {
		resp, err := c.http.Do(ctx, http.MethodPost, p, nil, rec)
		if err != nil {
			return err
		}
		if !resp.IsJSON() || len(resp.Body) == 0 {
			return nil
		}
		return resp.Decode(&out)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Update(ctx context.Context, resource string, id int64, rec entities.Record) (UpdateResult, error) {
	p, err := itemPath(resource, id)
	if err != nil {
		return UpdateResult{}, err
	}

	res := UpdateResult{Ack: Ack{Success: true, Message: "Actualización exitosa"}}
	err = c.call(ctx, resource, opUpdate, func() error {
		resp, err := c.http.Do(ctx, http.MethodPut, p, nil, rec)
		if err != nil {
			return err
		}
		// Algunos servidores responden 204 sin body: en ese caso basta el Ack.
		if !resp.IsJSON() || len(strings.TrimSpace(string(resp.Body))) == 0 {
			return nil
		}
		return resp.Decode(&res.Record)
	})
	if err != nil {
		return UpdateResult{}, err
	}
	return res, nil
}

// Remove no intenta decodificar el body: DELETE puede no traerlo.
func (c *Client) Remove(ctx context.Context, resource string, id int64) (Ack, error) {
	p, err := itemPath(resource, id)
	if err != nil {
		return Ack{}, err
	}

	err = c.call(ctx, resource, opRemove, func() error {
		_, err := c.http.Do(ctx, http.MethodDelete, p, nil, nil)
		return err
	})
	if err != nil {
		return Ack{}, err
	}
	return Ack{Success: true, Message: "Eliminación exitosa"}, nil
}

// call mide y loguea una operación; el error se propaga siempre tal cual.
func (c *Client) call(ctx context.Context, resource, op string, fn func() error) error {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	c.metrics.ObserveUpstream(resource, op, outcome(err), elapsed)

	fields := map[string]any{
		"resource":   resource,
		"op":         op,
		"elapsed_ms": elapsed.Milliseconds(),
	}
	if err != nil {
		fields["error"] = err.Error()
		c.log.Warn("clinic api call failed", fields)
		return err
	}
	c.log.Debug("clinic api call", fields)
	return nil
}

func outcome(err error) string {
	var (
		ne *httpclient.NetworkError
		he *httpclient.HTTPError
	)
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &ne):
		return "network_error"
	case errors.As(err, &he):
		return "http_error"
	case errors.Is(err, httpclient.ErrResponseTooLarge):
		return "too_large"
	default:
		return "decode_error"
	}
}

func collectionPath(resource string) (string, error) {
	resource = strings.TrimSpace(resource)
	if resource == "" || strings.ContainsAny(resource, "/?#") {
		return "", fmt.Errorf("%w: %q", ErrInvalidResource, resource)
	}
	return "/" + url.PathEscape(resource), nil
}

func itemPath(resource string, id int64) (string, error) {
	p, err := collectionPath(resource)
	if err != nil {
		return "", err
	}
	return p + "/" + strconv.FormatInt(id, 10), nil
}
