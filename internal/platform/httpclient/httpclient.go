package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultTimeout = 10 * time.Second

	// Las colecciones llegan completas (sin paginación).
	maxBodyBytes = 32 << 20 // 32MB
)

var (
	ErrNilClient = errors.New("httpclient: nil client")

	// ErrResponseTooLarge: el body 2xx supera maxBodyBytes y no se decodifica a medias.
	ErrResponseTooLarge = errors.New("httpclient: response too large")
)

// Client envuelve *http.Client con helpers comunes para adapters.
type Client struct {
	HTTP    *http.Client
	BaseURL string // opcional; si se define, Do/DoJSON pueden recibir paths relativos

	MaxBodyBytes int64 // 0 = maxBodyBytes
}

// New crea un Client con timeout razonable.
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		HTTP: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewWithBaseURL crea un Client con BaseURL + timeout.
func NewWithBaseURL(baseURL string, timeout time.Duration) (*Client, error) {
	c := New(timeout)
	if strings.TrimSpace(baseURL) == "" {
		return c, nil
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	c.BaseURL = strings.TrimRight(baseURL, "/")
	return c, nil
}

// NewWithTransport permite inyectar un Transport (p.ej. para tests).
func NewWithTransport(timeout time.Duration, tr http.RoundTripper) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if tr == nil {
		tr = http.DefaultTransport
	}
	return &Client{
		HTTP: &http.Client{
			Timeout:   timeout,
			Transport: tr,
		},
	}
}

// NetworkError: no hubo respuesta (DNS, conexión rechazada, timeout, ctx cancelado).
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError representa una respuesta no-2xx.
// Message es best-effort: campo "message" del body JSON o un genérico.
type HTTPError struct {
	StatusCode int
	Status     string
	Message    string
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d message=%s", e.StatusCode, e.Message)
}

// Response es la respuesta 2xx ya leída (body limitado).
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsJSON indica si la respuesta declara un content-type JSON.
func (r *Response) IsJSON() bool {
	return strings.Contains(strings.ToLower(r.Header.Get("Content-Type")), "application/json")
}

// Decode decodifica el body conservando números como json.Number.
func (r *Response) Decode(out any) error {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return errors.New("httpclient: empty body")
	}
	dec := json.NewDecoder(bytes.NewReader(r.Body))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("httpclient: unmarshal json: %w", err)
	}
	return nil
}

// Do hace un request JSON y devuelve la respuesta cruda si es 2xx.
// - in: body a enviar (opcional). Si nil => no body.
// Errores: *NetworkError si no hubo respuesta, *HTTPError si status no es 2xx.
func (c *Client) Do(
	ctx context.Context,
	method string,
	pathOrURL string,
	headers map[string]string,
	in any,
) (*Response, error) {
	if c == nil || c.HTTP == nil {
		return nil, ErrNilClient
	}

	fullURL, err := c.resolveURL(pathOrURL)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("httpclient: marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: new request: %w", err)
	}

	// Defaults
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Extra headers
	for k, v := range headers {
		if strings.TrimSpace(k) == "" {
			continue
		}
		req.Header.Set(k, v)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &NetworkError{Method: method, URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	raw, err := readAtMost(resp.Body, c.bodyLimit())
	if err != nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if errors.Is(err, ErrResponseTooLarge) {
			return nil, fmt.Errorf("%w: %s %s", ErrResponseTooLarge, method, fullURL)
		}
		return nil, &NetworkError{Method: method, URL: fullURL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     statusText(resp),
			Message:    errorMessage(raw),
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       raw,
	}, nil
}

// DoJSON hace un request JSON.
// - out: donde decodificar JSON (opcional). Si nil o body vacío => ignora body.
// Retorna error si status no es 2xx.
func (c *Client) DoJSON(
	ctx context.Context,
	method string,
	pathOrURL string,
	headers map[string]string,
	in any,
	out any,
) error {
	resp, err := c.Do(ctx, method, pathOrURL, headers, in)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(resp.Body)) == 0 {
		return nil
	}
	return resp.Decode(out)
}

func (c *Client) resolveURL(pathOrURL string) (string, error) {
	pathOrURL = strings.TrimSpace(pathOrURL)
	if pathOrURL == "" {
		return "", errors.New("httpclient: empty url")
	}

	// Si ya es URL absoluta, úsala tal cual.
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return pathOrURL, nil
	}

	// Si no es absoluta, requiere BaseURL.
	if strings.TrimSpace(c.BaseURL) == "" {
		return "", errors.New("httpclient: relative path requires BaseURL")
	}

	if !strings.HasPrefix(pathOrURL, "/") {
		pathOrURL = "/" + pathOrURL
	}
	return c.BaseURL + pathOrURL, nil
}

// GenericErrorMessage se usa cuando el body de error no trae "message".
const GenericErrorMessage = "Error desconocido"

func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return GenericErrorMessage
	}
	if msg := strings.TrimSpace(body.Message); msg != "" {
		return msg
	}
	return GenericErrorMessage
}

func statusText(resp *http.Response) string {
	if t := http.StatusText(resp.StatusCode); t != "" {
		return t
	}
	return strings.TrimSpace(resp.Status)
}

func (c *Client) bodyLimit() int64 {
	if c.MaxBodyBytes > 0 {
		return c.MaxBodyBytes
	}
	return maxBodyBytes
}

// readAtMost lee hasta max bytes; si el body trae más devuelve lo leído
// junto con ErrResponseTooLarge.
func readAtMost(r io.Reader, max int64) ([]byte, error) {
	if max <= 0 {
		max = maxBodyBytes
	}
	raw, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return raw, err
	}
	if int64(len(raw)) > max {
		return raw[:max], ErrResponseTooLarge
	}
	return raw, nil
}
