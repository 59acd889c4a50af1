package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vet-clinic-admin/internal/adapters/clinicapi"
	"vet-clinic-admin/internal/domain/entities"
	"vet-clinic-admin/internal/flash"
	"vet-clinic-admin/internal/platform/httpclient"
	"vet-clinic-admin/internal/views"
)

type stubAPI struct {
	mu      sync.Mutex
	data    map[string][]entities.Record
	removed []int64
	created []entities.Record
	updated []entities.Record
	fetches map[string]int
}

func (s *stubAPI) FetchCollection(_ context.Context, resource string) ([]entities.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fetches == nil {
		s.fetches = map[string]int{}
	}
	s.fetches[resource]++
	return s.data[resource], nil
}

func (s *stubAPI) fetchCount(resource string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetches[resource]
}

func (s *stubAPI) FetchOne(_ context.Context, resource string, id int64) (entities.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.data[resource] {
		if got, _ := entities.RecordID(rec); got == id {
			return rec, nil
		}
	}
	return nil, &httpclient.HTTPError{StatusCode: http.StatusNotFound, Status: "Not Found"}
}

func (s *stubAPI) Create(_ context.Context, _ string, rec entities.Record) (entities.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = append(s.created, rec)
	return rec, nil
}

func (s *stubAPI) Update(_ context.Context, _ string, _ int64, rec entities.Record) (clinicapi.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updated = append(s.updated, rec)
	return clinicapi.UpdateResult{Ack: clinicapi.Ack{Success: true}}, nil
}

func (s *stubAPI) Remove(_ context.Context, _ string, id int64) (clinicapi.Ack, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removed = append(s.removed, id)
	return clinicapi.Ack{Success: true, Message: "Eliminación exitosa"}, nil
}

func newTestServer(t *testing.T) (*httptest.Server, *stubAPI) {
	t.Helper()

	api := &stubAPI{data: map[string][]entities.Record{
		entities.ResourceOwners: {
			{"id": json.Number("1"), "nombre_completo": "Ana Rojas", "rut": "12.345.678-9", "telefono": "9", "correo": "ana@mail.cl"},
		},
		entities.ResourcePets: {
			{"id": json.Number("3"), "nombre_mascota": "Firulais", "tipo_animal": "Perro", "edad": json.Number("3"), "raza": "Quiltro", "id_dueno": json.Number("1")},
		},
		entities.ResourceBookings: {
			{"id": json.Number("9"), "id_mascota": json.Number("3"), "id_veterinario": json.Number("1"),
				"tipo_procedimiento": "Vacuna", "fecha": "2024-05-01T00:00:00.000Z", "hora": "10:30:00"},
		},
	}}

	h, err := New(Config{API: api, Flash: flash.NewMemoryStore(0)})
	require.NoError(t, err)

	r := chi.NewRouter()
	h.RegisterRoutes(r)
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts, api
}

// noRedirect deja ver el 303 del borrado.
func noRedirect(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }

// modal recorta el markup del diálogo para no confundirlo con el navbar.
func modal(body string) string {
	start := strings.Index(body, "<dialog")
	if start < 0 {
		return ""
	}
	end := strings.Index(body[start:], "</dialog>")
	if end < 0 {
		return body[start:]
	}
	return body[start : start+end]
}

func get(t *testing.T, c *http.Client, u string) (*http.Response, string) {
	t.Helper()
	resp, err := c.Get(u)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp, string(b)
}

func TestHome(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, body := get(t, ts.Client(), ts.URL+"/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Bienvenidos a la Clínica Veterinaria CatDog")
	assert.Contains(t, body, `href="/reservas"`)
}

func TestList_ResolvesOwnerName(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, body := get(t, ts.Client(), ts.URL+"/mascotas")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Listado de Mascotas")
	assert.Contains(t, body, "<td>Ana Rojas</td>")
	assert.NotContains(t, body, "modal-overlay")
}

func TestList_UnknownSlug(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, _ := get(t, ts.Client(), ts.URL+"/gatos")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestList_ConfirmDialog(t *testing.T) {
	ts, api := newTestServer(t)
	_, body := get(t, ts.Client(), ts.URL+"/duenos?eliminar=1")

	assert.Contains(t, body, "Confirmar Eliminación")
	assert.Contains(t, body, `action="/duenos/1/eliminar"`)
	assert.Empty(t, api.removed)
}

func TestList_CancelDeleteClosesWithoutFetching(t *testing.T) {
	ts, api := newTestServer(t)
	_, body := get(t, ts.Client(), ts.URL+"/duenos?eliminar=1")
	require.Equal(t, 1, api.fetchCount(entities.ResourceOwners))

	// "No" cierra el <dialog> en el navegador: no hay enlace ni request.
	m := modal(body)
	require.NotEmpty(t, m)
	assert.Contains(t, m, `<form method="dialog" class="modal-inline">`)
	assert.Contains(t, m, ">No</button>")
	assert.NotContains(t, m, "href=")
	assert.NotContains(t, body, `http-equiv="refresh"`)
	assert.Equal(t, 1, api.fetchCount(entities.ResourceOwners))
	assert.Empty(t, api.removed)
}

func TestDelete_RedirectsWithFlash(t *testing.T) {
	ts, api := newTestServer(t)

	c := ts.Client()
	c.CheckRedirect = noRedirect
	resp, err := c.PostForm(ts.URL+"/duenos/1/eliminar", nil)
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/duenos", resp.Header.Get("Location"))
	assert.Equal(t, []int64{1}, api.removed)

	var cookie *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == flash.CookieName {
			cookie = ck
		}
	}
	require.NotNil(t, cookie)

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/duenos", nil)
	req.AddCookie(cookie)
	resp2, err := c.Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()
	b, _ := io.ReadAll(resp2.Body)

	assert.Contains(t, string(b), "Dueño eliminado correctamente.")
	// se oculta solo, sin recargar el listado otra vez
	assert.NotContains(t, string(b), `http-equiv="refresh"`)
	assert.Contains(t, modal(string(b)), "auto-dismiss")
	assert.Contains(t, modal(string(b)), "animation-delay: 1.5s")
	assert.Equal(t, 1, api.fetchCount(entities.ResourceOwners))
}

func TestCreate_ValidationError(t *testing.T) {
	ts, api := newTestServer(t)

	resp, err := ts.Client().PostForm(ts.URL+"/duenos/registro", url.Values{
		"nombre_completo": {"Ana"},
		"rut":             {"12.345.678-9"},
		"telefono":        {"9"},
		"correo":          {"sin-arroba"},
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(b), "Error de Validación")
	assert.Contains(t, string(b), `value="sin-arroba"`)
	assert.Empty(t, api.created)

	// Cerrar no navega: el formulario con los valores queda a la vista.
	m := modal(string(b))
	assert.Contains(t, m, "<dialog open")
	assert.Contains(t, m, `<form method="dialog" class="modal-inline">`)
	assert.Contains(t, m, ">Cerrar</button>")
	assert.NotContains(t, m, `href="#"`)
	assert.NotContains(t, string(b), `http-equiv="refresh"`)
}

func TestCreate_Success(t *testing.T) {
	ts, api := newTestServer(t)

	resp, err := ts.Client().PostForm(ts.URL+"/veterinarios/registro", url.Values{
		"nombre_completo": {"Dr. Soto"},
		"especialidad":    {"General"},
		"telefono":        {"912"},
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)

	require.Len(t, api.created, 1)
	assert.Contains(t, string(b), "Veterinario registrado correctamente.")
	assert.Contains(t, string(b), "url=/veterinarios")
	assert.NotContains(t, string(b), `value="Dr. Soto"`)
}

func TestEditForm_TruncatesDateAndTime(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, body := get(t, ts.Client(), ts.URL+"/reservas/registro/9")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Editar Reserva")
	assert.Contains(t, body, `value="2024-05-01"`)
	assert.Contains(t, body, `value="10:30"`)
	assert.True(t, strings.Contains(body, `<option value="3" selected>`))
}

// Lo que renderiza el formulario de edición, reenviado tal cual, llega a la
// API con fecha y hora recortadas y el id de la ruta.
func TestEditBooking_RoundTripTrimsDateAndTime(t *testing.T) {
	ts, api := newTestServer(t)
	_, body := get(t, ts.Client(), ts.URL+"/reservas/registro/9")
	require.Contains(t, body, `value="2024-05-01"`)
	require.Contains(t, body, `value="10:30"`)

	resp, err := ts.Client().PostForm(ts.URL+"/reservas/registro/9", url.Values{
		"id_mascota":         {"3"},
		"id_veterinario":     {"1"},
		"tipo_procedimiento": {"Vacuna"},
		"fecha":              {"2024-05-01"},
		"hora":               {"10:30"},
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)

	assert.Contains(t, string(b), "Reserva actualizada correctamente.")
	assert.Empty(t, api.created)
	require.Len(t, api.updated, 1)
	sent := api.updated[0]
	assert.Equal(t, int64(9), sent["id"])
	assert.Equal(t, int64(3), sent["id_mascota"])
	assert.Equal(t, "2024-05-01", sent["fecha"])
	assert.Equal(t, "10:30", sent["hora"])
	assert.Contains(t, string(b), `value="2024-05-01"`)
	assert.Contains(t, string(b), `value="10:30"`)
}

func TestEditForm_InvalidID(t *testing.T) {
	ts, _ := newTestServer(t)
	resp, _ := get(t, ts.Client(), ts.URL+"/duenos/registro/abc")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

var _ views.Resources = (*stubAPI)(nil)
