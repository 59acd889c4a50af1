package records_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vet-clinic-admin/internal/adapters/storage/memory"
	"vet-clinic-admin/internal/domain/records"
)

func newService() *records.Service {
	return records.NewService(memory.NewRecordRepo())
}

func TestService_UnknownResource(t *testing.T) {
	svc := newService()
	_, err := svc.List(context.Background(), "gato")
	assert.ErrorIs(t, err, records.ErrUnknownResource)
}

func TestService_CreateIgnoresClientID(t *testing.T) {
	svc := newService()
	rec, err := svc.Create(context.Background(), "dueno", records.Record{"id": json.Number("77"), "nombre_completo": "Ana"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec["id"])
}

func TestService_ReferentialIntegrity(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	_, err := svc.Create(ctx, "mascota", records.Record{"nombre_mascota": "Toby", "id_dueno": json.Number("1")})
	assert.ErrorIs(t, err, records.ErrInvalidInput)

	_, err = svc.Create(ctx, "mascota", records.Record{"nombre_mascota": "Toby", "id_dueno": "abc"})
	assert.ErrorIs(t, err, records.ErrInvalidInput)

	_, err = svc.Create(ctx, "dueno", records.Record{"nombre_completo": "Ana"})
	require.NoError(t, err)
	pet, err := svc.Create(ctx, "mascota", records.Record{"nombre_mascota": "Toby", "id_dueno": json.Number("1")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), pet["id"])

	_, err = svc.Create(ctx, "reserva_procedimiento", records.Record{"id_mascota": 1, "id_veterinario": 3})
	assert.ErrorIs(t, err, records.ErrInvalidInput)
}

func TestService_UpdateKeepsURLID(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	_, err := svc.Create(ctx, "veterinario", records.Record{"nombre_completo": "Dra. Núñez"})
	require.NoError(t, err)

	rec, err := svc.Update(ctx, "veterinario", 1, records.Record{"id": 9, "nombre_completo": "Dra. Valeria Núñez"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec["id"])

	_, err = svc.Update(ctx, "veterinario", 2, records.Record{})
	assert.ErrorIs(t, err, records.ErrNotFound)
}

func TestService_DeleteReferenced(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	_, err := svc.Create(ctx, "dueno", records.Record{"nombre_completo": "Ana"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "mascota", records.Record{"nombre_mascota": "Toby", "id_dueno": 1})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, "dueno", 1), records.ErrConflict)

	require.NoError(t, svc.Delete(ctx, "mascota", 1))
	require.NoError(t, svc.Delete(ctx, "dueno", 1))
	assert.ErrorIs(t, svc.Delete(ctx, "dueno", 1), records.ErrNotFound)
}
