package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vet-clinic-admin/internal/domain/records"
)

func TestRecordRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewRecordRepo()

	a, err := repo.Create(ctx, "dueno", records.Record{"nombre_completo": "Ana", "id": 99})
	require.NoError(t, err)
	b, err := repo.Create(ctx, "dueno", records.Record{"nombre_completo": "Luis"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), a["id"])
	assert.Equal(t, int64(2), b["id"])

	// cada recurso tiene su propia secuencia
	v, err := repo.Create(ctx, "veterinario", records.Record{"nombre_completo": "Dra. Núñez"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), v["id"])

	list, err := repo.List(ctx, "dueno")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ana", list[0]["nombre_completo"])

	_, err = repo.Update(ctx, "dueno", 1, records.Record{"nombre_completo": "Ana María"})
	require.NoError(t, err)
	got, err := repo.Get(ctx, "dueno", 1)
	require.NoError(t, err)
	assert.Equal(t, "Ana María", got["nombre_completo"])

	require.NoError(t, repo.Delete(ctx, "dueno", 1))
	_, err = repo.Get(ctx, "dueno", 1)
	assert.ErrorIs(t, err, records.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "dueno", 1), records.ErrNotFound)
	_, err = repo.Update(ctx, "dueno", 1, records.Record{})
	assert.ErrorIs(t, err, records.ErrNotFound)
}

func TestRecordRepo_CallerCannotMutateState(t *testing.T) {
	ctx := context.Background()
	repo := NewRecordRepo()

	in := records.Record{"nombre_completo": "Ana"}
	_, err := repo.Create(ctx, "dueno", in)
	require.NoError(t, err)
	in["nombre_completo"] = "otro"

	got, err := repo.Get(ctx, "dueno", 1)
	require.NoError(t, err)
	got["nombre_completo"] = "mutado"

	again, err := repo.Get(ctx, "dueno", 1)
	require.NoError(t, err)
	assert.Equal(t, "Ana", again["nombre_completo"])
}
