package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmdesk/farmdesk-api/internal/application/usecase"
	"github.com/farmdesk/farmdesk-api/internal/domain"
	"github.com/farmdesk/farmdesk-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// List — creación perezosa del catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestCropList_PrimeraLecturaMaterializaCatalogoVacio(t *testing.T) {
	repo := memory.NewCropRepository()
	uc := usecase.NewCropUseCase(repo)
	ctx := context.Background()

	items, err := uc.List(ctx, "acme")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)

	// El documento ya existe tras la primera lectura
	cat, err := repo.Get(ctx, "acme")
	require.NoError(t, err)
	require.NotNil(t, cat)
	assert.Empty(t, cat.CropDetails)
}

// ──────────────────────────────────────────────────────────────────────────────
// Add
// ──────────────────────────────────────────────────────────────────────────────

func TestCropAdd_GuardaTimestampsYAutor(t *testing.T) {
	uc := usecase.NewCropUseCase(memory.NewCropRepository())
	ctx := context.Background()

	crop, err := uc.Add(ctx, "acme", "root", "Wheat", 12.5)
	require.NoError(t, err)

	assert.Equal(t, "Wheat", crop.CropName)
	assert.Equal(t, 12.5, crop.RatePerUnit)
	assert.Equal(t, "root", crop.CreatedBy)
	assert.Equal(t, "root", crop.UpdatedBy)
	assert.False(t, crop.CreatedAt.IsZero())
	assert.Equal(t, crop.CreatedAt, crop.UpdatedAt, "en el alta ambos timestamps coinciden")

	items, err := uc.List(ctx, "acme")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

// La unicidad del nombre es case-insensitive: wheat choca con Wheat.
func TestCropAdd_NombreDuplicadoCaseInsensitive(t *testing.T) {
	uc := usecase.NewCropUseCase(memory.NewCropRepository())
	ctx := context.Background()

	_, err := uc.Add(ctx, "acme", "root", "Wheat", 12.5)
	require.NoError(t, err)

	_, err = uc.Add(ctx, "acme", "root", "wheat", 9.0)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = uc.Add(ctx, "acme", "root", "WHEAT", 9.0)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// Tarifa cero es válida; catálogos de empresas distintas no se mezclan.
func TestCropAdd_TarifaCeroYMultiTenant(t *testing.T) {
	uc := usecase.NewCropUseCase(memory.NewCropRepository())
	ctx := context.Background()

	_, err := uc.Add(ctx, "acme", "root", "Barley", 0)
	require.NoError(t, err)

	_, err = uc.Add(ctx, "globex", "ana", "Barley", 3.5)
	assert.NoError(t, err, "el mismo cultivo en otra empresa no debe chocar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestCropUpdate_ConservaCreacionYRefrescaEdicion(t *testing.T) {
	uc := usecase.NewCropUseCase(memory.NewCropRepository())
	ctx := context.Background()

	created, err := uc.Add(ctx, "acme", "root", "Wheat", 12.5)
	require.NoError(t, err)

	updated, err := uc.Update(ctx, "acme", "ana", "Wheat", "Winter Wheat", 15.0)
	require.NoError(t, err)

	assert.Equal(t, "Winter Wheat", updated.CropName)
	assert.Equal(t, 15.0, updated.RatePerUnit)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt, "created_at se conserva")
	assert.Equal(t, "root", updated.CreatedBy, "created_by se conserva")
	assert.Equal(t, "ana", updated.UpdatedBy)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	// El nombre viejo ya no existe
	_, err = uc.Update(ctx, "acme", "ana", "Wheat", "Wheat", 1)
	assert.ErrorIs(t, err, domain.ErrCropNotFound)
}

// El lookup del nombre viejo es por coincidencia exacta, no case-insensitive.
func TestCropUpdate_NombreViejoEsExacto(t *testing.T) {
	uc := usecase.NewCropUseCase(memory.NewCropRepository())
	ctx := context.Background()

	_, err := uc.Add(ctx, "acme", "root", "Wheat", 12.5)
	require.NoError(t, err)

	_, err = uc.Update(ctx, "acme", "root", "wheat", "Rye", 5)
	assert.ErrorIs(t, err, domain.ErrCropNotFound)
}

// Renombrar hacia el nombre de otra entrada (ignorando mayúsculas) choca, pero
// cambiar solo el casing de la propia entrada es legal.
func TestCropUpdate_RenombreDuplicadoYCasingPropio(t *testing.T) {
	uc := usecase.NewCropUseCase(memory.NewCropRepository())
	ctx := context.Background()

	_, err := uc.Add(ctx, "acme", "root", "Wheat", 12.5)
	require.NoError(t, err)
	_, err = uc.Add(ctx, "acme", "root", "Barley", 8)
	require.NoError(t, err)

	_, err = uc.Update(ctx, "acme", "root", "Barley", "WHEAT", 8)
	assert.ErrorIs(t, err, domain.ErrConflict)

	updated, err := uc.Update(ctx, "acme", "root", "Wheat", "WHEAT", 12.5)
	require.NoError(t, err, "cambiar el casing de la misma entrada no es conflicto")
	assert.Equal(t, "WHEAT", updated.CropName)
}

func TestCropUpdate_SinCatalogo(t *testing.T) {
	uc := usecase.NewCropUseCase(memory.NewCropRepository())

	_, err := uc.Update(context.Background(), "no-existe", "root", "Wheat", "Rye", 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestCropDelete_RoundTrip(t *testing.T) {
	uc := usecase.NewCropUseCase(memory.NewCropRepository())
	ctx := context.Background()

	_, err := uc.Add(ctx, "acme", "root", "Wheat", 12.5)
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, "acme", "Wheat"))

	items, err := uc.List(ctx, "acme")
	require.NoError(t, err)
	assert.Empty(t, items)

	assert.ErrorIs(t, uc.Delete(ctx, "acme", "Wheat"), domain.ErrCropNotFound)
}

func TestCropDelete_SinCatalogo(t *testing.T) {
	uc := usecase.NewCropUseCase(memory.NewCropRepository())

	assert.ErrorIs(t, uc.Delete(context.Background(), "no-existe", "Wheat"), domain.ErrNotFound)
}
