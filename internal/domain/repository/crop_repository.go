package repository

import (
	"context"

	"github.com/farmdesk/farmdesk-api/internal/domain/entity"
)

// CropRepository puerto de persistencia para el catálogo de cultivos.
//
// Igual que CompanyRepository, cada mutación del array crop_details es una
// única expresión condicional en el store (push con guarda de unicidad, pull
// por nombre exacto, reemplazo in-place con arrayFilters).
type CropRepository interface {
	// Get devuelve el catálogo o (nil, nil) si la empresa aún no tiene documento.
	Get(ctx context.Context, companyID string) (*entity.CropCatalog, error)

	// GetOrCreate devuelve el catálogo, creándolo vacío de forma atómica si no
	// existe (la semántica lazy-create de la primera lectura).
	GetOrCreate(ctx context.Context, companyID string) (*entity.CropCatalog, error)

	// AppendEntry agrega la entrada si ningún nombre existente coincide
	// case-insensitive; crea el documento si hace falta. Devuelve
	// domain.ErrConflict en caso de duplicado.
	AppendEntry(ctx context.Context, companyID string, entry entity.CropEntry) error

	// ReplaceEntry sustituye in-place la entrada de nombre exacto oldName,
	// siempre que el nombre nuevo no choque case-insensitive con otra entrada.
	// Devuelve domain.ErrConflict si la precondición dejó de cumplirse.
	ReplaceEntry(ctx context.Context, companyID, oldName string, entry entity.CropEntry) error

	// RemoveEntry elimina la entrada de nombre exacto. Devuelve domain.ErrNotFound
	// si no hay catálogo y domain.ErrCropNotFound si el nombre no existe.
	RemoveEntry(ctx context.Context, companyID, name string) error
}
