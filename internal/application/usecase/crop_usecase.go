package usecase

import (
	"context"
	"time"

	"github.com/farmdesk/farmdesk-api/internal/domain"
	"github.com/farmdesk/farmdesk-api/internal/domain/entity"
	"github.com/farmdesk/farmdesk-api/internal/domain/repository"
)

// CropUseCase CRUD del catálogo de cultivos de una empresa.
//
// La lectura previa clasifica el error con precisión (catálogo ausente vs.
// cultivo ausente vs. duplicado); la mutación del repositorio re-verifica la
// precondición en una sola expresión condicional, de modo que dos escritores
// concurrentes nunca se pierden una actualización.
type CropUseCase struct {
	crops repository.CropRepository
	now   func() time.Time
}

// NewCropUseCase construye el caso de uso de cultivos.
func NewCropUseCase(crops repository.CropRepository) *CropUseCase {
	return &CropUseCase{crops: crops, now: time.Now}
}

// List devuelve crop_details, creando el catálogo vacío si es la primera
// lectura de la empresa.
func (uc *CropUseCase) List(ctx context.Context, companyID string) ([]entity.CropEntry, error) {
	cat, err := uc.crops.GetOrCreate(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if cat.CropDetails == nil {
		return []entity.CropEntry{}, nil
	}
	return cat.CropDetails, nil
}

// Add agrega una entrada nueva. Devuelve domain.ErrConflict si ya existe un
// cultivo con el mismo nombre (case-insensitive). El llamador valida nombre y
// tarifa antes de llegar aquí.
func (uc *CropUseCase) Add(ctx context.Context, companyID, actor, name string, rate float64) (*entity.CropEntry, error) {
	cat, err := uc.crops.Get(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if cat != nil && cat.HasNameExcept(name, -1) {
		return nil, domain.ErrConflict
	}
	now := uc.now().UTC()
	entry := entity.CropEntry{
		CropName:    name,
		RatePerUnit: rate,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   actor,
		UpdatedBy:   actor,
	}
	if err := uc.crops.AppendEntry(ctx, companyID, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Update reemplaza in-place la entrada de nombre exacto oldName, conservando
// created_at/created_by y refrescando updated_at/updated_by.
func (uc *CropUseCase) Update(ctx context.Context, companyID, actor, oldName, newName string, rate float64) (*entity.CropEntry, error) {
	cat, err := uc.crops.Get(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	idx := cat.EntryIndex(oldName)
	if idx < 0 {
		return nil, domain.ErrCropNotFound
	}
	if cat.HasNameExcept(newName, idx) {
		return nil, domain.ErrConflict
	}
	prev := cat.CropDetails[idx]
	entry := entity.CropEntry{
		CropName:    newName,
		RatePerUnit: rate,
		CreatedAt:   prev.CreatedAt,
		UpdatedAt:   uc.now().UTC(),
		CreatedBy:   prev.CreatedBy,
		UpdatedBy:   actor,
	}
	if err := uc.crops.ReplaceEntry(ctx, companyID, oldName, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Delete elimina la entrada de nombre exacto. Devuelve domain.ErrNotFound si
// la empresa no tiene catálogo y domain.ErrCropNotFound si el nombre no existe.
func (uc *CropUseCase) Delete(ctx context.Context, companyID, name string) error {
	return uc.crops.RemoveEntry(ctx, companyID, name)
}
