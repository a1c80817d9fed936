package memory

import (
	"context"
	"sync"

	"github.com/farmdesk/farmdesk-api/internal/domain"
	"github.com/farmdesk/farmdesk-api/internal/domain/entity"
	"github.com/farmdesk/farmdesk-api/internal/domain/repository"
)

var _ repository.CropRepository = (*CropRepo)(nil)

// CropRepo almacén en memoria del catálogo de cultivos.
type CropRepo struct {
	mu   sync.Mutex
	docs map[string]*entity.CropCatalog
}

// NewCropRepository construye el almacén vacío.
func NewCropRepository() *CropRepo {
	return &CropRepo{docs: map[string]*entity.CropCatalog{}}
}

// Get devuelve una copia del catálogo o (nil, nil) si no existe.
func (r *CropRepo) Get(_ context.Context, companyID string) (*entity.CropCatalog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[companyID]
	if !ok {
		return nil, nil
	}
	return copyCatalog(doc), nil
}

// GetOrCreate devuelve el catálogo, creándolo vacío si es la primera lectura.
func (r *CropRepo) GetOrCreate(_ context.Context, companyID string) (*entity.CropCatalog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[companyID]
	if !ok {
		doc = &entity.CropCatalog{CompanyID: companyID, CropDetails: []entity.CropEntry{}}
		r.docs[companyID] = doc
	}
	return copyCatalog(doc), nil
}

// AppendEntry agrega la entrada si el nombre no colisiona case-insensitive.
func (r *CropRepo) AppendEntry(_ context.Context, companyID string, entry entity.CropEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[companyID]
	if !ok {
		r.docs[companyID] = &entity.CropCatalog{
			CompanyID:   companyID,
			CropDetails: []entity.CropEntry{entry},
		}
		return nil
	}
	if doc.HasNameExcept(entry.CropName, -1) {
		return domain.ErrConflict
	}
	doc.CropDetails = append(doc.CropDetails, entry)
	return nil
}

// ReplaceEntry sustituye in-place la entrada de nombre exacto oldName.
func (r *CropRepo) ReplaceEntry(_ context.Context, companyID, oldName string, entry entity.CropEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[companyID]
	if !ok {
		return domain.ErrConflict
	}
	idx := doc.EntryIndex(oldName)
	if idx < 0 || doc.HasNameExcept(entry.CropName, idx) {
		return domain.ErrConflict
	}
	doc.CropDetails[idx] = entry
	return nil
}

// RemoveEntry elimina la entrada de nombre exacto.
func (r *CropRepo) RemoveEntry(_ context.Context, companyID, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[companyID]
	if !ok {
		return domain.ErrNotFound
	}
	idx := doc.EntryIndex(name)
	if idx < 0 {
		return domain.ErrCropNotFound
	}
	doc.CropDetails = append(doc.CropDetails[:idx], doc.CropDetails[idx+1:]...)
	return nil
}

func copyCatalog(doc *entity.CropCatalog) *entity.CropCatalog {
	out := &entity.CropCatalog{CompanyID: doc.CompanyID, CropDetails: []entity.CropEntry{}}
	out.CropDetails = append(out.CropDetails, doc.CropDetails...)
	return out
}
