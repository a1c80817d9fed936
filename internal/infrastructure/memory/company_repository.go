// Package memory implementa los puertos de persistencia sobre mapas en
// memoria, con la misma semántica condicional que los adaptadores de MongoDB.
// Se usa en tests y permite levantar la API sin base de datos.
package memory

import (
	"context"
	"sync"

	"github.com/farmdesk/farmdesk-api/internal/domain"
	"github.com/farmdesk/farmdesk-api/internal/domain/entity"
	"github.com/farmdesk/farmdesk-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo almacén en memoria de companies.
type CompanyRepo struct {
	mu   sync.Mutex
	docs map[string]*entity.Company
}

// NewCompanyRepository construye el almacén vacío.
func NewCompanyRepository() *CompanyRepo {
	return &CompanyRepo{docs: map[string]*entity.Company{}}
}

// GetByCompanyID devuelve una copia de la empresa o (nil, nil) si no existe.
func (r *CompanyRepo) GetByCompanyID(_ context.Context, companyID string) (*entity.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[companyID]
	if !ok {
		return nil, nil
	}
	return copyCompany(doc), nil
}

// CreateWithEmployee crea la empresa con su primer empleado.
func (r *CompanyRepo) CreateWithEmployee(_ context.Context, companyID string, emp entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[companyID]; ok {
		return domain.ErrConflict
	}
	r.docs[companyID] = &entity.Company{
		CompanyID: companyID,
		Employees: []entity.Employee{emp},
	}
	return nil
}

// AppendEmployee agrega el empleado si el username está libre.
func (r *CompanyRepo) AppendEmployee(_ context.Context, companyID string, emp entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[companyID]
	if !ok {
		return domain.ErrConflict
	}
	for _, e := range doc.Employees {
		if e.Username == emp.Username {
			return domain.ErrConflict
		}
	}
	doc.Employees = append(doc.Employees, emp)
	return nil
}

// RemoveOfficer elimina el empleado por ID si su rol normalizado es Officer.
func (r *CompanyRepo) RemoveOfficer(_ context.Context, companyID, officerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[companyID]
	if !ok {
		return domain.ErrNotFound
	}
	for i, e := range doc.Employees {
		if e.ID != officerID {
			continue
		}
		if entity.NormalizeRole(e.Role, entity.RoleAdmin) != entity.RoleOfficer {
			continue
		}
		doc.Employees = append(doc.Employees[:i], doc.Employees[i+1:]...)
		return nil
	}
	return domain.ErrUserNotFound
}

func copyCompany(doc *entity.Company) *entity.Company {
	out := &entity.Company{CompanyID: doc.CompanyID}
	out.Employees = append([]entity.Employee(nil), doc.Employees...)
	return out
}
