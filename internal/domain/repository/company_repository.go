package repository

import (
	"context"

	"github.com/farmdesk/farmdesk-api/internal/domain/entity"
)

// CompanyRepository puerto de persistencia para companies (empleados embebidos).
//
// Las mutaciones sobre el array employees son expresiones condicionales de un
// solo paso en el store: el filtro re-verifica la precondición (unicidad de
// username, existencia del officer) en el mismo update, de modo que dos
// escritores concurrentes no puedan pisarse (no hay read-modify-write del
// array completo).
type CompanyRepository interface {
	// GetByCompanyID devuelve la empresa o (nil, nil) si no existe.
	GetByCompanyID(ctx context.Context, companyID string) (*entity.Company, error)

	// CreateWithEmployee crea la empresa con su primer empleado.
	// Devuelve domain.ErrConflict si la empresa ya existe (carrera con otro bootstrap).
	CreateWithEmployee(ctx context.Context, companyID string, emp entity.Employee) error

	// AppendEmployee agrega emp si ningún empleado de la empresa usa ya ese username.
	// Devuelve domain.ErrConflict si el username está tomado o la empresa desapareció.
	AppendEmployee(ctx context.Context, companyID string, emp entity.Employee) error

	// RemoveOfficer elimina el empleado con ese ID siempre que su rol sea Officer
	// (incluyendo las grafías legadas). Devuelve domain.ErrNotFound si la empresa
	// no existe y domain.ErrUserNotFound si no hubo match.
	RemoveOfficer(ctx context.Context, companyID, officerID string) error
}
