package usecase

import (
	"context"

	"github.com/farmdesk/farmdesk-api/internal/application/dto"
	"github.com/farmdesk/farmdesk-api/internal/domain"
	"github.com/farmdesk/farmdesk-api/internal/domain/entity"
	"github.com/farmdesk/farmdesk-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// EmployeeUseCase gestión de empleados embebidos: bootstrap de admins y CRUD de officers.
type EmployeeUseCase struct {
	companies repository.CompanyRepository
}

// NewEmployeeUseCase construye el caso de uso de empleados.
func NewEmployeeUseCase(companies repository.CompanyRepository) *EmployeeUseCase {
	return &EmployeeUseCase{companies: companies}
}

// BootstrapAdmin punto de entrada del superadmin: si la empresa no existe la
// crea con su primer Admin; si existe, agrega otro Admin. Devuelve
// domain.ErrConflict si el username ya está tomado en esa empresa.
func (uc *EmployeeUseCase) BootstrapAdmin(ctx context.Context, companyID, username, password string) (string, error) {
	emp, err := newEmployee(username, password, entity.RoleAdmin)
	if err != nil {
		return "", err
	}

	comp, err := uc.companies.GetByCompanyID(ctx, companyID)
	if err != nil {
		return "", err
	}
	if comp == nil {
		if err := uc.companies.CreateWithEmployee(ctx, companyID, emp); err != nil {
			return "", err
		}
		return emp.ID, nil
	}
	if comp.EmployeeByUsername(username) != nil {
		return "", domain.ErrConflict
	}
	if err := uc.companies.AppendEmployee(ctx, companyID, emp); err != nil {
		return "", err
	}
	return emp.ID, nil
}

// ListOfficers devuelve los empleados con rol normalizado Officer, sin hash.
// Una empresa inexistente produce lista vacía, no error.
func (uc *EmployeeUseCase) ListOfficers(ctx context.Context, companyID string) ([]dto.Identity, error) {
	comp, err := uc.companies.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	items := []dto.Identity{}
	if comp == nil {
		return items, nil
	}
	for _, e := range comp.Employees {
		if entity.NormalizeRole(e.Role, entity.RoleAdmin) != entity.RoleOfficer {
			continue
		}
		items = append(items, dto.Identity{
			ID:        e.ID,
			Username:  e.Username,
			Role:      entity.RoleOfficer,
			CompanyID: companyID,
		})
	}
	return items, nil
}

// CreateOfficer agrega un Officer a la empresa. Devuelve domain.ErrNotFound si
// la empresa no existe y domain.ErrConflict si el username ya está tomado
// (cualquier rol).
func (uc *EmployeeUseCase) CreateOfficer(ctx context.Context, companyID, username, password string) (string, error) {
	comp, err := uc.companies.GetByCompanyID(ctx, companyID)
	if err != nil {
		return "", err
	}
	if comp == nil {
		return "", domain.ErrNotFound
	}
	if comp.EmployeeByUsername(username) != nil {
		return "", domain.ErrConflict
	}
	emp, err := newEmployee(username, password, entity.RoleOfficer)
	if err != nil {
		return "", err
	}
	// El push condicional del repositorio re-verifica la unicidad, así que una
	// carrera con otro alta concurrente termina igualmente en ErrConflict.
	if err := uc.companies.AppendEmployee(ctx, companyID, emp); err != nil {
		return "", err
	}
	return emp.ID, nil
}

// DeleteOfficer elimina un Officer por ID. Solo empleados con rol Officer son
// elegibles; devuelve domain.ErrNotFound si la empresa no existe y
// domain.ErrUserNotFound si no hay officer con ese ID.
func (uc *EmployeeUseCase) DeleteOfficer(ctx context.Context, companyID, officerID string) error {
	comp, err := uc.companies.GetByCompanyID(ctx, companyID)
	if err != nil {
		return err
	}
	if comp == nil {
		return domain.ErrNotFound
	}
	return uc.companies.RemoveOfficer(ctx, companyID, officerID)
}

// newEmployee genera el empleado con ID fresco y password hasheado con bcrypt.
func newEmployee(username, password, role string) (entity.Employee, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entity.Employee{}, err
	}
	return entity.Employee{
		ID:           primitive.NewObjectID().Hex(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}, nil
}
