package auth

import (
	"context"
	"time"

	"github.com/farmdesk/farmdesk-api/internal/application/dto"
	"github.com/farmdesk/farmdesk-api/internal/domain"
	"github.com/farmdesk/farmdesk-api/internal/domain/entity"
	"github.com/farmdesk/farmdesk-api/internal/domain/repository"
	pkgjwt "github.com/farmdesk/farmdesk-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Config parámetros de emisión de credenciales.
type Config struct {
	Secret string
	TTL    time.Duration
}

// AuthUseCase casos de uso de autenticación: login por rol y resolución de identidad.
type AuthUseCase struct {
	companies repository.CompanyRepository
	cfg       Config
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(companies repository.CompanyRepository, cfg Config) *AuthUseCase {
	return &AuthUseCase{companies: companies, cfg: cfg}
}

// LoginAdmin autentica un Admin de la empresa.
//
// La asimetría con LoginOfficer es deliberada (paridad con el frontend): si la
// empresa existe pero el username no corresponde a un Admin, se devuelve
// ErrWrongRole (403) en lugar de colapsarlo en "no encontrado".
func (uc *AuthUseCase) LoginAdmin(ctx context.Context, in dto.LoginRequest) (string, error) {
	comp, err := uc.companies.GetByCompanyID(ctx, in.CompanyID)
	if err != nil {
		return "", err
	}
	if comp == nil {
		return "", domain.ErrUserNotFound
	}
	emp := findForLogin(comp, in.Username, entity.RoleAdmin)
	if emp == nil {
		return "", domain.ErrWrongRole
	}
	return uc.verifyAndIssue(emp, in.CompanyID, in.Password)
}

// LoginOfficer autentica un Officer. A diferencia del login de admin, empresa
// inexistente y rol equivocado se reportan igual: ErrUserNotFound.
func (uc *AuthUseCase) LoginOfficer(ctx context.Context, in dto.LoginRequest) (string, error) {
	comp, err := uc.companies.GetByCompanyID(ctx, in.CompanyID)
	if err != nil {
		return "", err
	}
	if comp == nil {
		return "", domain.ErrUserNotFound
	}
	emp := findForLogin(comp, in.Username, entity.RoleOfficer)
	if emp == nil {
		return "", domain.ErrUserNotFound
	}
	return uc.verifyAndIssue(emp, in.CompanyID, in.Password)
}

// ResolveIdentity decodifica y verifica el token, carga la empresa y localiza
// al empleado. Devuelve la vista saneada (sin hash).
func (uc *AuthUseCase) ResolveIdentity(ctx context.Context, token string) (*dto.Identity, error) {
	if token == "" {
		return nil, domain.ErrMissingToken
	}
	claims, err := pkgjwt.Parse(uc.cfg.Secret, token)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	if claims.CompanyID == "" || claims.Subject == "" {
		return nil, domain.ErrMalformedToken
	}
	comp, err := uc.companies.GetByCompanyID(ctx, claims.CompanyID)
	if err != nil {
		return nil, err
	}
	if comp == nil {
		return nil, domain.ErrUserNotFound
	}
	emp := comp.EmployeeByIDOrUsername(claims.Subject, claims.Username)
	if emp == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.Identity{
		ID:        emp.ID,
		Username:  emp.Username,
		Role:      entity.NormalizeRole(emp.Role, entity.RoleAdmin),
		CompanyID: comp.CompanyID,
	}, nil
}

// findForLogin busca un empleado por username cuyo rol normalizado sea wantRole.
func findForLogin(comp *entity.Company, username, wantRole string) *entity.Employee {
	for i := range comp.Employees {
		e := &comp.Employees[i]
		if e.Username != username {
			continue
		}
		if entity.NormalizeRole(e.Role, entity.RoleAdmin) != wantRole {
			continue
		}
		return e
	}
	return nil
}

// verifyAndIssue compara el password contra el hash y emite la credencial.
func (uc *AuthUseCase) verifyAndIssue(emp *entity.Employee, companyID, password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(emp.PasswordHash, []byte(password)); err != nil {
		return "", domain.ErrBadCredentials
	}
	role := entity.NormalizeRole(emp.Role, entity.RoleAdmin)
	return pkgjwt.Generate(uc.cfg.Secret, emp.ID, companyID, emp.Username, role, uc.cfg.TTL)
}
