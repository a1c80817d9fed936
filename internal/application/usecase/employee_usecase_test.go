package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/farmdesk/farmdesk-api/internal/application/usecase"
	"github.com/farmdesk/farmdesk-api/internal/domain"
	"github.com/farmdesk/farmdesk-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// BootstrapAdmin
// ──────────────────────────────────────────────────────────────────────────────

func TestBootstrapAdmin_CreaEmpresaConPrimerAdmin(t *testing.T) {
	repo := memory.NewCompanyRepository()
	uc := usecase.NewEmployeeUseCase(repo)
	ctx := context.Background()

	id, err := uc.BootstrapAdmin(ctx, "acme", "root", "secreto123")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	comp, err := repo.GetByCompanyID(ctx, "acme")
	require.NoError(t, err)
	require.NotNil(t, comp)
	require.Len(t, comp.Employees, 1)

	emp := comp.Employees[0]
	assert.Equal(t, id, emp.ID)
	assert.Equal(t, "root", emp.Username)
	assert.Equal(t, "Admin", emp.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword(emp.PasswordHash, []byte("secreto123")),
		"el password se guarda hasheado con bcrypt")
}

func TestBootstrapAdmin_EmpresaExistenteAgregaSegundoAdmin(t *testing.T) {
	repo := memory.NewCompanyRepository()
	uc := usecase.NewEmployeeUseCase(repo)
	ctx := context.Background()

	_, err := uc.BootstrapAdmin(ctx, "acme", "root", "secreto123")
	require.NoError(t, err)
	_, err = uc.BootstrapAdmin(ctx, "acme", "root2", "secreto123")
	require.NoError(t, err)

	comp, err := repo.GetByCompanyID(ctx, "acme")
	require.NoError(t, err)
	assert.Len(t, comp.Employees, 2)
}

func TestBootstrapAdmin_UsernameDuplicadoEnLaEmpresa(t *testing.T) {
	repo := memory.NewCompanyRepository()
	uc := usecase.NewEmployeeUseCase(repo)
	ctx := context.Background()

	_, err := uc.BootstrapAdmin(ctx, "acme", "root", "secreto123")
	require.NoError(t, err)

	_, err = uc.BootstrapAdmin(ctx, "acme", "root", "otro-pass")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// El mismo username en empresas distintas no choca: la unicidad es por tenant.
func TestBootstrapAdmin_MismoUsernameEnOtraEmpresa(t *testing.T) {
	repo := memory.NewCompanyRepository()
	uc := usecase.NewEmployeeUseCase(repo)
	ctx := context.Background()

	_, err := uc.BootstrapAdmin(ctx, "acme", "root", "secreto123")
	require.NoError(t, err)

	_, err = uc.BootstrapAdmin(ctx, "globex", "root", "secreto123")
	assert.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListOfficers
// ──────────────────────────────────────────────────────────────────────────────

func TestListOfficers_FiltraAdminsYSaneaLaSalida(t *testing.T) {
	repo := memory.NewCompanyRepository()
	uc := usecase.NewEmployeeUseCase(repo)
	ctx := context.Background()

	_, err := uc.BootstrapAdmin(ctx, "acme", "root", "secreto123")
	require.NoError(t, err)
	joeID, err := uc.CreateOfficer(ctx, "acme", "joe", "secreto123")
	require.NoError(t, err)

	items, err := uc.ListOfficers(ctx, "acme")
	require.NoError(t, err)
	require.Len(t, items, 1, "el admin no debe aparecer en el listado de officers")

	assert.Equal(t, joeID, items[0].ID)
	assert.Equal(t, "joe", items[0].Username)
	assert.Equal(t, "Officer", items[0].Role)
	assert.Equal(t, "acme", items[0].CompanyID)
}

func TestListOfficers_EmpresaInexistenteDevuelveVacio(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(memory.NewCompanyRepository())

	items, err := uc.ListOfficers(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items, "lista vacía, no nil, para serializar como []")
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateOfficer / DeleteOfficer
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateOfficer_EmpresaInexistente(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(memory.NewCompanyRepository())

	_, err := uc.CreateOfficer(context.Background(), "no-existe", "joe", "secreto123")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El username del admin también bloquea el alta de un officer homónimo.
func TestCreateOfficer_UsernameTomadoPorAdmin(t *testing.T) {
	repo := memory.NewCompanyRepository()
	uc := usecase.NewEmployeeUseCase(repo)
	ctx := context.Background()

	_, err := uc.BootstrapAdmin(ctx, "acme", "root", "secreto123")
	require.NoError(t, err)

	_, err = uc.CreateOfficer(ctx, "acme", "root", "secreto123")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDeleteOfficer_RoundTrip(t *testing.T) {
	repo := memory.NewCompanyRepository()
	uc := usecase.NewEmployeeUseCase(repo)
	ctx := context.Background()

	_, err := uc.BootstrapAdmin(ctx, "acme", "root", "secreto123")
	require.NoError(t, err)
	joeID, err := uc.CreateOfficer(ctx, "acme", "joe", "secreto123")
	require.NoError(t, err)

	require.NoError(t, uc.DeleteOfficer(ctx, "acme", joeID))

	items, err := uc.ListOfficers(ctx, "acme")
	require.NoError(t, err)
	assert.Empty(t, items)

	// Segundo borrado del mismo id
	assert.ErrorIs(t, uc.DeleteOfficer(ctx, "acme", joeID), domain.ErrUserNotFound)
}

// Los admins no son elegibles para el borrado de officers.
func TestDeleteOfficer_IDDeAdminNoEsElegible(t *testing.T) {
	repo := memory.NewCompanyRepository()
	uc := usecase.NewEmployeeUseCase(repo)
	ctx := context.Background()

	adminID, err := uc.BootstrapAdmin(ctx, "acme", "root", "secreto123")
	require.NoError(t, err)

	assert.ErrorIs(t, uc.DeleteOfficer(ctx, "acme", adminID), domain.ErrUserNotFound)

	comp, err := repo.GetByCompanyID(ctx, "acme")
	require.NoError(t, err)
	assert.Len(t, comp.Employees, 1, "el admin debe seguir en la plantilla")
}

func TestDeleteOfficer_EmpresaInexistente(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(memory.NewCompanyRepository())

	assert.ErrorIs(t, uc.DeleteOfficer(context.Background(), "no-existe", "emp-1"), domain.ErrNotFound)
}
