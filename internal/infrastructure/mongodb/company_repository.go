package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/farmdesk/farmdesk-api/internal/domain"
	"github.com/farmdesk/farmdesk-api/internal/domain/entity"
	"github.com/farmdesk/farmdesk-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// officerRoleValues grafías de rol que cuentan como Officer en documentos legados.
var officerRoleValues = []string{entity.RoleOfficer, "officer", "company_officer"}

// CompanyRepo implementación del puerto CompanyRepository sobre MongoDB.
type CompanyRepo struct {
	collection *mongo.Collection
}

// NewCompanyRepository construye el adaptador de persistencia para companies.
func NewCompanyRepository(db *mongo.Database) *CompanyRepo {
	return &CompanyRepo{collection: db.Collection(CollCompanies)}
}

// GetByCompanyID devuelve la empresa o (nil, nil) si no existe.
func (r *CompanyRepo) GetByCompanyID(ctx context.Context, companyID string) (*entity.Company, error) {
	var comp entity.Company
	err := r.collection.FindOne(ctx, bson.M{"company_id": companyID}).Decode(&comp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar empresa %s: %w", companyID, err)
	}
	return &comp, nil
}

// CreateWithEmployee inserta la empresa con su primer empleado. El índice
// único de company_id convierte una carrera con otro bootstrap en ErrConflict.
func (r *CompanyRepo) CreateWithEmployee(ctx context.Context, companyID string, emp entity.Employee) error {
	_, err := r.collection.InsertOne(ctx, entity.Company{
		CompanyID: companyID,
		Employees: []entity.Employee{emp},
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("crear empresa %s: %w", companyID, err)
	}
	return nil
}

// AppendEmployee agrega el empleado con un push condicional: el filtro exige
// que ningún empleado use ya ese username, así el chequeo de unicidad y la
// escritura son una sola operación.
func (r *CompanyRepo) AppendEmployee(ctx context.Context, companyID string, emp entity.Employee) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{
			"company_id":         companyID,
			"employees.username": bson.M{"$ne": emp.Username},
		},
		bson.M{"$push": bson.M{"employees": emp}},
	)
	if err != nil {
		return fmt.Errorf("agregar empleado a %s: %w", companyID, err)
	}
	if res.MatchedCount == 0 {
		// username tomado, o la empresa desapareció bajo nuestros pies
		return domain.ErrConflict
	}
	return nil
}

// RemoveOfficer hace pull del empleado por ID restringido a roles Officer
// (incluidas las grafías legadas), en una sola operación.
func (r *CompanyRepo) RemoveOfficer(ctx context.Context, companyID, officerID string) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"company_id": companyID},
		bson.M{"$pull": bson.M{"employees": bson.M{
			"_id":  officerID,
			"role": bson.M{"$in": officerRoleValues},
		}}},
	)
	if err != nil {
		return fmt.Errorf("eliminar officer %s de %s: %w", officerID, companyID, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	if res.ModifiedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
