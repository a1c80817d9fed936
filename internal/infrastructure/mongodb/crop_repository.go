package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/farmdesk/farmdesk-api/internal/domain"
	"github.com/farmdesk/farmdesk-api/internal/domain/entity"
	"github.com/farmdesk/farmdesk-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repository.CropRepository = (*CropRepo)(nil)

// CropRepo implementación del puerto CropRepository sobre MongoDB.
type CropRepo struct {
	collection *mongo.Collection
}

// NewCropRepository construye el adaptador de persistencia para el catálogo de cultivos.
func NewCropRepository(db *mongo.Database) *CropRepo {
	return &CropRepo{collection: db.Collection(CollCrops)}
}

// Get devuelve el catálogo o (nil, nil) si la empresa no tiene documento.
func (r *CropRepo) Get(ctx context.Context, companyID string) (*entity.CropCatalog, error) {
	var cat entity.CropCatalog
	err := r.collection.FindOne(ctx, bson.M{"company_id": companyID}).Decode(&cat)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar catálogo de %s: %w", companyID, err)
	}
	return &cat, nil
}

// GetOrCreate devuelve el catálogo, creándolo vacío en el mismo roundtrip si
// no existía (upsert con $setOnInsert: la primera lectura materializa el
// documento sin carrera con otras lecturas).
func (r *CropRepo) GetOrCreate(ctx context.Context, companyID string) (*entity.CropCatalog, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var cat entity.CropCatalog
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"company_id": companyID},
		bson.M{"$setOnInsert": bson.M{"crop_details": bson.A{}}},
		opts,
	).Decode(&cat)
	if err != nil {
		return nil, fmt.Errorf("obtener o crear catálogo de %s: %w", companyID, err)
	}
	return &cat, nil
}

// AppendEntry agrega la entrada con un push condicional: el filtro exige que
// ningún nombre existente coincida case-insensitive. El upsert cubre a la
// empresa sin documento todavía; si el filtro no casó porque el nombre ya
// existe, el insert choca con el índice único de company_id y se reporta
// ErrConflict.
func (r *CropRepo) AppendEntry(ctx context.Context, companyID string, entry entity.CropEntry) error {
	filter := bson.M{
		"company_id": companyID,
		"crop_details": bson.M{"$not": bson.M{"$elemMatch": bson.M{
			"crop_name": exactNameCI(entry.CropName),
		}}},
	}
	_, err := r.collection.UpdateOne(ctx, filter,
		bson.M{"$push": bson.M{"crop_details": entry}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("agregar cultivo a %s: %w", companyID, err)
	}
	return nil
}

// ReplaceEntry sustituye la entrada de nombre exacto oldName vía arrayFilters.
// El filtro del update re-verifica las dos precondiciones (oldName presente,
// newName sin colisión con otra entrada), así que un MatchedCount de cero tras
// una lectura positiva solo puede significar una mutación concurrente.
func (r *CropRepo) ReplaceEntry(ctx context.Context, companyID, oldName string, entry entity.CropEntry) error {
	filter := bson.M{
		"company_id": companyID,
		"$and": bson.A{
			bson.M{"crop_details": bson.M{"$elemMatch": bson.M{"crop_name": oldName}}},
			bson.M{"crop_details": bson.M{"$not": bson.M{"$elemMatch": bson.M{
				"crop_name": exactNameCIExcept(entry.CropName, oldName),
			}}}},
		},
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"el.crop_name": oldName}},
	})
	res, err := r.collection.UpdateOne(ctx, filter,
		bson.M{"$set": bson.M{"crop_details.$[el]": entry}},
		opts,
	)
	if err != nil {
		return fmt.Errorf("actualizar cultivo %s de %s: %w", oldName, companyID, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrConflict
	}
	return nil
}

// RemoveEntry hace pull de la entrada por nombre exacto en una sola operación.
func (r *CropRepo) RemoveEntry(ctx context.Context, companyID, name string) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"company_id": companyID},
		bson.M{"$pull": bson.M{"crop_details": bson.M{"crop_name": name}}},
	)
	if err != nil {
		return fmt.Errorf("eliminar cultivo %s de %s: %w", name, companyID, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	if res.ModifiedCount == 0 {
		return domain.ErrCropNotFound
	}
	return nil
}

// exactNameCI matchea el nombre completo sin distinguir mayúsculas.
func exactNameCI(name string) bson.M {
	return bson.M{
		"$regex":   "^" + regexp.QuoteMeta(name) + "$",
		"$options": "i",
	}
}

// exactNameCIExcept igual que exactNameCI pero excluye la entrada con nombre
// exacto except (la que se está reemplazando).
func exactNameCIExcept(name, except string) bson.M {
	m := exactNameCI(name)
	m["$ne"] = except
	return m
}
