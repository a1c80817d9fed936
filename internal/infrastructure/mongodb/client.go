package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/farmdesk/farmdesk-api/pkg/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Nombres de colecciones.
const (
	CollCompanies = "companies"
	CollCrops     = "crops"
)

// Connect abre el cliente de MongoDB y verifica conectividad con un ping.
// El cliente se inyecta a los repositorios y se cierra en el shutdown.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("conectar a MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping a MongoDB: %w", err)
	}
	return client, nil
}

// Disconnect cierra el cliente con timeout propio.
func Disconnect(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}

// EnsureIndexes crea los índices únicos por company_id en companies y crops.
// El índice de companies respalda además el alta condicional con upsert: un
// insert perdedor de una carrera termina en duplicate key, no en doble documento.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, name := range []string{CollCompanies, CollCrops} {
		_, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "company_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("crear índice company_id en %s: %w", name, err)
		}
	}
	return nil
}
