package fundstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lifelink/internal/app/system/apierr"
	"lifelink/internal/app/system/normalize"
	"lifelink/internal/domain/models"
)

// Store owns the append-only funds collection.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("funds")}
}

// Record appends one contribution. Amount is in major currency units and
// must be positive.
func (s *Store) Record(ctx context.Context, f models.Fund) (models.Fund, error) {
	f.ID = primitive.NewObjectID()
	f.Name = normalize.Name(f.Name)
	f.Email = normalize.Email(f.Email)
	f.CreatedAt = time.Now().UTC()

	if f.Email == "" {
		return models.Fund{}, apierr.New(apierr.InvalidInput, "email is required")
	}
	if f.Amount <= 0 {
		return models.Fund{}, apierr.New(apierr.InvalidInput, "amount must be greater than zero")
	}

	if _, err := s.c.InsertOne(ctx, f); err != nil {
		return models.Fund{}, err
	}
	return f, nil
}

// List returns all contributions, newest first.
func (s *Store) List(ctx context.Context) ([]models.Fund, error) {
	cur, err := s.c.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	funds := []models.Fund{}
	if err := cur.All(ctx, &funds); err != nil {
		return nil, err
	}
	return funds, nil
}
