package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"mgnregaapi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("document not found")

// ErrDuplicateKey is returned when an insert violates a unique index.
var ErrDuplicateKey = errors.New("duplicate key")

type DistrictRepository interface {
	InsertMany(ctx context.Context, districts []models.District) error
	GetAll(ctx context.Context) ([]models.District, error)
	GetByCode(ctx context.Context, code string) (*models.District, error)
	// SearchByName returns the first district whose name contains the given
	// text, matched case-insensitively.
	SearchByName(ctx context.Context, name string) (*models.District, error)
	Count(ctx context.Context) (int64, error)
}

type districtRepository struct {
	collection *mongo.Collection
}

func NewDistrictRepository(db *mongo.Database) DistrictRepository {
	return &districtRepository{
		collection: db.Collection("districts"),
	}
}

func (r *districtRepository) InsertMany(ctx context.Context, districts []models.District) error {
	docs := make([]interface{}, len(districts))
	for i, d := range districts {
		docs[i] = d
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert districts: %w", err)
	}
	return nil
}

func (r *districtRepository) GetAll(ctx context.Context) ([]models.District, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var districts []models.District
	if err = cursor.All(ctx, &districts); err != nil {
		return nil, err
	}

	return districts, nil
}

func (r *districtRepository) GetByCode(ctx context.Context, code string) (*models.District, error) {
	var district models.District
	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&district)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("district %s: %w", code, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return &district, nil
}

func (r *districtRepository) SearchByName(ctx context.Context, name string) (*models.District, error) {
	filter := bson.M{"name": primitive.Regex{Pattern: regexp.QuoteMeta(name), Options: "i"}}

	var district models.District
	err := r.collection.FindOne(ctx, filter).Decode(&district)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("district named %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return &district, nil
}

func (r *districtRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
