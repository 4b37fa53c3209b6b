package repository

import (
	"context"
	"errors"
	"fmt"

	"mgnregaapi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// RecordRepository stores synthesized performance records keyed by
// (district_code, period). Records are insert-only.
type RecordRepository interface {
	FindByKey(ctx context.Context, districtCode, period string) (*models.PerformanceRecord, error)
	Insert(ctx context.Context, record *models.PerformanceRecord) error
	// FindByPeriod scans all districts' records for one period.
	FindByPeriod(ctx context.Context, period string) ([]models.PerformanceRecord, error)
}

type recordRepository struct {
	collection *mongo.Collection
}

func NewRecordRepository(db *mongo.Database) RecordRepository {
	return &recordRepository{
		collection: db.Collection("performance_records"),
	}
}

func (r *recordRepository) FindByKey(ctx context.Context, districtCode, period string) (*models.PerformanceRecord, error) {
	filter := bson.M{"district_code": districtCode, "period": period}

	var record models.PerformanceRecord
	err := r.collection.FindOne(ctx, filter).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("record %s/%s: %w", districtCode, period, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *recordRepository) Insert(ctx context.Context, record *models.PerformanceRecord) error {
	_, err := r.collection.InsertOne(ctx, record)
	if mongo.IsDuplicateKeyError(err) {
		// The unique (district_code, period) index rejected a concurrent
		// second synthesis; callers re-read the winning record.
		return fmt.Errorf("record %s/%s: %w", record.DistrictCode, record.Period, ErrDuplicateKey)
	}
	return err
}

func (r *recordRepository) FindByPeriod(ctx context.Context, period string) ([]models.PerformanceRecord, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"period": period})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.PerformanceRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}
