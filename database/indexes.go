package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func CreateIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// REGISTRY: district codes are the stable identifiers
	districtIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "code", Value: 1}},
			Options: options.Index().SetName("idx_code_unique").SetUnique(true),
		},
	}
	if _, err := db.Collection("districts").Indexes().CreateMany(ctx, districtIndexes); err != nil {
		return fmt.Errorf("failed to create district indexes: %v", err)
	}

	recordIndexes := []mongo.IndexModel{
		// RESOLVER: (district_code, period) is the natural key. Uniqueness
		// makes the check-then-insert sequence safe: a concurrent second
		// synthesis fails with a duplicate-key error instead of storing a
		// divergent record.
		{
			Keys: bson.D{
				{Key: "district_code", Value: 1},
				{Key: "period", Value: 1},
			},
			Options: options.Index().SetName("idx_district_period_unique").SetUnique(true),
		},

		// OVERVIEW: period-wide scan across all districts
		{
			Keys:    bson.D{{Key: "period", Value: 1}},
			Options: options.Index().SetName("idx_period"),
		},
	}
	if _, err := db.Collection("performance_records").Indexes().CreateMany(ctx, recordIndexes); err != nil {
		return fmt.Errorf("failed to create record indexes: %v", err)
	}

	return nil
}
