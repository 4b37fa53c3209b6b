package database

import (
	"context"
	"fmt"

	"mgnregaapi/models"
	repository "mgnregaapi/repositories"

	"go.uber.org/zap"
)

// SeedDistricts loads the static district registry into the store the first
// time the process starts against an empty database. The registry is
// read-only afterwards.
func SeedDistricts(ctx context.Context, districts repository.DistrictRepository, logger *zap.Logger) error {
	count, err := districts.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count districts: %w", err)
	}
	if count > 0 {
		return nil
	}

	if err := districts.InsertMany(ctx, models.Registry); err != nil {
		return fmt.Errorf("failed to seed district registry: %w", err)
	}

	logger.Info("Seeded district registry", zap.Int("districts", len(models.Registry)))
	return nil
}
