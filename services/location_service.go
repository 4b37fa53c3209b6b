package services

import (
	"context"
	"errors"

	"mgnregaapi/models"
	repository "mgnregaapi/repositories"

	"go.uber.org/zap"
)

type LocationService interface {
	// Detect resolves coordinates into a known district. All failure modes
	// (unreachable geocoder, no locality, no registry match) come back as a
	// success=false response rather than an error.
	Detect(ctx context.Context, lat, lon float64) models.LocationResponse
}

type locationService struct {
	districts repository.DistrictRepository
	geocoder  Geocoder
	logger    *zap.Logger
}

func NewLocationService(districts repository.DistrictRepository, geocoder Geocoder, logger *zap.Logger) LocationService {
	return &locationService{
		districts: districts,
		geocoder:  geocoder,
		logger:    logger,
	}
}

func (s *locationService) Detect(ctx context.Context, lat, lon float64) models.LocationResponse {
	address, err := s.geocoder.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		s.logger.Warn("Location detection error", zap.Error(err))
		if errors.Is(err, ErrGeocoderUnavailable) {
			return models.LocationResponse{Success: false, Message: "Geocoding service unavailable"}
		}
		return models.LocationResponse{Success: false, Message: "Location detection failed"}
	}

	locality := address.Locality()
	if locality == "" {
		return models.LocationResponse{Success: false, Message: "Could not determine district from location"}
	}

	district, err := s.districts.SearchByName(ctx, locality)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.LocationResponse{Success: false, Message: "Could not determine district from location"}
		}
		s.logger.Warn("District lookup error", zap.Error(err))
		return models.LocationResponse{Success: false, Message: "Location detection failed"}
	}

	return models.LocationResponse{Success: true, District: district}
}
