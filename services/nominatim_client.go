package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	cache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// ErrGeocoderUnavailable marks a reverse-geocoding call that reached the
// service but got a non-success status.
var ErrGeocoderUnavailable = errors.New("geocoding service unavailable")

// GeocodedAddress carries the locality fields of a reverse-geocoding result.
type GeocodedAddress struct {
	StateDistrict string `json:"state_district"`
	County        string `json:"county"`
	Suburb        string `json:"suburb"`
}

// Locality picks the most specific usable district name, checking
// state_district, county and suburb in that order.
func (a GeocodedAddress) Locality() string {
	switch {
	case a.StateDistrict != "":
		return a.StateDistrict
	case a.County != "":
		return a.County
	default:
		return a.Suburb
	}
}

// Geocoder resolves coordinates into an address.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (GeocodedAddress, error)
}

// NominatimClient implements Geocoder against the OpenStreetMap Nominatim
// API. Responses are cached by rounded coordinates so repeated lookups from
// the same area do not hit the rate-limited public endpoint.
type NominatimClient struct {
	httpClient *resty.Client
	cache      *cache.Cache
	logger     *zap.Logger
}

func NewNominatimClient(baseURL string, timeout, cacheTTL time.Duration, logger *zap.Logger) *NominatimClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", "MGNREGA-App/1.0").
		SetHeader("Accept", "application/json")

	return &NominatimClient{
		httpClient: client,
		cache:      cache.New(cacheTTL, 2*cacheTTL),
		logger:     logger,
	}
}

type reverseGeocodeResponse struct {
	Address GeocodedAddress `json:"address"`
}

func (c *NominatimClient) ReverseGeocode(ctx context.Context, lat, lon float64) (GeocodedAddress, error) {
	// ~11m precision, more than enough to identify a district.
	key := fmt.Sprintf("%.4f,%.4f", lat, lon)
	if cached, ok := c.cache.Get(key); ok {
		return cached.(GeocodedAddress), nil
	}

	var body reverseGeocodeResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"lat":            strconv.FormatFloat(lat, 'f', -1, 64),
			"lon":            strconv.FormatFloat(lon, 'f', -1, 64),
			"format":         "json",
			"addressdetails": "1",
		}).
		SetResult(&body).
		Get("/reverse")
	if err != nil {
		return GeocodedAddress{}, fmt.Errorf("reverse geocode request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return GeocodedAddress{}, fmt.Errorf("%w: status %d", ErrGeocoderUnavailable, resp.StatusCode())
	}

	// Only cache results that named a locality so empty responses can be
	// retried later.
	if body.Address.Locality() != "" {
		c.cache.Set(key, body.Address, cache.DefaultExpiration)
	}

	c.logger.Debug("Reverse geocoded coordinates",
		zap.Float64("lat", lat),
		zap.Float64("lon", lon),
		zap.String("locality", body.Address.Locality()))
	return body.Address, nil
}
