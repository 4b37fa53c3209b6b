package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testNominatimClient(baseURL string) *NominatimClient {
	return NewNominatimClient(baseURL, 5*time.Second, time.Minute, zap.NewNop())
}

func TestLocality_PriorityOrder(t *testing.T) {
	assert.Equal(t, "Agra", GeocodedAddress{StateDistrict: "Agra", County: "x", Suburb: "y"}.Locality())
	assert.Equal(t, "Agra", GeocodedAddress{County: "Agra", Suburb: "y"}.Locality())
	assert.Equal(t, "Agra", GeocodedAddress{Suburb: "Agra"}.Locality())
	assert.Empty(t, GeocodedAddress{}.Locality())
}

func TestReverseGeocode_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "27.1767", r.URL.Query().Get("lat"))
		assert.Equal(t, "78.0081", r.URL.Query().Get("lon"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("addressdetails"))

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]interface{}{
			"address": map[string]string{"state_district": "Agra"},
		}))
	}))
	defer srv.Close()

	c := testNominatimClient(srv.URL)
	address, err := c.ReverseGeocode(context.Background(), 27.1767, 78.0081)

	require.NoError(t, err)
	assert.Equal(t, "Agra", address.StateDistrict)
	assert.Equal(t, "Agra", address.Locality())
}

func TestReverseGeocode_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := testNominatimClient(srv.URL)
	_, err := c.ReverseGeocode(context.Background(), 27.1767, 78.0081)

	assert.ErrorIs(t, err, ErrGeocoderUnavailable)
}

func TestReverseGeocode_CachesByCoordinates(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]interface{}{
			"address": map[string]string{"county": "Lucknow"},
		}))
	}))
	defer srv.Close()

	c := testNominatimClient(srv.URL)

	first, err := c.ReverseGeocode(context.Background(), 26.8467, 80.9462)
	require.NoError(t, err)
	second, err := c.ReverseGeocode(context.Background(), 26.8467, 80.9462)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, hits)
}

func TestReverseGeocode_EmptyResultNotCached(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]interface{}{
			"address": map[string]string{},
		}))
	}))
	defer srv.Close()

	c := testNominatimClient(srv.URL)

	_, err := c.ReverseGeocode(context.Background(), 10.0, 10.0)
	require.NoError(t, err)
	_, err = c.ReverseGeocode(context.Background(), 10.0, 10.0)
	require.NoError(t, err)

	assert.Equal(t, 2, hits)
}
