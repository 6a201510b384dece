package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ridemate/internal/geo/domain"
	identitytransport "ridemate/internal/identity/adapter/in/transport"
	"ridemate/internal/shared/auth"
	"ridemate/internal/shared/config"
	"ridemate/internal/shared/logger"
)

type stubResolver struct {
	coord    *domain.Coordinate
	viewKeys []string
	places   []string
}

func (r *stubResolver) Execute(ctx context.Context, viewKey, place string) *domain.Coordinate {
	r.viewKeys = append(r.viewKeys, viewKey)
	r.places = append(r.places, place)
	return r.coord
}

func newGeoMux(t *testing.T, resolver *stubResolver) (*http.ServeMux, string) {
	t.Helper()

	log := logger.NewLoggerWithOptions("test", "ERROR", io.Discard, io.Discard)
	jwtService := auth.NewJWTService(config.JWTConfig{Secret: "test_secret", ExpiryMinutes: 60})

	token, err := jwtService.GenerateToken("acc-1", "1032230010@mitwpu.edu.in")
	require.NoError(t, err)

	mux := http.NewServeMux()
	NewHTTPHandler(resolver, log).RegisterRoutes(mux, identitytransport.JWTMiddleware(jwtService, log))
	return mux, token
}

func getGeocode(mux *http.ServeMux, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestGeocodeEndpoint_Success(t *testing.T) {
	resolver := &stubResolver{coord: &domain.Coordinate{Latitude: 18.5, Longitude: 73.8}}
	mux, token := newGeoMux(t, resolver)

	w := getGeocode(mux, "/geocode?place=Kothrud", token)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Coordinate *domain.Coordinate `json:"coordinate"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Coordinate)
	assert.InDelta(t, 18.5, resp.Coordinate.Latitude, 1e-9)

	// ключ просмотра — ID аккаунта из токена
	require.Len(t, resolver.viewKeys, 1)
	assert.Equal(t, "acc-1", resolver.viewKeys[0])
	assert.Equal(t, "Kothrud", resolver.places[0])
}

func TestGeocodeEndpoint_FailureIsNullNotError(t *testing.T) {
	resolver := &stubResolver{coord: nil}
	mux, token := newGeoMux(t, resolver)

	w := getGeocode(mux, "/geocode?place=nowhere", token)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"coordinate":null}`, w.Body.String())
}

func TestGeocodeEndpoint_MissingPlace(t *testing.T) {
	mux, token := newGeoMux(t, &stubResolver{})

	w := getGeocode(mux, "/geocode", token)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGeocodeEndpoint_RequiresAuth(t *testing.T) {
	mux, _ := newGeoMux(t, &stubResolver{})

	w := getGeocode(mux, "/geocode?place=Kothrud", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
