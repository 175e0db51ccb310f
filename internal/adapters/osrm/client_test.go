// internal/adapters/osrm/client_test.go
package osrm

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpway/helpway-core/internal/domain"
)

func TestClient_Route(t *testing.T) {
	var gotPath, gotQuery string
	router := mux.NewRouter()
	router.HandleFunc("/route/v1/driving/{coords}", func(w http.ResponseWriter, r *http.Request) {
		gotPath = mux.Vars(r)["coords"]
		gotQuery = r.URL.RawQuery
		io.WriteString(w, `{"code": "Ok", "routes": [{"geometry": {"coordinates": [[-46.6333, -23.5505], [-47.0608, -22.9056]]}}]}`)
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	cl := NewClient(srv.URL, time.Second)
	route, err := cl.Route(context.Background(),
		domain.Coordinate{Latitude: -23.5505, Longitude: -46.6333},
		domain.Coordinate{Latitude: -22.9056, Longitude: -47.0608})
	require.NoError(t, err)

	assert.Equal(t, "-46.6333,-23.5505;-47.0608,-22.9056", gotPath)
	assert.Equal(t, "overview=full&geometries=geojson", gotQuery)
	require.Len(t, route, 2)
	assert.Equal(t, domain.Coordinate{Latitude: -22.9056, Longitude: -47.0608}, route[1])
}

func TestClient_RouteFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name: "no route", status: http.StatusOK, body: `{"code": "NoRoute", "routes": []}`,
			check: func(t *testing.T, err error) {
				var aerr *domain.APIError
				assert.True(t, errors.As(err, &aerr))
			},
		},
		{
			name: "server error", status: http.StatusBadGateway, body: `upstream down`,
			check: func(t *testing.T, err error) {
				var aerr *domain.APIError
				require.True(t, errors.As(err, &aerr))
				assert.Equal(t, http.StatusBadGateway, aerr.StatusCode)
			},
		},
		{
			name: "garbage", status: http.StatusOK, body: `{`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrMalformedResponse)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, time.Second).Route(context.Background(), domain.Coordinate{Latitude: 1, Longitude: 1}, domain.Coordinate{Latitude: 2, Longitude: 2})
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}
