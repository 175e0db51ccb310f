// pkg/geo/haversine_test.go
package geo

import (
	"math"
	"testing"
)

func TestDistanceKm(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		tolerance              float64
	}{
		{"same point", -23.5505, -46.6333, -23.5505, -46.6333, 0, 1e-9},
		{"Sao Paulo to Porto Alegre", -23.5505, -46.6333, -30.0346, -51.2177, 853, 5},
		{"one degree of latitude", 0, 0, 1, 0, 111.19, 0.01},
		{"antipodes", 0, 0, 0, 180, math.Pi * EarthRadiusKm, 1e-6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("DistanceKm() = %v, want %v ± %v", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	points := [][2]float64{{-23.5505, -46.6333}, {-30.0346, -51.2177}, {40.7128, -74.006}, {35.6762, 139.6503}}
	for _, a := range points {
		for _, b := range points {
			ab := DistanceKm(a[0], a[1], b[0], b[1])
			ba := DistanceKm(b[0], b[1], a[0], a[1])
			if math.Abs(ab-ba) > 1e-9 {
				t.Errorf("distance not symmetric for %v %v: %v != %v", a, b, ab, ba)
			}
			if ab < 0 {
				t.Errorf("negative distance for %v %v", a, b)
			}
		}
	}
}
