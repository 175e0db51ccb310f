// internal/application/progress_test.go
package application

import (
	"math"
	"testing"
)

func ptr(v float64) *float64 { return &v }

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		name   string
		raised *float64
		goal   *float64
		want   int
	}{
		{"nothing raised", ptr(0), ptr(0), 0},
		{"small share", ptr(130), ptr(50000), 0},
		{"half", ptr(5000), ptr(10000), 50},
		{"over funded", ptr(12000), ptr(10000), 100},
		{"partial", ptr(3000), ptr(10000), 30},
		{"truncates", ptr(5000), ptr(15000), 33},
		{"almost complete", ptr(99.9), ptr(100), 99},
		{"over goal clamps", ptr(150), ptr(100), 100},
		{"zero goal", ptr(50), ptr(0), 0},
		{"negative goal", ptr(50), ptr(-10), 0},
		{"nil goal", ptr(50), nil, 0},
		{"nil raised", nil, ptr(100), 0},
		{"negative raised clamps", ptr(-20), ptr(100), 0},
		{"nan raised", ptr(math.NaN()), ptr(100), 0},
		{"infinite raised", ptr(math.Inf(1)), ptr(100), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProgressPercent(tt.raised, tt.goal); got != tt.want {
				t.Errorf("ProgressPercent() = %d, want %d", got, tt.want)
			}
		})
	}
}
