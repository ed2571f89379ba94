package geo

import (
	"math"
	"testing"
)

func TestDistanceKMZeroForSamePoint(t *testing.T) {
	if got := DistanceKM(41.0082, 28.9784, 41.0082, 28.9784); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestDistanceKMSymmetry(t *testing.T) {
	d1 := DistanceKM(41.0082, 28.9784, 39.9334, 32.8597)
	d2 := DistanceKM(39.9334, 32.8597, 41.0082, 28.9784)
	if d1 != d2 {
		t.Fatalf("distance not symmetric: %v vs %v", d1, d2)
	}
	if d1 <= 0 {
		t.Fatalf("expected positive distance, got %v", d1)
	}
}

func TestDistanceKMIstanbul(t *testing.T) {
	// Sultanahmet 到 Şişli 附近约 5 公里
	got := DistanceKM(41.0082, 28.9784, 41.0500, 28.9500)
	if math.Abs(got-4.98) > 0.05 {
		t.Fatalf("expected ~4.98 km, got %v", got)
	}
}

func TestDistanceKMRounding(t *testing.T) {
	got := DistanceKM(41.0082, 28.9784, 41.0500, 28.9500)
	if got != Round2(got) {
		t.Fatalf("distance not rounded to 2 decimals: %v", got)
	}
}

func TestValidCoordinates(t *testing.T) {
	cases := []struct {
		lat, lng float64
		want     bool
	}{
		{41.0, 29.0, true},
		{-90, -180, true},
		{90, 180, true},
		{91, 0, false},
		{0, 181, false},
		{-91, 0, false},
	}
	for _, tc := range cases {
		if got := ValidCoordinates(tc.lat, tc.lng); got != tc.want {
			t.Fatalf("ValidCoordinates(%v, %v) = %v, want %v", tc.lat, tc.lng, got, tc.want)
		}
	}
}

func TestRound1(t *testing.T) {
	if got := Round1(4.25); got != 4.3 {
		t.Fatalf("expected 4.3, got %v", got)
	}
	if got := Round1(4.24); got != 4.2 {
		t.Fatalf("expected 4.2, got %v", got)
	}
}
