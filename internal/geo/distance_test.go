package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_SamePoint(t *testing.T) {
	assert.Equal(t, 0.0, DistanceKm(0, 0, 0, 0))
	assert.Equal(t, 0.0, DistanceKm(55.75, 37.61, 55.75, 37.61))
}

func TestDistanceKm_OneDegreeLatitude(t *testing.T) {
	// Один градус широты на меридиане — примерно 111.19 км
	d := DistanceKm(0, 0, 1, 0)
	assert.InEpsilon(t, 111.19, d, 0.001)
}

func TestDistanceKm_KnownCityPair(t *testing.T) {
	// Москва — Санкт-Петербург, эталон около 634 км
	d := DistanceKm(55.7558, 37.6173, 59.9343, 30.3351)
	assert.InEpsilon(t, 634.0, d, 0.01)
}

func TestDistanceKm_Symmetric(t *testing.T) {
	d1 := DistanceKm(55.75, 37.61, 59.93, 30.33)
	d2 := DistanceKm(59.93, 30.33, 55.75, 37.61)
	assert.InDelta(t, d1, d2, 1e-9)
}

func TestDistanceKm_AcrossAntimeridian(t *testing.T) {
	// Точки по обе стороны 180-го меридиана не должны давать "кругосветное" расстояние
	d := DistanceKm(0, 179.5, 0, -179.5)
	assert.InEpsilon(t, 111.19, d, 0.01)
}
