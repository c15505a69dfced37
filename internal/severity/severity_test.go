package severity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeights_Validate(t *testing.T) {
	require.NoError(t, DefaultWeights.Validate())
	require.NoError(t, Weights{Tap: 30, Frequency: 40, Reporter: 30}.Validate())

	assert.Error(t, Weights{Tap: 20, Frequency: 30, Reporter: 40}.Validate())
	assert.Error(t, Weights{Tap: -10, Frequency: 60, Reporter: 50}.Validate())
}

func TestScore_Range(t *testing.T) {
	// Оценка всегда в диапазоне [0, 100], даже при выходе сырых метрик за потолки
	cases := []struct {
		name      string
		tapCount  int
		frequency float64
		reporters int
	}{
		{"zero", 0, 0, 0},
		{"single tap", 1, 0, 1},
		{"at ceilings", 50, 5, 10},
		{"far above ceilings", 100000, 500, 9000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score := Score(tc.tapCount, tc.frequency, tc.reporters, DefaultWeights)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		})
	}
}

func TestScore_CapsEachFactorIndependently(t *testing.T) {
	// Ни один фактор не может превысить свой вес, даже при огромном сыром значении
	assert.Equal(t, 20, Score(1000000, 0, 0, DefaultWeights))
	assert.Equal(t, 30, Score(0, 1000, 0, DefaultWeights))
	assert.Equal(t, 50, Score(0, 0, 1000, DefaultWeights))
}

func TestScore_Scenario(t *testing.T) {
	// Сценарий: 7 тапов, 0.6 тап/с, 5 уникальных свидетелей при весах 20/30/50
	// tapScore=2.8, frequencyScore=3.6, reporterScore=25 => 31
	score := Score(7, 0.6, 5, DefaultWeights)
	require.Equal(t, 31, score)
	assert.Equal(t, LevelMedium, Level(score))

	edge, crossed := EscalationEdge(0, score)
	require.True(t, crossed)
	assert.Equal(t, 30, edge)
}

func TestScore_AlternativeWeights(t *testing.T) {
	w := Weights{Tap: 30, Frequency: 40, Reporter: 30}
	// 7/50*30=4.2, 0.6/5*40=4.8, 5/10*30=15 => 24
	assert.Equal(t, 24, Score(7, 0.6, 5, w))
}

func TestLevel_Boundaries(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{0, LevelLow},
		{29, LevelLow},
		{30, LevelMedium},
		{49, LevelMedium},
		{50, LevelHigh},
		{79, LevelHigh},
		{80, LevelCritical},
		{100, LevelCritical},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Level(tc.score), "score=%d", tc.score)
	}
}

func TestNotificationRadiusKm(t *testing.T) {
	cases := []struct {
		score int
		want  float64
	}{
		{0, 3},
		{29, 3},
		{30, 5},
		{49, 5},
		{50, 10},
		{79, 10},
		{80, 15},
		{100, 15},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, NotificationRadiusKm(tc.score), "score=%d", tc.score)
	}
}

func TestNotificationRadiusKm_Monotonic(t *testing.T) {
	prev := NotificationRadiusKm(0)
	for score := 1; score <= 100; score++ {
		radius := NotificationRadiusKm(score)
		assert.GreaterOrEqual(t, radius, prev, "score=%d", score)
		prev = radius
	}
}

func TestEscalationEdge(t *testing.T) {
	cases := []struct {
		name        string
		old, new    int
		wantEdge    int
		wantCrossed bool
	}{
		{"crosses 30", 25, 35, 30, true},
		{"jump reports only highest edge", 10, 95, 80, true},
		{"no edge between 60 and 70", 60, 70, 0, false},
		{"no self transition", 60, 60, 0, false},
		{"stays above edge", 35, 45, 0, false},
		{"lands exactly on edge", 49, 50, 50, true},
		{"from zero to exactly 30", 0, 30, 30, true},
		{"decreasing score", 55, 25, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			edge, crossed := EscalationEdge(tc.old, tc.new)
			assert.Equal(t, tc.wantCrossed, crossed)
			assert.Equal(t, tc.wantEdge, edge)
		})
	}
}
