package simulation

import (
	"math/rand/v2"
	"testing"

	"github.com/ds124wfegd/tomato-gateway/internal/entity"
	"github.com/ds124wfegd/tomato-gateway/internal/knowledge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand always returns the same draw
type fixedRand struct {
	index int
	frac  float64
}

func (f fixedRand) IntN(n int) int {
	return f.index % n
}

func (f fixedRand) Float64() float64 {
	return f.frac
}

func indexOf(t *testing.T, labels []string, label string) int {
	t.Helper()
	for i, l := range labels {
		if l == label {
			return i
		}
	}
	t.Fatalf("label %q not in table", label)
	return -1
}

func TestSimulateHealthyReturnsItsOwnEntry(t *testing.T) {
	sim := NewSimulator()
	rng := fixedRand{index: indexOf(t, knowledge.Diseases.Labels, knowledge.Healthy), frac: 0.5}

	res, err := sim.Simulate(entity.KindDisease, rng)
	require.NoError(t, err)
	require.NotNil(t, res.Disease)

	want := knowledge.Diseases.Entries[knowledge.Healthy]
	assert.Equal(t, entity.SourceSimulated, res.Source)
	assert.Equal(t, knowledge.Healthy, res.Disease.Label)
	assert.Equal(t, 90.0, res.Disease.Confidence)
	assert.Equal(t, want.RiskLevel, res.Disease.RiskLevel)
	assert.Equal(t, want.Symptoms, res.Disease.Symptoms)
	assert.Equal(t, want.Treatment, res.Disease.Treatment)
	assert.Equal(t, want.Prevention, res.Disease.Prevention)
	assert.NotEqual(t, knowledge.Diseases.Entries[knowledge.LateBlight].Symptoms, res.Disease.Symptoms)
}

func TestSimulateMissingEntryUsesDefault(t *testing.T) {
	diseases := knowledge.Diseases
	diseases.Labels = []string{"Oídio polvoriento"}

	qualities := knowledge.Qualities
	qualities.Labels = []string{"Sobremadura"}

	sim := NewSimulatorWithTables(diseases, qualities)

	d, err := sim.Simulate(entity.KindDisease, fixedRand{})
	require.NoError(t, err)
	late := knowledge.Diseases.Entries[knowledge.LateBlight]
	assert.Equal(t, "Oídio polvoriento", d.Disease.Label)
	assert.Equal(t, late.Symptoms, d.Disease.Symptoms)
	assert.Equal(t, late.RiskLevel, d.Disease.RiskLevel)

	q, err := sim.Simulate(entity.KindQuality, fixedRand{})
	require.NoError(t, err)
	regular := knowledge.Qualities.Entries[knowledge.Regular]
	assert.Equal(t, regular.Grade, q.Quality.Grade)
	assert.Equal(t, regular.Recommendation, q.Quality.Recommendation)
}

func TestSimulateConfidenceBounds(t *testing.T) {
	tests := []struct {
		name string
		frac float64
		want float64
	}{
		{name: "lowest draw", frac: 0, want: 85.0},
		{name: "highest draw", frac: 0.99999, want: 95.0},
		{name: "rounded to one decimal", frac: 0.123, want: 86.2},
	}

	sim := NewSimulator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := sim.Simulate(entity.KindQuality, fixedRand{frac: tt.frac})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Quality.Confidence)
		})
	}
}

func TestSimulateSeededIsDeterministic(t *testing.T) {
	sim := NewSimulator()

	for _, kind := range []entity.Kind{entity.KindDisease, entity.KindQuality} {
		a, err := sim.Simulate(kind, rand.New(rand.NewPCG(7, 11)))
		require.NoError(t, err)
		b, err := sim.Simulate(kind, rand.New(rand.NewPCG(7, 11)))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestSimulateManyDrawsStayValid(t *testing.T) {
	sim := NewSimulator()
	rng := NewLockedRand(42)

	for i := 0; i < 500; i++ {
		d, err := sim.Simulate(entity.KindDisease, rng)
		require.NoError(t, err)
		assert.Contains(t, knowledge.Diseases.Labels, d.Disease.Label)
		assert.GreaterOrEqual(t, d.Disease.Confidence, MinConfidence)
		assert.LessOrEqual(t, d.Disease.Confidence, MaxConfidence)
		assert.NotEmpty(t, d.Disease.Symptoms)

		q, err := sim.Simulate(entity.KindQuality, rng)
		require.NoError(t, err)
		assert.Contains(t, knowledge.Qualities.Labels, q.Quality.Label)
		assert.GreaterOrEqual(t, q.Quality.Confidence, MinConfidence)
		assert.LessOrEqual(t, q.Quality.Confidence, MaxConfidence)
		assert.NotEmpty(t, q.Quality.Grade)
	}
}

func TestSimulateUnknownKind(t *testing.T) {
	_, err := NewSimulator().Simulate(entity.Kind("ripeness"), fixedRand{})
	require.ErrorIs(t, err, entity.ErrUnknownKind)
}
