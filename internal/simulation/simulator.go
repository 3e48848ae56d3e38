package simulation

import (
	"fmt"
	"math"

	"github.com/ds124wfegd/tomato-gateway/internal/entity"
	"github.com/ds124wfegd/tomato-gateway/internal/knowledge"
)

const (
	MinConfidence = 85.0
	MaxConfidence = 95.0
)

type Simulator struct {
	diseases  knowledge.DiseaseTable
	qualities knowledge.QualityTable
}

func NewSimulator() *Simulator {
	return NewSimulatorWithTables(knowledge.Diseases, knowledge.Qualities)
}

func NewSimulatorWithTables(diseases knowledge.DiseaseTable, qualities knowledge.QualityTable) *Simulator {
	return &Simulator{diseases: diseases, qualities: qualities}
}

// Simulate fabricates a plausible result for kind. The output depends only on rng and the tables.
func (s *Simulator) Simulate(kind entity.Kind, rng Rand) (*entity.ClassificationResult, error) {
	switch kind {
	case entity.KindDisease:
		label := pick(s.diseases.Labels, rng)
		e := s.diseases.Resolve(label)
		return entity.NewDiseaseResult(entity.DiseaseResult{
			Label:      label,
			Confidence: confidence(rng),
			RiskLevel:  e.RiskLevel,
			Symptoms:   e.Symptoms,
			Treatment:  e.Treatment,
			Prevention: e.Prevention,
		}, entity.SourceSimulated), nil
	case entity.KindQuality:
		label := pick(s.qualities.Labels, rng)
		e := s.qualities.Resolve(label)
		return entity.NewQualityResult(entity.QualityResult{
			Label:           label,
			Confidence:      confidence(rng),
			Grade:           e.Grade,
			Characteristics: e.Characteristics,
			Recommendation:  e.Recommendation,
		}, entity.SourceSimulated), nil
	}
	return nil, fmt.Errorf("simulate: %w: %q", entity.ErrUnknownKind, kind)
}

func pick(labels []string, rng Rand) string {
	if len(labels) == 0 {
		return ""
	}
	return labels[rng.IntN(len(labels))]
}

// confidence is uniform in [85, 95], rounded to one decimal
func confidence(rng Rand) float64 {
	v := MinConfidence + rng.Float64()*(MaxConfidence-MinConfidence)
	return math.Round(v*10) / 10
}
