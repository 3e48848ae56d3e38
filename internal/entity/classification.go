package entity

import (
	"fmt"
	"strings"
)

type Kind string

const (
	KindDisease Kind = "disease"
	KindQuality Kind = "quality"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindDisease:
		return KindDisease, nil
	case KindQuality:
		return KindQuality, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) Valid() bool {
	return k == KindDisease || k == KindQuality
}

type RiskLevel string

const (
	RiskNone   RiskLevel = "none"
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
)

// Source откуда взят результат: удалённый классификатор или симуляция
type Source string

const (
	SourceRemote    Source = "remote"
	SourceSimulated Source = "simulated"
)

const DefaultMediaType = "application/octet-stream"

// ImagePayload is the uploaded file as received; it is never decoded or stored.
type ImagePayload struct {
	Data      []byte
	MediaType string
	Filename  string
}

type ClassificationRequest struct {
	ID      string
	Kind    Kind
	Payload ImagePayload
}

type DiseaseResult struct {
	Label      string    `json:"label"`
	Confidence float64   `json:"confidence"`
	RiskLevel  RiskLevel `json:"risk_level"`
	Symptoms   string    `json:"symptoms"`
	Treatment  string    `json:"treatment"`
	Prevention string    `json:"prevention"`
}

type Characteristics struct {
	Color     string `json:"color"`
	Texture   string `json:"texture"`
	Size      string `json:"size"`
	Freshness string `json:"freshness"`
}

type QualityResult struct {
	Label           string          `json:"label"`
	Confidence      float64         `json:"confidence"`
	Grade           Grade           `json:"grade"`
	Characteristics Characteristics `json:"characteristics"`
	Recommendation  string          `json:"recommendation"`
}

// ClassificationResult holds exactly one of Disease or Quality, selected by Kind.
type ClassificationResult struct {
	Kind    Kind
	Source  Source
	Disease *DiseaseResult
	Quality *QualityResult
}

func NewDiseaseResult(r DiseaseResult, source Source) *ClassificationResult {
	return &ClassificationResult{Kind: KindDisease, Source: source, Disease: &r}
}

func NewQualityResult(r QualityResult, source Source) *ClassificationResult {
	return &ClassificationResult{Kind: KindQuality, Source: source, Quality: &r}
}

func (r *ClassificationResult) Label() string {
	switch {
	case r.Disease != nil:
		return r.Disease.Label
	case r.Quality != nil:
		return r.Quality.Label
	}
	return ""
}

func (r *ClassificationResult) Confidence() float64 {
	switch {
	case r.Disease != nil:
		return r.Disease.Confidence
	case r.Quality != nil:
		return r.Quality.Confidence
	}
	return 0
}

// Body returns the variant rendered to the caller. Source is not part of it.
func (r *ClassificationResult) Body() any {
	if r.Disease != nil {
		return r.Disease
	}
	return r.Quality
}
