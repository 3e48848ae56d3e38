package classifier

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ds124wfegd/tomato-gateway/internal/entity"
)

// diseaseResponse accepts both the field names of the Flask predictor and the generic ones.
type diseaseResponse struct {
	Disease    string   `json:"disease"`
	Label      string   `json:"label"`
	Confidence *float64 `json:"confidence"`
	RiskLevel  string   `json:"risk_level"`
	Severity   string   `json:"severity"`
	Symptoms   string   `json:"symptoms"`
	Treatment  string   `json:"treatment"`
	Prevention string   `json:"prevention"`
}

type qualityResponse struct {
	Quality         string                 `json:"quality"`
	Label           string                 `json:"label"`
	Confidence      *float64               `json:"confidence"`
	Grade           string                 `json:"grade"`
	Characteristics entity.Characteristics `json:"characteristics"`
	Recommendations string                 `json:"recommendations"`
	Recommendation  string                 `json:"recommendation"`
}

// decodeResult requires the body to be exactly one JSON document.
func decodeResult(kind entity.Kind, r io.Reader) (*entity.ClassificationResult, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	switch kind {
	case entity.KindDisease:
		var resp diseaseResponse
		if err := json.Unmarshal(raw, &resp); err != nil {
			return nil, fmt.Errorf("%w: %w", entity.ErrMalformedResponse, err)
		}
		return resp.normalize()
	case entity.KindQuality:
		var resp qualityResponse
		if err := json.Unmarshal(raw, &resp); err != nil {
			return nil, fmt.Errorf("%w: %w", entity.ErrMalformedResponse, err)
		}
		return resp.normalize()
	}
	return nil, fmt.Errorf("decode: %w: %q", entity.ErrUnknownKind, kind)
}

// normalize renames fields only; values are passed through as the classifier sent them.
func (r diseaseResponse) normalize() (*entity.ClassificationResult, error) {
	out := entity.DiseaseResult{
		Label:      firstNonEmpty(r.Label, r.Disease),
		RiskLevel:  entity.RiskLevel(firstNonEmpty(r.RiskLevel, r.Severity)),
		Symptoms:   r.Symptoms,
		Treatment:  r.Treatment,
		Prevention: r.Prevention,
	}

	conf, err := checkConfidence(r.Confidence)
	if err != nil {
		return nil, err
	}
	out.Confidence = conf

	if err := requireFields(map[string]string{
		"label":      out.Label,
		"risk_level": string(out.RiskLevel),
		"symptoms":   out.Symptoms,
		"treatment":  out.Treatment,
		"prevention": out.Prevention,
	}); err != nil {
		return nil, err
	}
	return entity.NewDiseaseResult(out, entity.SourceRemote), nil
}

func (r qualityResponse) normalize() (*entity.ClassificationResult, error) {
	out := entity.QualityResult{
		Label:           firstNonEmpty(r.Label, r.Quality),
		Grade:           entity.Grade(r.Grade),
		Characteristics: r.Characteristics,
		Recommendation:  firstNonEmpty(r.Recommendation, r.Recommendations),
	}

	conf, err := checkConfidence(r.Confidence)
	if err != nil {
		return nil, err
	}
	out.Confidence = conf

	if err := requireFields(map[string]string{
		"label":          out.Label,
		"grade":          string(out.Grade),
		"color":          out.Characteristics.Color,
		"texture":        out.Characteristics.Texture,
		"size":           out.Characteristics.Size,
		"freshness":      out.Characteristics.Freshness,
		"recommendation": out.Recommendation,
	}); err != nil {
		return nil, err
	}
	return entity.NewQualityResult(out, entity.SourceRemote), nil
}

func checkConfidence(c *float64) (float64, error) {
	if c == nil {
		return 0, fmt.Errorf("%w: missing confidence", entity.ErrMalformedResponse)
	}
	if *c < 0 || *c > 100 {
		return 0, fmt.Errorf("%w: confidence %v out of range", entity.ErrMalformedResponse, *c)
	}
	return *c, nil
}

func requireFields(fields map[string]string) error {
	for name, v := range fields {
		if v == "" {
			return fmt.Errorf("%w: missing %s", entity.ErrMalformedResponse, name)
		}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
