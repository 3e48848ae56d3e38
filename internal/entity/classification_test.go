package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{in: "disease", want: KindDisease},
		{in: " Quality ", want: KindQuality},
		{in: "ripeness", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassificationResultAccessors(t *testing.T) {
	d := NewDiseaseResult(DiseaseResult{Label: "Hoja sana", Confidence: 90.1}, SourceSimulated)
	assert.Equal(t, "Hoja sana", d.Label())
	assert.Equal(t, 90.1, d.Confidence())
	assert.Nil(t, d.Quality)
	assert.IsType(t, &DiseaseResult{}, d.Body())

	q := NewQualityResult(QualityResult{Label: "Premium", Confidence: 88}, SourceRemote)
	assert.Equal(t, KindQuality, q.Kind)
	assert.Equal(t, "Premium", q.Label())
	assert.IsType(t, &QualityResult{}, q.Body())
}
