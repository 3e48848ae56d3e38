// Static label tables used to describe simulated results.
package knowledge

import "github.com/ds124wfegd/tomato-gateway/internal/entity"

type DiseaseEntry struct {
	RiskLevel  entity.RiskLevel
	Symptoms   string
	Treatment  string
	Prevention string
}

type QualityEntry struct {
	Grade           entity.Grade
	Characteristics entity.Characteristics
	Recommendation  string
}

// DiseaseTable is read-only after construction.
type DiseaseTable struct {
	Labels       []string
	Entries      map[string]DiseaseEntry
	DefaultLabel string
}

func (t DiseaseTable) Lookup(label string) (DiseaseEntry, bool) {
	e, ok := t.Entries[label]
	return e, ok
}

// Resolve returns the entry for label or, when the label has none, the default entry.
func (t DiseaseTable) Resolve(label string) DiseaseEntry {
	if e, ok := t.Entries[label]; ok {
		return e
	}
	return t.Entries[t.DefaultLabel]
}

type QualityTable struct {
	Labels       []string
	Entries      map[string]QualityEntry
	DefaultLabel string
}

func (t QualityTable) Lookup(label string) (QualityEntry, bool) {
	e, ok := t.Entries[label]
	return e, ok
}

func (t QualityTable) Resolve(label string) QualityEntry {
	if e, ok := t.Entries[label]; ok {
		return e
	}
	return t.Entries[t.DefaultLabel]
}
