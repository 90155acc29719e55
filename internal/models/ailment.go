package models

// Severity constants
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Severity style constants used by clients to pick badge styling.
const (
	StyleInformational = "informational"
	StyleCautionary    = "cautionary"
	StyleUrgent        = "urgent"
	StyleNeutral       = "neutral"
)

// Ailment describes a known condition. Ailments are reference data and are
// never mutated after the catalog is built.
type Ailment struct {
	ID              string   `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	Severity        string   `json:"severity" yaml:"severity"`
	Description     string   `json:"description" yaml:"description"`
	CommonSymptoms  []string `json:"commonSymptoms" yaml:"common_symptoms"`
	Treatments      []string `json:"treatments" yaml:"treatments"`
	WhenToSeeDoctor string   `json:"whenToSeeDoctor" yaml:"when_to_see_doctor"`
}

// Clone returns a copy of a that shares no slices with it.
func (a Ailment) Clone() Ailment {
	a.CommonSymptoms = append([]string(nil), a.CommonSymptoms...)
	a.Treatments = append([]string(nil), a.Treatments...)
	return a
}

// SeverityStyle maps a severity to its display style. Unknown values fall back
// to the neutral style.
func SeverityStyle(severity string) string {
	switch severity {
	case SeverityLow:
		return StyleInformational
	case SeverityMedium:
		return StyleCautionary
	case SeverityHigh:
		return StyleUrgent
	default:
		return StyleNeutral
	}
}

// IsValidSeverity reports whether severity is one of the closed set.
func IsValidSeverity(severity string) bool {
	switch severity {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// Style returns the display style for the ailment's severity.
func (a *Ailment) Style() string {
	return SeverityStyle(a.Severity)
}
