package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityStyle(t *testing.T) {
	tests := []struct {
		name     string
		severity string
		expected string
	}{
		{"low severity", SeverityLow, StyleInformational},
		{"medium severity", SeverityMedium, StyleCautionary},
		{"high severity", SeverityHigh, StyleUrgent},
		{"empty severity", "", StyleNeutral},
		{"unknown severity", "critical", StyleNeutral},
		{"wrong case", "HIGH", StyleNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SeverityStyle(tt.severity))
		})
	}
}

func TestAilment_Style(t *testing.T) {
	a := &Ailment{Severity: SeverityMedium}
	assert.Equal(t, StyleCautionary, a.Style())
}

func TestIsValidSeverity(t *testing.T) {
	assert.True(t, IsValidSeverity("low"))
	assert.True(t, IsValidSeverity("medium"))
	assert.True(t, IsValidSeverity("high"))
	assert.False(t, IsValidSeverity(""))
	assert.False(t, IsValidSeverity("severe"))
}

func TestNewAilmentResponse(t *testing.T) {
	resp := NewAilmentResponse(Ailment{ID: "2", Name: "Migraine", Severity: SeverityMedium})
	assert.Equal(t, "Migraine", resp.Name)
	assert.Equal(t, StyleCautionary, resp.SeverityStyle)
}
