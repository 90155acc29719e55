package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"symptomcheck/internal/config"
	"symptomcheck/internal/models"
)

func names(ailments []models.Ailment) []string {
	out := make([]string, len(ailments))
	for i, a := range ailments {
		out[i] = a.Name
	}
	return out
}

func TestDefault_Keywords(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{"headache", "fever", "stomach pain", "fatigue", "cough"}, c.Keywords())
	assert.Len(t, c.CommonSymptoms(), 10)
}

func TestMatch(t *testing.T) {
	c := Default()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"exact keyword", "headache", []string{"Tension Headache", "Migraine"}},
		{"query contains keyword", "headaches", []string{"Tension Headache", "Migraine"}},
		{"keyword contains query", "stomach", []string{"Indigestion", "Gastritis"}},
		{"prefix of no keyword", "fev", nil},
		{"superstring of fever", "feverish", []string{"Common Cold", "Influenza (Flu)"}},
		{"two keywords in registration order", "cough and fever", []string{"Common Cold", "Influenza (Flu)", "Acute Bronchitis"}},
		{"no match", "rash", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Match(tt.query)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestMatch_Severities(t *testing.T) {
	got := Default().Match("headache")
	require.Len(t, got, 2)
	assert.Equal(t, models.SeverityLow, got[0].Severity)
	assert.Equal(t, models.SeverityMedium, got[1].Severity)
}

func TestMatch_NoDeduplication(t *testing.T) {
	shared := models.Ailment{ID: "x", Name: "Shared", Severity: models.SeverityLow}
	c, err := New([]Entry{
		{Keyword: "ache", Ailments: []models.Ailment{shared}},
		{Keyword: "back ache", Ailments: []models.Ailment{shared}},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Shared", "Shared"}, names(c.Match("back ache")))
}

func TestNew_Validation(t *testing.T) {
	low := models.Ailment{ID: "1", Name: "A", Severity: models.SeverityLow}

	tests := []struct {
		name    string
		entries []Entry
	}{
		{"empty keyword", []Entry{{Keyword: "", Ailments: []models.Ailment{low}}}},
		{"uppercase keyword", []Entry{{Keyword: "Fever", Ailments: []models.Ailment{low}}}},
		{"untrimmed keyword", []Entry{{Keyword: " fever", Ailments: []models.Ailment{low}}}},
		{"duplicate keyword", []Entry{{Keyword: "fever"}, {Keyword: "fever"}}},
		{"missing id", []Entry{{Keyword: "fever", Ailments: []models.Ailment{{Name: "A", Severity: "low"}}}}},
		{"bad severity", []Entry{{Keyword: "fever", Ailments: []models.Ailment{{ID: "1", Severity: "critical"}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries, nil)
			assert.Error(t, err)
		})
	}
}

func TestAilment(t *testing.T) {
	c := Default()

	a, err := c.Ailment("9")
	require.NoError(t, err)
	assert.Equal(t, "Acute Bronchitis", a.Name)

	_, err = c.Ailment("404")
	assert.ErrorIs(t, err, ErrAilmentNotFound)
}

func TestCatalogIsNotMutatedByCallers(t *testing.T) {
	c := Default()

	keywords := c.Keywords()
	keywords[0] = "changed"
	common := c.CommonSymptoms()
	common[0] = "changed"
	results := c.Match("headache")
	results[0].Name = "changed"

	assert.Equal(t, "headache", c.Keywords()[0])
	assert.Equal(t, "headache", c.CommonSymptoms()[0])
	assert.Equal(t, "Tension Headache", c.Match("headache")[0].Name)
}

func TestCatalogNestedSlicesAreNotShared(t *testing.T) {
	c := Default()
	wantTreatment := c.Match("headache")[0].Treatments[0]
	wantSymptom := c.Match("headache")[0].CommonSymptoms[0]

	results := c.Match("headache")
	results[0].Treatments[0] = "changed"
	results[0].CommonSymptoms[0] = "changed"

	entries := c.Entries()
	entries[1].Ailments[0].Name = "changed"
	entries[1].Ailments[0].Treatments[0] = "changed"

	a, err := c.Ailment("1")
	require.NoError(t, err)
	a.Treatments[0] = "changed"

	got := c.Match("headache")[0]
	assert.Equal(t, wantTreatment, got.Treatments[0])
	assert.Equal(t, wantSymptom, got.CommonSymptoms[0])
	assert.Equal(t, "Common Cold", c.Entries()[1].Ailments[0].Name)
	assert.NotEqual(t, "changed", c.Entries()[1].Ailments[0].Treatments[0])

	again, err := c.Ailment("1")
	require.NoError(t, err)
	assert.Equal(t, wantTreatment, again.Treatments[0])
}

func TestLoad(t *testing.T) {
	t.Run("nil file uses built-in catalog", func(t *testing.T) {
		c, err := Load(nil)
		require.NoError(t, err)
		assert.Equal(t, Default().Keywords(), c.Keywords())
	})

	t.Run("file entries replace the built-in table", func(t *testing.T) {
		c, err := Load(&config.CatalogFile{
			Keywords: []config.KeywordConfig{
				{Keyword: "rash", Ailments: []models.Ailment{{ID: "r1", Name: "Contact Dermatitis", Severity: models.SeverityLow}}},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"rash"}, c.Keywords())
		assert.Equal(t, defaultCommonSymptoms, c.CommonSymptoms())
	})

	t.Run("file without keywords keeps the built-in table", func(t *testing.T) {
		c, err := Load(&config.CatalogFile{
			CommonSymptoms: []string{"rash"},
			Seed:           []config.SeedConfig{{Keyword: "rash", SearchCount: 2}},
		})
		require.NoError(t, err)
		assert.Equal(t, Default().Keywords(), c.Keywords())
		assert.Equal(t, []string{"rash"}, c.CommonSymptoms())

		results := c.Match("headache")
		require.Len(t, results, 2)
		assert.Equal(t, "Tension Headache", results[0].Name)
	})

	t.Run("invalid file is rejected", func(t *testing.T) {
		_, err := Load(&config.CatalogFile{
			Keywords: []config.KeywordConfig{{Keyword: "rash", Ailments: []models.Ailment{{ID: "r1", Severity: "bad"}}}},
		})
		assert.Error(t, err)
	})
}
