package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchRecord_IsRecurring(t *testing.T) {
	tests := []struct {
		name      string
		count     int64
		threshold int
		expected  bool
	}{
		{"below threshold", 2, 3, false},
		{"at threshold", 3, 3, true},
		{"above threshold", 7, 3, true},
		{"threshold of one", 1, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &SearchRecord{SearchCount: tt.count}
			assert.Equal(t, tt.expected, r.IsRecurring(tt.threshold))
		})
	}
}

func TestDefaultSeed(t *testing.T) {
	seed := DefaultSeed()
	if assert.Len(t, seed, 2) {
		assert.Equal(t, "headache", seed[0].Keyword)
		assert.Equal(t, int64(3), seed[0].SearchCount)
		assert.Equal(t, "fatigue", seed[1].Keyword)
		assert.Equal(t, int64(2), seed[1].SearchCount)
	}
}
