package base

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordPopulationHistogram(t *testing.T) {
	var s Stats
	s.RecordPopulation(3)
	s.RecordPopulation(3)
	s.RecordPopulation(8)

	hist := s.PopulationHistogram()
	assert.Equal(t, uint64(2), hist[2]) // count=3 -> index 2
	assert.Equal(t, uint64(1), hist[7]) // count=8 -> index 7
	for i, v := range hist {
		if i != 2 && i != 7 {
			assert.Zero(t, v)
		}
	}
}

func TestStatsCountersAreIndependentAcrossInstances(t *testing.T) {
	var a, b Stats
	a.Splits.Add(1)
	assert.Equal(t, uint64(1), a.Splits.Load())
	assert.Equal(t, uint64(0), b.Splits.Load())
}
