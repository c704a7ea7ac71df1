package base

import "sync/atomic"

// Stats collects optional, process-observability counters for one tree's
// cell engine. Population histogram is gathered lazily, during Destroy's
// post-order teardown walk, exactly as the reference implementation does —
// "an autopsy, not a live gauge."
type Stats struct {
	CellsInUse   atomic.Uint64
	PushDowns    atomic.Uint64
	Splits       atomic.Uint64
	PushUps      atomic.Uint64
	MergeUps     atomic.Uint64
	MergeDowns   atomic.Uint64
	FailedMerges atomic.Uint64

	popDist [NodesPerCell]atomic.Uint64
}

// RecordPopulation records one cell's occupancy at teardown time.
func (s *Stats) RecordPopulation(count int) {
	s.popDist[count-1].Add(1)
}

// PopulationHistogram returns a snapshot where index i holds the number of
// cells torn down with i+1 occupied node slots.
func (s *Stats) PopulationHistogram() [NodesPerCell]uint64 {
	var out [NodesPerCell]uint64
	for i := range out {
		out[i] = s.popDist[i].Load()
	}
	return out
}
