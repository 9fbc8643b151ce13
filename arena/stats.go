package arena

import "iter"

// Stats is a snapshot of an arena's chain.
type Stats struct {
	Regions       int     `json:"regions"`        // regions in the chain
	CapacityBytes int     `json:"capacity_bytes"` // total storage across all regions
	UsedBytes     int     `json:"used_bytes"`     // storage handed out since the last Reset, rounded to words
	CursorIndex   int     `json:"cursor_index"`   // position of the region being filled, -1 when empty
	Utilization   float64 `json:"utilization"`    // UsedBytes / CapacityBytes, 0 when empty
}

// Regions iterates over the chain from its first region.
func (a *Arena) Regions() iter.Seq[*Region] {
	return func(yield func(*Region) bool) {
		for r := a.begin; r != nil; r = r.next {
			if !yield(r) {
				return
			}
		}
	}
}

// Stats walks the chain and summarizes it.
func (a *Arena) Stats() Stats {
	s := Stats{CursorIndex: -1}
	i := 0
	for r := range a.Regions() {
		if r == a.end {
			s.CursorIndex = i
		}
		s.Regions++
		s.CapacityBytes += r.capacity * WordSize
		s.UsedBytes += r.count * WordSize
		i++
	}
	if s.CapacityBytes > 0 {
		s.Utilization = float64(s.UsedBytes) / float64(s.CapacityBytes)
	}
	return s
}
