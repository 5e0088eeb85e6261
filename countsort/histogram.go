package countsort

// Histogram summarises a key frequency table.
type Histogram struct {
	Records      int    `json:"records"`
	DistinctKeys int    `json:"distinct_keys"`
	MinKey       uint16 `json:"min_key"`
	MaxKey       uint16 `json:"max_key"`
	TopKey       uint16 `json:"top_key"`
	TopCount     int    `json:"top_count"`
}

// histogramOf reads raw per-key frequencies, before any prefix pass.
// Ties for the most frequent key go to the smallest key.
func histogramOf(count []int) Histogram {
	var h Histogram
	for k, c := range count {
		if c == 0 {
			continue
		}
		if h.DistinctKeys == 0 {
			h.MinKey = uint16(k)
		}
		h.MaxKey = uint16(k)
		h.DistinctKeys++
		h.Records += c
		if c > h.TopCount {
			h.TopKey = uint16(k)
			h.TopCount = c
		}
	}
	return h
}
