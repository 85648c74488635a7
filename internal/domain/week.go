package domain

// Week is one Monday-to-Friday planning week.
// Index is the chronological position and the only sort key for weeks.
type Week struct {
	Index int    `json:"index"`
	ID    string `json:"id"`
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
	Note  string `json:"note,omitempty"`
}

// WeekIndex maps week ids to weeks.
type WeekIndex map[string]Week

// IndexWeeks builds a lookup table for weeks.
func IndexWeeks(weeks []Week) WeekIndex {
	idx := make(WeekIndex, len(weeks))
	for _, w := range weeks {
		idx[w.ID] = w
	}
	return idx
}
