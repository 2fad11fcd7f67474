package domain

// StatsPoint is one day of aggregated focus time as served by the backend.
// Date is a display label (e.g. "02 Jan") and is passed through untouched;
// the client performs no aggregation or sorting of its own.
type StatsPoint struct {
	Date          string `json:"date"`
	Sessions      int    `json:"sessions"`
	TotalDuration int    `json:"total_duration"`
}

// Minutes converts the day's focus seconds to whole minutes for charting.
func (p StatsPoint) Minutes() int {
	return p.TotalDuration / 60
}

// TotalFocusMinutes sums the focus minutes across a stats window.
func TotalFocusMinutes(points []StatsPoint) int {
	total := 0
	for _, p := range points {
		total += p.Minutes()
	}
	return total
}

// TotalSessions sums the session counts across a stats window.
func TotalSessions(points []StatsPoint) int {
	total := 0
	for _, p := range points {
		total += p.Sessions
	}
	return total
}
