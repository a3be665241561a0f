package dto

// HistogramBinDTO is one bar of the score distribution chart.
type HistogramBinDTO struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

// TopicStatDTO is the aggregated mastery view of one topic across a subject.
type TopicStatDTO struct {
	Name         string `json:"name"`
	Average      int    `json:"average"`
	MasteryCount int    `json:"mastery_count"`
}

type StatsDTO struct {
	Bins       []HistogramBinDTO `json:"bins"`
	TopicStats []TopicStatDTO    `json:"topic_stats"`
	Average    int               `json:"average"`
}

// SubjectStatsDTO wraps the derived statistics for one subject. Stats is
// null when the subject has no analyses yet; clients render a neutral
// empty state rather than treating that as an error.
type SubjectStatsDTO struct {
	Subject      string    `json:"subject"`
	TotalScripts int       `json:"total_scripts"`
	MasteryRate  int       `json:"mastery_rate"`
	Stats        *StatsDTO `json:"stats"`
}
