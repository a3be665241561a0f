package service

import (
	"math"

	"github.com/lanhoang/perfreview/internal/model"
)

// Histogram bin labels, in bucket order. Buckets are half-open except the
// last, which is closed so a score of exactly 100 lands in it.
var histogramRanges = [5]string{"0-20%", "21-40%", "41-60%", "61-80%", "81-100%"}

// MasteryThreshold is the score ratio at or above which a topic
// contribution counts as mastered.
const MasteryThreshold = 0.8

type HistogramBin struct {
	Range string
	Count int
}

type TopicStat struct {
	Name         string
	Average      int
	MasteryCount int
}

// Stats is the derived view of a set of analyses. Bins always has five
// entries; TopicStats is ordered by first appearance across the input.
type Stats struct {
	Bins       []HistogramBin
	TopicStats []TopicStat
	Average    int
}

type topicAccumulator struct {
	total    float64
	count    int
	mastered int
}

// ComputeStats derives the histogram, per-topic mastery aggregates, and the
// rounded overall average from the given analyses. It is a pure function of
// its input; callers pre-filter by subject. Returns nil on empty input so
// callers render an empty state instead of zero-filled charts.
//
// Topic contributions with MaxScore == 0 are skipped entirely: they add
// nothing to the percentage sum, the contribution count, or the mastery
// count.
func ComputeStats(records []model.ExamAnalysis) *Stats {
	if len(records) == 0 {
		return nil
	}

	bins := make([]HistogramBin, len(histogramRanges))
	for i, r := range histogramRanges {
		bins[i] = HistogramBin{Range: r}
	}

	agg := make(map[string]*topicAccumulator)
	var topicOrder []string
	scoreSum := 0.0

	for _, a := range records {
		idx := int(math.Floor(a.OverallScore / 20))
		if idx > 4 {
			idx = 4
		}
		bins[idx].Count++
		scoreSum += a.OverallScore

		for _, t := range a.Topics {
			if t.MaxScore == 0 {
				continue
			}
			acc, ok := agg[t.Topic]
			if !ok {
				acc = &topicAccumulator{}
				agg[t.Topic] = acc
				topicOrder = append(topicOrder, t.Topic)
			}
			ratio := t.Score / t.MaxScore
			acc.total += ratio * 100
			acc.count++
			if ratio >= MasteryThreshold {
				acc.mastered++
			}
		}
	}

	topicStats := make([]TopicStat, 0, len(topicOrder))
	for _, name := range topicOrder {
		acc := agg[name]
		topicStats = append(topicStats, TopicStat{
			Name:         name,
			Average:      int(math.Round(acc.total / float64(acc.count))),
			MasteryCount: acc.mastered,
		})
	}

	return &Stats{
		Bins:       bins,
		TopicStats: topicStats,
		Average:    int(math.Round(scoreSum / float64(len(records)))),
	}
}
