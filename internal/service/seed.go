package service

import "github.com/lanhoang/perfreview/internal/model"

// seedAnalyses is the default collection used the first time the process
// starts with nothing persisted. It gives the dashboard something to show
// before any real script has been submitted.
func seedAnalyses() []model.ExamAnalysis {
	return []model.ExamAnalysis{
		{
			Subject:      "Probability and Statistics",
			StudentName:  "Alex Johnson",
			StudentID:    "STU-1024",
			ExamDate:     "2024-05-15",
			OverallScore: 85,
			Topics: []model.TopicResult{
				{Topic: "Mean, Median, Mode", Score: 9.5, MaxScore: 10, Feedback: "Perfect calculation of central tendencies.", Segments: []model.AnswerSegment{}},
				{Topic: "Measures of Variability", Score: 7, MaxScore: 10, Feedback: "Standard deviation formula was used incorrectly in Q3.", Segments: []model.AnswerSegment{}},
				{Topic: "Probability Distributions", Score: 9, MaxScore: 10, Feedback: "Excellent grasp of binomial theory.", Segments: []model.AnswerSegment{}},
			},
		},
		{
			Subject:      "Probability and Statistics",
			StudentName:  "Maria Garcia",
			StudentID:    "STU-1025",
			ExamDate:     "2024-05-15",
			OverallScore: 72,
			Topics: []model.TopicResult{
				{Topic: "Mean, Median, Mode", Score: 6, MaxScore: 10, Feedback: "Struggled with weighted means.", Segments: []model.AnswerSegment{}},
				{Topic: "Measures of Variability", Score: 8.5, MaxScore: 10, Feedback: "Strong understanding of variance.", Segments: []model.AnswerSegment{}},
				{Topic: "Probability Distributions", Score: 7, MaxScore: 10, Feedback: "Needs more practice with Poisson distribution.", Segments: []model.AnswerSegment{}},
			},
		},
		{
			Subject:      "Applied Calculus",
			StudentName:  "Alex Johnson",
			StudentID:    "STU-1024",
			ExamDate:     "2024-05-10",
			OverallScore: 92,
			Topics: []model.TopicResult{
				{Topic: "Derivatives", Score: 10, MaxScore: 10, Feedback: "Flawless chain rule application.", Segments: []model.AnswerSegment{}},
				{Topic: "Integration Techniques", Score: 8.5, MaxScore: 10, Feedback: "Minor error in constant of integration.", Segments: []model.AnswerSegment{}},
			},
		},
	}
}
