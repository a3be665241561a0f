package model

// AnswerSegment is one question-answer unit extracted from a scanned script.
// Immutable once produced by the analysis pipeline.
type AnswerSegment struct {
	QuestionNumber string  `json:"question_number,omitempty"`
	QuestionText   string  `json:"question_text"`
	StudentAnswer  string  `json:"student_answer"`
	Score          float64 `json:"score"`
	MaxScore       float64 `json:"max_score"`
	Feedback       string  `json:"feedback"`
}

// TopicResult groups the segments of one exam that belong to a single
// topic "folder". Topic names are unique within one ExamAnalysis.
type TopicResult struct {
	Topic    string          `json:"topic"`
	Score    float64         `json:"score"`
	MaxScore float64         `json:"max_score"`
	Feedback string          `json:"feedback"`
	Segments []AnswerSegment `json:"segments"`
}

// ExamAnalysis is one graded exam submission. Its storage identity is the
// (StudentID, Subject) pair; resubmissions replace the whole record.
type ExamAnalysis struct {
	Subject      string        `json:"subject"`
	StudentName  string        `json:"student_name"`
	StudentID    string        `json:"student_id"`
	ExamDate     string        `json:"exam_date"`
	OverallScore float64       `json:"overall_score"`
	Topics       []TopicResult `json:"topics"`
	RawText      string        `json:"raw_text,omitempty"`
}

// SameIdentity reports whether other would replace this record on upsert.
func (a ExamAnalysis) SameIdentity(other ExamAnalysis) bool {
	return a.StudentID == other.StudentID && a.Subject == other.Subject
}
