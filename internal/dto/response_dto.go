package dto

// AnswerSegmentDTO mirrors one segmented question-answer pair.
type AnswerSegmentDTO struct {
	QuestionNumber string  `json:"question_number,omitempty"`
	QuestionText   string  `json:"question_text"`
	StudentAnswer  string  `json:"student_answer"`
	Score          float64 `json:"score"`
	MaxScore       float64 `json:"max_score"`
	Feedback       string  `json:"feedback"`
}

type TopicResultDTO struct {
	Topic    string             `json:"topic"`
	Score    float64            `json:"score"`
	MaxScore float64            `json:"max_score"`
	Feedback string             `json:"feedback"`
	Segments []AnswerSegmentDTO `json:"segments"`
}

// ExamAnalysisDTO is the full analysis record returned to both roles.
type ExamAnalysisDTO struct {
	Subject      string           `json:"subject"`
	StudentName  string           `json:"student_name"`
	StudentID    string           `json:"student_id"`
	ExamDate     string           `json:"exam_date"`
	OverallScore float64          `json:"overall_score"`
	Topics       []TopicResultDTO `json:"topics"`
}

// UserDTO is the login response payload.
type UserDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// AccessCodeDTO describes the live staff access code. SecondsLeft lets the
// dashboard render a countdown without re-deriving the expiry locally.
type AccessCodeDTO struct {
	Active      bool   `json:"active"`
	Code        string `json:"code,omitempty"`
	Expiry      int64  `json:"expiry,omitempty"`
	SecondsLeft int64  `json:"seconds_left,omitempty"`
}

// TopicFolderEntryDTO is one student's contribution inside a topic folder.
type TopicFolderEntryDTO struct {
	StudentID   string             `json:"student_id"`
	StudentName string             `json:"student_name"`
	Score       float64            `json:"score"`
	MaxScore    float64            `json:"max_score"`
	Feedback    string             `json:"feedback"`
	Segments    []AnswerSegmentDTO `json:"segments"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
