package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lanhoang/perfreview/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccessCodes struct {
	accepted string
}

func (f *fakeAccessCodes) Issue() model.AccessCodeSession    { return model.AccessCodeSession{} }
func (f *fakeAccessCodes) Current() *model.AccessCodeSession { return nil }
func (f *fakeAccessCodes) Validate(code string) bool         { return code == f.accepted }

type fakeAnalyzer struct {
	result *model.ExamAnalysis
	err    error
	calls  int
}

func (f *fakeAnalyzer) AnalyzeExamSheet(ctx context.Context, document []byte, mimeType, fileName, studentName, studentID string) (*model.ExamAnalysis, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	result := *f.result
	return &result, nil
}

func analyzerResult() *model.ExamAnalysis {
	return &model.ExamAnalysis{
		Subject:      "Linear Algebra",
		OverallScore: 77,
		Topics: []model.TopicResult{
			{Topic: "Eigenvalues", Score: 7, MaxScore: 10, Feedback: "solid", Segments: []model.AnswerSegment{
				{QuestionText: "Q1", StudentAnswer: "A1", Score: 7, MaxScore: 10, Feedback: "ok"},
			}},
		},
	}
}

func submitRequest(code string) SubmitExamRequest {
	return SubmitExamRequest{
		Document:    []byte("fake-scan"),
		MIMEType:    "image/jpeg",
		FileName:    "script.jpg",
		AccessCode:  code,
		StudentName: "Dana Cruz",
		StudentID:   "STU-2001",
	}
}

func TestSubmit_InvalidAccessCode(t *testing.T) {
	store, _ := emptyStore(t)
	analyzer := &fakeAnalyzer{result: analyzerResult()}
	svc := NewSubmissionService(&fakeAccessCodes{accepted: "PRP-GOOD-1234"}, analyzer, store)

	_, err := svc.Submit(context.Background(), submitRequest("PRP-BAD-0000"))
	require.ErrorIs(t, err, ErrInvalidAccessCode)
	assert.Zero(t, analyzer.calls, "analyzer must not be called with a bad code")
	assert.Empty(t, store.All())
}

func TestSubmit_AnalyzerFailureIsProcessingFailure(t *testing.T) {
	store, _ := emptyStore(t)
	analyzer := &fakeAnalyzer{err: errors.New("gemini unavailable")}
	svc := NewSubmissionService(&fakeAccessCodes{accepted: "PRP-GOOD-1234"}, analyzer, store)

	_, err := svc.Submit(context.Background(), submitRequest("PRP-GOOD-1234"))
	require.ErrorIs(t, err, ErrProcessingFailure)
	assert.Empty(t, store.All(), "nothing is filed on failure")
}

func TestSubmit_StampsIdentityAndDateAndFiles(t *testing.T) {
	store, _ := emptyStore(t)
	analyzer := &fakeAnalyzer{result: analyzerResult()}
	svc := NewSubmissionService(&fakeAccessCodes{accepted: "PRP-GOOD-1234"}, analyzer, store).(*submissionService)
	svc.now = func() time.Time { return time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC) }

	resp, err := svc.Submit(context.Background(), submitRequest("PRP-GOOD-1234"))
	require.NoError(t, err)

	assert.Equal(t, "Linear Algebra", resp.Subject)
	assert.Equal(t, "Dana Cruz", resp.StudentName)
	assert.Equal(t, "STU-2001", resp.StudentID)
	assert.Equal(t, "2025-06-15", resp.ExamDate)
	assert.Equal(t, 77.0, resp.OverallScore)

	all := store.All()
	require.Len(t, all, 1)
	assert.Equal(t, "STU-2001", all[0].StudentID)
	assert.Equal(t, "2025-06-15", all[0].ExamDate)
}

func TestSubmit_ResubmissionReplaces(t *testing.T) {
	store, _ := emptyStore(t)
	analyzer := &fakeAnalyzer{result: analyzerResult()}
	svc := NewSubmissionService(&fakeAccessCodes{accepted: "PRP-GOOD-1234"}, analyzer, store)

	_, err := svc.Submit(context.Background(), submitRequest("PRP-GOOD-1234"))
	require.NoError(t, err)

	analyzer.result.OverallScore = 91
	_, err = svc.Submit(context.Background(), submitRequest("PRP-GOOD-1234"))
	require.NoError(t, err)

	all := store.All()
	require.Len(t, all, 1, "same (student, subject) resubmission replaces")
	assert.Equal(t, 91.0, all[0].OverallScore)
}
