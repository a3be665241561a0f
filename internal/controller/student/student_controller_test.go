package student

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lanhoang/perfreview/internal/dto"
	"github.com/lanhoang/perfreview/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubmissionService struct {
	lastReq service.SubmitExamRequest
	resp    *dto.ExamAnalysisDTO
	err     error
}

func (f *fakeSubmissionService) Submit(ctx context.Context, req service.SubmitExamRequest) (*dto.ExamAnalysisDTO, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeReviewService struct {
	byStudent map[string][]dto.ExamAnalysisDTO
}

func (f *fakeReviewService) Subjects() []string                           { return nil }
func (f *fakeReviewService) SubjectStats(string) *dto.SubjectStatsDTO     { return nil }
func (f *fakeReviewService) SubjectAnalyses(string) []dto.ExamAnalysisDTO { return nil }

func (f *fakeReviewService) TopicFolder(string, string) []dto.TopicFolderEntryDTO {
	return nil
}

func (f *fakeReviewService) StudentAnalyses(id string) []dto.ExamAnalysisDTO {
	return f.byStudent[id]
}

func newSubmissionRouter(t *testing.T, subSvc service.SubmissionService, revSvc service.ReviewService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := NewStudentController(subSvc, revSvc)

	r := gin.New()
	r.POST("/api/v1/submissions", ctrl.SubmitExam)
	r.GET("/api/v1/students/:student_id/analyses", ctrl.GetStudentAnalyses)
	return r
}

func multipartSubmission(t *testing.T, fields map[string]string, withFile bool) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if withFile {
		fw, err := w.CreateFormFile("file", "script.jpg")
		require.NoError(t, err)
		_, err = fw.Write([]byte("fake-image-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func submissionFields() map[string]string {
	return map[string]string{
		"access_code":  "PRP-AB12-3456",
		"student_name": "Dana Cruz",
		"student_id":   "STU-2001",
	}
}

func TestSubmitExam_Success(t *testing.T) {
	subSvc := &fakeSubmissionService{resp: &dto.ExamAnalysisDTO{Subject: "Math", StudentID: "STU-2001", OverallScore: 82}}
	r := newSubmissionRouter(t, subSvc, &fakeReviewService{})

	body, contentType := multipartSubmission(t, submissionFields(), true)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/submissions", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ExamAnalysisDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Math", resp.Subject)

	assert.Equal(t, "PRP-AB12-3456", subSvc.lastReq.AccessCode)
	assert.Equal(t, "script.jpg", subSvc.lastReq.FileName)
	assert.Equal(t, []byte("fake-image-bytes"), subSvc.lastReq.Document)
}

func TestSubmitExam_MissingFile(t *testing.T) {
	r := newSubmissionRouter(t, &fakeSubmissionService{}, &fakeReviewService{})

	body, contentType := multipartSubmission(t, submissionFields(), false)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/submissions", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitExam_InvalidAccessCodeMapsTo401(t *testing.T) {
	r := newSubmissionRouter(t, &fakeSubmissionService{err: service.ErrInvalidAccessCode}, &fakeReviewService{})

	body, contentType := multipartSubmission(t, submissionFields(), true)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/submissions", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubmitExam_ProcessingFailureMapsTo502(t *testing.T) {
	r := newSubmissionRouter(t, &fakeSubmissionService{err: service.ErrProcessingFailure}, &fakeReviewService{})

	body, contentType := multipartSubmission(t, submissionFields(), true)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/submissions", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetStudentAnalyses(t *testing.T) {
	rev := &fakeReviewService{byStudent: map[string][]dto.ExamAnalysisDTO{
		"STU-2001": {{Subject: "Math", StudentID: "STU-2001"}},
	}}
	r := newSubmissionRouter(t, &fakeSubmissionService{}, rev)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/students/STU-2001/analyses", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []dto.ExamAnalysisDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Math", resp[0].Subject)
}
