package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lanhoang/perfreview/internal/dto"
	"github.com/rs/zerolog/log"
)

const examDateLayout = "2006-01-02"

// SubmitExamRequest carries one script submission through the gateway. The
// file bytes stay owned by the caller, so a failed submission never consumes
// the selection.
type SubmitExamRequest struct {
	Document    []byte
	MIMEType    string
	FileName    string
	AccessCode  string
	StudentName string
	StudentID   string
}

// SubmissionService is the gateway in front of the analyzer: it gates on the
// access code, forwards the script, stamps the student identity and date on
// the result, and files it into the analysis store.
type SubmissionService interface {
	Submit(ctx context.Context, req SubmitExamRequest) (*dto.ExamAnalysisDTO, error)
}

type submissionService struct {
	accessCodes AccessCodeService
	analyzer    ExamAnalyzerService
	store       AnalysisStore
	now         func() time.Time
}

func NewSubmissionService(accessCodes AccessCodeService, analyzer ExamAnalyzerService, store AnalysisStore) SubmissionService {
	return &submissionService{
		accessCodes: accessCodes,
		analyzer:    analyzer,
		store:       store,
		now:         time.Now,
	}
}

func (s *submissionService) Submit(ctx context.Context, req SubmitExamRequest) (*dto.ExamAnalysisDTO, error) {
	if !s.accessCodes.Validate(req.AccessCode) {
		log.Warn().Str("studentID", req.StudentID).Msg("Submission rejected: invalid access code")
		return nil, ErrInvalidAccessCode
	}

	analysis, err := s.analyzer.AnalyzeExamSheet(ctx, req.Document, req.MIMEType, req.FileName, req.StudentName, req.StudentID)
	if err != nil {
		log.Error().Err(err).Str("studentID", req.StudentID).Str("fileName", req.FileName).Msg("Exam analysis failed")
		return nil, fmt.Errorf("%w: %v", ErrProcessingFailure, err)
	}

	// The collaborator decides subject and scores; identity and date are ours.
	analysis.StudentName = req.StudentName
	analysis.StudentID = req.StudentID
	analysis.ExamDate = s.now().Format(examDateLayout)

	if err := s.store.Upsert(*analysis); err != nil {
		return nil, fmt.Errorf("storing analysis: %w", err)
	}

	var resp dto.ExamAnalysisDTO
	if err := copier.Copy(&resp, analysis); err != nil {
		log.Error().Err(err).Msg("Submit: Error copying ExamAnalysis to DTO")
		return nil, fmt.Errorf("error preparing submission response: %w", err)
	}
	log.Info().Str("studentID", req.StudentID).Str("subject", analysis.Subject).Float64("overallScore", analysis.OverallScore).Msg("Submission analyzed and filed")
	return &resp, nil
}
