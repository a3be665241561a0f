package service

import (
	"math"

	"github.com/jinzhu/copier"
	"github.com/lanhoang/perfreview/internal/dto"
	"github.com/lanhoang/perfreview/internal/model"
	"github.com/rs/zerolog/log"
)

// ReviewService is the instructor-facing read surface: subject lists,
// derived statistics, and the topic-folder drill-down.
type ReviewService interface {
	Subjects() []string
	SubjectStats(subject string) *dto.SubjectStatsDTO
	SubjectAnalyses(subject string) []dto.ExamAnalysisDTO
	StudentAnalyses(studentID string) []dto.ExamAnalysisDTO
	TopicFolder(subject, topic string) []dto.TopicFolderEntryDTO
}

type reviewService struct {
	store AnalysisStore
}

func NewReviewService(store AnalysisStore) ReviewService {
	return &reviewService{store: store}
}

func (s *reviewService) Subjects() []string {
	return s.store.Subjects()
}

// SubjectStats filters the store by subject and derives the stats. The
// mastery rate is the share of scripts in the top histogram bucket; it is a
// caller-side derivation, not part of the stats engine.
func (s *reviewService) SubjectStats(subject string) *dto.SubjectStatsDTO {
	records := s.store.FindBySubject(subject)
	resp := &dto.SubjectStatsDTO{Subject: subject, TotalScripts: len(records)}

	stats := ComputeStats(records)
	if stats == nil {
		return resp
	}

	statsDTO := dto.StatsDTO{Average: stats.Average}
	for _, b := range stats.Bins {
		statsDTO.Bins = append(statsDTO.Bins, dto.HistogramBinDTO{Range: b.Range, Count: b.Count})
	}
	for _, t := range stats.TopicStats {
		statsDTO.TopicStats = append(statsDTO.TopicStats, dto.TopicStatDTO{Name: t.Name, Average: t.Average, MasteryCount: t.MasteryCount})
	}
	resp.Stats = &statsDTO

	topBucket := stats.Bins[len(stats.Bins)-1].Count
	resp.MasteryRate = int(math.Round(float64(topBucket) / float64(len(records)) * 100))
	return resp
}

func (s *reviewService) SubjectAnalyses(subject string) []dto.ExamAnalysisDTO {
	return toAnalysisDTOs(s.store.FindBySubject(subject))
}

func (s *reviewService) StudentAnalyses(studentID string) []dto.ExamAnalysisDTO {
	return toAnalysisDTOs(s.store.FindByStudent(studentID))
}

// TopicFolder collects, per student of a subject, the topic result matching
// the requested folder name. Students without that topic are skipped.
func (s *reviewService) TopicFolder(subject, topic string) []dto.TopicFolderEntryDTO {
	entries := []dto.TopicFolderEntryDTO{}
	for _, a := range s.store.FindBySubject(subject) {
		for _, t := range a.Topics {
			if t.Topic != topic {
				continue
			}
			entry := dto.TopicFolderEntryDTO{
				StudentID:   a.StudentID,
				StudentName: a.StudentName,
				Score:       t.Score,
				MaxScore:    t.MaxScore,
				Feedback:    t.Feedback,
				Segments:    []dto.AnswerSegmentDTO{},
			}
			for _, seg := range t.Segments {
				var segDTO dto.AnswerSegmentDTO
				copier.Copy(&segDTO, &seg)
				entry.Segments = append(entry.Segments, segDTO)
			}
			entries = append(entries, entry)
			break
		}
	}
	return entries
}

func toAnalysisDTOs(records []model.ExamAnalysis) []dto.ExamAnalysisDTO {
	dtos := make([]dto.ExamAnalysisDTO, 0, len(records))
	for i := range records {
		var d dto.ExamAnalysisDTO
		if err := copier.Copy(&d, &records[i]); err != nil {
			log.Error().Err(err).Str("studentID", records[i].StudentID).Msg("Error copying ExamAnalysis to DTO")
			continue
		}
		dtos = append(dtos, d)
	}
	return dtos
}
