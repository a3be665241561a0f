package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/lanhoang/perfreview/internal/model"
	"github.com/lanhoang/perfreview/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AnalysisStore owns the canonical collection of exam analyses. At most one
// record exists per (student, subject) pair; every successful upsert rewrites
// the whole persisted collection.
type AnalysisStore interface {
	Upsert(record model.ExamAnalysis) error
	FindByStudent(studentID string) []model.ExamAnalysis
	FindBySubject(subject string) []model.ExamAnalysis
	Subjects() []string
	All() []model.ExamAnalysis
}

type analysisStore struct {
	mu       sync.RWMutex
	analyses []model.ExamAnalysis
	kvRepo   repository.KVRepository
}

// NewAnalysisStore loads the persisted collection once. A never-written key
// falls back to the seed collection; a corrupt document falls back to an
// empty one so the process keeps serving.
func NewAnalysisStore(kvRepo repository.KVRepository) AnalysisStore {
	s := &analysisStore{kvRepo: kvRepo}

	raw, err := kvRepo.Get(model.KeyExamAnalyses)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Info().Msg("No persisted analyses found, starting from seed collection")
		s.analyses = seedAnalyses()
	case err != nil:
		log.Error().Err(err).Msg("Failed to load persisted analyses, starting from seed collection")
		s.analyses = seedAnalyses()
	default:
		if err := json.Unmarshal(raw, &s.analyses); err != nil {
			log.Warn().Err(err).Msg("Persisted analyses are corrupt, starting empty")
			s.analyses = []model.ExamAnalysis{}
		}
	}
	return s
}

// Upsert replaces the record for the same (student, subject) in place,
// otherwise prepends so fresh submissions sort first. The read-then-write
// runs under one lock so the two branches never interleave.
func (s *analysisStore) Upsert(record model.ExamAnalysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	for i := range s.analyses {
		if s.analyses[i].SameIdentity(record) {
			s.analyses[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		s.analyses = append([]model.ExamAnalysis{record}, s.analyses...)
	}

	if err := s.persistLocked(); err != nil {
		log.Error().Err(err).Str("studentID", record.StudentID).Str("subject", record.Subject).Msg("Failed to persist analysis collection")
		return fmt.Errorf("persisting analysis collection: %w", err)
	}
	log.Info().Str("studentID", record.StudentID).Str("subject", record.Subject).Bool("replaced", replaced).Msg("Analysis upserted")
	return nil
}

func (s *analysisStore) persistLocked() error {
	raw, err := json.Marshal(s.analyses)
	if err != nil {
		return err
	}
	return s.kvRepo.Put(model.KeyExamAnalyses, raw)
}

func (s *analysisStore) FindByStudent(studentID string) []model.ExamAnalysis {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.ExamAnalysis
	for _, a := range s.analyses {
		if a.StudentID == studentID {
			out = append(out, a)
		}
	}
	return out
}

func (s *analysisStore) FindBySubject(subject string) []model.ExamAnalysis {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.ExamAnalysis
	for _, a := range s.analyses {
		if a.Subject == subject {
			out = append(out, a)
		}
	}
	return out
}

// Subjects returns distinct subject names in first-seen store order.
func (s *analysisStore) Subjects() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var subjects []string
	for _, a := range s.analyses {
		if !seen[a.Subject] {
			seen[a.Subject] = true
			subjects = append(subjects, a.Subject)
		}
	}
	return subjects
}

func (s *analysisStore) All() []model.ExamAnalysis {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.ExamAnalysis, len(s.analyses))
	copy(out, s.analyses)
	return out
}
