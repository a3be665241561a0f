package service

import (
	"testing"

	"github.com/lanhoang/perfreview/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeKVRepository is an in-memory stand-in for the gorm-backed repository.
type fakeKVRepository struct {
	values map[string][]byte
	puts   int
}

func newFakeKVRepository() *fakeKVRepository {
	return &fakeKVRepository{values: make(map[string][]byte)}
}

func (f *fakeKVRepository) Get(key string) ([]byte, error) {
	v, ok := f.values[key]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (f *fakeKVRepository) Put(key string, value []byte) error {
	f.values[key] = append([]byte(nil), value...)
	f.puts++
	return nil
}

func (f *fakeKVRepository) Delete(key string) error {
	delete(f.values, key)
	return nil
}

func emptyStore(t *testing.T) (AnalysisStore, *fakeKVRepository) {
	t.Helper()
	kv := newFakeKVRepository()
	// Persist an empty collection so tests start from a clean slate
	// rather than the seed.
	require.NoError(t, kv.Put(model.KeyExamAnalyses, []byte("[]")))
	kv.puts = 0
	return NewAnalysisStore(kv), kv
}

func record(studentID, subject string, score float64) model.ExamAnalysis {
	return model.ExamAnalysis{
		Subject:      subject,
		StudentName:  "Student " + studentID,
		StudentID:    studentID,
		ExamDate:     "2025-03-01",
		OverallScore: score,
		Topics: []model.TopicResult{
			{Topic: "Algebra", Score: score / 10, MaxScore: 10, Feedback: "ok", Segments: []model.AnswerSegment{}},
		},
	}
}

func TestAnalysisStore_SeedsWhenNothingPersisted(t *testing.T) {
	store := NewAnalysisStore(newFakeKVRepository())
	all := store.All()
	require.Len(t, all, 3)
	assert.Equal(t, []string{"Probability and Statistics", "Applied Calculus"}, store.Subjects())
}

func TestAnalysisStore_CorruptPersistedValueStartsEmpty(t *testing.T) {
	kv := newFakeKVRepository()
	require.NoError(t, kv.Put(model.KeyExamAnalyses, []byte("{not json")))

	store := NewAnalysisStore(kv)
	assert.Empty(t, store.All())
	assert.Empty(t, store.Subjects())
}

func TestAnalysisStore_UpsertInsertsAtFront(t *testing.T) {
	store, _ := emptyStore(t)

	require.NoError(t, store.Upsert(record("S1", "Math", 80)))
	require.NoError(t, store.Upsert(record("S2", "Math", 60)))

	all := store.All()
	require.Len(t, all, 2)
	assert.Equal(t, "S2", all[0].StudentID, "newest record should be first")
	assert.Equal(t, "S1", all[1].StudentID)
}

func TestAnalysisStore_UpsertReplacesInPlace(t *testing.T) {
	store, _ := emptyStore(t)

	require.NoError(t, store.Upsert(record("S1", "Math", 80)))
	require.NoError(t, store.Upsert(record("S2", "Math", 60)))

	// Same (student, subject): replaces without moving or growing.
	updated := record("S1", "Math", 95)
	require.NoError(t, store.Upsert(updated))

	all := store.All()
	require.Len(t, all, 2)
	assert.Equal(t, "S2", all[0].StudentID)
	assert.Equal(t, "S1", all[1].StudentID)
	assert.Equal(t, 95.0, all[1].OverallScore)

	// Same student, different subject: a separate record.
	require.NoError(t, store.Upsert(record("S1", "Physics", 70)))
	all = store.All()
	require.Len(t, all, 3)
	assert.Equal(t, "Physics", all[0].Subject)
}

func TestAnalysisStore_UpsertIsIdempotent(t *testing.T) {
	store, _ := emptyStore(t)
	rec := record("S1", "Math", 80)

	require.NoError(t, store.Upsert(rec))
	require.NoError(t, store.Upsert(rec))

	all := store.All()
	require.Len(t, all, 1)
	assert.Equal(t, rec, all[0])
}

func TestAnalysisStore_EveryUpsertPersists(t *testing.T) {
	store, kv := emptyStore(t)

	require.NoError(t, store.Upsert(record("S1", "Math", 80)))
	require.NoError(t, store.Upsert(record("S2", "Math", 60)))
	assert.Equal(t, 2, kv.puts)
}

func TestAnalysisStore_Queries(t *testing.T) {
	store, _ := emptyStore(t)
	require.NoError(t, store.Upsert(record("S1", "Math", 80)))
	require.NoError(t, store.Upsert(record("S1", "Physics", 75)))
	require.NoError(t, store.Upsert(record("S2", "Math", 60)))

	byStudent := store.FindByStudent("S1")
	require.Len(t, byStudent, 2)

	bySubject := store.FindBySubject("Math")
	require.Len(t, bySubject, 2)
	assert.Equal(t, "S2", bySubject[0].StudentID)

	assert.Equal(t, []string{"Math", "Physics"}, store.Subjects())
}

func TestAnalysisStore_EmptyQueriesNeverError(t *testing.T) {
	store, _ := emptyStore(t)
	assert.Empty(t, store.FindByStudent("nobody"))
	assert.Empty(t, store.FindBySubject("nothing"))
	assert.Empty(t, store.Subjects())
	assert.Empty(t, store.All())
}

func TestAnalysisStore_RoundTripThroughPersistence(t *testing.T) {
	kv := newFakeKVRepository()
	store := NewAnalysisStore(kv)
	require.NoError(t, store.Upsert(record("S9", "Chemistry", 88)))
	before := store.All()

	// A second store over the same repository must reproduce the
	// collection exactly, order included.
	reloaded := NewAnalysisStore(kv)
	assert.Equal(t, before, reloaded.All())
}

func TestAnalysisStore_AcceptsEmptyTopics(t *testing.T) {
	store, _ := emptyStore(t)
	rec := model.ExamAnalysis{Subject: "Math", StudentID: "S1", StudentName: "S", ExamDate: "2025-03-01", OverallScore: 40}
	require.NoError(t, store.Upsert(rec))
	require.Len(t, store.All(), 1)

	stats := ComputeStats(store.FindBySubject("Math"))
	require.NotNil(t, stats)
	assert.Empty(t, stats.TopicStats)
}
