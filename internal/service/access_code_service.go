package service

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/lanhoang/perfreview/config"
	"github.com/lanhoang/perfreview/internal/model"
	"github.com/lanhoang/perfreview/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	accessCodePrefix = "PRP-"
	codeBlockChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeBlockLen     = 4
)

// AccessCodeService owns the single staff access-code session. All three
// operations are total: invalid or expired state is absence, never an error.
type AccessCodeService interface {
	// Issue generates a fresh code, replacing any existing session.
	Issue() model.AccessCodeSession
	// Current returns the live session, or nil. An expired session is
	// cleared from memory and the store on this check; there is no
	// background timer.
	Current() *model.AccessCodeSession
	// Validate reports whether the submitted code matches the live session
	// exactly. Case-sensitive, no trimming.
	Validate(submittedCode string) bool
}

type accessCodeService struct {
	mu      sync.Mutex
	session *model.AccessCodeSession
	ttl     time.Duration
	kvRepo  repository.KVRepository
	now     func() time.Time
}

// NewAccessCodeService restores any persisted, still-valid session so a
// restart does not strand students mid-window.
func NewAccessCodeService(cfg *config.Config, kvRepo repository.KVRepository) AccessCodeService {
	s := &accessCodeService{
		ttl:    time.Duration(cfg.AccessCodeTTLMins) * time.Minute,
		kvRepo: kvRepo,
		now:    time.Now,
	}

	raw, err := kvRepo.Get(model.KeyStaffAccessCode)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Msg("Failed to load persisted access code session")
		}
		return s
	}

	var session model.AccessCodeSession
	if err := json.Unmarshal(raw, &session); err != nil {
		log.Warn().Err(err).Msg("Persisted access code session is corrupt, ignoring")
		return s
	}
	if session.ValidAt(s.now()) {
		s.session = &session
		log.Info().Time("expiry", session.ExpiresAt()).Msg("Restored access code session")
	}
	return s
}

func (s *accessCodeService) Issue() model.AccessCodeSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := model.AccessCodeSession{
		Code:   generateAccessCode(),
		Expiry: s.now().Add(s.ttl).UnixMilli(),
	}
	s.session = &session

	raw, _ := json.Marshal(session)
	if err := s.kvRepo.Put(model.KeyStaffAccessCode, raw); err != nil {
		log.Error().Err(err).Msg("Failed to persist access code session")
	}
	log.Info().Time("expiry", session.ExpiresAt()).Msg("Access code issued")
	return session
}

func (s *accessCodeService) Current() *model.AccessCodeSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLocked()
}

func (s *accessCodeService) currentLocked() *model.AccessCodeSession {
	if s.session == nil {
		return nil
	}
	if !s.session.ValidAt(s.now()) {
		s.session = nil
		if err := s.kvRepo.Delete(model.KeyStaffAccessCode); err != nil {
			log.Error().Err(err).Msg("Failed to clear expired access code session")
		}
		log.Info().Msg("Access code session expired")
		return nil
	}
	session := *s.session
	return &session
}

func (s *accessCodeService) Validate(submittedCode string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.currentLocked()
	return session != nil && session.Code == submittedCode
}

// generateAccessCode builds a code like PRP-K3QX-4821. Uniqueness is
// best-effort via randomness; a fresh issue simply replaces the old code.
func generateAccessCode() string {
	block := make([]byte, codeBlockLen)
	for i := range block {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeBlockChars))))
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken.
			panic(fmt.Sprintf("access code generation: %v", err))
		}
		block[i] = codeBlockChars[n.Int64()]
	}
	digits, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		panic(fmt.Sprintf("access code generation: %v", err))
	}
	return fmt.Sprintf("%s%s-%d", accessCodePrefix, block, 1000+digits.Int64())
}
