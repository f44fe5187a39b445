package client

import (
	"context"
	"fmt"
	"sync"

	"professor-booking-server/internal/dto"

	"go.uber.org/zap"
)

// ProfessorLister fetches the professor directory.
type ProfessorLister interface {
	ListProfessors(ctx context.Context) ([]dto.Professor, error)
}

// ProfileFetcher fetches the logged-in professor's profile.
type ProfileFetcher interface {
	ProfessorProfile(ctx context.Context, dToken string) (*dto.Professor, error)
}

// AppState is the user-side session: the user token and the cached professor
// list. The cache is only ever replaced wholesale by RefreshProfessors.
type AppState struct {
	api    ProfessorLister
	logger *zap.Logger

	mu         sync.RWMutex
	token      string
	professors []dto.Professor
}

func NewAppState(api ProfessorLister, token string, logger *zap.Logger) *AppState {
	return &AppState{api: api, token: token, logger: logger}
}

func (s *AppState) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *AppState) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// Professors returns a copy of the cached list.
func (s *AppState) Professors() []dto.Professor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]dto.Professor(nil), s.professors...)
}

// Professor looks up a cached professor by id.
func (s *AppState) Professor(id string) (dto.Professor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.professors {
		if p.ID == id {
			return p, true
		}
	}
	return dto.Professor{}, false
}

// RefreshProfessors re-fetches the professor list. On error the previous cache is kept.
func (s *AppState) RefreshProfessors(ctx context.Context) error {
	professors, err := s.api.ListProfessors(ctx)
	if err != nil {
		s.logger.Warn("Professor list refresh failed", zap.Error(err))
		return fmt.Errorf("refresh professors: %w", err)
	}

	s.mu.Lock()
	s.professors = professors
	s.mu.Unlock()

	s.logger.Debug("Professor list refreshed", zap.Int("count", len(professors)))
	return nil
}

// ProfessorState is the professor-side session: the professor token and the
// cached profile.
type ProfessorState struct {
	api    ProfileFetcher
	logger *zap.Logger

	mu      sync.RWMutex
	dToken  string
	profile *dto.Professor
}

func NewProfessorState(api ProfileFetcher, dToken string, logger *zap.Logger) *ProfessorState {
	return &ProfessorState{api: api, dToken: dToken, logger: logger}
}

func (s *ProfessorState) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dToken
}

func (s *ProfessorState) SetToken(dToken string) {
	s.mu.Lock()
	s.dToken = dToken
	s.mu.Unlock()
}

// Profile returns the cached profile, if one has been fetched.
func (s *ProfessorState) Profile() (dto.Professor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return dto.Professor{}, false
	}
	return *s.profile, true
}

// RefreshProfile re-fetches the profile. Without a token it fails with
// ErrUnauthenticated and sends nothing.
func (s *ProfessorState) RefreshProfile(ctx context.Context) error {
	dToken := s.Token()
	if dToken == "" {
		return ErrUnauthenticated
	}

	profile, err := s.api.ProfessorProfile(ctx, dToken)
	if err != nil {
		s.logger.Warn("Profile refresh failed", zap.Error(err))
		return fmt.Errorf("refresh profile: %w", err)
	}

	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()
	return nil
}
