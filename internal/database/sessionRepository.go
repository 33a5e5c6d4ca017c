package database

import (
	"sync"
	"time"

	"github.com/Hunterthief/Weave-Wonder-sub000/internal/entity"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/pkg/placement"
)

// Session is one customer's editing workspace: a placement and a gesture
// controller for each garment side. Callers must hold Lock while touching it.
type Session struct {
	sync.Mutex

	ID       string
	Front    *placement.Controller
	Back     *placement.Controller
	LastSeen time.Time
}

func NewSession(id string, bounds entity.Bounds, minSize int) *Session {
	origin := entity.Point{X: bounds.Left, Y: bounds.Top}
	return &Session{
		ID:       id,
		Front:    placement.NewController(placement.New(entity.SideFront, bounds, minSize), origin),
		Back:     placement.NewController(placement.New(entity.SideBack, bounds, minSize), origin),
		LastSeen: time.Now(),
	}
}

func (s *Session) Controller(side entity.Side) *placement.Controller {
	if side == entity.SideBack {
		return s.Back
	}
	return s.Front
}

func (s *Session) Placement(side entity.Side) *placement.Placement {
	return s.Controller(side).Placement()
}

func (s *Session) View() entity.SessionResponse {
	return entity.SessionResponse{
		ID:    s.ID,
		Front: s.Front.Placement().View(s.Front.Phase()),
		Back:  s.Back.Placement().View(s.Back.Phase()),
	}
}

// SessionRepository keeps design sessions in process memory.
type SessionRepository interface {
	Create(s *Session)
	Get(id string) (*Session, bool)
	Delete(id string)
	Expire(olderThan time.Time) int
}

type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionRepository() SessionRepository {
	return &memorySessionRepository{sessions: make(map[string]*Session)}
}

func (r *memorySessionRepository) Create(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
}

func (r *memorySessionRepository) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

func (r *memorySessionRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Expire drops sessions not used since olderThan and returns how many went.
func (r *memorySessionRepository) Expire(olderThan time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, s := range r.sessions {
		s.Lock()
		stale := s.LastSeen.Before(olderThan)
		s.Unlock()
		if stale {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}
