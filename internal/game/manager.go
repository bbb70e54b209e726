package game

import (
	"sync"

	"cczero/internal/xiangqi"
	"github.com/google/uuid"
)

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

func (m *Manager) NewGame() *GameState {
	g, err := m.NewGameFromFEN(xiangqi.StartFEN)
	if err != nil {
		panic(err)
	}
	return g
}

func (m *Manager) NewGameFromFEN(fen string) (*GameState, error) {
	g, err := newGameState(uuid.NewString(), fen)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
	return g, nil
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g, nil
}

// Play 在锁内走一步，move 为绝对坐标（如 "h2e2"）。
func (m *Manager) Play(id, move string) (*GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	if err := g.PlayString(move); err != nil {
		return g, err
	}
	return g, nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return ErrGameNotFound
	}
	delete(m.games, id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
