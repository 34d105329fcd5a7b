package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/mcoot/players/internal/model"
	"github.com/mcoot/players/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players map[model.PlayerID]*model.Player
	order   []model.PlayerID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players: make(map[model.PlayerID]*model.Player),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) ListPlayers(ctx context.Context) ([]model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]model.Player, 0, len(s.order))
	for _, id := range s.order {
		players = append(players, *s.players[id])
	}
	return players, nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getPlayer(id)
}

func (s *Storage) GetPlayerBySquadNumber(ctx context.Context, squadNumber int) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matches []model.PlayerID
	for _, id := range s.order {
		if s.players[id].SquadNumber == squadNumber {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return nil, model.ErrPlayerNotFound
	case 1:
		player := *s.players[matches[0]]
		return &player, nil
	default:
		return nil, fmt.Errorf("%w: squad number %d is worn by players %v", model.ErrMultipleMatches, squadNumber, matches)
	}
}

// Atomically holds the write lock for the whole of fn and the commit, so
// concurrent transactions are serialized
func (s *Storage) Atomically(ctx context.Context, fn func(tx storage.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &tx{store: s, changes: storage.NewChangeset()}
	if err := fn(t); err != nil {
		return err
	}
	return s.commit(ctx, t.changes)
}

// commit applies staged changes. Callers must hold the write lock.
func (s *Storage) commit(ctx context.Context, cs *storage.Changeset) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, c := range cs.Changes() {
		player := c.Player
		switch c.Kind {
		case storage.ChangeAdd:
			s.players[player.ID] = &player
			s.order = append(s.order, player.ID)
		case storage.ChangeUpdate:
			s.players[player.ID] = &player
		case storage.ChangeRemove:
			delete(s.players, player.ID)
			s.order = slices.DeleteFunc(s.order, func(id model.PlayerID) bool { return id == player.ID })
		}
	}
	return nil
}

func (s *Storage) getPlayer(id model.PlayerID) (*model.Player, error) {
	p, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	player := *p
	return &player, nil
}

// tx reads committed state from the store under the write lock held by
// Atomically, overlaid with its own staged changes
type tx struct {
	store   *Storage
	changes *storage.Changeset
}

func (t *tx) GetPlayer(id model.PlayerID) (*model.Player, error) {
	if p, staged := t.changes.Lookup(id); staged {
		if p == nil {
			return nil, model.ErrPlayerNotFound
		}
		return p, nil
	}
	return t.store.getPlayer(id)
}

func (t *tx) CountPlayers() (int, error) {
	return len(t.store.players) + t.changes.Delta(), nil
}

func (t *tx) AddPlayer(p *model.Player) {
	t.changes.Add(p)
}

func (t *tx) RemovePlayer(p *model.Player) {
	t.changes.Remove(p)
}

func (t *tx) ApplyUpdate(existing, incoming *model.Player) {
	t.changes.ApplyUpdate(existing, incoming)
}
