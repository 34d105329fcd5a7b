package storage

import (
	"context"

	"github.com/mcoot/players/internal/model"
)

// Storage defines the interface for the player record store.
//
// Read methods see only committed state and return copies. Mutations go
// through Atomically so that each read-check-mutate sequence is applied
// entirely or not at all.
type Storage interface {
	// ListPlayers returns every player in insertion order
	ListPlayers(ctx context.Context) ([]model.Player, error)

	// GetPlayer returns model.ErrPlayerNotFound if no player has the ID
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)

	// GetPlayerBySquadNumber returns the single player wearing squadNumber.
	// It fails with model.ErrMultipleMatches when more than one does.
	GetPlayerBySquadNumber(ctx context.Context, squadNumber int) (*model.Player, error)

	// Atomically runs fn against a transaction and commits the staged
	// changes if fn returns nil. Nothing is applied if fn returns an error
	// or ctx is done before the commit.
	Atomically(ctx context.Context, fn func(tx Tx) error) error
}

// Tx is the view of the store inside Atomically
type Tx interface {
	// GetPlayer sees changes staged earlier in the same transaction
	GetPlayer(id model.PlayerID) (*model.Player, error)
	CountPlayers() (int, error)

	// AddPlayer stages an insert. It does not check for an existing player
	// with the same ID; callers look that up first.
	AddPlayer(p *model.Player)

	// RemovePlayer stages the removal of a player located earlier
	RemovePlayer(p *model.Player)

	// ApplyUpdate maps incoming onto existing, keeping existing's ID, and
	// stages the result
	ApplyUpdate(existing, incoming *model.Player)
}
