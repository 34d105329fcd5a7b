package roster

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/players/internal/model"
	"github.com/mcoot/players/internal/storage"
)

// Service implements the player operations on top of a record store.
// Each mutation is a single read-check-mutate transaction.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new roster service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger.With(slog.String("component", "roster")),
	}
}

// List returns every player
func (s *Service) List(ctx context.Context) ([]model.Player, error) {
	return s.storage.ListPlayers(ctx)
}

// Get returns the player with the given ID
func (s *Service) Get(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, id)
}

// GetBySquadNumber returns the single player wearing squadNumber
func (s *Service) GetBySquadNumber(ctx context.Context, squadNumber int) (*model.Player, error) {
	player, err := s.storage.GetPlayerBySquadNumber(ctx, squadNumber)
	if errors.Is(err, model.ErrMultipleMatches) {
		s.logger.Error("squad number lookup is ambiguous",
			slog.Int("squad_number", squadNumber),
			slog.String("error", err.Error()))
	}
	return player, err
}

// Create stores a new player. If the ID is already taken the store is left
// untouched and a *model.ConflictError carrying the stored player is returned.
func (s *Service) Create(ctx context.Context, player *model.Player) error {
	err := s.storage.Atomically(ctx, func(tx storage.Tx) error {
		existing, err := tx.GetPlayer(player.ID)
		if err == nil {
			return &model.ConflictError{Existing: *existing}
		}
		if !errors.Is(err, model.ErrPlayerNotFound) {
			return err
		}
		tx.AddPlayer(player)
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("player created", slog.Int("player_id", int(player.ID)))
	return nil
}

// Update overwrites every field of the stored player except its ID
func (s *Service) Update(ctx context.Context, id model.PlayerID, incoming *model.Player) error {
	err := s.storage.Atomically(ctx, func(tx storage.Tx) error {
		existing, err := tx.GetPlayer(id)
		if err != nil {
			return err
		}
		tx.ApplyUpdate(existing, incoming)
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("player updated", slog.Int("player_id", int(id)))
	return nil
}

// Delete removes the player with the given ID
func (s *Service) Delete(ctx context.Context, id model.PlayerID) error {
	err := s.storage.Atomically(ctx, func(tx storage.Tx) error {
		existing, err := tx.GetPlayer(id)
		if err != nil {
			return err
		}
		tx.RemovePlayer(existing)
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("player deleted", slog.Int("player_id", int(id)))
	return nil
}
