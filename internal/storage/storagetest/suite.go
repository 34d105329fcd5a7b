// Package storagetest holds the behaviour every storage backend must share
package storagetest

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/players/internal/model"
	"github.com/mcoot/players/internal/storage"
)

// Suite runs the storage contract against a backend built by NewStorage
type Suite struct {
	suite.Suite
	NewStorage func(t *testing.T) storage.Storage

	storage storage.Storage
	ctx     context.Context
}

var errAbort = errors.New("abort")

func (s *Suite) SetupTest() {
	s.storage = s.NewStorage(s.T())
	s.ctx = context.Background()
}

func (s *Suite) add(players ...model.Player) {
	err := s.storage.Atomically(s.ctx, func(tx storage.Tx) error {
		for i := range players {
			tx.AddPlayer(&players[i])
		}
		return nil
	})
	s.Require().NoError(err)
}

func messi() model.Player {
	return model.Player{
		ID:           10,
		FirstName:    "Lionel",
		MiddleName:   "Andrés",
		LastName:     "Messi",
		DateOfBirth:  "1987-06-24",
		SquadNumber:  10,
		Position:     "Right Winger",
		AbbrPosition: "RW",
		Team:         "Inter Miami CF",
		League:       "Major League Soccer",
		Starting11:   true,
	}
}

func (s *Suite) TestEmptyStore() {
	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Empty(players)

	_, err = s.storage.GetPlayer(s.ctx, 1)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *Suite) TestAddAndGetPlayer() {
	s.add(messi())

	retrieved, err := s.storage.GetPlayer(s.ctx, 10)
	s.Require().NoError(err)
	s.Equal(messi(), *retrieved)
}

func (s *Suite) TestListPlayersInInsertionOrder() {
	s.add(
		model.Player{ID: 3, FirstName: "Nicolás", SquadNumber: 3},
		model.Player{ID: 1, FirstName: "Emiliano", SquadNumber: 23},
	)
	s.add(model.Player{ID: 2, FirstName: "Nahuel", SquadNumber: 26})

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal(model.PlayerID(3), players[0].ID)
	s.Equal(model.PlayerID(1), players[1].ID)
	s.Equal(model.PlayerID(2), players[2].ID)
}

func (s *Suite) TestGetPlayerBySquadNumber() {
	s.add(messi(), model.Player{ID: 11, FirstName: "Julián", SquadNumber: 9})

	retrieved, err := s.storage.GetPlayerBySquadNumber(s.ctx, 9)
	s.Require().NoError(err)
	s.Equal(model.PlayerID(11), retrieved.ID)

	_, err = s.storage.GetPlayerBySquadNumber(s.ctx, 99)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *Suite) TestGetPlayerBySquadNumberMultipleMatches() {
	s.add(
		model.Player{ID: 1, FirstName: "A", SquadNumber: 5},
		model.Player{ID: 2, FirstName: "B", SquadNumber: 5},
	)

	_, err := s.storage.GetPlayerBySquadNumber(s.ctx, 5)
	s.ErrorIs(err, model.ErrMultipleMatches)
}

func (s *Suite) TestRemovePlayer() {
	s.add(messi(), model.Player{ID: 11, FirstName: "Julián", SquadNumber: 9})

	err := s.storage.Atomically(s.ctx, func(tx storage.Tx) error {
		p, err := tx.GetPlayer(10)
		if err != nil {
			return err
		}
		tx.RemovePlayer(p)
		return nil
	})
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, 10)
	s.ErrorIs(err, model.ErrPlayerNotFound)
	_, err = s.storage.GetPlayerBySquadNumber(s.ctx, 10)
	s.ErrorIs(err, model.ErrPlayerNotFound)

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal(model.PlayerID(11), players[0].ID)
}

func (s *Suite) TestApplyUpdateKeepsIDAndReindexes() {
	s.add(messi())

	incoming := model.Player{ID: 999, FirstName: "Leo", LastName: "Messi", SquadNumber: 30, Team: "FC Barcelona"}
	err := s.storage.Atomically(s.ctx, func(tx storage.Tx) error {
		p, err := tx.GetPlayer(10)
		if err != nil {
			return err
		}
		tx.ApplyUpdate(p, &incoming)
		return nil
	})
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, 10)
	s.Require().NoError(err)
	expected := incoming
	expected.ID = 10
	s.Equal(expected, *retrieved)

	_, err = s.storage.GetPlayer(s.ctx, 999)
	s.ErrorIs(err, model.ErrPlayerNotFound)
	_, err = s.storage.GetPlayerBySquadNumber(s.ctx, 10)
	s.ErrorIs(err, model.ErrPlayerNotFound)
	bySquad, err := s.storage.GetPlayerBySquadNumber(s.ctx, 30)
	s.Require().NoError(err)
	s.Equal(model.PlayerID(10), bySquad.ID)
}

func (s *Suite) TestFailedTransactionAppliesNothing() {
	s.add(messi())

	err := s.storage.Atomically(s.ctx, func(tx storage.Tx) error {
		tx.AddPlayer(&model.Player{ID: 1, FirstName: "Emiliano", SquadNumber: 23})
		p, err := tx.GetPlayer(10)
		if err != nil {
			return err
		}
		tx.RemovePlayer(p)
		return errAbort
	})
	s.ErrorIs(err, errAbort)

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal(model.PlayerID(10), players[0].ID)
}

func (s *Suite) TestCancelledContextAppliesNothing() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	err := s.storage.Atomically(ctx, func(tx storage.Tx) error {
		tx.AddPlayer(&model.Player{ID: 1, FirstName: "Emiliano", SquadNumber: 23})
		return nil
	})
	s.ErrorIs(err, context.Canceled)

	_, err = s.storage.GetPlayer(s.ctx, 1)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *Suite) TestTransactionReadsOwnWrites() {
	s.add(messi())

	err := s.storage.Atomically(s.ctx, func(tx storage.Tx) error {
		count, err := tx.CountPlayers()
		s.Require().NoError(err)
		s.Equal(1, count)

		tx.AddPlayer(&model.Player{ID: 1, FirstName: "Emiliano", SquadNumber: 23})
		p, err := tx.GetPlayer(1)
		s.Require().NoError(err)
		s.Equal("Emiliano", p.FirstName)

		existing, err := tx.GetPlayer(10)
		s.Require().NoError(err)
		tx.RemovePlayer(existing)
		_, err = tx.GetPlayer(10)
		s.ErrorIs(err, model.ErrPlayerNotFound)

		count, err = tx.CountPlayers()
		s.Require().NoError(err)
		s.Equal(1, count)
		return nil
	})
	s.Require().NoError(err)
}

func (s *Suite) TestReturnedPlayersAreCopies() {
	s.add(messi())

	retrieved, err := s.storage.GetPlayer(s.ctx, 10)
	s.Require().NoError(err)
	retrieved.FirstName = "changed"

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	players[0].LastName = "changed"

	again, err := s.storage.GetPlayer(s.ctx, 10)
	s.Require().NoError(err)
	s.Equal(messi(), *again)
}

func (s *Suite) TestConcurrentUpdatesAreSerialized() {
	start := messi()
	start.SquadNumber = 0
	s.add(start)

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.storage.Atomically(s.ctx, func(tx storage.Tx) error {
				p, err := tx.GetPlayer(10)
				if err != nil {
					return err
				}
				next := *p
				next.SquadNumber++
				tx.ApplyUpdate(p, &next)
				return nil
			})
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.NoError(err)
	}

	retrieved, err := s.storage.GetPlayer(s.ctx, 10)
	s.Require().NoError(err)
	s.Equal(writers, retrieved.SquadNumber)
}
