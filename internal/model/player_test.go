package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapFromKeepsID(t *testing.T) {
	existing := &Player{ID: 7, FirstName: "Rodrigo", LastName: "de Paul", SquadNumber: 7}
	incoming := &Player{
		ID:           99,
		FirstName:    "Leandro",
		LastName:     "Paredes",
		SquadNumber:  5,
		Position:     "Defensive Midfield",
		AbbrPosition: "DM",
		Team:         "AS Roma",
		League:       "Serie A",
	}

	existing.MapFrom(incoming)

	assert.Equal(t, PlayerID(7), existing.ID)
	expected := *incoming
	expected.ID = 7
	assert.Equal(t, expected, *existing)
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Lionel Andrés Messi", (&Player{FirstName: "Lionel", MiddleName: "Andrés", LastName: "Messi"}).FullName())
	assert.Equal(t, "Enzo Fernández", (&Player{FirstName: "Enzo", LastName: "Fernández"}).FullName())
}

func TestConflictErrorUnwraps(t *testing.T) {
	var err error = &ConflictError{Existing: Player{ID: 10}}

	assert.True(t, errors.Is(err, ErrPlayerExists))

	var ce *ConflictError
	assert.True(t, errors.As(err, &ce))
	assert.Equal(t, PlayerID(10), ce.Existing.ID)
	assert.Equal(t, "player 10 already exists", err.Error())
}
