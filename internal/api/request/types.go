package request

import "github.com/mcoot/players/internal/model"

// PlayerRequest is the request body for creating or replacing a player
type PlayerRequest struct {
	ID           int    `json:"id"`
	FirstName    string `json:"first_name"`
	MiddleName   string `json:"middle_name,omitempty"`
	LastName     string `json:"last_name"`
	DateOfBirth  string `json:"date_of_birth,omitempty"`
	SquadNumber  int    `json:"squad_number"`
	Position     string `json:"position,omitempty"`
	AbbrPosition string `json:"abbr_position,omitempty"`
	Team         string `json:"team,omitempty"`
	League       string `json:"league,omitempty"`
	Starting11   bool   `json:"starting11"`
}

// ToModel converts the request into a model.Player
func (r PlayerRequest) ToModel() *model.Player {
	return &model.Player{
		ID:           model.PlayerID(r.ID),
		FirstName:    r.FirstName,
		MiddleName:   r.MiddleName,
		LastName:     r.LastName,
		DateOfBirth:  r.DateOfBirth,
		SquadNumber:  r.SquadNumber,
		Position:     r.Position,
		AbbrPosition: r.AbbrPosition,
		Team:         r.Team,
		League:       r.League,
		Starting11:   r.Starting11,
	}
}
