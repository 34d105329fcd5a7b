package response

import "github.com/mcoot/players/internal/model"

// Player represents a player in API responses
type Player struct {
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

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:           int(p.ID),
		FirstName:    p.FirstName,
		MiddleName:   p.MiddleName,
		LastName:     p.LastName,
		DateOfBirth:  p.DateOfBirth,
		SquadNumber:  p.SquadNumber,
		Position:     p.Position,
		AbbrPosition: p.AbbrPosition,
		Team:         p.Team,
		League:       p.League,
		Starting11:   p.Starting11,
	}
}

// PlayersFromModel converts a slice of players, never returning nil
func PlayersFromModel(players []model.Player) []Player {
	out := make([]Player, len(players))
	for i := range players {
		out[i] = PlayerFromModel(&players[i])
	}
	return out
}

// HealthResponse is the response for the health endpoint
type HealthResponse struct {
	Status string `json:"status"`
}
