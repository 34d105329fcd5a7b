package pages

import (
	"fmt"

	"github.com/a-h/templ"

	"github.com/mcoot/players/internal/model"
	"github.com/mcoot/players/internal/web/templates/layout"
)

// RosterData is the data for the roster page
type RosterData struct {
	layout.PageData
	Players []model.Player
}

// PlayerData is the data for a single player's page
type PlayerData struct {
	layout.PageData
	Player model.Player
}

func playerURL(id model.PlayerID) templ.SafeURL {
	return templ.URL(fmt.Sprintf("/roster/%d", id))
}
