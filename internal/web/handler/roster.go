package handler

import (
	"cmp"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/players/internal/model"
	"github.com/mcoot/players/internal/services/roster"
	"github.com/mcoot/players/internal/web/templates/layout"
	"github.com/mcoot/players/internal/web/templates/pages"
)

// RosterHandler renders the read-only roster pages
type RosterHandler struct {
	roster *roster.Service
	logger *slog.Logger
}

// NewRosterHandler creates a new RosterHandler
func NewRosterHandler(roster *roster.Service, logger *slog.Logger) *RosterHandler {
	return &RosterHandler{
		roster: roster,
		logger: logger,
	}
}

// Index renders every player ordered by squad number
func (h *RosterHandler) Index(w http.ResponseWriter, r *http.Request) {
	players, err := h.roster.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list players", slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	slices.SortStableFunc(players, func(a, b model.Player) int {
		return cmp.Compare(a.SquadNumber, b.SquadNumber)
	})

	data := pages.RosterData{
		PageData: layout.PageData{Title: "Roster"},
		Players:  players,
	}
	render(w, r, pages.Roster(data))
}

// View renders one player
func (h *RosterHandler) View(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.NotFound(w, r)
		return
	}

	player, err := h.roster.Get(r.Context(), model.PlayerID(id))
	if errors.Is(err, model.ErrPlayerNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error("failed to get player", slog.Int("player_id", id), slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := pages.PlayerData{
		PageData: layout.PageData{Title: player.FullName()},
		Player:   *player,
	}
	render(w, r, pages.Player(data))
}
