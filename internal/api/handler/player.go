package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/players/internal/api/apierr"
	"github.com/mcoot/players/internal/api/request"
	"github.com/mcoot/players/internal/api/response"
	"github.com/mcoot/players/internal/middleware"
	"github.com/mcoot/players/internal/model"
	"github.com/mcoot/players/internal/services/roster"
)

// PlayerHandler handles the /players endpoints
type PlayerHandler struct {
	roster *roster.Service
	logger *slog.Logger
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(roster *roster.Service, logger *slog.Logger) *PlayerHandler {
	return &PlayerHandler{
		roster: roster,
		logger: logger,
	}
}

// List handles GET /players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.roster.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersFromModel(players))
}

// Get handles GET /players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := intVar(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	player, err := h.roster.Get(r.Context(), model.PlayerID(id))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// GetBySquadNumber handles GET /players/squadNumber/{squadNumber}
func (h *PlayerHandler) GetBySquadNumber(w http.ResponseWriter, r *http.Request) {
	squadNumber, err := intVar(r, "squadNumber")
	if err != nil {
		WriteError(w, err)
		return
	}

	player, err := h.roster.GetBySquadNumber(r.Context(), squadNumber)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Create handles POST /players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := decodePlayer(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	if req.ID <= 0 {
		WriteError(w, NewInvalidRequestError("id must be a positive integer"))
		return
	}

	player := req.ToModel()
	if err := h.roster.Create(r.Context(), player); err != nil {
		var conflict *model.ConflictError
		if errors.As(err, &conflict) {
			response.JSON(w, http.StatusConflict, response.PlayerFromModel(&conflict.Existing))
			return
		}
		h.writeError(w, r, err)
		return
	}

	response.Created(w, fmt.Sprintf("/players/%d", player.ID), response.PlayerFromModel(player))
}

// Update handles PUT /players/{id}
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := intVar(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	req, err := decodePlayer(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	if req.ID != 0 && req.ID != id {
		WriteError(w, NewInvalidRequestError("id in body does not match id in path"))
		return
	}

	if err := h.roster.Update(r.Context(), model.PlayerID(id), req.ToModel()); err != nil {
		h.writeError(w, r, err)
		return
	}

	response.NoContent(w)
}

// Delete handles DELETE /players/{id}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := intVar(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.roster.Delete(r.Context(), model.PlayerID(id)); err != nil {
		h.writeError(w, r, err)
		return
	}

	response.NoContent(w)
}

// writeError logs failures that map to a server error before writing them
func (h *PlayerHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if apierr.Status(err) >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.String("error", err.Error()))
	}
	WriteError(w, err)
}

func intVar(r *http.Request, name string) (int, error) {
	raw := mux.Vars(r)[name]
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, NewInvalidRequestError(name + " must be an integer")
	}
	return v, nil
}

func decodePlayer(r *http.Request) (request.PlayerRequest, error) {
	var req request.PlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, NewInvalidRequestError("invalid request body")
	}

	if req.FirstName == "" {
		return req, NewInvalidRequestError("first_name is required")
	}
	if req.LastName == "" {
		return req, NewInvalidRequestError("last_name is required")
	}
	if req.SquadNumber <= 0 {
		return req, NewInvalidRequestError("squad_number must be a positive integer")
	}
	return req, nil
}
