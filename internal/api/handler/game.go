package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mcoot/palabras/internal/api/request"
	"github.com/mcoot/palabras/internal/api/response"
	"github.com/mcoot/palabras/internal/model"
	"github.com/mcoot/palabras/internal/services/game"
)

// GameHandler handles the single game's endpoints
type GameHandler struct {
	controller game.ControllerInterface
	logger     *slog.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(controller game.ControllerInterface, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		controller: controller,
		logger:     logger,
	}
}

// Get handles GET /api/v1/game
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.controller.GetGame(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameStateFromModel(g))
}

// Play handles POST /api/v1/game/moves
func (h *GameHandler) Play(w http.ResponseWriter, r *http.Request) {
	var req request.PlayMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	// An empty word is rejected by the dictionary check
	dir := model.Horizontal
	if d := strings.TrimSpace(req.Direction); d != "" {
		dir = model.Direction(strings.ToUpper(d))
	}
	if !dir.IsValid() {
		WriteError(w, model.ErrInvalidDirection)
		return
	}

	result, err := h.controller.PlayMove(r.Context(), model.Move{
		Word:      req.Word,
		Start:     model.Position{Row: req.Row, Col: req.Col},
		Direction: dir,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayResponse{
		Success: true,
		Word:    result.Word,
		Points:  result.Points,
	})
}

// Computer handles POST /api/v1/game/computer
func (h *GameHandler) Computer(w http.ResponseWriter, r *http.Request) {
	turn, err := h.controller.ComputerMove(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.ComputerResponseFromModel(turn))
}

// Exchange handles POST /api/v1/game/exchange
func (h *GameHandler) Exchange(w http.ResponseWriter, r *http.Request) {
	var req request.ExchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	returned, err := h.controller.ExchangeTiles(r.Context(), req.Tiles)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.ExchangeResponseFromModel(returned))
}

// Pass handles POST /api/v1/game/pass
func (h *GameHandler) Pass(w http.ResponseWriter, r *http.Request) {
	result, err := h.controller.Pass(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PassResponseFromModel(result))
}

// Reset handles POST /api/v1/game/reset
func (h *GameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if _, err := h.controller.Reset(r.Context()); err != nil {
		h.logger.Error("failed to reset game", slog.String("error", err.Error()))
		WriteError(w, err)
		return
	}
	response.OK(w)
}
