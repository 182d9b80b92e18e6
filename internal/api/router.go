package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/palabras/internal/api/apierr"
	"github.com/mcoot/palabras/internal/api/handler"
	"github.com/mcoot/palabras/internal/api/response"
	"github.com/mcoot/palabras/internal/middleware"
	"github.com/mcoot/palabras/internal/services/game"
)

// WordCounter reports the size of the loaded dictionary
type WordCounter interface {
	WordCount() int
}

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController game.ControllerInterface
	Dictionary     WordCounter
}

// HealthResponse is the body of the health endpoint
type HealthResponse struct {
	Status          string `json:"status"`
	DictionaryWords int    `json:"dictionary_words"`
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(apierr.NotFoundHandler)
	r.MethodNotAllowedHandler = http.HandlerFunc(apierr.MethodNotAllowedHandler)

	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.NotFoundHandler = http.HandlerFunc(apierr.NotFoundHandler)
	api.MethodNotAllowedHandler = http.HandlerFunc(apierr.MethodNotAllowedHandler)
	api.Use(middleware.Recovery(cfg.Logger, apierr.PanicHandler))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/game", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/game/moves", gameHandler.Play).Methods(http.MethodPost)
	api.HandleFunc("/game/computer", gameHandler.Computer).Methods(http.MethodPost)
	api.HandleFunc("/game/exchange", gameHandler.Exchange).Methods(http.MethodPost)
	api.HandleFunc("/game/pass", gameHandler.Pass).Methods(http.MethodPost)
	api.HandleFunc("/game/reset", gameHandler.Reset).Methods(http.MethodPost)

	api.HandleFunc("/health", healthHandler(cfg.Dictionary)).Methods(http.MethodGet)

	return r
}

func healthHandler(dict WordCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		resp := HealthResponse{Status: "ok"}
		if dict != nil {
			resp.DictionaryWords = dict.WordCount()
		}
		response.JSON(w, http.StatusOK, resp)
	}
}
