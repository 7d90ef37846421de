package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"blackjack/engine"
	"blackjack/game"
	"blackjack/simulator"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// Server exposes the simulation engine over the same boundary the
// original UI used: one request record in, one result record out.
type Server struct {
	engine    *engine.Engine
	maxTrials int
}

func New(eng *engine.Engine, maxTrials int) *Server {
	return &Server{
		engine:    eng,
		maxTrials: maxTrials,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/api/health", s.handleHealth)
	r.Post("/api/simulate", s.handleSimulate)
	r.Get("/api/history", s.handleHistory)
	return r
}

// simulateRequest mirrors the form inputs of the front-end: cards as
// symbols, numbers already parsed by the JSON decoder.
type simulateRequest struct {
	PlayerCards []string `json:"player_cards"`
	DealerCard  string   `json:"dealer_card"`
	NumDecks    int      `json:"num_decks"`
	BetSize     float64  `json:"bet_size"`
	NumTrials   int      `json:"num_trials"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var in simulateRequest
	err := json.NewDecoder(r.Body).Decode(&in)
	if err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	req, err := toEngineRequest(in)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.NumTrials > s.maxTrials {
		writeError(w, http.StatusBadRequest,
			"num_trials exceeds the server limit of "+strconv.Itoa(s.maxTrials))
		return
	}

	result, err := s.engine.Run(r.Context(), req)
	if err != nil {
		if errors.Is(err, simulator.ErrInvalidParameter) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Error().Err(err).Msg("simulation failed")
		writeError(w, http.StatusInternalServerError, "simulation failed")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 500 {
			writeError(w, http.StatusBadRequest, "limit must be between 1 and 500")
			return
		}
		limit = n
	}

	records, err := s.engine.History(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("failed to load history")
		writeError(w, http.StatusInternalServerError, "failed to load history")
		return
	}
	if records == nil {
		records = []engine.SimulationRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func toEngineRequest(in simulateRequest) (simulator.Request, error) {
	cards := make([]game.Rank, 0, len(in.PlayerCards))
	for _, symbol := range in.PlayerCards {
		// Empty slots come from unfilled form fields; skip them like
		// the front-end does.
		if symbol == "" {
			continue
		}
		rank, err := game.ParseRank(symbol)
		if err != nil {
			return simulator.Request{}, err
		}
		cards = append(cards, rank)
	}

	dealer, err := game.ParseRank(in.DealerCard)
	if err != nil {
		return simulator.Request{}, err
	}

	return simulator.Request{
		PlayerCards: cards,
		DealerCard:  dealer,
		NumDecks:    in.NumDecks,
		BetSize:     in.BetSize,
		NumTrials:   in.NumTrials,
	}, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
