// internal/httpserver/server.go
//
// HTTP server wiring for the Boggle backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: GET /game?dimensions=N, POST /game/new, POST /guess.
//   - Daily board: GET /daily (mounted from routes_daily.go).
//
// Notes:
//   - Boards live in the session store; the player's current game ID travels
//     in a signed session cookie (session.go). A guess may also name the game
//     explicitly with "gameId".
//   - Verdicts are sent as {"result":"ok"|"not-word"|"not-on-board"}.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/stgibson/boggle/internal/board"
	"github.com/stgibson/boggle/internal/config"
	"github.com/stgibson/boggle/internal/game"
	"github.com/stgibson/boggle/internal/store"
	"github.com/stgibson/boggle/internal/words"
)

// Server bundles router, game store, board generator and validator.
type Server struct {
	r         *chi.Mux
	cfg       *config.Config
	store     store.Store
	dict      *words.Dictionary
	gen       *board.Generator
	validator *game.Validator
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg *config.Config, st store.Store, dict *words.Dictionary) (*Server, error) {
	dist, err := board.ParseDistribution(cfg.Board.Distribution)
	if err != nil {
		return nil, err
	}
	s := &Server{
		r:         chi.NewRouter(),
		cfg:       cfg,
		store:     st,
		dict:      dict,
		gen:       board.NewGenerator(board.WithDistribution(dist)),
		validator: game.NewValidator(dict),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                          // add X-Request-ID
	s.r.Use(chimw.RealIP)                             // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                            // zerolog access log
	s.r.Use(chimw.Recoverer)                          // recover from panics
	s.r.Use(chimw.Timeout(cfg.Server.RequestTimeout)) // bound handler time
	s.r.Use(jsonContentType)                          // default JSON responses
	s.r.Use(cors(cfg.Server.ClientOrigin))            // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"boggle-go","endpoints":["/health","GET /game","POST /game/new","POST /guess","GET /daily","GET /debug/words"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// --- game ---
	s.r.Get("/game", s.handleStartGame)
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/guess", s.handleGuess)

	// --- daily board ---
	s.mountDaily(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	// Debug: dictionary size
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{"words": s.dict.Len()})
	})

	return s, nil
}

// ServeHTTP lets the Server be used directly as an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.r.ServeHTTP(w, r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Start serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requestLogger writes one debug line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			log.Debug().
				Str("reqId", chimw.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("elapsed", time.Since(start)).
				Msg("request")
		}()
		next.ServeHTTP(ww, r)
	})
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new and GET /game.
type newGameReq struct {
	Size *int `json:"size"` // optional; defaults to BOARD_DEFAULT_SIZE
}
type newGameRes struct {
	GameID       string     `json:"gameId"`
	Size         int        `json:"size"`
	Distribution string     `json:"distribution"`
	Daily        string     `json:"daily,omitempty"`
	Board        board.Grid `json:"board"`
}

// handleStartGame serves GET /game?dimensions=N.
// A missing dimensions parameter selects the default size.
func (s *Server) handleStartGame(w http.ResponseWriter, r *http.Request) {
	size := s.cfg.Board.DefaultSize
	if v := strings.TrimSpace(r.URL.Query().Get("dimensions")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_size")
			return
		}
		size = n
	}
	s.startGame(w, r, size)
}

// handleNewGame serves POST /game/new {"size":N}.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	size := s.cfg.Board.DefaultSize
	if req.Size != nil {
		size = *req.Size
	}
	s.startGame(w, r, size)
}

// startGame generates a board, stores it and binds it to the session cookie.
func (s *Server) startGame(w http.ResponseWriter, r *http.Request, size int) {
	if size > s.cfg.Board.MaxSize {
		writeError(w, http.StatusBadRequest, "invalid_size")
		return
	}
	g, err := game.New(s.gen, size)
	if errors.Is(err, board.ErrInvalidSize) {
		writeError(w, http.StatusBadRequest, "invalid_size")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("generate board")
		writeError(w, http.StatusInternalServerError, "generate_failed")
		return
	}
	s.registerGame(w, r, g)
}

// registerGame saves g, sets the session cookie and writes the game payload.
func (s *Server) registerGame(w http.ResponseWriter, r *http.Request, g *game.Game) {
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Str("gameId", g.ID).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	if err := s.setSession(w, g.ID); err != nil {
		log.Error().Err(err).Msg("sign session")
		writeError(w, http.StatusInternalServerError, "session_failed")
		return
	}
	log.Info().Str("gameId", g.ID).Int("size", g.Size).Str("distribution", g.Distribution).Msg("game created")

	writeJSON(w, http.StatusOK, newGameRes{
		GameID:       g.ID,
		Size:         g.Size,
		Distribution: g.Distribution,
		Daily:        g.Daily,
		Board:        g.Board,
	})
}

// guessReq/Res payloads for POST /guess.
type guessReq struct {
	GameID string  `json:"gameId"` // optional; defaults to the session cookie
	Guess  *string `json:"guess"`
}
type guessRes struct {
	Result game.Verdict `json:"result"` // "ok" | "not-word" | "not-on-board"
}

// handleGuess validates a guess against the caller's board.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.Guess == nil {
		writeError(w, http.StatusBadRequest, "invalid_input")
		return
	}

	id := req.GameID
	if id == "" {
		var ok bool
		if id, ok = s.sessionGameID(r); !ok {
			writeError(w, http.StatusUnauthorized, "no_session")
			return
		}
	}
	g, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("gameId", id).Msg("load game")
		writeError(w, http.StatusInternalServerError, "load_failed")
		return
	}

	verdict, err := s.checkGuess(g, *req.Guess)
	if errors.Is(err, game.ErrInvalidInput) {
		writeError(w, http.StatusBadRequest, "invalid_input")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "validate_failed")
		return
	}
	log.Debug().Str("gameId", g.ID).Str("result", verdict.String()).Msg("guess")
	writeJSON(w, http.StatusOK, guessRes{Result: verdict})
}

// checkGuess applies the configured minimum word length, then the engine.
func (s *Server) checkGuess(g *game.Game, guess string) (game.Verdict, error) {
	word := strings.TrimSpace(guess)
	if word != "" && len(word) < s.cfg.Game.MinWordLength {
		return game.NotWord, nil
	}
	return g.Check(s.validator, word)
}

// ------------------------------- small util --------------------------------

// writeJSON encodes v with the given status code.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError sends {"error": code}.
func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
