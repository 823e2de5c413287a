// internal/httpserver/routes_daily.go
//
// HTTP route for the daily board.
//   - GET /daily → today's board (UTC), identical for every player.
//
// The board is drawn from a generator seeded with daily.Seed(today, salt), so
// no board is stored between requests; each call registers a fresh game
// session holding that board.

package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/stgibson/boggle/internal/board"
	"github.com/stgibson/boggle/internal/daily"
	"github.com/stgibson/boggle/internal/game"
)

// dailyServer wraps dependencies for /daily.
type dailyServer struct {
	srv  *Server
	salt string
	size int
	now  func() time.Time
}

// mountDaily registers the /daily route.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:  s,
		salt: s.cfg.Daily.Salt,
		size: s.cfg.Daily.Size,
		now:  time.Now,
	}
	r.Get("/daily", dd.handleDaily)
}

// generator returns a generator seeded for the day containing t.
func (d *dailyServer) generator(t time.Time) *board.Generator {
	s1, s2 := daily.Seed(t, d.salt)
	return board.NewGenerator(
		board.WithDistribution(d.srv.gen.Distribution()),
		board.WithSeed(s1, s2),
	)
}

// handleDaily registers a session for today's board and returns it.
func (d *dailyServer) handleDaily(w http.ResponseWriter, r *http.Request) {
	now := d.now().UTC()
	g, err := game.New(d.generator(now), d.size)
	if err != nil {
		log.Error().Err(err).Msg("generate daily board")
		writeError(w, http.StatusInternalServerError, "generate_failed")
		return
	}
	g.Daily = daily.DateKey(now)
	d.srv.registerGame(w, r, g)
}
