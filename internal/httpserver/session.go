// internal/httpserver/session.go
//
// Signed session cookie carrying the player's current game ID.
// The cookie value is an HS256 JWT with claim "gid"; it expires together
// with the game (GAME_TTL; none when GAME_TTL <= 0). The board itself stays
// server-side.

package httpserver

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// sessionClaims is the JWT payload of the session cookie.
type sessionClaims struct {
	GameID string `json:"gid"`
	jwt.RegisteredClaims
}

// setSession signs gameID into the session cookie.
func (s *Server) setSession(w http.ResponseWriter, gameID string) error {
	now := time.Now()
	claims := sessionClaims{
		GameID:           gameID,
		RegisteredClaims: jwt.RegisteredClaims{IssuedAt: jwt.NewNumericDate(now)},
	}
	// GAME_TTL <= 0 keeps games forever, so the session never expires either.
	var exp time.Time
	if ttl := s.cfg.Game.TTL; ttl > 0 {
		exp = now.Add(ttl)
		claims.ExpiresAt = jwt.NewNumericDate(exp)
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(s.cfg.Session.Secret))
	if err != nil {
		return err
	}

	secure := s.cfg.Production()
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode // required for cross-site clients when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.Session.CookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		Expires:  exp,
	})
	return nil
}

// sessionGameID returns the game ID from a valid session cookie.
func (s *Server) sessionGameID(r *http.Request) (string, bool) {
	c, err := r.Cookie(s.cfg.Session.CookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	var claims sessionClaims
	tok, err := jwt.ParseWithClaims(c.Value, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Session.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid || claims.GameID == "" {
		return "", false
	}
	return claims.GameID, true
}
