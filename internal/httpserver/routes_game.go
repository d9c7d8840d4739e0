// internal/httpserver/routes_game.go
//
// Game routes. One session owns one round; the session ID travels in the
// signed token set by POST /game/new.
//   - POST /game/new   → start a round ("normal" random word or "daily")
//   - POST /game/guess → evaluate a guess on the session's round
//   - GET  /game       → snapshot of the session's round

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-engine/internal/game"
	"github.com/robalobadob/wordle-engine/internal/results"
	"github.com/robalobadob/wordle-engine/internal/store"
	"github.com/robalobadob/wordle-engine/internal/words"
)

const (
	modeNormal = "normal"
	modeDaily  = "daily"
)

// maxAttemptsCap is the largest budget a client may request.
const maxAttemptsCap = 26

// errAlreadyGuessed rejects a repeated guess when REJECT_REPEATS is on.
var errAlreadyGuessed = errors.New("already guessed")

// mountGame registers the /game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Use(s.withSession)
		r.Post("/new", s.handleNewGame)
		r.Post("/guess", s.handleGuess)
		r.Get("/", s.handleState)
	})
}

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Mode        string `json:"mode"`        // "normal" | "daily"
	MaxAttempts int    `json:"maxAttempts"` // optional, server default when zero
}
type newGameRes struct {
	GameID      string     `json:"gameId"`
	Mode        string     `json:"mode"`
	Date        string     `json:"date,omitempty"`
	State       game.State `json:"state"`
	MaxAttempts int        `json:"maxAttempts"`
	Remaining   int        `json:"remaining"`
	Token       string     `json:"token"`
}

// handleNewGame starts a round for a new session and issues its token.
// A previous session named by the request is dropped.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	// An empty body means defaults.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	mode := strings.ToLower(strings.TrimSpace(req.Mode))
	if mode == "" {
		mode = modeNormal
	}
	var picker game.Picker
	var date string
	switch mode {
	case modeNormal:
		picker = s.bank
	case modeDaily:
		// Word and date come from one clock reading so they cannot straddle midnight.
		word, key, err := s.daily.Today()
		if err != nil {
			log.Error().Err(err).Msg("daily word")
			writeError(w, http.StatusServiceUnavailable, "empty_bank")
			return
		}
		picker, date = game.Fixed(word), key
	default:
		writeError(w, http.StatusBadRequest, "invalid_mode")
		return
	}

	budget := req.MaxAttempts
	if budget == 0 {
		budget = s.cfg.MaxAttempts
	}
	if budget > maxAttemptsCap {
		writeError(w, http.StatusBadRequest, "invalid_max_attempts")
		return
	}
	round, err := game.NewRound(picker, game.WithMaxAttempts(budget))
	switch {
	case errors.Is(err, game.ErrInvalidMaxAttempts):
		writeError(w, http.StatusBadRequest, "invalid_max_attempts")
		return
	case errors.Is(err, words.ErrEmptyBank):
		log.Error().Err(err).Msg("new game")
		writeError(w, http.StatusServiceUnavailable, "empty_bank")
		return
	case err != nil:
		log.Error().Err(err).Msg("new game")
		writeError(w, http.StatusInternalServerError, "new_game_failed")
		return
	}

	if old := sessionID(r); old != "" {
		_ = s.store.Delete(r.Context(), old)
	}
	sess := &store.Session{Mode: mode, Round: round, StartedAt: s.now()}
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	tok, exp, err := s.signToken(sess.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign session token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.setSessionCookie(w, tok, exp)

	log.Info().Str("gameId", sess.ID).Str("mode", mode).Int("maxAttempts", budget).Msg("round started")
	_ = json.NewEncoder(w).Encode(newGameRes{
		GameID:      sess.ID,
		Mode:        mode,
		Date:        date,
		State:       round.State(),
		MaxAttempts: round.MaxAttempts(),
		Remaining:   round.RemainingAttempts(),
		Token:       tok,
	})
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	Guess string `json:"guess"`
}
type guessRes struct {
	Marks     game.Result             `json:"marks"`
	State     game.State              `json:"state"`
	Remaining int                     `json:"remaining"`
	Letters   map[string]game.Verdict `json:"letters"`
	Answer    string                  `json:"answer,omitempty"`
}

// handleGuess evaluates a guess on the session's round and, when the round
// finishes, writes it to the results log (best effort).
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	if id == "" {
		writeError(w, http.StatusUnauthorized, "no_session")
		return
	}
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var res guessRes
	var finished *results.Entry
	err := s.store.Update(r.Context(), id, func(sess *store.Session) error {
		round := sess.Round
		if s.cfg.RejectRepeats && !round.State().Terminal() && round.HasGuessed(req.Guess) {
			return errAlreadyGuessed
		}
		marks, err := round.Evaluate(req.Guess)
		if err != nil {
			return err
		}
		res = guessRes{
			Marks:     marks,
			State:     round.State(),
			Remaining: round.RemainingAttempts(),
			Letters:   round.Letters().Map(),
		}
		if over, out := round.IsOver(); over {
			res.Answer = out.Target
			if !sess.Recorded {
				e, err := results.FromRound(sess.ID, sess.Mode, round, s.now())
				if err == nil {
					finished = &e
					sess.Recorded = true
				}
			}
		}
		return nil
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
		return
	case errors.Is(err, game.ErrInvalidGuess):
		writeError(w, http.StatusBadRequest, "invalid_guess")
		return
	case errors.Is(err, game.ErrRoundClosed):
		writeError(w, http.StatusConflict, "round_closed")
		return
	case errors.Is(err, errAlreadyGuessed):
		writeError(w, http.StatusUnprocessableEntity, "already_guessed")
		return
	case err != nil:
		log.Error().Err(err).Str("gameId", id).Msg("guess")
		writeError(w, http.StatusInternalServerError, "guess_failed")
		return
	}

	if finished != nil {
		log.Info().Str("gameId", id).Str("outcome", finished.Outcome).Int("attempts", finished.Attempts).Msg("round finished")
		if s.results != nil {
			if err := s.results.Record(r.Context(), *finished); err != nil {
				log.Warn().Err(err).Str("gameId", id).Msg("record result")
			}
		}
	}
	_ = json.NewEncoder(w).Encode(res)
}

// stateRes is the GET /game snapshot.
type stateRes struct {
	GameID      string                  `json:"gameId"`
	Mode        string                  `json:"mode"`
	State       game.State              `json:"state"`
	MaxAttempts int                     `json:"maxAttempts"`
	Remaining   int                     `json:"remaining"`
	History     []game.Attempt          `json:"history"`
	Letters     map[string]game.Verdict `json:"letters"`
	Answer      string                  `json:"answer,omitempty"`
}

// handleState returns a read-only snapshot of the session's round.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	id := sessionID(r)
	if id == "" {
		writeError(w, http.StatusUnauthorized, "no_session")
		return
	}
	var res stateRes
	err := s.store.Update(r.Context(), id, func(sess *store.Session) error {
		round := sess.Round
		res = stateRes{
			GameID:      sess.ID,
			Mode:        sess.Mode,
			State:       round.State(),
			MaxAttempts: round.MaxAttempts(),
			Remaining:   round.RemainingAttempts(),
			History:     round.History(),
			Letters:     round.Letters().Map(),
		}
		if over, out := round.IsOver(); over {
			res.Answer = out.Target
		}
		return nil
	})
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if res.History == nil {
		res.History = []game.Attempt{}
	}
	_ = json.NewEncoder(w).Encode(res)
}

// writeError writes {"error": code} with status.
func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
