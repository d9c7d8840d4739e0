package cli

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-engine/internal/httpserver"
	"github.com/robalobadob/wordle-engine/internal/results"
	"github.com/robalobadob/wordle-engine/internal/store"
)

// newServeCmd creates the serve command.
func (a *App) newServeCmd() *cobra.Command {
	var addr, dbPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the game over HTTP",
		Long: `Serve the JSON game API. Each client gets its own session and round.

Endpoints:
  POST /game/new    start a round ({"mode":"normal"|"daily","maxAttempts":N})
  POST /game/guess  submit a guess ({"guess":"crane"})
  GET  /game        current round
  GET  /stats       results summary (needs DB_PATH)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runServe(cmd.Context(), addr, dbPath)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":"+a.cfg.Port, "Listen address")
	cmd.Flags().StringVar(&dbPath, "db", a.cfg.DBPath, "SQLite results log (default: DB_PATH, empty disables)")

	return cmd
}

func (a *App) runServe(ctx context.Context, addr, dbPath string) error {
	bank, err := a.loadBank("")
	if err != nil {
		return err
	}

	var rlog results.Log
	res, err := openResults(dbPath)
	if err != nil {
		return err
	}
	if res != nil {
		defer res.Close()
		rlog = res
	}

	srv := httpserver.New(a.cfg, bank, store.NewMemoryStore(store.WithTTL(a.cfg.SessionTTL)), rlog)
	log.Info().Str("addr", addr).Int("words", bank.Len()).Bool("results", res != nil).Msg("starting wordle server")
	return srv.Start(ctx, addr)
}
