package cli

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-engine/internal/daily"
	"github.com/robalobadob/wordle-engine/internal/game"
	"github.com/robalobadob/wordle-engine/internal/term"
)

// playOptions holds options for the play command.
type playOptions struct {
	wordsFile     string
	maxAttempts   int
	daily         bool
	rejectRepeats bool
	dbPath        string
}

// newPlayCmd creates the play command.
func (a *App) newPlayCmd() *cobra.Command {
	opts := &playOptions{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Long: `Play rounds in the terminal until you decline another one.

Examples:
  # Random word from the built-in list
  wordle play

  # Today's word, four attempts, repeated guesses refused
  wordle play --daily --max-attempts 4 --reject-repeats

  # Your own word list (one five-letter word per line)
  wordle play --words ./my-words.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlay(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.wordsFile, "words", "w", "", "Word list file (default: WORDS_FILE or built-in list)")
	cmd.Flags().IntVarP(&opts.maxAttempts, "max-attempts", "n", a.cfg.MaxAttempts, "Guesses allowed per round")
	cmd.Flags().BoolVar(&opts.daily, "daily", false, "Play the word of the day")
	cmd.Flags().BoolVar(&opts.rejectRepeats, "reject-repeats", a.cfg.RejectRepeats, "Refuse a guess already made this round")
	cmd.Flags().StringVar(&opts.dbPath, "db", a.cfg.DBPath, "SQLite results log (default: DB_PATH, empty disables)")

	return cmd
}

// runPlay wires the bank, picker and results log into a terminal game.
func (a *App) runPlay(ctx context.Context, opts *playOptions) error {
	// Human-readable logs on stderr so they never mix with the board.
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: a.stderr, NoColor: !a.tty}).
		With().Timestamp().Logger()

	bank, err := a.loadBank(opts.wordsFile)
	if err != nil {
		return err
	}

	var picker game.Picker = bank
	mode := "normal"
	if opts.daily {
		picker = daily.New(bank, a.cfg.DailySalt)
		mode = "daily"
	}

	g := &term.Game{
		In:            a.stdin,
		Picker:        picker,
		Mode:          mode,
		MaxAttempts:   opts.maxAttempts,
		RejectRepeats: opts.rejectRepeats,
	}
	var out io.Writer = a.stdout
	g.Render = &term.Renderer{}
	if a.tty {
		out, g.Render = term.Stdout()
	}
	g.Out = out

	res, err := openResults(opts.dbPath)
	if err != nil {
		return err
	}
	if res != nil {
		defer res.Close()
		g.Recorder = res
	}

	log.Debug().Int("words", bank.Len()).Str("mode", mode).Msg("starting terminal game")
	return g.Run(ctx)
}
