package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roach88/fourword/internal/game"
)

// NewPlayCommand creates the play command.
func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Load the word list and start guessing",
		Long: `Recreate the word tables, load the word list, then prompt for guesses.

Each guess must be exactly four lowercase letters. Enter q to quit.

Example:
  fourword play
  fourword play --db /tmp/words.db --words ./four.txt`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(rootOpts, cmd)
		},
	}

	return cmd
}

func runPlay(opts *RootOptions, cmd *cobra.Command) error {
	env, err := newEnvironment(opts, cmd)
	if err != nil {
		return err
	}
	defer env.close()

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, res, err := env.prepareStore(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			env.logger.Error("error closing database", "error", closeErr)
		}
	}()

	fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d valid words (%d rejected).\n", res.Loaded, res.Rejected)

	session := game.NewSession(st, cmd.InOrStdin(), cmd.OutOrStdout(), game.WithLogger(env.logger))
	if _, err := session.Run(ctx); err != nil {
		if ctx.Err() != nil {
			// Interrupted; not an input failure.
			return nil
		}
		return env.formatter.Fail(ExitFailure, ErrCodeGeneric, "error during user input", err)
	}

	return nil
}
