package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/fourword/internal/loader"
)

// LoadReport is the output of the load command.
type LoadReport struct {
	Database string `json:"database"`
	Source   string `json:"source"`
	loader.Result
}

func (r LoadReport) String() string {
	return fmt.Sprintf("Loaded %d words from %s into %s (%d rejected, %d failed)",
		r.Loaded, r.Source, r.Database, r.Rejected, r.Failed)
}

// NewLoadCommand creates the load command.
func NewLoadCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Recreate the word tables and load the word list",
		Long: `Recreate the word tables and load the word list without starting a game.

Prior contents of the word tables are discarded.

Example:
  fourword load --words ./four.txt
  fourword load --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(rootOpts, cmd)
		},
	}

	return cmd
}

func runLoad(opts *RootOptions, cmd *cobra.Command) error {
	env, err := newEnvironment(opts, cmd)
	if err != nil {
		return err
	}
	defer env.close()

	st, res, err := env.prepareStore(commandContext(cmd))
	if err != nil {
		return err
	}
	defer st.Close()

	return env.formatter.Success(LoadReport{
		Database: env.cfg.Database.Path(),
		Source:   env.cfg.Words.Path,
		Result:   res,
	})
}
