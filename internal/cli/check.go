package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/fourword/internal/words"
)

// CheckResult is the membership answer for one word.
type CheckResult struct {
	Word       string `json:"word"`
	WellFormed bool   `json:"well_formed"`
	Valid      bool   `json:"valid"`
}

func (r CheckResult) String() string {
	switch {
	case !r.WellFormed:
		return fmt.Sprintf("%s: not a valid 4 letter word", r.Word)
	case r.Valid:
		return fmt.Sprintf("%s: in the list", r.Word)
	default:
		return fmt.Sprintf("%s: NOT in the list", r.Word)
	}
}

// CheckReport is the output of the check command.
type CheckReport struct {
	Results []CheckResult `json:"results"`
}

func (r CheckReport) String() string {
	lines := make([]string, len(r.Results))
	for i, res := range r.Results {
		lines[i] = res.String()
	}
	return strings.Join(lines, "\n")
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <word>...",
		Short: "Check words against an already loaded database",
		Long: `Check one or more words against the database without reloading it.

Run load (or play) first. Words that are not exactly four lowercase letters
are reported without querying the database.

Example:
  fourword check plan frog
  fourword check --format json plan`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, args []string, cmd *cobra.Command) error {
	env, err := newEnvironment(opts, cmd)
	if err != nil {
		return err
	}
	defer env.close()

	ctx := commandContext(cmd)
	st, err := env.openStore(ctx, false)
	if err != nil {
		return err
	}
	defer st.Close()

	report := CheckReport{Results: make([]CheckResult, 0, len(args))}
	for _, word := range args {
		res := CheckResult{Word: word, WellFormed: words.Valid(word)}
		if res.WellFormed {
			found, err := st.Lookup(ctx, word)
			if err != nil {
				env.logger.Warn("error checking if word is valid", "word", word, "error", err)
				return env.formatter.Fail(ExitFailure, ErrCodeQuery, "word lookup failed; has the word list been loaded?", err)
			}
			res.Valid = found
		}
		report.Results = append(report.Results, res)
	}

	return env.formatter.Success(report)
}
