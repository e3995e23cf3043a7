package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/gavel/internal/cite"
	"github.com/roach88/gavel/internal/issuer"
	"github.com/roach88/gavel/internal/law"
	"github.com/roach88/gavel/internal/lawspec"
	"github.com/roach88/gavel/internal/testutil"
)

// CiteOptions holds flags for the cite command.
type CiteOptions struct {
	*RootOptions
	Speed     int
	Limit     int
	Location  string
	Name      string
	BirthDate string
	Date      string
	Issuer    string
	Specs     string
}

// CiteResult is the JSON payload for the cite command.
type CiteResult struct {
	Citations []cite.Citation `json:"citations"`
	Lines     []string        `json:"lines"`
	Count     int             `json:"count"`
}

// NewCiteCommand creates the cite command.
func NewCiteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CiteOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "cite",
		Short: "Evaluate one incident and print any citations",
		Long: `Evaluate a single speeding incident against the configured laws.

The evaluation date defaults to today; pin it with --date for
reproducible output. Law parameters default to the standard speeding
law; point --specs at a CUE spec directory to override them.

Exit codes:
  0 - Evaluation succeeded (with or without citations)
  2 - Command error (bad flags, invalid specs)

Examples:
  gavel cite --speed 50 --limit 35 --location "Main St" --name Ray --birth-date 1990-03-15
  gavel cite --speed 50 --limit 35 --name Ray --birth-date 1990-03-15 --date 2024-03-15
  gavel cite --speed 50 --limit 35 --name Ray --birth-date 1990-03-15 --specs ./laws --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCite(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Speed, "speed", 0, "recorded incident speed")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "posted speed limit")
	cmd.Flags().StringVar(&opts.Location, "location", "", "incident location")
	cmd.Flags().StringVar(&opts.Name, "name", "", "citee name")
	cmd.Flags().StringVar(&opts.BirthDate, "birth-date", "", "citee birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.Date, "date", "", "evaluation date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&opts.Issuer, "issuer", "gavel", "issuing officer name")
	cmd.Flags().StringVar(&opts.Specs, "specs", "", "CUE law-spec directory")

	_ = cmd.MarkFlagRequired("speed")
	_ = cmd.MarkFlagRequired("limit")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("birth-date")

	return cmd
}

func runCite(opts *CiteOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	birthDate, err := time.Parse(cite.DateLayout, opts.BirthDate)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("invalid --birth-date %q", opts.BirthDate), err)
	}

	var clock law.Clock = law.SystemClock{}
	if opts.Date != "" {
		date, err := time.Parse(cite.DateLayout, opts.Date)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("invalid --date %q", opts.Date), err)
		}
		clock = testutil.NewFixedClock(date)
	}

	var specResult *lawspec.LoadResult
	if opts.Specs != "" {
		result, loadErrs := lawspec.LoadDir(opts.Specs, lawspec.LoadModeFailFast)
		if len(loadErrs) > 0 {
			return WrapExitError(ExitCommandError, "loading law specs", loadErrs[0])
		}
		specResult = result
		formatter.VerboseLog("Loaded %d CUE file(s) from %s", result.FileCount, opts.Specs)
	}

	laws, err := lawspec.BuildLaws(specResult, clock, nil)
	if err != nil {
		return WrapExitError(ExitCommandError, "building laws", err)
	}

	iss, err := issuer.New(opts.Issuer, laws)
	if err != nil {
		return WrapExitError(ExitCommandError, "building issuer", err)
	}

	incident := cite.NewIncident(opts.Speed, opts.Limit, opts.Location)
	entity := cite.NewEntity(opts.Name, birthDate)

	citations, err := iss.IssueCitations(incident, entity)
	if err != nil {
		return WrapExitError(ExitFailure, "evaluation failed", err)
	}

	lines := make([]string, len(citations))
	for i, c := range citations {
		lines[i] = cite.RenderLine(c)
	}

	if opts.Format == "json" {
		return formatter.Success(CiteResult{
			Citations: citations,
			Lines:     lines,
			Count:     len(citations),
		})
	}

	if len(citations) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No citations issued.")
		return nil
	}
	for _, line := range lines {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}
