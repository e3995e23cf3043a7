package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/gavel/internal/lawspec"
)

// ValidationIssue is one problem found in a spec directory.
type ValidationIssue struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Files  int               `json:"files"`
	Issues []ValidationIssue `json:"issues,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <specs-dir>",
		Short: "Validate CUE law specs without evaluating anything",
		Long: `Validate a CUE law-spec directory.

Loads and compiles every law declaration, reporting syntax errors,
unknown laws, and inconsistent parameters (for example thresholds that
are not strictly increasing). Nothing is evaluated.

Exit codes:
  0 - Specs are valid
  1 - Specs contain errors
  2 - Command error (directory missing, no CUE files)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, specsDir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	result, loadErrs := lawspec.LoadDir(specsDir, lawspec.LoadModeCollectAll)

	// A nil result means loading never got off the ground (missing
	// directory, no files). That is a command error, not a spec error.
	if result == nil {
		msg := "failed to load specs"
		if len(loadErrs) > 0 {
			msg = loadErrs[0].Error()
		}
		if err := formatter.Error("LOAD", msg, nil); err != nil {
			return err
		}
		return NewExitError(ExitCommandError, msg)
	}

	formatter.VerboseLog("Found %d CUE file(s) in %s", result.FileCount, specsDir)

	issues := make([]ValidationIssue, 0, len(loadErrs))
	for _, err := range loadErrs {
		issues = append(issues, toValidationIssue(err))
	}

	vr := ValidationResult{
		Valid:  len(issues) == 0,
		Files:  result.FileCount,
		Issues: issues,
	}

	if opts.Format == "json" {
		if err := formatter.Success(vr); err != nil {
			return err
		}
	} else if vr.Valid {
		fmt.Fprintf(cmd.OutOrStdout(), "Valid: %d CUE file(s) checked.\n", vr.Files)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Invalid: %d issue(s) found.\n", len(vr.Issues))
		for _, issue := range vr.Issues {
			if issue.File != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s:%d: [%s] %s\n", issue.File, issue.Line, issue.Code, issue.Message)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "  [%s] %s\n", issue.Code, issue.Message)
			}
		}
	}

	if !vr.Valid {
		return NewExitError(ExitFailure, fmt.Sprintf("%d validation issue(s)", len(vr.Issues)))
	}
	return nil
}

// toValidationIssue flattens a load error into a reportable issue.
func toValidationIssue(err error) ValidationIssue {
	var specErr *lawspec.SpecError
	if errors.As(err, &specErr) {
		issue := ValidationIssue{Code: specErr.Code, Message: specErr.Message}
		if specErr.Pos.IsValid() {
			issue.File = specErr.Pos.Filename()
			issue.Line = specErr.Pos.Line()
		}
		return issue
	}
	return ValidationIssue{Code: "UNKNOWN", Message: err.Error()}
}
