package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avirell/wintype/registry"
	"github.com/avirell/wintype/signature"
)

// ValidationIssue is one problem found in a type table.
type ValidationIssue struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// ValidationResult holds the validate command payload.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Types  int               `json:"types"`
	Issues []ValidationIssue `json:"issues,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <types-file>",
		Short: "Validate a type table",
		Long: `Validate a type table: the file must load and resolve, and every
declared type must produce a canonical signature. Identifier problems
(an interface without a declared guid, say) are reported per type.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	reg, err := registry.LoadFile(path)
	if err != nil {
		return fail(formatter, ExitCommandError, ErrCodeLoadFailed, err.Error())
	}

	result := ValidationResult{Valid: true, Types: reg.Len()}
	for _, name := range reg.Names() {
		typ, _ := reg.Lookup(name)
		if _, err := signature.Build(typ); err != nil {
			result.Valid = false
			result.Issues = append(result.Issues, ValidationIssue{Name: name, Message: err.Error()})
		}
	}

	if opts.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		if result.Valid {
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d type(s)\n", result.Types)
		} else {
			for _, issue := range result.Issues {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", issue.Name, issue.Message)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "FAIL: %d issue(s) in %d type(s)\n", len(result.Issues), result.Types)
		}
	}

	if !result.Valid {
		return NewExitError(ExitFailure, fmt.Sprintf("%d validation issue(s)", len(result.Issues)))
	}
	return nil
}
