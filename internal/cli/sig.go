package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avirell/wintype/descriptor"
	"github.com/avirell/wintype/registry"
	"github.com/avirell/wintype/signature"
)

// SigResult holds the sig command payload.
type SigResult struct {
	Name      string `json:"name"`
	Signature string `json:"signature"`
}

// NewSigCommand creates the sig command.
func NewSigCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sig <types-file> <type-name>",
		Short: "Compute the canonical signature for a type",
		Long: `Compute the canonical signature string for a named type.

The type table is loaded from the given YAML file; the type name may be
a declared type or a builtin (int32, string, ...).`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSig(rootOpts, args[0], args[1], cmd)
		},
	}
	return cmd
}

func runSig(opts *RootOptions, path, name string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	typ, err := lookupType(formatter, path, name)
	if err != nil {
		return err
	}

	sig, err := signature.Build(typ)
	if err != nil {
		return fail(formatter, ExitFailure, ErrCodeSignature, err.Error())
	}

	if opts.Format == "json" {
		return formatter.Success(SigResult{Name: name, Signature: sig})
	}
	fmt.Fprintln(cmd.OutOrStdout(), sig)
	return nil
}

// lookupType loads a type table and resolves one name from it, reporting
// failures through the formatter.
func lookupType(formatter *OutputFormatter, path, name string) (*descriptor.Type, error) {
	reg, err := registry.LoadFile(path)
	if err != nil {
		return nil, fail(formatter, ExitCommandError, ErrCodeLoadFailed, err.Error())
	}
	formatter.VerboseLog("Loaded %d type(s) from %s", reg.Len(), path)

	t, ok := reg.Lookup(name)
	if !ok {
		return nil, fail(formatter, ExitCommandError, ErrCodeUnknownType, fmt.Sprintf("type %q is not declared in %s", name, path))
	}
	return t, nil
}
