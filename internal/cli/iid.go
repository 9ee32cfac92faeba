package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avirell/wintype/descriptor"
	"github.com/avirell/wintype/identity"
	"github.com/avirell/wintype/signature"
)

// IIDResult holds the iid command payload.
type IIDResult struct {
	Name      string `json:"name"`
	IID       string `json:"iid"`
	Derived   bool   `json:"derived"`
	Signature string `json:"signature,omitempty"`
}

// NewIIDCommand creates the iid command.
func NewIIDCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "iid <types-file> <type-name>",
		Short: "Compute the interface identifier for a type",
		Long: `Compute the 128-bit interface identifier for a named type.

Non-generic types pass through their declared identifier; a closed
generic interface derives its identifier from the canonical signature
under the parameterized interface namespace.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIID(rootOpts, args[0], args[1], cmd)
		},
	}
	return cmd
}

func runIID(opts *RootOptions, path, name string, cmd *cobra.Command) error {
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

	iid, err := identity.IIDOf(typ)
	if err != nil {
		return fail(formatter, ExitFailure, ErrCodeIdentifier, err.Error())
	}

	result := IIDResult{
		Name:    name,
		IID:     iid.String(),
		Derived: typ.Kind == descriptor.KindPInterface && typ.InstanceID == nil,
	}
	if result.Derived {
		// The signature cannot fail here: IIDOf just built it.
		result.Signature, _ = signature.Build(typ)
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.IID)
	return nil
}
