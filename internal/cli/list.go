package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/avirell/wintype/descriptor"
	"github.com/avirell/wintype/identity"
	"github.com/avirell/wintype/registry"
	"github.com/avirell/wintype/signature"
)

// ListRow is one type in the list command payload.
type ListRow struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	IID       string `json:"iid,omitempty"`
	Derived   bool   `json:"derived,omitempty"`
	Signature string `json:"signature,omitempty"`
	Error     string `json:"error,omitempty"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <types-file>",
		Short: "List every declared type with its signature and identifier",
		Long: `List every type declared in a table with its canonical signature and,
where the type has one, its interface identifier.

Text output is one tab-separated line per type (name, kind, iid,
signature), sorted by name.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runList(opts *RootOptions, path string, cmd *cobra.Command) error {
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
	formatter.VerboseLog("Loaded %d type(s) from %s", reg.Len(), path)

	rows := listRows(reg)

	if opts.Format == "json" {
		return formatter.Success(rows)
	}
	writeListText(cmd.OutOrStdout(), rows)
	return nil
}

// listRows computes one row per declared type, in sorted name order.
// Row-level failures are reported in the row rather than aborting the
// listing.
func listRows(reg *registry.Registry) []ListRow {
	var rows []ListRow
	for _, name := range reg.Names() {
		typ, _ := reg.Lookup(name)
		row := ListRow{Name: name, Kind: typ.Kind.String()}

		sig, err := signature.Build(typ)
		if err != nil {
			row.Error = err.Error()
			rows = append(rows, row)
			continue
		}
		row.Signature = sig

		// Kinds with no identifier of their own (enums, structs) list
		// signature only.
		if typ.DeclaredID != nil || typ.InstanceID != nil || typ.Kind == descriptor.KindPInterface {
			iid, err := identity.IIDOf(typ)
			if err != nil {
				row.Error = err.Error()
			} else {
				row.IID = iid.String()
				row.Derived = typ.Kind == descriptor.KindPInterface && typ.InstanceID == nil
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func writeListText(w io.Writer, rows []ListRow) {
	for _, row := range rows {
		if row.Error != "" {
			fmt.Fprintf(w, "%s\t%s\terror: %s\n", row.Name, row.Kind, row.Error)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row.Name, row.Kind, row.IID, row.Signature)
	}
}
