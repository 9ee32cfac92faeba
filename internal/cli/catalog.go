package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avirell/wintype/internal/catalog"
	"github.com/avirell/wintype/registry"
)

// CatalogOptions holds flags shared by the catalog subcommands.
type CatalogOptions struct {
	DBPath string
}

// NewCatalogCommand creates the catalog command and its subcommands.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CatalogOptions{}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Record and inspect computed identifiers",
		Long: `Maintain a durable catalog of computed identifiers.

Recording replays a whole type table into the catalog; rows are keyed
by (name, signature), so a type whose shape changed across recordings
keeps both rows and the drift is visible in the listing.`,
	}

	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "wintype.db", "catalog database path")

	cmd.AddCommand(newCatalogRecordCommand(rootOpts, opts))
	cmd.AddCommand(newCatalogListCommand(rootOpts, opts))

	return cmd
}

func newCatalogRecordCommand(rootOpts *RootOptions, opts *CatalogOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "record <types-file>",
		Short:         "Record every identifier from a type table",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogRecord(rootOpts, opts, args[0], cmd)
		},
	}
}

func newCatalogListCommand(rootOpts *RootOptions, opts *CatalogOptions) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List recorded identifiers",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogList(rootOpts, opts, name, cmd)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "list rows for one type name only")
	return cmd
}

// CatalogRecordResult holds the catalog record payload.
type CatalogRecordResult struct {
	Recorded int      `json:"recorded"`
	Skipped  []string `json:"skipped,omitempty"`
}

func runCatalogRecord(rootOpts *RootOptions, opts *CatalogOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	reg, err := registry.LoadFile(path)
	if err != nil {
		return fail(formatter, ExitCommandError, ErrCodeLoadFailed, err.Error())
	}

	cat, err := catalog.Open(opts.DBPath)
	if err != nil {
		return fail(formatter, ExitFailure, ErrCodeCatalog, err.Error())
	}
	defer cat.Close()

	result := CatalogRecordResult{}
	for _, row := range listRows(reg) {
		// Types without an identifier (enums, structs) have nothing to
		// record; types with row-level errors are skipped and reported.
		if row.Error != "" {
			result.Skipped = append(result.Skipped, fmt.Sprintf("%s: %s", row.Name, row.Error))
			continue
		}
		if row.IID == "" {
			continue
		}
		entry := catalog.Entry{
			FullName:  row.Name,
			Signature: row.Signature,
			IID:       row.IID,
			Derived:   row.Derived,
		}
		if err := cat.Record(cmd.Context(), entry); err != nil {
			return fail(formatter, ExitFailure, ErrCodeCatalog, err.Error())
		}
		formatter.VerboseLog("Recorded %s = %s", row.Name, row.IID)
		result.Recorded++
	}

	if rootOpts.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "recorded %d identifier(s) in %s\n", result.Recorded, opts.DBPath)
	for _, s := range result.Skipped {
		fmt.Fprintf(cmd.OutOrStdout(), "skipped %s\n", s)
	}
	return nil
}

// CatalogRow is one recorded identifier in the catalog list payload.
type CatalogRow struct {
	Name      string `json:"name"`
	Signature string `json:"signature"`
	IID       string `json:"iid"`
	Derived   bool   `json:"derived"`
}

func runCatalogList(rootOpts *RootOptions, opts *CatalogOptions, name string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	cat, err := catalog.Open(opts.DBPath)
	if err != nil {
		return fail(formatter, ExitFailure, ErrCodeCatalog, err.Error())
	}
	defer cat.Close()

	var entries []catalog.Entry
	if name != "" {
		entries, err = cat.ByName(cmd.Context(), name)
	} else {
		entries, err = cat.All(cmd.Context())
	}
	if err != nil {
		return fail(formatter, ExitFailure, ErrCodeCatalog, err.Error())
	}

	rows := make([]CatalogRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, CatalogRow{
			Name:      e.FullName,
			Signature: e.Signature,
			IID:       e.IID,
			Derived:   e.Derived,
		})
	}

	if rootOpts.Format == "json" {
		return formatter.Success(rows)
	}
	for _, row := range rows {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", row.Name, row.IID, row.Signature)
	}
	return nil
}
