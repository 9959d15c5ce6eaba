package cmd

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/report-cleaner/internal/schema"
	"github.com/spf13/cobra"
)

// schemaCmd prints the Schema Map of a report kind.
var schemaCmd = &cobra.Command{
	Use:       "schema <bookings|sales>",
	Short:     "Show the expected columns of a report",
	Long:      `Print every expected raw column and the canonical field it is renamed to, followed by the fields normalized as amounts and as identifiers.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(schema.Bookings), string(schema.Sales)},
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := schema.ParseKind(args[0])
		if err != nil {
			return err
		}
		report, err := schema.Lookup(kind)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, c := range report.Columns {
			fmt.Fprintf(out, "%-55s -> %s\n", c.Raw, c.Canonical)
		}
		fmt.Fprintf(out, "\nfloat fields:      %s\n", strings.Join(report.FloatFields, ", "))
		fmt.Fprintf(out, "identifier fields: %s\n", strings.Join(report.IdentifierFields, ", "))
		if len(report.IntegerColumns) > 0 {
			fmt.Fprintf(out, "integer columns:   %s\n", strings.Join(report.IntegerColumns, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
