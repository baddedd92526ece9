package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"gametool/models"
	"gametool/service"

	"github.com/spf13/cobra"
)

var defaultReportFields = []string{"ticketKeyString", "game", "date", "numberOfDraws", "ticketAmount", "ticketCost()"}

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <ticket-key>...",
		Short: "Report fields of stored tickets",
		Long: `Report prints one row per ticket with the requested fields.

Plain names address stored fields, names ending in "()" address derived
values such as carrierCost() or riderCost(). Use --list-fields to see them all.`,
		RunE: runReport,
	}

	cmd.Flags().StringSlice("fields", defaultReportFields, "Comma separated fields to report")
	cmd.Flags().Bool("list-fields", false, "List the fields that can be reported")

	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	fields, _ := cmd.Flags().GetStringSlice("fields")
	listFields, _ := cmd.Flags().GetBool("list-fields")

	out := cmd.OutOrStdout()
	if listFields {
		for _, name := range models.FieldNames() {
			fmt.Fprintln(out, name)
		}
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("at least one ticket key is required")
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	report, err := service.NewTicketService(a.uowFactory, a.deps).Report(ctx, args, fields)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(report.Fields, "\t"))
	for _, row := range report.Rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}
