package cmd

import (
	"fmt"

	"gametool/models"
	"gametool/service"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <ticket-key>",
		Short: "Reprint a stored ticket",
		Long: `Show renders a stored ticket in one of its views:

  ticket        the reprinted ticket
  cancellation  the cancellation notice of a cancelled ticket
  validation    the validation notices of a validated ticket
  prizes        the prizes won by the ticket
  comment       notes attached while the ticket was built`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cmd.Flags().String("view", "ticket", "View to render")
	cmd.Flags().Bool("draws", false, "Also print the days of the first and last draw")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	viewName, _ := cmd.Flags().GetString("view")
	showDraws, _ := cmd.Flags().GetBool("draws")

	view, err := models.ParseTicketView(viewName)
	if err != nil {
		return err
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	ticketService := service.NewTicketService(a.uowFactory, a.deps)
	text, ok, err := ticketService.Render(ctx, args[0], view)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if ok {
		fmt.Fprintln(out, text)
	} else {
		fmt.Fprintln(cmd.ErrOrStderr(), color.New(color.FgYellow).Sprintf("Ticket %s has no %s to show", args[0], view))
	}

	if !showDraws {
		return nil
	}

	ticket, err := ticketService.Load(ctx, args[0])
	if err != nil {
		return err
	}
	first, err := ticket.FirstDrawDay()
	if err != nil {
		return err
	}
	last, err := ticket.LastDrawDay()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nFirst draw: %d on %s\n", first.DrawNumber, first.Date.Format("Mon 2006-01-02"))
	fmt.Fprintf(out, "Last draw:  %d on %s\n", last.DrawNumber, last.Date.Format("Mon 2006-01-02"))

	return nil
}
