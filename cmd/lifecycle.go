package cmd

import (
	"fmt"
	"time"

	"gametool/models"
	"gametool/repository"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func cancelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel <ticket-key>",
		Short: "Record the cancellation of a stored ticket",
		Args:  cobra.ExactArgs(1),
		RunE:  runCancel,
	}

	cmd.Flags().Int("retailer", 0, "Location number of the cancelling retailer")
	cmd.Flags().String("reason", "", "Cancellation reason")
	_ = cmd.MarkFlagRequired("retailer")

	return cmd
}

func runCancel(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	retailer, _ := cmd.Flags().GetInt("retailer")
	reason, _ := cmd.Flags().GetString("reason")

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	err = repository.NewCancellationRepository(a.db).Record(ctx, &models.Cancellation{
		TicketKeyString: args[0],
		CancelledAt:     time.Now().UTC().Truncate(time.Second),
		RetailerLocNo:   retailer,
		Reason:          reason,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Ticket %s %s\n", args[0], color.New(color.FgRed).Sprint("cancelled"))
	return nil
}

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <ticket-key>",
		Short: "Record a prize claim against a stored ticket",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}

	cmd.Flags().Int("retailer", 0, "Location number of the paying retailer")
	cmd.Flags().String("amount", "0", "Prize amount paid")
	_ = cmd.MarkFlagRequired("retailer")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	retailer, _ := cmd.Flags().GetInt("retailer")
	amountText, _ := cmd.Flags().GetString("amount")

	amount, err := decimal.NewFromString(amountText)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amountText, err)
	}
	if amount.IsNegative() {
		return fmt.Errorf("amount must not be negative, got %s", amountText)
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	err = repository.NewValidationRepository(a.db).Record(ctx, &models.Validation{
		TicketKeyString: args[0],
		ValidatedAt:     time.Now().UTC().Truncate(time.Second),
		RetailerLocNo:   retailer,
		PrizeAmount:     amount,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Ticket %s %s, paid $%s\n", args[0], color.New(color.FgGreen).Sprint("validated"), amount.StringFixed(2))
	return nil
}
