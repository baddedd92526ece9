package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"gametool/calendar"
	"gametool/config"

	"github.com/spf13/cobra"
)

func gamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "List the game catalogue",
		Long: `Games lists every game of the catalogue with its price, matrix and add-on.

With --draw N the day of draw N is printed for each game.`,
		Args: cobra.NoArgs,
		RunE: runGames,
	}

	cmd.Flags().Int("draw", 0, "Draw number to locate on each game's calendar")

	return cmd
}

func runGames(cmd *cobra.Command, args []string) error {
	drawNumber, _ := cmd.Flags().GetInt("draw")

	games, err := config.LoadGames(config.Get().GamesFile)
	if err != nil {
		return err
	}
	cal := calendar.New(time.UTC)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	header := "NAME\tNUMBER\tPRICE\tMATRIX\tADD-ON\tSCHEDULE"
	if drawNumber > 0 {
		header += fmt.Sprintf("\tDRAW %d", drawNumber)
	}
	fmt.Fprintln(w, header)

	for _, game := range games.Games() {
		addOn := "-"
		if game.HasRider() {
			addOn = fmt.Sprintf("%s $%s", game.Rider.Name, game.Rider.Price.StringFixed(2))
		}
		line := fmt.Sprintf("%s\t%d\t$%s\t%d/%d\t%s\t%s",
			game.Name, game.Number, game.BoardPrice.StringFixed(2), game.Picks, game.Pool, addOn, game.Schedule)

		if drawNumber > 0 {
			days, err := cal.DrawDays(game, drawNumber)
			if err != nil {
				line += "\t-"
			} else {
				line += "\t" + days[0].Date.Format("Mon 2006-01-02")
			}
		}
		fmt.Fprintln(w, line)
	}

	return w.Flush()
}
