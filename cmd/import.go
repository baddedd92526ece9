package cmd

import (
	"fmt"
	"io"
	"os"

	"gametool/service"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import sales records from a CSV file",
		Long: `Import reads header-keyed CSV sales records and stores one ticket per record.

Records that cannot be parsed are skipped and logged, unless --stop-on-error
is given. Tickets already stored are counted as duplicates. Use "-" to read
from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().Int("batch-size", 0, "Tickets saved per transaction (default IMPORT_BATCH_SIZE)")
	cmd.Flags().Bool("stop-on-error", false, "Abort at the first rejected record")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	batchSize, _ := cmd.Flags().GetInt("batch-size")
	stopOnError, _ := cmd.Flags().GetBool("stop-on-error")

	var in io.Reader = os.Stdin
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open import file: %w", err)
		}
		defer f.Close()
		in = f
	}

	records, err := service.ReadRecords(in)
	if err != nil {
		return err
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if batchSize <= 0 {
		batchSize = a.cfg.ImportBatchSize
	}

	importService := service.NewImportService(a.uowFactory, a.deps)
	result, importErr := importService.Import(ctx, records, service.ImportOptions{
		BatchSize:   batchSize,
		StopOnError: stopOnError,
	})

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Read:       %d\n", result.Read)
	fmt.Fprintf(out, "Imported:   %s\n", color.New(color.FgGreen).Sprint(result.Imported))
	fmt.Fprintf(out, "Duplicates: %s\n", color.New(color.FgYellow).Sprint(result.Duplicates))
	fmt.Fprintf(out, "Rejected:   %s\n", color.New(color.FgRed).Sprint(result.Rejected))

	return importErr
}
