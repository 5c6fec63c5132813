package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gehan/audioconv/internal/history"
	"github.com/gehan/audioconv/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent conversions from the history store",
	Long: `History lists recent conversion records from the local SQLite log,
newest first. Filter by --status or --format, raise --limit for more
rows, or --export the full history to a YAML file.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := appConfig(cmd)
	if cfg.History.Path == "" {
		return fmt.Errorf("history is disabled: set history.path in the config file")
	}

	store, err := history.NewStore(cfg.History)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()

	opts := history.QueryOptions{}
	opts.Format, _ = cmd.Flags().GetString("format")
	opts.Limit, _ = cmd.Flags().GetInt("limit")
	if status, _ := cmd.Flags().GetString("status"); status != "" {
		opts.Status = types.ConversionStatus(strings.ToLower(status))
	}

	if exportPath, _ := cmd.Flags().GetString("export"); exportPath != "" {
		if err := store.ExportYAML(ctx, exportPath, opts); err != nil {
			return err
		}
		fmt.Printf("History exported to %s\n", exportPath)
		return nil
	}

	records, err := store.Recent(ctx, opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No conversions recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-19s  %-9s  %-6s  %-30s  %s\n",
		"When", "Status", "Format", "Input", "Output")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))
	for _, r := range records {
		fmt.Fprintf(os.Stdout, "%-19s  %-9s  %-6s  %-30s  %s\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			r.Status, r.Format, truncate(r.Input, 30), truncate(r.Output, 40))
	}

	counts, err := store.Counts(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "\n%d shown; %d converted in total\n",
		len(records), counts[types.ConversionDone])
	return nil
}

func truncate(s string, n int) string {
	if len(s) > n {
		return "..." + s[len(s)-n+3:]
	}
	return s
}

func init() {
	historyCmd.Flags().Bool("json", false, "output records as JSON")
	historyCmd.Flags().Int("limit", 0, "maximum number of records (default from config)")
	historyCmd.Flags().String("status", "", "filter by status: converted or failed")
	historyCmd.Flags().String("format", "", "filter by target format")
	historyCmd.Flags().String("export", "", "write matching records to this YAML file")

	rootCmd.AddCommand(historyCmd)
}
