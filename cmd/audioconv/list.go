package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gehan/audioconv/internal/scan"
)

var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List the audio files a scan would find",
	Long: `List scans the directory (default: current) non-recursively and prints
the recognized audio files in the order the shell menu would show them.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	cfg := appConfig(cmd)

	entries, err := scan.Scan(dir, cfg.Scan)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No audio files found.")
		return nil
	}
	for i, e := range entries {
		fmt.Fprintf(os.Stdout, "%3d  %-40s  %-5s  %10d  %s\n",
			i+1, e.Name, e.Ext, e.Size, e.ModTime.Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(os.Stdout, "\n%d file(s)\n", len(entries))
	return nil
}

func init() {
	listCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(listCmd)
}
