package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gehan/audioconv/internal/ffmpeg"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that FFmpeg can be found and report its version",
	Long: `Doctor resolves the FFmpeg binary the way conversions do: a binary
placed beside the audioconv executable wins over one found on PATH. It
prints the resolved path and version, or fails when neither exists.`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	tool, err := ffmpeg.Find()
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "ffmpeg: %s\n", tool.Path())

	version, err := tool.Version()
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "version: %s\n", version)
	return nil
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
