package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/gehan/audioconv/internal/convert"
	"github.com/gehan/audioconv/internal/ffmpeg"
	"github.com/gehan/audioconv/internal/shell"
)

var shellCmd = &cobra.Command{
	Use:   "shell [dir]",
	Short: "Interactively pick a file and convert it",
	Long: `Shell scans the directory (default: current) for audio files, shows a
numbered menu, asks for a target format, and runs the conversion. Invalid
answers are re-prompted a bounded number of times; q or an empty answer
quits.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShell,
}

func runShell(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	cfg := appConfig(cmd)

	tool, err := ffmpeg.Find()
	if err != nil {
		return err
	}

	recorder, closeRecorder := openRecorder(cfg.History)
	defer closeRecorder()

	converter := convert.NewFFmpegConverter(tool, cfg.Convert.PresetFile, os.Stdout, os.Stderr)
	sh := shell.New(os.Stdin, os.Stdout, converter, recorder, cfg.Shell.MaxAttempts)

	err = sh.Run(dir, cfg.Scan, baseRequest(cfg.Convert))
	if errors.Is(err, shell.ErrQuit) {
		return nil
	}
	return err
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
