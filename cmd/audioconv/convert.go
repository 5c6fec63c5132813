package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gehan/audioconv/internal/convert"
	"github.com/gehan/audioconv/internal/ffmpeg"
	"github.com/gehan/audioconv/internal/scan"
	"github.com/gehan/audioconv/internal/shell"
	"github.com/gehan/audioconv/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [file|dir]",
	Short: "Convert an audio file to a target format without prompts",
	Long: `Convert runs a single conversion non-interactively. The output file is
named after the input with the target extension; an existing file of that
name is never overwritten, a numeric suffix is chosen instead.

With --all, every audio file in the directory (the positional argument,
or --dir) is converted and a summary is printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	to, _ := cmd.Flags().GetString("to")
	if to == "" {
		return fmt.Errorf("%w: target format required (--to <format>)", errUsage)
	}
	to = strings.ToLower(strings.TrimPrefix(to, "."))
	if !types.IsAudioExtension(to) {
		return fmt.Errorf("%w: unsupported format %q (supported: %s)",
			errUsage, to, strings.Join(types.AudioExtensions, ", "))
	}

	all, _ := cmd.Flags().GetBool("all")
	if !all && len(args) == 0 {
		return fmt.Errorf("%w: input file required (or --all)", errUsage)
	}

	cfg := appConfig(cmd)

	tool, err := ffmpeg.Find()
	if err != nil {
		return err
	}

	recorder, closeRecorder := openRecorder(cfg.History)
	defer closeRecorder()

	converter := convert.NewFFmpegConverter(tool, cfg.Convert.PresetFile, os.Stdout, os.Stderr)
	base := baseRequest(cfg.Convert)
	base.Format = to

	if all {
		flagDir, _ := cmd.Flags().GetString("dir")
		dir := batchDir(args, flagDir)
		entries, err := scan.Scan(dir, cfg.Scan)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintf(os.Stdout, "No audio files found in %s.\n", dir)
			return shell.ErrNoFiles
		}
		result := convert.ConvertBatch(converter, recorder, entries, base, os.Stdout)
		if result.HasFailures() {
			return fmt.Errorf("%d file(s) failed conversion", result.Failed)
		}
		return nil
	}

	entry, err := entryFromPath(args[0])
	if err != nil {
		return err
	}
	base.Input = entry
	if convert.ConvertFile(converter, recorder, base, os.Stdout) != types.ConversionDone {
		return shell.ErrConversionFailed
	}
	return nil
}

// batchDir picks the directory scanned by --all. A positional argument
// wins over --dir, which defaults to the current directory.
func batchDir(args []string, flagDir string) string {
	if len(args) > 0 {
		return args[0]
	}
	return flagDir
}

// entryFromPath builds a FileEntry for an explicitly named input file.
// The extension is not validated here; FFmpeg decides what it can read.
func entryFromPath(path string) (types.FileEntry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return types.FileEntry{}, fmt.Errorf("input file: %w", err)
	}
	if info.IsDir() {
		return types.FileEntry{}, fmt.Errorf("input %s is a directory", path)
	}
	name := filepath.Base(path)
	return types.FileEntry{
		Name:    name,
		Path:    path,
		Ext:     strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

func init() {
	convertCmd.Flags().String("to", "", "target format: mp3, opus, wav, flac, m4a, aac, ogg, or wma")
	convertCmd.Flags().Bool("all", false, "convert every audio file in the directory")
	convertCmd.Flags().String("dir", ".", "directory to scan with --all")

	rootCmd.AddCommand(convertCmd)
}
