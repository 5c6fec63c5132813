// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the audioconv CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gehan/audioconv/internal/convert"
	"github.com/gehan/audioconv/internal/history"
	"github.com/gehan/audioconv/internal/preset"
	"github.com/gehan/audioconv/internal/shell"
	"github.com/gehan/audioconv/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// Exit codes. Zero covers both a successful conversion and a graceful quit.
const (
	exitFailure    = 1 // conversion failed or ffmpeg missing
	exitUsage      = 2
	exitNoFiles    = 3
	exitOutOfTries = 4
)

// rootCmd is the base command. Running it with no subcommand launches the
// interactive converter shell in the current directory.
var rootCmd = &cobra.Command{
	Use:   "audioconv [dir]",
	Short: "Convert audio files with FFmpeg from a terminal menu",
	Long: `audioconv scans a directory for audio files, presents a numbered menu,
asks for a target format, and hands the conversion to FFmpeg. The tool's
console output is streamed through unmodified; audioconv only interprets
its exit status.

Run without arguments for the interactive shell, or use the convert, list,
history, and doctor subcommands directly.`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runShell,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./audioconv.yaml or ~/.config/audioconv/config.yaml)")
	rootCmd.PersistentFlags().String("preset", "", "quality preset: high, balanced, or small")
	rootCmd.PersistentFlags().Bool("normalize", false, "normalize loudness (-af loudnorm)")
	rootCmd.PersistentFlags().Bool("strip-subs", false, "strip subtitle streams (-sn)")
	rootCmd.PersistentFlags().String("output-dir", "", "write output files here instead of alongside the input")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("audioconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "audioconv"))
		}
	}

	viper.SetDefault("convert.preset", preset.DefaultName)
	viper.SetDefault("history.path", defaultHistoryPath())
	viper.SetDefault("history.max_results", 20)
	viper.SetDefault("shell.max_attempts", shell.DefaultMaxAttempts)

	viper.SetEnvPrefix("AUDIOCONV")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// defaultHistoryPath places the history database under the user config
// directory. Returns "" (history disabled) when that cannot be determined.
func defaultHistoryPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "audioconv", "history.db")
}

// appConfig assembles the full configuration from viper, with flag
// overrides applied for conversion options.
func appConfig(cmd *cobra.Command) types.Config {
	cfg := types.Config{
		Scan: types.ScanConfig{
			Extensions: viper.GetStringSlice("scan.extensions"),
			Exclude:    viper.GetStringSlice("scan.exclude"),
		},
		Convert: types.ConvertConfig{
			Preset:         viper.GetString("convert.preset"),
			Normalize:      viper.GetBool("convert.normalize"),
			StripSubtitles: viper.GetBool("convert.strip_subtitles"),
			OutputDir:      viper.GetString("convert.output_dir"),
			PresetFile:     viper.GetString("convert.preset_file"),
		},
		History: types.HistoryConfig{
			Path:       viper.GetString("history.path"),
			MaxResults: viper.GetInt("history.max_results"),
		},
		Shell: types.ShellConfig{
			MaxAttempts: viper.GetInt("shell.max_attempts"),
		},
	}

	f := cmd.Flags()
	if f.Changed("preset") {
		cfg.Convert.Preset, _ = f.GetString("preset")
	}
	if f.Changed("normalize") {
		cfg.Convert.Normalize, _ = f.GetBool("normalize")
	}
	if f.Changed("strip-subs") {
		cfg.Convert.StripSubtitles, _ = f.GetBool("strip-subs")
	}
	if f.Changed("output-dir") {
		cfg.Convert.OutputDir, _ = f.GetString("output-dir")
	}
	return cfg
}

// baseRequest turns conversion defaults into a request template; input and
// format are filled by the caller.
func baseRequest(cfg types.ConvertConfig) types.Request {
	return types.Request{
		Preset:         cfg.Preset,
		Normalize:      cfg.Normalize,
		StripSubtitles: cfg.StripSubtitles,
		OutputDir:      cfg.OutputDir,
	}
}

// openRecorder returns the history store as a Recorder, or a no-op
// recorder when history is disabled or unavailable. The returned func
// closes the store.
func openRecorder(cfg types.HistoryConfig) (convert.Recorder, func()) {
	if cfg.Path == "" {
		return convert.NopRecorder{}, func() {}
	}
	store, err := history.NewStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history disabled: %v\n", err)
		return convert.NopRecorder{}, func() {}
	}
	return store, func() { store.Close() }
}

// errUsage marks argument validation failures so they exit with the usage
// code.
var errUsage = errors.New("usage error")

func exitCode(err error) int {
	switch {
	case errors.Is(err, errUsage):
		return exitUsage
	case errors.Is(err, shell.ErrNoFiles):
		return exitNoFiles
	case errors.Is(err, shell.ErrTooManyAttempts):
		return exitOutOfTries
	default:
		return exitFailure
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}
