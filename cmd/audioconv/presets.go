package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gehan/audioconv/internal/preset"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List quality presets, or seed an editable preset file",
	Long: `Presets lists the available quality presets, including any defined in the
configured preset file. With --init, the built-in presets are written to a
YAML file as a starting point; point convert.preset_file at it and edit.`,
	Args: cobra.NoArgs,
	RunE: runPresets,
}

func runPresets(cmd *cobra.Command, args []string) error {
	cfg := appConfig(cmd)

	if initPath, _ := cmd.Flags().GetString("init"); initPath != "" {
		return initPresetFile(initPath, os.Stdout)
	}

	presets, err := preset.All(cfg.Convert.PresetFile)
	if err != nil {
		return err
	}
	for _, p := range presets {
		marker := " "
		if p.Name == cfg.Convert.Preset {
			marker = "*"
		}
		fmt.Fprintf(os.Stdout, "%s %-10s %s\n", marker, p.Name, describePreset(p))
	}
	return nil
}

// describePreset summarizes a preset's encoder settings on one line.
func describePreset(p preset.Preset) string {
	formats := make([]string, 0, len(p.Bitrates))
	for f := range p.Bitrates {
		formats = append(formats, f)
	}
	sort.Strings(formats)

	parts := make([]string, 0, len(formats)+1)
	for _, f := range formats {
		parts = append(parts, f+" "+p.Bitrates[f])
	}
	if p.VorbisQuality != "" {
		parts = append(parts, "ogg -q:a "+p.VorbisQuality)
	}
	return strings.Join(parts, ", ")
}

// initPresetFile writes the built-in presets to path. An existing file is
// never overwritten.
func initPresetFile(path string, w io.Writer) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	presets, err := preset.All("")
	if err != nil {
		return err
	}
	if err := preset.WriteFile(path, presets); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %d presets to %s; set convert.preset_file to use it.\n", len(presets), path)
	return nil
}

func init() {
	presetsCmd.Flags().String("init", "", "write the built-in presets to this file")

	rootCmd.AddCommand(presetsCmd)
}
