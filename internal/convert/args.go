// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"strings"

	"github.com/gehan/audioconv/internal/preset"
)

// codecs maps a target format to the ffmpeg audio encoder used for it.
var codecs = map[string]string{
	"mp3":  "libmp3lame",
	"opus": "libopus",
	"wav":  "pcm_s16le",
	"flac": "flac",
	"m4a":  "aac",
	"aac":  "aac",
	"ogg":  "libvorbis",
	"wma":  "wmav2",
}

// Args builds the ffmpeg command line for one conversion. The target
// format is implied by the output extension; -vn drops any video stream so
// the result is a pure audio file. -y keeps ffmpeg from prompting; the
// output path is guaranteed fresh by OutputPath, so nothing is overwritten.
func Args(inputPath, outputPath, format string, p preset.Preset, normalize, stripSubtitles bool) ([]string, error) {
	format = strings.ToLower(format)
	codec, ok := codecs[format]
	if !ok {
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	args := []string{"-y", "-i", inputPath, "-vn", "-c:a", codec}

	if br := p.Bitrate(format); br != "" {
		args = append(args, "-b:a", br)
	}
	// Vorbis is quality-driven rather than bitrate-driven.
	if format == "ogg" && p.VorbisQuality != "" {
		args = append(args, "-q:a", p.VorbisQuality)
	}

	if normalize {
		args = append(args, "-af", "loudnorm")
	}
	if stripSubtitles {
		args = append(args, "-sn")
	}

	args = append(args, outputPath)
	return args, nil
}
