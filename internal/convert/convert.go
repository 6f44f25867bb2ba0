package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/endolith/srt-to-gpx/internal/gpx"
	"github.com/endolith/srt-to-gpx/internal/srt"
	"github.com/endolith/srt-to-gpx/internal/video"
)

// ErrNoGPSData marks a file whose caption blocks held no usable GPS records.
var ErrNoGPSData = errors.New("no GPS data found")

// holds settings for one conversion run
type Options struct {
	OutputDir string     // destination directory for .gpx files
	Policy    srt.Policy // invalid-block handling
	Metadata  bool       // emit the descriptive metadata block
	MatchTime bool       // mirror the input's modification time onto the output
}

// result of converting one input file
type Outcome struct {
	OutputPath string
	Points     int
	Skipped    int // blocks dropped during extraction
}

// File converts one SRT (or camera video) input into a GPX file. The
// document is serialized and round-trip checked fully in memory, then
// written to a temp file and renamed into place, so a failed conversion
// never leaves partial output behind.
func File(ctx context.Context, inputPath string, opts Options) (*Outcome, error) {
	srcPath := inputPath

	if video.IsVideoFile(inputPath) {
		tempDir, err := os.MkdirTemp("", "srt-to-gpx-*")
		if err != nil {
			return nil, fmt.Errorf("failed to create temp directory: %w", err)
		}
		defer os.RemoveAll(tempDir)

		srcPath = filepath.Join(tempDir, baseName(inputPath)+".srt")
		processor := video.NewProcessor(tempDir)
		if err := processor.ExtractSubtitles(ctx, inputPath, srcPath, video.DefaultExtractOptions()); err != nil {
			return nil, fmt.Errorf("failed to extract subtitles: %w", err)
		}
	}

	res, err := srt.ParseFile(srcPath, opts.Policy)
	if err != nil {
		return nil, err
	}
	if len(res.Records) == 0 {
		return nil, fmt.Errorf(
			"only compass headings or invalid entries present: %w",
			ErrNoGPSData,
		)
	}

	doc, err := gpx.Serialize(res.Records, gpx.Options{Metadata: opts.Metadata})
	if err != nil {
		return nil, err
	}
	if err := gpx.Validate(res.Records, doc); err != nil {
		return nil, fmt.Errorf("round-trip check failed: %w", err)
	}

	outPath := OutputPath(inputPath, opts.OutputDir)
	if err := ensureDir(outPath); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := writeAtomic(outPath, doc); err != nil {
		return nil, err
	}

	if opts.MatchTime {
		if err := matchTimes(inputPath, outPath); err != nil {
			return nil, err
		}
	}

	return &Outcome{
		OutputPath: outPath,
		Points:     len(res.Records),
		Skipped:    res.Skipped,
	}, nil
}

// OutputPath derives the .gpx destination for an input file: the input's
// base name with its extension replaced, joined to the output directory.
func OutputPath(inputPath, outputDir string) string {
	return filepath.Join(outputDir, baseName(inputPath)+".gpx")
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}

// writes the document beside its final path, then renames it into place
func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to finalize output file: %w", err)
	}
	return nil
}

// copies the input file's modification time onto the output
func matchTimes(inputPath, outPath string) error {
	info, err := os.Stat(inputPath)
	if err != nil {
		return fmt.Errorf("failed to stat input file: %w", err)
	}
	if err := os.Chtimes(outPath, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("failed to set output file times: %w", err)
	}
	return nil
}
