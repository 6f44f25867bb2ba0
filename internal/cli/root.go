package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/endolith/srt-to-gpx/internal/convert"
	"github.com/endolith/srt-to-gpx/internal/logging"
	"github.com/endolith/srt-to-gpx/internal/srt"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "srt-to-gpx [flags] <input_file>...",
	Short: "Convert action-camera SRT GPS logs to GPX tracks",
	Long: `srt-to-gpx converts subtitle-format GPS logs, as written by
action-camera firmware such as OpenCamera, into GPX 1.1 track files.

Each caption block's latitude, longitude and elevation become one track
point. Inputs may be sidecar .srt files or camera videos carrying an
embedded GPS subtitle stream (extracted with ffmpeg).

Files are processed independently: a failure in one file is reported and
the rest still convert. The exit status is non-zero if any file failed.

Examples:
  srt-to-gpx ride.srt
  srt-to-gpx --output_dir tracks morning.srt evening.srt
  srt-to-gpx --on-invalid fail dashcam.mp4
  srt-to-gpx --no-match-time --no-metadata ride.srt`,
	Args:         cobra.MinimumNArgs(1),
	RunE:         runConvert,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.Flags().
		String("output_dir", ".", "Directory to save output GPX files")
	rootCmd.Flags().
		Bool("no-match-time", false, "Do not set the output file's modification time to match the input")
	rootCmd.Flags().
		Bool("no-metadata", false, "Omit the descriptive metadata block from the output")
	rootCmd.Flags().
		String("on-invalid", "skip", "Handling of undecodable GPS blocks (skip, fail)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	outputDir, _ := cmd.Flags().GetString("output_dir")
	noMatchTime, _ := cmd.Flags().GetBool("no-match-time")
	noMetadata, _ := cmd.Flags().GetBool("no-metadata")
	onInvalid, _ := cmd.Flags().GetString("on-invalid")

	policy, err := parsePolicy(onInvalid)
	if err != nil {
		return err
	}

	opts := convert.Options{
		OutputDir: outputDir,
		Policy:    policy,
		Metadata:  !noMetadata,
		MatchTime: !noMatchTime,
	}

	var converted, skipped, failed int
	for _, path := range args {
		logger.Infow("Processing file", "input", path)

		out, err := convert.File(ctx, path, opts)
		if errors.Is(err, convert.ErrNoGPSData) {
			logger.Warnw("No GPS data found, skipping file", "input", path)
			skipped++
			continue
		}
		if err != nil {
			logger.Errorw("Failed to process file",
				"input", path,
				"error", err,
			)
			failed++
			continue
		}

		logger.Infow("Conversion successful",
			"output", out.OutputPath,
			"points", out.Points,
			"skipped_blocks", out.Skipped,
		)
		converted++
	}

	fmt.Printf("Converted %d of %d files (%d skipped, %d failed)\n",
		converted, len(args), skipped, failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}

func parsePolicy(s string) (srt.Policy, error) {
	switch s {
	case "skip":
		return srt.PolicySkip, nil
	case "fail":
		return srt.PolicyFail, nil
	default:
		return "", fmt.Errorf("unsupported --on-invalid value %q: use skip or fail", s)
	}
}
