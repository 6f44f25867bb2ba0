package ffmpeg

import (
	"fmt"
	"os"
	"os/exec"
)

// FFmpegPath locates the ffmpeg binary used for subtitle extraction. An
// explicit SRT_TO_GPX_FFMPEG_PATH overrides PATH lookup.
func FFmpegPath() (string, error) {
	if path := os.Getenv("SRT_TO_GPX_FFMPEG_PATH"); path != "" {
		return path, nil
	}

	path, err := exec.LookPath("ffmpeg")
	if err != nil {
		return "", fmt.Errorf(
			"ffmpeg not found: install it or set SRT_TO_GPX_FFMPEG_PATH: %w",
			err,
		)
	}
	return path, nil
}
