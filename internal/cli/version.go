package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// overridable at build time via -ldflags
var Version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the srt-to-gpx version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("srt-to-gpx %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
