// Package cli defines the command tree. Commands stay thin: flag handling and
// output formatting here, planning and engine work in the audio service.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/audiocut/audiocut/internal/bootstrap"
)

var rootCmd = &cobra.Command{
	Use:   "audiocut",
	Short: "Audio editing front end for ffmpeg",
	Long: `audiocut edits audio by orchestrating the ffmpeg and ffprobe CLIs:
splitting at timestamps, merging with equal-power crossfades, padding,
trimming, extracting and replacing audio tracks, and reporting metadata.

audiocut never decodes audio itself; all media work is delegated to ffmpeg.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command tree. Any failure is reported on stderr with exit
// code 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(padCmd)
	rootCmd.AddCommand(trimCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(replaceCmd)
	rootCmd.AddCommand(infoCmd)
}

// newDeps builds the service stack for one command execution.
var newDeps = bootstrap.NewDependencies

// overlapMs resolves the overlap flag, falling back to the configured default
// when the flag was not given.
func overlapMs(cmd *cobra.Command, deps *bootstrap.Dependencies) int64 {
	if cmd.Flags().Changed("overlap") {
		v, _ := cmd.Flags().GetInt64("overlap")
		return v
	}
	return deps.Config.DefaultOverlapMs
}
