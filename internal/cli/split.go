package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/audiocut/audiocut/internal/audio"
)

var splitCmd = &cobra.Command{
	Use:   "split <audio_file> <timestamp> [timestamp ...]",
	Short: "Split an audio file at the given timestamps",
	Long: `Split an audio file into track_01, track_02, … at the given boundaries.

Timestamps use HH:MM:SS.mmm form and must be strictly increasing. With
--overlap, every track after the first starts that many milliseconds before
its boundary, so the tracks can later be merged back with a crossfade:

  audiocut split recording.wav -l 200 00:00:03.000 00:00:07.000`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := newDeps()
		if err != nil {
			return err
		}

		outputDir, _ := cmd.Flags().GetString("output")
		upload, _ := cmd.Flags().GetBool("upload")

		tracks, err := deps.Service.Split(cmd.Context(), audio.SplitRequest{
			Input:      args[0],
			OutputDir:  outputDir,
			Timestamps: args[1:],
			OverlapMs:  overlapMs(cmd, deps),
			Upload:     upload,
		})
		if err != nil {
			return err
		}

		for _, track := range tracks {
			fmt.Fprintln(cmd.OutOrStdout(), track)
		}
		return nil
	},
}

func init() {
	splitCmd.Flags().StringP("output", "o", "", `output directory (default "<input>_tracks")`)
	splitCmd.Flags().Int64P("overlap", "l", 0, "overlap in milliseconds at each boundary")
	splitCmd.Flags().Bool("upload", false, "upload produced tracks to the configured S3 bucket")
}
