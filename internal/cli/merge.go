package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/audiocut/audiocut/internal/audio"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <input_directory>",
	Short: "Merge a directory of audio tracks into one file",
	Long: `Merge the audio files of a directory, in lexicographic filename order,
into one continuous file. With --overlap, adjacent tracks are crossfaded with
equal-power fades over that many milliseconds; split output merged with the
same overlap reconstructs the original timeline:

  audiocut merge recording_tracks -l 200 -o restored.wav

A directory holding a single audio file is copied verbatim.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := newDeps()
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		upload, _ := cmd.Flags().GetBool("upload")

		merged, err := deps.Service.Merge(cmd.Context(), audio.MergeRequest{
			InputDir:  args[0],
			Output:    output,
			OverlapMs: overlapMs(cmd, deps),
			Upload:    upload,
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), merged)
		return nil
	},
}

func init() {
	mergeCmd.Flags().StringP("output", "o", "", `output file (default "<input_directory>_merged.<ext>")`)
	mergeCmd.Flags().Int64P("overlap", "l", 0, "crossfade length in milliseconds at each junction")
	mergeCmd.Flags().Bool("upload", false, "upload the merged file to the configured S3 bucket")
}
