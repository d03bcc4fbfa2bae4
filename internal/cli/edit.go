package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/audiocut/audiocut/internal/audio"
)

var padCmd = &cobra.Command{
	Use:   "pad <audio_file>",
	Short: "Insert silence before and/or after an audio file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := newDeps()
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		startMs, _ := cmd.Flags().GetInt64("start")
		endMs, _ := cmd.Flags().GetInt64("end")

		padded, err := deps.Service.Pad(cmd.Context(), audio.PadRequest{
			Input:   args[0],
			Output:  output,
			StartMs: startMs,
			EndMs:   endMs,
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), padded)
		return nil
	},
}

var trimCmd = &cobra.Command{
	Use:   "trim <audio_file> <start> <end>",
	Short: "Keep only the window between two timestamps",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := newDeps()
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")

		trimmed, err := deps.Service.Trim(cmd.Context(), audio.TrimRequest{
			Input:  args[0],
			Start:  args[1],
			End:    args[2],
			Output: output,
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), trimmed)
		return nil
	},
}

var extractCmd = &cobra.Command{
	Use:   "extract <video_file>",
	Short: "Extract the audio track from a video without re-encoding",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := newDeps()
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")

		extracted, err := deps.Service.Extract(cmd.Context(), audio.ExtractRequest{
			Input:  args[0],
			Output: output,
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), extracted)
		return nil
	},
}

var replaceCmd = &cobra.Command{
	Use:   "replace <video_file> <audio_file>",
	Short: "Replace a video's audio track",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := newDeps()
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")

		replaced, err := deps.Service.Replace(cmd.Context(), audio.ReplaceRequest{
			Video:  args[0],
			Audio:  args[1],
			Output: output,
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), replaced)
		return nil
	},
}

func init() {
	padCmd.Flags().StringP("output", "o", "", `output file (default "<input>_padded.<ext>")`)
	padCmd.Flags().Int64("start", 0, "leading silence in milliseconds")
	padCmd.Flags().Int64("end", 0, "trailing silence in milliseconds")

	trimCmd.Flags().StringP("output", "o", "", `output file (default "<input>_trimmed.<ext>")`)
	extractCmd.Flags().StringP("output", "o", "", `output file (default "<input>.m4a")`)
	replaceCmd.Flags().StringP("output", "o", "", `output file (default "<video>_replaced.<ext>")`)
}
