package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/audiocut/audiocut/internal/engine"
)

var infoCmd = &cobra.Command{
	Use:   "info <media_file>",
	Short: "Report container and stream metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := newDeps()
		if err != nil {
			return err
		}

		info, err := deps.Service.Info(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		printMediaInfo(cmd.OutOrStdout(), info)
		return nil
	},
}

func printMediaInfo(w io.Writer, info *engine.MediaInfo) {
	fmt.Fprintf(w, "file:     %s\n", info.Format.Filename)
	fmt.Fprintf(w, "format:   %s\n", info.Format.FormatName)
	fmt.Fprintf(w, "duration: %ss\n", info.Format.Duration)
	if info.Format.BitRate != "" {
		fmt.Fprintf(w, "bitrate:  %s\n", info.Format.BitRate)
	}

	for _, st := range info.Streams {
		switch st.CodecType {
		case "audio":
			fmt.Fprintf(w, "stream %d: audio %s, %s Hz, %d ch\n",
				st.Index, st.CodecName, st.SampleRate, st.Channels)
		case "video":
			fmt.Fprintf(w, "stream %d: video %s, %dx%d\n",
				st.Index, st.CodecName, st.Width, st.Height)
		default:
			fmt.Fprintf(w, "stream %d: %s %s\n", st.Index, st.CodecType, st.CodecName)
		}
	}
}
